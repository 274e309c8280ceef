package http

import (
	"net/http"
	"time"

	"fruitmall/internal/core/application/usecases/commands"
	"fruitmall/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type updateMemberInfoRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type memberResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
	JoinDate    time.Time `json:"joinDate"`
	Grade       string    `json:"grade"`
}

// getMember handles GET /api/v1/members/:id.
func (s *Server) getMember(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	memberID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid member id")
	}

	query, err := queries.NewGetMemberQuery(memberID, principal)
	if err != nil {
		return writeError(c, err)
	}

	profile, err := s.handlers.GetMember.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, memberResponse{
		ID:          profile.ID.String(),
		Username:    profile.Username,
		Email:       profile.Email,
		Name:        profile.Name,
		PhoneNumber: profile.PhoneNumber,
		Address:     profile.Address,
		JoinDate:    profile.JoinDate,
		Grade:       profile.Grade,
	})
}

// updateMemberInfo handles PUT /api/v1/members/me.
func (s *Server) updateMemberInfo(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	var req updateMemberInfoRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewUpdateMemberInfoCommand(req.Name, req.PhoneNumber, req.Address,
		principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.UpdateMemberInfo.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// changePassword handles PUT /api/v1/members/me/password.
func (s *Server) changePassword(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewChangePasswordCommand(req.CurrentPassword, req.NewPassword, principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.ChangePassword.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
