package http

import (
	"net/http"

	"fruitmall/internal/core/application/usecases/commands"
	"fruitmall/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type registerMemberRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// registerMember handles POST /api/v1/auth/register.
func (s *Server) registerMember(c echo.Context) error {
	var req registerMemberRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	memberID := kernel.NewUUID()
	cmd, err := commands.NewRegisterMemberCommand(memberID, req.Username, req.Email,
		req.Password, req.Name, req.PhoneNumber, req.Address)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.RegisterMember.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": memberID.String()})
}

// login handles POST /api/v1/auth/login. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	unauthorized := func() error {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "invalid credentials",
		})
	}

	m, err := s.uowFactory.Create().MemberRepository().
		GetByUsername(c.Request().Context(), req.Username)
	if err != nil {
		return unauthorized()
	}
	if err := m.MatchPassword(req.Password); err != nil {
		return unauthorized()
	}

	token, err := s.tokens.Issue(m)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token})
}
