package http

import (
	"net/http"

	"fruitmall/internal/core/application/usecases/commands"
	"fruitmall/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type createReviewRequest struct {
	OrderID       string `json:"orderId"`
	OrderDetailID string `json:"orderDetailId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
}

type updateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// createReview handles POST /api/v1/reviews. Only delivered order lines can
// be reviewed, once each.
func (s *Server) createReview(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(c, "invalid order id")
	}
	orderDetailID, err := kernel.UUIDFromString(req.OrderDetailID)
	if err != nil {
		return badRequest(c, "invalid order detail id")
	}

	reviewID := kernel.NewUUID()
	cmd, err := commands.NewCreateReviewCommand(reviewID, orderID, orderDetailID, req.Rating,
		req.Comment, principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.CreateReview.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": reviewID.String()})
}

// updateReview handles PUT /api/v1/reviews/:id.
func (s *Server) updateReview(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	reviewID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid review id")
	}

	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewUpdateReviewCommand(reviewID, req.Rating, req.Comment, principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.UpdateReview.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// deleteReview handles DELETE /api/v1/reviews/:id. The author or an
// administrator may remove a review.
func (s *Server) deleteReview(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	reviewID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid review id")
	}

	cmd, err := commands.NewDeleteReviewCommand(reviewID, principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.DeleteReview.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
