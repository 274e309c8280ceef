package http

import (
	"errors"
	"net/http"

	"fruitmall/internal/core/domain/model/fruit"
	"fruitmall/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps a domain error onto an HTTP status code. Validation
// failures become 400, missing objects 404, authorization failures 403, and
// state conflicts such as sold-out stock 409. Anything unclassified is an
// internal fault: it is logged and answered with a generic 500 so internal
// detail never reaches the client.
func writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrAccessDenied):
		status = http.StatusForbidden
	case errors.Is(err, fruit.ErrOutOfStock),
		errors.Is(err, errs.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		c.Logger().Error(err)
		return c.JSON(status, ErrorResponse{
			Code:    status,
			Message: "internal server error",
		})
	}

	return c.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

// badRequest reports a malformed request body or path parameter.
func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
