package http

import (
	"fruitmall/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param(name))
}
