package http

import (
	"net/http"
	"strings"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// RequireAuth is an echo middleware that verifies the bearer token and stores
// the resulting principal in the request context.
func RequireAuth(tokens *TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			principal, err := tokens.Parse(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "access token is invalid",
				})
			}

			c.Set(principalContextKey, principal)
			return next(c)
		}
	}
}

// principalFrom returns the authenticated principal stored by RequireAuth.
func principalFrom(c echo.Context) (auth.Principal, error) {
	principal, ok := c.Get(principalContextKey).(auth.Principal)
	if !ok {
		return auth.Principal{}, errs.NewAccessDeniedError("use an authenticated endpoint")
	}
	return principal, nil
}
