package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
)

// RequireHR restricts a route to HR identities. It must run after Auth.
func RequireHR() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ClaimsKey).(domain.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !claims.IsHR {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
