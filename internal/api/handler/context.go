package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/knowledgehub/knowledge-platform/internal/api/middleware"
	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
)

// ctxClaims extracts the session claims injected by the Auth middleware.
// Absence means the middleware did not run or was bypassed; fail closed
// with 401 rather than proceeding with zero-valued claims.
func ctxClaims(c echo.Context) (domain.Claims, error) {
	claims, ok := c.Get(middleware.ClaimsKey).(domain.Claims)
	if !ok {
		return domain.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
