package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
	"github.com/knowledgehub/knowledge-platform/internal/core/ports"
	"github.com/knowledgehub/knowledge-platform/internal/metrics"
)

// ClaimsKey is the echo context key under which Auth stores the verified
// session claims.
const ClaimsKey = "claims"

// Auth extracts the bearer token, verifies it, and injects the claims into
// the request context. The transport never touches the signing secret; all
// parsing lives behind the SessionVerifier.
func Auth(verifier ports.SessionVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrSessionExpired) {
					metrics.SessionVerificationsTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
				}
				metrics.SessionVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			metrics.SessionVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(ClaimsKey, *claims)

			return next(c)
		}
	}
}
