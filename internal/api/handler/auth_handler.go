package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
	"github.com/knowledgehub/knowledge-platform/internal/core/ports"
)

// AuthHandler handles login and identity introspection.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserSummary(user),
	})
}

// Me returns the public summary of the authenticated identity, rebuilt from
// the verified claims rather than a store lookup: the session is the source
// of truth for its own lifetime.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userSummary
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/users/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userSummary{
		Username: claims.Username,
		FullName: claims.FullName,
		Role:     string(claims.Role),
		Level:    claims.Level,
		IsHR:     claims.IsHR,
	})
}

func toUserSummary(u *domain.User) userSummary {
	return userSummary{
		Username: u.Username,
		FullName: u.FullName,
		Role:     string(u.Role),
		Level:    u.Level,
		IsHR:     u.IsHR,
	}
}
