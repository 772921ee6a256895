package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/knowledgehub/knowledge-platform/internal/api/middleware"
	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
)

type stubAuthService struct {
	token string
	user  *domain.User
	err   error
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (string, *domain.User, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.user, nil
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{
		token: "signed-token",
		user:  &domain.User{Username: "alice", FullName: "Alice Chen", Role: domain.RoleCEO, Level: 100},
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/api/v1/auth/login", `{"username":"alice","password":"pass"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login handler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken != "signed-token" || resp.TokenType != "bearer" {
		t.Errorf("unexpected token fields: %+v", resp)
	}
	if resp.User.Username != "alice" || resp.User.Level != 100 {
		t.Errorf("unexpected user summary: %+v", resp.User)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(http.MethodPost, "/api/v1/auth/login", `{"username":"alice"}`)
	err := h.Login(c)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_PropagatesSentinel(t *testing.T) {
	// Domain errors pass through untouched; the central error handler maps
	// them to status codes.
	for _, sentinel := range []error{domain.ErrInvalidCredentials, domain.ErrLoginThrottled} {
		h := NewAuthHandler(&stubAuthService{err: sentinel})
		c, _ := newTestContext(http.MethodPost, "/api/v1/auth/login", `{"username":"alice","password":"pass"}`)
		if err := h.Login(c); !errors.Is(err, sentinel) {
			t.Errorf("expected %v, got %v", sentinel, err)
		}
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newTestContext(http.MethodGet, "/api/v1/users/me", "")
	c.Set(middleware.ClaimsKey, domain.Claims{
		Username: "hilda",
		FullName: "Hilda Park",
		Role:     domain.RoleHR,
		Level:    20,
		IsHR:     true,
	})

	if err := h.Me(c); err != nil {
		t.Fatalf("me handler failed: %v", err)
	}

	var resp userSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Username != "hilda" || !resp.IsHR || resp.Level != 20 {
		t.Errorf("unexpected summary: %+v", resp)
	}
}

func TestAuthHandler_Me_NoClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(http.MethodGet, "/api/v1/users/me", "")
	err := h.Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
