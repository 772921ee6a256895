package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *user
	r.users[user.Username] = &clone
	return &clone, nil
}

func (r *stubUserRepo) add(t *testing.T, username, password string, level int, isHR bool) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	r.users[username] = &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleEngineer,
		Level:        level,
		IsHR:         isHR,
	}
}

type stubThrottle struct {
	throttled bool
	failures  int
	resets    int
}

func (s *stubThrottle) TooManyAttempts(context.Context, string) (bool, error) {
	return s.throttled, nil
}

func (s *stubThrottle) RecordFailure(context.Context, string) error {
	s.failures++
	return nil
}

func (s *stubThrottle) Reset(context.Context, string) error {
	s.resets++
	return nil
}

func newAuthService(repo *stubUserRepo, throttle *stubThrottle) *AuthService {
	sessions := NewSessionService("test-secret", time.Hour)
	return NewAuthService(repo, sessions, throttle, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(t, "carol", "s3cret", 40, false)
	throttle := &stubThrottle{}
	svc := newAuthService(repo, throttle)

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if throttle.resets != 1 {
		t.Errorf("expected throttle reset, got %d", throttle.resets)
	}

	// Token must round-trip through the verifier with the user's snapshot.
	claims, err := NewSessionService("test-secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Level != 40 {
		t.Errorf("claims level = %d, want 40", claims.Level)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(t, "dave", "goodpass", 10, false)
	throttle := &stubThrottle{}
	svc := newAuthService(repo, throttle)

	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if throttle.failures != 1 {
		t.Errorf("expected failure recorded, got %d", throttle.failures)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), &stubThrottle{})

	// Unknown username is reported exactly like a wrong password.
	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), &stubThrottle{})

	if _, _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty username, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "user", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(t, "eve", "pass", 10, false)
	svc := newAuthService(repo, &stubThrottle{throttled: true})

	if _, _, err := svc.Login(context.Background(), "eve", "pass"); !errors.Is(err, domain.ErrLoginThrottled) {
		t.Fatalf("expected ErrLoginThrottled, got %v", err)
	}
}
