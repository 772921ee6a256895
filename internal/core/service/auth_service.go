package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
	"github.com/knowledgehub/knowledge-platform/internal/core/ports"
	"github.com/knowledgehub/knowledge-platform/internal/metrics"
)

// LoginThrottle abstracts the failed-attempt counter (Redis).
type LoginThrottle interface {
	TooManyAttempts(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// AuthService implements login against the identity store.
type AuthService struct {
	repo     ports.UserRepository
	sessions ports.SessionIssuer
	throttle LoginThrottle
	log      zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, sessions ports.SessionIssuer, throttle LoginThrottle, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, sessions: sessions, throttle: throttle, log: log}
}

// Login verifies the presented credential and issues a session token. An
// unknown username and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	throttled, err := s.throttle.TooManyAttempts(ctx, username)
	if err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login throttle check failed, proceeding")
	} else if throttled {
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		return "", nil, domain.ErrLoginThrottled
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, username)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, username)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(user)
	if err != nil {
		return "", nil, err
	}

	if err := s.throttle.Reset(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to reset login throttle")
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("login succeeded")

	return token, user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
}
