package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// sessionClaims is the JWT payload. Level and IsHR are pointers so that an
// absent field can be told apart from a zero value during verification.
type sessionClaims struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Level    *int   `json:"level"`
	IsHR     *bool  `json:"is_hr"`
	jwt.RegisteredClaims
}

// SessionService issues and verifies HS256-signed session tokens. The
// signing secret is fixed at construction and never mutated, so a single
// instance is safe for concurrent use. Tokens are tamper-evident but not
// confidential: claims are base64-visible to the holder.
type SessionService struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionService creates a SessionService. A non-positive ttl falls back
// to 24 hours.
func NewSessionService(secret string, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &SessionService{secret: []byte(secret), ttl: ttl}
}

// Issue builds a token carrying a verbatim snapshot of the user's
// authorization attributes plus an absolute expiry instant.
func (s *SessionService) Issue(user *domain.User) (string, error) {
	level := user.Level
	isHR := user.IsHR
	claims := sessionClaims{
		Username: user.Username,
		FullName: user.FullName,
		Role:     string(user.Role),
		Level:    &level,
		IsHR:     &isHR,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify validates signature and expiry against wall-clock time and
// reconstructs the claims. Any ambiguity (bad signature, malformed payload,
// unexpected signing method, missing claim fields) is ErrSessionInvalid; only
// a structurally valid token past its expiry is ErrSessionExpired.
func (s *SessionService) Verify(token string) (*domain.Claims, error) {
	var sc sessionClaims
	tkn, err := jwt.ParseWithClaims(token, &sc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrSessionExpired
		}
		return nil, domain.ErrSessionInvalid
	}
	if !tkn.Valid {
		return nil, domain.ErrSessionInvalid
	}
	if sc.Username == "" || sc.Level == nil || sc.IsHR == nil || sc.ExpiresAt == nil {
		return nil, domain.ErrSessionInvalid
	}

	return &domain.Claims{
		Username:  sc.Username,
		FullName:  sc.FullName,
		Role:      domain.ParseRole(sc.Role),
		Level:     *sc.Level,
		IsHR:      *sc.IsHR,
		ExpiresAt: sc.ExpiresAt.Time,
	}, nil
}
