package ports

import "github.com/knowledgehub/knowledge-platform/internal/core/domain"

// SessionIssuer turns a verified user record into a signed, time-bounded
// session token. Issuance is stateless: no session is recorded server-side,
// so revocation before natural expiry is not supported.
type SessionIssuer interface {
	Issue(user *domain.User) (string, error)
}

// SessionVerifier validates a token's signature and expiry and reconstructs
// the claims embedded at issuance. Verification fails closed: a malformed
// payload or missing claim field is domain.ErrSessionInvalid, an expired
// token is domain.ErrSessionExpired. Safe for concurrent use.
type SessionVerifier interface {
	Verify(token string) (*domain.Claims, error)
}
