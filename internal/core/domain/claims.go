package domain

import (
	"errors"
	"time"
)

var ErrSessionExpired = errors.New("session expired")
var ErrSessionInvalid = errors.New("invalid session")

// Claims is the authorization snapshot embedded in a session token at
// issuance. It is never persisted server-side: the verifier reconstructs it
// from the signed payload on every call. A user record changed after
// issuance is not reflected until the session expires.
type Claims struct {
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Role      Role      `json:"role"`
	Level     int       `json:"level"`
	IsHR      bool      `json:"is_hr"`
	ExpiresAt time.Time `json:"expires_at"`
}
