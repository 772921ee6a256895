package ports

import (
	"context"

	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
)

// AuthService authenticates a presented credential and issues a session
// token. Unknown usernames and credential mismatches are both reported as
// domain.ErrInvalidCredentials so the response does not reveal which part
// failed.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
