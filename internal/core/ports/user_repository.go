package ports

import (
	"context"

	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
)

// UserRepository is the identity store boundary. Implementations return
// domain.ErrUserNotFound for unknown usernames and domain.ErrUserExists on
// duplicate provisioning.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
