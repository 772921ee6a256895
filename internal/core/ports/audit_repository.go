package ports

import (
	"context"

	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
)

// AuditRepository persists artifact read events.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AccessLog) error
	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.AccessLog, error)
}
