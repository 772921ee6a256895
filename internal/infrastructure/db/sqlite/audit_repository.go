package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
)

// AuditRepository implements ports.AuditRepository on SQLite.
type AuditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AccessLog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO access_logs (id, username, artifact_id, action, timestamp)
		VALUES (?, ?, ?, ?, ?)`,
		entry.ID, entry.Username, entry.ArtifactID, string(entry.Action), entry.Timestamp)
	if err != nil {
		return fmt.Errorf("insert access log: %w", err)
	}
	return nil
}

func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]*domain.AccessLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, username, artifact_id, action, timestamp
		FROM access_logs ORDER BY timestamp DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list access logs: %w", err)
	}
	defer rows.Close()

	var entries []*domain.AccessLog
	for rows.Next() {
		var e domain.AccessLog
		var action string
		var ts time.Time
		if err := rows.Scan(&e.ID, &e.Username, &e.ArtifactID, &action, &ts); err != nil {
			return nil, fmt.Errorf("scan access log: %w", err)
		}
		e.Action = domain.AccessAction(action)
		e.Timestamp = ts.UTC()
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list access logs: %w", err)
	}
	return entries, nil
}
