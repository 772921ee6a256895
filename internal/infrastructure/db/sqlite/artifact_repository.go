package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
)

// ArtifactRepository implements ports.ArtifactRepository on SQLite. Tags are
// stored as a JSON array in a TEXT column.
type ArtifactRepository struct {
	db *sql.DB
}

func NewArtifactRepository(db *sql.DB) *ArtifactRepository {
	return &ArtifactRepository{db: db}
}

// List returns the full catalog in insertion order.
func (r *ArtifactRepository) List(ctx context.Context) ([]*domain.Artifact, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, content, type, access_level, is_hr_only, tags, created_at
		FROM artifacts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	defer rows.Close()

	var artifacts []*domain.Artifact
	for rows.Next() {
		a, err := scanArtifact(rows.Scan)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	return artifacts, nil
}

func (r *ArtifactRepository) FindByID(ctx context.Context, id int64) (*domain.Artifact, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, content, type, access_level, is_hr_only, tags, created_at
		FROM artifacts WHERE id = ?`, id)

	a, err := scanArtifact(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrArtifactNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *ArtifactRepository) Create(ctx context.Context, artifact *domain.Artifact) error {
	tags, err := json.Marshal(artifact.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}
	if artifact.CreatedAt.IsZero() {
		artifact.CreatedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO artifacts (title, content, type, access_level, is_hr_only, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		artifact.Title, artifact.Content, string(artifact.Type),
		artifact.AccessLevel, artifact.IsHROnly, string(tags), artifact.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert artifact: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert artifact: %w", err)
	}
	artifact.ID = id
	return nil
}

func scanArtifact(scan func(dest ...any) error) (*domain.Artifact, error) {
	var a domain.Artifact
	var typ, tags string
	var createdAt time.Time
	if err := scan(&a.ID, &a.Title, &a.Content, &typ, &a.AccessLevel, &a.IsHROnly, &tags, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("scan artifact: %w", err)
	}
	if err := json.Unmarshal([]byte(tags), &a.Tags); err != nil {
		return nil, fmt.Errorf("unmarshal tags: %w", err)
	}
	a.Type = domain.ArtifactType(typ)
	a.CreatedAt = createdAt.UTC()
	return &a, nil
}
