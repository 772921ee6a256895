package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
)

// UserRepository implements ports.UserRepository on SQLite.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, username, credential_hash, role, level, is_hr, full_name, created_at
		FROM users WHERE username = ?`, username)

	var u domain.User
	var role string
	var createdAt time.Time
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &role, &u.Level, &u.IsHR, &u.FullName, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	u.Role = domain.ParseRole(role)
	u.CreatedAt = createdAt.UTC()
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	created := *user
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, credential_hash, role, level, is_hr, full_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		created.ID, created.Username, created.PasswordHash, string(created.Role),
		created.Level, created.IsHR, created.FullName, created.CreatedAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return &created, nil
}
