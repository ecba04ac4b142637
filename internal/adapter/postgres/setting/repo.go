// Package setting implements the settings repository using PostgreSQL.
package setting

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contactdesk/backend/internal/adapter/postgres"
	"github.com/contactdesk/backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides settings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new settings repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the setting with the given key.
func (r *Repo) Get(ctx context.Context, key string) (*domain.Setting, error) {
	sqlStr, args, err := qb.Select("key", "value", "description").
		From("settings").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get setting: %w", err)
	}

	var s domain.Setting
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&s.Key, &s.Value, &s.Description); err != nil {
		return nil, postgres.MapError(err, "setting", key)
	}
	return &s, nil
}

// Save upserts the setting by key.
func (r *Repo) Save(ctx context.Context, s domain.Setting) error {
	sqlStr, args, err := qb.Insert("settings").
		Columns("key", "value", "description").
		Values(s.Key, s.Value, s.Description).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, description = EXCLUDED.description").
		ToSql()
	if err != nil {
		return fmt.Errorf("build save setting: %w", err)
	}

	if _, err := r.pool.Exec(ctx, sqlStr, args...); err != nil {
		return postgres.MapError(err, "setting", s.Key)
	}
	return nil
}
