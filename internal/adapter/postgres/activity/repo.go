// Package activity implements the activity repository using PostgreSQL.
package activity

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contactdesk/backend/internal/adapter/postgres"
	"github.com/contactdesk/backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{"id", "contact_id", "type", "notes", "date", "user_name", "metadata"}

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns every activity in insertion order.
func (r *Repo) List(ctx context.Context) ([]domain.Activity, error) {
	sqlStr, args, err := qb.Select(columns...).From("activities").OrderBy("seq").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list activities: %w", err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, postgres.MapError(err, "activity", "")
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.ContactID, &a.Type, &a.Notes, &a.Date, &a.User, &a.Metadata); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "activity", "")
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	return activities, nil
}

// Save upserts the activity by identifier. Returns true when a new row was
// inserted rather than an existing one updated.
func (r *Repo) Save(ctx context.Context, a domain.Activity) (bool, error) {
	sqlStr, args, err := qb.Insert("activities").
		Columns(columns...).
		Values(a.ID, a.ContactID, a.Type, a.Notes, a.Date, a.User, postgres.JSONValue(a.Metadata)).
		Suffix("ON CONFLICT (id) DO UPDATE SET " + postgres.ExcludedSet(columns[1:]) +
			" RETURNING (xmax = 0) AS inserted").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build save activity: %w", err)
	}

	var created bool
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&created); err != nil {
		return false, postgres.MapError(err, "activity", a.ID)
	}
	return created, nil
}

// DeleteByID removes the activity with the given identifier.
func (r *Repo) DeleteByID(ctx context.Context, id string) error {
	sqlStr, args, err := qb.Delete("activities").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete activity: %w", err)
	}

	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return postgres.MapError(err, "activity", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("activity", id)
	}
	return nil
}

// DeleteByContactID removes every activity referencing the given contact and
// returns the number removed.
func (r *Repo) DeleteByContactID(ctx context.Context, contactID string) (int, error) {
	sqlStr, args, err := qb.Delete("activities").Where(sq.Eq{"contact_id": contactID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build cascade delete: %w", err)
	}

	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return 0, postgres.MapError(err, "activity", contactID)
	}
	return int(tag.RowsAffected()), nil
}
