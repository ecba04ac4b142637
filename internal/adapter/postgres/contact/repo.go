// Package contact implements the contact repository using PostgreSQL.
package contact

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contactdesk/backend/internal/adapter/postgres"
	"github.com/contactdesk/backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "project_id", "type", "name", "title", "company", "industry",
	"email", "linkedin", "phone", "status", "priority", "assignee",
	"next_follow_up", "notes", "score", "score_breakdown", "tags",
	"date_added", "last_modified", "last_contacted", "assignment_history",
}

// Repo provides contact persistence backed by PostgreSQL. Composite fields
// live in JSONB columns; timestamps stay text to mirror the sheet backend's
// cell semantics (arbitrary client strings must round-trip unchanged).
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new contact repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns every contact in insertion order.
func (r *Repo) List(ctx context.Context) ([]domain.Contact, error) {
	sqlStr, args, err := qb.Select(columns...).From("contacts").OrderBy("seq").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list contacts: %w", err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, postgres.MapError(err, "contact", "")
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "contact", "")
	}
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	return contacts, nil
}

// GetByID returns the contact with the given identifier.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	sqlStr, args, err := qb.Select(columns...).From("contacts").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get contact: %w", err)
	}

	c, err := scanContact(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "contact", id)
	}
	return &c, nil
}

// Save upserts the contact by identifier. Returns true when a new row was
// inserted rather than an existing one updated.
func (r *Repo) Save(ctx context.Context, c domain.Contact) (bool, error) {
	sqlStr, args, err := qb.Insert("contacts").
		Columns(columns...).
		Values(
			c.ID, c.ProjectID, c.Type, c.Name, c.Title, c.Company, c.Industry,
			c.Email, c.LinkedIn, c.Phone, c.Status, c.Priority, c.Assignee,
			c.NextFollowUp, c.Notes, c.Score, postgres.JSONValue(c.ScoreBreakdown),
			postgres.JSONValue(c.Tags), c.DateAdded, c.LastModified, c.LastContacted,
			postgres.JSONValue(c.AssignmentHistory),
		).
		Suffix("ON CONFLICT (id) DO UPDATE SET " + postgres.ExcludedSet(columns[1:]) +
			" RETURNING (xmax = 0) AS inserted").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build save contact: %w", err)
	}

	var created bool
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&created); err != nil {
		return false, postgres.MapError(err, "contact", c.ID)
	}
	return created, nil
}

// DeleteByID removes the contact with the given identifier.
func (r *Repo) DeleteByID(ctx context.Context, id string) error {
	sqlStr, args, err := qb.Delete("contacts").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete contact: %w", err)
	}

	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return postgres.MapError(err, "contact", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("contact", id)
	}
	return nil
}

// scanContact reads one row in columns order.
func scanContact(row interface{ Scan(dest ...any) error }) (domain.Contact, error) {
	var c domain.Contact
	err := row.Scan(
		&c.ID, &c.ProjectID, &c.Type, &c.Name, &c.Title, &c.Company,
		&c.Industry, &c.Email, &c.LinkedIn, &c.Phone, &c.Status, &c.Priority,
		&c.Assignee, &c.NextFollowUp, &c.Notes, &c.Score, &c.ScoreBreakdown,
		&c.Tags, &c.DateAdded, &c.LastModified, &c.LastContacted,
		&c.AssignmentHistory,
	)
	return c, err
}

