// Package activity implements the activity repository over a sheet table.
package activity

import (
	"context"
	"fmt"

	"github.com/contactdesk/backend/internal/adapter/sheet"
	"github.com/contactdesk/backend/internal/domain"
)

// Repo provides activity persistence backed by a sheet table.
type Repo struct {
	table *sheet.Table
}

// New creates an activity repository over the given table. The table must
// use the sheet.Activities schema.
func New(table *sheet.Table) *Repo {
	return &Repo{table: table}
}

// List returns every activity in append order. A missing activities table
// reads as zero activities.
func (r *Repo) List(_ context.Context) ([]domain.Activity, error) {
	records, err := r.table.ListAll()
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	activities := make([]domain.Activity, 0, len(records))
	for _, rec := range records {
		var a domain.Activity
		if err := sheet.FromRecord(rec, &a); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, nil
}

// Save inserts the activity when its identifier is new and overwrites the
// existing row otherwise. Returns true when a new row was created.
func (r *Repo) Save(_ context.Context, a domain.Activity) (bool, error) {
	rec, err := sheet.ToRecord(a)
	if err != nil {
		return false, fmt.Errorf("encode activity %s: %w", a.ID, err)
	}
	created, err := r.table.SaveByID(rec)
	if err != nil {
		return false, fmt.Errorf("save activity %s: %w", a.ID, err)
	}
	return created, nil
}

// DeleteByID removes the activity with the given identifier.
func (r *Repo) DeleteByID(_ context.Context, id string) error {
	deleted, err := r.table.DeleteByID(id)
	if err != nil {
		return fmt.Errorf("delete activity %s: %w", id, err)
	}
	if !deleted {
		return domain.NewNotFoundError("activity", id)
	}
	return nil
}

// DeleteByContactID removes every activity referencing the given contact and
// returns the number removed.
func (r *Repo) DeleteByContactID(_ context.Context, contactID string) (int, error) {
	deleted, err := r.table.DeleteWhere(func(rec sheet.Record) bool {
		id, _ := rec["contactId"].(string)
		return id == contactID
	})
	if err != nil {
		return 0, fmt.Errorf("delete activities of contact %s: %w", contactID, err)
	}
	return deleted, nil
}
