// Package contact implements the contact repository over a sheet table.
package contact

import (
	"context"
	"fmt"

	"github.com/contactdesk/backend/internal/adapter/sheet"
	"github.com/contactdesk/backend/internal/domain"
)

// Repo provides contact persistence backed by a sheet table.
type Repo struct {
	table *sheet.Table
}

// New creates a contact repository over the given table. The table must use
// the sheet.Contacts schema.
func New(table *sheet.Table) *Repo {
	return &Repo{table: table}
}

// List returns every contact in append order.
func (r *Repo) List(_ context.Context) ([]domain.Contact, error) {
	records, err := r.table.ListAll()
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	contacts := make([]domain.Contact, 0, len(records))
	for _, rec := range records {
		var c domain.Contact
		if err := sheet.FromRecord(rec, &c); err != nil {
			return nil, fmt.Errorf("decode contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

// GetByID returns the contact with the given identifier.
func (r *Repo) GetByID(_ context.Context, id string) (*domain.Contact, error) {
	rec, found, err := r.table.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	if !found {
		return nil, domain.NewNotFoundError("contact", id)
	}

	var c domain.Contact
	if err := sheet.FromRecord(rec, &c); err != nil {
		return nil, fmt.Errorf("decode contact %s: %w", id, err)
	}
	return &c, nil
}

// Save inserts the contact when its identifier is new and overwrites the
// existing row otherwise. Returns true when a new row was created.
func (r *Repo) Save(_ context.Context, c domain.Contact) (bool, error) {
	rec, err := sheet.ToRecord(c)
	if err != nil {
		return false, fmt.Errorf("encode contact %s: %w", c.ID, err)
	}
	created, err := r.table.SaveByID(rec)
	if err != nil {
		return false, fmt.Errorf("save contact %s: %w", c.ID, err)
	}
	return created, nil
}

// DeleteByID removes the contact with the given identifier.
func (r *Repo) DeleteByID(_ context.Context, id string) error {
	deleted, err := r.table.DeleteByID(id)
	if err != nil {
		return fmt.Errorf("delete contact %s: %w", id, err)
	}
	if !deleted {
		return domain.NewNotFoundError("contact", id)
	}
	return nil
}
