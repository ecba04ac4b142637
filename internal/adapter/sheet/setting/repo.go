// Package setting implements the settings repository over a sheet table.
package setting

import (
	"context"
	"fmt"

	"github.com/contactdesk/backend/internal/adapter/sheet"
	"github.com/contactdesk/backend/internal/domain"
)

// Repo provides settings persistence backed by a sheet table.
type Repo struct {
	table *sheet.Table
}

// New creates a settings repository over the given table. The table must use
// the sheet.Settings schema.
func New(table *sheet.Table) *Repo {
	return &Repo{table: table}
}

// Get returns the setting with the given key.
func (r *Repo) Get(_ context.Context, key string) (*domain.Setting, error) {
	rec, found, err := r.table.GetByID(key)
	if err != nil {
		return nil, fmt.Errorf("get setting: %w", err)
	}
	if !found {
		return nil, domain.NewNotFoundError("setting", key)
	}

	var s domain.Setting
	if err := sheet.FromRecord(rec, &s); err != nil {
		return nil, fmt.Errorf("decode setting %s: %w", key, err)
	}
	return &s, nil
}

// Save inserts the setting when its key is new and overwrites the existing
// row in place otherwise.
func (r *Repo) Save(_ context.Context, s domain.Setting) error {
	rec, err := sheet.ToRecord(s)
	if err != nil {
		return fmt.Errorf("encode setting %s: %w", s.Key, err)
	}
	if _, err := r.table.SaveByID(rec); err != nil {
		return fmt.Errorf("save setting %s: %w", s.Key, err)
	}
	return nil
}
