package sheet

import (
	"fmt"

	"github.com/contactdesk/backend/internal/domain"
)

// MemorySource keeps rows in memory. It backs tests and ephemeral runs.
// The zero value is an existing, empty table.
type MemorySource struct {
	rows [][]string

	// Missing simulates a table absent from the backing store.
	Missing bool
	// Schema's Required flag decides whether Missing is fatal.
	Schema Schema
}

// NewMemorySource creates an in-memory source seeded with the given rows.
func NewMemorySource(schema Schema, rows ...[]string) *MemorySource {
	return &MemorySource{Schema: schema, rows: rows}
}

// ReadAll returns a copy of the stored rows.
func (s *MemorySource) ReadAll() ([][]string, error) {
	if s.Missing {
		if s.Schema.Required {
			return nil, fmt.Errorf("%s: %w", s.Schema.Name, domain.ErrSchemaMissing)
		}
		return nil, nil
	}
	out := make([][]string, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

// WriteAll replaces the stored rows.
func (s *MemorySource) WriteAll(rows [][]string) error {
	if s.Missing {
		return fmt.Errorf("%s: %w", s.Schema.Name, domain.ErrSchemaMissing)
	}
	s.rows = rows
	return nil
}
