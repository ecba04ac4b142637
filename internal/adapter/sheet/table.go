package sheet

import (
	"fmt"
	"sync"
)

// RowSource is the minimal contract a row-oriented backing store must
// satisfy: data rows (header excluded) in append order, replaced wholesale
// on write. A read of a missing required table returns
// domain.ErrSchemaMissing; a missing optional table reads as zero rows.
type RowSource interface {
	ReadAll() ([][]string, error)
	WriteAll(rows [][]string) error
}

// Table exposes generic CRUD operations over one schema-bound row source.
//
// A mutex serializes every operation: the find-then-write sequences used by
// callers are read-modify-write and two interleaved requests could otherwise
// insert duplicate identifiers or lose an update. This guards a single
// process only; concurrent processes sharing one backing file are not safe.
type Table struct {
	mu     sync.Mutex
	schema Schema
	codec  Codec
	source RowSource
}

// NewTable creates a table over the given source.
func NewTable(schema Schema, source RowSource) *Table {
	return &Table{schema: schema, codec: NewCodec(schema), source: source}
}

// Schema returns the table's schema.
func (t *Table) Schema() Schema { return t.schema }

// ListAll decodes every stored row in append order. A table with no data
// rows yields an empty slice, not an error.
func (t *Table) ListAll() ([]Record, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, err := t.source.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("table %s: read: %w", t.schema.Name, err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, t.codec.Decode(row))
	}
	return records, nil
}

// FindIndexByID scans the identifier column and returns the position of the
// first matching row. The store never enforces uniqueness; callers must not
// create duplicates.
func (t *Table) FindIndexByID(id string) (int, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.findIndex(id)
}

// Insert encodes the record and appends it as a new row.
func (t *Table) Insert(rec Record) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, err := t.source.ReadAll()
	if err != nil {
		return fmt.Errorf("table %s: read: %w", t.schema.Name, err)
	}
	rows = append(rows, t.codec.Encode(rec))
	if err := t.source.WriteAll(rows); err != nil {
		return fmt.Errorf("table %s: write: %w", t.schema.Name, err)
	}
	return nil
}

// Update overwrites the row at the given position in place.
func (t *Table) Update(pos int, rec Record) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, err := t.source.ReadAll()
	if err != nil {
		return fmt.Errorf("table %s: read: %w", t.schema.Name, err)
	}
	if pos < 0 || pos >= len(rows) {
		return fmt.Errorf("table %s: update position %d out of range", t.schema.Name, pos)
	}
	rows[pos] = t.codec.Encode(rec)
	if err := t.source.WriteAll(rows); err != nil {
		return fmt.Errorf("table %s: write: %w", t.schema.Name, err)
	}
	return nil
}

// DeleteAt removes the row at the given position; later rows shift up.
func (t *Table) DeleteAt(pos int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, err := t.source.ReadAll()
	if err != nil {
		return fmt.Errorf("table %s: read: %w", t.schema.Name, err)
	}
	if pos < 0 || pos >= len(rows) {
		return fmt.Errorf("table %s: delete position %d out of range", t.schema.Name, pos)
	}
	rows = append(rows[:pos], rows[pos+1:]...)
	if err := t.source.WriteAll(rows); err != nil {
		return fmt.Errorf("table %s: write: %w", t.schema.Name, err)
	}
	return nil
}

// DeleteWhere removes every row whose decoded record satisfies pred and
// returns the number removed. Rows are walked back to front so positions
// remain stable while deleting.
func (t *Table) DeleteWhere(pred func(Record) bool) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, err := t.source.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("table %s: read: %w", t.schema.Name, err)
	}

	deleted := 0
	for i := len(rows) - 1; i >= 0; i-- {
		if pred(t.codec.Decode(rows[i])) {
			rows = append(rows[:i], rows[i+1:]...)
			deleted++
		}
	}
	if deleted == 0 {
		return 0, nil
	}
	if err := t.source.WriteAll(rows); err != nil {
		return 0, fmt.Errorf("table %s: write: %w", t.schema.Name, err)
	}
	return deleted, nil
}

// GetAt decodes the row at the given position.
func (t *Table) GetAt(pos int) (Record, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, err := t.source.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("table %s: read: %w", t.schema.Name, err)
	}
	if pos < 0 || pos >= len(rows) {
		return nil, fmt.Errorf("table %s: position %d out of range", t.schema.Name, pos)
	}
	return t.codec.Decode(rows[pos]), nil
}

// GetByID returns the decoded record of the first row whose identifier
// column matches id.
func (t *Table) GetByID(id string) (Record, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, err := t.source.ReadAll()
	if err != nil {
		return nil, false, fmt.Errorf("table %s: read: %w", t.schema.Name, err)
	}
	for _, row := range rows {
		if len(row) > 0 && row[0] == id {
			return t.codec.Decode(row), true, nil
		}
	}
	return nil, false, nil
}

// SaveByID inserts the record when its identifier is new and overwrites the
// existing row otherwise. The lookup and the write happen under one lock so
// two concurrent saves of the same identifier cannot both insert. Returns
// true when a new row was created.
func (t *Table) SaveByID(rec Record) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, err := t.source.ReadAll()
	if err != nil {
		return false, fmt.Errorf("table %s: read: %w", t.schema.Name, err)
	}

	row := t.codec.Encode(rec)
	id := row[0]
	for i, existing := range rows {
		if len(existing) > 0 && existing[0] == id {
			rows[i] = row
			if err := t.source.WriteAll(rows); err != nil {
				return false, fmt.Errorf("table %s: write: %w", t.schema.Name, err)
			}
			return false, nil
		}
	}

	rows = append(rows, row)
	if err := t.source.WriteAll(rows); err != nil {
		return false, fmt.Errorf("table %s: write: %w", t.schema.Name, err)
	}
	return true, nil
}

// DeleteByID removes the first row whose identifier column matches id.
// Returns false when no row matched.
func (t *Table) DeleteByID(id string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, err := t.source.ReadAll()
	if err != nil {
		return false, fmt.Errorf("table %s: read: %w", t.schema.Name, err)
	}
	for i, row := range rows {
		if len(row) > 0 && row[0] == id {
			rows = append(rows[:i], rows[i+1:]...)
			if err := t.source.WriteAll(rows); err != nil {
				return false, fmt.Errorf("table %s: write: %w", t.schema.Name, err)
			}
			return true, nil
		}
	}
	return false, nil
}

func (t *Table) findIndex(id string) (int, bool, error) {
	rows, err := t.source.ReadAll()
	if err != nil {
		return -1, false, fmt.Errorf("table %s: read: %w", t.schema.Name, err)
	}
	for i, row := range rows {
		if len(row) > 0 && row[0] == id {
			return i, true, nil
		}
	}
	return -1, false, nil
}
