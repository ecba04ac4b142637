package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/contactdesk/backend/internal/domain"
)

// FileSource stores one table as a CSV file (header row first) under a data
// directory. Every write rewrites the file through a temp file + rename so a
// crash mid-write never leaves a truncated table behind.
type FileSource struct {
	schema Schema
	path   string
}

// NewFileSource creates a CSV-backed row source for the given schema.
// The file lives at <dir>/<lowercase table name>.csv.
func NewFileSource(dir string, schema Schema) *FileSource {
	return &FileSource{
		schema: schema,
		path:   filepath.Join(dir, strings.ToLower(schema.Name)+".csv"),
	}
}

// Path returns the backing file path.
func (s *FileSource) Path() string { return s.path }

// ReadAll returns every data row. A missing file means an empty table for
// optional schemas; for required schemas it indicates a broken deployment
// and surfaces domain.ErrSchemaMissing.
func (s *FileSource) ReadAll() ([][]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if s.schema.Required {
				return nil, fmt.Errorf("%s: %w", s.schema.Name, domain.ErrSchemaMissing)
			}
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged legacy rows; the codec pads
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(all) == 0 {
		return nil, nil
	}
	// First row is the header.
	return all[1:], nil
}

// WriteAll atomically replaces the table contents, header included.
func (s *FileSource) WriteAll(rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	w := csv.NewWriter(tmp)
	if err := w.Write(s.schema.Headers()); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		return fmt.Errorf("write rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

// Bootstrap creates missing table files with their header rows. Existing
// files are left untouched, so it is safe to run on every startup.
func Bootstrap(dir string, schemas ...Schema) error {
	for _, schema := range schemas {
		src := NewFileSource(dir, schema)
		if _, err := os.Stat(src.path); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", src.path, err)
		}
		if err := src.WriteAll(nil); err != nil {
			return fmt.Errorf("bootstrap %s: %w", schema.Name, err)
		}
	}
	return nil
}
