package sheet

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record is one logical entity as a mapping of column name to value.
type Record map[string]any

// Codec converts between flat rows and records for one schema.
type Codec struct {
	schema Schema
}

// NewCodec creates a codec bound to the given schema.
func NewCodec(schema Schema) Codec {
	return Codec{schema: schema}
}

// Decode converts a raw row into a record, positionally by schema order.
// Rows shorter than the schema are padded with empty cells. Malformed
// composite cells never fail the decode: legacy or hand-edited data must not
// block reads, so they degrade to an empty map or slice.
func (c Codec) Decode(row []string) Record {
	rec := make(Record, len(c.schema.Fields))
	for i, f := range c.schema.Fields {
		var cell string
		if i < len(row) {
			cell = row[i]
		}
		rec[f.Name] = decodeCell(f.Type, cell)
	}
	return rec
}

// Encode converts a record into a raw row in schema order. Absent fields
// become empty cells and record keys outside the schema are dropped, so the
// row width always equals the header count.
func (c Codec) Encode(rec Record) []string {
	row := make([]string, len(c.schema.Fields))
	for i, f := range c.schema.Fields {
		row[i] = encodeCell(f.Type, rec[f.Name])
	}
	return row
}

func decodeCell(t FieldType, cell string) any {
	switch t {
	case FieldObject:
		var v any
		if err := json.Unmarshal([]byte(cell), &v); err == nil {
			if m, ok := v.(map[string]any); ok {
				return m
			}
		}
		return map[string]any{}
	case FieldArray:
		var v any
		if err := json.Unmarshal([]byte(cell), &v); err == nil {
			if s, ok := v.([]any); ok {
				return s
			}
		}
		return []any{}
	case FieldNumber:
		n, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return float64(0)
		}
		return n
	case FieldTimestamp:
		if cell == "" {
			return ""
		}
		return NormalizeTimestamp(cell)
	default:
		return cell
	}
}

func encodeCell(t FieldType, v any) string {
	if v == nil {
		return ""
	}
	switch t {
	case FieldObject, FieldArray:
		// Strings pass through unchanged: they are assumed to already be
		// the encoded form (round-tripping a raw row).
		if s, ok := v.(string); ok {
			return s
		}
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	case FieldNumber:
		switch n := v.(type) {
		case float64:
			return strconv.FormatFloat(n, 'f', -1, 64)
		case int:
			return strconv.Itoa(n)
		default:
			return fmt.Sprint(v)
		}
	default:
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprint(v)
	}
}

// timestampLayouts are tried in order when normalizing a timestamp cell.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// NormalizeTimestamp parses a date-like cell and reformats it as RFC 3339
// UTC, keeping any fractional seconds the cell carries. Values that match no
// known layout are returned unchanged rather than failing the read.
func NormalizeTimestamp(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(time.RFC3339Nano)
		}
	}
	return s
}

// ToRecord converts a typed struct into a record via its JSON field names.
func ToRecord(v any) (Record, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	return rec, nil
}

// FromRecord converts a record back into a typed struct via its JSON field
// names. dst must be a pointer.
func FromRecord(rec Record, dst any) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	return nil
}
