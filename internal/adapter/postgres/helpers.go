package postgres

import "strings"

// ExcludedSet renders "col = EXCLUDED.col, ..." for an upsert SET list.
func ExcludedSet(cols []string) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = col + " = EXCLUDED." + col
	}
	return strings.Join(parts, ", ")
}

// JSONValue hands a composite value to pgx for a JSONB column, normalizing
// nil maps and slices to their empty encoded form so the column never holds
// JSON null.
func JSONValue(v any) any {
	switch c := v.(type) {
	case map[string]float64:
		if c == nil {
			return map[string]float64{}
		}
	case map[string]any:
		if c == nil {
			return map[string]any{}
		}
	case []string:
		if c == nil {
			return []string{}
		}
	case []map[string]any:
		if c == nil {
			return []map[string]any{}
		}
	}
	return v
}
