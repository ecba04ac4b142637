// Package sheet implements a row-oriented table store with a fixed,
// header-defined schema, in the spirit of a spreadsheet tab: ordered rows of
// scalar cells, composite values JSON-encoded into single cells. It is the
// default storage backend and the reference contract the postgres adapter
// mirrors.
package sheet

// FieldType describes how a cell value is decoded and encoded.
type FieldType string

const (
	// FieldString passes the cell value through unchanged.
	FieldString FieldType = "string"
	// FieldNumber parses the cell as a float; unparsable cells decode to 0.
	FieldNumber FieldType = "number"
	// FieldTimestamp normalizes non-empty cells to RFC 3339 UTC.
	FieldTimestamp FieldType = "timestamp"
	// FieldObject holds a JSON object; malformed cells decode to an empty map.
	FieldObject FieldType = "object"
	// FieldArray holds a JSON array; malformed cells decode to an empty slice.
	FieldArray FieldType = "array"
)

// Field is a single named column.
type Field struct {
	Name string
	Type FieldType
}

// Schema is the ordered column layout of one table. The first field is the
// identifier column used by FindIndexByID. Required marks tables whose
// absence from the backing store is a deployment fault rather than an empty
// dataset.
type Schema struct {
	Name     string
	Required bool
	Fields   []Field
}

// Headers returns the column names in schema order.
func (s Schema) Headers() []string {
	headers := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		headers[i] = f.Name
	}
	return headers
}

// IDColumn returns the name of the identifier column.
func (s Schema) IDColumn() string { return s.Fields[0].Name }

// Contacts is the schema of the contacts table.
var Contacts = Schema{
	Name:     "Contacts",
	Required: true,
	Fields: []Field{
		{Name: "id", Type: FieldString},
		{Name: "projectId", Type: FieldString},
		{Name: "type", Type: FieldString},
		{Name: "name", Type: FieldString},
		{Name: "title", Type: FieldString},
		{Name: "company", Type: FieldString},
		{Name: "industry", Type: FieldString},
		{Name: "email", Type: FieldString},
		{Name: "linkedin", Type: FieldString},
		{Name: "phone", Type: FieldString},
		{Name: "status", Type: FieldString},
		{Name: "priority", Type: FieldString},
		{Name: "assignee", Type: FieldString},
		{Name: "nextFollowUp", Type: FieldTimestamp},
		{Name: "notes", Type: FieldString},
		{Name: "score", Type: FieldNumber},
		{Name: "scoreBreakdown", Type: FieldObject},
		{Name: "tags", Type: FieldArray},
		{Name: "dateAdded", Type: FieldTimestamp},
		{Name: "lastModified", Type: FieldTimestamp},
		{Name: "lastContacted", Type: FieldTimestamp},
		{Name: "assignmentHistory", Type: FieldArray},
	},
}

// Activities is the schema of the activities table. It is optional: a
// missing activities table reads as zero activities.
var Activities = Schema{
	Name: "Activities",
	Fields: []Field{
		{Name: "id", Type: FieldString},
		{Name: "contactId", Type: FieldString},
		{Name: "type", Type: FieldString},
		{Name: "notes", Type: FieldString},
		{Name: "date", Type: FieldTimestamp},
		{Name: "user", Type: FieldString},
		{Name: "metadata", Type: FieldObject},
	},
}

// Settings is the schema of the settings table.
var Settings = Schema{
	Name: "Settings",
	Fields: []Field{
		{Name: "key", Type: FieldString},
		{Name: "value", Type: FieldString},
		{Name: "description", Type: FieldString},
	},
}
