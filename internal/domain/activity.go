package domain

// Activity is a dated interaction attached to a contact (call, email, note).
// ContactID references Contact.ID; the reference is enforced by the record
// service, not by the store. Date holds an RFC 3339 UTC string and defaults
// to the creation time when a client omits it.
type Activity struct {
	ID        string         `json:"id"`
	ContactID string         `json:"contactId"`
	Type      string         `json:"type"`
	Notes     string         `json:"notes"`
	Date      string         `json:"date"`
	User      string         `json:"user"`
	Metadata  map[string]any `json:"metadata"`
}
