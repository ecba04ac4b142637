package domain

// Contact is a single CRM contact. All timestamp fields hold RFC 3339 UTC
// strings ("" means unset) because the backing stores are cell/text oriented
// and clients exchange them as strings.
//
// Type, Status and Priority are open string sets: the UI conventionally sends
// values like "Individual", "New" or "Medium", but the backend does not
// enforce a closed enumeration.
type Contact struct {
	ID                string             `json:"id"`
	ProjectID         string             `json:"projectId"`
	Type              string             `json:"type"`
	Name              string             `json:"name"`
	Title             string             `json:"title"`
	Company           string             `json:"company"`
	Industry          string             `json:"industry"`
	Email             string             `json:"email"`
	LinkedIn          string             `json:"linkedin"`
	Phone             string             `json:"phone"`
	Status            string             `json:"status"`
	Priority          string             `json:"priority"`
	Assignee          string             `json:"assignee"`
	NextFollowUp      string             `json:"nextFollowUp"`
	Notes             string             `json:"notes"`
	Score             float64            `json:"score"`
	ScoreBreakdown    map[string]float64 `json:"scoreBreakdown"`
	Tags              []string           `json:"tags"`
	DateAdded         string             `json:"dateAdded"`
	LastModified      string             `json:"lastModified"`
	LastContacted     string             `json:"lastContacted"`
	AssignmentHistory []map[string]any   `json:"assignmentHistory"`
}

// Conventional values seen in payloads. Advisory only, never validated.
const (
	ContactTypeIndividual   = "Individual"
	ContactTypeOrganization = "Organization"
)
