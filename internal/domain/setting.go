package domain

// Setting is a single key/value configuration row. Keys are unique;
// writing an existing key updates the value in place. Description is
// advisory and never interpreted.
type Setting struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description"`
}
