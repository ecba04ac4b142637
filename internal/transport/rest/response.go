package rest

import (
	"encoding/json"
	"net/http"
	"time"
)

// Envelope is the uniform response wrapper. Callers branch on Success, not
// on the HTTP status: dispatcher endpoints always answer 200 and report
// failures inside the envelope.
type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Envelope{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func writeFailure(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, Envelope{
		Success:   false,
		Error:     message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
