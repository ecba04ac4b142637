package rest

import (
	"net/http"
)

// NewRouter wires the dispatcher and health endpoints onto a ServeMux.
// The dispatcher mirrors the original two-entry-point contract: one read
// route, one action-dispatching write route.
func NewRouter(d *Dispatcher, h *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api", d.Read)
	mux.HandleFunc("POST /api", d.Write)

	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /health/live", h.Live)
	mux.HandleFunc("GET /health/ready", h.Ready)

	return mux
}
