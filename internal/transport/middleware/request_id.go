package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/contactdesk/backend/pkg/ctxutil"
)

// RequestIDHeader is the header carrying the request identifier.
const RequestIDHeader = "X-Request-Id"

// RequestID returns middleware that reuses an incoming request id or
// generates a fresh UUID, stores it in the context and echoes it back.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
