package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"pixabaymcp/internal/httputil"
)

// RequestID tags every request with a correlation ID, exposed to
// handlers via the context and echoed to clients in the X-Request-ID
// header. A client-supplied ID is kept so gateway-assigned IDs
// survive the hop.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, httputil.WithRequestID(r, id))
	})
}
