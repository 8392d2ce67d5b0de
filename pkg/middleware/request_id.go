package middleware

import (
	"net/http"

	"movie-ticketing/pkg/utils"

	"github.com/google/uuid"
)

// RequestID tags every request with a correlation id, echoed back in the
// X-Request-ID header and attached to the request log line.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.New().String()
			}

			w.Header().Set("X-Request-ID", requestID)
			ctx := utils.SetRequestIDContext(r.Context(), requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
