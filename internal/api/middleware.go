package api

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDMiddleware tags every request with an X-Request-ID so access log
// lines can be correlated with the bot's own logs. An incoming id is kept.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r)
	})
}
