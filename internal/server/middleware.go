package server

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// loggingMiddleware logs each request's method, path, duration, and a
// generated correlation id, mirroring the teacher's cmd/explorer/middleware.go.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.New().String()
		w.Header().Set("X-Request-Id", reqID)
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s %s %s", reqID, r.Method, r.URL.Path, r.RemoteAddr, time.Since(start))
	})
}
