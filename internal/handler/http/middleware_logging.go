package http

import (
	"net/http"
	"time"

	"github.com/avrorin/go-task-auth/internal/logger"
)

// withLogging emits one structured access-log line per request: method, URI,
// response status, duration, and body size. It relies on the trace-ID
// middleware having attached a request-scoped logger to the context.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
