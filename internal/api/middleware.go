package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hearthkeep/hearthkeep/internal/api/respond"
	"github.com/hearthkeep/hearthkeep/internal/session"
)

// requestLogging tags every request with a uuid and logs method, path,
// status and duration.
func requestLogging(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := uuid.NewString()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", sw.status).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// gateExempt lists paths reachable while the gate is closed.
var gateExempt = map[string]bool{
	"/api/session/login": true,
	"/api/session":       true,
	"/api/health":        true,
}

// requireSession rejects requests while the shared-password gate is
// closed. This is a courtesy curtain for the family site, not a security
// boundary.
func requireSession(gate *session.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !gateExempt[r.URL.Path] && !gate.Active() {
				respond.WriteError(w, http.StatusUnauthorized, "locked: log in first")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
