// Package recovery keeps a panicking handler from taking the whole
// family site down with it.
package recovery

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/hearthkeep/hearthkeep/internal/api/respond"
)

// Middleware intercepts panics from downstream handlers, logs the stack,
// and answers with the API's standard 500 payload.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("panic", rec).
					Str("method", r.Method).
					Str("url", r.URL.String()).
					Str("remote", r.RemoteAddr).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				respond.WriteInternalError(w, "unexpected server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
