// Package logger builds the service-wide zerolog logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns the logger every component shares: JSON to stderr, tagged
// with the service name. HEARTHKEEP_LOG_LEVEL overrides the default info
// level; an unparsable value is ignored rather than fatal.
func New(serviceName string) zerolog.Logger {
	level := zerolog.InfoLevel
	if v := os.Getenv("HEARTHKEEP_LOG_LEVEL"); v != "" {
		if l, err := zerolog.ParseLevel(v); err == nil {
			level = l
		}
	}
	return zerolog.New(os.Stderr).Level(level).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}
