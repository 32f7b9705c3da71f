package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New constructs the process-wide zerolog logger.
// JSON to stdout; level falls back to info when unparseable.
func New(level string) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(level); err == nil {
		lvl = parsed
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Str("app", "rentora").
		Logger()
}
