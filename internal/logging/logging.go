// Package logging configures a single stage-tagged logger for a run,
// carrying structured per-request logging over to per-job logging for a
// batch CLI.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console-formatted logger writing to w, with human-readable
// output for stderr messages.
func New(w io.Writer) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(console).With().Timestamp().Logger()
}

// Stage returns a child logger tagged with the processing stage and file
// under work, so every log line traces back to a specific job without any
// shared mutable logger state across workers.
func Stage(log zerolog.Logger, stage, file string) zerolog.Logger {
	return log.With().Str("stage", stage).Str("file", file).Logger()
}
