package harness

import (
	"io"
	"log/slog"
)

// Option configures a Runner.
type Option func(*Runner)

// WithConfig replaces the measurement configuration (validated in New).
func WithConfig(cfg Config) Option {
	return func(r *Runner) { r.cfg = cfg }
}

// WithLogger injects the progress logger. nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithSessionID pins the session identifier stamped on the Report.
// An empty id keeps the generated one.
func WithSessionID(id string) Option {
	return func(r *Runner) {
		if id != "" {
			r.sessionID = id
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
