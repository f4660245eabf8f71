package loop

import (
	"log/slog"

	"github.com/hackebrot/go-event-loop/pkg/scheduler"
)

// Option configures a Loop.
type Option func(*Loop)

// WithObserver registers an observer for trace events.
func WithObserver(obs scheduler.Observer) Option {
	return func(l *Loop) {
		l.observer = obs
	}
}

// WithLogger sets the logger used for diagnostics. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithFaultIsolation makes the loop contain task failures: panics are
// recovered and errors are logged, and draining continues with the next task.
// This changes observable ordering compared to the default, where the first
// failure aborts the rest of the tick.
func WithFaultIsolation() Option {
	return func(l *Loop) {
		l.isolateFaults = true
	}
}
