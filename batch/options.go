package batch

import (
	"log/slog"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
)

// Option customizes a Runner.
type Option func(*Runner)

// WithWorkers bounds the number of queries solved at once.
// k <= 0 selects runtime.NumCPU().
func WithWorkers(k int) Option {
	return func(r *Runner) {
		if k <= 0 {
			k = runtime.NumCPU()
		}
		r.workers = k
	}
}

// WithLogger sets the logger; nil keeps the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithRegisterer sets where metrics are registered. Collectors already
// registered by another Runner on the same registerer are shared.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(r *Runner) {
		if reg != nil {
			r.registerer = reg
		}
	}
}

// WithValidation toggles Query.Validate before solving (default on).
func WithValidation(on bool) Option {
	return func(r *Runner) {
		r.validate = on
	}
}
