// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the parallel multiplication
// strategies and documented session defaults. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSize is the reference edge length of the square operands.
	DefaultSize = 500

	// DefaultMinValue is the inclusive lower bound of generated entries.
	DefaultMinValue int32 = 1

	// DefaultMaxValue is the exclusive upper bound of generated entries.
	DefaultMaxValue int32 = 10

	// DefaultSeed seeds the session generator when none is configured.
	DefaultSeed int64 = 42

	// DefaultWorkers selects hardware parallelism (parallel.DefaultWorkers).
	DefaultWorkers = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const panicWorkersInvalid = "matrix: WithWorkers: workers must be >= 0"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	workers int // >= 0; 0 ⇒ hardware parallelism
}

// Workers returns the configured worker count (0 ⇒ hardware parallelism).
func (o Options) Workers() int { return o.workers }

// WithWorkers bounds the number of goroutines used by the parallel strategies.
// workers == 0 selects hardware parallelism.
// Panics with a stable message when workers < 0.
func WithWorkers(workers int) Option {
	if workers < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// NewOptions resolves opts over the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies opts in order over defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
