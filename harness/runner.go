// SPDX-License-Identifier: MIT

package harness

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
)

// Runner measures suites with a fixed configuration.
type Runner struct {
	cfg       Config
	logger    *slog.Logger
	sessionID string
}

// New builds a Runner from DefaultConfig overlaid with opts.
// Errors: ErrInvalidConfig.
func New(opts ...Option) (*Runner, error) {
	r := &Runner{
		cfg:       DefaultConfig(),
		logger:    discardLogger(),
		sessionID: uuid.NewString(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Config returns the effective configuration.
func (r *Runner) Config() Config { return r.cfg }

// SessionID returns the identifier stamped on every Report of this Runner.
func (r *Runner) SessionID() string { return r.sessionID }

// validateSuite checks names and callables before anything runs.
func validateSuite(s Suite) error {
	if len(s.Variants) == 0 {
		return fmt.Errorf("%s: %w", s.Name, ErrNoVariants)
	}
	seen := make(map[string]struct{}, len(s.Variants))
	for i, v := range s.Variants {
		if v.Fn == nil {
			return fmt.Errorf("%s: variant %d (%q): %w", s.Name, i, v.Name, ErrNilVariant)
		}
		if _, dup := seen[v.Name]; dup {
			return fmt.Errorf("%s: %q: %w", s.Name, v.Name, ErrDuplicateVariant)
		}
		seen[v.Name] = struct{}{}
	}

	return nil
}

// Run executes the suite session:
//   - Stage 1: validate the suite (names, callables).
//   - Stage 2: Setup once, then Verify once; either failure aborts the run.
//   - Stage 3: per variant, Warmup direct calls then Samples benchmark runs.
//   - Stage 4: summarize; Ratio is relative to the first variant's median.
//
// ctx is checked between samples only; a running sample is never interrupted.
func (r *Runner) Run(ctx context.Context, s Suite) (*Report, error) {
	if err := validateSuite(s); err != nil {
		return nil, err
	}
	log := r.logger.With("suite", s.Name)

	if s.Setup != nil {
		log.Debug("setup")
		if err := s.Setup(); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", s.Name, ErrSetup, err)
		}
	}
	if s.Verify != nil {
		log.Debug("verify")
		if err := s.Verify(); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", s.Name, ErrVerify, err)
		}
	}

	report := &Report{
		SessionID:  r.sessionID,
		Suite:      s.Name,
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Config:     r.cfg,
		Started:    time.Now(),
	}
	err := withBenchTime(r.cfg.BenchTime, func() error {
		for _, v := range s.Variants {
			res, err := r.measure(ctx, log, v)
			if err != nil {
				return err
			}
			report.Results = append(report.Results, res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	report.Elapsed = time.Since(report.Started)

	if base := report.Results[0].Median; base > 0 {
		for i := range report.Results {
			report.Results[i].Ratio = report.Results[i].Median / base
		}
	}
	log.Info("suite finished", "variants", len(report.Results), "elapsed", report.Elapsed)

	return report, nil
}

// measure warms up v and collects Samples benchmark results.
func (r *Runner) measure(ctx context.Context, log *slog.Logger, v Variant) (Result, error) {
	log = log.With("variant", v.Name)
	for i := 0; i < r.cfg.Warmup; i++ {
		v.Fn()
	}

	res := Result{Name: v.Name, Samples: make([]float64, 0, r.cfg.Samples)}
	for i := 0; i < r.cfg.Samples; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("%s: %w", v.Name, err)
		}
		br := testing.Benchmark(func(b *testing.B) {
			b.ReportAllocs()
			for n := 0; n < b.N; n++ {
				v.Fn()
			}
		})
		if br.N == 0 {
			return Result{}, fmt.Errorf("%s: sample %d produced no iterations", v.Name, i)
		}
		ns := float64(br.T.Nanoseconds()) / float64(br.N)
		res.Samples = append(res.Samples, ns)
		res.Iterations += br.N
		res.BytesPerOp = max(res.BytesPerOp, br.AllocedBytesPerOp())
		res.AllocsPerOp = max(res.AllocsPerOp, br.AllocsPerOp())
		log.Debug("sample", "index", i, "n", br.N, "ns_per_op", ns)
	}

	s := summarize(res.Samples)
	res.Mean, res.Median, res.StdDev, res.Min, res.Max = s.mean, s.median, s.stddev, s.min, s.max
	log.Info("variant measured",
		"mean", res.MeanDuration(),
		"median", res.MedianDuration(),
		"bytes_per_op", res.BytesPerOp,
		"allocs_per_op", res.AllocsPerOp,
	)

	return res, nil
}
