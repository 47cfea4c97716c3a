// Package harness times named zero-argument callables and reports their
// wall-clock distribution and allocation figures.
//
// Measurement is delegated to testing.Benchmark, the same engine behind
// `go test -bench`: every sample adapts b.N until the configured bench time
// is reached and records allocations (ReportAllocs). The harness adds what a
// comparison run needs around that engine:
//
//   - a Suite with a one-off Setup hook (fresh input per session) and a
//     Verify hook (all variants agree) run before any timing,
//   - a warmup phase per variant,
//   - repeated samples summarized with gonum/stat (mean, std-dev, median),
//   - a tabular Report keyed by variant name, rendered with lipgloss.
//
// Usage:
//
//	runner, err := harness.New(harness.WithConfig(cfg), harness.WithLogger(log))
//	report, err := runner.Run(ctx, harness.Suite{
//		Name:     "array-doubling",
//		Setup:    func() error { input, err = array.Sequential(n); return err },
//		Verify:   func() error { return array.Verify(input, variants) },
//		Variants: []harness.Variant{{Name: "ForLoop", Fn: func() { sink = array.ForLoop(input) }}},
//	})
//	_ = report.Render(os.Stdout, true)
//
// Setup, Verify, and configuration errors abort the run before any timing;
// nothing is retried.
package harness
