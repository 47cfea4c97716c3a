// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbench/harness"
)

// Workload describes one benchmark program.
type Workload struct {
	Use      string
	Short    string
	Long     string
	Defaults Config // Size (and Seed when Seeded) are workload specific
	Seeded   bool   // registers --seed
	Build    func(cfg Config) (harness.Suite, error)
}

// flagValues receives raw flag input; only flags the user set are applied.
type flagValues struct {
	configPath string
	samples    int
	warmup     int
	benchTime  string
	size       int
	seed       int64
	workers    int
	logLevel   string
	noColor    bool
}

// Flag names.
const (
	flagConfig    = "config"
	flagSamples   = "samples"
	flagWarmup    = "warmup"
	flagBenchTime = "benchtime"
	flagSize      = "size"
	flagSeed      = "seed"
	flagWorkers   = "workers"
	flagLogLevel  = "log-level"
	flagNoColor   = "no-color"
)

// NewCommand builds the cobra root command for w. It takes no positional
// arguments; every flag is optional and defaults to w.Defaults.
func NewCommand(w Workload) *cobra.Command {
	var fv flagValues
	d := w.Defaults

	cmd := &cobra.Command{
		Use:           w.Use,
		Short:         w.Short,
		Long:          w.Long,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, d, fv)
			if err != nil {
				return err
			}
			return run(cmd, w, cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&fv.configPath, flagConfig, "", "YAML config file (flags override file values)")
	fs.IntVar(&fv.samples, flagSamples, d.Harness.Samples, "benchmark samples per variant")
	fs.IntVar(&fv.warmup, flagWarmup, d.Harness.Warmup, "warmup calls per variant")
	fs.StringVar(&fv.benchTime, flagBenchTime, d.Harness.BenchTime, "time or iteration count per sample (e.g. 1s, 100x)")
	fs.IntVar(&fv.size, flagSize, d.Size, "workload size")
	fs.IntVar(&fv.workers, flagWorkers, d.Workers, "parallel workers (0 = GOMAXPROCS)")
	fs.StringVar(&fv.logLevel, flagLogLevel, d.LogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&fv.noColor, flagNoColor, d.NoColor, "disable colored table output")
	if w.Seeded {
		fs.Int64Var(&fv.seed, flagSeed, d.Seed, "random generator seed")
	}

	return cmd
}

// resolveConfig applies defaults → file → changed flags, then validates.
func resolveConfig(cmd *cobra.Command, defaults Config, fv flagValues) (Config, error) {
	cfg := defaults
	if fv.configPath != "" {
		var err error
		if cfg, err = LoadFile(fv.configPath, cfg); err != nil {
			return cfg, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed(flagSamples) {
		cfg.Harness.Samples = fv.samples
	}
	if fs.Changed(flagWarmup) {
		cfg.Harness.Warmup = fv.warmup
	}
	if fs.Changed(flagBenchTime) {
		cfg.Harness.BenchTime = fv.benchTime
	}
	if fs.Changed(flagSize) {
		cfg.Size = fv.size
	}
	if fs.Changed(flagSeed) {
		cfg.Seed = fv.seed
	}
	if fs.Changed(flagWorkers) {
		cfg.Workers = fv.workers
	}
	if fs.Changed(flagLogLevel) {
		cfg.LogLevel = fv.logLevel
	}
	if fs.Changed(flagNoColor) {
		cfg.NoColor = fv.noColor
	}

	return cfg, cfg.Validate()
}

// run builds the suite, measures it and prints the report to stdout.
func run(cmd *cobra.Command, w Workload, cfg Config) error {
	sessionID := uuid.NewString()
	logger := NewLogger(cmd.ErrOrStderr(), cfg.LogLevel).With("session_id", sessionID, "workload", w.Use)

	suite, err := w.Build(cfg)
	if err != nil {
		return fmt.Errorf("build suite: %w", err)
	}
	runner, err := harness.New(
		harness.WithConfig(cfg.Harness),
		harness.WithLogger(logger),
		harness.WithSessionID(sessionID),
	)
	if err != nil {
		return err
	}

	logger.Info("starting",
		"size", cfg.Size,
		"seed", cfg.Seed,
		"workers", cfg.Workers,
		"gomaxprocs", runtime.GOMAXPROCS(0),
		"samples", cfg.Harness.Samples,
	)
	report, err := runner.Run(cmd.Context(), suite)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return report.Render(out, !cfg.NoColor && isTerminal(out))
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Execute runs w's command with SIGINT/SIGTERM cancellation and returns the
// process exit code: 0 on success, 1 on any error.
func Execute(w Workload) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewCommand(w)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", w.Use, err)
		return 1
	}

	return 0
}
