package main

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvbench/harness"
	"github.com/katalvlaran/lvbench/internal/cli"
	"github.com/katalvlaran/lvbench/matrix"
	"github.com/stretchr/testify/require"
)

func TestWorkloadDefaults(t *testing.T) {
	w := workload()
	require.Equal(t, "matrixbench", w.Use)
	require.True(t, w.Seeded)
	require.Equal(t, matrix.DefaultSize, w.Defaults.Size)
	require.Equal(t, matrix.DefaultSeed, w.Defaults.Seed)
	require.NoError(t, w.Defaults.Validate())
}

func TestSuiteRunsEveryVariant(t *testing.T) {
	cfg := cli.DefaultConfig()
	cfg.Size = 12
	cfg.Seed = 3
	suite, err := buildSuite(cfg)
	require.NoError(t, err)

	runner, err := harness.New(harness.WithConfig(harness.Config{Samples: 2, Warmup: 1, BenchTime: "2x"}))
	require.NoError(t, err)
	report, err := runner.Run(context.Background(), suite)
	require.NoError(t, err)
	require.Len(t, report.Results, 3)
	require.Equal(t, matrix.NameForLoops, report.Results[0].Name)

	a, b, err := matrix.RandomPair(3, 12)
	require.NoError(t, err)
	want, err := matrix.MulLoops(a, b)
	require.NoError(t, err)
	require.True(t, want.Equal(sink), "last measured product matches a fresh reference")
}

func TestSuiteSetupRejectsBadSize(t *testing.T) {
	cfg := cli.DefaultConfig()
	cfg.Size = -1
	suite, err := buildSuite(cfg)
	require.NoError(t, err)
	require.ErrorIs(t, suite.Setup(), matrix.ErrInvalidDimensions)
}
