package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvbench/harness"
	"github.com/katalvlaran/lvbench/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := cli.DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, harness.DefaultConfig(), cfg.Harness)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*cli.Config)
	}{
		{"zero size", func(c *cli.Config) { c.Size = 0 }},
		{"negative workers", func(c *cli.Config) { c.Workers = -1 }},
		{"unknown level", func(c *cli.Config) { c.LogLevel = "trace" }},
		{"zero samples", func(c *cli.Config) { c.Harness.Samples = 0 }},
		{"bad benchtime", func(c *cli.Config) { c.Harness.BenchTime = "soon" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := cli.DefaultConfig()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), cli.ErrInvalidConfig)
		})
	}
}

func TestDecodeOverlaysBase(t *testing.T) {
	base := cli.DefaultConfig()
	base.Size = 500
	base.Seed = 42

	cfg, err := cli.Decode([]byte("size: 64\nharness:\n  samples: 2\nlog_level: debug\n"), base)
	require.NoError(t, err)
	require.Equal(t, 64, cfg.Size)
	require.Equal(t, int64(42), cfg.Seed, "untouched keys keep base values")
	require.Equal(t, 2, cfg.Harness.Samples)
	require.Equal(t, harness.DefaultWarmup, cfg.Harness.Warmup)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestDecodeEmptyAndUnknown(t *testing.T) {
	base := cli.DefaultConfig()

	cfg, err := cli.Decode(nil, base)
	require.NoError(t, err)
	require.Equal(t, base, cfg)

	_, err = cli.Decode([]byte("sizes: 3\n"), base)
	require.ErrorIs(t, err, cli.ErrConfigFile)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 3\nno_color: true\n"), 0o600))

	cfg, err := cli.LoadFile(path, cli.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Workers)
	require.True(t, cfg.NoColor)

	_, err = cli.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), cli.DefaultConfig())
	require.ErrorIs(t, err, cli.ErrConfigFile)
}
