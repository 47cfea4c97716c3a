package cli_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/lvbench/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	cases := []struct {
		level string
		debug bool
		info  bool
		warn  bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"warn", false, false, true},
		{"error", false, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := cli.NewLogger(&buf, tc.level)
			log.Debug("d-msg")
			log.Info("i-msg")
			log.Warn("w-msg")

			out := buf.String()
			require.Equal(t, tc.debug, bytes.Contains(buf.Bytes(), []byte("d-msg")), out)
			require.Equal(t, tc.info, bytes.Contains(buf.Bytes(), []byte("i-msg")), out)
			require.Equal(t, tc.warn, bytes.Contains(buf.Bytes(), []byte("w-msg")), out)
		})
	}
}
