// SPDX-License-Identifier: MIT

package harness

import (
	"flag"
	"fmt"
	"sync"
	"testing"
)

// benchTimeFlag is the flag testing.Benchmark reads its target duration from.
const benchTimeFlag = "test.benchtime"

var registerTestingFlags sync.Once

// withBenchTime runs fn with the measurement engine's bench time set to value,
// restoring the previous value afterwards.
//
// testing.Benchmark has no per-call duration parameter; it reads the package
// level -test.benchtime flag, which testing.Init registers on flag.CommandLine.
// Callers must not run two Runners concurrently.
func withBenchTime(value string, fn func() error) error {
	registerTestingFlags.Do(testing.Init)

	f := flag.Lookup(benchTimeFlag)
	if f == nil {
		return fmt.Errorf("%w: flag %s not registered", ErrBenchTime, benchTimeFlag)
	}
	prev := f.Value.String()
	if err := f.Value.Set(value); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrBenchTime, value, err)
	}
	defer func() { _ = f.Value.Set(prev) }()

	return fn()
}
