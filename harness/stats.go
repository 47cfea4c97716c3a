// SPDX-License-Identifier: MIT

package harness

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// summary holds the distribution statistics of one variant's samples.
type summary struct {
	mean, median, stddev, min, max float64
}

// summarize computes mean, sample standard deviation, empirical median, min and max.
// A single sample has zero deviation. xs must be non-empty and is not modified.
func summarize(xs []float64) summary {
	sorted := slices.Clone(xs)
	slices.Sort(sorted) // stat.Quantile requires ascending input

	s := summary{
		mean:   stat.Mean(sorted, nil),
		median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		min:    floats.Min(sorted),
		max:    floats.Max(sorted),
	}
	if len(sorted) > 1 {
		s.stddev = stat.StdDev(sorted, nil)
	}

	return s
}
