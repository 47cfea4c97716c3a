// SPDX-License-Identifier: MIT

package parallel

import (
	"runtime"

	"github.com/sourcegraph/conc/iter"
	"golang.org/x/sync/errgroup"
)

// RangeFunc receives a half-open range [low, high) with 0 <= low <= high.
// It is expected to cover every index of the interval exactly once.
type RangeFunc func(low, high int)

// Range is a half-open interval [Low, High) of indices.
type Range struct {
	Low  int // first index (inclusive)
	High int // last index (exclusive)
}

// Len returns the number of indices covered by r.
func (r Range) Len() int { return r.High - r.Low }

// DefaultWorkers returns the worker pool size used when callers pass workers <= 0.
// It follows GOMAXPROCS so the pool never exceeds the scheduler's parallelism.
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// normalize maps non-positive worker counts onto DefaultWorkers.
func normalize(workers int) int {
	if workers <= 0 {
		return DefaultWorkers()
	}

	return workers
}

// Chunks splits [0,n) into at most parts contiguous ranges of near-equal size.
// Implementation:
//   - Stage 1: clamp parts into [1, n]; n <= 0 yields no ranges.
//   - Stage 2: give the first n%parts ranges one extra index.
//
// Behavior highlights:
//   - Ranges are disjoint, ordered by Low, and their union is exactly [0,n).
//   - No range is empty.
//
// Complexity: O(parts) time and memory.
func Chunks(n, parts int) []Range {
	if n <= 0 {
		return nil
	}
	parts = normalize(parts)
	if parts > n {
		parts = n // never hand out empty ranges
	}

	size, extra := n/parts, n%parts
	out := make([]Range, 0, parts)
	low := 0
	for p := 0; p < parts; p++ {
		high := low + size
		if p < extra {
			high++
		}
		out = append(out, Range{Low: low, High: high})
		low = high
	}

	return out
}

// For runs fn over every chunk of [0,n) with at most workers goroutines in flight,
// and returns only after all chunks have completed.
// workers <= 0 selects DefaultWorkers. n <= 0 is a no-op.
//
// fn must confine its writes to its own range; For adds no synchronization
// beyond the final wait.
func For(n, workers int, fn RangeFunc) {
	workers = normalize(workers)
	chunks := Chunks(n, workers)
	if len(chunks) == 1 {
		fn(chunks[0].Low, chunks[0].High) // single partition runs inline
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for _, r := range chunks {
		g.Go(func() error {
			fn(r.Low, r.High)
			return nil
		})
	}
	_ = g.Wait() // tasks never fail; Wait is the join point
}

// Map applies fn to every element of in using at most workers goroutines
// and returns the results in input order. workers <= 0 selects DefaultWorkers.
// A nil or empty input yields an empty, non-nil slice.
func Map[T, R any](in []T, workers int, fn func(*T) R) []R {
	if len(in) == 0 {
		return []R{}
	}
	mapper := iter.Mapper[T, R]{MaxGoroutines: normalize(workers)}

	return mapper.Map(in, fn)
}
