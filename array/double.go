// SPDX-License-Identifier: MIT
// Package array - doubling strategies.
//
// Every strategy starts from a private copy (or fresh output) so that
// the shared source stays read-only across variants and across parallel tasks.

package array

import (
	"github.com/katalvlaran/lvbench/parallel"
	"github.com/samber/lo"
)

// clone returns a private, non-nil copy of src.
func clone(src []int32) []int32 {
	dst := make([]int32, len(src))
	copy(dst, src)

	return dst
}

// ForLoop doubles a clone of src with a plain index loop.
func ForLoop(src []int32) []int32 {
	dst := clone(src)
	for i := 0; i < len(dst); i++ {
		dst[i] *= 2
	}

	return dst
}

// ForEachLoop ranges over the clone's values and writes each result back
// by a separately maintained position.
func ForEachLoop(src []int32) []int32 {
	dst := clone(src)
	index := 0
	for _, v := range dst {
		dst[index] = v * 2
		index++
	}

	return dst
}

// Select maps src into a new slice without mutating anything.
// The clone mirrors the other variants so allocation figures stay comparable.
func Select(src []int32) []int32 {
	view := clone(src)
	return lo.Map(view, func(v int32, _ int) int32 { return v * 2 })
}

// SliceView doubles through a capacity-capped view of the clone.
// The leading access proves len(view) to the compiler so the loop body
// compiles without bounds checks; results equal ForLoop.
func SliceView(src []int32) []int32 {
	dst := clone(src)
	if len(dst) == 0 {
		return dst
	}
	view := dst[:len(dst):len(dst)]
	_ = view[len(view)-1] // BCE hint
	for i := range view {
		view[i] *= 2
	}

	return dst
}

// ParallelFor returns a function that doubles a clone of src, splitting the
// index range into one contiguous chunk per worker. workers <= 0 selects
// parallel.DefaultWorkers.
func ParallelFor(workers int) DoubleFunc {
	return func(src []int32) []int32 {
		dst := clone(src)
		parallel.For(len(dst), workers, func(low, high int) {
			chunk := dst[low:high]
			for i := range chunk {
				chunk[i] *= 2
			}
		})

		return dst
	}
}

// ParallelSelect returns a function that maps a clone of src into a new slice
// on at most workers goroutines. Order is preserved.
func ParallelSelect(workers int) DoubleFunc {
	return func(src []int32) []int32 {
		view := clone(src)
		return parallel.Map(view, workers, func(v *int32) int32 { return *v * 2 })
	}
}

// Variants returns the six strategies in report order.
// workers configures the two parallel strategies (<= 0 ⇒ DefaultWorkers).
func Variants(workers int) []Variant {
	return []Variant{
		{Name: NameForLoop, Double: ForLoop},
		{Name: NameForEachLoop, Double: ForEachLoop},
		{Name: NameSelect, Double: Select},
		{Name: NameParallelFor, Double: ParallelFor(workers)},
		{Name: NameSliceView, Double: SliceView},
		{Name: NameParallelSelect, Double: ParallelSelect(workers)},
	}
}

// Names lists the variant names in report order.
func Names(variants []Variant) []string {
	return lo.Map(variants, func(v Variant, _ int) string { return v.Name })
}
