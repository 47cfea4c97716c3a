// Package array implements the array-doubling workload: six strategies that
// each turn an immutable []int32 into a new slice whose elements are doubled.
//
// 🚀 Variants (in report order):
//
//	ForLoop          sequential index loop, in place on a private clone
//	ForEachLoop      range-over-values loop writing back by a running position
//	Select           declarative, non-mutating map (samber/lo.Map)
//	ParallelFor      index range split into contiguous chunks on a bounded pool
//	SliceView        full-slice-expression view with a bounds-check hint
//	ParallelSelect   parallel declarative map (conc iter.Mapper)
//
// ✨ Guarantees:
//   - The source slice is never written; every variant returns fresh storage.
//   - All variants are bit-identical for the same input (int32 wrap-around
//     arithmetic included), which Verify checks before any timing run.
//   - An empty source yields an empty, non-nil result.
//
// ⚙️ Usage:
//
//	src, err := array.Sequential(100_000)         // 1..N
//	variants := array.Variants(0)                 // 0 ⇒ GOMAXPROCS workers
//	if err := array.Verify(src, variants); err != nil {
//		// a variant disagrees with 2*src[i]
//	}
//	out := variants[0].Double(src)
package array
