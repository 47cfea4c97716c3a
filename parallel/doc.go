// Package parallel provides the two data-parallel primitives shared by the
// benchmark workloads: a blocking parallel-for over an index range and an
// order-preserving parallel map over a slice.
//
// ⚙️ What's inside:
//
//   - DefaultWorkers   pool size bound to available hardware parallelism
//   - Chunks           split [0,n) into contiguous, disjoint half-open ranges
//   - For              run a RangeFunc over every chunk on an errgroup with SetLimit
//   - Map              sourcegraph/conc iter.Mapper bounded by the worker count
//
// Guarantees:
//
//   - Both calls block the caller until every partition has finished.
//   - Chunks never overlap, so callers writing only inside their range need
//     no locks or atomics.
//   - Map output order equals input order; scheduling order is unspecified.
//
// Usage:
//
//	dst := slices.Clone(src)
//	parallel.For(len(dst), parallel.DefaultWorkers(), func(lo, hi int) {
//		for i := lo; i < hi; i++ {
//			dst[i] *= 2
//		}
//	})
//
//	rows := parallel.Map(indices, 0, func(i *int) []int32 { return row(*i) })
package parallel
