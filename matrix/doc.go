// Package matrix implements the matrix-multiplication workload on a dense,
// row-major int32 matrix.
//
// The matrix package provides:
//
//   - Dense: flat row-major storage (offset = i*cols + j) with safe At/Set
//     and no-copy Row views.
//   - Builders: FromRows for literal fixtures and Random for seeded sessions
//     (values in [lo,hi), explicit *rand.Rand, no global generator).
//   - Three multiplication strategies over the same i-j-k row kernel:
//     MulLoops (sequential), MulParallelFor (outer row range split across a
//     bounded worker pool) and MulParallelMap (one task per row index, rows
//     assembled into a Dense afterwards).
//   - Variants/Verify to register the strategies and prove they agree before
//     any timing run.
//
// Shape errors are reported before the product is allocated; no variant
// ever returns a partial result. Integer arithmetic is exact (wrapping), so
// parallel scheduling order never changes the product.
//
// See the examples in this package for usage patterns.
package matrix
