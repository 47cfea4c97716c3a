// SPDX-License-Identifier: MIT

// Package matrix - multiplication strategies.
//
// All three strategies share mulRow, the i-j-k kernel for one output row:
//
//	C[i,j] = Σ_k A[i,k] * B[k,j]
//
// Validation runs before the product is allocated, so a shape error never
// leaves a partial result behind.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvbench/parallel"
	"github.com/samber/lo"
)

// ---------- op tags ----------

const (
	opMulLoops       = "MulLoops"
	opMulParallelFor = "MulParallelFor"
	opMulParallelMap = "MulParallelMap"
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MulFunc multiplies a (r×k) by b (k×c) into a new r×c matrix.
type MulFunc func(a, b *Dense) (*Dense, error)

// mulRow writes row i of a*b into dst (len(dst) == b.c).
// Loop order is i (fixed) → j → k with a scalar accumulator.
func mulRow(a, b *Dense, i int, dst []int32) {
	var (
		j, k int
		acc  int32
	)
	aRow := a.row(i)
	inner, cols := a.c, b.c
	bData := b.data
	_ = aRow[inner-1] // BCE hint
	for j = 0; j < cols; j++ {
		acc = 0
		for k = 0; k < inner; k++ {
			acc += aRow[k] * bData[k*cols+j]
		}
		dst[j] = acc
	}
}

// MulLoops multiplies with the triple nested sequential loop.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with opMulLoops).
// Complexity: O(r*k*c) time, O(r*c) memory.
func MulLoops(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulLoops, err)
	}

	res := newDense(a.r, b.c)
	for i := 0; i < a.r; i++ {
		mulRow(a, b, i, res.row(i))
	}

	return res, nil
}

// MulParallelFor multiplies by partitioning the outer row range into contiguous
// chunks, one per worker; each worker writes whole rows it owns, so no locking
// is required. Options: WithWorkers.
func MulParallelFor(a, b *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulParallelFor, err)
	}
	o := gatherOptions(opts...)

	res := newDense(a.r, b.c)
	parallel.For(a.r, o.workers, func(low, high int) {
		for i := low; i < high; i++ {
			mulRow(a, b, i, res.row(i))
		}
	})

	return res, nil
}

// MulParallelMap maps every row index to a freshly allocated result row on a
// bounded pool, then assembles the rows into a Dense. Options: WithWorkers.
func MulParallelMap(a, b *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulParallelMap, err)
	}
	o := gatherOptions(opts...)

	rows := parallel.Map(lo.Range(a.r), o.workers, func(i *int) []int32 {
		out := make([]int32, b.c)
		mulRow(a, b, *i, out)
		return out
	})

	return assemble(rows, b.c), nil
}

// assemble copies equally sized row slices into one Dense.
func assemble(rows [][]int32, cols int) *Dense {
	res := newDense(len(rows), cols)
	for i, r := range rows {
		copy(res.row(i), r)
	}

	return res
}
