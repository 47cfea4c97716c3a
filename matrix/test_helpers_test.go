// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Offer an independent float64 oracle (gonum/mat) for products.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvbench/matrix"
	"gonum.org/v1/gonum/mat"
)

// mustDense ALLOCATES an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// mustFromRows BUILDS a *Dense from literal rows or fails the test.
func mustFromRows(tb testing.TB, rows [][]int32) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		tb.Fatalf("FromRows: %v", err)
	}

	return m
}

// mustRandom FILLS an r×c matrix with deterministic values in [1,10) by seed.
func mustRandom(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.Random(rand.New(rand.NewSource(seed)), r, c, matrix.DefaultMinValue, matrix.DefaultMaxValue)
	if err != nil {
		tb.Fatalf("Random(%d,%d): %v", r, c, err)
	}

	return m
}

// toGonum converts a Dense into a gonum float64 matrix for oracle checks.
func toGonum(m *matrix.Dense) *mat.Dense {
	data := make([]float64, 0, m.Rows()*m.Cols())
	for _, row := range m.RawRows() {
		for _, v := range row {
			data = append(data, float64(v))
		}
	}

	return mat.NewDense(m.Rows(), m.Cols(), data)
}

// oracleProduct multiplies with gonum; exact for small integer inputs.
func oracleProduct(a, b *matrix.Dense) *mat.Dense {
	var c mat.Dense
	c.Mul(toGonum(a), toGonum(b))

	return &c
}

// requireMatchesOracle compares every cell of got against the gonum product.
func requireMatchesOracle(tb testing.TB, got *matrix.Dense, want *mat.Dense) {
	tb.Helper()
	r, c := want.Dims()
	if got.Rows() != r || got.Cols() != c {
		tb.Fatalf("shape %dx%d, want %dx%d", got.Rows(), got.Cols(), r, c)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := got.At(i, j)
			if err != nil {
				tb.Fatalf("At(%d,%d): %v", i, j, err)
			}
			if float64(v) != want.At(i, j) {
				tb.Fatalf("cell (%d,%d) = %d, want %v", i, j, v, want.At(i, j))
			}
		}
	}
}
