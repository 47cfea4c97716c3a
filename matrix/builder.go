// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/rand"
)

// FromRows builds a Dense from row slices, copying the data.
// Implementation:
//   - Stage 1: reject empty input and empty first row (ErrInvalidDimensions).
//   - Stage 2: reject ragged rows (ErrRaggedRows).
//   - Stage 3: copy row by row into the flat buffer.
//
// Complexity: O(r*c).
func FromRows(rows [][]int32) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d cols, want %d: %w", i, len(r), cols, ErrRaggedRows)
		}
	}

	m := newDense(len(rows), cols)
	for i, r := range rows {
		copy(m.row(i), r)
	}

	return m, nil
}

// Random builds a rows×cols Dense whose entries are drawn uniformly from [lo,hi).
// The generator is passed explicitly: the same seed always reproduces the same matrix.
//
// Errors (in priority order):
//   - ErrNilSource          if rng == nil
//   - ErrInvalidDimensions  if rows<=0 || cols<=0
//   - ErrInvalidRange       if lo >= hi
//
// Complexity: O(r*c).
func Random(rng *rand.Rand, rows, cols int, lo, hi int32) (*Dense, error) {
	if rng == nil {
		return nil, fmt.Errorf("Random: %w", ErrNilSource)
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("Random(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if lo >= hi {
		return nil, fmt.Errorf("Random: [%d,%d): %w", lo, hi, ErrInvalidRange)
	}

	m := newDense(rows, cols)
	span := int64(hi) - int64(lo) // fits: at most 2^32-1
	for i := range m.data {
		m.data[i] = int32(int64(lo) + rng.Int63n(span))
	}

	return m, nil
}

// RandomPair draws the two session operands A and B (both size×size) from one
// seeded generator, A first. Values lie in [DefaultMinValue, DefaultMaxValue).
func RandomPair(seed int64, size int) (a, b *Dense, err error) {
	rng := rand.New(rand.NewSource(seed))
	if a, err = Random(rng, size, size, DefaultMinValue, DefaultMaxValue); err != nil {
		return nil, nil, err
	}
	if b, err = Random(rng, size, size, DefaultMinValue, DefaultMaxValue); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}
