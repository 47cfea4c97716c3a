// SPDX-License-Identifier: MIT

package array

import (
	"fmt"
	"math/rand"
)

// Sequential returns the ascending sequence 1..n.
// Errors: ErrInvalidLength if n <= 0.
// Complexity: O(n) time and memory.
func Sequential(n int) ([]int32, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Sequential(%d): %w", n, ErrInvalidLength)
	}
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(i + 1)
	}

	return out, nil
}

// Random returns n values drawn from rng over the full int32 range.
// The same seed always yields the same slice.
// Errors: ErrNilSource if rng is nil, ErrInvalidLength if n <= 0.
func Random(rng *rand.Rand, n int) ([]int32, error) {
	if rng == nil {
		return nil, fmt.Errorf("Random: %w", ErrNilSource)
	}
	if n <= 0 {
		return nil, fmt.Errorf("Random(%d): %w", n, ErrInvalidLength)
	}
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(rng.Uint32()) // reinterpret: negatives and overflow cases included
	}

	return out, nil
}
