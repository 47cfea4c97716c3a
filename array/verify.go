// SPDX-License-Identifier: MIT

package array

import (
	"fmt"
	"slices"
)

// Verify runs every variant once on src and checks out[i] == 2*src[i].
// Implementation:
//   - Stage 1: snapshot src so a mutating variant is detected too.
//   - Stage 2: for each variant check the source is intact, then length, then element-wise.
//
// Errors:
//   - ErrNoVariants if variants is empty.
//   - ErrMismatch wrapped with the variant name and first differing index.
//
// Complexity: O(V*n).
func Verify(src []int32, variants []Variant) error {
	if len(variants) == 0 {
		return ErrNoVariants
	}
	snapshot := slices.Clone(src)

	var (
		out  []int32
		i    int
		want int32
	)
	for _, v := range variants {
		out = v.Double(src)
		if !slices.Equal(src, snapshot) {
			return fmt.Errorf("%s: source mutated: %w", v.Name, ErrMismatch)
		}
		if len(out) != len(snapshot) {
			return fmt.Errorf("%s: len %d, want %d: %w", v.Name, len(out), len(snapshot), ErrMismatch)
		}
		for i = range snapshot {
			want = snapshot[i] * 2
			if out[i] != want {
				return fmt.Errorf("%s: index %d = %d, want %d: %w", v.Name, i, out[i], want, ErrMismatch)
			}
		}
	}

	return nil
}
