// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Variant names, in report order.
const (
	NameForLoops       = "ForLoops"
	NameParallelFor    = "ParallelFor"
	NameParallelSelect = "ParallelSelect"
)

// Variant binds a report name to a multiplication strategy.
type Variant struct {
	Name string
	Mul  MulFunc
}

// Variants returns the three strategies in report order; opts configure the
// parallel ones.
func Variants(opts ...Option) []Variant {
	return []Variant{
		{Name: NameForLoops, Mul: MulLoops},
		{Name: NameParallelFor, Mul: func(a, b *Dense) (*Dense, error) { return MulParallelFor(a, b, opts...) }},
		{Name: NameParallelSelect, Mul: func(a, b *Dense) (*Dense, error) { return MulParallelMap(a, b, opts...) }},
	}
}

// Verify computes the reference product with MulLoops and checks that every
// variant returns an identical matrix and leaves both operands untouched.
//
// Errors:
//   - ErrNoVariants if variants is empty.
//   - any validation error of the operands (ErrNilMatrix, ErrDimensionMismatch).
//   - ErrMismatch wrapped with the variant name and first differing cell.
func Verify(a, b *Dense, variants []Variant) error {
	if len(variants) == 0 {
		return ErrNoVariants
	}
	want, err := MulLoops(a, b)
	if err != nil {
		return err
	}
	snapA, snapB := a.Clone(), b.Clone()

	var got *Dense
	for _, v := range variants {
		if got, err = v.Mul(a, b); err != nil {
			return fmt.Errorf("%s: %w", v.Name, err)
		}
		if !a.Equal(snapA) || !b.Equal(snapB) {
			return fmt.Errorf("%s: operand mutated: %w", v.Name, ErrMismatch)
		}
		if got.Equal(want) {
			continue
		}
		if got == nil || got.r != want.r || got.c != want.c {
			return fmt.Errorf("%s: shape differs from %dx%d: %w", v.Name, want.r, want.c, ErrMismatch)
		}
		for idx := range want.data {
			if got.data[idx] != want.data[idx] {
				return fmt.Errorf("%s: cell (%d,%d) = %d, want %d: %w",
					v.Name, idx/want.c, idx%want.c, got.data[idx], want.data[idx], ErrMismatch)
			}
		}
	}

	return nil
}
