package array_test

import (
	"testing"

	"github.com/katalvlaran/lvbench/array"
	"github.com/stretchr/testify/require"
)

// TestVerifyAcceptsAllVariants runs the real strategies through Verify.
func TestVerifyAcceptsAllVariants(t *testing.T) {
	src, err := array.Sequential(10_000)
	require.NoError(t, err)
	require.NoError(t, array.Verify(src, array.Variants(0)))
}

// TestVerifyDetectsWrongValue injects a broken strategy.
func TestVerifyDetectsWrongValue(t *testing.T) {
	broken := array.Variant{Name: "OffByOne", Double: func(src []int32) []int32 {
		out := array.ForLoop(src)
		out[len(out)-1]++
		return out
	}}
	src := []int32{1, 2, 3}

	err := array.Verify(src, append(array.Variants(0), broken))
	require.ErrorIs(t, err, array.ErrMismatch)
	require.Contains(t, err.Error(), "OffByOne")
	require.Contains(t, err.Error(), "index 2")
}

// TestVerifyDetectsWrongLength injects a strategy that truncates.
func TestVerifyDetectsWrongLength(t *testing.T) {
	short := array.Variant{Name: "Short", Double: func(src []int32) []int32 { return src[:0] }}
	err := array.Verify([]int32{1}, []array.Variant{short})
	require.ErrorIs(t, err, array.ErrMismatch)
}

// TestVerifyDetectsSourceMutation injects a strategy that doubles in place.
func TestVerifyDetectsSourceMutation(t *testing.T) {
	inPlace := array.Variant{Name: "InPlace", Double: func(src []int32) []int32 {
		out := make([]int32, len(src))
		for i := range src {
			out[i] = src[i] * 2
		}
		src[0] = -src[0]
		return out
	}}
	err := array.Verify([]int32{1, 2}, []array.Variant{inPlace})
	require.ErrorIs(t, err, array.ErrMismatch)
	require.Contains(t, err.Error(), "source mutated")
}

// TestVerifyNoVariants ensures an empty variant set is rejected.
func TestVerifyNoVariants(t *testing.T) {
	require.ErrorIs(t, array.Verify([]int32{1}, nil), array.ErrNoVariants)
}
