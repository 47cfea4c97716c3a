package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvbench/matrix"
	"github.com/stretchr/testify/require"
)

// TestFromRows covers the happy path and both shape errors.
func TestFromRows(t *testing.T) {
	m := mustFromRows(t, [][]int32{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.EqualValues(t, 6, v)

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows([][]int32{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows([][]int32{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

// TestFromRowsCopiesInput ensures later changes to the input do not leak in.
func TestFromRowsCopiesInput(t *testing.T) {
	rows := [][]int32{{1, 2}}
	m := mustFromRows(t, rows)
	rows[0][0] = 7
	v, _ := m.At(0, 0)
	require.EqualValues(t, 1, v)
}

// TestRandomRangeAndDeterminism checks value bounds and seed reproducibility.
func TestRandomRangeAndDeterminism(t *testing.T) {
	a := mustRandom(t, 40, 30, 99)
	b := mustRandom(t, 40, 30, 99)
	require.True(t, a.Equal(b)) // same seed ⇒ same matrix

	for _, row := range a.RawRows() {
		for _, v := range row {
			require.GreaterOrEqual(t, v, matrix.DefaultMinValue)
			require.Less(t, v, matrix.DefaultMaxValue)
		}
	}

	c := mustRandom(t, 40, 30, 100)
	require.Equal(t, a.Rows(), c.Rows()) // regenerated shape is stable
	require.Equal(t, a.Cols(), c.Cols())
	require.False(t, a.Equal(c))
}

// TestRandomErrors checks the documented error priority.
func TestRandomErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := matrix.Random(nil, 0, 0, 5, 1)
	require.ErrorIs(t, err, matrix.ErrNilSource) // nil first

	_, err = matrix.Random(rng, 0, 3, 1, 10)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Random(rng, 3, 3, 4, 4)
	require.ErrorIs(t, err, matrix.ErrInvalidRange)
}

// TestRandomSingleValueRange ensures a width-1 interval yields a constant matrix.
func TestRandomSingleValueRange(t *testing.T) {
	m, err := matrix.Random(rand.New(rand.NewSource(3)), 3, 3, -4, -3)
	require.NoError(t, err)
	for _, row := range m.RawRows() {
		require.Equal(t, []int32{-4, -4, -4}, row)
	}
}

// TestRandomPair draws both operands from one seed.
func TestRandomPair(t *testing.T) {
	a1, b1, err := matrix.RandomPair(matrix.DefaultSeed, 16)
	require.NoError(t, err)
	a2, b2, err := matrix.RandomPair(matrix.DefaultSeed, 16)
	require.NoError(t, err)
	require.True(t, a1.Equal(a2))
	require.True(t, b1.Equal(b2))
	require.False(t, a1.Equal(b1)) // A and B come from successive draws

	_, _, err = matrix.RandomPair(1, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
