package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvbench/matrix"
)

// ExampleVariants multiplies the 2×2 reference operands with every strategy.
func ExampleVariants() {
	a, _ := matrix.FromRows([][]int32{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]int32{{5, 6}, {7, 8}})

	for _, v := range matrix.Variants(matrix.WithWorkers(2)) {
		c, err := v.Mul(a, b)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf("%s %v\n", v.Name, c.RawRows())
	}

	// Output:
	// ForLoops [[19 22] [43 50]]
	// ParallelFor [[19 22] [43 50]]
	// ParallelSelect [[19 22] [43 50]]
}

// ExampleMulLoops_mismatch shows the shape check that runs before any work.
func ExampleMulLoops_mismatch() {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(2, 2)

	c, err := matrix.MulLoops(a, b)
	fmt.Println(c == nil, errors.Is(err, matrix.ErrDimensionMismatch))

	// Output:
	// true true
}
