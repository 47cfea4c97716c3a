// Command matrixbench compares three strategies for multiplying two square
// int32 matrices: triple loop, row-partitioned parallel-for and a parallel map
// over row indices.
//
//	matrixbench                      # 500×500, seed 42
//	matrixbench --size 256 --seed 7 --benchtime 20x
package main

import (
	"os"

	"github.com/katalvlaran/lvbench/harness"
	"github.com/katalvlaran/lvbench/internal/cli"
	"github.com/katalvlaran/lvbench/matrix"
)

var sink *matrix.Dense

func main() {
	os.Exit(cli.Execute(workload()))
}

func workload() cli.Workload {
	defaults := cli.DefaultConfig()
	defaults.Size = matrix.DefaultSize
	defaults.Seed = matrix.DefaultSeed

	return cli.Workload{
		Use:   "matrixbench",
		Short: "Benchmark sequential and parallel int32 matrix multiplication",
		Long: "matrixbench draws two size×size matrices with values in [1,10) from a\n" +
			"seeded generator, verifies that every variant agrees, then measures each one.",
		Defaults: defaults,
		Seeded:   true,
		Build:    buildSuite,
	}
}

func buildSuite(cfg cli.Config) (harness.Suite, error) {
	var a, b *matrix.Dense
	variants := matrix.Variants(matrix.WithWorkers(cfg.Workers))

	suite := harness.Suite{
		Name: "matrix-multiply",
		Setup: func() (err error) {
			a, b, err = matrix.RandomPair(cfg.Seed, cfg.Size)
			return err
		},
		Verify: func() error { return matrix.Verify(a, b, variants) },
	}
	for _, v := range variants {
		mul := v.Mul
		suite.Variants = append(suite.Variants, harness.Variant{
			Name: v.Name,
			Fn:   func() { sink, _ = mul(a, b) }, // operands verified in Verify
		})
	}

	return suite, nil
}
