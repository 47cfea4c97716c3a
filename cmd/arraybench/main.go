// Command arraybench compares six strategies for doubling every element of an
// int32 array: index loop, range loop, lo.Map, chunked parallel-for, slice view
// and bounded parallel map.
//
//	arraybench                       # 100 000 elements, reference defaults
//	arraybench --size 1000000 --workers 4 --samples 10
package main

import (
	"os"

	"github.com/katalvlaran/lvbench/array"
	"github.com/katalvlaran/lvbench/harness"
	"github.com/katalvlaran/lvbench/internal/cli"
)

// sink keeps measured results observable.
var sink []int32

func main() {
	os.Exit(cli.Execute(workload()))
}

func workload() cli.Workload {
	defaults := cli.DefaultConfig()
	defaults.Size = array.DefaultLength

	return cli.Workload{
		Use:   "arraybench",
		Short: "Benchmark iteration strategies for doubling an int32 array",
		Long: "arraybench builds the ascending array 1..size once, verifies that every\n" +
			"variant doubles it correctly, then measures each variant and prints a table.",
		Defaults: defaults,
		Build:    buildSuite,
	}
}

// buildSuite wires the array variants into a harness suite. The input is
// generated in Setup so a bad size surfaces as a setup error.
func buildSuite(cfg cli.Config) (harness.Suite, error) {
	var input []int32
	variants := array.Variants(cfg.Workers)

	suite := harness.Suite{
		Name: "array-doubling",
		Setup: func() (err error) {
			input, err = array.Sequential(cfg.Size)
			return err
		},
		Verify: func() error { return array.Verify(input, variants) },
	}
	for _, v := range variants {
		double := v.Double
		suite.Variants = append(suite.Variants, harness.Variant{
			Name: v.Name,
			Fn:   func() { sink = double(input) },
		})
	}

	return suite, nil
}
