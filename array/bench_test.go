package array_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvbench/array"
)

// benchLengths are the input lengths to benchmark.
var benchLengths = []int{1_000, array.DefaultLength}

// sink defeats dead-code elimination.
var sink []int32

func BenchmarkVariants(b *testing.B) {
	for _, n := range benchLengths {
		src, err := array.Sequential(n)
		if err != nil {
			b.Fatal(err)
		}
		for _, v := range array.Variants(0) {
			b.Run(fmt.Sprintf("n=%d/%s", n, v.Name), func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sink = v.Double(src)
				}
			})
		}
	}
}
