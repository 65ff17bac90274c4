// Package matrix_test provides benchmarks for the banded kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/fdm/matrix"
)

// benchSizes are the grid sizes to benchmark.
var benchSizes = []int{101, 1001, 10001}

// sinks to defeat dead-code elimination
var (
	sinkV []float64
	sinkE error
)

func BenchmarkBanmul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randomBand(b, n, 1, 1, 1337)
			v := randomVec(n, 4242)
			x := make([]float64, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkE = matrix.Banmul(a, 1, 1, v, x)
			}
			sinkV = x
		})
	}
}

func BenchmarkTridag(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randomBand(b, n, 1, 1, 1337)
			r := randomVec(n, 4242)
			u := make([]float64, n)
			gam := make([]float64, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkE = matrix.Tridag(a, r, u, gam)
			}
			sinkV = u
		})
	}
}

func BenchmarkTransposeBandInPlace(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randomBand(b, n, 1, 1, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkE = matrix.TransposeBandInPlace(a, 1)
			}
			sinkV = a.Data()
		})
	}
}
