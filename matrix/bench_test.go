// Package matrix_test provides benchmarks for Dense and MatVec,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/numcore/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{16, 128, 512}

// sink to defeat dead-code elimination
var sinkV []float64

func randomDense(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(int64(n)))
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, rng.Float64())
		}
	}

	return m
}

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		m := randomDense(b, n)
		x := make([]float64, n)
		for i := range x {
			x[i] = float64(i)
		}
		b.Run(fmt.Sprintf("dense/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkV, _ = matrix.MatVec(m, x)
			}
		})
		b.Run(fmt.Sprintf("fallback/n=%d", n), func(b *testing.B) {
			h := hide{m}
			for i := 0; i < b.N; i++ {
				sinkV, _ = matrix.MatVec(h, x)
			}
		})
	}
}

func BenchmarkSwapRows(b *testing.B) {
	m := randomDense(b, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.SwapRows(i%512, (i+1)%512)
	}
}
