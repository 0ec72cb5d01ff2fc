package tsp_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/littletsp/tsp"
)

// BenchmarkLittle measures the exact search on seeded asymmetric instances.
func BenchmarkLittle(b *testing.B) {
	for _, n := range []int{6, 8, 10, 12} {
		m := randomDense(b, n, 52, false)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = tsp.Solve(m, tsp.MethodExact)
			}
		})
	}
}

// BenchmarkNearestNeighbor measures the greedy pass.
func BenchmarkNearestNeighbor(b *testing.B) {
	for _, n := range []int{10, 100, 500} {
		m := randomDense(b, n, 52, false)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = tsp.Solve(m, tsp.MethodGreedy)
			}
		})
	}
}
