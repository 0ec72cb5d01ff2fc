// Package tsp_test provides lightweight helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/littletsp/matrix"
	"github.com/katalvlaran/littletsp/tsp"
)

var inf = math.Inf(1)

// fixture4 is the classic symmetric 4-city instance with optimum 80.
func fixture4() [][]float64 {
	return [][]float64{
		{inf, 10, 15, 20},
		{10, inf, 35, 25},
		{15, 35, inf, 30},
		{20, 25, 30, inf},
	}
}

// dense builds a *matrix.Dense from rows or fails the test.
func dense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return d
}

// randomDense returns a seeded integer-cost instance.
func randomDense(t testing.TB, n int, seed int64, symmetric bool) *matrix.Dense {
	t.Helper()
	d, err := matrix.Random(n, seed, symmetric)
	require.NoError(t, err)

	return d
}

// isolate removes every edge incident to city v (keeping the +Inf diagonal).
func isolate(rows [][]float64, v int, incoming, outgoing bool) [][]float64 {
	for i := range rows {
		if i == v {
			continue
		}
		if incoming {
			rows[i][v] = inf
		}
		if outgoing {
			rows[v][i] = inf
		}
	}

	return rows
}

// bruteForce enumerates every tour from city 0 and returns the optimal cost
// (+Inf when no tour exists). Intended for n ≤ 8.
func bruteForce(rows [][]float64) float64 {
	n := len(rows)
	if n == 1 {
		return 0
	}
	perm := make([]int, 0, n-1)
	for v := 1; v < n; v++ {
		perm = append(perm, v)
	}
	best := inf
	var rec func(k int)
	rec = func(k int) {
		if k == len(perm) {
			cost, prev := 0.0, 0
			for _, v := range perm {
				cost += rows[prev][v]
				prev = v
			}
			cost += rows[prev][0]
			if cost < best {
				best = cost
			}
			return
		}
		for i := k; i < len(perm); i++ {
			perm[k], perm[i] = perm[i], perm[k]
			rec(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(0)

	return best
}

// requireTour asserts the closed-tour contract and that the reported cost
// equals the matrix sum along the tour.
func requireTour(t *testing.T, m matrix.Matrix, res tsp.Result) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(res.Tour, m.Rows()))
	got, err := tsp.TourCost(m, res.Tour)
	require.NoError(t, err)
	require.Equal(t, got, res.Cost)
}

// requireNoTour asserts the infeasibility sentinel.
func requireNoTour(t *testing.T, res tsp.Result) {
	t.Helper()
	require.True(t, math.IsInf(res.Cost, 1), "cost=%v", res.Cost)
	require.Empty(t, res.Tour)
}

func nanValue() float64 { return math.NaN() }
