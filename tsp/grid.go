// Package tsp - the dense working buffer used on the solver hot paths.
//
// A grid is an n×n row-major []float64 prefetched once from the caller's
// matrix.Matrix, which removes interface overhead from the search. grids are
// values: every branch of the exact search clones its parent's grid before
// editing it, so no buffer is ever shared between siblings.
package tsp

import (
	"math"

	"github.com/katalvlaran/littletsp/matrix"
)

var inf = math.Inf(1)

type grid struct {
	n int
	w []float64 // w[u*n+v] = cost u→v
}

// prefetch copies a validated n×n matrix into a grid.
// Fast path for *matrix.Dense, generic At() path otherwise.
func prefetch(dist matrix.Matrix, n int) grid {
	g := grid{n: n, w: make([]float64, n*n)}
	if d, ok := dist.(*matrix.Dense); ok {
		copy(g.w, d.RawData())
		return g
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			g.w[i*n+j], _ = dist.At(i, j) // shape already validated
		}
	}

	return g
}

func (g grid) at(u, v int) float64 { return g.w[u*g.n+v] }

func (g grid) set(u, v int, x float64) { g.w[u*g.n+v] = x }

func (g grid) clone() grid {
	w := make([]float64, len(g.w))
	copy(w, g.w)

	return grid{n: g.n, w: w}
}

// forbidRow sets every entry of row u to +Inf.
func (g grid) forbidRow(u int) {
	row := g.w[u*g.n : (u+1)*g.n]
	for j := range row {
		row[j] = inf
	}
}

// forbidCol sets every entry of column v to +Inf.
func (g grid) forbidCol(v int) {
	var i int
	for i = 0; i < g.n; i++ {
		g.w[i*g.n+v] = inf
	}
}

// toDense exports the grid as a fresh *matrix.Dense.
func (g grid) toDense() *matrix.Dense {
	d, _ := matrix.NewDense(g.n, g.n) // n ≥ 1 by construction
	copy(d.RawData(), g.w)

	return d
}
