// Package tsp - lower-bound estimators for the still-unvisited cities.
//
// Both estimators read the already-reduced matrix of the current branch and
// look only at the unvisited cities (the city just entered is excluded):
//
//   - mstEstimate:     Prim MST over the unvisited cities (mst.go);
//   - edgeSumEstimate: per unvisited row, the smallest finite entry; the two
//     smallest of those minima are summed.
//
// The node bound adds min(mstEstimate, edgeSumEstimate) to the accumulated
// cost. Taking the minimum keeps the bound conservative and still yields a
// finite value when the MST degenerates to +Inf.
package tsp

import "sort"

// edgeSumEstimate sums the two smallest per-row minima over cities.
// Rows without a finite entry are skipped; with a single finite minimum the
// estimate is that value, with none it is 0.
//
// Complexity: O(k·n + k log k) for k = len(cities).
func (g grid) edgeSumEstimate(cities []int) float64 {
	var (
		minima = make([]float64, 0, len(cities))
		c, j   int
		m, x   float64
	)
	for _, c = range cities {
		m = inf
		for j = 0; j < g.n; j++ {
			if x = g.at(c, j); x < m {
				m = x
			}
		}
		if m != inf {
			minima = append(minima, m)
		}
	}
	sort.Float64s(minima)

	var sum float64
	for j = 0; j < len(minima) && j < 2; j++ {
		sum += minima[j]
	}

	return sum
}

// combinedEstimate is min(mstEstimate, edgeSumEstimate); 0 for no cities.
func (g grid) combinedEstimate(cities []int) float64 {
	if len(cities) == 0 {
		return 0
	}
	var (
		mst  = g.mstEstimate(cities)
		edge = g.edgeSumEstimate(cities)
	)
	if edge < mst {
		return edge
	}

	return mst
}
