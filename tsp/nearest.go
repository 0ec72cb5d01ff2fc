package tsp

import "github.com/katalvlaran/littletsp/matrix"

// NearestNeighbor builds a tour greedily: starting at city 0 it repeatedly
// moves to the unvisited city with the cheapest direct edge (lowest index
// on ties) and finally returns to 0.
//
// If at some step no unvisited city is reachable, or the closing edge to 0
// is missing, the result is Cost +Inf with an empty Tour (nil error). The
// heuristic gives no approximation guarantee; it is an independent entry
// point and never seeds the exact search.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(dist matrix.Matrix) (Result, error) {
	n, err := validateCostMatrix(dist)
	if err != nil {
		return Result{}, err
	}

	return nearestNeighbor(prefetch(dist, n)), nil
}

func nearestNeighbor(g grid) Result {
	if g.n == 1 {
		return trivialResult()
	}

	var (
		visited = make([]bool, g.n)
		tour    = make([]int, 1, g.n+1)
		current = 0
		total   float64
		step    int
	)
	visited[0] = true
	for step = 1; step < g.n; step++ {
		next, w := -1, inf
		for v := 0; v < g.n; v++ {
			if visited[v] {
				continue
			}
			if next < 0 || g.at(current, v) < w {
				next, w = v, g.at(current, v)
			}
		}
		if w == inf {
			return noTour(Stats{})
		}
		visited[next] = true
		tour = append(tour, next)
		total += w
		current = next
	}

	back := g.at(current, 0)
	if back == inf {
		return noTour(Stats{})
	}
	tour = append(tour, 0)

	return Result{Tour: tour, Cost: round1e9(total + back)}
}
