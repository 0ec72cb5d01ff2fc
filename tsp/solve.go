// Package tsp - unified dispatcher.
//
// Solve is the canonical entry point: it validates the cost matrix once,
// prefetches it into a dense buffer and routes to the requested algorithm.
// The choice is closed and two-way: MethodExact runs Little, every other
// Method value runs NearestNeighbor.
package tsp

import "github.com/katalvlaran/littletsp/matrix"

// Solve validates dist and runs the selected algorithm.
//
// Contracts:
//   - dist is square, n ≥ 1, non-negative, with a +Inf diagonal.
//   - Success: len(Tour) == n+1, Tour[0] == Tour[n] == 0.
//   - No tour: Cost == +Inf, Tour empty, nil error.
//   - n == 1: Cost 0, Tour [0 0].
//
// Errors: strict sentinels from types.go (ErrDimensionMismatch,
// ErrNonSquare, ErrNegativeWeight, ErrFiniteDiagonal) for malformed input,
// ErrCanceled for a cancelled exact search. opts only affect MethodExact.
//
// Complexity: validation O(n²); the rest per algorithm (see doc.go).
func Solve(dist matrix.Matrix, method Method, opts ...Option) (Result, error) {
	n, err := validateCostMatrix(dist)
	if err != nil {
		return Result{}, err
	}
	g := prefetch(dist, n)

	if method == MethodExact {
		return little(g, buildOptions(opts))
	}

	return nearestNeighbor(g), nil
}
