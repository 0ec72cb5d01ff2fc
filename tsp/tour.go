// Package tsp: tour utilities shared by the solvers.
//
// Provided helpers:
//   - ValidateTour: enforce the closed Hamiltonian cycle invariants.
//   - TourCost: sum the matrix entries along a tour.
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from types.go.
//   - Costs are rounded to 1e-9 to avoid cross-platform FP noise.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/littletsp/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision. +Inf passes through.
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}

// ValidateTour checks that tour is a closed cycle over n cities through 0:
//
//	len(tour) == n+1, tour[0] == tour[n] == 0,
//	each city in [0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if len(tour) != n+1 {
		return fmt.Errorf("len=%d, want %d: %w", len(tour), n+1, ErrInvalidTour)
	}
	if tour[0] != 0 || tour[n] != 0 {
		return fmt.Errorf("tour must start and end at 0: %w", ErrInvalidTour)
	}

	seen := make([]bool, n)
	var (
		i, v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("position %d holds %d: %w", i, v, ErrInvalidTour)
		}
		seen[v] = true
	}

	return nil
}

// TourCost sums dist[tour[i]][tour[i+1]] along the tour.
//
// Errors: shape sentinels for a bad matrix, ErrInvalidTour for an invalid
// tour, ErrMissingEdge when an edge is +Inf.
//
// Complexity: O(n).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	n, err := validateShape(dist)
	if err != nil {
		return 0, err
	}
	if n == 1 && len(tour) == 2 && tour[0] == 0 && tour[1] == 0 {
		return 0, nil
	}
	if err = ValidateTour(tour, n); err != nil {
		return 0, err
	}

	var (
		sum float64
		w   float64
		i   int
	)
	for i = 0; i < n; i++ {
		if w, err = dist.At(tour[i], tour[i+1]); err != nil {
			return 0, fmt.Errorf("%v: %w", err, ErrDimensionMismatch)
		}
		if math.IsInf(w, 1) {
			return 0, fmt.Errorf("edge %d→%d: %w", tour[i], tour[i+1], ErrMissingEdge)
		}
		sum += w
	}

	return round1e9(sum), nil
}

// tourCost sums a tour already known to be valid on g.
func (g grid) tourCost(tour []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i+1 < len(tour); i++ {
		sum += g.at(tour[i], tour[i+1])
	}

	return round1e9(sum)
}
