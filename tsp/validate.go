// Package tsp - input validation shared by the solvers.
//
// Validation runs once at the public boundary (Solve, Little,
// NearestNeighbor, Reduce); the search itself trusts its input and performs
// no per-node re-validation.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case where n is the matrix size.
package tsp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/littletsp/matrix"
)

// validateShape verifies that dist is non-nil, non-empty and square.
// Returns n (matrix order) on success.
//
// Complexity: O(1).
func validateShape(dist matrix.Matrix) (int, error) {
	n, err := matrix.ValidateSquare(dist)
	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, matrix.ErrNonSquare):
		return 0, fmt.Errorf("%v: %w", err, ErrNonSquare)
	default:
		return 0, fmt.Errorf("%v: %w", err, ErrDimensionMismatch)
	}
}

// validateCostMatrix performs full matrix validation:
//   - non-nil, square, n ≥ 1;
//   - NaN or negative entries are rejected;
//   - every diagonal entry is +Inf;
//   - off-diagonal +Inf is accepted (missing edge).
//
// Complexity: O(n²).
func validateCostMatrix(dist matrix.Matrix) (int, error) {
	n, err := validateShape(dist)
	if err != nil {
		return 0, err
	}
	if err = validateEntries(dist, n, true); err != nil {
		return 0, err
	}

	return n, nil
}

// validateEntries scans all n² entries. With strictDiagonal the diagonal
// must be +Inf.
func validateEntries(dist matrix.Matrix, n int, strictDiagonal bool) error {
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = dist.At(i, j); err != nil {
				return fmt.Errorf("%v: %w", err, ErrDimensionMismatch)
			}
			if math.IsNaN(v) || v < 0 {
				return fmt.Errorf("entry (%d,%d)=%g: %w", i, j, v, ErrNegativeWeight)
			}
			if strictDiagonal && i == j && !math.IsInf(v, 1) {
				return fmt.Errorf("entry (%d,%d)=%g: %w", i, i, v, ErrFiniteDiagonal)
			}
		}
	}

	return nil
}
