// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// ValidateSquare checks that m is non-nil, non-empty and square, returning
// its order n.
//
// Complexity: O(1).
func ValidateSquare(m Matrix) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return 0, ErrNilMatrix
	}
	var (
		r = m.Rows()
		c = m.Cols()
	)
	if r <= 0 || c <= 0 {
		return 0, ErrBadShape
	}
	if r != c {
		return 0, fmt.Errorf("%d×%d: %w", r, c, ErrNonSquare)
	}

	return r, nil
}

// ValidateCosts checks every entry of a square matrix: NaN and negative
// values are rejected; +Inf is accepted anywhere (it means "no edge").
// Diagonal semantics are left to the consumer.
//
// Complexity: O(n²).
func ValidateCosts(m Matrix) (int, error) {
	n, err := ValidateSquare(m)
	if err != nil {
		return 0, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return 0, err
			}
			if math.IsNaN(v) || v < 0 {
				return 0, fmt.Errorf("entry (%d,%d)=%g: %w", i, j, v, ErrNegativeCost)
			}
		}
	}

	return n, nil
}
