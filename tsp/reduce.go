// Package tsp - cost-matrix reduction (the bound-tightening step of Little's
// algorithm).
//
// Reduction subtracts from every row its smallest finite entry, then from
// every column of the row-reduced matrix its smallest finite entry. The sum
// of all subtracted minima is an additive lower bound on any tour that the
// matrix still admits, and relative costs between complete tours are
// preserved. A row or column with no finite entry contributes 0.
package tsp

import "github.com/katalvlaran/littletsp/matrix"

// Reduce returns the row/column-reduced copy of dist together with the
// reduction amount. dist itself is not modified. Unlike Solve, Reduce does
// not require a +Inf diagonal; it only rejects malformed shapes and
// negative/NaN entries.
//
// Complexity: O(n²) time, O(n²) space.
func Reduce(dist matrix.Matrix) (*matrix.Dense, float64, error) {
	n, err := validateShape(dist)
	if err != nil {
		return nil, 0, err
	}
	if err = validateEntries(dist, n, false); err != nil {
		return nil, 0, err
	}
	reduced, amount := prefetch(dist, n).reduce()

	return reduced.toDense(), amount, nil
}

// reduce returns a reduced copy of g and the total subtracted amount.
//
// Complexity: O(n²).
func (g grid) reduce() (grid, float64) {
	var (
		r      = g.clone()
		n      = g.n
		total  float64
		i, j   int
		m, x   float64
		rowOff int
	)

	// Rows.
	for i = 0; i < n; i++ {
		rowOff = i * n
		m = inf
		for j = 0; j < n; j++ {
			if x = r.w[rowOff+j]; x < m {
				m = x
			}
		}
		if m == inf || m == 0 {
			continue // all-Inf row counts as 0
		}
		for j = 0; j < n; j++ {
			r.w[rowOff+j] -= m // Inf - m stays Inf
		}
		total += m
	}

	// Columns of the row-reduced matrix.
	for j = 0; j < n; j++ {
		m = inf
		for i = 0; i < n; i++ {
			if x = r.w[i*n+j]; x < m {
				m = x
			}
		}
		if m == inf || m == 0 {
			continue
		}
		for i = 0; i < n; i++ {
			r.w[i*n+j] -= m
		}
		total += m
	}

	return r, total
}
