// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read/write view the solvers accept. Entry (i, j) is the
// cost of travelling from city i to city j; math.Inf(1) marks a missing edge.
//
// Implementations other than *Dense are accepted everywhere but are copied
// into a Dense (or a flat buffer) before any heavy work.
type Matrix interface {
	Rows() int
	Cols() int

	// At returns the cost at (i, j), or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set stores v at (i, j), or returns ErrOutOfRange.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
