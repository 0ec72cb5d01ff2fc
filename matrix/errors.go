// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with %w for
// context) and tests check them via errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when requested shape is invalid (e.g., r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNegativeCost signals a negative or NaN entry in a cost matrix.
	ErrNegativeCost = errors.New("matrix: negative or NaN cost")

	// ErrUnsupportedFormat is returned by Export/Import for an unknown encoding.
	ErrUnsupportedFormat = errors.New("matrix: unsupported format")

	// ErrMalformedInput is returned when an encoded matrix cannot be parsed.
	ErrMalformedInput = errors.New("matrix: malformed input")
)
