// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and validators MUST return these sentinels and
// tests MUST check them via errors.Is. No function panics on user input.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Dense creation must validate before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured numeric tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals that a diagonal entry required to be ~0
	// (within tolerance) was observed non-zero.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeWeight indicates a negative entry where distances are expected.
	ErrNegativeWeight = errors.New("matrix: negative distance encountered")

	// ErrNoCoordinates is returned when a distance builder receives an empty
	// coordinate list (at least one coordinate is required).
	ErrNoCoordinates = errors.New("matrix: no coordinates")

	// ErrUnknownMetric is returned when a distance builder receives a Metric
	// value outside the declared enum.
	ErrUnknownMetric = errors.New("matrix: unknown distance metric")
)
