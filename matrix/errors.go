// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every constructor, validator and loader returns these sentinels
// (possibly wrapped with call-site context) and tests match them via errors.Is.
// No function panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so that wrapped chains stay
// greppable. Sentinels are returned directly from kernels; the loader wraps
// them with fmt.Errorf("ctx: %w", ErrX) at the file boundary.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates inconsistent dimensions, e.g. ragged rows
	// or a declared size that disagrees with the data.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeCost signals a negative entry in a cost matrix.
	ErrNegativeCost = errors.New("matrix: negative cost")

	// ErrDisconnected signals that some pair has no finite path cost after
	// metric closure.
	ErrDisconnected = errors.New("matrix: disconnected cost matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
