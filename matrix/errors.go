// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation
// tag via matrixErrorf); tests check them via errors.Is. Panics are reserved
// for the fdmcheck diagnostic build.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping across logs.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned when a view window or a flat buffer does not fit
	// the requested rows×cols.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a right-hand side whose length differs from the band's row count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadBandwidth signals that declared band widths are negative or do not
	// match the compact column count (m1+m2+1).
	ErrBadBandwidth = errors.New("matrix: bandwidth does not match band columns")

	// ErrNaNInf signals a NaN or ±Inf value passed to Set.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrAliased signals that an output vector shares storage with an input
	// the kernel reads after writing (Banmul requires x and b to be distinct).
	ErrAliased = errors.New("matrix: output aliases input")

	// ErrNilMatrix indicates that a nil matrix or vector argument was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
