// SPDX-License-Identifier: MIT
// Package fd1d: sentinel error set.

package fd1d

import "errors"

var (
	// ErrBatchShape indicates a state vector whose length differs from the
	// grid size, or a negative batch size.
	ErrBatchShape = errors.New("fd1d: batch shape does not match grid")

	// ErrInvalidTheta indicates θ outside [0, 1] or NaN.
	ErrInvalidTheta = errors.New("fd1d: theta must lie in [0,1]")

	// ErrNilOperator indicates a nil output operator passed to CalcAx.
	ErrNilOperator = errors.New("fd1d: nil operator")
)
