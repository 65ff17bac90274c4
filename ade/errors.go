// SPDX-License-Identifier: MIT
// Package ade: sentinel error set.

package ade

import "errors"

var (
	// ErrBatchShape indicates a state vector whose length differs from the
	// grid size, or a negative batch size.
	ErrBatchShape = errors.New("ade: batch shape does not match grid")

	// ErrNilOperator indicates a nil input or output operator.
	ErrNilOperator = errors.New("ade: nil operator")

	// ErrBadCenter indicates a diagonal column outside the operator width.
	ErrBadCenter = errors.New("ade: center column out of range")
)
