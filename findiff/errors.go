// SPDX-License-Identifier: MIT
// Package findiff: sentinel error set.

package findiff

import "errors"

var (
	// ErrUnsupportedWind is returned when an operator builder gets a wind it
	// cannot honour (e.g. Smart, which is resolved per row by the rollers).
	ErrUnsupportedWind = errors.New("findiff: unsupported wind")

	// ErrNilOperator indicates a nil output matrix.
	ErrNilOperator = errors.New("findiff: nil operator")

	// ErrGridNotIncreasing indicates that grid nodes are not strictly increasing.
	ErrGridNotIncreasing = errors.New("findiff: grid must be strictly increasing")
)
