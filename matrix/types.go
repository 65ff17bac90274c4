// SPDX-License-Identifier: MIT

// Package matrix: numeric constraint and the band interface shared by kernels.
package matrix

import "golang.org/x/exp/constraints"

// Real is the scalar type every kernel is generic over.
// float64 is the production instantiation; float32 works for memory-bound runs.
type Real interface {
	constraints.Float
}

// Band is the read/write row access the banded kernels need.
// Both *Dense and *MatrixView satisfy it, so kernels run unchanged on owning
// storage and on borrowed windows.
//
// Row(i) must return a slice of exactly Cols() elements aliasing the storage.
type Band[T Real] interface {
	Rows() int
	Cols() int
	Row(i int) []T
}

// Compile-time assertions.
var (
	_ Band[float64] = (*Dense[float64])(nil)
	_ Band[float64] = (*MatrixView[float64])(nil)
)
