// SPDX-License-Identifier: MIT
// Package matrix: dense linear-algebra helpers (matrix product, matrix-vector product).
//
// Purpose:
//   - Define operation tags and shared constants for deterministic error reporting.
//   - Provide the small dense kernels the tests and the pricer use as references
//     for the banded ones.
//
// Notes:
//   - Banded kernels live in impl_banded.go; both wrap sentinels via matrixErrorf.

package matrix

import "fmt"

// ZeroSum is the initial sum value for products and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul         = "Mul"
	opMatVec      = "MatVec"
	opBanmul      = "Banmul"
	opTridag      = "Tridag"
	opLeftdag     = "Leftdag"
	opRightdag    = "Rightdag"
	opTransposeIP = "TransposeBandInPlace"
	opTranspose   = "TransposeBand"
	opExpand      = "ExpandBand"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the dense product a·b as a new a.Rows()×b.Cols() matrix.
//
// Implementation:
//   - Stage 1: validate a.Cols() == b.Rows().
//   - Stage 2: i-k-j loop order so the inner loop streams rows of b and out.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul[T Real](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, _ := NewDense[T](a.r, b.c) // shapes are validated above
	var i, k, j int
	var aik T
	for i = 0; i < a.r; i++ {
		orow := out.Row(i)
		for k = 0; k < a.c; k++ {
			aik = a.data[i*a.c+k]
			if aik == ZeroSum {
				continue
			}
			brow := b.Row(k)
			for j = range orow {
				orow[j] += aik * brow[j]
			}
		}
	}

	return out, nil
}

// MatVec computes y = a·x into y (len(y) == a.Rows(), len(x) == a.Cols()).
//
// Complexity: O(r*c).
func MatVec[T Real](a *Dense[T], x, y []T) error {
	if a == nil {
		return matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if err := ValidateVecLen(x, a.c); err != nil {
		return matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(y, a.r); err != nil {
		return matrixErrorf(opMatVec, err)
	}
	var i, j int
	var s T
	for i = 0; i < a.r; i++ {
		row := a.Row(i)
		s = ZeroSum
		for j = range row {
			s += row[j] * x[j]
		}
		y[i] = s
	}

	return nil
}
