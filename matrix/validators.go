// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks used by the kernels.
//  - Keep kernels minimal by delegating nil/bandwidth/length checks here.
//  - Return sentinel errors wrapped only with the validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Bandwidth → Length).
//  - Numerical conditions (pivots, dominance) are deliberately not validated here.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the band reference is non-nil.
//
// Returns ErrNilMatrix if a == nil.
// Complexity: O(1).
func ValidateNotNil[T Real](a Band[T]) error {
	if a == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := a.(*Dense[T]); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if v, ok := a.(*MatrixView[T]); ok && v == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateBandwidth checks m1, m2 >= 0 and Cols() == m1+m2+1.
//
// Implementation: assumes a is non-nil.
// Errors: ErrBadBandwidth.
// Complexity: O(1).
func ValidateBandwidth[T Real](a Band[T], m1, m2 int) error {
	if m1 < 0 || m2 < 0 {
		return validatorErrorf("ValidateBandwidth: negative", ErrBadBandwidth)
	}
	if a.Cols() != m1+m2+1 {
		return validatorErrorf(fmt.Sprintf("ValidateBandwidth: cols=%d want %d", a.Cols(), m1+m2+1), ErrBadBandwidth)
	}

	return nil
}

// ValidateVecLen ensures len(v) == n.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVecLen[T Real](v []T, n int) error {
	if len(v) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: len=%d want %d", len(v), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows() for a·b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Real](a, b *Dense[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible: inner", ErrDimensionMismatch)
	}

	return nil
}

// validateBandCall is the composite guard used by every banded kernel:
// NotNil → Bandwidth → each vector length equals Rows().
func validateBandCall[T Real](a Band[T], m1, m2 int, vecs ...[]T) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateBandwidth(a, m1, m2); err != nil {
		return err
	}
	n := a.Rows()
	for _, v := range vecs {
		if err := ValidateVecLen(v, n); err != nil {
			return err
		}
	}

	return nil
}
