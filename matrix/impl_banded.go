// SPDX-License-Identifier: MIT
// Package matrix: banded kernels on compact band storage.
//
// Storage convention:
//   - An n×n band matrix with m1 sub-diagonals and m2 super-diagonals is kept
//     as an n×(m1+m2+1) array; element (i, j) lives at compact column j-i+m1.
//   - Tridiagonal (m1 = m2 = 1): columns 0/1/2 are sub/diag/super.
//   - Lower bidiagonal (m1 = 1, m2 = 0): columns 0/1 are sub/diag.
//   - Upper bidiagonal (m1 = 0, m2 = 1): columns 0/1 are diag/super.
//   - Compact entries that fall outside the n×n matrix are ignored on read.
//
// Determinism & Performance:
//   - Every kernel is a single O(n·w) pass with no allocation, except Tridag
//     when the caller passes a nil scratch slice.
//   - Shape checks are O(1); numerical preconditions are not checked.

package matrix

import "unsafe"

// Banmul computes x = A·b for a band matrix A with bandwidths (m1, m2).
//
// Implementation:
//   - Stage 1: validate band shape and vector lengths; reject x aliasing b.
//   - Stage 2: for row i the compact column j multiplies b[i-m1+j]; the loop
//     range is clipped to the entries that exist inside the n×n matrix.
//
// Inputs:
//   - a: n×(m1+m2+1) compact band.
//   - b: input vector, len n.
//   - x: output vector, len n; must not share storage with b (any overlap
//     of the two ranges is rejected).
//
// Errors:
//   - ErrNilMatrix, ErrBadBandwidth, ErrDimensionMismatch, ErrAliased.
//
// Complexity:
//   - Time O(n*(m1+m2+1)), Space O(1).
func Banmul[T Real](a Band[T], m1, m2 int, b, x []T) error {
	if err := validateBandCall(a, m1, m2, b, x); err != nil {
		return matrixErrorf(opBanmul, err)
	}
	n := a.Rows()
	if n == 0 {
		return nil
	}
	if overlaps(x, b) {
		return matrixErrorf(opBanmul, ErrAliased)
	}

	w := m1 + m2 + 1
	var i, j, k, lo, hi int
	var s T
	for i = 0; i < n; i++ {
		row := a.Row(i)
		k = i - m1
		lo = max(0, -k)
		hi = min(w, n-k)
		s = ZeroSum
		for j = lo; j < hi; j++ {
			s += row[j] * b[j+k]
		}
		x[i] = s
	}

	return nil
}

// overlaps reports whether the backing ranges of a and b share an element.
func overlaps[T Real](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	var z T
	size := unsafe.Sizeof(z)
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	a1 := a0 + uintptr(len(a))*size
	b1 := b0 + uintptr(len(b))*size

	return a0 < b1 && b0 < a1
}

// Tridag solves A·u = r for tridiagonal A (compact sub/diag/super columns)
// with the Thomas algorithm.
//
// Implementation:
//   - Stage 1: validate shape; allocate gam when the caller passes nil.
//   - Stage 2: forward elimination storing the normalised super-diagonal in gam.
//   - Stage 3: back substitution.
//
// Behavior highlights:
//   - u may be the same slice as r: r[j] is consumed before u[j] is written.
//   - No pivoting and no zero-pivot detection; a singular or non-dominant
//     system yields Inf/NaN entries.
//
// Errors:
//   - ErrNilMatrix, ErrBadBandwidth, ErrDimensionMismatch (r, u, or a
//     non-nil gam of the wrong length).
//
// Complexity:
//   - Time O(n), Space O(1) with caller scratch, O(n) otherwise.
func Tridag[T Real](a Band[T], r, u, gam []T) error {
	if err := validateBandCall(a, 1, 1, r, u); err != nil {
		return matrixErrorf(opTridag, err)
	}
	n := a.Rows()
	if gam == nil {
		gam = make([]T, n)
	} else if err := ValidateVecLen(gam, n); err != nil {
		return matrixErrorf(opTridag, err)
	}
	if n == 0 {
		return nil
	}

	row := a.Row(0)
	bet := row[1]
	u[0] = r[0] / bet
	var j int
	for j = 1; j < n; j++ {
		prev := a.Row(j - 1)
		row = a.Row(j)
		gam[j] = prev[2] / bet
		bet = row[1] - row[0]*gam[j]
		u[j] = (r[j] - row[0]*u[j-1]) / bet
	}
	for j = n - 2; j >= 0; j-- {
		u[j] -= gam[j+1] * u[j+1]
	}

	return nil
}

// Leftdag solves L·u = r for lower-bidiagonal L (compact columns sub/diag)
// by forward substitution. u may be the same slice as r.
//
// Errors: ErrNilMatrix, ErrBadBandwidth, ErrDimensionMismatch.
// Complexity: O(n).
func Leftdag[T Real](a Band[T], r, u []T) error {
	if err := validateBandCall(a, 1, 0, r, u); err != nil {
		return matrixErrorf(opLeftdag, err)
	}
	n := a.Rows()
	if n == 0 {
		return nil
	}
	u[0] = r[0] / a.Row(0)[1]
	var i int
	for i = 1; i < n; i++ {
		row := a.Row(i)
		u[i] = (r[i] - row[0]*u[i-1]) / row[1]
	}

	return nil
}

// Rightdag solves U·u = r for upper-bidiagonal U (compact columns diag/super)
// by backward substitution. u may be the same slice as r.
//
// Errors: ErrNilMatrix, ErrBadBandwidth, ErrDimensionMismatch.
// Complexity: O(n).
func Rightdag[T Real](a Band[T], r, u []T) error {
	if err := validateBandCall(a, 0, 1, r, u); err != nil {
		return matrixErrorf(opRightdag, err)
	}
	n := a.Rows()
	if n == 0 {
		return nil
	}
	u[n-1] = r[n-1] / a.Row(n-1)[0]
	var i int
	for i = n - 2; i >= 0; i-- {
		row := a.Row(i)
		u[i] = (r[i] - row[1]*u[i+1]) / row[0]
	}

	return nil
}

// TransposeBandInPlace replaces a symmetric-bandwidth band (m1 = m2 = mm,
// 2mm+1 columns) with the band of its transpose.
//
// Implementation:
//   - Stage 1: for each row i and each sub-diagonal slot k < mm, the entry
//     (i, i-mm+k) swaps with its mirror (i-mm+k, i) stored at compact column
//     2mm-k of row i-mm+k; slots whose mirror row is negative are zeroed.
//   - Stage 2: super-diagonal slots whose column lies past n-1 are zeroed;
//     their mirror entries do not exist.
//
// Complexity:
//   - Time O(n*mm), Space O(1).
func TransposeBandInPlace[T Real](a Band[T], mm int) error {
	if err := validateBandCall(a, mm, mm); err != nil {
		return matrixErrorf(opTransposeIP, err)
	}
	n := a.Rows()
	w := 2 * mm
	var i, k, src int
	for i = 0; i < n; i++ {
		row := a.Row(i)
		for k = 0; k < mm; k++ {
			src = i - mm + k
			if src < 0 {
				row[k] = 0
				continue
			}
			mirror := a.Row(src)
			row[k], mirror[w-k] = mirror[w-k], row[k]
		}
	}
	for i = max(0, n-mm); i < n; i++ {
		row := a.Row(i)
		for k = mm + 1; k <= w; k++ {
			if i-mm+k >= n {
				row[k] = 0
			}
		}
	}

	return nil
}

// TransposeBand writes the band of Aᵀ into out, where a holds A with
// bandwidths (m1, m2). out therefore has bandwidths (m2, m1) and the same
// column count; entries outside the n×n matrix are written as zero.
//
// Errors: ErrNilMatrix, ErrBadBandwidth, ErrDimensionMismatch (row counts), ErrAliased.
// Complexity: O(n*(m1+m2+1)).
func TransposeBand[T Real](a Band[T], m1, m2 int, out Band[T]) error {
	if err := validateBandCall(a, m1, m2); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	if err := validateBandCall(out, m2, m1); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	n := a.Rows()
	if out.Rows() != n {
		return matrixErrorf(opTranspose, ErrDimensionMismatch)
	}
	if n == 0 {
		return nil
	}
	if &a.Row(0)[0] == &out.Row(0)[0] {
		return matrixErrorf(opTranspose, ErrAliased)
	}

	w := m1 + m2
	var i, k, src int
	for i = 0; i < n; i++ {
		orow := out.Row(i)
		for k = 0; k <= w; k++ {
			src = i - m2 + k
			if src < 0 || src >= n {
				orow[k] = 0
				continue
			}
			orow[k] = a.Row(src)[w-k]
		}
	}

	return nil
}

// ExpandBand materialises the n×n dense matrix held by a band with
// bandwidths (m1, m2). Intended for diagnostics and tests.
//
// Complexity: O(n²).
func ExpandBand[T Real](a Band[T], m1, m2 int) (*Dense[T], error) {
	if err := validateBandCall(a, m1, m2); err != nil {
		return nil, matrixErrorf(opExpand, err)
	}
	n := a.Rows()
	out, _ := NewDense[T](n, n) // n >= 0
	var i, k, j int
	for i = 0; i < n; i++ {
		row := a.Row(i)
		for k = range row {
			j = i - m1 + k
			if j >= 0 && j < n {
				out.data[i*n+j] = row[k]
			}
		}
	}

	return out, nil
}
