// SPDX-License-Identifier: MIT

// Package matrix provides the storage and linear-algebra kernels used by the
// finite-difference rollers.
//
// The package provides:
//
//   - Dense, a generic row-major owning array, and MatrixView, a non-owning
//     rectangular window over a Dense or over a caller-owned flat slice.
//   - Banded kernels operating on compact band storage, where row i of an
//     n×(m1+m2+1) array holds the entries of columns i-m1 … i+m2 of the
//     underlying n×n matrix (compact column = j - i + m1):
//     Banmul (band matrix × vector), Tridag (Thomas algorithm),
//     Leftdag / Rightdag (bidiagonal substitution), TransposeBandInPlace and
//     TransposeBand (band-aware transposition), ExpandBand (to dense).
//   - Small dense helpers: Mul (matrix product) and MatVec.
//
// Zero-area matrices are legal: an empty grid produces 0×k operators and
// every kernel treats n == 0 as a no-op.
//
// Shapes are validated in O(1) and reported with sentinel errors (see
// errors.go). Element accessors on the hot path (Elem, SetElem, Index, Row)
// perform no checks beyond Go's own slice bounds; building with
//
//	go build -tags fdmcheck
//
// turns on descriptive panics naming the violated accessor.
//
// Numerical preconditions are NOT checked: Tridag performs no pivoting and
// divides by whatever pivot elimination produces. Callers guarantee diagonal
// dominance (the rollers do so by construction for valid θ/Δt/grid choices).
package matrix
