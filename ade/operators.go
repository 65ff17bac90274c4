// SPDX-License-Identifier: MIT
// Package ade: split operators.
//
// The one-sided operators dxd (sub, diag) and dxu (diag, super) are blended
// so that Dxd + Dxu reproduces the weighted central first derivative and
// Dxxd + Dxxu the three-point second derivative on interior rows.

package ade

import (
	"fmt"

	"github.com/katalvlaran/fdm/matrix"
)

const bandCols = 2 // bidiagonal operators

// Compact diagonal column of each half.
const (
	centerDown = 1 // lower bidiagonal: sub, diag
	centerUp   = 0 // upper bidiagonal: diag, super
)

func resizeAll[T matrix.Real](n int, ms ...*matrix.Dense[T]) error {
	for _, m := range ms {
		if m == nil {
			return ErrNilOperator
		}
		if err := m.Resize(n, bandCols); err != nil {
			return err
		}
	}

	return nil
}

// SplitDx writes the blended first-derivative halves
//
//	Dxd = λd·dxd,  Dxu = λu·dxu
//
// with λu = (x[i]−x[i−1])/(x[i+1]−x[i−1]) and λd = 1−λu on interior rows
// and λd = λu = 1 on the boundary rows.
//
// Errors: ErrNilOperator, matrix.ErrBadBandwidth (inputs not n×2).
// Complexity: O(n).
func SplitDx[T matrix.Real](x []T, dxd, dxu, outD, outU *matrix.Dense[T]) error {
	if err := checkOneSided(x, dxd, dxu); err != nil {
		return fmt.Errorf("ade: SplitDx: %w", err)
	}
	n := len(x)
	if err := resizeAll(n, outD, outU); err != nil {
		return fmt.Errorf("ade: SplitDx: %w", err)
	}
	var i, j int
	var lamd, lamu T
	for i = 0; i < n; i++ {
		lamd, lamu = 1, 1
		if 0 < i && i < n-1 {
			lamu = (x[i] - x[i-1]) / (x[i+1] - x[i-1])
			lamd = 1 - lamu
		}
		d, u := dxd.Row(i), dxu.Row(i)
		od, ou := outD.Row(i), outU.Row(i)
		for j = 0; j < bandCols; j++ {
			od[j] = lamd * d[j]
			ou[j] = lamu * u[j]
		}
	}

	return nil
}

// SplitDxx writes the second-derivative halves
//
//	Dxxd = −λ·dxd,  Dxxu = λ·dxu
//
// with λ = 2/(x[i+1]−x[i−1]) on interior rows and 0 on the boundary rows.
//
// Errors: ErrNilOperator, matrix.ErrBadBandwidth.
// Complexity: O(n).
func SplitDxx[T matrix.Real](x []T, dxd, dxu, outD, outU *matrix.Dense[T]) error {
	if err := checkOneSided(x, dxd, dxu); err != nil {
		return fmt.Errorf("ade: SplitDxx: %w", err)
	}
	n := len(x)
	if err := resizeAll(n, outD, outU); err != nil {
		return fmt.Errorf("ade: SplitDxx: %w", err)
	}
	var i, j int
	var lam T
	for i = 0; i < n; i++ {
		lam = 0
		if 0 < i && i < n-1 {
			lam = 2 / (x[i+1] - x[i-1])
		}
		d, u := dxd.Row(i), dxu.Row(i)
		od, ou := outD.Row(i), outU.Row(i)
		for j = 0; j < bandCols; j++ {
			od[j] = -lam * d[j]
			ou[j] = lam * u[j]
		}
	}

	return nil
}

func checkOneSided[T matrix.Real](x []T, dxd, dxu *matrix.Dense[T]) error {
	if dxd == nil || dxu == nil {
		return ErrNilOperator
	}
	if err := matrix.ValidateBandwidth[T](dxd, 1, 0); err != nil {
		return err
	}
	if err := matrix.ValidateBandwidth[T](dxu, 0, 1); err != nil {
		return err
	}
	if dxd.Rows() != len(x) || dxu.Rows() != len(x) {
		return matrix.ErrDimensionMismatch
	}

	return nil
}

// CalcB writes B = one·I + dt·A into b, where center is the compact
// diagonal column of A (1 for the lower half, 0 for the upper half).
//
// Errors: ErrNilOperator, ErrBadCenter.
// Complexity: O(n).
func CalcB[T matrix.Real](one, dt T, center int, a, b *matrix.Dense[T]) error {
	if a == nil || b == nil {
		return fmt.Errorf("ade: CalcB: %w", ErrNilOperator)
	}
	if center < 0 || center >= a.Cols() {
		return fmt.Errorf("ade: CalcB(center=%d, cols=%d): %w", center, a.Cols(), ErrBadCenter)
	}
	if err := b.Resize(a.Rows(), a.Cols()); err != nil {
		return err
	}
	src, dst := a.Data(), b.Data()
	for k := range src {
		dst[k] = dt * src[k]
	}
	var i int
	for i = 0; i < a.Rows(); i++ {
		b.AddElem(i, center, one)
	}

	return nil
}

// calcArow fills row of a with var2·Dxx (+ μ·Dx when dx is non-nil) and
// subtracts r2 on the center column.
func calcArow[T matrix.Real](r2, mu, var2 T, row, center int, dx, dxx, a *matrix.Dense[T]) {
	out, xx := a.Row(row), dxx.Row(row)
	if dx == nil {
		for j := range out {
			out[j] = var2 * xx[j]
		}
	} else {
		d := dx.Row(row)
		for j := range out {
			out[j] = var2*xx[j] + mu*d[j]
		}
	}
	out[center] -= r2
}
