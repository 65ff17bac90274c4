// SPDX-License-Identifier: MIT
// Package findiff: differential operators on a non-uniform grid.
//
// Row i of every operator approximates the derivative at node x[i] using the
// lower spacing dxl = x[i]-x[i-1] and the upper spacing dxu = x[i+1]-x[i].

package findiff

import (
	"fmt"

	"github.com/katalvlaran/fdm/matrix"
)

// Operator widths in compact band storage.
const (
	tridiagCols = 3
	bidiagCols  = 2
)

// prepare resizes out to n×cols and clears it.
func prepare[T matrix.Real](op string, out *matrix.Dense[T], n, cols int) error {
	if out == nil {
		return fmt.Errorf("findiff: %s: %w", op, ErrNilOperator)
	}
	if err := out.Resize(n, cols); err != nil {
		return fmt.Errorf("findiff: %s: %w", op, err)
	}
	out.Fill(0)

	return nil
}

// Dx writes the 3-wide first-derivative operator for the given wind.
//
// Implementation:
//   - Row 0: up difference when wind is Center or Up, zero for Down.
//   - Interior rows: Down → (-1/dxl, 1/dxl, 0); Up → (0, -1/dxu, 1/dxu);
//     Center → (-dxu/dxl, dxu/dxl - dxl/dxu, dxl/dxu) / (dxl+dxu).
//   - Row n-1: down difference when wind is Center or Down, zero for Up.
//
// Errors:
//   - ErrNilOperator, ErrUnsupportedWind (Smart or unknown values).
//
// Complexity:
//   - Time O(n), Space O(1) beyond out.
func Dx[T matrix.Real](wind Wind, x []T, out *matrix.Dense[T]) error {
	if wind != Down && wind != Center && wind != Up {
		return fmt.Errorf("findiff: Dx(%s): %w", wind, ErrUnsupportedWind)
	}
	if err := prepare("Dx", out, len(x), tridiagCols); err != nil {
		return err
	}
	n := len(x) - 1
	if n < 1 {
		return nil
	}

	if wind >= Center {
		dxu := x[1] - x[0]
		row := out.Row(0)
		row[1] = -1 / dxu
		row[2] = 1 / dxu
	}

	var i int
	var dxl, dxu, sum T
	for i = 1; i < n; i++ {
		dxl = x[i] - x[i-1]
		dxu = x[i+1] - x[i]
		row := out.Row(i)
		switch wind {
		case Down:
			row[0] = -1 / dxl
			row[1] = 1 / dxl
		case Center:
			sum = dxl + dxu
			row[0] = -dxu / dxl / sum
			row[1] = (dxu/dxl - dxl/dxu) / sum
			row[2] = dxl / dxu / sum
		case Up:
			row[1] = -1 / dxu
			row[2] = 1 / dxu
		}
	}

	if wind <= Center {
		dxl = x[n] - x[n-1]
		row := out.Row(n)
		row[0] = -1 / dxl
		row[1] = 1 / dxl
	}

	return nil
}

// Dxx writes the 3-wide second-derivative operator. Boundary rows are zero.
//
// Interior row i:
//
//	( 2/(dxl(dxl+dxu)), -(2/dxl + 2/dxu)/(dxl+dxu), 2/(dxu(dxl+dxu)) )
//
// Complexity: O(n).
func Dxx[T matrix.Real](x []T, out *matrix.Dense[T]) error {
	if err := prepare("Dxx", out, len(x), tridiagCols); err != nil {
		return err
	}
	n := len(x) - 1
	var i int
	var dxl, dxu, sum T
	for i = 1; i < n; i++ {
		dxl = x[i] - x[i-1]
		dxu = x[i+1] - x[i]
		sum = dxl + dxu
		row := out.Row(i)
		row[0] = 2 / (dxl * sum)
		row[1] = -(2/dxl + 2/dxu) / sum
		row[2] = 2 / (dxu * sum)
	}

	return nil
}

// Dxd writes the n×2 down-difference operator (sub, diag); row 0 is zero.
// Complexity: O(n).
func Dxd[T matrix.Real](x []T, out *matrix.Dense[T]) error {
	if err := prepare("Dxd", out, len(x), bidiagCols); err != nil {
		return err
	}
	var i int
	var dxl T
	for i = 1; i < len(x); i++ {
		dxl = x[i] - x[i-1]
		row := out.Row(i)
		row[0] = -1 / dxl
		row[1] = 1 / dxl
	}

	return nil
}

// Dxu writes the n×2 up-difference operator (diag, super); row n-1 is zero.
// Complexity: O(n).
func Dxu[T matrix.Real](x []T, out *matrix.Dense[T]) error {
	if err := prepare("Dxu", out, len(x), bidiagCols); err != nil {
		return err
	}
	var i int
	var dxu T
	for i = 0; i+1 < len(x); i++ {
		dxu = x[i+1] - x[i]
		row := out.Row(i)
		row[0] = -1 / dxu
		row[1] = 1 / dxu
	}

	return nil
}

// ValidateGrid reports ErrGridNotIncreasing unless x is strictly increasing.
// Empty and single-node grids are valid.
func ValidateGrid[T matrix.Real](x []T) error {
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) { // also rejects NaN
			return fmt.Errorf("findiff: node %d (%g) <= node %d (%g): %w", i, float64(x[i]), i-1, float64(x[i-1]), ErrGridNotIncreasing)
		}
	}

	return nil
}
