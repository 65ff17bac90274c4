// SPDX-License-Identifier: MIT

// Package findiff builds the finite-difference operators of a one-dimensional,
// possibly non-uniform, grid and the cell-averaged payoffs used to seed a roll.
//
// Every operator is written into a caller-owned matrix.Dense in compact band
// storage (see package matrix):
//
//   - Dx:  n×3, first derivative; Down, Center or Up wind.
//   - Dxx: n×3, second derivative; rows 0 and n-1 are zero.
//   - Dxd: n×2, one-sided down difference (sub, diag); row 0 is zero.
//   - Dxu: n×2, one-sided up difference (diag, super); row n-1 is zero.
//
// A grid with no nodes produces zero-row operators and no error. A single
// node has no neighbour to difference against, so its operators are zero.
//
// SmoothCall, SmoothPut and SmoothDigital return the exact average of the
// payoff over a cell [xl, xu]; CellBounds supplies mid-point cell edges.
package findiff
