// SPDX-License-Identifier: MIT
// Package findiff: cell-averaged payoffs.
//
// Averaging a kinked or discontinuous payoff over the cell of each node
// removes the grid-alignment error of the strike from the initial condition.

package findiff

import "github.com/katalvlaran/fdm/matrix"

// SmoothCall returns the mean of max(x-K, 0) over [xl, xu].
func SmoothCall[T matrix.Real](xl, xu, strike T) T {
	switch {
	case xu <= strike:
		return 0
	case strike <= xl:
		return 0.5*(xl+xu) - strike
	default:
		d := xu - strike
		return 0.5 * d * d / (xu - xl)
	}
}

// SmoothPut returns the mean of max(K-x, 0) over [xl, xu], obtained from the
// call mean by parity: put = call - (mean(x) - K).
func SmoothPut[T matrix.Real](xl, xu, strike T) T {
	return SmoothCall(xl, xu, strike) - (0.5*(xl+xu) - strike)
}

// SmoothDigital returns the mean of 1{x > K} over [xl, xu].
func SmoothDigital[T matrix.Real](xl, xu, strike T) T {
	switch {
	case xu <= strike:
		return 0
	case strike <= xl:
		return 1
	default:
		return (xu - strike) / (xu - xl)
	}
}

// CellBounds returns the mid-point cell edges of every node: lo[i] is the
// mid-point with the lower neighbour, hi[i] with the upper one. The outer
// edges of the first and last cells coincide with the nodes themselves.
func CellBounds[T matrix.Real](x []T) (lo, hi []T) {
	n := len(x)
	lo = make([]T, n)
	hi = make([]T, n)
	for i := 0; i < n; i++ {
		lo[i], hi[i] = x[i], x[i]
		if i > 0 {
			lo[i] = 0.5 * (x[i-1] + x[i])
		}
		if i+1 < n {
			hi[i] = 0.5 * (x[i] + x[i+1])
		}
	}

	return lo, hi
}
