// SPDX-License-Identifier: MIT

package pricer

import (
	"fmt"
	"math"
)

// UniformGrid returns n equally spaced nodes on [lo, hi] (both included).
// Errors: ErrConfig unless n >= 2 and lo < hi.
func UniformGrid(lo, hi float64, n int) ([]float64, error) {
	if n < 2 || !(lo < hi) {
		return nil, fmt.Errorf("UniformGrid(%g, %g, %d): %w", lo, hi, n, ErrConfig)
	}
	x := make([]float64, n)
	h := (hi - lo) / float64(n-1)
	for i := range x {
		x[i] = lo + float64(i)*h
	}
	x[n-1] = hi

	return x, nil
}

// ConcentratedGrid returns n nodes on [lo, hi] clustered around center with
// a sinh stretching of the given intensity (> 0; larger is denser near
// center). The end points are exact.
//
// Errors: ErrConfig for n < 2, lo >= hi, center outside [lo, hi] or
// intensity <= 0.
func ConcentratedGrid(lo, hi float64, n int, center, intensity float64) ([]float64, error) {
	if n < 2 || !(lo < hi) || center < lo || center > hi || !(intensity > 0) {
		return nil, fmt.Errorf("ConcentratedGrid(%g, %g, %d, %g, %g): %w", lo, hi, n, center, intensity, ErrConfig)
	}
	width := hi - lo
	c := (center - lo) / width
	a := math.Asinh(-c * intensity)
	b := math.Asinh((1 - c) * intensity)
	x := make([]float64, n)
	for i := range x {
		u := float64(i) / float64(n-1)
		x[i] = lo + width*(c+math.Sinh(a+u*(b-a))/intensity)
	}
	x[0], x[n-1] = lo, hi

	return x, nil
}
