// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the dense and banded kernels.
//   - Keep all data finite and diagonally dominant so solves are well-posed.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/fdm/matrix"
	"gonum.org/v1/gonum/mat"
)

// tol is the absolute tolerance for kernel comparisons on O(1) data.
const tol = 1e-12

// mustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func mustDense(tb testing.TB, r, c int) *matrix.Dense[float64] {
	tb.Helper()
	m, err := matrix.NewDense[float64](r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// mustDenseFrom builds a *Dense from literal rows or fails the test.
func mustDenseFrom(tb testing.TB, rows [][]float64) *matrix.Dense[float64] {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		tb.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// randomBand fills an n×(m1+m2+1) band with values in [-1,1) and makes the
// diagonal dominate its row by a margin of 1.
func randomBand(tb testing.TB, n, m1, m2 int, seed int64) *matrix.Dense[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	a := mustDense(tb, n, m1+m2+1)
	var i, k int
	for i = 0; i < n; i++ {
		row := a.Row(i)
		var off float64
		for k = range row {
			row[k] = 2*rng.Float64() - 1
			if k != m1 {
				off += math.Abs(row[k])
			}
		}
		row[m1] = off + 1
	}

	return a
}

// randomVec returns a deterministic vector of length n with entries in [-1,1).
func randomVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = 2*rng.Float64() - 1
	}

	return v
}

// toGonum converts a Dense to a gonum *mat.Dense (deep copy).
func toGonum(d *matrix.Dense[float64]) *mat.Dense {
	r, c := d.Shape()
	data := make([]float64, r*c)
	copy(data, d.Data())

	return mat.NewDense(r, c, data)
}

// requireVecClose fails when any |a[i]-b[i]| exceeds eps.
func requireVecClose(tb testing.TB, want, got []float64, eps float64) {
	tb.Helper()
	if len(want) != len(got) {
		tb.Fatalf("length mismatch: want %d, got %d", len(want), len(got))
	}
	for i := range want {
		if math.Abs(want[i]-got[i]) > eps {
			tb.Fatalf("index %d: want %.15g, got %.15g (eps %g)", i, want[i], got[i], eps)
		}
	}
}
