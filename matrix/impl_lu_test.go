package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fdm/matrix"
)

// TestLUReconstructs checks L·U == A on a diagonally dominant matrix.
func TestLUReconstructs(t *testing.T) {
	a, err := matrix.ExpandBand(randomBand(t, 7, 2, 1, 5), 2, 1)
	require.NoError(t, err)
	l, u, err := matrix.LU(a)
	require.NoError(t, err)
	for i := 0; i < 7; i++ {
		require.Equal(t, 1.0, l.Elem(i, i))
		for j := i + 1; j < 7; j++ {
			require.Zero(t, l.Elem(i, j))
			require.Zero(t, u.Elem(j, i))
		}
	}
	got, err := matrix.Mul(l, u)
	require.NoError(t, err)
	requireVecClose(t, a.Data(), got.Data(), 1e-12)
}

// TestTridagMatchesLU: without pivoting both solvers eliminate identically.
func TestTridagMatchesLU(t *testing.T) {
	const n = 40
	a := randomBand(t, n, 1, 1, 21)
	r := randomVec(n, 22)
	u := make([]float64, n)
	require.NoError(t, matrix.Tridag(a, r, u, nil))

	d, err := matrix.ExpandBand(a, 1, 1)
	require.NoError(t, err)
	lo, up, err := matrix.LU(d)
	require.NoError(t, err)
	x := append([]float64(nil), r...)
	require.NoError(t, matrix.LUSolve(lo, up, x, x))
	requireVecClose(t, x, u, 1e-12)
}

func TestLUErrors(t *testing.T) {
	_, _, err := matrix.LU(mustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, _, err = matrix.LU[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	l, u, err := matrix.LU(mustDenseFrom(t, [][]float64{{2, 1}, {1, 3}}))
	require.NoError(t, err)
	require.ErrorIs(t, matrix.LUSolve(l, u, []float64{1}, make([]float64, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.LUSolve(nil, u, nil, nil), matrix.ErrNilMatrix)

	x := make([]float64, 2)
	require.NoError(t, matrix.LUSolve(l, u, []float64{3, 4}, x))
	requireVecClose(t, []float64{1, 1}, x, 1e-15)
}
