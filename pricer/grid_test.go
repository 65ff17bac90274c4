package pricer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fdm/pricer"
)

func TestUniformGrid(t *testing.T) {
	x, err := pricer.UniformGrid(50, 150, 21)
	require.NoError(t, err)
	require.Len(t, x, 21)
	require.Equal(t, 50.0, x[0])
	require.Equal(t, 100.0, x[10])
	require.Equal(t, 150.0, x[20])

	_, err = pricer.UniformGrid(1, 1, 5)
	require.ErrorIs(t, err, pricer.ErrConfig)
	_, err = pricer.UniformGrid(0, 1, 1)
	require.ErrorIs(t, err, pricer.ErrConfig)
}

func TestConcentratedGrid(t *testing.T) {
	const n = 41
	x, err := pricer.ConcentratedGrid(50, 150, n, 100, 5)
	require.NoError(t, err)
	require.Len(t, x, n)
	require.Equal(t, 50.0, x[0])
	require.Equal(t, 150.0, x[n-1])
	for i := 1; i < n; i++ {
		require.Greater(t, x[i], x[i-1], "node %d", i)
	}
	// spacing is finest at the center and coarsest at the edges
	uniform := 100.0 / float64(n-1)
	require.Less(t, x[n/2+1]-x[n/2], uniform)
	require.Greater(t, x[1]-x[0], uniform)

	for _, bad := range [][5]float64{{50, 150, 1, 100, 5}, {150, 50, 9, 100, 5}, {50, 150, 9, 200, 5}, {50, 150, 9, 100, 0}} {
		_, err = pricer.ConcentratedGrid(bad[0], bad[1], int(bad[2]), bad[3], bad[4])
		require.ErrorIs(t, err, pricer.ErrConfig, "%v", bad)
	}
}
