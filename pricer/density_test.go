package pricer_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fdm/pricer"
)

func sum(v []float64) float64 {
	var s float64
	for _, y := range v {
		s += y
	}

	return s
}

func TestDensityConservesMass(t *testing.T) {
	m := lognormal()
	m.Rate = nil
	for _, scheme := range []pricer.Scheme{pricer.Theta, pricer.ADE} {
		cfg := pricer.DefaultConfig(50, 150)
		cfg.Scheme = scheme
		res, err := pricer.Density(cfg, m, 100, expiry)
		require.NoError(t, err)
		require.Len(t, res.Values, 1)
		require.InDelta(t, 1.0, sum(res.Values[0]), 1e-10, "scheme=%s", scheme)

		// the distribution is centred on the (driftless) spot
		var mean float64
		for i, x := range res.X {
			mean += x * res.Values[0][i]
		}
		require.InDelta(t, 100.0, mean, 0.5, "scheme=%s", scheme)
	}
}

// TestDensityPricesByAdjoint: Σ mass·payoff equals the backward price at the
// spot node when both rolls use the same steps.
func TestDensityPricesByAdjoint(t *testing.T) {
	for _, scheme := range []pricer.Scheme{pricer.Theta, pricer.ADE} {
		cfg := pricer.DefaultConfig(50, 150)
		cfg.Nodes, cfg.Rannacher, cfg.Smooth, cfg.Scheme = 101, 0, false, scheme

		priced, err := pricer.Price(cfg, lognormal(), call(expiry))
		require.NoError(t, err)
		dens, err := pricer.Density(cfg, lognormal(), 100, expiry)
		require.NoError(t, err)

		var v float64
		for i, x := range dens.X {
			v += dens.Values[0][i] * math.Max(x-strike, 0)
		}
		require.InDelta(t, valueAt(t, priced, 0, 100), v, 1e-9, "scheme=%s", scheme)
	}
}

func TestDensityEdges(t *testing.T) {
	cfg := coarse()
	res, err := pricer.Density(cfg, lognormal(), 101, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, res.Values[0][10])
	require.Equal(t, 1.0, sum(res.Values[0]))

	_, err = pricer.Density(cfg, lognormal(), 200, expiry)
	require.ErrorIs(t, err, pricer.ErrSpotOutsideGrid)
	_, err = pricer.Density(cfg, lognormal(), 100, -1)
	require.ErrorIs(t, err, pricer.ErrConfig)
}
