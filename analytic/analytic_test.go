package analytic_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/fdm/analytic"
	"github.com/stretchr/testify/require"
)

// TestBlackCallReference compares with textbook values (F=100, T=1).
func TestBlackCallReference(t *testing.T) {
	// ATM: F·(2N(σ/2) − 1).
	require.InDelta(t, 7.965567455405804, analytic.BlackCall(1, 100, 100, 0.2), 1e-9)
	require.Equal(t, 0.0, analytic.BlackCall(1, 100, 100, 0))
	require.Equal(t, 5.0, analytic.BlackCall(0, 95, 100, 0.3))
	require.Equal(t, 0.0, analytic.BlackVega(0, 95, 100, 0.3))
}

func TestBlackPutCallParity(t *testing.T) {
	c := analytic.BlackCall(0.5, 110, 100, 0.25)
	p := analytic.BlackPut(0.5, 110, 100, 0.25)
	require.InDelta(t, 10.0, p-c, 1e-12)
	require.Greater(t, p, 10.0)
}

// TestBlackVegaFiniteDifference checks vega against a central difference.
func TestBlackVegaFiniteDifference(t *testing.T) {
	const h = 1e-5
	for _, k := range []float64{80, 100, 125} {
		fd := (analytic.BlackCall(2, k, 100, 0.3+h) - analytic.BlackCall(2, k, 100, 0.3-h)) / (2 * h)
		require.InDelta(t, fd, analytic.BlackVega(2, k, 100, 0.3), 1e-5, "K=%g", k)
	}
}

func TestBachelierVegaFiniteDifference(t *testing.T) {
	const h = 1e-4
	for _, k := range []float64{90, 100, 115} {
		fd := (analytic.BachelierCall(1.5, k, 100, 20+h) - analytic.BachelierCall(1.5, k, 100, 20-h)) / (2 * h)
		require.InDelta(t, fd, analytic.BachelierVega(1.5, k, 100, 20), 1e-6, "K=%g", k)
	}
}

func TestBachelierATM(t *testing.T) {
	// ATM: s·φ(0) = σ√T/√(2π).
	require.InDelta(t, 20/math.Sqrt(2*math.Pi), analytic.BachelierCall(1, 100, 100, 20), 1e-12)
}

func TestImpliedRoundTrip(t *testing.T) {
	for _, k := range []float64{90, 100, 110} {
		t.Run(fmt.Sprintf("Black/K=%g", k), func(t *testing.T) {
			p := analytic.BlackCall(1, k, 100, 0.2)
			require.InDelta(t, 0.2, analytic.BlackImplied(1, k, p, 100), 1e-6)
		})
		t.Run(fmt.Sprintf("Bachelier/K=%g", k), func(t *testing.T) {
			p := analytic.BachelierCall(1, k, 100, 20)
			require.InDelta(t, 20, analytic.BachelierImplied(1, k, p, 100), 1e-6)
		})
	}
}

func TestImpliedBelowIntrinsic(t *testing.T) {
	require.Equal(t, 0.0, analytic.BlackImplied(1, 90, 10, 100))
	require.Equal(t, 0.0, analytic.BachelierImplied(1, 90, 9.5, 100))
}

// TestImpliedExpired: with no time left there is no volatility to imply.
func TestImpliedExpired(t *testing.T) {
	for _, expiry := range []float64{0, -0.5} {
		require.Equal(t, 0.0, analytic.BlackImplied(expiry, 100, 2, 100))
		require.Equal(t, 0.0, analytic.BachelierImplied(expiry, 100, 2, 100))
	}
}
