// SPDX-License-Identifier: MIT

package analytic

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/fdm/solver"
)

// Implied-volatility search settings.
const (
	impliedStart   = 0.1   // initial Black volatility
	impliedMaxIter = 10    // Newton iterations
	impliedRelTol  = 1e-10 // tolerance relative to the time value
)

var unit = distuv.UnitNormal

func intrinsic(strike, forward float64) float64 { return math.Max(0, forward-strike) }

// BlackCall returns F·N(d1) − K·N(d2) with d1,2 = ln(F/K)/s ± s/2, s = σ√T.
func BlackCall(expiry, strike, forward, vol float64) float64 {
	if expiry <= 0 {
		return intrinsic(strike, forward)
	}
	s := vol * math.Sqrt(expiry)
	if s <= 0 {
		return intrinsic(strike, forward)
	}
	d1 := math.Log(forward/strike)/s + 0.5*s

	return forward*unit.CDF(d1) - strike*unit.CDF(d1-s)
}

// BlackPut returns the put premium by parity: C − (F − K).
func BlackPut(expiry, strike, forward, vol float64) float64 {
	return BlackCall(expiry, strike, forward, vol) - (forward - strike)
}

// BlackVega returns ∂C/∂σ = F·φ(d1)·√T.
func BlackVega(expiry, strike, forward, vol float64) float64 {
	if expiry <= 0 {
		return 0
	}
	st := math.Sqrt(expiry)
	s := vol * st
	d1 := math.Log(forward/strike)/s + 0.5*s

	return forward * unit.Prob(d1) * st
}

// BlackImplied inverts BlackCall for the volatility. Prices at or below
// intrinsic or a non-positive expiry return 0; the result is floored at 0.
func BlackImplied(expiry, strike, price, forward float64) float64 {
	if expiry <= 0 {
		return 0
	}
	return implied(strike, price, forward, impliedStart, solver.Func{
		F:  func(v float64) float64 { return BlackCall(expiry, strike, forward, v) - price },
		DF: func(v float64) float64 { return BlackVega(expiry, strike, forward, v) },
	})
}

// BachelierCall returns (F−K)·N(x) + s·φ(x) with x = (F−K)/s, s = σ√T.
func BachelierCall(expiry, strike, forward, vol float64) float64 {
	if expiry <= 0 {
		return intrinsic(strike, forward)
	}
	s := vol * math.Sqrt(expiry)
	if s <= 0 {
		return intrinsic(strike, forward)
	}
	x := (forward - strike) / s

	return (forward-strike)*unit.CDF(x) + s*unit.Prob(x)
}

// BachelierVega returns ∂C/∂σ = √T·φ(x).
func BachelierVega(expiry, strike, forward, vol float64) float64 {
	if expiry <= 0 {
		return 0
	}
	st := math.Sqrt(expiry)

	return st * unit.Prob((forward-strike)/(vol*st))
}

// BachelierImplied inverts BachelierCall for the normal volatility, starting
// from the at-the-money approximation σ ≈ C·√(2π/T). A non-positive expiry
// returns 0.
func BachelierImplied(expiry, strike, price, forward float64) float64 {
	if expiry <= 0 {
		return 0
	}
	start := price * math.Sqrt(2*math.Pi/expiry)
	return implied(strike, price, forward, start, solver.Func{
		F:  func(v float64) float64 { return BachelierCall(expiry, strike, forward, v) - price },
		DF: func(v float64) float64 { return BachelierVega(expiry, strike, forward, v) },
	})
}

func implied(strike, price, forward, start float64, obj solver.Objective) float64 {
	tv := price - intrinsic(strike, forward)
	if tv <= 0 {
		return 0
	}
	res := solver.NewtonRaphson(obj, start, impliedMaxIter, tv*impliedRelTol)

	return math.Max(0, res.Root)
}
