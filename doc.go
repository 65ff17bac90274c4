// Package fdm is a one-dimensional finite-difference engine for pricing
// derivatives under a diffusion dX = μ(x)dt + σ(x)dW with short rate r(x).
//
// What is inside?
//
//	A small, layered set of packages:
//		• matrix  – generic dense storage, non-owning views, banded kernels
//		            (Banmul, Tridag, Leftdag, Rightdag, band transpose)
//		• findiff – first/second derivative operators on non-uniform grids,
//		            cell-averaged payoffs
//		• fd1d    – θ-scheme roller (explicit, Crank-Nicolson, implicit),
//		            backward for values and forward for densities
//		• ade     – alternating-direction explicit roller
//		• solver  – Newton-Raphson root finder
//		• analytic – Black and Bachelier formulas, implied volatility
//		• pricer  – contracts, grids, Rannacher start-up, state prices
//
// The rollers step a batch of vectors at once and can spread the batch over
// goroutines (WithWorkers). Every roller pair satisfies the adjoint identity
// ⟨Fwd p, v⟩ = ⟨p, Bwd v⟩, so densities rolled forward price exactly what
// values rolled backward do.
//
// Under the hood:
//
//	matrix/  : Dense[T], MatrixView[T], banded kernels, checked build (-tags fdmcheck)
//	findiff/ : Dx, Dxd, Dxu, Dxx, SmoothCall/Put/Digital
//	fd1d/    : Roller[T]: Init, CalcAx, RollBwd, RollFwd
//	ade/     : Roller[T]: Init, CalcA, CalcB, RollBwd, RollFwd
//	pricer/  : Price, Density, UniformGrid, ConcentratedGrid
//	cmd/fdmprice: command-line pricer with CSV / PNG / HTML reports
//
// Quick start:
//
//	cfg := pricer.DefaultConfig(50, 150)
//	m := pricer.Model{
//		Rate:     func(float64) float64 { return 0.02 },
//		Variance: func(x float64) float64 { return 0.04 * x * x },
//	}
//	res, _ := pricer.Price(cfg, m, pricer.Contract{Payoff: pricer.Call, Strike: 100, Expiry: 0.25})
//	v, _ := res.ValueAt(0, 100)
package fdm
