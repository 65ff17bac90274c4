// SPDX-License-Identifier: MIT

// Package fd1d implements the θ-scheme roller for one-dimensional parabolic
// PDEs of the form
//
//	∂V/∂t + μ(x)·∂V/∂x + ½σ²(x)·∂²V/∂x² − r(x)·V = 0
//
// on a non-uniform grid. The roller owns the grid, the per-node coefficient
// vectors (R, Mu, Var) and a default state batch (Res). Callers fill the
// coefficients before each step and choose whether the stepping operators are
// rebuilt (update) or reused.
//
// One backward step applies
//
//	(I − θ·Δt·L) V(t) = (I + (1−θ)·Δt·L) V(t+Δt)
//
// as an explicit banded multiply (skipped at θ = 1) followed by an implicit
// tridiagonal solve (skipped at θ = 0). The forward step (for densities)
// applies the band-transposed operators in the opposite order.
//
// In log mode (x = log S) the second-derivative operator is corrected to
// Dxx − Dx on interior rows, so Var remains the variance of S-returns.
//
// A Roller is not safe for concurrent use. WithWorkers lets one roller step
// the vectors of a batch in parallel; every batch slot has its own scratch.
package fd1d
