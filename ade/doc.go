// SPDX-License-Identifier: MIT

// Package ade implements the alternating-direction explicit (ADE) roller for
// one-dimensional parabolic PDEs
//
//	∂V/∂t + μ(x)·∂V/∂x + ½σ²(x)·∂²V/∂x² − r(x)·V = 0.
//
// The generator L is split into a down-biased lower-bidiagonal part Ad and an
// up-biased upper-bidiagonal part Au with L = Ad + Au (each carrying half of
// the discount term). One backward step runs two sweeps
//
//	Vd = (I − Δt·Ad)⁻¹ (I + Δt·Au) V
//	Vu = (I − Δt·Au)⁻¹ (I + Δt·Ad) V
//
// each of which needs only a bidiagonal substitution, and returns their
// mean (Vd + Vu)/2. The forward step applies the adjoint sweeps built from
// the band-transposed operators, so ⟨Fwd(p), v⟩ = ⟨p, Bwd(v)⟩.
//
// Operators are rebuilt on every roll from the current R, Mu and Var. A Roller
// is not safe for concurrent use; WithWorkers steps batch vectors in parallel.
package ade
