// SPDX-License-Identifier: MIT
// Package fd1d: θ-scheme roller.

package fd1d

import (
	"fmt"
	"math"

	"github.com/golang/glog"

	"github.com/katalvlaran/fdm/findiff"
	"github.com/katalvlaran/fdm/internal/batch"
	"github.com/katalvlaran/fdm/matrix"
)

const (
	bandCols = 3 // tridiagonal stepping operators
	bandHalf = bandCols / 2
)

// opState remembers whether a stepping operator holds valid coefficients
// and in which orientation (transposed for forward rolls).
type opState struct {
	built      bool
	transposed bool
}

// stale reports whether the operator must be rebuilt for a roll in the
// given orientation.
func (s opState) stale(update, transposed bool) bool {
	return update || !s.built || s.transposed != transposed
}

// Roller steps a batch of value (or density) vectors with the θ-scheme.
type Roller[T matrix.Real] struct {
	opts Options

	x, r, mu, vr []T
	res          [][]T

	// differential operators, built at Init
	dxd, dx, dxu, dxx *matrix.Dense[T]

	// stepping operators, rebuilt lazily per roll
	ae, ai     *matrix.Dense[T]
	aeSt, aiSt opState
	vs, ws     [][]T // per batch slot: multiply input, Thomas scratch
}

// New returns an uninitialised roller. Call Init before rolling; rolling an
// uninitialised roller behaves as an empty grid.
func New[T matrix.Real](opts ...Option) *Roller[T] {
	rl := &Roller[T]{opts: gatherOptions(opts...)}
	rl.dxd, _ = matrix.NewDense[T](0, bandCols)
	rl.dx, _ = matrix.NewDense[T](0, bandCols)
	rl.dxu, _ = matrix.NewDense[T](0, bandCols)
	rl.dxx, _ = matrix.NewDense[T](0, bandCols)
	rl.ae, _ = matrix.NewDense[T](0, bandCols)
	rl.ai, _ = matrix.NewDense[T](0, bandCols)

	return rl
}

// Init sets the grid and the default batch size, zeroes the coefficients,
// and builds the differential operators.
//
// Implementation:
//   - Stage 1: validate numV >= 0 and a strictly increasing grid.
//   - Stage 2: copy the grid; size Res (numV vectors) and R/Mu/Var.
//   - Stage 3: Dxd/Dx/Dxu (3-wide, winds Down/Center/Up) and Dxx.
//   - Stage 4: in log mode subtract Dx from Dxx on interior rows.
//
// Errors:
//   - ErrBatchShape (numV < 0), findiff.ErrGridNotIncreasing.
func (rl *Roller[T]) Init(numV int, x []T, useLog bool) error {
	if numV < 0 {
		return fmt.Errorf("fd1d: Init(numV=%d): %w", numV, ErrBatchShape)
	}
	if err := findiff.ValidateGrid(x); err != nil {
		return fmt.Errorf("fd1d: Init: %w", err)
	}

	n := len(x)
	rl.x = append(rl.x[:0], x...)
	rl.r = resetVec(rl.r, n)
	rl.mu = resetVec(rl.mu, n)
	rl.vr = resetVec(rl.vr, n)
	rl.res = batch.Grow(rl.res[:0], numV, n)
	for _, v := range rl.res {
		clear(v)
	}

	if err := findiff.Dx(findiff.Down, rl.x, rl.dxd); err != nil {
		return err
	}
	if err := findiff.Dx(findiff.Center, rl.x, rl.dx); err != nil {
		return err
	}
	if err := findiff.Dx(findiff.Up, rl.x, rl.dxu); err != nil {
		return err
	}
	if err := findiff.Dxx(rl.x, rl.dxx); err != nil {
		return err
	}

	if useLog {
		var i, j int
		for i = 1; i < n-1; i++ {
			dxx, dx := rl.dxx.Row(i), rl.dx.Row(i)
			for j = range dxx {
				dxx[j] -= dx[j]
			}
		}
	}

	_ = rl.ae.Resize(n, bandCols)
	_ = rl.ai.Resize(n, bandCols)
	rl.aeSt, rl.aiSt = opState{}, opState{}
	rl.vs = batch.Grow(rl.vs, numV, n)
	rl.ws = batch.Grow(rl.ws, numV, n)

	glog.V(1).Infof("fd1d: init nodes=%d batch=%d log=%t workers=%d", n, numV, useLog, rl.opts.workers)

	return nil
}

// resetVec returns v resized to n and zeroed.
func resetVec[T matrix.Real](v []T, n int) []T {
	if cap(v) >= n {
		v = v[:n]
	} else {
		v = make([]T, n)
	}
	clear(v)

	return v
}

// X returns the grid (read-only by convention).
func (rl *Roller[T]) X() []T { return rl.x }

// R returns the per-node short rate, writable in place.
func (rl *Roller[T]) R() []T { return rl.r }

// Mu returns the per-node drift, writable in place.
func (rl *Roller[T]) Mu() []T { return rl.mu }

// Var returns the per-node variance, writable in place.
func (rl *Roller[T]) Var() []T { return rl.vr }

// Res returns the default state batch sized at Init.
func (rl *Roller[T]) Res() [][]T { return rl.res }

// Dxd returns the 3-wide down-wind first-derivative operator.
func (rl *Roller[T]) Dxd() *matrix.Dense[T] { return rl.dxd }

// Dx returns the 3-wide central first-derivative operator.
func (rl *Roller[T]) Dx() *matrix.Dense[T] { return rl.dx }

// Dxu returns the 3-wide up-wind first-derivative operator.
func (rl *Roller[T]) Dxu() *matrix.Dense[T] { return rl.dxu }

// Dxx returns the second-derivative operator (log-corrected in log mode).
func (rl *Roller[T]) Dxx() *matrix.Dense[T] { return rl.dxx }

// CalcAx writes the stepping operator
//
//	A = one·I + dtTheta·(μ·D + ½σ²·Dxx − r·I)
//
// into a (resized to n×3), where D is the first-derivative operator chosen by
// wind. With Smart the choice is per row: Dxd where μ < 0, Dxu where μ > 0
// and no drift term where μ == 0. With tr the band is transposed in place.
//
// Errors: ErrNilOperator, findiff.ErrUnsupportedWind.
// Complexity: O(n).
func (rl *Roller[T]) CalcAx(one, dtTheta T, wind findiff.Wind, tr bool, a *matrix.Dense[T]) error {
	if a == nil {
		return fmt.Errorf("fd1d: CalcAx: %w", ErrNilOperator)
	}
	var d *matrix.Dense[T]
	switch wind {
	case findiff.Down:
		d = rl.dxd
	case findiff.Center:
		d = rl.dx
	case findiff.Up:
		d = rl.dxu
	case findiff.Smart:
	default:
		return fmt.Errorf("fd1d: CalcAx(%s): %w", wind, findiff.ErrUnsupportedWind)
	}

	n := len(rl.x)
	if err := a.Resize(n, bandCols); err != nil {
		return err
	}
	var i, j int
	var mu, half T
	for i = 0; i < n; i++ {
		mu, half = rl.mu[i], 0.5*rl.vr[i]
		di := d
		if wind == findiff.Smart {
			switch {
			case mu < 0:
				di = rl.dxd
			case mu > 0:
				di = rl.dxu
			default:
				di = nil
			}
		}

		row, dxx := a.Row(i), rl.dxx.Row(i)
		if di == nil {
			for j = range row {
				row[j] = dtTheta * (half * dxx[j])
			}
		} else {
			drow := di.Row(i)
			for j = range row {
				row[j] = dtTheta * (mu*drow[j] + half*dxx[j])
			}
		}
		row[bandHalf] += one - dtTheta*rl.r[i]
	}

	if tr {
		return matrix.TransposeBandInPlace(a, bandHalf)
	}

	return nil
}

// RollBwd steps every vector of res from t+dt back to t.
//
// Implementation:
//   - Stage 1: validate θ, wind and vector lengths; empty grid is a no-op.
//   - Stage 2 (θ ≠ 1): explicit part V ← (I + (1−θ)·dt·L)·V via Banmul.
//   - Stage 3 (θ ≠ 0): implicit part V ← (I − θ·dt·L)⁻¹·V via Tridag.
//
// Behavior highlights:
//   - With update == false the operators of the previous backward roll are
//     reused; they are still built on the first roll after Init and after a
//     forward roll (whose operators are transposed).
//
// Errors: ErrInvalidTheta, ErrBatchShape, findiff.ErrUnsupportedWind.
// Complexity: O(n·len(res)) per step.
func (rl *Roller[T]) RollBwd(dt T, update bool, theta T, wind findiff.Wind, res [][]T) error {
	if err := rl.checkRoll(theta, wind, res); err != nil {
		return fmt.Errorf("fd1d: RollBwd: %w", err)
	}
	if len(rl.x) == 0 {
		return nil
	}
	rl.ensureScratch(len(res))

	if theta != 1 {
		if err := rl.buildExplicit(dt, theta, wind, update, false); err != nil {
			return err
		}
		if err := rl.explicit(res); err != nil {
			return err
		}
	}
	if theta != 0 {
		if err := rl.buildImplicit(dt, theta, wind, update, false); err != nil {
			return err
		}
		if err := rl.implicit(res); err != nil {
			return err
		}
	}

	return nil
}

// RollFwd steps every vector of res forward from t to t+dt with the adjoint
// scheme: implicit solve with the transposed implicit operator first, then
// the transposed explicit multiply. See RollBwd for the update policy.
//
// Errors: ErrInvalidTheta, ErrBatchShape, findiff.ErrUnsupportedWind.
func (rl *Roller[T]) RollFwd(dt T, update bool, theta T, wind findiff.Wind, res [][]T) error {
	if err := rl.checkRoll(theta, wind, res); err != nil {
		return fmt.Errorf("fd1d: RollFwd: %w", err)
	}
	if len(rl.x) == 0 {
		return nil
	}
	rl.ensureScratch(len(res))

	if theta != 0 {
		if err := rl.buildImplicit(dt, theta, wind, update, true); err != nil {
			return err
		}
		if err := rl.implicit(res); err != nil {
			return err
		}
	}
	if theta != 1 {
		if err := rl.buildExplicit(dt, theta, wind, update, true); err != nil {
			return err
		}
		if err := rl.explicit(res); err != nil {
			return err
		}
	}

	return nil
}

func (rl *Roller[T]) checkRoll(theta T, wind findiff.Wind, res [][]T) error {
	if math.IsNaN(float64(theta)) || theta < 0 || theta > 1 {
		return fmt.Errorf("theta=%g: %w", float64(theta), ErrInvalidTheta)
	}
	if wind < findiff.Down || wind > findiff.Smart {
		return fmt.Errorf("%s: %w", wind, findiff.ErrUnsupportedWind)
	}
	n := len(rl.x)
	for k, v := range res {
		if len(v) != n {
			return fmt.Errorf("vector %d has len %d, grid has %d nodes: %w", k, len(v), n, ErrBatchShape)
		}
	}

	return nil
}

func (rl *Roller[T]) ensureScratch(numV int) {
	if len(rl.vs) < numV {
		n := len(rl.x)
		rl.vs = batch.Grow(rl.vs, numV, n)
		rl.ws = batch.Grow(rl.ws, numV, n)
	}
}

func (rl *Roller[T]) buildExplicit(dt, theta T, wind findiff.Wind, update, tr bool) error {
	if !rl.aeSt.stale(update, tr) {
		return nil
	}
	if err := rl.CalcAx(1, dt*(1-theta), wind, tr, rl.ae); err != nil {
		return err
	}
	rl.aeSt = opState{built: true, transposed: tr}
	glog.V(2).Infof("fd1d: explicit operator dt=%g theta=%g wind=%s transposed=%t", float64(dt), float64(theta), wind, tr)

	return nil
}

func (rl *Roller[T]) buildImplicit(dt, theta T, wind findiff.Wind, update, tr bool) error {
	if !rl.aiSt.stale(update, tr) {
		return nil
	}
	if err := rl.CalcAx(1, -dt*theta, wind, tr, rl.ai); err != nil {
		return err
	}
	rl.aiSt = opState{built: true, transposed: tr}
	glog.V(2).Infof("fd1d: implicit operator dt=%g theta=%g wind=%s transposed=%t", float64(dt), float64(theta), wind, tr)

	return nil
}

// explicit applies res[k] ← Ae·res[k] for every k.
func (rl *Roller[T]) explicit(res [][]T) error {
	return batch.Run(rl.opts.workers, len(res), func(k int) error {
		vs := rl.vs[k]
		copy(vs, res[k])

		return matrix.Banmul(rl.ae, bandHalf, bandHalf, vs, res[k])
	})
}

// implicit solves Ai·u = res[k] in place for every k.
func (rl *Roller[T]) implicit(res [][]T) error {
	return batch.Run(rl.opts.workers, len(res), func(k int) error {
		return matrix.Tridag(rl.ai, res[k], res[k], rl.ws[k])
	})
}
