// SPDX-License-Identifier: MIT
// Package ade: ADE roller.

package ade

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/katalvlaran/fdm/findiff"
	"github.com/katalvlaran/fdm/internal/batch"
	"github.com/katalvlaran/fdm/matrix"
)

// Roller steps a batch of value (or density) vectors with the ADE scheme.
type Roller[T matrix.Real] struct {
	opts Options

	x, r, mu, vr []T
	res          [][]T

	// raw one-sided operators and their blended splits, built at Init
	dxd, dxu         *matrix.Dense[T]
	splitD, splitU   *matrix.Dense[T]
	splitDD, splitUU *matrix.Dense[T]

	// generator halves and stepping operators, rebuilt per roll
	ad, au         *matrix.Dense[T]
	bdExp, bdImp   *matrix.Dense[T]
	buExp, buImp   *matrix.Dense[T]
	ve, resd, resu [][]T // per batch slot
}

func newBand[T matrix.Real]() *matrix.Dense[T] {
	m, _ := matrix.NewDense[T](0, bandCols)
	return m
}

// New returns an uninitialised roller; rolling it behaves as an empty grid.
func New[T matrix.Real](opts ...Option) *Roller[T] {
	return &Roller[T]{
		opts:    gatherOptions(opts...),
		dxd:     newBand[T](),
		dxu:     newBand[T](),
		splitD:  newBand[T](),
		splitU:  newBand[T](),
		splitDD: newBand[T](),
		splitUU: newBand[T](),
		ad:      newBand[T](),
		au:      newBand[T](),
		bdExp:   newBand[T](),
		bdImp:   newBand[T](),
		buExp:   newBand[T](),
		buImp:   newBand[T](),
	}
}

// Init sets the grid and the default batch size, zeroes the coefficients and
// builds the one-sided operators and their splits.
//
// Errors: ErrBatchShape (numV < 0), findiff.ErrGridNotIncreasing.
func (rl *Roller[T]) Init(numV int, x []T) error {
	if numV < 0 {
		return fmt.Errorf("ade: Init(numV=%d): %w", numV, ErrBatchShape)
	}
	if err := findiff.ValidateGrid(x); err != nil {
		return fmt.Errorf("ade: Init: %w", err)
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

	if err := findiff.Dxd(rl.x, rl.dxd); err != nil {
		return err
	}
	if err := findiff.Dxu(rl.x, rl.dxu); err != nil {
		return err
	}
	if err := SplitDx(rl.x, rl.dxd, rl.dxu, rl.splitD, rl.splitU); err != nil {
		return err
	}
	if err := SplitDxx(rl.x, rl.dxd, rl.dxu, rl.splitDD, rl.splitUU); err != nil {
		return err
	}
	rl.ensureScratch(numV)

	glog.V(1).Infof("ade: init nodes=%d batch=%d workers=%d", n, numV, rl.opts.workers)

	return nil
}

func resetVec[T matrix.Real](v []T, n int) []T {
	if cap(v) >= n {
		v = v[:n]
	} else {
		v = make([]T, n)
	}
	clear(v)

	return v
}

// X returns the grid.
func (rl *Roller[T]) X() []T { return rl.x }

// R returns the per-node short rate, writable in place.
func (rl *Roller[T]) R() []T { return rl.r }

// Mu returns the per-node drift, writable in place.
func (rl *Roller[T]) Mu() []T { return rl.mu }

// Var returns the per-node variance, writable in place.
func (rl *Roller[T]) Var() []T { return rl.vr }

// Res returns the default state batch sized at Init.
func (rl *Roller[T]) Res() [][]T { return rl.res }

// Dxd returns the blended down half of the first derivative.
func (rl *Roller[T]) Dxd() *matrix.Dense[T] { return rl.splitD }

// Dxu returns the blended up half of the first derivative.
func (rl *Roller[T]) Dxu() *matrix.Dense[T] { return rl.splitU }

// Dxxd returns the down half of the second derivative.
func (rl *Roller[T]) Dxxd() *matrix.Dense[T] { return rl.splitDD }

// Dxxu returns the up half of the second derivative.
func (rl *Roller[T]) Dxxu() *matrix.Dense[T] { return rl.splitUU }

// CalcA writes the generator halves into ad (sub, diag) and au (diag, super).
//
// Each half carries ½σ²·Dxx{d,u} and −r/2 on its diagonal. The drift goes to:
//   - Center: both halves, with the blended Dxd / Dxu;
//   - Down:   ad only, with the raw dxd;
//   - Up:     au only, with the raw dxu;
//   - Smart:  per row, ad with dxd where μ < 0, au with dxu where μ > 0,
//     neither where μ == 0.
//
// Errors: ErrNilOperator, findiff.ErrUnsupportedWind.
func (rl *Roller[T]) CalcA(wind findiff.Wind, ad, au *matrix.Dense[T]) error {
	var dd, du *matrix.Dense[T]
	switch wind {
	case findiff.Center:
		dd, du = rl.splitD, rl.splitU
	case findiff.Down:
		dd = rl.dxd
	case findiff.Up:
		du = rl.dxu
	case findiff.Smart:
	default:
		return fmt.Errorf("ade: CalcA(%s): %w", wind, findiff.ErrUnsupportedWind)
	}
	n := len(rl.x)
	if err := resizeAll(n, ad, au); err != nil {
		return fmt.Errorf("ade: CalcA: %w", err)
	}

	var i int
	var r2, mu, var2 T
	for i = 0; i < n; i++ {
		r2, mu, var2 = 0.5*rl.r[i], rl.mu[i], 0.5*rl.vr[i]
		if wind == findiff.Smart {
			dd, du = nil, nil
			switch {
			case mu < 0:
				dd = rl.dxd
			case mu > 0:
				du = rl.dxu
			}
		}
		calcArow(r2, mu, var2, i, centerDown, dd, rl.splitDD, ad)
		calcArow(r2, mu, var2, i, centerUp, du, rl.splitUU, au)
	}

	return nil
}

// RollBwd steps every vector of res from t+dt back to t.
//
// Implementation:
//   - Stage 1: validate wind and lengths; empty grid is a no-op.
//   - Stage 2: build Ad/Au and the four stepping operators.
//   - Stage 3: per vector, sweep 1 = Leftdag(I−dt·Ad, (I+dt·Au)·V),
//     sweep 2 = Rightdag(I−dt·Au, (I+dt·Ad)·V), result = their mean.
//
// Errors: ErrBatchShape, findiff.ErrUnsupportedWind.
// Complexity: O(n·len(res)).
func (rl *Roller[T]) RollBwd(dt T, wind findiff.Wind, res [][]T) error {
	if err := rl.checkRoll(wind, res); err != nil {
		return fmt.Errorf("ade: RollBwd: %w", err)
	}
	if len(rl.x) == 0 {
		return nil
	}
	rl.ensureScratch(len(res))

	if err := rl.CalcA(wind, rl.ad, rl.au); err != nil {
		return err
	}
	if err := rl.buildB(dt); err != nil {
		return err
	}
	glog.V(2).Infof("ade: backward operators dt=%g wind=%s", float64(dt), wind)

	return batch.Run(rl.opts.workers, len(res), func(h int) error {
		v, ve, resd, resu := res[h], rl.ve[h], rl.resd[h], rl.resu[h]
		if err := matrix.Banmul(rl.buExp, 0, 1, v, ve); err != nil {
			return err
		}
		if err := matrix.Leftdag(rl.bdImp, ve, resd); err != nil {
			return err
		}
		if err := matrix.Banmul(rl.bdExp, 1, 0, v, ve); err != nil {
			return err
		}
		if err := matrix.Rightdag(rl.buImp, ve, resu); err != nil {
			return err
		}
		average(v, resd, resu)

		return nil
	})
}

// RollFwd steps every vector of res forward from t to t+dt with the adjoint
// sweeps: the generator halves are transposed (Adᵀ is upper, Auᵀ lower), then
// sweep 1 = (I+dt·Auᵀ)·Rightdag(I−dt·Adᵀ, p) and
// sweep 2 = (I+dt·Adᵀ)·Leftdag(I−dt·Auᵀ, p); the result is their mean.
//
// Errors: ErrBatchShape, findiff.ErrUnsupportedWind.
func (rl *Roller[T]) RollFwd(dt T, wind findiff.Wind, res [][]T) error {
	if err := rl.checkRoll(wind, res); err != nil {
		return fmt.Errorf("ade: RollFwd: %w", err)
	}
	if len(rl.x) == 0 {
		return nil
	}
	rl.ensureScratch(len(res))

	// bdExp/buExp hold the untransposed halves until buildB overwrites them.
	if err := rl.CalcA(wind, rl.bdExp, rl.buExp); err != nil {
		return err
	}
	if err := resizeAll(len(rl.x), rl.ad, rl.au); err != nil {
		return err
	}
	if err := matrix.TransposeBand(rl.bdExp, 1, 0, rl.au); err != nil {
		return err
	}
	if err := matrix.TransposeBand(rl.buExp, 0, 1, rl.ad); err != nil {
		return err
	}
	if err := rl.buildB(dt); err != nil {
		return err
	}
	glog.V(2).Infof("ade: forward operators dt=%g wind=%s", float64(dt), wind)

	return batch.Run(rl.opts.workers, len(res), func(h int) error {
		p, ve, resd, resu := res[h], rl.ve[h], rl.resd[h], rl.resu[h]
		if err := matrix.Rightdag(rl.buImp, p, ve); err != nil {
			return err
		}
		if err := matrix.Banmul(rl.bdExp, 1, 0, ve, resd); err != nil {
			return err
		}
		if err := matrix.Leftdag(rl.bdImp, p, ve); err != nil {
			return err
		}
		if err := matrix.Banmul(rl.buExp, 0, 1, ve, resu); err != nil {
			return err
		}
		average(p, resd, resu)

		return nil
	})
}

// buildB derives the explicit (I + dt·A) and implicit (I − dt·A) operators
// of both halves from rl.ad and rl.au.
func (rl *Roller[T]) buildB(dt T) error {
	steps := []struct {
		dt     T
		center int
		a, b   *matrix.Dense[T]
	}{
		{dt, centerDown, rl.ad, rl.bdExp},
		{-dt, centerDown, rl.ad, rl.bdImp},
		{dt, centerUp, rl.au, rl.buExp},
		{-dt, centerUp, rl.au, rl.buImp},
	}
	for _, s := range steps {
		if err := CalcB(1, s.dt, s.center, s.a, s.b); err != nil {
			return err
		}
	}

	return nil
}

func (rl *Roller[T]) checkRoll(wind findiff.Wind, res [][]T) error {
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
	n := len(rl.x)
	if len(rl.ve) >= numV && (numV == 0 || len(rl.ve[0]) == n) {
		return
	}
	rl.ve = batch.Grow(rl.ve, numV, n)
	rl.resd = batch.Grow(rl.resd, numV, n)
	rl.resu = batch.Grow(rl.resu, numV, n)
}

// average writes (a+b)/2 into dst.
func average[T matrix.Real](dst, a, b []T) {
	for i := range dst {
		dst[i] = 0.5 * (a[i] + b[i])
	}
}
