// SPDX-License-Identifier: MIT

package pricer

import (
	"fmt"
	"math"

	"github.com/golang/glog"

	"github.com/katalvlaran/fdm/findiff"
)

// Price rolls the contracts back to time zero and returns their values on
// the grid.
//
// Implementation:
//   - Stage 1: validate; dt = (longest expiry)/Steps; contract k joins at
//     step round(Expiry_k/dt).
//   - Stage 2: from the last step down, inject joining payoffs (cell means
//     when cfg.Smooth), then roll the live vectors one step; θ = 1 for the
//     cfg.Rannacher steps following an injection, cfg.Theta otherwise.
//
// Errors: ErrConfig, ErrContract, roller errors.
func Price(cfg Config, m Model, contracts ...Contract) (*Result, error) {
	x, err := cfg.grid()
	if err != nil {
		return nil, fmt.Errorf("Price: %w", err)
	}
	var horizon float64
	for k, c := range contracts {
		if err = c.validate(); err != nil {
			return nil, fmt.Errorf("Price: contract %d: %w", k, err)
		}
		horizon = math.Max(horizon, c.Expiry)
	}

	st, err := newStepper(cfg, m, x, len(contracts))
	if err != nil {
		return nil, fmt.Errorf("Price: %w", err)
	}
	res := &Result{
		X:         x,
		Log:       cfg.Log,
		Values:    make([][]float64, len(contracts)),
		Contracts: append([]Contract(nil), contracts...),
	}
	for k := range res.Values {
		res.Values[k] = make([]float64, len(x))
	}

	dt := horizon / float64(cfg.Steps)
	join := make([]int, len(contracts))
	for k, c := range contracts {
		if dt > 0 {
			join[k] = int(math.Round(c.Expiry / dt))
		}
	}
	lo, hi := findiff.CellBounds(x)

	glog.V(1).Infof("pricer: price scheme=%s nodes=%d steps=%d dt=%g contracts=%d", cfg.Scheme, len(x), cfg.Steps, dt, len(contracts))

	live := make([][]float64, 0, len(contracts))
	implicitLeft := 0
	inject := func(step int) {
		for k, c := range contracts {
			if join[k] != step {
				continue
			}
			fillPayoff(cfg, c, x, lo, hi, res.Values[k])
			live = append(live, res.Values[k])
			implicitLeft = cfg.Rannacher
		}
	}

	for s := cfg.Steps; s > 0; s-- {
		inject(s)
		if len(live) == 0 || dt == 0 {
			continue
		}
		theta := cfg.Theta
		if implicitLeft > 0 && cfg.Scheme == Theta {
			theta = 1
			implicitLeft--
		}
		if err = st.bwd(dt, theta, live); err != nil {
			return nil, fmt.Errorf("Price: step %d: %w", s, err)
		}
	}
	inject(0)

	return res, nil
}

// fillPayoff writes the (optionally cell-averaged) payoff of c into v.
func fillPayoff(cfg Config, c Contract, x, lo, hi, v []float64) {
	for i := range x {
		if cfg.Smooth {
			v[i] = c.mean(cfg.level(lo[i]), cfg.level(hi[i]))
			continue
		}
		v[i] = c.at(cfg.level(x[i]))
	}
}
