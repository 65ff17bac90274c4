// SPDX-License-Identifier: MIT

package pricer

import (
	"fmt"
	"math"

	"github.com/golang/glog"
)

// Density rolls a unit mass placed on the node nearest to spot forward to
// horizon and returns the node masses as the single vector of the Result.
//
// The masses are probabilities per node, not densities per unit x: with a
// zero rate they sum to one, and Σ mass·payoff at horizon reproduces the
// backward price of the same contract when Rannacher == 0 and spot is a node.
// The cfg.Rannacher implicit steps are taken at the start of the roll.
//
// Errors: ErrConfig, ErrSpotOutsideGrid, roller errors.
func Density(cfg Config, m Model, spot, horizon float64) (*Result, error) {
	x, err := cfg.grid()
	if err != nil {
		return nil, fmt.Errorf("Density: %w", err)
	}
	if math.IsNaN(horizon) || horizon < 0 {
		return nil, fmt.Errorf("Density: horizon=%g: %w", horizon, ErrConfig)
	}
	at := spot
	if cfg.Log {
		at = math.Log(spot)
	}
	n := len(x)
	if math.IsNaN(at) || at < x[0] || at > x[n-1] {
		return nil, fmt.Errorf("Density(%g): %w", spot, ErrSpotOutsideGrid)
	}

	st, err := newStepper(cfg, m, x, 1)
	if err != nil {
		return nil, fmt.Errorf("Density: %w", err)
	}
	p := make([]float64, n)
	p[nearest(x, at)] = 1

	dt := horizon / float64(cfg.Steps)
	glog.V(1).Infof("pricer: density scheme=%s nodes=%d steps=%d dt=%g", cfg.Scheme, n, cfg.Steps, dt)
	if dt > 0 {
		batch := [][]float64{p}
		for s := 0; s < cfg.Steps; s++ {
			theta := cfg.Theta
			if s < cfg.Rannacher && cfg.Scheme == Theta {
				theta = 1
			}
			if err = st.fwd(dt, theta, batch); err != nil {
				return nil, fmt.Errorf("Density: step %d: %w", s, err)
			}
		}
	}

	return &Result{X: x, Log: cfg.Log, Values: [][]float64{p}}, nil
}

// nearest returns the index of the node closest to v; ties go to the lower node.
func nearest(x []float64, v float64) int {
	best := 0
	for i := range x {
		if math.Abs(x[i]-v) < math.Abs(x[best]-v) {
			best = i
		}
	}

	return best
}
