// SPDX-License-Identifier: MIT

package pricer

import (
	"github.com/katalvlaran/fdm/ade"
	"github.com/katalvlaran/fdm/fd1d"
	"github.com/katalvlaran/fdm/findiff"
)

// stepper hides the roller behind the operations the pricer needs.
type stepper interface {
	coefficients() (r, mu, vr []float64)
	bwd(dt, theta float64, res [][]float64) error
	fwd(dt, theta float64, res [][]float64) error
}

// thetaStepper rebuilds operators only when θ (or the direction) changes;
// the coefficients are fixed for the whole roll.
type thetaStepper struct {
	rl        *fd1d.Roller[float64]
	wind      findiff.Wind
	lastTheta float64
	fresh     bool
}

func (s *thetaStepper) coefficients() (r, mu, vr []float64) {
	return s.rl.R(), s.rl.Mu(), s.rl.Var()
}

func (s *thetaStepper) update(theta float64) bool {
	u := !s.fresh || theta != s.lastTheta
	s.fresh, s.lastTheta = true, theta

	return u
}

func (s *thetaStepper) bwd(dt, theta float64, res [][]float64) error {
	return s.rl.RollBwd(dt, s.update(theta), theta, s.wind, res)
}

func (s *thetaStepper) fwd(dt, theta float64, res [][]float64) error {
	return s.rl.RollFwd(dt, s.update(theta), theta, s.wind, res)
}

// adeStepper ignores θ: the ADE scheme has no implicitness parameter.
type adeStepper struct {
	rl   *ade.Roller[float64]
	wind findiff.Wind
}

func (s *adeStepper) coefficients() (r, mu, vr []float64) {
	return s.rl.R(), s.rl.Mu(), s.rl.Var()
}

func (s *adeStepper) bwd(dt, _ float64, res [][]float64) error {
	return s.rl.RollBwd(dt, s.wind, res)
}

func (s *adeStepper) fwd(dt, _ float64, res [][]float64) error {
	return s.rl.RollFwd(dt, s.wind, res)
}

// newStepper initialises the configured roller on x with numV default
// vectors and fills its coefficients from m.
func newStepper(cfg Config, m Model, x []float64, numV int) (stepper, error) {
	workers := max(cfg.Workers, 1)
	var s stepper
	switch cfg.Scheme {
	case ADE:
		rl := ade.New[float64](ade.WithWorkers(workers))
		if err := rl.Init(numV, x); err != nil {
			return nil, err
		}
		s = &adeStepper{rl: rl, wind: cfg.Wind}
	default:
		rl := fd1d.New[float64](fd1d.WithWorkers(workers))
		if err := rl.Init(numV, x, cfg.Log); err != nil {
			return nil, err
		}
		s = &thetaStepper{rl: rl, wind: cfg.Wind}
	}

	r, mu, vr := s.coefficients()
	for i, xi := range x {
		r[i] = eval(m.Rate, xi)
		mu[i] = eval(m.Drift, xi)
		vr[i] = eval(m.Variance, xi)
	}

	return s, nil
}
