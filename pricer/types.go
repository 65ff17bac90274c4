// SPDX-License-Identifier: MIT

package pricer

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fdm/findiff"
)

// Scheme selects the time-stepping roller.
type Scheme int

const (
	// Theta uses the θ-scheme roller (package fd1d).
	Theta Scheme = iota
	// ADE uses the alternating-direction explicit roller (package ade).
	ADE
)

// String implements fmt.Stringer.
func (s Scheme) String() string {
	switch s {
	case Theta:
		return "theta"
	case ADE:
		return "ade"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// ParseScheme maps "theta" and "ade" to a Scheme.
func ParseScheme(s string) (Scheme, error) {
	switch s {
	case "theta":
		return Theta, nil
	case "ade":
		return ADE, nil
	}

	return 0, fmt.Errorf("ParseScheme(%q): %w", s, ErrConfig)
}

// Payoff selects the terminal payoff of a contract.
type Payoff int

const (
	// Call pays max(S − K, 0).
	Call Payoff = iota
	// Put pays max(K − S, 0).
	Put
	// Digital pays 1 when S > K.
	Digital
)

// String implements fmt.Stringer.
func (p Payoff) String() string {
	switch p {
	case Call:
		return "call"
	case Put:
		return "put"
	case Digital:
		return "digital"
	default:
		return fmt.Sprintf("Payoff(%d)", int(p))
	}
}

// ParsePayoff maps "call", "put" and "digital" to a Payoff.
func ParsePayoff(s string) (Payoff, error) {
	switch s {
	case "call":
		return Call, nil
	case "put":
		return Put, nil
	case "digital":
		return Digital, nil
	}

	return 0, fmt.Errorf("ParsePayoff(%q): %w", s, ErrContract)
}

// Contract is a European claim on the grid variable.
type Contract struct {
	Payoff Payoff
	Strike float64
	Expiry float64 // years, >= 0
}

// at returns the payoff at the underlying level s.
func (c Contract) at(s float64) float64 {
	switch c.Payoff {
	case Put:
		return math.Max(c.Strike-s, 0)
	case Digital:
		if s > c.Strike {
			return 1
		}
		return 0
	default:
		return math.Max(s-c.Strike, 0)
	}
}

// mean returns the payoff averaged over the underlying interval [lo, hi].
func (c Contract) mean(lo, hi float64) float64 {
	switch c.Payoff {
	case Put:
		return findiff.SmoothPut(lo, hi, c.Strike)
	case Digital:
		return findiff.SmoothDigital(lo, hi, c.Strike)
	default:
		return findiff.SmoothCall(lo, hi, c.Strike)
	}
}

func (c Contract) validate() error {
	if c.Payoff < Call || c.Payoff > Digital {
		return fmt.Errorf("%s: %w", c.Payoff, ErrContract)
	}
	if math.IsNaN(c.Expiry) || c.Expiry < 0 || math.IsNaN(c.Strike) {
		return fmt.Errorf("expiry=%g strike=%g: %w", c.Expiry, c.Strike, ErrContract)
	}

	return nil
}

// Model supplies the PDE coefficients per node. A nil function is zero.
//
// In log mode x is log S: Variance is the variance of returns and Drift the
// drift of S per unit S (e.g. r − q); the Itô correction is applied by the
// roller.
type Model struct {
	Rate     func(x float64) float64
	Drift    func(x float64) float64
	Variance func(x float64) float64
}

func eval(f func(float64) float64, x float64) float64 {
	if f == nil {
		return 0
	}

	return f(x)
}

// Defaults for Config.
const (
	DefaultNodes     = 201
	DefaultSteps     = 100
	DefaultTheta     = 0.5
	DefaultRannacher = 2
)

// Config describes the grid and the time stepping.
type Config struct {
	// Grid overrides Nodes/Lo/Hi when non-empty; must be strictly increasing.
	Grid  []float64
	Nodes int
	Lo    float64
	Hi    float64

	Steps     int          // time steps over the longest expiry (or horizon)
	Theta     float64      // θ of the θ-scheme; ignored by ADE
	Rannacher int          // fully implicit steps after each payoff event (θ-scheme)
	Wind      findiff.Wind // first-derivative stencil
	Scheme    Scheme
	Smooth    bool // cell-average payoffs
	Log       bool // grid variable is log S (θ-scheme only)
	Workers   int  // parallel batch vectors; <= 1 is sequential
}

// DefaultConfig returns a Crank-Nicolson setup with Rannacher start-up on a
// uniform grid over [lo, hi].
func DefaultConfig(lo, hi float64) Config {
	return Config{
		Nodes:     DefaultNodes,
		Lo:        lo,
		Hi:        hi,
		Steps:     DefaultSteps,
		Theta:     DefaultTheta,
		Rannacher: DefaultRannacher,
		Wind:      findiff.Center,
		Scheme:    Theta,
		Smooth:    true,
	}
}

// grid validates cfg and returns the node vector.
func (cfg Config) grid() ([]float64, error) {
	if cfg.Steps < 1 {
		return nil, fmt.Errorf("steps=%d: %w", cfg.Steps, ErrConfig)
	}
	if math.IsNaN(cfg.Theta) || cfg.Theta < 0 || cfg.Theta > 1 {
		return nil, fmt.Errorf("theta=%g: %w", cfg.Theta, ErrConfig)
	}
	if cfg.Rannacher < 0 {
		return nil, fmt.Errorf("rannacher=%d: %w", cfg.Rannacher, ErrConfig)
	}
	if cfg.Wind < findiff.Down || cfg.Wind > findiff.Smart {
		return nil, fmt.Errorf("wind=%s: %w", cfg.Wind, ErrConfig)
	}
	if cfg.Scheme != Theta && cfg.Scheme != ADE {
		return nil, fmt.Errorf("%s: %w", cfg.Scheme, ErrConfig)
	}
	if cfg.Log && cfg.Scheme == ADE {
		return nil, fmt.Errorf("log grid requires the theta scheme: %w", ErrConfig)
	}
	if len(cfg.Grid) > 0 {
		if err := findiff.ValidateGrid(cfg.Grid); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		return append([]float64(nil), cfg.Grid...), nil
	}

	return UniformGrid(cfg.Lo, cfg.Hi, cfg.Nodes)
}

// level maps a grid node to the underlying level.
func (cfg Config) level(x float64) float64 {
	if cfg.Log {
		return math.Exp(x)
	}

	return x
}
