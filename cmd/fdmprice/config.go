// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/fdm/findiff"
	"github.com/katalvlaran/fdm/pricer"
)

// errConfig marks an unusable setting from the environment or the flags.
var errConfig = errors.New("fdmprice: invalid setting")

// Model kinds.
const (
	modelLognormal = "lognormal" // σ²(x) = vol²·x², μ(x) = drift·x
	modelNormal    = "normal"    // σ²(x) = vol², μ(x) = drift
)

// config is the flat command-line configuration. Levels (Lo, Hi, Spot,
// Strikes) are always in units of the underlying, also in log mode.
type config struct {
	Lo, Hi        float64
	Nodes         int
	Concentration float64 // > 0 clusters nodes around Spot
	Steps         int
	Theta         float64
	Rannacher     int
	Wind          string
	Scheme        string
	Smooth        bool
	Log           bool
	Workers       int

	Model string
	Rate  float64
	Drift float64
	Vol   float64

	Payoff  string
	Strikes []float64
	Expiry  float64
	Spot    float64
	Density bool // roll a unit mass from Spot instead of pricing

	CSV  string
	PNG  string
	HTML string
}

func defaultConfig() config {
	return config{
		Lo:        50,
		Hi:        150,
		Nodes:     pricer.DefaultNodes,
		Steps:     pricer.DefaultSteps,
		Theta:     pricer.DefaultTheta,
		Rannacher: pricer.DefaultRannacher,
		Wind:      findiff.Center.String(),
		Scheme:    pricer.Theta.String(),
		Smooth:    true,
		Workers:   1,
		Model:     modelLognormal,
		Rate:      0.02,
		Vol:       0.2,
		Payoff:    pricer.Call.String(),
		Strikes:   []float64{100},
		Expiry:    0.25,
		Spot:      100,
	}
}

// envKeys maps FDM_* variables to the flag of the same setting.
var envKeys = map[string]string{
	"FDM_LO":            "lo",
	"FDM_HI":            "hi",
	"FDM_NODES":         "nodes",
	"FDM_CONCENTRATION": "concentration",
	"FDM_STEPS":         "steps",
	"FDM_THETA":         "theta",
	"FDM_RANNACHER":     "rannacher",
	"FDM_WIND":          "wind",
	"FDM_SCHEME":        "scheme",
	"FDM_SMOOTH":        "smooth",
	"FDM_LOG":           "log",
	"FDM_WORKERS":       "workers",
	"FDM_MODEL":         "model",
	"FDM_RATE":          "rate",
	"FDM_DRIFT":         "drift",
	"FDM_VOL":           "vol",
	"FDM_PAYOFF":        "payoff",
	"FDM_STRIKES":       "strikes",
	"FDM_EXPIRY":        "expiry",
	"FDM_SPOT":          "spot",
	"FDM_DENSITY":       "density",
	"FDM_CSV":           "csv",
	"FDM_PNG":           "png",
	"FDM_HTML":          "html",
}

// strikeList is a comma-separated flag.Value.
type strikeList struct{ v *[]float64 }

func (s strikeList) String() string {
	if s.v == nil {
		return ""
	}
	parts := make([]string, len(*s.v))
	for i, k := range *s.v {
		parts[i] = strconv.FormatFloat(k, 'g', -1, 64)
	}

	return strings.Join(parts, ",")
}

func (s strikeList) Set(raw string) error {
	var out []float64
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		k, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return fmt.Errorf("strike %q: %w", p, errConfig)
		}
		out = append(out, k)
	}
	if len(out) == 0 {
		return fmt.Errorf("no strikes in %q: %w", raw, errConfig)
	}
	*s.v = out

	return nil
}

// bind registers every setting of c on fs.
func (c *config) bind(fs *flag.FlagSet) {
	fs.Float64Var(&c.Lo, "lo", c.Lo, "lowest grid level")
	fs.Float64Var(&c.Hi, "hi", c.Hi, "highest grid level")
	fs.IntVar(&c.Nodes, "nodes", c.Nodes, "grid nodes")
	fs.Float64Var(&c.Concentration, "concentration", c.Concentration, "node clustering around spot (0 = uniform)")
	fs.IntVar(&c.Steps, "steps", c.Steps, "time steps")
	fs.Float64Var(&c.Theta, "theta", c.Theta, "theta of the theta-scheme")
	fs.IntVar(&c.Rannacher, "rannacher", c.Rannacher, "implicit start-up steps")
	fs.StringVar(&c.Wind, "wind", c.Wind, "drift stencil: down, center, up, smart")
	fs.StringVar(&c.Scheme, "scheme", c.Scheme, "roller: theta, ade")
	fs.BoolVar(&c.Smooth, "smooth", c.Smooth, "cell-average payoffs")
	fs.BoolVar(&c.Log, "log", c.Log, "log-level grid (theta scheme)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel batch vectors")
	fs.StringVar(&c.Model, "model", c.Model, "diffusion: lognormal, normal")
	fs.Float64Var(&c.Rate, "rate", c.Rate, "short rate")
	fs.Float64Var(&c.Drift, "drift", c.Drift, "drift (per unit level for lognormal)")
	fs.Float64Var(&c.Vol, "vol", c.Vol, "volatility")
	fs.StringVar(&c.Payoff, "payoff", c.Payoff, "payoff: call, put, digital")
	fs.Var(strikeList{&c.Strikes}, "strikes", "comma-separated strikes")
	fs.Float64Var(&c.Expiry, "expiry", c.Expiry, "expiry or density horizon in years")
	fs.Float64Var(&c.Spot, "spot", c.Spot, "spot level for the report")
	fs.BoolVar(&c.Density, "density", c.Density, "roll a unit mass forward from spot")
	fs.StringVar(&c.CSV, "csv", c.CSV, "write node values to this CSV file")
	fs.StringVar(&c.PNG, "png", c.PNG, "write a value profile to this PNG file")
	fs.StringVar(&c.HTML, "html", c.HTML, "write an interactive chart to this HTML file")
}

// applyEnv overrides the flag defaults of fs with the FDM_* variables found
// through getenv. It must run before fs.Parse so flags keep the last word.
func applyEnv(fs *flag.FlagSet, getenv func(string) string) error {
	var errs []error
	for key, name := range envKeys {
		v := getenv(key)
		if v == "" {
			continue
		}
		if err := fs.Set(name, v); err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w: %w", key, v, errConfig, err))
		}
	}

	return errors.Join(errs...)
}

// pricerConfig translates c into a pricer.Config.
func (c config) pricerConfig() (pricer.Config, error) {
	wind, err := findiff.ParseWind(c.Wind)
	if err != nil {
		return pricer.Config{}, fmt.Errorf("%w: %w", errConfig, err)
	}
	scheme, err := pricer.ParseScheme(c.Scheme)
	if err != nil {
		return pricer.Config{}, fmt.Errorf("%w: %w", errConfig, err)
	}
	cfg := pricer.Config{
		Nodes:     c.Nodes,
		Lo:        c.Lo,
		Hi:        c.Hi,
		Steps:     c.Steps,
		Theta:     c.Theta,
		Rannacher: c.Rannacher,
		Wind:      wind,
		Scheme:    scheme,
		Smooth:    c.Smooth,
		Log:       c.Log,
		Workers:   c.Workers,
	}
	center := c.Spot
	if c.Log {
		if !(c.Lo > 0) || !(c.Spot > 0) {
			return pricer.Config{}, fmt.Errorf("log grid needs lo, spot > 0: %w", errConfig)
		}
		cfg.Lo, cfg.Hi, center = math.Log(c.Lo), math.Log(c.Hi), math.Log(c.Spot)
	}
	if c.Concentration > 0 {
		if cfg.Grid, err = pricer.ConcentratedGrid(cfg.Lo, cfg.Hi, c.Nodes, center, c.Concentration); err != nil {
			return pricer.Config{}, fmt.Errorf("%w: %w", errConfig, err)
		}
	}

	return cfg, nil
}

// model returns constant-parameter coefficients of the configured kind.
func (c config) model() (pricer.Model, error) {
	r, mu, v2 := c.Rate, c.Drift, c.Vol*c.Vol
	m := pricer.Model{Rate: func(float64) float64 { return r }}
	switch {
	case c.Model == modelLognormal && c.Log:
		m.Drift = func(float64) float64 { return mu }
		m.Variance = func(float64) float64 { return v2 }
	case c.Model == modelLognormal:
		m.Drift = func(x float64) float64 { return mu * x }
		m.Variance = func(x float64) float64 { return v2 * x * x }
	case c.Model == modelNormal && !c.Log:
		m.Drift = func(float64) float64 { return mu }
		m.Variance = func(float64) float64 { return v2 }
	default:
		return pricer.Model{}, fmt.Errorf("model %q (log=%t): %w", c.Model, c.Log, errConfig)
	}

	return m, nil
}

// contracts returns one contract per strike.
func (c config) contracts() ([]pricer.Contract, error) {
	p, err := pricer.ParsePayoff(c.Payoff)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errConfig, err)
	}
	out := make([]pricer.Contract, len(c.Strikes))
	for i, k := range c.Strikes {
		out[i] = pricer.Contract{Payoff: p, Strike: k, Expiry: c.Expiry}
	}

	return out, nil
}
