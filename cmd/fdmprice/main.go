// SPDX-License-Identifier: MIT

// Command fdmprice prices European contracts (or rolls a state-price
// density) on a one-dimensional finite-difference grid and reports the result.
//
// Settings come from flags, which override FDM_* environment variables,
// which may be supplied through a .env file in the working directory.
//
//	fdmprice -payoff put -strikes 90,100,110 -expiry 0.5 -csv values.csv
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/fdm/pricer"
)

func main() {
	// a missing .env is fine; the process environment still applies
	_ = godotenv.Load()

	c := defaultConfig()
	c.bind(flag.CommandLine)
	envErr := applyEnv(flag.CommandLine, os.Getenv)
	flag.Parse()
	defer glog.Flush()

	if envErr != nil {
		glog.Exitf("fdmprice: %v", envErr)
	}
	if err := run(c, os.Stdout); err != nil {
		glog.Exitf("fdmprice: %v", err)
	}
}

// run prices (or rolls the density) per c, prints the summary to w and
// writes the requested files.
func run(c config, w io.Writer) error {
	cfg, err := c.pricerConfig()
	if err != nil {
		return err
	}
	m, err := c.model()
	if err != nil {
		return err
	}
	glog.Infof("fdmprice: %+v", c)

	var res *pricer.Result
	title := fmt.Sprintf("%s %s T=%g", c.Model, c.Payoff, c.Expiry)
	if c.Density {
		title = fmt.Sprintf("%s density T=%g", c.Model, c.Expiry)
		res, err = pricer.Density(cfg, m, c.Spot, c.Expiry)
	} else {
		var cs []pricer.Contract
		if cs, err = c.contracts(); err != nil {
			return err
		}
		res, err = pricer.Price(cfg, m, cs...)
	}
	if err != nil {
		return err
	}

	if err = summarize(w, c, res); err != nil {
		return err
	}
	for _, out := range []struct {
		path  string
		write func(string) error
	}{
		{c.CSV, func(p string) error { return writeCSV(p, res) }},
		{c.PNG, func(p string) error { return writePNG(p, title, res) }},
		{c.HTML, func(p string) error { return writeHTML(p, title, res) }},
	} {
		if out.path == "" {
			continue
		}
		if err = out.write(out.path); err != nil {
			glog.Errorf("fdmprice: %v", err)
			return err
		}
		glog.Infof("fdmprice: wrote %s", out.path)
	}

	return nil
}
