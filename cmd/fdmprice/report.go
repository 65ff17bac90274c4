// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/fdm/analytic"
	"github.com/katalvlaran/fdm/pricer"
)

const reportDecimals = 4

// nodeRow is one CSV record: the value of one series at one node.
type nodeRow struct {
	Series string  `csv:"series"`
	Node   int     `csv:"node"`
	X      float64 `csv:"x"`
	Level  float64 `csv:"level"`
	Value  float64 `csv:"value"`
}

func seriesName(res *pricer.Result, k int) string {
	if len(res.Contracts) == 0 {
		return "density"
	}
	c := res.Contracts[k]

	return fmt.Sprintf("%s K=%g T=%g", c.Payoff, c.Strike, c.Expiry)
}

func nodeRows(res *pricer.Result) []*nodeRow {
	levels := res.Levels()
	rows := make([]*nodeRow, 0, len(res.Values)*len(res.X))
	for k, v := range res.Values {
		name := seriesName(res, k)
		for i := range res.X {
			rows = append(rows, &nodeRow{Series: name, Node: i, X: res.X[i], Level: levels[i], Value: v[i]})
		}
	}

	return rows
}

func writeCSV(path string, res *pricer.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = gocsv.Marshal(nodeRows(res), f); err != nil {
		f.Close()
		return fmt.Errorf("csv %s: %w", path, err)
	}

	return f.Close()
}

func writePNG(path, title string, res *pricer.Result) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "level"
	p.Y.Label.Text = "value"
	levels := res.Levels()
	for k, v := range res.Values {
		pts := make(plotter.XYs, len(levels))
		for i := range levels {
			pts[i].X, pts[i].Y = levels[i], v[i]
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("png %s: %w", path, err)
		}
		l.Color = plotutil.Color(k)
		p.Add(l)
		p.Legend.Add(seriesName(res, k), l)
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

func writeHTML(path, title string, res *pricer.Result) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "level"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "value"}),
	)
	levels := res.Levels()
	labels := make([]string, len(levels))
	for i, s := range levels {
		labels[i] = strconv.FormatFloat(s, 'f', 2, 64)
	}
	line.SetXAxis(labels)
	for k, v := range res.Values {
		data := make([]opts.LineData, len(v))
		for i := range v {
			data[i] = opts.LineData{Value: v[i]}
		}
		line.AddSeries(seriesName(res, k), data)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = line.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("html %s: %w", path, err)
	}

	return f.Close()
}

// closedForm returns the Black (lognormal) or Bachelier (normal) value of a
// call or put with constant coefficients, and the volatility implied by fd.
// ok is false for payoffs without a closed form here.
func closedForm(c config, ct pricer.Contract, fd float64) (ref, implied float64, ok bool) {
	if ct.Payoff == pricer.Digital {
		return 0, 0, false
	}
	t, k := ct.Expiry, ct.Strike
	df := math.Exp(-c.Rate * t)
	call, impliedOf := analytic.BachelierCall, analytic.BachelierImplied
	fwd := c.Spot + c.Drift*t
	if c.Model == modelLognormal {
		call, impliedOf = analytic.BlackCall, analytic.BlackImplied
		fwd = c.Spot * math.Exp(c.Drift*t)
	}
	undisc := call(t, k, fwd, c.Vol)
	fdCall := fd / df
	if ct.Payoff == pricer.Put {
		undisc -= fwd - k
		fdCall += fwd - k
	}

	return df * undisc, impliedOf(t, k, fdCall, fwd), true
}

func fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(reportDecimals)
}

// summarize prints the values at c.Spot, with the closed form alongside
// where one exists, or the moments of a density.
func summarize(w io.Writer, c config, res *pricer.Result) error {
	head := color.New(color.FgCyan, color.Bold).SprintFunc()
	good := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()

	fmt.Fprintf(w, "%s scheme=%s nodes=%d steps=%d spot=%g\n", head("fdmprice"), c.Scheme, len(res.X), c.Steps, c.Spot)
	if len(res.Contracts) == 0 {
		var mass, mean, sq float64
		for i, s := range res.Levels() {
			p := res.Values[0][i]
			mass += p
			mean += p * s
			sq += p * s * s
		}
		if mass > 0 {
			mean /= mass
			sq /= mass
		}
		fmt.Fprintf(w, "%-28s mass=%s mean=%s stdev=%s\n", "density T="+strconv.FormatFloat(c.Expiry, 'g', -1, 64),
			good(fixed(mass)), good(fixed(mean)), good(fixed(math.Sqrt(math.Max(sq-mean*mean, 0)))))
		return nil
	}

	for k, ct := range res.Contracts {
		v, err := res.ValueAt(k, c.Spot)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%-28s fd=%s", seriesName(res, k), good(fixed(v)))
		if ref, iv, ok := closedForm(c, ct, v); ok {
			paint := good
			if math.Abs(v-ref) > 1e-2 {
				paint = bad
			}
			line += fmt.Sprintf(" closed=%s diff=%s implied=%s", fixed(ref), paint(fixed(v-ref)), fixed(iv))
		}
		fmt.Fprintln(w, line)
	}

	return nil
}
