package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fdm/pricer"
)

func init() { color.NoColor = true }

func TestNodeRows(t *testing.T) {
	res := &pricer.Result{
		X:         []float64{0, 1},
		Log:       true,
		Values:    [][]float64{{1, 2}, {3, 4}},
		Contracts: []pricer.Contract{{Payoff: pricer.Call, Strike: 1, Expiry: 0.5}, {Payoff: pricer.Put, Strike: 2, Expiry: 1}},
	}
	rows := nodeRows(res)
	require.Len(t, rows, 4)
	require.Equal(t, nodeRow{Series: "put K=2 T=1", Node: 1, X: 1, Level: res.Levels()[1], Value: 4}, *rows[3])
	require.Equal(t, "call K=1 T=0.5", rows[0].Series)

	require.Equal(t, "density", seriesName(&pricer.Result{X: []float64{0}, Values: [][]float64{{1}}}, 0))
}

func TestRunWritesReports(t *testing.T) {
	dir := t.TempDir()
	c := defaultConfig()
	c.Nodes, c.Steps, c.Strikes = 101, 50, []float64{95, 100}
	c.CSV = filepath.Join(dir, "values.csv")
	c.PNG = filepath.Join(dir, "values.png")
	c.HTML = filepath.Join(dir, "values.html")

	var out bytes.Buffer
	require.NoError(t, run(c, &out))
	require.Contains(t, out.String(), "call K=95 T=0.25")
	require.Contains(t, out.String(), "closed=")
	require.Equal(t, 3, strings.Count(out.String(), "\n"))

	f, err := os.Open(c.CSV)
	require.NoError(t, err)
	defer f.Close()
	var rows []*nodeRow
	require.NoError(t, gocsv.UnmarshalFile(f, &rows))
	require.Len(t, rows, 2*101)
	require.Equal(t, 100.0, rows[50].Level)

	for _, p := range []string{c.PNG, c.HTML} {
		st, err := os.Stat(p)
		require.NoError(t, err)
		require.Positive(t, st.Size())
	}
}

func TestRunDensity(t *testing.T) {
	c := defaultConfig()
	c.Density, c.Rate, c.Nodes, c.Steps = true, 0, 101, 50

	var out bytes.Buffer
	require.NoError(t, run(c, &out))
	require.Contains(t, out.String(), "mass=1.0000")
}

func TestClosedForm(t *testing.T) {
	c := defaultConfig()
	call := pricer.Contract{Payoff: pricer.Call, Strike: 100, Expiry: 0.25}
	ref, _, ok := closedForm(c, call, 0)
	require.True(t, ok)
	// the implied volatility of the closed form is the input volatility
	_, iv, _ := closedForm(c, call, ref)
	require.InDelta(t, c.Vol, iv, 1e-6)

	put := pricer.Contract{Payoff: pricer.Put, Strike: 110, Expiry: 0.25}
	pref, _, _ := closedForm(c, put, 0)
	_, piv, _ := closedForm(c, put, pref)
	require.InDelta(t, c.Vol, piv, 1e-6)

	c.Model, c.Vol = modelNormal, 20
	nref, _, ok := closedForm(c, call, 0)
	require.True(t, ok)
	_, niv, _ := closedForm(c, call, nref)
	require.InDelta(t, 20.0, niv, 1e-6)

	_, _, ok = closedForm(c, pricer.Contract{Payoff: pricer.Digital, Strike: 100}, 0.5)
	require.False(t, ok)
}

func TestRunErrors(t *testing.T) {
	c := defaultConfig()
	c.Spot = 1000
	require.ErrorIs(t, run(c, &bytes.Buffer{}), pricer.ErrSpotOutsideGrid)

	c = defaultConfig()
	c.Steps = 0
	require.ErrorIs(t, run(c, &bytes.Buffer{}), pricer.ErrConfig)
}
