package fd1d_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fdm/fd1d"
	"github.com/katalvlaran/fdm/findiff"
	"github.com/katalvlaran/fdm/matrix"
	"github.com/stretchr/testify/require"
)

// stretched returns a non-uniform grid on [0, 1] clustered around 0.5.
func stretched(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		u := float64(i) / float64(n-1)
		x[i] = 0.5 + 0.5*math.Sinh(3*(2*u-1))/math.Sinh(3)
	}

	return x
}

// setCoefficients fills r, μ, σ² with smooth, node-dependent values.
func setCoefficients(rl *fd1d.Roller[float64], r float64) {
	for i, x := range rl.X() {
		rl.R()[i] = r
		rl.Mu()[i] = 0.3 - x
		rl.Var()[i] = 0.04 + 0.1*x*x
	}
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

func TestInitErrors(t *testing.T) {
	rl := fd1d.New[float64]()
	require.ErrorIs(t, rl.Init(-1, []float64{0, 1}, false), fd1d.ErrBatchShape)
	require.ErrorIs(t, rl.Init(1, []float64{0, 1, 1}, false), findiff.ErrGridNotIncreasing)
}

func TestInitSizes(t *testing.T) {
	rl := fd1d.New[float64]()
	require.NoError(t, rl.Init(3, stretched(11), false))
	require.Len(t, rl.X(), 11)
	require.Len(t, rl.R(), 11)
	require.Len(t, rl.Mu(), 11)
	require.Len(t, rl.Var(), 11)
	require.Len(t, rl.Res(), 3)
	for _, v := range rl.Res() {
		require.Len(t, v, 11)
	}
	for _, op := range []*matrix.Dense[float64]{rl.Dxd(), rl.Dx(), rl.Dxu(), rl.Dxx()} {
		require.Equal(t, 11, op.Rows())
		require.Equal(t, 3, op.Cols())
	}
}

// TestLogCorrection: in log mode Dxx[i] = Dxx_plain[i] − Dx[i] on interior rows.
func TestLogCorrection(t *testing.T) {
	x := stretched(9)
	plain := fd1d.New[float64]()
	require.NoError(t, plain.Init(1, x, false))
	logged := fd1d.New[float64]()
	require.NoError(t, logged.Init(1, x, true))

	for i := 0; i < len(x); i++ {
		for j := 0; j < 3; j++ {
			want := plain.Dxx().Elem(i, j)
			if i > 0 && i < len(x)-1 {
				want -= plain.Dx().Elem(i, j)
			}
			require.Equal(t, want, logged.Dxx().Elem(i, j), "row %d col %d", i, j)
		}
	}
}

// TestEmptyGridNoOp: rolling over an empty grid leaves the batch untouched.
func TestEmptyGridNoOp(t *testing.T) {
	rl := fd1d.New[float64]()
	require.NoError(t, rl.Init(2, nil, false))
	res := rl.Res()
	require.Len(t, res, 2)
	require.NoError(t, rl.RollBwd(0.1, true, 0.5, findiff.Center, res))
	require.NoError(t, rl.RollFwd(0.1, true, 0.5, findiff.Smart, res))
	for _, v := range res {
		require.Empty(t, v)
	}

	// An uninitialised roller behaves the same way.
	require.NoError(t, fd1d.New[float64]().RollBwd(0.1, false, 1, findiff.Up, nil))
}

func TestCalcAxUniform(t *testing.T) {
	rl := fd1d.New[float64]()
	require.NoError(t, rl.Init(1, []float64{0, 1, 2, 3}, false))
	for i := range rl.X() {
		rl.R()[i] = 0.1
		rl.Mu()[i] = 2
		rl.Var()[i] = 4
	}
	a, err := matrix.NewDense[float64](0, 0)
	require.NoError(t, err)

	// Up wind: row 1 = dt·(μ·(0,-1,1) + ½σ²·(1,-2,1)) + (1 − dt·r) on the diagonal.
	require.NoError(t, rl.CalcAx(1, 0.5, findiff.Up, false, a))
	require.InDeltaSlice(t, []float64{1, 1 - 0.5*6 - 0.05, 0.5 * 4}, a.Row(1), 1e-15)
	// Boundary row 0 has no Dxx contribution.
	require.InDeltaSlice(t, []float64{0, 1 - 1 - 0.05, 1}, a.Row(0), 1e-15)

	// Smart wind with μ == 0 drops the drift term entirely.
	for i := range rl.Mu() {
		rl.Mu()[i] = 0
	}
	require.NoError(t, rl.CalcAx(0, 1, findiff.Smart, false, a))
	require.InDeltaSlice(t, []float64{2, -4 - 0.1, 2}, a.Row(2), 1e-15)
	require.InDeltaSlice(t, []float64{0, -0.1, 0}, a.Row(3), 1e-15)
}

func TestCalcAxSmartPicksSideBySign(t *testing.T) {
	rl := fd1d.New[float64]()
	require.NoError(t, rl.Init(1, []float64{0, 1, 2, 3, 4}, false))
	rl.Mu()[1], rl.Mu()[3] = -1, 1
	a, _ := matrix.NewDense[float64](0, 0)
	require.NoError(t, rl.CalcAx(0, 1, findiff.Smart, false, a))
	require.Equal(t, []float64{1, -1, 0}, a.Row(1)) // -1·(-1, 1, 0)
	require.Equal(t, []float64{0, -1, 1}, a.Row(3)) // +1·(0, -1, 1)
}

// TestCalcAxTransposed: tr == true yields the band of the transposed operator.
func TestCalcAxTransposed(t *testing.T) {
	rl := fd1d.New[float64]()
	require.NoError(t, rl.Init(1, stretched(12), false))
	setCoefficients(rl, 0.03)

	plain, _ := matrix.NewDense[float64](0, 0)
	tr, _ := matrix.NewDense[float64](0, 0)
	require.NoError(t, rl.CalcAx(1, 0.01, findiff.Center, false, plain))
	require.NoError(t, rl.CalcAx(1, 0.01, findiff.Center, true, tr))

	want, _ := matrix.NewDense[float64](12, 3)
	require.NoError(t, matrix.TransposeBand(plain, 1, 1, want))
	require.Equal(t, want.Data(), tr.Data())
}

// TestRollBwdConstants: with r == 0 constants are preserved; with r > 0 and
// θ = 1 each step divides by (1 + r·dt).
func TestRollBwdConstants(t *testing.T) {
	const n, dt = 21, 0.01
	rl := fd1d.New[float64]()
	require.NoError(t, rl.Init(1, stretched(n), false))
	setCoefficients(rl, 0)

	res := rl.Res()
	for i := range res[0] {
		res[0][i] = 3
	}
	for s := 0; s < 10; s++ {
		require.NoError(t, rl.RollBwd(dt, true, 0.5, findiff.Center, res))
	}
	for _, v := range res[0] {
		require.InDelta(t, 3.0, v, 1e-12)
	}

	setCoefficients(rl, 0.05)
	for i := range res[0] {
		res[0][i] = 1
	}
	require.NoError(t, rl.RollBwd(dt, true, 1, findiff.Smart, res))
	for _, v := range res[0] {
		require.InDelta(t, 1/(1+0.05*dt), v, 1e-12)
	}
}

// TestRollAdjointIdentity: ⟨Fwd(p), v⟩ = ⟨p, Bwd(v)⟩ for the same step.
func TestRollAdjointIdentity(t *testing.T) {
	const n = 31
	for _, theta := range []float64{0, 0.5, 1} {
		for _, wind := range []findiff.Wind{findiff.Down, findiff.Center, findiff.Up, findiff.Smart} {
			rl := fd1d.New[float64]()
			require.NoError(t, rl.Init(2, stretched(n), false))
			setCoefficients(rl, 0.02)

			p := make([]float64, n)
			v := make([]float64, n)
			for i, x := range rl.X() {
				p[i] = math.Exp(-20 * (x - 0.4) * (x - 0.4))
				v[i] = math.Max(x-0.5, 0) + 0.1*x
			}
			pv := append([]float64(nil), p...)
			vv := append([]float64(nil), v...)

			require.NoError(t, rl.RollFwd(0.002, true, theta, wind, [][]float64{pv}))
			require.NoError(t, rl.RollBwd(0.002, true, theta, wind, [][]float64{vv}))
			require.InDelta(t, dot(pv, v), dot(p, vv), 1e-12, "theta=%g wind=%s", theta, wind)
		}
	}
}

// TestUpdateFalseReusesOperator: after the first build, update == false keeps
// the old coefficients even when Mu changes.
func TestUpdateFalseReusesOperator(t *testing.T) {
	const n = 15
	run := func(changeMu, update bool) []float64 {
		rl := fd1d.New[float64]()
		require.NoError(t, rl.Init(1, stretched(n), false))
		setCoefficients(rl, 0.01)
		v := rl.Res()[0]
		for i, x := range rl.X() {
			v[i] = x * x
		}
		// First roll builds the operators even though update is false.
		require.NoError(t, rl.RollBwd(0.01, false, 0.5, findiff.Center, rl.Res()))
		if changeMu {
			for i := range rl.Mu() {
				rl.Mu()[i] = 5
			}
		}
		require.NoError(t, rl.RollBwd(0.01, update, 0.5, findiff.Center, rl.Res()))

		return append([]float64(nil), v...)
	}

	base := run(false, false)
	require.Equal(t, base, run(true, false))
	require.NotEqual(t, base, run(true, true))
}

// TestWorkersMatchSerial: the parallel batch path is bitwise identical.
func TestWorkersMatchSerial(t *testing.T) {
	const n, numV = 41, 6
	run := func(opts ...fd1d.Option) [][]float64 {
		rl := fd1d.New[float64](opts...)
		require.NoError(t, rl.Init(numV, stretched(n), false))
		setCoefficients(rl, 0.02)
		for k, v := range rl.Res() {
			for i, x := range rl.X() {
				v[i] = math.Max(x-0.1*float64(k), 0)
			}
		}
		for s := 0; s < 5; s++ {
			require.NoError(t, rl.RollBwd(0.01, s == 0, 0.5, findiff.Smart, rl.Res()))
		}

		return rl.Res()
	}
	require.Equal(t, run(), run(fd1d.WithWorkers(4)))
}

// TestBatchLargerThanInit: a caller batch bigger than numV gets its own scratch.
func TestBatchLargerThanInit(t *testing.T) {
	rl := fd1d.New[float64](fd1d.WithWorkers(2))
	require.NoError(t, rl.Init(1, stretched(9), false))
	setCoefficients(rl, 0)
	batch := make([][]float64, 3)
	for k := range batch {
		batch[k] = make([]float64, 9)
		for i := range batch[k] {
			batch[k][i] = float64(k + 1)
		}
	}
	require.NoError(t, rl.RollBwd(0.01, true, 0.5, findiff.Center, batch))
	for k := range batch {
		for _, v := range batch[k] {
			require.InDelta(t, float64(k+1), v, 1e-12)
		}
	}
}

func TestRollErrors(t *testing.T) {
	rl := fd1d.New[float64]()
	require.NoError(t, rl.Init(1, stretched(5), false))

	require.ErrorIs(t, rl.RollBwd(0.1, true, 1.5, findiff.Center, rl.Res()), fd1d.ErrInvalidTheta)
	require.ErrorIs(t, rl.RollFwd(0.1, true, math.NaN(), findiff.Center, rl.Res()), fd1d.ErrInvalidTheta)
	require.ErrorIs(t, rl.RollBwd(0.1, true, 0.5, findiff.Wind(5), rl.Res()), findiff.ErrUnsupportedWind)
	require.ErrorIs(t, rl.RollBwd(0.1, true, 0.5, findiff.Center, [][]float64{make([]float64, 4)}), fd1d.ErrBatchShape)
	require.ErrorIs(t, rl.CalcAx(1, 1, findiff.Center, false, nil), fd1d.ErrNilOperator)
	require.ErrorIs(t, rl.CalcAx(1, 1, findiff.Wind(-3), false, rl.Dx()), findiff.ErrUnsupportedWind)
}

func TestWithWorkersPanics(t *testing.T) {
	require.Panics(t, func() { fd1d.WithWorkers(0) })
}
