// SPDX-License-Identifier: MIT
package spline_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/interp"

	"github.com/katalvlaran/numcore/core"
	"github.com/katalvlaran/numcore/spline"
)

var (
	zigX = []float64{0, 1, 2, 3}
	zigY = []float64{0, 1, 0, 1}
)

func mustEval(t *testing.T, m *spline.Model, x float64) float64 {
	t.Helper()
	v, err := m.Eval(x)
	require.NoError(t, err, "Eval(%v)", x)

	return v
}

func mustDeriv(t *testing.T, m *spline.Model, x float64) float64 {
	t.Helper()
	v, err := m.Derivative(x)
	require.NoError(t, err, "Derivative(%v)", x)

	return v
}

func TestNatural_Endpoints(t *testing.T) {
	m, err := spline.Natural(zigX, zigY)
	require.NoError(t, err)
	assert.InDelta(t, 0, mustEval(t, m, 0), 1e-12)
	assert.InDelta(t, 1, mustEval(t, m, 3), 1e-12)
	assert.Equal(t, spline.KindNatural, m.Kind())
	assert.Equal(t, 3, m.Intervals())

	_, _, ok := m.Boundary()
	assert.False(t, ok)
}

func TestNatural_InterpolatesKnots(t *testing.T) {
	xs := []float64{-2, -0.5, 0, 1.25, 3, 4.5}
	ys := []float64{1, 3, -1, 0.5, 2, -2}
	m, err := spline.Natural(xs, ys)
	require.NoError(t, err)
	for i, x := range xs {
		assert.InDelta(t, ys[i], mustEval(t, m, x), 1e-12, "knot %v", x)
	}
}

func TestNatural_ZeroCurvatureAtEnds(t *testing.T) {
	xs := []float64{0, 0.7, 1.5, 2, 3.2}
	ys := []float64{1, -1, 2, 0, 1}
	m, err := spline.Natural(xs, ys)
	require.NoError(t, err)

	_, _, c, d := m.Coeffs()
	last := len(c) - 1
	h := xs[len(xs)-1] - xs[len(xs)-2]
	assert.Equal(t, 0.0, c[0], "S''(x_0)/2")
	assert.InDelta(t, 0, 2*c[last]+6*d[last]*h, 1e-12, "S''(x_{n-1})")
}

func TestNatural_ContinuityAtInteriorKnots(t *testing.T) {
	xs := []float64{0, 0.5, 1.5, 2, 3.5, 4}
	ys := []float64{0, 2, -1, 1, 0, 3}
	m, err := spline.Natural(xs, ys)
	require.NoError(t, err)

	a, b, c, d := m.Coeffs()
	for k := 1; k < len(xs)-1; k++ {
		h := xs[k] - xs[k-1]
		i := k - 1
		assert.InDelta(t, a[k], a[i]+b[i]*h+c[i]*h*h+d[i]*h*h*h, 1e-9, "C0 at x=%v", xs[k])
		assert.InDelta(t, b[k], b[i]+2*c[i]*h+3*d[i]*h*h, 1e-9, "C1 at x=%v", xs[k])
		assert.InDelta(t, 2*c[k], 2*c[i]+6*d[i]*h, 1e-9, "C2 at x=%v", xs[k])
	}

	// one-sided finite differences agree across each knot
	const eps = 1e-6
	for k := 1; k < len(xs)-1; k++ {
		x := xs[k]
		left := (mustEval(t, m, x) - mustEval(t, m, x-eps)) / eps
		right := (mustEval(t, m, x+eps) - mustEval(t, m, x)) / eps
		assert.InDelta(t, left, right, 1e-4, "S' jump at x=%v", x)

		dl := (mustDeriv(t, m, x) - mustDeriv(t, m, x-eps)) / eps
		dr := (mustDeriv(t, m, x+eps) - mustDeriv(t, m, x)) / eps
		assert.InDelta(t, dl, dr, 1e-3, "S'' jump at x=%v", x)
	}
}

func TestNatural_TwoKnotsIsLine(t *testing.T) {
	m, err := spline.Natural([]float64{1, 3}, []float64{2, 6})
	require.NoError(t, err)
	assert.InDelta(t, 4, mustEval(t, m, 2), 1e-12)
	assert.InDelta(t, 2, mustDeriv(t, m, 1.5), 1e-12)
}

func TestNatural_ReproducesLine(t *testing.T) {
	xs := []float64{-1, 0, 0.3, 2, 5}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 2*x - 1
	}
	m, err := spline.Natural(xs, ys)
	require.NoError(t, err)
	for _, x := range []float64{-0.9, 0.1, 1, 3.3, 4.99} {
		assert.InDelta(t, 2*x-1, mustEval(t, m, x), 1e-12)
	}
}

func TestNatural_MatchesGonum(t *testing.T) {
	xs := []float64{0, 0.4, 1, 1.7, 2.5, 3, 4.2}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = math.Sin(x) + 0.1*x*x
	}
	m, err := spline.Natural(xs, ys)
	require.NoError(t, err)

	var ref interp.NaturalCubic
	require.NoError(t, ref.Fit(xs, ys))

	grid, err := core.Linspace(xs[0], xs[len(xs)-1], 101)
	require.NoError(t, err)
	for _, x := range grid {
		assert.InDelta(t, ref.Predict(x), mustEval(t, m, x), 1e-9, "x=%v", x)
	}
}

func TestClamped_ZeroSlopeAtStart(t *testing.T) {
	m, err := spline.Clamped(zigX, zigY, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, spline.KindClamped, m.Kind())

	const eps = 1e-6
	fd := (mustEval(t, m, eps) - mustEval(t, m, 0)) / eps
	assert.InDelta(t, 0, fd, 1e-4)
	assert.InDelta(t, 0, mustDeriv(t, m, 0), 1e-12)
	assert.InDelta(t, 0, mustDeriv(t, m, 3), 1e-9)

	for i, x := range zigX {
		assert.InDelta(t, zigY[i], mustEval(t, m, x), 1e-12)
	}
}

func TestClamped_EndSlopes(t *testing.T) {
	m, err := spline.Clamped([]float64{0, 1, 2.5, 4}, []float64{1, 0, 2, 1}, -2, 3.5)
	require.NoError(t, err)
	assert.InDelta(t, -2, mustDeriv(t, m, 0), 1e-12)
	assert.InDelta(t, 3.5, mustDeriv(t, m, 4), 1e-9)

	fp0, fpn, ok := m.Boundary()
	assert.True(t, ok)
	assert.Equal(t, -2.0, fp0)
	assert.Equal(t, 3.5, fpn)
}

func TestClamped_ReproducesCubic(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 2*x + 1 }
	df := func(x float64) float64 { return 3*x*x - 2 }
	xs := []float64{-1, 0, 0.5, 2, 3}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	m, err := spline.Clamped(xs, ys, df(-1), df(3))
	require.NoError(t, err)
	for _, x := range []float64{-0.75, 0.2, 1, 1.9, 2.8} {
		assert.InDelta(t, f(x), mustEval(t, m, x), 1e-9, "x=%v", x)
	}
}

func TestClamped_TwoKnots(t *testing.T) {
	// Hermite cubic with slopes 0 at both ends: S(0.5) = 0.5
	m, err := spline.Clamped([]float64{0, 1}, []float64{0, 1}, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, mustEval(t, m, 0.5), 1e-12)
	assert.InDelta(t, 0, mustDeriv(t, m, 1), 1e-12)
}

func TestEval_Domain(t *testing.T) {
	m, err := spline.Natural(zigX, zigY)
	require.NoError(t, err)

	for _, x := range []float64{-1e-9, -5, 3 + 1e-9, 100} {
		_, err = m.Eval(x)
		assert.ErrorIs(t, err, core.ErrOutOfDomain, "x=%v", x)
		_, err = m.Derivative(x)
		assert.ErrorIs(t, err, core.ErrOutOfDomain, "x=%v", x)
	}
	for _, x := range []float64{math.NaN(), math.Inf(1)} {
		_, err = m.Eval(x)
		assert.ErrorIs(t, err, core.ErrNonFinite)
	}

	lo, hi := m.Domain()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 3.0, hi)
}

func TestBuild_Errors(t *testing.T) {
	_, err := spline.Natural([]float64{0, 2, 1}, []float64{0, 1, 2})
	assert.ErrorIs(t, err, core.ErrNotIncreasing)

	_, err = spline.Natural([]float64{0, 1, 1}, []float64{0, 1, 2})
	assert.ErrorIs(t, err, core.ErrDuplicateAbscissa)
	assert.Contains(t, err.Error(), "x=1")

	_, err = spline.Clamped([]float64{1}, []float64{1}, 0, 0)
	assert.ErrorIs(t, err, core.ErrTooFewPoints)

	_, err = spline.Natural(nil, nil)
	assert.ErrorIs(t, err, core.ErrTooFewPoints)

	_, err = spline.Natural([]float64{0, 1}, []float64{0})
	assert.ErrorIs(t, err, core.ErrSizeMismatch)

	_, err = spline.Natural([]float64{0, 1}, []float64{0, math.NaN()})
	assert.ErrorIs(t, err, core.ErrNonFinite)

	_, err = spline.Clamped([]float64{0, 1}, []float64{0, 1}, math.Inf(1), 0)
	assert.ErrorIs(t, err, core.ErrNonFinite)

	tight := []float64{0, 0.5, 0.5001}
	_, err = spline.Natural(tight, []float64{0, 1, 2})
	require.NoError(t, err)
	_, err = spline.Natural(tight, []float64{0, 1, 2}, spline.WithMinSpacing(1e-3))
	assert.ErrorIs(t, err, core.ErrDuplicateAbscissa)
}

func TestWithMinSpacing_Panics(t *testing.T) {
	assert.Panics(t, func() { spline.WithMinSpacing(-1) })
	assert.Panics(t, func() { spline.WithMinSpacing(math.NaN()) })
	assert.NotPanics(t, func() { spline.WithMinSpacing(0) })
}

func TestLinearSearchMatchesBinary(t *testing.T) {
	xs := []float64{0, 0.3, 1, 1.1, 2.7, 3, 5}
	ys := []float64{1, 0, 2, 2, -1, 0, 4}
	fast, err := spline.Natural(xs, ys)
	require.NoError(t, err)
	slow, err := spline.Natural(xs, ys, spline.WithLinearSearch())
	require.NoError(t, err)

	queries, err := core.Linspace(0, 5, 257)
	require.NoError(t, err)
	queries = append(queries, xs...) // knots resolve to the lower interval in both
	for _, x := range queries {
		assert.Equal(t, mustEval(t, fast, x), mustEval(t, slow, x), "x=%v", x)
		assert.Equal(t, mustDeriv(t, fast, x), mustDeriv(t, slow, x), "x=%v", x)
	}
}

func TestModel_DoesNotAliasInput(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 1, 0}
	m, err := spline.Natural(xs, ys)
	require.NoError(t, err)
	xs[1], ys[1] = 7, 7

	assert.Equal(t, []float64{0, 1, 2}, m.Knots())
	assert.InDelta(t, 1, mustEval(t, m, 1), 1e-12)

	k := m.Knots()
	k[0] = -10
	lo, _ := m.Domain()
	assert.Equal(t, 0.0, lo)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "natural", spline.KindNatural.String())
	assert.Equal(t, "clamped", spline.KindClamped.String())
	assert.Equal(t, "Kind(9)", spline.Kind(9).String())
}

func TestFromPoints(t *testing.T) {
	ps, err := core.NewPointSet(zigX, zigY)
	require.NoError(t, err)
	m, err := spline.FromPoints(ps)
	require.NoError(t, err)

	var ev core.Evaluator = m
	got, err := core.EvalAll(ev, zigX)
	require.NoError(t, err)
	assert.InDeltaSlice(t, zigY, got, 1e-12)
}

func TestModel_ConcurrentReaders(t *testing.T) {
	xs, err := core.Linspace(0, 10, 40)
	require.NoError(t, err)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = math.Cos(x)
	}
	m, err := spline.Natural(xs, ys)
	require.NoError(t, err)

	queries, err := core.Linspace(0, 10, 500)
	require.NoError(t, err)
	want, err := core.EvalAll(m, queries)
	require.NoError(t, err)

	const workers = 8
	results := make([][]float64, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			results[w], errs[w] = core.EvalAll(m, queries)
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		require.NoError(t, errs[w])
		assert.Equal(t, want, results[w])
	}
}
