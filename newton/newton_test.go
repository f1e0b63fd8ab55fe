// SPDX-License-Identifier: MIT
package newton_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numcore/core"
	"github.com/katalvlaran/numcore/lagrange"
	"github.com/katalvlaran/numcore/newton"
)

func TestBuild_Parabola(t *testing.T) {
	m, err := newton.Build([]float64{0, 1, 2}, []float64{0, 1, 4})
	require.NoError(t, err)

	v, err := m.Eval(1.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.25, v, 1e-12)

	// f[x0]=0, f[x0,x1]=1, f[x0,x1,x2]=1
	if diff := cmp.Diff([]float64{0, 1, 1}, m.Coeffs(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("divided differences (-want +got):\n%s", diff)
	}
	assert.Equal(t, []float64{0, 1, 2}, m.Nodes())
	assert.Equal(t, 3, m.Len())
}

func TestBuild_SingleNode(t *testing.T) {
	m, err := newton.Build([]float64{2}, []float64{-3})
	require.NoError(t, err)
	v, err := m.Eval(50)
	require.NoError(t, err)
	assert.Equal(t, -3.0, v)
}

func TestBuild_ReproducesNodes(t *testing.T) {
	xs := []float64{3, -1, 0.25, 2, 5}
	ys := []float64{1, 4, -2, 0, 6}
	m, err := newton.Build(xs, ys)
	require.NoError(t, err)
	for i, x := range xs {
		v, err := m.Eval(x)
		require.NoError(t, err)
		assert.InDelta(t, ys[i], v, 1e-9, "node %v", x)
	}
}

func TestBuild_DoesNotAliasInput(t *testing.T) {
	xs := []float64{0, 1}
	ys := []float64{0, 2}
	m, err := newton.Build(xs, ys)
	require.NoError(t, err)
	xs[0], ys[0] = 9, 9

	v, err := m.Eval(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1, v, 1e-12)

	c := m.Coeffs()
	c[0] = 42
	assert.NotEqual(t, 42.0, m.Coeffs()[0])
}

func TestBuild_Errors(t *testing.T) {
	_, err := newton.Build([]float64{0, 1}, []float64{0})
	assert.ErrorIs(t, err, core.ErrSizeMismatch)

	_, err = newton.Build(nil, nil)
	assert.ErrorIs(t, err, core.ErrTooFewPoints)

	_, err = newton.Build([]float64{0, 2, 2}, []float64{0, 1, 2})
	assert.ErrorIs(t, err, core.ErrDuplicateAbscissa)
	assert.Contains(t, err.Error(), "x=2")

	_, err = newton.Build([]float64{0, math.Inf(1)}, []float64{0, 1})
	assert.ErrorIs(t, err, core.ErrNonFinite)

	m, err := newton.Build([]float64{0, 1}, []float64{0, 1})
	require.NoError(t, err)
	_, err = m.Eval(math.NaN())
	assert.ErrorIs(t, err, core.ErrNonFinite)
}

func TestEval_OverflowIsNonFinite(t *testing.T) {
	m, err := newton.Build([]float64{0, 1}, []float64{0, 1e300})
	require.NoError(t, err)
	_, err = m.Eval(1e10)
	assert.ErrorIs(t, err, core.ErrNonFinite)

	v, err := m.Eval(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 5e299, v, 1e285)
}

func TestFromPoints(t *testing.T) {
	ps, err := core.FromPairs([][2]float64{{0, 1}, {1, 3}})
	require.NoError(t, err)
	m, err := newton.FromPoints(ps)
	require.NoError(t, err)
	v, err := m.Eval(2)
	require.NoError(t, err)
	assert.InDelta(t, 5, v, 1e-12)
}

// Newton and Lagrange forms are the same polynomial.
func TestNewtonMatchesLagrange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 25; trial++ {
		n := 2 + rng.Intn(7)
		xs := distinctNodes(rng, n)
		ys := make([]float64, n)
		for i := range ys {
			ys[i] = rng.Float64()*4 - 2
		}
		m, err := newton.Build(xs, ys)
		require.NoError(t, err)

		for k := 0; k < 10; k++ {
			x := rng.Float64()*2 - 1
			want, err := lagrange.Eval(xs, ys, x)
			require.NoError(t, err)
			got, err := m.Eval(x)
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-7, "trial %d n=%d x=%v", trial, n, x)
		}
	}
}

// distinctNodes returns n well-separated abscissas in [-1, 1], shuffled.
func distinctNodes(rng *rand.Rand, n int) []float64 {
	xs := make([]float64, n)
	step := 2.0 / float64(n)
	for i := range xs {
		xs[i] = -1 + (float64(i)+0.25+0.5*rng.Float64())*step
	}
	sort.Float64s(xs)
	rng.Shuffle(n, func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })

	return xs
}
