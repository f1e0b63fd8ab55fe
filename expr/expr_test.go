// SPDX-License-Identifier: MIT
package expr_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numcore/core"
	"github.com/katalvlaran/numcore/expr"
)

func eval(t *testing.T, src string, x float64) float64 {
	t.Helper()
	e, err := expr.Compile(src)
	require.NoError(t, err, "Compile(%q)", src)
	v, err := e.Eval(x)
	require.NoError(t, err, "Eval(%q, %v)", src, x)

	return v
}

func TestCompile_Arithmetic(t *testing.T) {
	cases := []struct {
		src  string
		x    float64
		want float64
	}{
		{"1 + 2 * 3", 0, 7},
		{"(1 + 2) * 3", 0, 9},
		{"10 - 4 - 3", 0, 3},
		{"12 / 3 / 2", 0, 2},
		{"2 ^ 3 ^ 2", 0, 512},
		{"2 ** 10", 0, 1024},
		{"-x^2", 3, -9},
		{"(-x)^2", 3, 9},
		{"2^-1", 0, 0.5},
		{"--x", 4, 4},
		{"+x", 4, 4},
		{"x*x - 2*x + 1", 3, 4},
		{"1.5e2 + .5", 0, 150.5},
		{"2E-1", 0, 0.2},
		{"  x\t+\n1 ", 1, 2},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, eval(t, c.src, c.x), 1e-12, "%q at x=%v", c.src, c.x)
	}
}

func TestCompile_ConstantsAndFunctions(t *testing.T) {
	assert.InDelta(t, math.Pi, eval(t, "pi", 0), 1e-15)
	assert.InDelta(t, math.E, eval(t, "e", 0), 1e-15)
	assert.InDelta(t, 2*math.E, eval(t, "2*e", 0), 1e-15)
	assert.InDelta(t, -1, eval(t, "cos(pi)", 0), 1e-15)
	assert.InDelta(t, -1, eval(t, "math.cos(math.pi)", 0), 1e-15)
	assert.InDelta(t, 1, eval(t, "sin(x)^2 + cos(x)^2", 0.7), 1e-12)
	assert.InDelta(t, 3, eval(t, "log10(1000)", 0), 1e-12)
	assert.InDelta(t, 5, eval(t, "log2(32)", 0), 1e-12)
	assert.InDelta(t, 1, eval(t, "log(e)", 0), 1e-15)
	assert.InDelta(t, 4, eval(t, "sqrt(abs(-16))", 0), 1e-15)
	assert.InDelta(t, -2, eval(t, "floor(-1.5)", 0), 0)
	assert.InDelta(t, -1, eval(t, "ceil(-1.5)", 0), 0)
	assert.InDelta(t, math.Exp(2), eval(t, "exp(2*x)", 1), 1e-12)
	assert.InDelta(t, math.Atan(1), eval(t, "atan(1)", 0), 1e-15)
	assert.InDelta(t, math.Tanh(0.3), eval(t, "tanh(x)", 0.3), 1e-15)
}

func TestCompile_ParseErrors(t *testing.T) {
	cases := map[string]string{
		"":              "end of input",
		"1 +":           "end of input",
		"(1 + 2":        "expected )",
		"1 + 2)":        `")"`,
		"2x":            `"x"`,
		"foo(1)":        `"foo"`,
		"__import__(x)": `"__import__"`,
		"os.system(x)":  `"os.system"`,
		"exec('x')":     `'\''`,
		"system(x)":     `"system"`,
		"math.x":        `"math.x"`,
		"sin x":         "expected (",
		"1,5":           "','",
		"x # y":         "'#'",
		"3 $":           "offset 2",
		"1 ++ ":         "end of input",
	}
	for src, want := range cases {
		_, err := expr.Compile(src)
		require.Error(t, err, "Compile(%q)", src)
		assert.ErrorIs(t, err, core.ErrParse, "Compile(%q)", src)
		assert.Contains(t, err.Error(), want, "Compile(%q)", src)
	}
}

func TestCompile_DeepNesting(t *testing.T) {
	src := strings.Repeat("(", 1000) + "x" + strings.Repeat(")", 1000)
	_, err := expr.Compile(src)
	assert.ErrorIs(t, err, core.ErrParse)

	_, err = expr.Compile(strings.Repeat("-", 1000) + "x")
	assert.ErrorIs(t, err, core.ErrParse)

	ok := strings.Repeat("(", 50) + "x" + strings.Repeat(")", 50)
	assert.Equal(t, 2.0, eval(t, ok, 2))
}

func TestEval_NonFinite(t *testing.T) {
	for _, src := range []string{"log(x)", "1/x", "sqrt(x - 1)"} {
		e, err := expr.Compile(src)
		require.NoError(t, err)
		_, err = e.Eval(0)
		assert.ErrorIs(t, err, core.ErrNonFinite, src)
	}

	e := expr.MustCompile("x")
	_, err := e.Eval(math.NaN())
	assert.ErrorIs(t, err, core.ErrNonFinite)
	assert.Equal(t, "x", e.String())
}

func TestMustCompile_Panics(t *testing.T) {
	assert.Panics(t, func() { expr.MustCompile("1 +") })
}

func TestSample(t *testing.T) {
	e := expr.MustCompile("x^2")
	ps, err := expr.Sample(e, []float64{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 4}, ps.Ys())
	assert.Equal(t, []float64{0, 1, 2}, ps.Xs())

	_, err = expr.Sample(expr.MustCompile("1/x"), []float64{1, 0})
	assert.ErrorIs(t, err, core.ErrNonFinite)
	assert.Contains(t, err.Error(), "x=0")
}
