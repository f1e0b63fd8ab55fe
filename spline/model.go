// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/numcore/core"
)

const (
	opEval       = "Model.Eval"
	opDerivative = "Model.Derivative"
)

// Model is a built cubic spline. It is read-only after construction.
type Model struct {
	kind       Kind
	knots      []float64 // x_0 < … < x_{n-1}
	a, b, c, d []float64 // per interval, len n-1
	fp0, fpn   float64   // clamped end slopes; informational
	linear     bool      // interval lookup strategy
}

// Eval returns S(x) on the interval containing x.
//
// Errors:
//   - core.ErrNonFinite if x is NaN or ±Inf.
//   - core.ErrOutOfDomain if x < x_0 or x > x_{n-1}.
//
// Complexity: O(log n), or O(n) with WithLinearSearch.
func (m *Model) Eval(x float64) (float64, error) {
	i, err := m.locate(x)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opEval, err)
	}
	dx := x - m.knots[i]

	return m.a[i] + m.b[i]*dx + m.c[i]*dx*dx + m.d[i]*dx*dx*dx, nil
}

// Derivative returns S'(x) = b_i + 2c_i·dx + 3d_i·dx². At an interior knot
// the left piece is used; the spline is C¹ so both pieces agree.
// Errors as Eval.
func (m *Model) Derivative(x float64) (float64, error) {
	i, err := m.locate(x)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opDerivative, err)
	}
	dx := x - m.knots[i]

	return m.b[i] + 2*m.c[i]*dx + 3*m.d[i]*dx*dx, nil
}

// locate returns the lowest i with x_i ≤ x ≤ x_{i+1}.
func (m *Model) locate(x float64) (int, error) {
	if !core.IsFinite(x) {
		return 0, fmt.Errorf("x=%v: %w", x, core.ErrNonFinite)
	}
	n := len(m.knots)
	if x < m.knots[0] || x > m.knots[n-1] {
		return 0, fmt.Errorf("x=%g not in [%g, %g]: %w", x, m.knots[0], m.knots[n-1], core.ErrOutOfDomain)
	}
	if m.linear {
		for i := 0; i < n-1; i++ {
			if x >= m.knots[i] && x <= m.knots[i+1] {
				return i, nil
			}
		}
	}
	// smallest j with knots[j] ≥ x; x sits in interval j-1 unless it is x_0
	j := sort.SearchFloat64s(m.knots, x)
	if j == 0 {
		return 0, nil
	}

	return j - 1, nil
}

// Kind reports the boundary condition.
func (m *Model) Kind() Kind { return m.kind }

// Boundary returns the clamped end slopes; ok is false for natural splines.
func (m *Model) Boundary() (fp0, fpn float64, ok bool) {
	return m.fp0, m.fpn, m.kind == KindClamped
}

// Knots returns a copy of x_0 … x_{n-1}.
func (m *Model) Knots() []float64 { return clone(m.knots) }

// Domain returns x_0 and x_{n-1}.
func (m *Model) Domain() (lo, hi float64) { return m.knots[0], m.knots[len(m.knots)-1] }

// Coeffs returns copies of the per-interval coefficients.
func (m *Model) Coeffs() (a, b, c, d []float64) {
	return clone(m.a), clone(m.b), clone(m.c), clone(m.d)
}

// Intervals returns n-1, the number of cubic pieces.
func (m *Model) Intervals() int { return len(m.a) }

func clone(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)

	return out
}
