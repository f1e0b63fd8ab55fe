// SPDX-License-Identifier: MIT

package lsq

import (
	"fmt"

	"github.com/katalvlaran/numcore/core"
)

// Polynomial is P(x) = Σ c_i·x^i with coefficients in ascending order.
// It is immutable; the zero value is the zero polynomial of degree 0.
type Polynomial struct {
	coeffs []float64 // c_0 … c_m
}

// NewPolynomial builds a Polynomial from ascending coefficients (copied).
// An empty slice yields the zero polynomial.
func NewPolynomial(coeffs []float64) (Polynomial, error) {
	if err := core.ValidateFinite(coeffs); err != nil {
		return Polynomial{}, fmt.Errorf("NewPolynomial: %w", err)
	}
	c := make([]float64, len(coeffs))
	copy(c, coeffs)

	return Polynomial{coeffs: c}, nil
}

// Degree returns m, the index of the highest stored coefficient.
func (p Polynomial) Degree() int {
	if len(p.coeffs) == 0 {
		return 0
	}

	return len(p.coeffs) - 1
}

// Coeffs returns a copy of c_0 … c_m.
func (p Polynomial) Coeffs() []float64 {
	out := make([]float64, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// Eval returns Σ c_i·x^i, accumulating powers of x directly.
// It never fails: an overflowing sum comes back as ±Inf. Use Evaluator for a
// checked result.
// Complexity: O(m).
func (p Polynomial) Eval(x float64) float64 {
	var (
		sum float64
		pow = 1.0
	)
	for _, c := range p.coeffs {
		sum += c * pow
		pow *= x
	}

	return sum
}

// Evaluator adapts p to core.Evaluator. NaN/±Inf x or a non-finite result
// yields core.ErrNonFinite.
func (p Polynomial) Evaluator() core.Evaluator {
	return core.EvaluatorFunc(func(x float64) (float64, error) {
		if !core.IsFinite(x) {
			return 0, fmt.Errorf("Polynomial.Eval: x=%v: %w", x, core.ErrNonFinite)
		}
		v := p.Eval(x)
		if !core.IsFinite(v) {
			return 0, fmt.Errorf("Polynomial.Eval: P(%g) overflows: %w", x, core.ErrNonFinite)
		}

		return v, nil
	})
}

// Residuals returns y_i - P(x_i) for every point of ps, in order.
func (p Polynomial) Residuals(ps core.PointSet) []float64 {
	out := make([]float64, ps.Len())
	for i := range out {
		out[i] = ps.Y(i) - p.Eval(ps.X(i))
	}

	return out
}

// String renders the coefficients, e.g. "P[1 2]".
func (p Polynomial) String() string { return fmt.Sprintf("P%v", p.coeffs) }
