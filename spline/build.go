// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"

	"github.com/katalvlaran/numcore/core"
)

const (
	opNatural = "Natural"
	opClamped = "Clamped"
)

// Kind names the boundary condition a Model was built with.
type Kind int

const (
	KindNatural Kind = iota // S'' = 0 at both ends
	KindClamped             // S' fixed at both ends
)

// String returns "natural" or "clamped".
func (k Kind) String() string {
	switch k {
	case KindNatural:
		return "natural"
	case KindClamped:
		return "clamped"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Natural builds the natural cubic spline through (xs, ys).
//
// Implementation:
//   - Stage 1: validate (same length, n ≥ 2, finite, strictly increasing).
//   - Stage 2: alpha_i for interior i; l_0 = 1, mu_0 = z_0 = 0.
//   - Stage 3: interior forward sweep; l_{n-1} = 1, z_{n-1} = 0.
//   - Stage 4: back substitution for c, b, d from c_{n-1} = 0.
//
// Errors:
//   - core.ErrSizeMismatch, core.ErrTooFewPoints (n < 2), core.ErrNonFinite,
//     core.ErrNotIncreasing, core.ErrDuplicateAbscissa.
//
// Complexity: Time O(n), Space O(n).
func Natural(xs, ys []float64, opts ...Option) (*Model, error) {
	o := gatherOptions(opts)
	h, err := setup(xs, ys, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNatural, err)
	}
	n := len(xs)

	alpha := make([]float64, n)
	for i := 1; i < n-1; i++ {
		alpha[i] = 3 * ((ys[i+1]-ys[i])/h[i] - (ys[i]-ys[i-1])/h[i-1])
	}

	l := make([]float64, n)
	mu := make([]float64, n)
	z := make([]float64, n)
	l[0] = 1
	sweep(xs, h, alpha, l, mu, z)
	l[n-1], z[n-1] = 1, 0

	m := backSubstitute(xs, ys, h, mu, z, 0, o)
	m.kind = KindNatural

	return m, nil
}

// Clamped builds the cubic spline through (xs, ys) with S'(x_0) = fp0 and
// S'(x_{n-1}) = fpn.
//
// Implementation:
//   - Stage 1: validate as Natural; fp0 and fpn must be finite.
//   - Stage 2: alpha_0 = 3((y_1-y_0)/h_0 - fp0), alpha_{n-1} = 3(fpn - (y_{n-1}-y_{n-2})/h_{n-2}).
//   - Stage 3: l_0 = 2h_0, mu_0 = 0.5, z_0 = alpha_0/l_0; interior sweep;
//     l_{n-1} = h_{n-2}(2 - mu_{n-2}), z_{n-1} = (alpha_{n-1} - h_{n-2}z_{n-2})/l_{n-1}.
//   - Stage 4: back substitution from c_{n-1} = z_{n-1}.
//
// Errors: as Natural.
// Complexity: Time O(n), Space O(n).
func Clamped(xs, ys []float64, fp0, fpn float64, opts ...Option) (*Model, error) {
	o := gatherOptions(opts)
	h, err := setup(xs, ys, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opClamped, err)
	}
	if err = core.ValidateFinite([]float64{fp0, fpn}); err != nil {
		return nil, fmt.Errorf("%s: end slopes: %w", opClamped, err)
	}
	n := len(xs)

	alpha := make([]float64, n)
	alpha[0] = 3 * ((ys[1]-ys[0])/h[0] - fp0)
	alpha[n-1] = 3 * (fpn - (ys[n-1]-ys[n-2])/h[n-2])
	for i := 1; i < n-1; i++ {
		alpha[i] = 3 * ((ys[i+1]-ys[i])/h[i] - (ys[i]-ys[i-1])/h[i-1])
	}

	l := make([]float64, n)
	mu := make([]float64, n)
	z := make([]float64, n)
	l[0] = 2 * h[0]
	mu[0] = 0.5
	z[0] = alpha[0] / l[0]
	sweep(xs, h, alpha, l, mu, z)
	l[n-1] = h[n-2] * (2 - mu[n-2])
	z[n-1] = (alpha[n-1] - h[n-2]*z[n-2]) / l[n-1]

	m := backSubstitute(xs, ys, h, mu, z, z[n-1], o)
	m.kind = KindClamped
	m.fp0, m.fpn = fp0, fpn

	return m, nil
}

// FromPoints builds a natural spline over ps.
func FromPoints(ps core.PointSet, opts ...Option) (*Model, error) {
	return Natural(ps.Xs(), ps.Ys(), opts...)
}

// setup validates the knots and returns the interval widths h_i.
func setup(xs, ys []float64, o options) ([]float64, error) {
	if err := core.ValidateSameLen(xs, ys); err != nil {
		return nil, err
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("need at least 2 knots, got %d: %w", len(xs), core.ErrTooFewPoints)
	}
	if err := core.ValidateFinite(xs); err != nil {
		return nil, fmt.Errorf("x: %w", err)
	}
	if err := core.ValidateFinite(ys); err != nil {
		return nil, fmt.Errorf("y: %w", err)
	}
	if err := core.ValidateIncreasing(xs, o.minSpacing); err != nil {
		return nil, err
	}

	h := make([]float64, len(xs)-1)
	for i := range h {
		h[i] = xs[i+1] - xs[i]
	}

	return h, nil
}

// sweep runs the interior rows i = 1..n-2 of the tridiagonal forward pass.
// Row 0 of l, mu and z must already hold the boundary values.
func sweep(xs, h, alpha, l, mu, z []float64) {
	for i := 1; i < len(xs)-1; i++ {
		l[i] = 2*(xs[i+1]-xs[i-1]) - h[i-1]*mu[i-1]
		mu[i] = h[i] / l[i]
		z[i] = (alpha[i] - h[i-1]*z[i-1]) / l[i]
	}
}

// backSubstitute produces the model coefficients from the swept system,
// starting from c_{n-1} = cLast.
func backSubstitute(xs, ys, h, mu, z []float64, cLast float64, o options) *Model {
	n := len(xs)
	c := make([]float64, n)
	b := make([]float64, n-1)
	d := make([]float64, n-1)
	c[n-1] = cLast
	for j := n - 2; j >= 0; j-- {
		c[j] = z[j] - mu[j]*c[j+1]
		b[j] = (ys[j+1]-ys[j])/h[j] - h[j]*(c[j+1]+2*c[j])/3
		d[j] = (c[j+1] - c[j]) / (3 * h[j])
	}

	knots := make([]float64, n)
	copy(knots, xs)
	a := make([]float64, n-1)
	copy(a, ys[:n-1])

	return &Model{
		knots:  knots,
		a:      a,
		b:      b,
		c:      c[:n-1:n-1],
		d:      d,
		linear: o.linear,
	}
}
