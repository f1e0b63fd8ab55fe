// SPDX-License-Identifier: MIT

package lagrange

import (
	"fmt"

	"github.com/katalvlaran/numcore/core"
)

const (
	opEval = "Eval"
	opNew  = "New"
)

// Eval returns the interpolating polynomial through (xs, ys) evaluated at x.
//
// Errors:
//   - core.ErrSizeMismatch if len(xs) != len(ys).
//   - core.ErrTooFewPoints if there are no nodes.
//   - core.ErrNonFinite if a node, an ordinate or x is NaN/±Inf, or the
//     result overflows.
//   - core.ErrDuplicateAbscissa if two nodes share an abscissa.
//
// Complexity: Time O(n²) plus O(n log n) validation, Space O(n).
func Eval(xs, ys []float64, x float64) (float64, error) {
	if err := validate(xs, ys); err != nil {
		return 0, fmt.Errorf("%s: %w", opEval, err)
	}
	if !core.IsFinite(x) {
		return 0, fmt.Errorf("%s: x=%v: %w", opEval, x, core.ErrNonFinite)
	}

	return checked(eval(xs, ys, x), x)
}

// Interpolator is a validated node set. It keeps copies of the nodes only;
// no basis weights are cached, so Eval costs O(n²) each time.
type Interpolator struct {
	xs, ys []float64
}

// New validates ps once and returns an Interpolator over it.
// Errors as for Eval.
func New(ps core.PointSet) (*Interpolator, error) {
	xs, ys := ps.Xs(), ps.Ys()
	if err := validate(xs, ys); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}

	return &Interpolator{xs: xs, ys: ys}, nil
}

// Eval evaluates the interpolant at x. Returns core.ErrNonFinite for NaN/±Inf x
// or an overflowing result.
func (p *Interpolator) Eval(x float64) (float64, error) {
	if !core.IsFinite(x) {
		return 0, fmt.Errorf("%s: x=%v: %w", opEval, x, core.ErrNonFinite)
	}

	return checked(eval(p.xs, p.ys, x), x)
}

// Len returns the number of nodes.
func (p *Interpolator) Len() int { return len(p.xs) }

func validate(xs, ys []float64) error {
	if err := core.ValidateSameLen(xs, ys); err != nil {
		return err
	}
	if len(xs) == 0 {
		return core.ErrTooFewPoints
	}
	if err := core.ValidateFinite(xs); err != nil {
		return err
	}
	if err := core.ValidateFinite(ys); err != nil {
		return err
	}

	return core.ValidateDistinct(xs)
}

func checked(v, x float64) (float64, error) {
	if !core.IsFinite(v) {
		return 0, fmt.Errorf("%s: p(%g) overflows: %w", opEval, x, core.ErrNonFinite)
	}

	return v, nil
}

// eval assumes validated input.
func eval(xs, ys []float64, x float64) float64 {
	var (
		i, j       int
		sum, basis float64
	)
	for i = range xs {
		basis = 1.0
		for j = range xs {
			if j != i {
				basis *= (x - xs[j]) / (xs[i] - xs[j])
			}
		}
		sum += ys[i] * basis
	}

	return sum
}
