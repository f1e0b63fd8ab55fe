// SPDX-License-Identifier: MIT

package newton

import (
	"fmt"

	"github.com/katalvlaran/numcore/core"
)

const (
	opBuild = "Build"
	opEval  = "Model.Eval"
)

// Model is an immutable Newton interpolant: nodes x_0 … x_{n-1} and the
// divided differences f[x_0], f[x_0,x_1], … of the same length.
type Model struct {
	nodes []float64
	coef  []float64
}

// Build returns the Newton interpolant through (xs, ys).
//
// Implementation:
//   - Stage 1: validate lengths, emptiness, finiteness, distinctness.
//   - Stage 2: coef = copy(ys); for j = 1..n-1, for i = n-1 down to j:
//     coef[i] = (coef[i] - coef[i-1]) / (x[i] - x[i-j]).
//
// Errors:
//   - core.ErrSizeMismatch, core.ErrTooFewPoints, core.ErrNonFinite,
//     core.ErrDuplicateAbscissa.
func Build(xs, ys []float64) (*Model, error) {
	// Stage 1: validate
	if err := core.ValidateSameLen(xs, ys); err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("%s: %w", opBuild, core.ErrTooFewPoints)
	}
	if err := core.ValidateFinite(xs); err != nil {
		return nil, fmt.Errorf("%s: x: %w", opBuild, err)
	}
	if err := core.ValidateFinite(ys); err != nil {
		return nil, fmt.Errorf("%s: y: %w", opBuild, err)
	}
	if err := core.ValidateDistinct(xs); err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	// Stage 2: divided differences
	n := len(xs)
	nodes := make([]float64, n)
	copy(nodes, xs)
	coef := make([]float64, n)
	copy(coef, ys)
	var i, j int
	for j = 1; j < n; j++ {
		for i = n - 1; i >= j; i-- {
			coef[i] = (coef[i] - coef[i-1]) / (nodes[i] - nodes[i-j])
		}
	}
	if err := core.ValidateFinite(coef); err != nil {
		return nil, fmt.Errorf("%s: divided differences: %w", opBuild, err)
	}

	return &Model{nodes: nodes, coef: coef}, nil
}

// FromPoints is Build over a PointSet.
func FromPoints(ps core.PointSet) (*Model, error) { return Build(ps.Xs(), ps.Ys()) }

// Eval returns the interpolant at x by nested multiplication:
// r = coef[n-1]; for i = n-2..0: r = r·(x - x_i) + coef[i].
// Returns core.ErrNonFinite for NaN/±Inf x or an overflowing result.
func (m *Model) Eval(x float64) (float64, error) {
	if !core.IsFinite(x) {
		return 0, fmt.Errorf("%s: x=%v: %w", opEval, x, core.ErrNonFinite)
	}
	n := len(m.coef)
	r := m.coef[n-1]
	for i := n - 2; i >= 0; i-- {
		r = r*(x-m.nodes[i]) + m.coef[i]
	}
	if !core.IsFinite(r) {
		return 0, fmt.Errorf("%s: p(%g) overflows: %w", opEval, x, core.ErrNonFinite)
	}

	return r, nil
}

// Coeffs returns a copy of the divided differences.
func (m *Model) Coeffs() []float64 { return clone(m.coef) }

// Nodes returns a copy of the interpolation nodes, in input order.
func (m *Model) Nodes() []float64 { return clone(m.nodes) }

// Len returns the number of nodes.
func (m *Model) Len() int { return len(m.nodes) }

func clone(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)

	return out
}
