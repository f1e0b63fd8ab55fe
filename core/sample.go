// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"
)

// Evaluator is implemented by every model that can be queried at a real x:
// spline.Model directly, and the polynomial models through EvaluatorFunc.
type Evaluator interface {
	Eval(x float64) (float64, error)
}

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc func(x float64) (float64, error)

// Eval calls f(x).
func (f EvaluatorFunc) Eval(x float64) (float64, error) { return f(x) }

// Total adapts an infallible evaluation (e.g. a polynomial) to Evaluator.
func Total(f func(x float64) float64) Evaluator {
	return EvaluatorFunc(func(x float64) (float64, error) { return f(x), nil })
}

// EvalAll evaluates ev at every query point, in order.
// The first failure aborts the sweep and is returned wrapped with the
// offending query value.
// Complexity: len(xs) calls to ev.Eval.
func EvalAll(ev Evaluator, xs []float64) ([]float64, error) {
	out := make([]float64, len(xs))
	var err error
	for i, x := range xs {
		if out[i], err = ev.Eval(x); err != nil {
			return nil, fmt.Errorf("EvalAll: x=%g: %w", x, err)
		}
	}

	return out, nil
}

// Linspace returns n evenly spaced samples over [lo, hi]; both endpoints are
// included exactly. n == 1 yields [lo].
//
// Errors:
//   - ErrTooFewPoints if n < 1.
//   - ErrNonFinite if lo or hi is NaN or ±Inf.
//
// Complexity: Time O(n), Space O(n).
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("Linspace: n=%d: %w", n, ErrTooFewPoints)
	}
	if err := ValidateFinite([]float64{lo, hi}); err != nil {
		return nil, fmt.Errorf("Linspace: %w", err)
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out, nil
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi // pin the endpoint against round-off

	return out, nil
}

// ChordLength parametrizes the polyline (xs[i], ys[i]) by cumulative
// Euclidean distance, normalized so t[0] = 0 and t[n-1] = 1. When every point
// coincides the total length is zero and the result is Linspace(0, 1, n).
// Zero-length segments repeat the previous t, so t is non-decreasing only.
//
// Errors:
//   - ErrSizeMismatch if len(xs) != len(ys).
//   - ErrTooFewPoints if there are no points.
//   - ErrNonFinite if a coordinate is NaN/±Inf or the length overflows.
//
// Complexity: Time O(n), Space O(n).
func ChordLength(xs, ys []float64) ([]float64, error) {
	if err := ValidateSameLen(xs, ys); err != nil {
		return nil, fmt.Errorf("ChordLength: %w", err)
	}
	n := len(xs)
	if n == 0 {
		return nil, fmt.Errorf("ChordLength: %w", ErrTooFewPoints)
	}
	if err := ValidateFinite(xs); err != nil {
		return nil, fmt.Errorf("ChordLength: x: %w", err)
	}
	if err := ValidateFinite(ys); err != nil {
		return nil, fmt.Errorf("ChordLength: y: %w", err)
	}

	t := make([]float64, n)
	for i := 1; i < n; i++ {
		t[i] = t[i-1] + math.Hypot(xs[i]-xs[i-1], ys[i]-ys[i-1])
	}
	total := t[n-1]
	if !IsFinite(total) {
		return nil, fmt.Errorf("ChordLength: total length: %w", ErrNonFinite)
	}
	if total == 0 {
		return Linspace(0, 1, n)
	}
	for i := range t {
		t[i] /= total
	}
	t[n-1] = 1

	return t, nil
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
