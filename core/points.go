// SPDX-License-Identifier: MIT

package core

import "fmt"

// PointSet is an ordered, immutable sequence of (x, y) samples.
//
// The zero value is an empty set. Construct with NewPointSet or FromPairs;
// both copy the input so later changes to the caller's slices are not seen.
type PointSet struct {
	xs []float64 // abscissas, len == len(ys)
	ys []float64 // ordinates
}

// NewPointSet builds a PointSet from parallel abscissa/ordinate slices.
// Implementation:
//   - Stage 1: ValidateSameLen, ValidateFinite on both slices.
//   - Stage 2: copy both slices.
//
// Errors:
//   - ErrSizeMismatch if len(xs) != len(ys).
//   - ErrNonFinite if any value is NaN or ±Inf.
//
// Complexity:
//   - Time O(n), Space O(n).
//
// Notes:
//   - Distinctness and ordering are algorithm-specific and checked by the
//     builders, not here.
func NewPointSet(xs, ys []float64) (PointSet, error) {
	if err := ValidateSameLen(xs, ys); err != nil {
		return PointSet{}, fmt.Errorf("NewPointSet: %w", err)
	}
	if err := ValidateFinite(xs); err != nil {
		return PointSet{}, fmt.Errorf("NewPointSet: x: %w", err)
	}
	if err := ValidateFinite(ys); err != nil {
		return PointSet{}, fmt.Errorf("NewPointSet: y: %w", err)
	}

	return PointSet{xs: cloneFloats(xs), ys: cloneFloats(ys)}, nil
}

// FromPairs builds a PointSet from (x, y) pairs.
func FromPairs(pairs [][2]float64) (PointSet, error) {
	xs := make([]float64, len(pairs))
	ys := make([]float64, len(pairs))
	for i, p := range pairs {
		xs[i], ys[i] = p[0], p[1]
	}

	return NewPointSet(xs, ys)
}

// Len returns the number of samples.
func (p PointSet) Len() int { return len(p.xs) }

// X returns the i-th abscissa. It panics if i is out of range, like a slice index.
func (p PointSet) X(i int) float64 { return p.xs[i] }

// Y returns the i-th ordinate. It panics if i is out of range, like a slice index.
func (p PointSet) Y(i int) float64 { return p.ys[i] }

// Xs returns a copy of the abscissas.
func (p PointSet) Xs() []float64 { return cloneFloats(p.xs) }

// Ys returns a copy of the ordinates.
func (p PointSet) Ys() []float64 { return cloneFloats(p.ys) }

// Bounds returns the smallest and largest abscissa.
// Returns ErrTooFewPoints on an empty set.
func (p PointSet) Bounds() (lo, hi float64, err error) {
	if len(p.xs) == 0 {
		return 0, 0, fmt.Errorf("Bounds: %w", ErrTooFewPoints)
	}
	lo, hi = p.xs[0], p.xs[0]
	for _, x := range p.xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}

	return lo, hi, nil
}

// cloneFloats returns an independent copy of s (nil stays nil).
func cloneFloats(s []float64) []float64 {
	if s == nil {
		return nil
	}
	out := make([]float64, len(s))
	copy(out, s)

	return out
}
