// SPDX-License-Identifier: MIT
// Package: core
//
// Purpose:
//   - One canonical place for the abscissa checks every builder needs.
//   - Return wrapped sentinels carrying the offending value, so a caller can
//     report which input triggered the failure.
//
// Note:
//   - Builders call these in a fixed order: SameLen → Finite → Distinct/Increasing.

package core

import (
	"fmt"
	"math"
	"sort"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameLen ensures xs and ys have equal lengths.
// Complexity: O(1).
func ValidateSameLen(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return validatorErrorf(fmt.Sprintf("ValidateSameLen: len(x)=%d len(y)=%d", len(xs), len(ys)), ErrSizeMismatch)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf values.
// Complexity: O(n).
func ValidateFinite(vs []float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite: value %v", v), ErrNonFinite)
		}
	}

	return nil
}

// ValidateDistinct ensures all abscissas are pairwise distinct.
//
// Implementation:
//   - Stage 1: sort a copy of xs.
//   - Stage 2: scan neighbours for equality.
//
// Errors:
//   - ErrDuplicateAbscissa naming the repeated value.
//
// Complexity:
//   - Time O(n log n), Space O(n). The input is never reordered.
func ValidateDistinct(xs []float64) error {
	if len(xs) < 2 {
		return nil
	}
	sorted := cloneFloats(xs)
	sort.Float64s(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return validatorErrorf(fmt.Sprintf("ValidateDistinct: x=%g", sorted[i]), ErrDuplicateAbscissa)
		}
	}

	return nil
}

// CountDistinct returns the number of distinct values in xs.
// Complexity: O(n log n).
func CountDistinct(xs []float64) int {
	if len(xs) == 0 {
		return 0
	}
	sorted := cloneFloats(xs)
	sort.Float64s(sorted)
	count := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1] {
			count++
		}
	}

	return count
}

// ValidateIncreasing ensures xs is strictly increasing with every gap
// x[i+1]-x[i] > minSpacing (minSpacing ≥ 0).
//
// Errors:
//   - ErrDuplicateAbscissa if two neighbours are equal or closer than minSpacing.
//   - ErrNotIncreasing if a neighbour pair is out of order.
//
// Complexity: O(n).
func ValidateIncreasing(xs []float64, minSpacing float64) error {
	var h float64
	for i := 1; i < len(xs); i++ {
		h = xs[i] - xs[i-1]
		switch {
		case h == 0:
			return validatorErrorf(fmt.Sprintf("ValidateIncreasing: x=%g", xs[i]), ErrDuplicateAbscissa)
		case h < 0:
			return validatorErrorf(fmt.Sprintf("ValidateIncreasing: %g after %g", xs[i], xs[i-1]), ErrNotIncreasing)
		case h <= minSpacing:
			return validatorErrorf(fmt.Sprintf("ValidateIncreasing: %g and %g closer than %g", xs[i-1], xs[i], minSpacing), ErrDuplicateAbscissa)
		}
	}

	return nil
}
