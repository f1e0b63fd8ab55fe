// SPDX-License-Identifier: MIT

package lsq

import (
	"fmt"

	"github.com/katalvlaran/numcore/core"
	"github.com/katalvlaran/numcore/linsolve"
	"github.com/katalvlaran/numcore/matrix"
)

const (
	opFit       = "Fit"
	opFitCapped = "FitCapped"
)

// Fit returns the least-squares polynomial of the given degree through ps.
//
// Implementation:
//   - Stage 1: validate degree and point count.
//   - Stage 2: accumulate power sums S_k (k ≤ 2m) and T_k (k ≤ m) in one pass.
//   - Stage 3: assemble A_ij = S_{i+j}, b_i = T_i and solve with linsolve.
//
// Errors:
//   - core.ErrInvalidDegree if degree < 0.
//   - core.ErrSizeMismatch if ps has fewer than degree+1 points.
//   - core.ErrDuplicateAbscissa if fewer than degree+1 abscissas are distinct.
//   - core.ErrSingular if the normal equations are numerically singular.
//
// Complexity:
//   - Time O(n·m + m³), Space O(m²).
func Fit(ps core.PointSet, degree int) (Polynomial, error) {
	// Stage 1: validate
	if degree < 0 {
		return Polynomial{}, fmt.Errorf("%s: degree %d: %w", opFit, degree, core.ErrInvalidDegree)
	}
	// degree >= Len rather than Len < degree+1: degree+1 overflows at MaxInt
	if degree >= ps.Len() {
		return Polynomial{}, fmt.Errorf("%s: %d points for degree %d: %w", opFit, ps.Len(), degree, core.ErrSizeMismatch)
	}
	m1 := degree + 1
	if d := core.CountDistinct(ps.Xs()); d < m1 {
		return Polynomial{}, fmt.Errorf("%s: %d distinct abscissas for degree %d: %w", opFit, d, degree, core.ErrDuplicateAbscissa)
	}

	// Stage 2: power sums
	s, t := powerSums(ps, degree)

	// Stage 3: normal equations
	a, err := matrix.NewDense(m1, m1)
	if err != nil {
		return Polynomial{}, fmt.Errorf("%s: %w", opFit, err)
	}
	var i, j int
	for i = 0; i < m1; i++ {
		for j = 0; j < m1; j++ {
			if err = a.Set(i, j, s[i+j]); err != nil {
				return Polynomial{}, fmt.Errorf("%s: %w", opFit, err)
			}
		}
	}
	c, err := linsolve.Solve(a, t)
	if err != nil {
		return Polynomial{}, fmt.Errorf("%s: degree %d: %w", opFit, degree, err)
	}

	return Polynomial{coeffs: c}, nil
}

// FitCapped is Fit with the degree lowered to distinct(x)-1 when the data
// cannot support the requested one. A negative degree is still an error.
func FitCapped(ps core.PointSet, degree int) (Polynomial, error) {
	if degree < 0 {
		return Polynomial{}, fmt.Errorf("%s: degree %d: %w", opFitCapped, degree, core.ErrInvalidDegree)
	}
	d := core.CountDistinct(ps.Xs())
	if d == 0 {
		return Polynomial{}, fmt.Errorf("%s: %w", opFitCapped, core.ErrTooFewPoints)
	}
	if degree > d-1 {
		degree = d - 1
	}

	return Fit(ps, degree)
}

// powerSums returns S_0..S_2m and T_0..T_m over ps.
func powerSums(ps core.PointSet, m int) (s, t []float64) {
	s = make([]float64, 2*m+1)
	t = make([]float64, m+1)
	var (
		i, k int
		x, y float64
		pow  float64
	)
	for i = 0; i < ps.Len(); i++ {
		x, y = ps.X(i), ps.Y(i)
		pow = 1.0
		for k = 0; k <= 2*m; k++ {
			s[k] += pow
			if k <= m {
				t[k] += pow * y
			}
			pow *= x
		}
	}

	return s, t
}
