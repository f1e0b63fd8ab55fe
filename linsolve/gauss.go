// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numcore/core"
	"github.com/katalvlaran/numcore/matrix"
)

// Operation tags for error wrapping.
const (
	opSolve     = "Solve"
	opSolveRows = "SolveRows"
	opResidual  = "Residual"
)

// Solve returns x with A·x = b using Gaussian elimination with partial pivoting.
// Implementation:
//   - Stage 1: validate A (non-nil, square, finite) and b (len n, finite).
//   - Stage 2: copy [A | b] into a fresh n×(n+1) Dense.
//   - Stage 3: for each column k, swap the largest |M[i][k]| (i ≥ k) into row k,
//     then eliminate rows below over columns k..n.
//   - Stage 4: back-substitute from the last row upward.
//
// Behavior highlights:
//   - A and b are never mutated; the augmented buffer is owned by this call.
//   - Ties in pivot selection keep the first (lowest index) row.
//   - With the default tolerance only an exact zero pivot is singular. A
//     numerically rank-deficient A such as [[1,2,3],[4,5,6],[7,8,9]] leaves a
//     round-off pivot near 1e-16 and is solved without error. Pass
//     WithPivotTolerance (e.g. 1e-12 scaled to A) to reject such systems.
//
// Errors:
//   - matrix.ErrNilMatrix if a is nil.
//   - core.ErrSizeMismatch if A is not square or len(b) != n.
//   - core.ErrNonFinite if A or b holds NaN/±Inf, or the solution overflows.
//   - core.ErrSingular if a pivot is zero (|p| ≤ tolerance) after row selection.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve(a matrix.Matrix, b []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts)

	// Stage 1: validate
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	n := a.Rows()
	if len(b) != n {
		return nil, fmt.Errorf("%s: len(b)=%d for %dx%d system: %w", opSolve, len(b), n, n, core.ErrSizeMismatch)
	}
	if err := matrix.ValidateFinite(a); err != nil {
		return nil, fmt.Errorf("%s: A: %w", opSolve, err)
	}
	if err := matrix.ValidateFiniteVec(b); err != nil {
		return nil, fmt.Errorf("%s: b: %w", opSolve, err)
	}

	// Stage 2: augmented working copy
	aug, err := augment(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	rows := make([][]float64, n) // live row views; position i always shows row i
	for i := 0; i < n; i++ {
		if rows[i], err = aug.RowView(i); err != nil {
			return nil, fmt.Errorf("%s: %w", opSolve, err)
		}
	}

	// Stage 3: forward elimination
	if err = eliminate(aug, rows, o.pivotTol); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	// Stage 4: back substitution
	x := backSubstitute(rows)
	if err = matrix.ValidateFiniteVec(x); err != nil {
		return nil, fmt.Errorf("%s: solution: %w", opSolve, err)
	}

	return x, nil
}

// SolveRows is Solve over a row-slice matrix. Ragged rows report
// core.ErrSizeMismatch; an empty matrix reports matrix.ErrInvalidDimensions.
func SolveRows(a [][]float64, b []float64, opts ...Option) ([]float64, error) {
	m, err := matrix.NewDenseFrom(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveRows, err)
	}

	return Solve(m, b, opts...)
}

// Residual returns A·x - b. Useful to verify a Solution.
// Errors: matrix.ErrNilMatrix, core.ErrSizeMismatch.
// Complexity: O(r*c).
func Residual(a matrix.Matrix, x, b []float64) ([]float64, error) {
	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opResidual, err)
	}
	if len(b) != len(ax) {
		return nil, fmt.Errorf("%s: len(b)=%d want %d: %w", opResidual, len(b), len(ax), core.ErrSizeMismatch)
	}
	for i := range ax {
		ax[i] -= b[i]
	}

	return ax, nil
}

// augment copies A and b into an n×(n+1) Dense [A | b].
func augment(a matrix.Matrix, b []float64) (*matrix.Dense, error) {
	n := a.Rows()
	aug, err := matrix.NewDense(n, n+1)
	if err != nil {
		return nil, err
	}
	var (
		i, j     int
		v        float64
		row, src []float64
	)
	dense, fast := a.(*matrix.Dense) // fast path: copy whole rows from flat storage
	for i = 0; i < n; i++ {
		if row, err = aug.RowView(i); err != nil {
			return nil, err
		}
		if fast {
			if src, err = dense.RowView(i); err != nil {
				return nil, err
			}
			copy(row[:n], src)
		} else {
			for j = 0; j < n; j++ {
				if v, err = a.At(i, j); err != nil {
					return nil, err
				}
				row[j] = v
			}
		}
		row[n] = b[i]
	}

	return aug, nil
}

// eliminate reduces aug to upper-triangular form in place. rows holds the
// live views of aug's rows, so a SwapRows is immediately visible through them.
func eliminate(aug *matrix.Dense, rows [][]float64, tol float64) error {
	n := len(rows)
	var (
		i, j, k, maxRow int
		maxAbs, factor  float64
		pivotRow, row   []float64
	)
	for k = 0; k < n; k++ {
		// select the largest |M[i][k]| for i ≥ k
		maxRow, maxAbs = k, math.Abs(rows[k][k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(rows[i][k]); v > maxAbs {
				maxRow, maxAbs = i, v
			}
		}
		if err := aug.SwapRows(k, maxRow); err != nil {
			return err
		}

		if maxAbs <= tol {
			return fmt.Errorf("zero pivot in column %d: %w", k, core.ErrSingular)
		}

		pivotRow = rows[k]
		for i = k + 1; i < n; i++ {
			row = rows[i]
			factor = row[k] / pivotRow[k]
			if factor == 0 {
				continue
			}
			for j = k; j <= n; j++ {
				row[j] -= factor * pivotRow[j]
			}
		}
	}

	return nil
}

// backSubstitute solves the upper-triangular system held in rows.
func backSubstitute(rows [][]float64) []float64 {
	n := len(rows)
	x := make([]float64, n)
	var (
		i, j int
		sum  float64
	)
	for i = n - 1; i >= 0; i-- {
		sum = rows[i][n]
		for j = i + 1; j < n; j++ {
			sum -= rows[i][j] * x[j]
		}
		x[i] = sum / rows[i][i]
	}

	return x
}
