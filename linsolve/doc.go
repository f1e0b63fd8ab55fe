// Package linsolve solves dense square linear systems A·x = b by Gaussian
// elimination with partial pivoting.
//
// ✨ Key features:
//   - partial pivoting: the largest-magnitude candidate in each column is
//     swapped into the pivot position (first such row on ties)
//   - strict validation: nil/shape/length/NaN-Inf checks before any work
//   - no caller-visible mutation: elimination runs on a call-local augmented
//     copy [A | b]; nothing is cached or shared between calls
//   - singular systems fail with core.ErrSingular; the matrix is never perturbed
//
// ⚙️ Usage:
//
//	x, err := linsolve.SolveRows([][]float64{{2, 1}, {1, 3}}, []float64{3, 5})
//	// x ≈ [0.8 1.4]
//
// Performance:
//
//   - Time:   O(n³)
//   - Memory: O(n²) for the augmented copy
package linsolve
