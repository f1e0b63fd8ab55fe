// Package lsq fits least-squares polynomials to sample points.
//
// 🚀 What it does:
//
//	Given points (x_i, y_i) and a degree m, Fit returns the coefficients
//	c_0 … c_m minimising Σ (y_i - P(x_i))² with P(x) = Σ c_k·x^k.
//
// ✨ How:
//   - build the (m+1)×(m+1) normal equations from power sums
//     S_k = Σ x_i^k (k = 0..2m) and T_k = Σ x_i^k·y_i (k = 0..m)
//   - solve A·c = T with A_ij = S_{i+j} through linsolve.Solve
//
// ⚙️ Extras:
//   - FitCapped lowers the degree when the data has too few distinct abscissas
//   - Polynomial.Residuals and Summarize report fit quality
//
// The normal equations become ill-conditioned as the degree grows; keep
// degrees small (≤ 6 or so) or rescale x into [-1, 1] first.
package lsq
