// Package matrix provides the dense storage used by the numcore solvers.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface over two-dimensional float64 arrays with
//     bounds-checked At/Set and deep Clone.
//   - Dense, a row-major implementation backed by one flat slice.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateVecLen,
//     ValidateFinite) shared by every kernel so guard logic stays uniform.
//   - MatVec for residual checks such as A·x - b.
//
// Dense matrices are small working buffers here: linsolve allocates one
// augmented copy per call and never shares it.
//
// See the examples in this package and linsolve for usage patterns.
package matrix
