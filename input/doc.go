// Package input turns user-supplied text and decoded config values into
// validated float slices for the numeric packages.
//
//   - ParseList reads "1,5 2.25; 3" style lists (a comma between digits is a
//     decimal separator).
//   - Floats coerces decoded YAML/JSON values (ints, floats, numeric strings).
//   - Dedup sorts samples by x and drops repeated abscissas.
//
// Nothing here touches stdin or files; callers own the I/O.
package input
