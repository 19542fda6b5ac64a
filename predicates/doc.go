// Package predicates provides tolerance-based checks on complex matrices:
// commutativity, diagonality, Hermiticity, normality, (special)
// orthogonality, (special) unitarity and the CPTP channel condition.
//
// These are standalone boundary utilities with no shared state or
// algorithm with the group engine: each function takes one or more square
// matrices as [][]complex128 plus a Tolerance and returns a plain bool.
//
// ⚙️ Contract:
//   - never returns an error and never panics: a shape mismatch (non-square,
//     ragged rows, differing sizes) simply yields false
//   - comparisons are entrywise |a−b| ≤ Atol + Rtol·|b|
//   - a 0×0 matrix vacuously satisfies determinant-based special conditions
//     (the determinant of an empty matrix is 1), so IsSpecialOrthogonal and
//     IsSpecialUnitary hold for it
//
// Determinants are computed by LU decomposition with partial pivoting.
package predicates
