// Package perm implements canonical cycle permutations on finite labeled
// point sets, the building block for the group engine and the Clifford
// group front end.
//
// 🚀 What is a Perm?
//
//	A bijection on the points 0..n-1, stored in a single canonical form so
//	that two independently constructed but semantically identical
//	permutations compare equal and share one hash key.  Fixed points are
//	implicit: a Perm only remembers points it actually moves.
//
// ✨ Key features:
//   - canonical disjoint-cycle decomposition (min element first, cycles
//     ordered by minimum) — structural equality and map keying for free
//   - composition, inversion, element order (lcm of cycle lengths — exact,
//     no search), application to arbitrary sequences
//   - FindPermutation: recover the unique (up to duplicates) permutation
//     mapping one ordering of a sequence onto another
//   - uniform random permutations with an explicit, deterministic RNG policy
//
// ⚙️ Composition convention:
//
//	a.Then(b) applies a first, then b.  This single convention is used
//	everywhere — inversion, sifting, factorization — so that a generator
//	word [g1, g2, g3] always means "apply g1, then g2, then g3".
//
// Errors are package sentinels (ErrNotRearrangement, ErrDegreeMismatch, …)
// and are matched with errors.Is; see types.go.
//
// All Perm values are immutable after construction: every operation returns
// a fresh Perm, so sharing them across goroutines is safe.
package perm
