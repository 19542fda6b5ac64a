// Package clifford represents the N-qubit Clifford group as a permutation
// group acting on encoded stabilizer labels, and solves circuit synthesis
// as a factorization query against that group.
//
// 🚀 Why permutations?
//
//	The Clifford group's order grows super-exponentially (24, 11520,
//	92897280, …, OEIS A003956) — far beyond anything enumerable.  But every
//	Clifford operation simply relabels the finite set of signed non-identity
//	Pauli strings, a universe of only 2·(4^N−1) labels.  That action is
//	faithful up to global phase, so the whole group fits in a stabilizer
//	chain over a tiny domain and membership, order, sampling and
//	factorization all run in time polynomial in the DEGREE, never the order.
//
// ⚙️ Pipeline:
//  1. Universe(n) enumerates the stabilizer labels in a fixed order.
//  2. For each elementary gate instance (H i, S i, CZ edge from the
//     connectivity graph; default a linear chain) the CHP update rule is
//     applied to every label and perm.FindPermutation recovers the induced
//     permutation.
//  3. The permutations become the generators of a group.Group; gate ↔
//     permutation maps support turning factorization words back into gate
//     sequences (Synthesize).
//
// Order() uses the closed-form product formula Π_{j=1..n} (2^{2j}−1)·2^{2j+1}
// rather than the chain product; the two must agree and tests compare them
// for small n.
//
// Label layout (bits, least significant first): bit 0 reserved for an i
// phase, bit 1 the minus sign (labels come in ± pairs n and n|2); qubit k
// occupies bits 2k+2 (x) and 2k+3 (z), with I=(0,0), X=(1,0), Y=(1,1),
// Z=(0,1).
package clifford
