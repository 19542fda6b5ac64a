// Package group answers membership, order, factorization and sampling
// queries on finite permutation groups given only a generating set, in time
// polynomial in the degree of the action — never in the group order, which
// for the groups this module targets (e.g. multi-qubit Clifford groups) is
// combinatorially enormous.
//
// 🚀 How?
//
//	New builds a stabilizer chain (deterministic Schreier–Sims): a base of
//	points b₀, b₁, …, per-level strong generators, and for each level the
//	orbit of bᵢ with a transversal of coset representatives.  By the
//	orbit–stabilizer theorem the group order is the product of the orbit
//	sizes, and any candidate element can be "sifted" down the chain by
//	dividing out one transversal representative per level:
//	  • residue trivial   ⇒ member, and the consumed representatives spell
//	    out a word in the ORIGINAL generators (Factorize)
//	  • residue nontrivial ⇒ not a member — a normal negative result
//	    (ErrNotMember), never an escalated failure.
//
// ✨ Surface:
//   - Contains / Order / Factorize / RandomElement / Each on Group
//   - Coset: membership and bounded enumeration relative to a subgroup
//   - Named constructors: Symmetric, Alternating, Cyclic, Dihedral, Abelian
//   - WithOrder: a closed-form order override for specialized groups whose
//     exact order is known analytically (the chain remains the correctness
//     fallback and cross-check)
//
// Groups are value objects: the chain is built once in New and never
// mutated, so any number of goroutines may query one Group concurrently
// without locking.
//
// Orders are *big.Int throughout — the 3-qubit Clifford group already
// exceeds 9·10⁷ and growth is super-exponential.
package group
