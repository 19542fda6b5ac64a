// Package cycles is a computational group-theory toolkit for quantum
// stabilizer formalism: it represents astronomically large finite groups —
// the N-qubit Clifford group above all — compactly, as permutation groups
// acting on a small faithful domain, and answers membership, order and
// circuit-synthesis queries without ever enumerating a group.
//
// 🚀 What is cycles?
//
//	A pure combinatorial engine built from four layers:
//	  • perm      — canonical cycle permutations: compose, invert, order,
//	                apply, match (FindPermutation), uniform random
//	  • group     — stabilizer-chain (Schreier–Sims) engine: membership,
//	                exact order, factorization into generator words, uniform
//	                sampling, cosets, named group families
//	  • clifford  — the Clifford group as a permutation action on signed
//	                Pauli labels; gate ↔ permutation maps; circuit synthesis
//	  • predicates — standalone tolerance checks on complex matrices
//	                (unitary, Hermitian, CPTP, …)
//
// ✨ Why choose cycles?
//
//   - Scales with group RANK, not group ORDER — the 3-qubit Clifford group
//     has order 92 897 280 yet lives on just 126 points
//   - Exact everywhere: big.Int orders, closed-form overrides cross-checked
//     against the chain
//   - Deterministic: explicit seeded RNG policy, reproducible construction
//   - Immutable groups — concurrent read-only queries need no locking
//
// Quick taste:
//
//	g, _ := clifford.New(2, nil)           // 2-qubit Clifford group, 11520 elements
//	target := g.RandomElement(nil)         // some Clifford operation
//	gates, _ := g.Synthesize(target)       // …as an explicit gate sequence
//
// A small CLI lives in cmd/cycles: `cycles order`, `cycles synth`.
//
//	go get github.com/katalvlaran/cycles
package cycles
