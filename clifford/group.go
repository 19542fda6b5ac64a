package clifford

import (
	"math/big"
	"math/rand"

	"github.com/katalvlaran/cycles/group"
	"github.com/katalvlaran/cycles/perm"
)

// CliffordOrder returns the exact order of the n-qubit Clifford group,
//
//	Π_{j=1..n} (2^{2j} − 1) · 2^{2j+1},
//
// OEIS A003956: 24, 11520, 92897280, …  The value overflows uint64 from
// n = 4 on, hence big.Int.
//
// Complexity: O(n) big-int multiplications.
func CliffordOrder(n int) *big.Int {
	order := big.NewInt(1)
	for j := 1; j <= n; j++ {
		f := new(big.Int).Lsh(big.NewInt(1), uint(2*j))
		f.Sub(f, big.NewInt(1))
		f.Lsh(f, uint(2*j+1))
		order.Mul(order, f)
	}
	return order
}

// Generator pairs a gate descriptor with the permutation it induces on the
// stabilizer-label universe.
type Generator struct {
	Gate Gate
	Perm *perm.Perm
}

// linearChain is the default connectivity: qubit i coupled to i+1.
func linearChain(n int) [][2]int {
	edges := make([][2]int, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	return edges
}

// Generators derives the Clifford generator set for n qubits over the given
// connectivity graph (nil means the linear chain): H and S on every qubit,
// CZ on every graph edge.  Each gate's permutation is recovered by applying
// its CHP rule to the whole universe and matching the result against the
// original ordering.
//
// Returns ErrBadQubitCount for n < 1 and ErrQubitRange when an edge
// references a qubit outside [0, n).
//
// Complexity: O(gates · n · 4^n).
func Generators(n int, graph [][2]int) ([]Generator, error) {
	if n < 1 {
		return nil, ErrBadQubitCount
	}
	if graph == nil {
		graph = linearChain(n)
	}
	for _, e := range graph {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, ErrQubitRange
		}
	}

	universe, err := Universe(n)
	if err != nil {
		return nil, err
	}
	after := make([]int, len(universe))
	derive := func(gate Gate, rule func(int) int) (Generator, error) {
		for i, label := range universe {
			after[i] = rule(label)
		}
		p, err := perm.FindPermutation(universe, after)
		if err != nil {
			return Generator{}, err
		}
		return Generator{Gate: gate, Perm: p}, nil
	}

	gens := make([]Generator, 0, 2*n+len(graph))
	for i := 0; i < n; i++ {
		q := i
		h, err := derive(Hadamard(q), func(label int) int { return H(label, q) })
		if err != nil {
			return nil, err
		}
		s, err := derive(PhaseGate(q), func(label int) int { return P(label, q) })
		if err != nil {
			return nil, err
		}
		gens = append(gens, h, s)
	}
	for _, e := range graph {
		a, b := e[0], e[1]
		cz, err := derive(ControlledZ(a, b), func(label int) int { return CZ(label, a, b) })
		if err != nil {
			return nil, err
		}
		gens = append(gens, cz)
	}
	return gens, nil
}

// Group is the n-qubit Clifford group in its permutation representation:
// a group.Group engine built from the derived generators, plus gate ↔
// permutation maps for circuit synthesis.  Built once, immutable, safe for
// concurrent queries.
//
// Order() uses the closed-form formula; the engine's chain-computed order
// is reachable through Engine() and must agree (compared in tests).
type Group struct {
	n      int
	engine *group.Group
	gens   []Generator
	permOf map[Gate]*perm.Perm
	gateOf map[string]Gate // canonical perm key → gate
}

// New builds the Clifford group for n qubits over the connectivity graph
// (nil = linear chain).  Errors are those of Generators.
//
// When two descriptors induce the same permutation the reverse lookup keeps
// the last-inserted one; see GateFor.
func New(n int, graph [][2]int) (*Group, error) {
	gens, err := Generators(n, graph)
	if err != nil {
		return nil, err
	}
	ps := make([]*perm.Perm, len(gens))
	permOf := make(map[Gate]*perm.Perm, len(gens))
	gateOf := make(map[string]Gate, len(gens))
	for i, g := range gens {
		ps[i] = g.Perm
		permOf[g.Gate] = g.Perm
		gateOf[g.Perm.Key()] = g.Gate
	}
	engine, err := group.New(ps)
	if err != nil {
		return nil, err
	}
	return &Group{n: n, engine: engine, gens: gens, permOf: permOf, gateOf: gateOf}, nil
}

// N returns the qubit count.
func (g *Group) N() int { return g.n }

// Gates returns the ordered generator list (gate + induced permutation).
func (g *Group) Gates() []Generator {
	out := make([]Generator, len(g.gens))
	copy(out, g.gens)
	return out
}

// Engine exposes the underlying permutation-group engine (stabilizer-chain
// order, cosets, enumeration).
func (g *Group) Engine() *group.Group { return g.engine }

// Permutation returns the permutation induced by the given gate descriptor.
func (g *Group) Permutation(gate Gate) (*perm.Perm, bool) {
	p, ok := g.permOf[gate]
	return p, ok
}

// GateMap returns a copy of the gate → permutation table.
func (g *Group) GateMap() map[Gate]*perm.Perm {
	out := make(map[Gate]*perm.Perm, len(g.permOf))
	for gate, p := range g.permOf {
		out[gate] = p
	}
	return out
}

// GateFor is the reverse lookup: the descriptor of the gate inducing p.
// When several descriptors induce the same permutation, the last one added
// wins (descriptor order: H/S per qubit, then CZ per edge).
func (g *Group) GateFor(p *perm.Perm) (Gate, bool) {
	gate, ok := g.gateOf[p.Key()]
	return gate, ok
}

// Order returns the exact Clifford group order via the closed-form formula,
// bypassing the stabilizer chain.
func (g *Group) Order() *big.Int { return CliffordOrder(g.n) }

// Contains reports whether p is a Clifford operation on this topology
// (delegates to the engine's chain membership test).
func (g *Group) Contains(p *perm.Perm) (bool, error) { return g.engine.Contains(p) }

// RandomElement draws a uniformly random Clifford operation.  A nil rng
// uses the deterministic default stream.
func (g *Group) RandomElement(rng *rand.Rand) *perm.Perm { return g.engine.RandomElement(rng) }

// Synthesize decomposes a target Clifford permutation into an ordered gate
// sequence: the composition of the steps (left to right, inverses honored)
// reproduces the target exactly.  Returns group.ErrNotMember when the
// target is not a Clifford operation on this topology — a negative result,
// not a malformed input.
//
// Complexity: sifting is polynomial in the universe size; the returned word
// length is bounded by the chain's transversal words.
func (g *Group) Synthesize(target *perm.Perm) ([]Step, error) {
	w, err := g.engine.Factorize(target)
	if err != nil {
		return nil, err
	}
	steps := make([]Step, len(w))
	for i, l := range w {
		steps[i] = Step{Gate: g.gens[l.Gen].Gate, Inverse: l.Inverse}
	}
	return steps, nil
}

// Evaluate composes a gate sequence back into its permutation.  Returns
// ErrUnknownGate when a step names a gate outside this group's topology.
func (g *Group) Evaluate(steps []Step) (*perm.Perm, error) {
	out := perm.Identity()
	for _, s := range steps {
		p, ok := g.permOf[s.Gate]
		if !ok {
			return nil, ErrUnknownGate
		}
		if s.Inverse {
			p = p.Inverse()
		}
		out = out.Then(p)
	}
	return out, nil
}
