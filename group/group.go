package group

import (
	"math/big"
	"math/rand"

	"github.com/katalvlaran/cycles/perm"
)

// Group is a finite permutation group given by an ordered generating set.
// Construction builds the stabilizer chain eagerly; afterwards the Group is
// immutable and all queries are read-only, so concurrent use needs no
// locking.
type Group struct {
	gens    []*perm.Perm
	degree  int
	c       *chain
	order   *big.Int        // chain order (orbit–stabilizer product)
	orderFn func() *big.Int // optional closed-form override
}

// Option configures Group construction.
type Option func(*Group)

// WithOrder installs a closed-form order function, bypassing the chain
// product in Order.  The chain is still built (membership and factorization
// need it) and remains the correctness cross-check for the formula.
func WithOrder(fn func() *big.Int) Option {
	return func(g *Group) { g.orderFn = fn }
}

// New builds the group generated by gens.  The generator order is
// significant: Factorize words index into it.  An empty or all-identity
// generator list yields the trivial group.
//
// Returns ErrNilPermutation if any generator is nil.
//
// Complexity: polynomial in the degree and generator count (Schreier–Sims);
// independent of the group order.
func New(gens []*perm.Perm, opts ...Option) (*Group, error) {
	g := &Group{gens: make([]*perm.Perm, len(gens))}
	for i, p := range gens {
		if p == nil {
			return nil, ErrNilPermutation
		}
		g.gens[i] = p
		if p.Degree() > g.degree {
			g.degree = p.Degree()
		}
	}

	elems := make([]element, 0, len(gens))
	for i, p := range g.gens {
		if p.IsIdentity() {
			continue
		}
		elems = append(elems, element{p: p, w: Word{{Gen: i}}})
	}
	g.c = newChain(elems)

	g.order = big.NewInt(1)
	for _, lv := range g.c.levels {
		g.order.Mul(g.order, big.NewInt(int64(len(lv.orbit))))
	}

	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generators returns a copy of the ordered generating set.
func (g *Group) Generators() []*perm.Perm {
	out := make([]*perm.Perm, len(g.gens))
	copy(out, g.gens)
	return out
}

// Degree returns the size of the domain the group acts on (1 + largest
// point moved by any generator).
func (g *Group) Degree() int { return g.degree }

// Order returns the exact group order: the closed-form override when one
// was installed, otherwise the product of the chain's orbit sizes.  The
// result is a fresh big.Int the caller may mutate.
func (g *Group) Order() *big.Int {
	if g.orderFn != nil {
		return g.orderFn()
	}
	return new(big.Int).Set(g.order)
}

// ChainOrder always returns the orbit-product order, ignoring any override.
// Specialized groups use it to cross-check their closed-form formula.
func (g *Group) ChainOrder() *big.Int { return new(big.Int).Set(g.order) }

// Contains reports whether x lies in the group, by sifting x down the
// stabilizer chain.  A false answer is a normal negative result.
//
// Returns ErrNilPermutation for nil x and ErrDegreeMismatch when x moves
// points outside the group domain.
//
// Complexity: O(chain length · degree).
func (g *Group) Contains(x *perm.Perm) (bool, error) {
	if err := g.checkDomain(x); err != nil {
		return false, err
	}
	h, _, _ := g.c.strip(element{p: x}, 0)
	return h.p.IsIdentity(), nil
}

// Factorize expresses a member x as a word in the original generators:
// evaluating the word left to right (inverses honored) reproduces x
// exactly.  This is the word problem behind circuit synthesis.
//
// Returns ErrNotMember when x is well-formed but outside the group — a
// negative result to branch on, distinct from the domain errors ErrNilPermutation
// and ErrDegreeMismatch.
//
// Complexity: O(chain length · degree) sifting plus the word length.
func (g *Group) Factorize(x *perm.Perm) (Word, error) {
	if err := g.checkDomain(x); err != nil {
		return nil, err
	}
	h, _, used := g.c.strip(element{p: x}, 0)
	if !h.p.IsIdentity() {
		return nil, ErrNotMember
	}
	// x equals the consumed transversal representatives composed
	// deepest-level first; concatenate their generator words accordingly.
	var w Word
	for i := len(used) - 1; i >= 0; i-- {
		w = append(w, used[i].w...)
	}
	return w.Simplify(), nil
}

// Evaluate composes a word over the group's generators into a permutation.
// Returns ErrLetterRange when a letter indexes outside the generator list.
//
// Complexity: O(len(w) · degree).
func (g *Group) Evaluate(w Word) (*perm.Perm, error) {
	out := perm.Identity()
	for _, l := range w {
		if l.Gen < 0 || l.Gen >= len(g.gens) {
			return nil, ErrLetterRange
		}
		p := g.gens[l.Gen]
		if l.Inverse {
			p = p.Inverse()
		}
		out = out.Then(p)
	}
	return out, nil
}

// RandomElement draws an exactly uniform element of the group: one uniform
// transversal representative per chain level, composed in factorization
// order.  The chain gives every element a unique such decomposition, so no
// enumeration is involved.  A nil rng uses the deterministic default stream.
//
// Complexity: O(chain length · degree).
func (g *Group) RandomElement(rng *rand.Rand) *perm.Perm {
	r := rng
	if r == nil {
		r = perm.NewRand(0)
	}
	out := perm.Identity()
	for i := len(g.c.levels) - 1; i >= 0; i-- {
		lv := g.c.levels[i]
		b := lv.orbit[r.Intn(len(lv.orbit))]
		out = out.Then(lv.transversal[b].p)
	}
	return out
}

// Each enumerates every group element exactly once, in a deterministic
// order, calling fn until it returns false or the group is exhausted.
// Intended for small groups and coset bookkeeping; the visit count equals
// the group order.
func (g *Group) Each(fn func(*perm.Perm) bool) {
	g.each(len(g.c.levels)-1, perm.Identity(), fn)
}

func (g *Group) each(i int, acc *perm.Perm, fn func(*perm.Perm) bool) bool {
	if i < 0 {
		return fn(acc)
	}
	lv := g.c.levels[i]
	for _, b := range lv.orbit {
		if !g.each(i-1, acc.Then(lv.transversal[b].p), fn) {
			return false
		}
	}
	return true
}

// Elements collects at most max elements from Each; max < 0 means all.
func (g *Group) Elements(max int) []*perm.Perm {
	var out []*perm.Perm
	g.Each(func(p *perm.Perm) bool {
		if max >= 0 && len(out) >= max {
			return false
		}
		out = append(out, p)
		return true
	})
	return out
}

func (g *Group) checkDomain(x *perm.Perm) error {
	if x == nil {
		return ErrNilPermutation
	}
	if x.Degree() > g.degree {
		return ErrDegreeMismatch
	}
	return nil
}
