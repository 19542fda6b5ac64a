// Package group: deterministic Schreier–Sims stabilizer-chain construction.
//
// The chain is a sequence of levels.  Level i holds a base point bᵢ, the
// strong generators fixing b₀..bᵢ₋₁, the orbit of bᵢ under those generators
// (in BFS discovery order, for determinism) and a transversal mapping each
// orbit point β to a representative u_β with u_β(bᵢ) = β.  Every chain
// element carries its expression as a word in the ORIGINAL generators, so
// sifting doubles as factorization.
package group

import "github.com/katalvlaran/cycles/perm"

// element pairs a permutation with a word spelling it in the group's
// original generators (perm.Then convention, left to right).
type element struct {
	p *perm.Perm
	w Word
}

func identityElement() element { return element{p: perm.Identity()} }

// then composes two elements: apply e first, then f.
func (e element) then(f element) element {
	w := make(Word, 0, len(e.w)+len(f.w))
	w = append(w, e.w...)
	w = append(w, f.w...)
	return element{p: e.p.Then(f.p), w: w}
}

func (e element) inverse() element {
	return element{p: e.p.Inverse(), w: e.w.Inverse()}
}

type level struct {
	point       int
	gens        []element
	orbit       []int // BFS discovery order; orbit[0] == point
	transversal map[int]element
}

// rebuild recomputes the orbit and transversal of the level's base point
// from its current generator list.  BFS with generators scanned in order
// keeps the result deterministic.
//
// Complexity: O(|orbit| · |gens| · degree).
func (l *level) rebuild() {
	l.orbit = []int{l.point}
	l.transversal = map[int]element{l.point: identityElement()}
	for qi := 0; qi < len(l.orbit); qi++ {
		g := l.orbit[qi]
		u := l.transversal[g]
		for _, s := range l.gens {
			d := s.p.Image(g)
			if _, ok := l.transversal[d]; !ok {
				l.transversal[d] = u.then(s)
				l.orbit = append(l.orbit, d)
			}
		}
	}
}

type chain struct {
	levels []*level
}

// newChain runs the incremental Schreier–Sims algorithm on the given
// generators (identity generators are ignored by the caller).
//
// Invariant established: at every level i, the group generated by the
// level-(i+1) generators equals the stabilizer of bᵢ in the group generated
// by the level-i generators.  Once that holds the chain answers membership
// and order exactly.
func newChain(gens []element) *chain {
	c := &chain{}

	// Choose base points so that every generator moves at least one.
	for _, g := range gens {
		moved := false
		for _, lv := range c.levels {
			if g.p.Image(lv.point) != lv.point {
				moved = true
				break
			}
		}
		if !moved {
			if s := g.p.Support(); len(s) > 0 {
				c.levels = append(c.levels, &level{point: s[0]})
			}
		}
	}

	// Distribute generators: level i receives the gens fixing b₀..bᵢ₋₁.
	for _, g := range gens {
		for _, lv := range c.levels {
			lv.gens = append(lv.gens, g)
			if g.p.Image(lv.point) != lv.point {
				break
			}
		}
	}
	for _, lv := range c.levels {
		lv.rebuild()
	}

	// Verify levels deepest-first; a new strong generator at level j sends
	// the scan back down to j until everything passes.
	for i := len(c.levels) - 1; i >= 0; {
		if j, added := c.closeLevel(i); added {
			i = j
			continue
		}
		i--
	}
	return c
}

// closeLevel tests every Schreier generator of level i against the deeper
// chain.  On discovering a residue it installs it as a strong generator at
// levels i+1..j (appending a fresh level when j is past the end) and
// reports (j, true); (0, false) means the level is complete.
func (c *chain) closeLevel(i int) (int, bool) {
	lv := c.levels[i]
	for _, b := range lv.orbit {
		ub := lv.transversal[b]
		for _, s := range lv.gens {
			ud := lv.transversal[s.p.Image(b)]
			sg := ub.then(s).then(ud.inverse()) // fixes b₀..bᵢ by construction
			if sg.p.IsIdentity() {
				continue
			}
			h, j, _ := c.strip(sg, i+1)
			if h.p.IsIdentity() {
				continue
			}
			if j == len(c.levels) {
				c.levels = append(c.levels, &level{point: h.p.Support()[0]})
			}
			for l := i + 1; l <= j; l++ {
				c.levels[l].gens = append(c.levels[l].gens, h)
				c.levels[l].rebuild()
			}
			return j, true
		}
	}
	return 0, false
}

// strip sifts e down the chain starting at level from: at each level it
// divides out the transversal representative of e's image of the base
// point.  It returns the residue, the level where sifting stopped (equal to
// len(levels) when it ran the full chain) and the representatives consumed,
// in consumption order.
//
// e is a member of the subgroup rooted at `from` exactly when the residue
// is the identity; in that case e equals the consumed representatives
// composed deepest-first.
func (c *chain) strip(e element, from int) (element, int, []element) {
	h := e
	var used []element
	for i := from; i < len(c.levels); i++ {
		lv := c.levels[i]
		u, ok := lv.transversal[h.p.Image(lv.point)]
		if !ok {
			return h, i, used
		}
		h = h.then(u.inverse())
		used = append(used, u)
	}
	return h, len(c.levels), used
}
