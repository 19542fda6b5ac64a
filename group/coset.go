package group

import (
	"math/big"

	"github.com/katalvlaran/cycles/perm"
)

// Coset is the right coset H·rep of a subgroup H: the elements h.Then(rep)
// for h in H.  It holds a non-owning reference to the subgroup and never
// materializes the element set; membership and size delegate to H, and
// enumeration is lazily bounded by |H|.
type Coset struct {
	sub *Group
	rep *perm.Perm
}

// NewCoset builds the coset sub·rep.  Returns ErrNilGroup / ErrNilPermutation
// on nil inputs.
func NewCoset(sub *Group, rep *perm.Perm) (*Coset, error) {
	if sub == nil {
		return nil, ErrNilGroup
	}
	if rep == nil {
		return nil, ErrNilPermutation
	}
	return &Coset{sub: sub, rep: rep}, nil
}

// Representative returns the coset representative.
func (c *Coset) Representative() *perm.Perm { return c.rep }

// Subgroup returns the underlying subgroup reference.
func (c *Coset) Subgroup() *Group { return c.sub }

// Contains reports whether x lies in the coset: x ∈ H·rep exactly when
// x.Then(rep⁻¹) ∈ H.  Domain errors propagate from the subgroup test.
func (c *Coset) Contains(x *perm.Perm) (bool, error) {
	if x == nil {
		return false, ErrNilPermutation
	}
	return c.sub.Contains(x.Then(c.rep.Inverse()))
}

// Size returns the number of coset elements, which equals the subgroup
// order.  Together with the parent group's order this yields the index
// |G| / |H|.
func (c *Coset) Size() *big.Int { return c.sub.Order() }

// Each enumerates the coset elements exactly once, translating each
// subgroup element by the representative, until fn returns false.
func (c *Coset) Each(fn func(*perm.Perm) bool) {
	c.sub.Each(func(h *perm.Perm) bool {
		return fn(h.Then(c.rep))
	})
}

// Elements collects at most max coset elements; max < 0 means all.
func (c *Coset) Elements(max int) []*perm.Perm {
	var out []*perm.Perm
	c.Each(func(p *perm.Perm) bool {
		if max >= 0 && len(out) >= max {
			return false
		}
		out = append(out, p)
		return true
	})
	return out
}
