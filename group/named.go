// Package group: canonical generator sets for the classic named families.
//
// Each constructor supplies generators to New together with a closed-form
// order override (the same composition-plus-override pattern the Clifford
// builder uses); the chain order must agree and is compared in tests.
package group

import (
	"math/big"

	"github.com/katalvlaran/cycles/perm"
)

// Symmetric returns S_n acting on 0..n-1, generated by the n-cycle
// (0 1 … n-1) and the transposition (0 1).  Order n!.
// Returns ErrBadDegree for n < 1.
func Symmetric(n int) (*Group, error) {
	if n < 1 {
		return nil, ErrBadDegree
	}
	var gens []*perm.Perm
	if n >= 2 {
		rot, err := perm.FromCycles([][]int{seq(0, n)})
		if err != nil {
			return nil, err
		}
		swap, err := perm.FromCycles([][]int{{0, 1}})
		if err != nil {
			return nil, err
		}
		gens = []*perm.Perm{rot, swap}
	}
	return New(gens, WithOrder(func() *big.Int {
		return factorial(n)
	}))
}

// Alternating returns A_n, the even permutations of 0..n-1, generated by
// (0 1 2) together with (0 1 … n-1) for odd n or (1 2 … n-1) for even n.
// A_1 and A_2 are trivial.  Order n!/2 for n ≥ 2.
// Returns ErrBadDegree for n < 1.
func Alternating(n int) (*Group, error) {
	if n < 1 {
		return nil, ErrBadDegree
	}
	var gens []*perm.Perm
	if n >= 3 {
		three, err := perm.FromCycles([][]int{{0, 1, 2}})
		if err != nil {
			return nil, err
		}
		var long *perm.Perm
		if n%2 == 1 {
			long, err = perm.FromCycles([][]int{seq(0, n)})
		} else {
			long, err = perm.FromCycles([][]int{seq(1, n)})
		}
		if err != nil {
			return nil, err
		}
		gens = []*perm.Perm{three, long}
	}
	return New(gens, WithOrder(func() *big.Int {
		if n < 3 {
			return big.NewInt(1)
		}
		return new(big.Int).Div(factorial(n), big.NewInt(2))
	}))
}

// Cyclic returns C_n generated by the single n-cycle (0 1 … n-1).  Order n.
// Returns ErrBadDegree for n < 1.
func Cyclic(n int) (*Group, error) {
	if n < 1 {
		return nil, ErrBadDegree
	}
	var gens []*perm.Perm
	if n >= 2 {
		rot, err := perm.FromCycles([][]int{seq(0, n)})
		if err != nil {
			return nil, err
		}
		gens = []*perm.Perm{rot}
	}
	return New(gens, WithOrder(func() *big.Int {
		return big.NewInt(int64(n))
	}))
}

// Dihedral returns D_n, the symmetries of a regular n-gon on vertices
// 0..n-1: rotation (0 1 … n-1) plus the reflection i ↦ (n-i) mod n.
// Order 2n.  D_1 is C_2 and D_2 the Klein four-group, per the usual
// small-degree conventions.
// Returns ErrBadDegree for n < 1.
func Dihedral(n int) (*Group, error) {
	if n < 1 {
		return nil, ErrBadDegree
	}
	var gens []*perm.Perm
	switch n {
	case 1:
		swap, err := perm.FromCycles([][]int{{0, 1}})
		if err != nil {
			return nil, err
		}
		gens = []*perm.Perm{swap}
	case 2:
		a, err := perm.FromCycles([][]int{{0, 1}})
		if err != nil {
			return nil, err
		}
		b, err := perm.FromCycles([][]int{{2, 3}})
		if err != nil {
			return nil, err
		}
		gens = []*perm.Perm{a, b}
	default:
		rot, err := perm.FromCycles([][]int{seq(0, n)})
		if err != nil {
			return nil, err
		}
		img := make([]int, n)
		for i := range img {
			img[i] = (n - i) % n
		}
		refl, err := perm.FromImage(img)
		if err != nil {
			return nil, err
		}
		gens = []*perm.Perm{rot, refl}
	}
	return New(gens, WithOrder(func() *big.Int {
		return big.NewInt(2 * int64(n))
	}))
}

// Abelian returns the direct product of cyclic groups of the given orders,
// acting on disjoint point ranges.  Order is the product of the factor
// orders.  Returns ErrBadOrder when any factor is < 1.
func Abelian(orders ...int) (*Group, error) {
	var gens []*perm.Perm
	offset := 0
	total := big.NewInt(1)
	for _, n := range orders {
		if n < 1 {
			return nil, ErrBadOrder
		}
		total.Mul(total, big.NewInt(int64(n)))
		if n >= 2 {
			rot, err := perm.FromCycles([][]int{seq(offset, offset+n)})
			if err != nil {
				return nil, err
			}
			gens = append(gens, rot)
		}
		offset += n
	}
	return New(gens, WithOrder(func() *big.Int {
		return new(big.Int).Set(total)
	}))
}

// seq returns the points lo..hi-1 in order.
func seq(lo, hi int) []int {
	s := make([]int, hi-lo)
	for i := range s {
		s[i] = lo + i
	}
	return s
}

// factorial returns n! as a big.Int.
func factorial(n int) *big.Int {
	return new(big.Int).MulRange(1, int64(n))
}
