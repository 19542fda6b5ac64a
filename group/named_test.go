package group_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cycles/group"
	"github.com/katalvlaran/cycles/perm"
)

// TestNamed_OrdersAgreeWithChain compares every family's closed-form order
// override against the stabilizer-chain computation.
func TestNamed_OrdersAgreeWithChain(t *testing.T) {
	cases := []struct {
		name  string
		build func() (*group.Group, error)
		order int64
	}{
		{"symmetric-1", func() (*group.Group, error) { return group.Symmetric(1) }, 1},
		{"symmetric-4", func() (*group.Group, error) { return group.Symmetric(4) }, 24},
		{"symmetric-6", func() (*group.Group, error) { return group.Symmetric(6) }, 720},
		{"alternating-2", func() (*group.Group, error) { return group.Alternating(2) }, 1},
		{"alternating-4", func() (*group.Group, error) { return group.Alternating(4) }, 12},
		{"alternating-5", func() (*group.Group, error) { return group.Alternating(5) }, 60},
		{"alternating-6", func() (*group.Group, error) { return group.Alternating(6) }, 360},
		{"cyclic-1", func() (*group.Group, error) { return group.Cyclic(1) }, 1},
		{"cyclic-7", func() (*group.Group, error) { return group.Cyclic(7) }, 7},
		{"dihedral-1", func() (*group.Group, error) { return group.Dihedral(1) }, 2},
		{"dihedral-2", func() (*group.Group, error) { return group.Dihedral(2) }, 4},
		{"dihedral-5", func() (*group.Group, error) { return group.Dihedral(5) }, 10},
		{"abelian-2-3-4", func() (*group.Group, error) { return group.Abelian(2, 3, 4) }, 24},
		{"abelian-empty", func() (*group.Group, error) { return group.Abelian() }, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.build()
			require.NoError(t, err)
			want := big.NewInt(tc.order)
			assert.Zero(t, g.Order().Cmp(want), "closed-form order")
			assert.Zero(t, g.ChainOrder().Cmp(want), "chain order must agree with the formula")
		})
	}
}

// TestNamed_BadInput covers constructor validation.
func TestNamed_BadInput(t *testing.T) {
	for name, build := range map[string]func() (*group.Group, error){
		"symmetric":   func() (*group.Group, error) { return group.Symmetric(0) },
		"alternating": func() (*group.Group, error) { return group.Alternating(0) },
		"cyclic":      func() (*group.Group, error) { return group.Cyclic(0) },
		"dihedral":    func() (*group.Group, error) { return group.Dihedral(0) },
	} {
		_, err := build()
		assert.ErrorIs(t, err, group.ErrBadDegree, name)
	}

	_, err := group.Abelian(3, 0)
	assert.ErrorIs(t, err, group.ErrBadOrder)
}

// TestAlternating_Parity: A_n contains exactly the even permutations, for
// both parities of n (the generator set differs between them).
func TestAlternating_Parity(t *testing.T) {
	for _, n := range []int{4, 5} {
		g, err := group.Alternating(n)
		require.NoError(t, err)

		three, _ := perm.FromCycles([][]int{{1, 2, 3}})
		ok, err := g.Contains(three)
		require.NoError(t, err)
		assert.True(t, ok, "A_%d must contain a 3-cycle", n)

		swap, _ := perm.FromCycles([][]int{{2, 3}})
		ok, err = g.Contains(swap)
		require.NoError(t, err)
		assert.False(t, ok, "A_%d must not contain a transposition", n)
	}
}

// TestDihedral_Reflection: the reflection composed with itself is trivial
// and rotation·reflection has order 2 (a dihedral relation).
func TestDihedral_Reflection(t *testing.T) {
	g, err := group.Dihedral(6)
	require.NoError(t, err)

	gens := g.Generators()
	require.Len(t, gens, 2)
	rot, refl := gens[0], gens[1]

	assert.Equal(t, int64(6), rot.Order())
	assert.Equal(t, int64(2), refl.Order())
	assert.Equal(t, int64(2), rot.Then(refl).Order(), "r·s is an involution in D_n")
}
