package perm_test

import (
	"fmt"

	"github.com/katalvlaran/cycles/perm"
)

// ExampleFindPermutation recovers the permutation turning one ordering of a
// sequence into another, then replays it with Apply.
func ExampleFindPermutation() {
	source := []string{"a", "b", "c", "d"}
	target := []string{"d", "a", "b", "c"}

	p, _ := perm.FindPermutation(source, target)
	fmt.Println(p)

	out, _ := perm.Apply(p, source)
	fmt.Println(out)
	// Output:
	// (0 1 2 3)
	// [d a b c]
}

// ExamplePerm_Then shows the left-to-right composition convention and that
// composition order matters.
func ExamplePerm_Then() {
	a, _ := perm.FromCycles([][]int{{0, 1, 2}})
	b, _ := perm.FromCycles([][]int{{0, 1}})

	fmt.Println(a.Then(b)) // apply a first, then b
	fmt.Println(b.Then(a)) // the other way around
	// Output:
	// (1 2)
	// (0 2)
}

// ExamplePerm_Order derives an element's order from its cycle structure.
func ExamplePerm_Order() {
	p, _ := perm.FromCycles([][]int{{0, 1, 2}, {3, 4}})
	fmt.Println(p.Order())
	// Output:
	// 6
}
