// Package group: sentinel errors and the generator-word vocabulary.
package group

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrNilPermutation is returned when a nil *perm.Perm is supplied as a
	// generator, representative or query element.
	ErrNilPermutation = errors.New("group: nil permutation")

	// ErrNilGroup is returned by NewCoset for a nil subgroup.
	ErrNilGroup = errors.New("group: nil group")

	// ErrDegreeMismatch is returned when a query permutation moves points
	// outside the group's domain.  This is a hard input error, unlike a
	// negative membership answer.
	ErrDegreeMismatch = errors.New("group: permutation degree exceeds group domain")

	// ErrNotMember is the negative result of Factorize: the input is
	// well-formed but lies outside the group.  Branch on it with errors.Is;
	// it is never an indication of malformed input.
	ErrNotMember = errors.New("group: permutation is not a member")

	// ErrLetterRange is returned by Evaluate when a word references a
	// generator index outside the group's generator list.
	ErrLetterRange = errors.New("group: word letter out of generator range")

	// ErrBadDegree is returned by named-group constructors for n < 1.
	ErrBadDegree = errors.New("group: named group degree must be >= 1")

	// ErrBadOrder is returned by Abelian when a factor order is < 1.
	ErrBadOrder = errors.New("group: abelian factor order must be >= 1")
)

// Letter is one step of a generator word: generator index Gen, inverted
// when Inverse is set.
type Letter struct {
	Gen     int
	Inverse bool
}

// Word is an ordered sequence of letters, read left to right under the
// perm.Then convention: the first letter is applied first.
type Word []Letter

// Inverse returns the reversed word with every letter inverted, so that
// w followed by w.Inverse() evaluates to the identity.
//
// Complexity: O(len(w)).
func (w Word) Inverse() Word {
	inv := make(Word, len(w))
	for i, l := range w {
		inv[len(w)-1-i] = Letter{Gen: l.Gen, Inverse: !l.Inverse}
	}
	return inv
}

// Simplify cancels adjacent g·g⁻¹ pairs until none remain.  The evaluated
// permutation is unchanged.
//
// Complexity: O(len(w)).
func (w Word) Simplify() Word {
	var out Word
	for _, l := range w {
		if n := len(out); n > 0 && out[n-1].Gen == l.Gen && out[n-1].Inverse != l.Inverse {
			out = out[:n-1]
			continue
		}
		out = append(out, l)
	}
	return out
}

// String renders letters as "g<i>" / "g<i>^-1", space-separated; the empty
// word is "e".
func (w Word) String() string {
	if len(w) == 0 {
		return "e"
	}
	var b strings.Builder
	for i, l := range w {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('g')
		b.WriteString(strconv.Itoa(l.Gen))
		if l.Inverse {
			b.WriteString("^-1")
		}
	}
	return b.String()
}
