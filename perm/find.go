package perm

// Apply relabels seq according to p: the element at position i lands at
// position p(i), so out[p.Image(i)] == seq[i].
//
// Returns ErrDegreeMismatch when seq is too short to cover every moved
// position (len(seq) < p.Degree()); the degree may be smaller than the
// sequence, in which case trailing positions stay put.
//
// Complexity: O(len(seq)).
func Apply[T any](p *Perm, seq []T) ([]T, error) {
	if len(seq) < p.Degree() {
		return nil, ErrDegreeMismatch
	}
	out := make([]T, len(seq))
	for i, v := range seq {
		out[p.Image(i)] = v
	}
	return out, nil
}

// FindPermutation computes a permutation P over the index domain
// 0..len(source)-1 with Apply(P, source) equal to target.
//
// Returns ErrNotRearrangement when the lengths differ or target is not a
// reordering of source as a multiset.  When source contains duplicate
// values any one permutation achieving the correspondence is returned;
// callers must not rely on which one.
//
// This is the bridge from domain semantics ("this gate relabels stabilizers
// this way") to an abstract bijection the group engine can work with.
//
// Complexity: O(n) expected.
func FindPermutation[T comparable](source, target []T) (*Perm, error) {
	if len(source) != len(target) {
		return nil, ErrNotRearrangement
	}
	// Positions of each value in target, consumed front to back so duplicate
	// values pair up deterministically by position.
	slots := make(map[T][]int, len(target))
	for j := len(target) - 1; j >= 0; j-- {
		slots[target[j]] = append(slots[target[j]], j)
	}
	img := make([]int, len(source))
	for i, v := range source {
		q := slots[v]
		if len(q) == 0 {
			return nil, ErrNotRearrangement
		}
		img[i] = q[len(q)-1]
		slots[v] = q[:len(q)-1]
	}
	return &Perm{image: trim(img)}, nil
}
