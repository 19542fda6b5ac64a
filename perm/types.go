// Package perm: sentinel error set.
// All constructors and operations return ONLY these sentinels for
// user-triggered failures; tests match them via errors.Is.
package perm

import "errors"

var (
	// ErrInvalidCycle is returned by FromCycles when a cycle contains a
	// negative point, a repeated point, or overlaps another cycle.
	ErrInvalidCycle = errors.New("perm: invalid cycle decomposition")

	// ErrNotBijection is returned by FromImage when the image slice is not
	// a permutation of 0..n-1.
	ErrNotBijection = errors.New("perm: image is not a bijection")

	// ErrDegreeMismatch is returned by Apply when the sequence is shorter
	// than the permutation's degree (the permutation moves a position the
	// sequence does not have).
	ErrDegreeMismatch = errors.New("perm: sequence length does not cover degree")

	// ErrNotRearrangement is returned by FindPermutation when target is not
	// a reordering of source (length or multiset mismatch).
	ErrNotRearrangement = errors.New("perm: target is not a rearrangement of source")

	// ErrNegativeDegree is returned by Random for n < 0.
	ErrNegativeDegree = errors.New("perm: negative degree")
)
