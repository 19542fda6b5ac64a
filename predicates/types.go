// Package predicates: numeric tolerance policy.
package predicates

const (
	// DefaultRtol is the default per-entry relative tolerance.
	DefaultRtol = 1e-5
	// DefaultAtol is the default per-entry absolute tolerance.
	DefaultAtol = 1e-8
)

// Tolerance bundles the per-entry relative and absolute tolerances used by
// every predicate.  The zero value means exact comparison; most callers
// want DefaultTolerance().
type Tolerance struct {
	Rtol float64
	Atol float64
}

// DefaultTolerance returns the standard (1e-5, 1e-8) tolerance pair.
func DefaultTolerance() Tolerance {
	return Tolerance{Rtol: DefaultRtol, Atol: DefaultAtol}
}
