// Package clifford: integer encoding of signed Pauli strings.
//
// A label packs one Pauli string and its sign into an int.  Bits 0–1 hold
// the phase (bit 1 is the minus sign; bit 0 is reserved for an i factor and
// stays clear for the Hermitian operators handled here).  Qubit k occupies
// bit 2k+2 (x part) and bit 2k+3 (z part):
//
//	I=(x0,z0)  X=(x1,z0)  Y=(x1,z1)  Z=(x0,z1)
//
// The layout keeps the CHP update rules pure bit arithmetic and makes the
// two signs of one operator adjacent: -P is always P's label with bit 1 set.
package clifford

import "strings"

// signBit is the minus-sign flag within a label.
const signBit = 2

// pauliAlphabet fixes the letter order used everywhere (string generation,
// decoding): the (x,z) pair read as x + 2z indexes into it.
const pauliAlphabet = "IXYZ"

// EncodePaulis packs a Pauli string such as "XIZ", "-YY" or "+IZ" into a
// label.  The optional leading '+' or '-' sets the sign; the remaining
// characters must be drawn from I, X, Y, Z, one per qubit, leftmost
// character = qubit 0.  Returns ErrBadPauli on anything else.
//
// Complexity: O(len(s)).
func EncodePaulis(s string) (int, error) {
	label := 0
	body := s
	if strings.HasPrefix(body, "+") {
		body = body[1:]
	} else if strings.HasPrefix(body, "-") {
		label |= signBit
		body = body[1:]
	}
	if len(body) == 0 {
		return 0, ErrBadPauli
	}
	for k := 0; k < len(body); k++ {
		idx := strings.IndexByte(pauliAlphabet, body[k])
		if idx < 0 {
			return 0, ErrBadPauli
		}
		x, z := idx&1, idx>>1
		label |= x << (2*k + 2)
		label |= z << (2*k + 3)
	}
	return label, nil
}

// DecodePaulis unpacks an n-qubit label back into its string form, with a
// '-' prefix for negative labels.  Returns ErrBadLabel when the label
// carries bits beyond the n-qubit layout or ErrBadQubitCount for n < 1.
//
// Complexity: O(n).
func DecodePaulis(label, n int) (string, error) {
	if n < 1 {
		return "", ErrBadQubitCount
	}
	if label < 0 || label>>(2*n+2) != 0 || label&1 != 0 {
		return "", ErrBadLabel
	}
	var b strings.Builder
	if label&signBit != 0 {
		b.WriteByte('-')
	}
	for k := 0; k < n; k++ {
		x := (label >> (2*k + 2)) & 1
		z := (label >> (2*k + 3)) & 1
		b.WriteByte(pauliAlphabet[x|z<<1])
	}
	return b.String(), nil
}

// pauliStrings returns a lazy, restartable generator over the 4^n - 1
// non-identity Pauli strings of length n, in the fixed canonical order:
// base-4 counting over IXYZ with the leftmost character most significant,
// starting just past the all-identity string.  Each call to the returned
// function yields the next string; ok=false signals exhaustion.
func pauliStrings(n int) func() (string, bool) {
	idx := 0
	limit := 1 << (2 * n) // 4^n
	return func() (string, bool) {
		idx++
		if idx >= limit {
			return "", false
		}
		buf := make([]byte, n)
		v := idx
		for k := n - 1; k >= 0; k-- {
			buf[k] = pauliAlphabet[v&3]
			v >>= 2
		}
		return string(buf), true
	}
}

// Universe enumerates the stabilizer-label universe for n qubits: every
// non-identity Pauli string in canonical order, each immediately followed
// by its negative partner.  Size 2·(4^n − 1).  This fixed ordering defines
// the index domain all gate permutations act on.
//
// Returns ErrBadQubitCount for n < 1.
//
// Complexity: O(n · 4^n).
func Universe(n int) ([]int, error) {
	if n < 1 {
		return nil, ErrBadQubitCount
	}
	labels := make([]int, 0, 2*(1<<(2*n)-1))
	next := pauliStrings(n)
	for s, ok := next(); ok; s, ok = next() {
		label, err := EncodePaulis(s)
		if err != nil {
			return nil, err
		}
		labels = append(labels, label, label|signBit)
	}
	return labels, nil
}
