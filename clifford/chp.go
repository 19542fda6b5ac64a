// Package clifford: CHP stabilizer-update rules.
//
// Pure combinatorial functions mapping one encoded stabilizer label to
// another, following the Aaronson–Gottesman tableau update rules restricted
// to a single signed Pauli operator.  They are the only gate-specific
// knowledge in the package; the builder treats them as black boxes with an
// input/output contract on labels.
package clifford

// H conjugates the labeled operator by a Hadamard on qubit q: X↔Z swap,
// sign flip on Y.  q must lie inside the label's qubit range.
//
// Complexity: O(1).
func H(label, q int) int {
	xm := 1 << (2*q + 2)
	zm := 1 << (2*q + 3)
	x, z := label&xm != 0, label&zm != 0
	out := label &^ (xm | zm)
	if x {
		out |= zm
	}
	if z {
		out |= xm
	}
	if x && z {
		out ^= signBit
	}
	return out
}

// P conjugates by the phase gate S on qubit q: X→Y, Y→-X, Z fixed.
//
// Complexity: O(1).
func P(label, q int) int {
	xm := 1 << (2*q + 2)
	zm := 1 << (2*q + 3)
	out := label
	if label&xm != 0 {
		out ^= zm
		if label&zm != 0 {
			out ^= signBit
		}
	}
	return out
}

// CZ conjugates by a controlled-Z on the qubit pair (a, b): each qubit's z
// part absorbs the other's x part, with a sign flip exactly when both x
// parts are set and the z parts differ (e.g. X⊗Y → −Y⊗X).
//
// Complexity: O(1).
func CZ(label, a, b int) int {
	xam := 1 << (2*a + 2)
	zam := 1 << (2*a + 3)
	xbm := 1 << (2*b + 2)
	zbm := 1 << (2*b + 3)
	xa, za := label&xam != 0, label&zam != 0
	xb, zb := label&xbm != 0, label&zbm != 0
	out := label
	if xb {
		out ^= zam
	}
	if xa {
		out ^= zbm
	}
	if xa && xb && za != zb {
		out ^= signBit
	}
	return out
}
