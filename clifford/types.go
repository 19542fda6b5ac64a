// Package clifford: sentinel errors, gate descriptors and synthesis steps.
package clifford

import (
	"errors"
	"fmt"
)

var (
	// ErrBadQubitCount is returned for qubit counts < 1.
	ErrBadQubitCount = errors.New("clifford: qubit count must be >= 1")

	// ErrQubitRange is returned when a connectivity-graph edge references a
	// qubit outside [0, n).
	ErrQubitRange = errors.New("clifford: graph qubit index out of range")

	// ErrBadPauli is returned by EncodePaulis for characters outside
	// {I, X, Y, Z} (after an optional sign prefix) or an empty string.
	ErrBadPauli = errors.New("clifford: malformed Pauli string")

	// ErrBadLabel is returned by DecodePaulis when a label carries bits
	// outside the n-qubit layout.
	ErrBadLabel = errors.New("clifford: label out of range for qubit count")

	// ErrUnknownGate is returned when a gate descriptor has no permutation
	// in the group (wrong name or qubits outside the topology).
	ErrUnknownGate = errors.New("clifford: unknown gate")
)

// singleQubit marks the unused second operand of one-qubit gates.
const singleQubit = -1

// Gate describes one elementary gate instance: Hadamard or Phase on qubit
// A, or controlled-Z on the pair (A, B).  Gate values are comparable and
// key the gate → permutation map.
type Gate struct {
	Name string // "H", "S" or "CZ"
	A    int    // target qubit
	B    int    // second qubit for CZ, -1 otherwise
}

// Hadamard returns the descriptor of H on qubit i.
func Hadamard(i int) Gate { return Gate{Name: "H", A: i, B: singleQubit} }

// PhaseGate returns the descriptor of S on qubit i.
func PhaseGate(i int) Gate { return Gate{Name: "S", A: i, B: singleQubit} }

// ControlledZ returns the descriptor of CZ on the pair (i, j).
func ControlledZ(i, j int) Gate { return Gate{Name: "CZ", A: i, B: j} }

// String renders "H(0)", "S(1)", "CZ(0,1)".
func (g Gate) String() string {
	if g.B == singleQubit {
		return fmt.Sprintf("%s(%d)", g.Name, g.A)
	}
	return fmt.Sprintf("%s(%d,%d)", g.Name, g.A, g.B)
}

// Step is one synthesized circuit step: a gate, possibly inverted.  An
// inverted step means "apply the inverse of this gate's Clifford
// operation" (for H and CZ that is the gate itself; for S it is S³).
type Step struct {
	Gate    Gate
	Inverse bool
}

// String renders "S(0)" or "S(0)^-1".
func (s Step) String() string {
	if s.Inverse {
		return s.Gate.String() + "^-1"
	}
	return s.Gate.String()
}
