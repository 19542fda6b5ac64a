package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/cycles/clifford"
)

// ErrBadCircuit is returned for unparsable circuit descriptions.
var ErrBadCircuit = errors.New("cli: malformed circuit")

// parseCircuit turns a whitespace-separated gate list into synthesis steps.
// Token grammar: NAME then comma-separated qubit indices, with an optional
// trailing ' for the inverse — e.g. "H0 S1 CZ0,1 S0'".
func parseCircuit(s string) ([]clifford.Step, error) {
	var steps []clifford.Step
	for _, tok := range strings.Fields(s) {
		step, err := parseGate(tok)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: empty circuit", ErrBadCircuit)
	}
	return steps, nil
}

func parseGate(tok string) (clifford.Step, error) {
	raw := tok
	inv := strings.HasSuffix(raw, "'")
	raw = strings.TrimSuffix(raw, "'")

	split := 0
	for split < len(raw) && raw[split] >= 'A' && raw[split] <= 'Z' {
		split++
	}
	name, rest := raw[:split], raw[split:]
	if name == "" || rest == "" {
		return clifford.Step{}, fmt.Errorf("%w: token %q", ErrBadCircuit, tok)
	}

	var qubits []int
	for _, f := range strings.Split(rest, ",") {
		q, err := strconv.Atoi(f)
		if err != nil || q < 0 {
			return clifford.Step{}, fmt.Errorf("%w: token %q", ErrBadCircuit, tok)
		}
		qubits = append(qubits, q)
	}

	var gate clifford.Gate
	switch {
	case name == "H" && len(qubits) == 1:
		gate = clifford.Hadamard(qubits[0])
	case name == "S" && len(qubits) == 1:
		gate = clifford.PhaseGate(qubits[0])
	case name == "CZ" && len(qubits) == 2:
		gate = clifford.ControlledZ(qubits[0], qubits[1])
	default:
		return clifford.Step{}, fmt.Errorf("%w: token %q", ErrBadCircuit, tok)
	}
	return clifford.Step{Gate: gate, Inverse: inv}, nil
}

// formatSteps renders a synthesized step sequence in the same grammar
// parseCircuit accepts.
func formatSteps(steps []clifford.Step) string {
	parts := make([]string, len(steps))
	for i, s := range steps {
		var b strings.Builder
		b.WriteString(s.Gate.Name)
		b.WriteString(strconv.Itoa(s.Gate.A))
		if s.Gate.Name == "CZ" {
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(s.Gate.B))
		}
		if s.Inverse {
			b.WriteByte('\'')
		}
		parts[i] = b.String()
	}
	return strings.Join(parts, " ")
}
