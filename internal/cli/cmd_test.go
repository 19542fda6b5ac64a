package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cycles/clifford"
)

// runCmd executes a subcommand with the given args and returns stdout.
func runCmd(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// TestOrderCmd_Families pins the printed orders per family.
func TestOrderCmd_Families(t *testing.T) {
	cases := []struct {
		family string
		n      string
		want   string
	}{
		{"symmetric", "5", "120"},
		{"alternating", "5", "60"},
		{"cyclic", "7", "7"},
		{"dihedral", "6", "12"},
		{"clifford", "2", "11520"},
	}
	for _, tc := range cases {
		out, err := runCmd(t, newOrderCmd(), "--group", tc.family, "-n", tc.n)
		require.NoError(t, err, tc.family)
		assert.Equal(t, tc.want, strings.TrimSpace(out), tc.family)
	}
}

// TestOrderCmd_UnknownFamily rejects families outside the known set.
func TestOrderCmd_UnknownFamily(t *testing.T) {
	_, err := runCmd(t, newOrderCmd(), "--group", "sporadic", "-n", "3")
	assert.ErrorIs(t, err, ErrUnknownGroup)
}

// TestSynthCmd_RoundTrip: the synthesized word, evaluated again, matches
// the original circuit's action.
func TestSynthCmd_RoundTrip(t *testing.T) {
	in := "H0 S1 CZ0,1 S0'"
	out, err := runCmd(t, newSynthCmd(), "--qubits", "2", "--circuit", in)
	require.NoError(t, err)

	g, err := clifford.New(2, nil)
	require.NoError(t, err)

	wantSteps, err := parseCircuit(in)
	require.NoError(t, err)
	want, err := g.Evaluate(wantSteps)
	require.NoError(t, err)

	gotSteps, err := parseCircuit(strings.TrimSpace(out))
	require.NoError(t, err)
	got, err := g.Evaluate(gotSteps)
	require.NoError(t, err)

	assert.True(t, got.Equal(want), "synthesized word %q must act like %q", out, in)
}

// TestSynthCmd_Topology builds the group from a TOML topology file.
func TestSynthCmd_Topology(t *testing.T) {
	path := writeTopology(t, "qubits = 3\nedges = [[0, 2]]\n")

	out, err := runCmd(t, newSynthCmd(), "--topology", path, "--circuit", "CZ0,2")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))
}

// TestSynthCmd_GateOutsideTopology: a gate not covered by the coupling
// graph cannot be evaluated.
func TestSynthCmd_GateOutsideTopology(t *testing.T) {
	_, err := runCmd(t, newSynthCmd(), "--qubits", "3", "--circuit", "CZ0,2")
	assert.ErrorIs(t, err, clifford.ErrUnknownGate)
}

// TestSynthCmd_BadCircuit propagates parse failures.
func TestSynthCmd_BadCircuit(t *testing.T) {
	_, err := runCmd(t, newSynthCmd(), "--qubits", "2", "--circuit", "Q9")
	assert.ErrorIs(t, err, ErrBadCircuit)
}
