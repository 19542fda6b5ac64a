package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTopology drops a TOML fixture into a per-test temp dir.
func writeTopology(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "topology.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// TestLoadTopology parses a well-formed file and converts its edges.
func TestLoadTopology(t *testing.T) {
	path := writeTopology(t, "qubits = 3\nedges = [[0, 1], [1, 2]]\n")

	topo, err := loadTopology(path)
	require.NoError(t, err)
	assert.Equal(t, 3, topo.Qubits)

	graph, err := topo.Graph()
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, graph)
}

// TestLoadTopology_NoEdges: an edgeless topology is valid (single qubits
// with no coupling).
func TestLoadTopology_NoEdges(t *testing.T) {
	topo, err := loadTopology(writeTopology(t, "qubits = 1\n"))
	require.NoError(t, err)

	graph, err := topo.Graph()
	require.NoError(t, err)
	assert.Empty(t, graph)
}

// TestLoadTopology_Errors: missing files, TOML syntax errors and
// nonpositive qubit counts map to ErrBadTopology.
func TestLoadTopology_Errors(t *testing.T) {
	_, err := loadTopology(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrBadTopology)

	_, err = loadTopology(writeTopology(t, "qubits = [broken"))
	assert.ErrorIs(t, err, ErrBadTopology)

	_, err = loadTopology(writeTopology(t, "qubits = 0\n"))
	assert.ErrorIs(t, err, ErrBadTopology)
}

// TestTopology_Graph_BadEdge rejects edges that are not pairs.
func TestTopology_Graph_BadEdge(t *testing.T) {
	topo := &Topology{Qubits: 3, Edges: [][]int{{0, 1, 2}}}
	_, err := topo.Graph()
	assert.ErrorIs(t, err, ErrBadTopology)
}
