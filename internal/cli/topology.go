package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// ErrBadTopology is returned for a malformed topology file.
var ErrBadTopology = errors.New("cli: malformed topology file")

// Topology describes a qubit connectivity graph loaded from TOML:
//
//	qubits = 3
//	edges  = [[0, 1], [1, 2]]
//
// Edge qubit indices are validated downstream by the Clifford builder.
type Topology struct {
	Qubits int     `toml:"qubits"`
	Edges  [][]int `toml:"edges"`
}

// Graph converts the edge list to the builder's [][2]int form, rejecting
// edges that are not pairs.
func (t *Topology) Graph() ([][2]int, error) {
	edges := make([][2]int, len(t.Edges))
	for i, e := range t.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("%w: edge %d has %d endpoints", ErrBadTopology, i, len(e))
		}
		edges[i] = [2]int{e[0], e[1]}
	}
	return edges, nil
}

// loadTopology parses a TOML topology file.
func loadTopology(path string) (*Topology, error) {
	var t Topology
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTopology, err)
	}
	if t.Qubits < 1 {
		return nil, fmt.Errorf("%w: qubits must be >= 1", ErrBadTopology)
	}
	return &t, nil
}
