package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cycles/clifford"
)

// newSynthCmd builds the `cycles synth` command: evaluate a Clifford
// circuit's permutation on the stabilizer universe, then re-synthesize it
// as a canonical gate word through the stabilizer chain.
func newSynthCmd() *cobra.Command {
	var (
		qubits   int
		topology string
		circuit  string
	)

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Re-synthesize a Clifford circuit as a canonical gate word",
		Long: `Build the Clifford group for the given qubit count (linear-chain coupling by
default, or the topology from a TOML file), evaluate the circuit's action on
the stabilizer-label universe, and factorize that permutation back into
elementary gates through the stabilizer chain.

Circuit grammar: whitespace-separated tokens NAME<qubits>, e.g.
  cycles synth --qubits 2 --circuit "H0 S1 CZ0,1 S0'"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			var graph [][2]int
			if topology != "" {
				t, err := loadTopology(topology)
				if err != nil {
					return err
				}
				qubits = t.Qubits
				if graph, err = t.Graph(); err != nil {
					return err
				}
				logger.Debug("topology loaded", "path", topology, "qubits", qubits, "edges", len(graph))
			}

			steps, err := parseCircuit(circuit)
			if err != nil {
				return err
			}

			g, err := clifford.New(qubits, graph)
			if err != nil {
				return err
			}
			logger.Debug("clifford group built",
				"qubits", qubits,
				"generators", len(g.Gates()),
				"degree", g.Engine().Degree(),
				"order", g.Order())

			target, err := g.Evaluate(steps)
			if err != nil {
				return err
			}
			logger.Debug("target permutation", "support", len(target.Support()))

			word, err := g.Synthesize(target)
			if err != nil {
				return err
			}
			logger.Info("synthesized", "input_gates", len(steps), "output_gates", len(word))
			fmt.Fprintln(cmd.OutOrStdout(), formatSteps(word))
			return nil
		},
	}

	cmd.Flags().IntVarP(&qubits, "qubits", "q", 2, "qubit count (ignored when --topology is set)")
	cmd.Flags().StringVarP(&topology, "topology", "t", "", "TOML topology file (qubits + coupling edges)")
	cmd.Flags().StringVarP(&circuit, "circuit", "c", "", "circuit to re-synthesize (required)")
	_ = cmd.MarkFlagRequired("circuit")
	return cmd
}
