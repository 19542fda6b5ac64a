package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the cycles CLI and returns an error if any command fails.
//
// Logging defaults to info level on stderr; --verbose (-v) switches to
// debug.  The logger is attached to the command context and accessible to
// all subcommands via loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "cycles",
		Short:        "cycles answers order, membership and synthesis queries on permutation groups",
		Long: `cycles is a computational group-theory toolkit: it represents very large
finite groups (such as the N-qubit Clifford group) as permutation groups on a
small faithful domain and answers order, membership and circuit-synthesis
queries through a stabilizer chain.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newOrderCmd())
	root.AddCommand(newSynthCmd())

	return root.ExecuteContext(context.Background())
}
