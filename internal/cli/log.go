// Package cli implements the cycles command-line interface.
//
// Commands:
//   - order: print the exact order of a named permutation group or of the
//     N-qubit Clifford group
//   - synth: evaluate a Clifford circuit's stabilizer permutation and
//     re-synthesize it as a canonical gate word through the group engine
//
// All commands support --verbose (-v) for debug-level logging via the
// charmbracelet/log library; loggers travel through context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at the given level with
// "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is a private context-key type to avoid collisions.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the attached logger, or a default one when
// the context carries none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
