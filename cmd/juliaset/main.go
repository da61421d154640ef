// Command juliaset renders Julia-set fractals to image files and
// explores them interactively.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/julia"
)

func main() {
	ctx := context.Background()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "juliaset",
		Short: "Render and explore Julia-set fractals",
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				julia.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to stderr")
	cmd.AddCommand(newRenderCmd(), newViewCmd(), newPalettesCmd())
	return cmd
}
