// Command molview renders molecule diagrams to PNG or SVG.
//
// Usage:
//
//	molview render alanine.yaml -o alanine.png --highlight 1,4
//	molview render alanine.yaml -o alanine.svg --config style.yaml
//	molview config > style.yaml
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/molview"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "molview",
		Short:         "Render 2D molecule diagrams",
		Version:       molview.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newConfigCmd())
	return root
}

// setupLogging routes molview's logs to w. Warnings are always shown.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	molview.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
