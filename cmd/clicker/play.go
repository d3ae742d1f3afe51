package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clicker/internal/platform/window"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in a window",
	Long: `Open a 1200x800 window and play the given variant (default: clicker).

Examples:
  clicker play
  clicker play points
  clicker play --config ./my-clicker.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	l := prepare(args, os.Stderr)
	defer l.Close()

	if err := window.Run(l.Game, l.Runtime, l.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		l.Close()
		os.Exit(1)
	}
}
