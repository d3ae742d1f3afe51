package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clicker/internal/platform/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [variant]",
	Short: "Play in the terminal",
	Long: `Play the given variant (default: clicker) in the terminal.
Targets are drawn as blocks; click them with the mouse. Q quits.

Logs are discarded unless --log-file is set, since the game owns the screen.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) {
	l := prepare(args, io.Discard)
	defer l.Close()

	if err := tui.Run(l.Game, l.Runtime, l.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		l.Close()
		os.Exit(1)
	}
}
