// clicker-raylib plays clicker in a raylib window.
//
// Usage:
//
//	clicker-raylib [variant]
//
// It takes the same flags as clicker play.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clicker/internal/app"
	"github.com/vovakirdan/clicker/internal/config"
	"github.com/vovakirdan/clicker/internal/platform/raylib"
)

var (
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

var rootCmd = &cobra.Command{
	Use:   "clicker-raylib [variant]",
	Short: "Play clicker in a raylib window",
	Long: `Play the given variant (default: clicker) using the raylib backend.

Examples:
  clicker-raylib
  clicker-raylib points --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom variant config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Starting difficulty: easy, medium, hard")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	variant := config.VariantClicker
	if len(args) > 0 {
		variant = args[0]
	}

	l, err := app.Prepare(app.Options{
		Variant:    variant,
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Seed:       flagSeed,
		LogLevel:   flagLogLevel,
		LogFile:    flagLogFile,
		LogWriter:  os.Stderr,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	if err := raylib.Run(l.Game, l.Runtime, l.Logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
