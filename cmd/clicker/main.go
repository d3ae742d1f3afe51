// clicker is an aim-training game: click the drifting targets until none
// are left.
//
// Usage:
//
//	clicker list              - List available variants
//	clicker play [variant]    - Play in a window (default: clicker)
//	clicker tui [variant]     - Play in the terminal with the mouse
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible spawns
//	--config <path>       - Custom variant config YAML
//	--difficulty <tier>   - Starting difficulty: easy, medium, hard
//	--log-level <level>   - debug, info, warn, error (default: info)
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clicker/internal/app"
	"github.com/vovakirdan/clicker/internal/config"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clicker",
	Short: "Clicker - an aim-training game",
	Long: `Clicker spawns ten drifting targets. Click them all as fast as you can.

Variants:
  clicker  - Timed run; pick a difficulty with 1/2/3 on the menu
  points   - Untimed; targets wander randomly and points carry over

Controls:
  Space      - Start
  Esc        - Back to menu
  Enter      - Leave the results screen
  1/2/3      - Easy/Medium/Hard (menu)
  Left click - Shoot

Environment (also read from .env):
  CLICKER_DIFFICULTY, CLICKER_HIT_POLICY (all|nearest),
  CLICKER_TIMER_FORMAT (fixed|literal), CLICKER_RESET_ON_START

Examples:
  clicker play
  clicker play points
  clicker play --difficulty hard --seed 42
  clicker tui`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom variant config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Starting difficulty: easy, medium, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
}

// prepare builds the launch for the variant named in args.
// logs goes unused when --log-file is set.
func prepare(args []string, logs io.Writer) *app.Launch {
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
		LogWriter:  logs,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'clicker list' to see available games.")
		os.Exit(1)
	}
	return l
}
