// Package app turns command-line options into a ready-to-run game:
// it loads the variant config, applies environment overrides, selects
// the starting tier and builds the logger.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/clicker/internal/config"
	"github.com/vovakirdan/clicker/internal/core"
	"github.com/vovakirdan/clicker/internal/logging"
	"github.com/vovakirdan/clicker/internal/registry"

	// Import games to register them
	_ "github.com/vovakirdan/clicker/internal/games/clicker"
)

// Options are the flags shared by every frontend.
type Options struct {
	Variant    string
	ConfigPath string
	Difficulty string // Overrides CLICKER_DIFFICULTY when set
	Seed       int64
	LogLevel   string
	LogFile    string
	// LogWriter receives logs when LogFile is empty.
	LogWriter io.Writer
}

// Launch is a configured game ready to hand to a frontend.
type Launch struct {
	Game    registry.Game
	Runtime core.RuntimeConfig
	Logger  *log.Logger

	logFile *os.File
}

// Close releases the log file, if any.
func (l *Launch) Close() error {
	if l.logFile == nil {
		return nil
	}
	return l.logFile.Close()
}

// Prepare builds a Launch from opts.
func Prepare(opts Options) (*Launch, error) {
	if !registry.Exists(opts.Variant) {
		return nil, fmt.Errorf("unknown game %q", opts.Variant)
	}

	cfg, err := config.Load(opts.Variant, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	envTier, err := config.ApplyEnv(&cfg)
	if err != nil {
		return nil, err
	}

	tierName := envTier
	if opts.Difficulty != "" {
		tierName = opts.Difficulty
	}
	tier, err := config.ParseTier(tierName)
	if err != nil {
		return nil, err
	}

	l := &Launch{Runtime: core.DefaultConfig()}
	l.Runtime.Seed = opts.Seed

	w := opts.LogWriter
	if opts.LogFile != "" {
		f, err := logging.OpenFile(opts.LogFile)
		if err != nil {
			return nil, err
		}
		l.logFile = f
		w = f
	}
	if w == nil {
		w = os.Stderr
	}

	l.Logger, err = logging.New(w, opts.LogLevel)
	if err != nil {
		_ = l.Close()
		return nil, err
	}

	l.Game, err = registry.Create(opts.Variant, cfg)
	if err != nil {
		_ = l.Close()
		return nil, err
	}
	if ts, ok := l.Game.(registry.TierSelector); ok {
		ts.SetTier(tier)
	}

	l.Logger.Debug("config loaded",
		"game", opts.Variant,
		"tier", tier,
		"hit_policy", cfg.Scoring.HitPolicy,
		"timer_format", cfg.Timer.Format,
		"reset_on_start", cfg.Scoring.ResetOnStart,
	)
	return l, nil
}
