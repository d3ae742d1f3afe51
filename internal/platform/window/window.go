// Package window runs a game in a desktop window using Ebitengine.
package window

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/clicker/internal/core"
	"github.com/vovakirdan/clicker/internal/logging"
	"github.com/vovakirdan/clicker/internal/registry"
)

// keyActions maps keyboard keys to game actions. Escape cancels a session;
// closing the window is the only way out.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeySpace:  core.ActionStart,
	ebiten.KeyEscape: core.ActionCancel,
	ebiten.KeyEnter:  core.ActionConfirm,
	ebiten.Key1:      core.ActionTierEasy,
	ebiten.Key2:      core.ActionTierMedium,
	ebiten.Key3:      core.ActionTierHard,
}

// AppGame adapts a registry.Game to ebiten.Game.
type AppGame struct {
	game    registry.Game
	config  core.RuntimeConfig
	logger  *log.Logger
	surface *surface
}

// NewAppGame wraps game for the Ebitengine loop.
func NewAppGame(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) *AppGame {
	return &AppGame{
		game:    game,
		config:  cfg,
		logger:  logger,
		surface: newSurface(),
	}
}

// Update polls input and advances the game one tick.
func (a *AppGame) Update() error {
	in := core.NewInputFrame()
	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) {
			in.Set(action)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Click(core.V(float64(x), float64(y)))
	}

	result := a.game.Step(in)
	logging.Events(a.logger, result.Events)
	return nil
}

// Draw renders the game into the window.
func (a *AppGame) Draw(screen *ebiten.Image) {
	a.surface.dst = screen
	a.game.Render(a.surface)
}

// Layout keeps the logical screen at the world size.
func (a *AppGame) Layout(_, _ int) (int, int) {
	return a.config.WorldW, a.config.WorldH
}

// Run opens the window and blocks until it is closed.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	ebiten.SetWindowSize(cfg.WorldW, cfg.WorldH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(cfg.TickRate)

	logger.Info("window opened", "game", game.ID(), "seed", cfg.Seed)
	return ebiten.RunGame(NewAppGame(game, cfg, logger))
}
