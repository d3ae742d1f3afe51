// Package raylib runs a game in a raylib window.
//
// It lives in its own binary: raylib and Ebitengine both link GLFW.
package raylib

import (
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/clicker/internal/core"
	"github.com/vovakirdan/clicker/internal/logging"
	"github.com/vovakirdan/clicker/internal/registry"
)

var keyActions = map[int32]core.Action{
	rl.KeySpace:  core.ActionStart,
	rl.KeyEscape: core.ActionCancel,
	rl.KeyEnter:  core.ActionConfirm,
	rl.KeyOne:    core.ActionTierEasy,
	rl.KeyTwo:    core.ActionTierMedium,
	rl.KeyThree:  core.ActionTierHard,
}

// surface forwards draw calls to the active raylib frame.
type surface struct{}

func (surface) Clear(c color.Color) {
	rl.ClearBackground(toColor(c))
}

func (surface) DrawCircle(center core.Vec2, radius float64, c color.Color) {
	rl.DrawCircleV(rl.NewVector2(float32(center.X), float32(center.Y)), float32(radius), toColor(c))
}

func (surface) DrawText(s string, x, y, size int, c color.Color) {
	rl.DrawText(s, int32(x), int32(y), int32(size), toColor(c))
}

func (surface) MeasureText(s string, size int) int {
	return int(rl.MeasureText(s, int32(size)))
}

func (surface) DrawFPS(x, y int) {
	rl.DrawFPS(int32(x), int32(y))
}

func toColor(c color.Color) rl.Color {
	rgba := core.RGBA(c)
	return rl.NewColor(rgba.R, rgba.G, rgba.B, rgba.A)
}

// pollInput reads this frame's key and mouse presses.
func pollInput() core.InputFrame {
	in := core.NewInputFrame()
	for key, action := range keyActions {
		if rl.IsKeyPressed(key) {
			in.Set(action)
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		p := rl.GetMousePosition()
		in.Click(core.V(float64(p.X), float64(p.Y)))
	}
	return in
}

// Run opens the window and blocks until it is closed.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	rl.InitWindow(int32(cfg.WorldW), int32(cfg.WorldH), game.Title())
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.TickRate))
	// Escape cancels a session instead of closing the window
	rl.SetExitKey(rl.KeyNull)

	logger.Info("window opened", "game", game.ID(), "seed", cfg.Seed)

	var dst surface
	for !rl.WindowShouldClose() {
		result := game.Step(pollInput())
		logging.Events(logger, result.Events)

		rl.BeginDrawing()
		game.Render(dst)
		rl.EndDrawing()
	}
	return nil
}
