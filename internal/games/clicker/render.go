package clicker

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/vovakirdan/clicker/internal/core"
)

// Font sizes used by the screens.
const (
	fontHUD      = 20
	fontTitle    = 40
	fontSummary  = 40
	fontCongrats = 50
	fpsOffsetX   = 100
)

// Render draws the current screen.
func (g *Game) Render(dst core.Surface) {
	dst.Clear(core.ColorBackground)

	switch s := g.screen.(type) {
	case MenuScreen:
		g.drawMenu(dst)
	case RunningScreen:
		g.drawRunning(dst, s)
	case WonScreen:
		g.drawWon(dst, s)
	}
}

func (g *Game) drawMenu(dst core.Surface) {
	cy := g.runtime.WorldH / 2

	g.drawCentered(dst, g.cfg.Title, cy-100, fontTitle, core.ColorText)

	if g.cfg.TiersEnabled() {
		g.drawCentered(dst, fmt.Sprintf("Current difficulty: %s", g.tier), cy-25, fontHUD, core.ColorText)
		g.drawCentered(dst, "Press 1 to easy; 2 to medium and 3 to hard", cy+25, fontHUD, core.ColorText)
	}

	// Carried-over score is only meaningful when it survives a new session
	if !g.cfg.Scoring.ResetOnStart {
		if score := g.ledger.Score(g.cfg.Scoring.Count); score > 0 {
			g.drawCentered(dst, fmt.Sprintf("%s: %d", g.cfg.Scoring.Label, score), cy+60, fontHUD, core.ColorText)
		}
	}

	g.drawCentered(dst, "Press Space to start", cy+100, fontHUD, core.ColorText)
}

func (g *Game) drawRunning(dst core.Surface, s RunningScreen) {
	for _, t := range s.Targets {
		dst.DrawCircle(t.Pos, g.arena.Radius, core.ColorTarget)
	}
	dst.DrawFPS(g.runtime.WorldW-fpsOffsetX, 0)

	if g.cfg.Timer.Enabled {
		timer := FormatElapsed(s.Elapsed(g.clock.Now()), g.cfg.Timer.Format)
		g.drawCentered(dst, timer, 10, fontHUD, core.ColorTimer)
	}

	score := g.ledger.Score(g.cfg.Scoring.Count)
	dst.DrawText(fmt.Sprintf("%s: %d", g.cfg.Scoring.Label, score), 10, 10, fontHUD, core.ColorText)
}

func (g *Game) drawWon(dst core.Surface, s WonScreen) {
	cy := g.runtime.WorldH / 2
	score := g.ledger.Score(g.cfg.Scoring.Count)
	unit := strings.ToLower(g.cfg.Scoring.Label)

	g.drawCentered(dst, "Congrats!", cy-100, fontCongrats, core.ColorCongrats)

	var summary string
	if g.cfg.Timer.Enabled {
		summary = fmt.Sprintf("You finished in %s seconds, with %d total %s!",
			FormatElapsed(s.Elapsed(), g.cfg.Timer.Format), score, unit)
	} else {
		summary = fmt.Sprintf("You have %d %s!", score, unit)
	}
	g.drawCentered(dst, summary, cy, fontSummary, core.ColorSummary)

	if g.ledger.Clicks > 0 {
		accuracy := fmt.Sprintf("Accuracy: %.0f%%", g.ledger.Accuracy()*100)
		g.drawCentered(dst, accuracy, cy+55, fontHUD, core.ColorText)
	}

	g.drawCentered(dst, "Press Enter to restart", cy+100, fontHUD, core.ColorText)
}

// drawCentered draws text horizontally centered in the world at row y.
func (g *Game) drawCentered(dst core.Surface, text string, y, size int, c color.Color) {
	w := dst.MeasureText(text, size)
	dst.DrawText(text, g.runtime.WorldW/2-w/2, y, size, c)
}
