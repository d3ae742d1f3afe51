package clicker

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/clicker/internal/config"
	"github.com/vovakirdan/clicker/internal/core"
)

func TestRenderMenu(t *testing.T) {
	g, _ := newTestGame(config.DefaultClickerConfig())
	g.SetTier(config.TierMedium)

	var s recordingSurface
	g.Render(&s)

	if s.cleared != 1 {
		t.Errorf("Clear called %d times, expected 1", s.cleared)
	}
	for _, want := range []string{
		"Clicker Game",
		"Current difficulty: Medium",
		"Press 1 to easy; 2 to medium and 3 to hard",
		"Press Space to start",
	} {
		if !s.hasText(want) {
			t.Errorf("menu is missing %q, drew %+v", want, s.texts)
		}
	}
	if len(s.circles) != 0 || s.fps != 0 {
		t.Error("menu should not draw targets or the FPS overlay")
	}
}

func TestRenderMenuCentersText(t *testing.T) {
	g, _ := newTestGame(config.DefaultClickerConfig())

	var s recordingSurface
	g.Render(&s)

	for _, txt := range s.texts {
		w := s.MeasureText(txt.text, txt.size)
		if txt.x != core.WorldWidth/2-w/2 {
			t.Errorf("%q drawn at x=%d, expected centered at %d", txt.text, txt.x, core.WorldWidth/2-w/2)
		}
	}
	if s.texts[0].y != core.WorldHeight/2-100 {
		t.Errorf("title y = %d, expected %d", s.texts[0].y, core.WorldHeight/2-100)
	}
}

func TestRenderRunning(t *testing.T) {
	g, clock := newTestGame(config.DefaultClickerConfig())
	g.Step(input(core.ActionStart))
	g.Step(clickAt(1, 1))
	clock.Advance(2*time.Second + 5*time.Millisecond)

	var s recordingSurface
	g.Render(&s)

	if len(s.circles) != 10 {
		t.Errorf("drew %d circles, expected 10", len(s.circles))
	}
	if s.fps != 1 {
		t.Errorf("DrawFPS called %d times, expected 1", s.fps)
	}
	if !s.hasText("2.005") {
		t.Errorf("missing timer text, drew %+v", s.texts)
	}
	if !s.hasText("Clicks: 1") {
		t.Errorf("missing click counter, drew %+v", s.texts)
	}
}

func TestRenderWon(t *testing.T) {
	g, clock := newTestGame(config.DefaultClickerConfig())
	g.Step(input(core.ActionStart))
	setTargets(g, Target{Pos: core.V(300, 300)})
	g.Step(clickAt(900, 700))
	clock.Advance(3045 * time.Millisecond)
	g.Step(clickAt(300, 300))

	var s recordingSurface
	g.Render(&s)

	for _, want := range []string{
		"Congrats!",
		"You finished in 3.045 seconds, with 2 total clicks!",
		"Accuracy: 50%",
		"Press Enter to restart",
	} {
		if !s.hasText(want) {
			t.Errorf("win screen is missing %q, drew %+v", want, s.texts)
		}
	}
	if len(s.circles) != 0 {
		t.Error("win screen should not draw targets")
	}
}

func TestRenderPointsVariant(t *testing.T) {
	g, _ := newTestGame(config.DefaultPointsConfig())

	var s recordingSurface
	g.Render(&s)
	for _, txt := range s.texts {
		if strings.HasPrefix(txt.text, "Current difficulty") {
			t.Errorf("points menu should not show tiers, drew %q", txt.text)
		}
	}

	g.Step(input(core.ActionStart))
	setTargets(g, Target{Pos: core.V(300, 300)}, Target{Pos: core.V(900, 500)})
	g.Step(clickAt(300, 300))

	s = recordingSurface{}
	g.Render(&s)
	if !s.hasText("Points: 1") {
		t.Errorf("missing points counter, drew %+v", s.texts)
	}
	if len(s.texts) != 1 {
		t.Errorf("running points screen should draw only the counter, drew %+v", s.texts)
	}

	g.Step(clickAt(900, 500))
	s = recordingSurface{}
	g.Render(&s)
	if !s.hasText("You have 2 points!") {
		t.Errorf("missing points summary, drew %+v", s.texts)
	}

	// Carried-over points show on the menu
	g.Step(input(core.ActionConfirm))
	s = recordingSurface{}
	g.Render(&s)
	if !s.hasText("Points: 2") {
		t.Errorf("menu should show carried-over points, drew %+v", s.texts)
	}
}
