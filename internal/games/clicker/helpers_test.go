package clicker

import (
	"image/color"
	"time"

	"github.com/vovakirdan/clicker/internal/config"
	"github.com/vovakirdan/clicker/internal/core"
)

// fakeClock advances only when told to.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type drawnText struct {
	text string
	x, y int
	size int
}

// recordingSurface captures draw calls. Every glyph is 10 units wide per
// 20 units of font size.
type recordingSurface struct {
	cleared int
	circles []core.Vec2
	texts   []drawnText
	fps     int
}

func (r *recordingSurface) Clear(color.Color) { r.cleared++ }

func (r *recordingSurface) DrawCircle(center core.Vec2, _ float64, _ color.Color) {
	r.circles = append(r.circles, center)
}

func (r *recordingSurface) DrawText(s string, x, y, size int, _ color.Color) {
	r.texts = append(r.texts, drawnText{text: s, x: x, y: y, size: size})
}

func (r *recordingSurface) MeasureText(s string, size int) int {
	return len(s) * size / 2
}

func (r *recordingSurface) DrawFPS(int, int) { r.fps++ }

func (r *recordingSurface) hasText(s string) bool {
	for _, t := range r.texts {
		if t.text == s {
			return true
		}
	}
	return false
}

func testRuntime(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

// newTestGame returns a reset game on the menu with a fake clock.
func newTestGame(cfg config.Config) (*Game, *fakeClock) {
	clock := newFakeClock()
	g := New(config.VariantClicker, cfg)
	g.SetClock(clock)
	g.Reset(testRuntime(42))
	return g, clock
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func clickAt(x, y float64) core.InputFrame {
	in := core.NewInputFrame()
	in.Click(core.V(x, y))
	return in
}

// setTargets replaces the running session's targets.
func setTargets(g *Game, targets ...Target) {
	s := g.screen.(RunningScreen)
	s.Targets = targets
	g.screen = s
}
