// Package clicker implements the aim-training game: circular targets drift
// around the arena and the player clicks them until none are left.
//
// One Game type serves both variants. The timed clicker (tier speeds,
// session timer, counters reset per session) and the points game (random
// drift, no timer, points kept across sessions) differ only in config.Config.
package clicker

import (
	"math/rand"

	"github.com/vovakirdan/clicker/internal/config"
	"github.com/vovakirdan/clicker/internal/core"
)

// Game implements the clicker game logic.
type Game struct {
	id      string
	cfg     config.Config
	runtime core.RuntimeConfig
	arena   Arena
	rng     *rand.Rand
	clock   core.Clock

	screen Screen
	tier   config.Tier
	ledger Ledger
}

// New creates a game for the given variant id and configuration.
// Call Reset before the first Step.
func New(id string, cfg config.Config) *Game {
	return &Game{
		id:     id,
		cfg:    cfg,
		clock:  core.SystemClock{},
		screen: MenuScreen{},
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.cfg.Title
}

// SetClock replaces the wall clock used for session timing.
func (g *Game) SetClock(c core.Clock) {
	g.clock = c
}

// SetTier selects the tier used by the next spawn.
func (g *Game) SetTier(t config.Tier) {
	g.tier = t
}

// Tier returns the selected tier.
func (g *Game) Tier() config.Tier {
	return g.tier
}

// Screen returns the current screen.
func (g *Game) Screen() Screen {
	return g.screen
}

// Ledger returns the current counters.
func (g *Game) Ledger() Ledger {
	return g.ledger
}

// Reset returns to the menu with zeroed counters. The selected tier is kept.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.arena = Arena{
		Bounds: cfg.Bounds(),
		Radius: g.cfg.Targets.Radius,
		Policy: g.cfg.Scoring.HitPolicy,
	}
	g.screen = MenuScreen{}
	g.ledger.Reset()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	switch s := g.screen.(type) {
	case MenuScreen:
		events = g.updateMenu(in)
	case RunningScreen:
		events = g.updateRunning(s, in)
	case WonScreen:
		events = g.updateWon(in)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// updateMenu handles tier selection and the start key.
func (g *Game) updateMenu(in core.InputFrame) []core.Event {
	var events []core.Event

	if g.cfg.TiersEnabled() {
		tier := g.tier
		switch {
		case in.Has(core.ActionTierEasy):
			tier = config.TierEasy
		case in.Has(core.ActionTierMedium):
			tier = config.TierMedium
		case in.Has(core.ActionTierHard):
			tier = config.TierHard
		}
		if tier != g.tier {
			g.tier = tier
			events = append(events, core.Event{
				Kind:   core.EventTierChanged,
				Fields: []any{"tier", tier.String()},
			})
		}
	}

	if !in.Has(core.ActionStart) {
		return events
	}

	if g.cfg.Scoring.ResetOnStart {
		g.ledger.Reset()
	}
	targets := Spawn(g.rng, g.cfg, g.tier, g.arena.Bounds)
	g.screen = RunningScreen{
		StartedAt: g.clock.Now(),
		Targets:   targets,
	}

	return append(events, core.Event{
		Kind:   core.EventSessionStarted,
		Fields: []any{"tier", g.tier.String(), "targets", len(targets)},
	})
}

// updateRunning moves targets, resolves the click and detects the win.
func (g *Game) updateRunning(s RunningScreen, in core.InputFrame) []core.Event {
	if in.Has(core.ActionCancel) {
		g.screen = MenuScreen{}
		return []core.Event{{
			Kind:   core.EventSessionCancelled,
			Fields: []any{"remaining", len(s.Targets)},
		}}
	}

	var events []core.Event
	var click *core.Vec2
	if p, ok := in.Clicked(); ok {
		g.ledger.Clicks++
		click = &p
	}

	survivors, removed := g.arena.Advance(s.Targets, click)
	for _, pos := range removed {
		g.ledger.Hits++
		events = append(events, core.Event{
			Kind:   core.EventTargetHit,
			Fields: []any{"x", pos.X, "y", pos.Y, "remaining", len(survivors)},
		})
	}

	if len(survivors) == 0 {
		won := WonScreen{StartedAt: s.StartedAt, FinishedAt: g.clock.Now()}
		g.screen = won
		return append(events, core.Event{
			Kind: core.EventSessionWon,
			Fields: []any{
				"elapsed", won.Elapsed(),
				"clicks", g.ledger.Clicks,
				"hits", g.ledger.Hits,
			},
		})
	}

	s.Targets = survivors
	g.screen = s
	return events
}

// updateWon waits for the confirm key.
func (g *Game) updateWon(in core.InputFrame) []core.Event {
	if in.Has(core.ActionConfirm) {
		g.screen = MenuScreen{}
	}
	return nil
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Phase: g.screen.Phase(),
		Score: g.ledger.Score(g.cfg.Scoring.Count),
	}
	if s, ok := g.screen.(RunningScreen); ok {
		st.Remaining = len(s.Targets)
	}
	return st
}
