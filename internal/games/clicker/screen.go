package clicker

import (
	"time"

	"github.com/vovakirdan/clicker/internal/core"
)

// Screen is one of MenuScreen, RunningScreen or WonScreen. Each variant
// carries exactly the data it needs, so a running or finished session
// always has its timestamps.
type Screen interface {
	Phase() core.Phase
	screen()
}

// MenuScreen waits for a start key and lets the player pick a tier.
type MenuScreen struct{}

// RunningScreen is an active session.
type RunningScreen struct {
	StartedAt time.Time
	Targets   []Target
}

// WonScreen shows the result of a cleared session.
type WonScreen struct {
	StartedAt  time.Time
	FinishedAt time.Time
}

func (MenuScreen) Phase() core.Phase    { return core.PhaseMenu }
func (RunningScreen) Phase() core.Phase { return core.PhaseRunning }
func (WonScreen) Phase() core.Phase     { return core.PhaseWon }

func (MenuScreen) screen()    {}
func (RunningScreen) screen() {}
func (WonScreen) screen()     {}

// Elapsed returns the session duration so far.
func (s RunningScreen) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.StartedAt)
}

// Elapsed returns the final session duration.
func (s WonScreen) Elapsed() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}
