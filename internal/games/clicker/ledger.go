package clicker

import (
	"fmt"
	"time"

	"github.com/vovakirdan/clicker/internal/config"
	"github.com/vovakirdan/clicker/internal/core"
)

// Ledger counts presses and hits. Both only grow between resets.
type Ledger struct {
	Clicks int // Left presses while running
	Hits   int // Targets removed
}

// Reset zeroes both counters.
func (l *Ledger) Reset() {
	*l = Ledger{}
}

// Score returns the counter selected by mode.
func (l Ledger) Score(mode config.CountMode) int {
	if mode == config.CountHits {
		return l.Hits
	}
	return l.Clicks
}

// Accuracy returns hits per click in [0, 1]; 0 with no clicks.
// Multi-hit clicks can push the raw ratio above 1, so it is capped.
func (l Ledger) Accuracy() float64 {
	if l.Clicks == 0 {
		return 0
	}
	return core.ClampF(float64(l.Hits)/float64(l.Clicks), 0, 1)
}

// FormatElapsed renders a duration as "{seconds}.{milliseconds}".
// TimerFixed pads milliseconds to three digits; TimerLiteral prints the
// millisecond count without padding, so 3.045s reads "3.45".
func FormatElapsed(d time.Duration, format config.TimerFormat) string {
	secs := int64(d / time.Second)
	millis := int64(d%time.Second) / int64(time.Millisecond)
	if millis < 0 {
		millis = -millis
	}

	if format == config.TimerLiteral {
		return fmt.Sprintf("%d.%d", secs, millis)
	}
	return fmt.Sprintf("%d.%03d", secs, millis)
}
