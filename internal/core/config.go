package core

// Fixed window geometry and frame rate. The world is always this size;
// frontends scale it to whatever they render into.
const (
	WorldWidth  = 1200
	WorldHeight = 800
	TickRate    = 60
)

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for world bounds and for deterministic simulation.
type RuntimeConfig struct {
	WorldW   int   // World width in units
	WorldH   int   // World height in units
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with the fixed world size.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		WorldW:   WorldWidth,
		WorldH:   WorldHeight,
		TickRate: TickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Bounds returns the world size as floats.
func (c RuntimeConfig) Bounds() Size {
	return Size{W: float64(c.WorldW), H: float64(c.WorldH)}
}

// Phase identifies which screen a game is on.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseRunning
	PhaseWon
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseRunning:
		return "running"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// GameState is a summary of the game returned by Game.State().
type GameState struct {
	Phase     Phase
	Score     int // Counter shown on the HUD (clicks or points)
	Remaining int // Targets still alive (0 outside Running)
}

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventSessionStarted EventKind = iota
	EventSessionCancelled
	EventSessionWon
	EventTargetHit
	EventTierChanged
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventSessionStarted:
		return "session started"
	case EventSessionCancelled:
		return "session cancelled"
	case EventSessionWon:
		return "session won"
	case EventTargetHit:
		return "target hit"
	case EventTierChanged:
		return "difficulty changed"
	default:
		return "unknown event"
	}
}

// Event is emitted by Step so platforms can log without the game knowing how.
// Fields holds alternating key/value pairs.
type Event struct {
	Kind   EventKind
	Fields []any
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
