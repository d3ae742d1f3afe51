package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionStart             // Space - start a session from the menu
	ActionCancel            // Escape - abandon the running session
	ActionConfirm           // Enter - leave the win screen
	ActionTierEasy          // 1 - select easy tier in the menu
	ActionTierMedium        // 2 - select medium tier in the menu
	ActionTierHard          // 3 - select hard tier in the menu
	ActionQuit              // Q, Ctrl+C - exit (terminal only)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionCancel:
		return "Cancel"
	case ActionConfirm:
		return "Confirm"
	case ActionTierEasy:
		return "TierEasy"
	case ActionTierMedium:
		return "TierMedium"
	case ActionTierHard:
		return "TierHard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
// Presses are edge events: a key or button held across frames shows up
// only in the frame it went down.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	click    Vec2
	hasClick bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Click records a left mouse button press at p (world coordinates).
// Only one click per frame is kept; a later call replaces the earlier one.
func (f *InputFrame) Click(p Vec2) {
	f.click = p
	f.hasClick = true
}

// Clicked returns the press position and whether a press happened this frame.
func (f InputFrame) Clicked() (Vec2, bool) {
	return f.click, f.hasClick
}

// Clear resets all actions and the click for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.click = Vec2{}
	f.hasClick = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.click = f.click
	clone.hasClick = f.hasClick
	return clone
}
