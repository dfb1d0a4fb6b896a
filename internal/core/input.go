package core

// Action represents a semantic platform action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionRestart           // R key - restart after game over
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionScreenshot        // Ctrl+S - dump the screen to a text file
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
// It carries at most one pointer click plus any triggered actions.
type InputFrame struct {
	// Click is the pointer click for this tick in logical view coordinates,
	// or nil if the player did not click.
	Click *Point

	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// ClickAt creates an input frame holding a single click.
func ClickAt(x, y int) InputFrame {
	f := NewInputFrame()
	f.SetClick(Point{X: x, Y: y})
	return f
}

// SetClick records a click. A later click in the same tick replaces the earlier one.
func (f *InputFrame) SetClick(p Point) {
	f.Click = &p
}

// HasClick returns true if a click was recorded this frame.
func (f InputFrame) HasClick() bool {
	return f.Click != nil
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

// Clear resets the click and all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Click = nil
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
