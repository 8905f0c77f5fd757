package core

// Action represents a semantic game action, abstracted from physical key presses
// and mouse events. Games work with intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move palette cursor up
	ActionDown           // S, Down arrow - move palette cursor down
	ActionLeft           // A, Left arrow - move palette cursor left
	ActionRight          // D, Right arrow - move palette cursor right
	ActionConfirm        // Enter, Space - paint the color under the cursor
	ActionSelect         // 1-9 - pick a palette slot directly (see InputFrame.Select)
	ActionClick          // Left mouse button press at InputFrame.Pointer
	ActionHover          // Pointer moved to InputFrame.Pointer
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Esc, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionSelect:
		return "Select"
	case ActionClick:
		return "Click"
	case ActionHover:
		return "Hover"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is the last pointer position reported this frame.
	// Meaningful only when ActionClick or ActionHover is set.
	Pointer Point

	// Select is the 1-based palette slot picked with a number key.
	// Meaningful only when ActionSelect is set.
	Select int
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

// SetPointer records a pointer event at (x, y). Use ActionClick or ActionHover.
func (f *InputFrame) SetPointer(a Action, x, y int) {
	f.Set(a)
	f.Pointer = Point{X: x, Y: y}
}

// SetSelect records a direct palette selection (1-based).
func (f *InputFrame) SetSelect(slot int) {
	f.Set(ActionSelect)
	f.Select = slot
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = Point{}
	f.Select = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	clone.Select = f.Select
	return clone
}
