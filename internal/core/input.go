package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - push wind upward
	ActionDown           // S, Down arrow - push wind downward
	ActionLeft           // A, Left arrow - push wind left
	ActionRight          // D, Right arrow - push wind right
	ActionConfirm        // Enter, Space - start game / confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionMute           // M - toggle sound
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
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionMute:
		return "Mute"
	default:
		return "Unknown"
	}
}

// PointerKind classifies a pointer gesture.
type PointerKind int

const (
	PointerNone PointerKind = iota
	PointerTap              // Click or tap at a position
	PointerDrag             // Pointer moved while held
	PointerRelease          // Pointer lifted after a drag
)

// Pointer is a pointer gesture in normalized screen coordinates.
// X and Y are in [0, 1]; DX and DY are the drag delta since the press, in the same units.
type Pointer struct {
	Kind PointerKind
	X, Y float64
	// Primary is true for mouse clicks and false for touch-style taps.
	Primary bool
	DX, DY  float64
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Released marks held actions whose key went up this frame.
	Released map[Action]bool

	// Pointer is the last pointer gesture of the frame, if any.
	Pointer *Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions:  make(map[Action]bool),
		Released: make(map[Action]bool),
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

// Release marks a held action as released for this frame.
func (f *InputFrame) Release(a Action) {
	if f.Released == nil {
		f.Released = make(map[Action]bool)
	}
	f.Released[a] = true
}

// WasReleased returns true if the given action was released this frame.
func (f InputFrame) WasReleased(a Action) bool {
	if f.Released == nil {
		return false
	}
	return f.Released[a]
}

// SetPointer records a pointer gesture for this frame.
// A later gesture replaces an earlier one, except that a tap is never
// overwritten by a drag in the same frame.
func (f *InputFrame) SetPointer(p Pointer) {
	if f.Pointer != nil && f.Pointer.Kind == PointerTap && p.Kind == PointerDrag {
		return
	}
	f.Pointer = &p
}

// Empty reports whether nothing was pressed, released or pointed this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Released) == 0 && f.Pointer == nil
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Released {
		delete(f.Released, k)
	}
	f.Pointer = nil
}
