package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paper-plane/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "m":
		return core.ActionMute, false
	}
	return core.ActionNone, false
}

// IsDirection reports whether an action is one of the held wind directions.
func IsDirection(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

// pointerTracker turns raw mouse events into taps, drags and releases.
// Terminals report cell coordinates, so positions are normalized by the
// size of the playfield area below the HUD.
type pointerTracker struct {
	pressed      bool
	dragging     bool
	startX       int
	startY       int
	button       tea.MouseButton
	top          int // Rows above the playfield
	dragDistance int // Cells of motion before a press becomes a drag
}

func newPointerTracker(top int) pointerTracker {
	return pointerTracker{top: top, dragDistance: 1}
}

// Map converts a mouse message to a pointer gesture for a w x h screen.
// ok is false when the event produces no gesture.
func (pt *pointerTracker) Map(msg tea.MouseMsg, w, h int) (core.Pointer, bool) {
	h -= pt.top
	if w <= 0 || h <= 0 {
		return core.Pointer{}, false
	}
	nx := (float64(msg.X) + 0.5) / float64(w)
	ny := (float64(msg.Y-pt.top) + 0.5) / float64(h)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonRight {
			return core.Pointer{}, false
		}
		pt.pressed = true
		pt.dragging = false
		pt.startX, pt.startY = msg.X, msg.Y
		pt.button = msg.Button
		return core.Pointer{}, false

	case tea.MouseActionMotion:
		if !pt.pressed {
			return core.Pointer{}, false
		}
		dx, dy := msg.X-pt.startX, msg.Y-pt.startY
		if !pt.dragging && abs(dx) < pt.dragDistance && abs(dy) < pt.dragDistance {
			return core.Pointer{}, false
		}
		pt.dragging = true
		return core.Pointer{
			Kind: core.PointerDrag,
			X:    nx,
			Y:    ny,
			DX:   float64(dx) / float64(w),
			DY:   float64(dy) / float64(h),
		}, true

	case tea.MouseActionRelease:
		if !pt.pressed {
			return core.Pointer{}, false
		}
		wasDrag := pt.dragging
		pt.pressed = false
		pt.dragging = false
		if wasDrag {
			return core.Pointer{Kind: core.PointerRelease, X: nx, Y: ny}, true
		}
		// A press and release without motion is a tap. The left button is a
		// full gust, the right button a light one.
		return core.Pointer{
			Kind:    core.PointerTap,
			X:       nx,
			Y:       ny,
			Primary: pt.button == tea.MouseButtonLeft,
		}, true
	}
	return core.Pointer{}, false
}

// heldKeys emulates key-up events. Terminals only report presses, and a
// held key repeats, so a direction counts as released once it has not
// repeated for releaseTicks ticks.
type heldKeys struct {
	lastSeen     map[core.Action]int
	releaseTicks int
}

func newHeldKeys(releaseTicks int) heldKeys {
	if releaseTicks <= 0 {
		releaseTicks = 1
	}
	return heldKeys{lastSeen: make(map[core.Action]int), releaseTicks: releaseTicks}
}

// Press records a press of a direction at the given tick. The opposite
// direction is forgotten so its pending release cannot cancel this one.
func (hk *heldKeys) Press(a core.Action, tick int) {
	delete(hk.lastSeen, opposite(a))
	hk.lastSeen[a] = tick
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// Expire adds releases to frame for directions that stopped repeating.
func (hk *heldKeys) Expire(tick int, frame *core.InputFrame) {
	for a, seen := range hk.lastSeen {
		if tick-seen >= hk.releaseTicks {
			frame.Release(a)
			delete(hk.lastSeen, a)
		}
	}
}

// Reset forgets all held keys.
func (hk *heldKeys) Reset() {
	clear(hk.lastSeen)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
	MenuActionRename
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	case "n":
		return MenuActionRename
	}
	return MenuActionNone
}
