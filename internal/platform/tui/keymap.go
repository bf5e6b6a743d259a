package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zombie-run/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "up", "w", "k", " ":
		return core.ActionJump, false
	}

	return core.ActionNone, false
}

// HoldState turns key presses into held directions.
// Terminals deliver presses and auto-repeat but never releases, so a
// direction stays held for a few ticks after its last press.
type HoldState struct {
	holdTicks int
	left      int // Ticks of hold remaining
	right     int
}

// NewHoldState creates a tracker that keeps a press alive for holdTicks ticks.
func NewHoldState(holdTicks int) HoldState {
	if holdTicks <= 0 {
		holdTicks = 1
	}
	return HoldState{holdTicks: holdTicks}
}

// Press records a press of a direction. The opposite direction is released.
func (h *HoldState) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left = h.holdTicks
		h.right = 0
	case core.ActionRight:
		h.right = h.holdTicks
		h.left = 0
	}
}

// Apply sets held directions on the frame and counts one tick down.
func (h *HoldState) Apply(frame *core.InputFrame) {
	if h.left > 0 {
		frame.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		frame.Set(core.ActionRight)
		h.right--
	}
}

// Release drops both directions.
func (h *HoldState) Release() {
	h.left, h.right = 0, 0
}
