package core

import "fmt"

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventScored    EventKind = iota // An obstacle was survived
	EventBonus                      // A bonus item appeared
	EventGameOver                   // The player died
	EventRestarted                  // A new round began
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventScored:
		return "scored"
	case EventBonus:
		return "bonus"
	case EventGameOver:
		return "game_over"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is emitted by games so platforms can log or persist gameplay
// milestones without inspecting game internals.
type Event struct {
	Kind   EventKind
	TimeMs float64   // Simulated timestamp of the event
	State  GameState // State right after the event
}

// String formats the event for logs.
func (e Event) String() string {
	return fmt.Sprintf("%s at %.0fms (score=%d bonus=%d)", e.Kind, e.TimeMs, e.State.Score, e.State.Bonus)
}
