package control

import "fmt"

// State is the lifecycle state of a Controller
type State int

const (
	Uninitialized State = iota // No scene attached
	Ready                      // Scene attached, not ticking
	Animating                  // Tick advances the channels
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Animating:
		return "animating"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
