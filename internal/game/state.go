// Package game provides the occupancy rules, the turn controller and the
// interactive session loop.
package game

// State represents the current session state.
type State int

const (
	// StateRunning is the normal mode where every input advances one tick.
	StateRunning State = iota
	// StateQuit means the loop should stop after the current event.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}
