// Package game provides the word-tracing session and the terminal game loop.
package game

// State represents the current selection state of a session.
type State int

const (
	// StateIdle means no word is being traced.
	StateIdle State = iota
	// StateSelecting means the selection path holds at least one cell.
	StateSelecting
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelecting:
		return "selecting"
	default:
		return "unknown"
	}
}
