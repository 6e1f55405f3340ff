// Package game runs an interactive solve or design session in the terminal.
package game

// State represents the current session state.
type State int

const (
	// StateSolving lets the player paint walls and marks.
	StateSolving State = iota
	// StateSolved is reached once the board is valid; painting stops.
	StateSolved
	// StateDesign edits the answer itself with the design brushes.
	StateDesign
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateSolving:
		return "solving"
	case StateSolved:
		return "solved"
	case StateDesign:
		return "design"
	default:
		return "unknown"
	}
}
