// Package game provides the location explorer loop and its state.
package game

// State represents the current explorer state.
type State int

const (
	// StateExplore shows the current location and accepts travel keys.
	StateExplore State = iota
	// StateTalk shows an NPC's dialogue until any key is pressed.
	StateTalk
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateTalk:
		return "talk"
	default:
		return "unknown"
	}
}
