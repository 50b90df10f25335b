package game

import (
	"errors"
	"fmt"

	"github.com/fourforfour/eldanialight/internal/world"
)

var ErrCannotTravel = errors.New("cannot travel there")

// Explorer tracks where the player is and where they have been.
type Explorer struct {
	world   *world.Map
	current string
	history []string
}

// NewExplorer places the player at start. An empty start means the first
// location in the document.
func NewExplorer(m *world.Map, start string) (*Explorer, error) {
	if start == "" {
		names := m.Names()
		if len(names) == 0 {
			return nil, fmt.Errorf("%w: world has no locations", world.ErrUnknownLocation)
		}
		start = names[0]
	}
	if _, ok := m.Get(start); !ok {
		return nil, fmt.Errorf("%w: %q", world.ErrUnknownLocation, start)
	}
	return &Explorer{world: m, current: start}, nil
}

// Current returns the location the player stands in.
func (e *Explorer) Current() *world.Location {
	loc, _ := e.world.Get(e.current)
	return loc
}

// Travel moves to a neighboring location.
func (e *Explorer) Travel(to string) error {
	if !e.world.CanTravel(e.current, to) {
		return fmt.Errorf("%w: %q is not reachable from %q", ErrCannotTravel, to, e.current)
	}
	e.history = append(e.history, e.current)
	e.current = to
	return nil
}

// TravelIndex moves to the i-th neighbor (0-based) of the current location.
func (e *Explorer) TravelIndex(i int) error {
	neighbors := e.Current().Neighbors
	if i < 0 || i >= len(neighbors) {
		return fmt.Errorf("%w: no exit %d", ErrCannotTravel, i+1)
	}
	return e.Travel(neighbors[i])
}

// CanGoBack returns true if there is a previous location to return to.
func (e *Explorer) CanGoBack() bool {
	return len(e.history) > 0
}

// Back returns to the previous location. It reports false at the start.
func (e *Explorer) Back() bool {
	if len(e.history) == 0 {
		return false
	}
	last := len(e.history) - 1
	e.current = e.history[last]
	e.history = e.history[:last]
	return true
}

// Steps returns how many moves separate the player from the start.
func (e *Explorer) Steps() int {
	return len(e.history)
}
