// Package world builds the travel map from the content document's locations.
package world

import "slices"

// LocationType classifies a location.
type LocationType string

const (
	// TypeSafe is a location with no hostiles.
	TypeSafe LocationType = "safe"
	// TypeShop is a location where items can be bought and sold.
	TypeShop LocationType = "shop"
	// TypeDanger is a location where enemies may appear.
	TypeDanger LocationType = "danger"
)

// IsHostile returns true if enemies can be met here.
func (t LocationType) IsHostile() bool {
	return t == TypeDanger
}

// Location is one place the player can stand.
type Location struct {
	Name        string
	Type        LocationType
	Description string
	Neighbors   []string // Names of adjacent locations, in document order
	Commands    []string // Commands available here
	NPCs        []string // NPC names referenced by the npc field
}

// HasCommand returns true if the command is available here.
func (l *Location) HasCommand(cmd string) bool {
	return slices.Contains(l.Commands, cmd)
}

// HasNeighbor returns true if name is directly reachable from here.
func (l *Location) HasNeighbor(name string) bool {
	return slices.Contains(l.Neighbors, name)
}
