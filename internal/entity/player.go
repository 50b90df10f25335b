// Package entity defines the live objects built from game content.
package entity

import (
	"fmt"
	"slices"
)

// Player is a playable character created from a class entry.
type Player struct {
	Class       string // Class entry the player was built from (e.g., "Warrior")
	Description string

	HP, MaxHP int
	MP, MaxMP int
	Attack    int
	Defense   int
	Magic     int
	Gold      int
	Inventory []string // Item names carried at the start
}

// IsAlive returns true if the player has HP remaining.
func (p *Player) IsAlive() bool { return p.HP > 0 }

// HasItem returns true if the inventory holds the named item.
func (p *Player) HasItem(name string) bool {
	return slices.Contains(p.Inventory, name)
}

// String returns a one-line stat summary.
func (p *Player) String() string {
	return fmt.Sprintf("%s HP %d/%d MP %d/%d ATK %d DEF %d MAG %d Gold %d",
		p.Class, p.HP, p.MaxHP, p.MP, p.MaxMP, p.Attack, p.Defense, p.Magic, p.Gold)
}
