package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// Enemy is a combat-ready hostile built from an enemy entry.
type Enemy struct {
	ID          uuid.UUID // Distinguishes two spawns of the same entry
	Name        string    // Entry name (e.g., "Goblin")
	Description string

	HP, MaxHP int
	Attack    int
	Defense   int
	Magic     int
	Gold      int      // Gold dropped on defeat
	Rewards   []string // Reward item names dropped on defeat
}

// IsAlive returns true if the enemy has HP remaining.
func (e *Enemy) IsAlive() bool { return e.HP > 0 }

// String returns a one-line stat summary.
func (e *Enemy) String() string {
	return fmt.Sprintf("%s HP %d/%d ATK %d DEF %d MAG %d Gold %d",
		e.Name, e.HP, e.MaxHP, e.Attack, e.Defense, e.Magic, e.Gold)
}
