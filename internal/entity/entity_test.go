package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer(t *testing.T) {
	p := &Player{Class: "Rogue", HP: 22, MaxHP: 22, MP: 10, MaxMP: 10, Attack: 6, Defense: 4, Magic: 3, Gold: 40,
		Inventory: []string{"Dagger"}}

	assert.True(t, p.IsAlive())
	assert.True(t, p.HasItem("Dagger"))
	assert.False(t, p.HasItem("dagger"))
	assert.Equal(t, "Rogue HP 22/22 MP 10/10 ATK 6 DEF 4 MAG 3 Gold 40", p.String())

	p.HP = 0
	assert.False(t, p.IsAlive())
}

func TestEnemy(t *testing.T) {
	e := &Enemy{Name: "Wolf", HP: 15, MaxHP: 15, Attack: 5, Defense: 2}

	assert.True(t, e.IsAlive())
	assert.Equal(t, "Wolf HP 15/15 ATK 5 DEF 2 MAG 0 Gold 0", e.String())
}
