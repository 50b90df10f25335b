package gamedata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixtureJSON = `{
  "Classes": {
    "Warrior": {
      "description": "Sword and shield.",
      "hp": 30, "mp": 5, "attack": 8, "defense": 6, "magic": 1,
      "gold": 25,
      "inventory": ["Iron Sword", "Health Potion"],
      "motto": "Stand fast"
    },
    "Mage": {"hp": 18, "mp": 25, "attack": 3, "defense": 2, "magic": 9}
  },
  "NPCs": {
    "Quest": {"Elder": {}, "Blacksmith": {"role": "quest"}},
    "Shop": {"Blacksmith": {"role": "shop"}, "Enchantress": {}}
  },
  "Enemies": {
    "Goblin": {
      "description": "Small and mean.",
      "hp": 12, "attack": 4, "defense": 1,
      "gold": 5,
      "rewards": ["Goblin Ear"]
    },
    "Ghost": {"hp": 20, "attack": 3}
  },
  "Attributes": {"stats": ["hp", "attack"], "type": ["weapon", "armor"]},
  "Wear Item": {
    "weapons": {"Iron Sword": {"value": 4}},
    "armor": {"Leather Vest": {"value": 2}}
  },
  "Consumables": {"Health Potion": {"value": 15}},
  "Utility": ["Torch", "Rope"],
  "Rewards": ["Goblin Ear"],
  "Locations": {
    "Town Square": {
      "type": "safe",
      "description": "A quiet square.",
      "neighbors": ["Market", "Forest"],
      "commands": ["look", "shop"],
      "npc": "Blacksmith"
    },
    "Market": {
      "type": "shop",
      "description": "Stalls everywhere.",
      "neighbors": ["Town Square"],
      "commands": ["look", "buy"],
      "npc": {"armory": "Blacksmith", "magic": "Enchantress"}
    },
    "Forest": {
      "type": "danger",
      "description": "Dark trees.",
      "neighbors": ["Town Square"],
      "commands": ["look", "fight"]
    }
  },
  "Shop Inventory": {
    "armoryList": ["Iron Sword", "Leather Vest"],
    "magicList": ["Health Potion"]
  }
}`

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return newEngineFrom(t, fixtureJSON)
}

func newEngineFrom(t *testing.T, content string) *Engine {
	t.Helper()
	store, err := Load(context.Background(), []byte(content), "fixture")
	require.NoError(t, err)
	return NewEngine(store)
}
