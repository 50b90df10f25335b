package gamedata

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	engine := newTestEngine(t)

	want := map[Category][]string{
		CategoryClasses:      {"Warrior", "Mage"},
		CategoryNPCs:         {"Elder", "Blacksmith", "Blacksmith", "Enchantress"},
		CategoryEnemies:      {"Goblin", "Ghost"},
		CategoryItemStats:    {"hp", "attack"},
		CategoryItemTypes:    {"weapon", "armor"},
		CategoryWeapons:      {"Iron Sword"},
		CategoryArmor:        {"Leather Vest"},
		CategoryConsumables:  {"Health Potion"},
		CategoryUtilityItems: {"Torch", "Rope"},
		CategoryRewardItems:  {"Goblin Ear"},
		CategoryLocations:    {"Town Square", "Market", "Forest"},
		CategoryArmoryList:   {"Iron Sword", "Leather Vest"},
		CategoryMagicList:    {"Health Potion"},
	}

	for _, c := range Categories() {
		t.Run(string(c), func(t *testing.T) {
			assert.Equal(t, want[c], engine.List(c))
		})
	}
}

func TestListIsStable(t *testing.T) {
	engine := newTestEngine(t)

	for _, c := range Categories() {
		first := engine.List(c)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, engine.List(c), "%s changed between calls", c)
		}
	}
}

func TestListCallerCannotCorruptDocument(t *testing.T) {
	engine := newTestEngine(t)

	names := engine.Weapons()
	names[0] = "Wooden Spoon"

	assert.Equal(t, []string{"Iron Sword"}, engine.Weapons())
	assert.False(t, engine.IsWeapon("Wooden Spoon"))
}

func TestListMissingSections(t *testing.T) {
	engine := newEngineFrom(t, `{"Classes": {}}`)

	for _, c := range Categories() {
		names := engine.List(c)
		assert.NotNil(t, names)
		assert.Empty(t, names, c)
	}
	assert.Empty(t, engine.List(Category("Spells")))
}

func TestExistsMatchesList(t *testing.T) {
	engine := newTestEngine(t)
	probes := []string{"Warrior", "Rogue", "Blacksmith", "Goblin", "hp", "weapon", "Iron Sword",
		"Leather Vest", "Health Potion", "Torch", "Goblin Ear", "Town Square", "", "warrior"}

	for _, c := range Categories() {
		list := engine.List(c)
		for _, name := range list {
			assert.True(t, engine.Exists(c, name), "%s should contain %q", c, name)
		}
		for _, name := range probes {
			assert.Equal(t, contains(list, name), engine.Exists(c, name), "%s / %q", c, name)
		}
	}
}

func contains(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}

func TestPlayerClassesScenario(t *testing.T) {
	engine := newTestEngine(t)

	assert.Equal(t, []string{"Warrior", "Mage"}, engine.PlayerClasses())
	assert.True(t, engine.IsPlayerClass("Mage"))
	assert.False(t, engine.IsPlayerClass("Rogue"))
	assert.False(t, engine.IsPlayerClass("warrior"), "names are case-sensitive")
}

func TestNestedKeysKeepDuplicates(t *testing.T) {
	engine := newTestEngine(t)

	npcs := engine.NPCs()
	count := 0
	for _, n := range npcs {
		if n == "Blacksmith" {
			count++
		}
	}
	assert.Equal(t, 2, count)
	assert.True(t, engine.IsNPC("Blacksmith"))

	// The first group that defines the name wins.
	node, err := engine.NPC("Blacksmith")
	require.NoError(t, err)
	assert.Equal(t, "quest", node.Path("role").Text())
}

func TestFetch(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("key-set entry", func(t *testing.T) {
		node, err := engine.Weapon("Iron Sword")
		require.NoError(t, err)
		v, err := node.Path("value").Int()
		require.NoError(t, err)
		assert.Equal(t, 4, v)
	})

	t.Run("list element", func(t *testing.T) {
		node, err := engine.Fetch(CategoryUtilityItems, "Rope")
		require.NoError(t, err)
		assert.Equal(t, "Rope", node.Text())
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := engine.Fetch(Category("Spells"), "Fireball")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestEntryAccessorsRejectUnknownNames(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name     string
		call     func() error
		category Category
		reason   string
	}{
		{"enemy", func() error { _, err := engine.Enemy("nonexistent"); return err }, CategoryEnemies, "please input a valid enemy"},
		{"weapon", func() error { _, err := engine.Weapon("nonexistent"); return err }, CategoryWeapons, "please input a valid weapon"},
		{"armor", func() error { _, err := engine.Armor("nonexistent"); return err }, CategoryArmor, "please input a valid armor"},
		{"consumable", func() error { _, err := engine.Consumable("nonexistent"); return err }, CategoryConsumables, "please input a valid consumable"},
		{"npc", func() error { _, err := engine.NPC("nonexistent"); return err }, CategoryNPCs, "please input a valid NPC"},
		{"location", func() error { _, err := engine.Location("nonexistent"); return err }, CategoryLocations, "please input a valid location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var nf *NotFoundError
			require.True(t, errors.As(err, &nf), "expected NotFoundError, got %v", err)
			assert.Equal(t, tt.category, nf.Category)
			assert.Equal(t, "nonexistent", nf.Name)
			assert.Equal(t, tt.reason, nf.Reason)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestLocationScenario(t *testing.T) {
	engine := newTestEngine(t)

	locType, err := engine.LocationType("Town Square")
	require.NoError(t, err)
	assert.Equal(t, "safe", locType)

	desc, err := engine.LocationDescription("Town Square")
	require.NoError(t, err)
	assert.Equal(t, "A quiet square.", desc)

	neighbors, err := engine.LocationNeighbors("Town Square")
	require.NoError(t, err)
	assert.Equal(t, []string{"Market", "Forest"}, neighbors)

	commands, err := engine.LocationCommands("Town Square")
	require.NoError(t, err)
	assert.Equal(t, []string{"look", "shop"}, commands)

	npc, err := engine.LocationNPC("Town Square")
	require.NoError(t, err)
	assert.Equal(t, "Blacksmith", npc.Text())

	t.Run("nested npc node", func(t *testing.T) {
		npc, err := engine.LocationNPC("Market")
		require.NoError(t, err)
		assert.True(t, npc.IsMapping())
		assert.Equal(t, []string{"Blacksmith", "Enchantress"}, npc.Strings())
	})

	t.Run("absent npc field", func(t *testing.T) {
		npc, err := engine.LocationNPC("Forest")
		require.NoError(t, err)
		assert.True(t, npc.IsMissing())
	})
}

func TestLocationAccessorsRejectUnknownLocation(t *testing.T) {
	engine := newTestEngine(t)

	calls := map[string]func(string) error{
		"type":        func(n string) error { _, err := engine.LocationType(n); return err },
		"description": func(n string) error { _, err := engine.LocationDescription(n); return err },
		"neighbors":   func(n string) error { _, err := engine.LocationNeighbors(n); return err },
		"commands":    func(n string) error { _, err := engine.LocationCommands(n); return err },
		"npc":         func(n string) error { _, err := engine.LocationNPC(n); return err },
	}

	for field, call := range calls {
		t.Run(field, func(t *testing.T) {
			err := call("Atlantis")
			var nf *NotFoundError
			require.ErrorAs(t, err, &nf)
			assert.Equal(t, CategoryLocations, nf.Category)
			assert.Contains(t, err.Error(), "valid location")
		})
	}
}

func TestListAccessors(t *testing.T) {
	engine := newTestEngine(t)

	assert.Equal(t, []string{"Goblin", "Ghost"}, engine.Enemies())
	assert.True(t, engine.IsEnemy("Ghost"))
	assert.Equal(t, []string{"hp", "attack"}, engine.ItemStats())
	assert.True(t, engine.IsItemStat("attack"))
	assert.False(t, engine.IsItemStat("luck"))
	assert.Equal(t, []string{"weapon", "armor"}, engine.ItemTypes())
	assert.True(t, engine.IsItemType("armor"))
	assert.Equal(t, []string{"Leather Vest"}, engine.Armors())
	assert.True(t, engine.IsArmor("Leather Vest"))
	assert.Equal(t, []string{"Health Potion"}, engine.Consumables())
	assert.True(t, engine.IsConsumable("Health Potion"))
	assert.Equal(t, []string{"Torch", "Rope"}, engine.UtilityItems())
	assert.True(t, engine.IsUtilityItem("Torch"))
	assert.Equal(t, []string{"Goblin Ear"}, engine.RewardItems())
	assert.True(t, engine.IsRewardItem("Goblin Ear"))
	assert.False(t, engine.IsRewardItem("Torch"))
	assert.Equal(t, []string{"Town Square", "Market", "Forest"}, engine.Locations())
	assert.True(t, engine.IsLocation("Forest"))
	assert.Equal(t, []string{"Iron Sword", "Leather Vest"}, engine.ArmoryList())
	assert.Equal(t, []string{"Health Potion"}, engine.MagicList())
}

func TestNilStoreIsEmpty(t *testing.T) {
	engine := NewEngine(nil, WithLogger(slog.New(slog.DiscardHandler)))

	assert.Empty(t, engine.PlayerClasses())
	assert.False(t, engine.IsLocation("Town Square"))

	_, err := engine.Weapon("Dagger")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = engine.NewEnemy(context.Background(), "Goblin")
	assert.ErrorIs(t, err, ErrNotFound)
}
