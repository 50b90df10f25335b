package gamedata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeNavigation(t *testing.T) {
	store, err := Load(context.Background(), []byte(fixtureJSON), "fixture")
	require.NoError(t, err)
	root := store.Root()

	t.Run("missing paths stay missing", func(t *testing.T) {
		n := root.Path("Nope", "Deeper", "Still")
		assert.True(t, n.IsMissing())
		assert.Empty(t, n.Keys())
		assert.Empty(t, n.Elements())
		assert.Empty(t, n.Strings())
		assert.Equal(t, "", n.Text())
	})

	t.Run("path through a scalar is missing", func(t *testing.T) {
		assert.True(t, root.Path("Locations", "Town Square", "type", "x").IsMissing())
	})

	t.Run("keys keep declaration order", func(t *testing.T) {
		assert.Equal(t, []string{"Town Square", "Market", "Forest"}, root.Path("Locations").Keys())
	})

	t.Run("elements of a mapping are its values", func(t *testing.T) {
		groups := root.Path("NPCs").Elements()
		require.Len(t, groups, 2)
		assert.Equal(t, []string{"Elder", "Blacksmith"}, groups[0].Keys())
	})

	t.Run("strings of a mapping with nested values are blank", func(t *testing.T) {
		assert.Equal(t, []string{"", ""}, root.Path("Classes").Strings())
	})

	t.Run("int", func(t *testing.T) {
		v, err := root.Path("Classes", "Warrior", "hp").Int()
		require.NoError(t, err)
		assert.Equal(t, 30, v)

		_, err = root.Path("Classes", "Warrior", "description").Int()
		assert.Error(t, err)

		_, err = root.Path("Classes", "Warrior", "inventory").Int()
		assert.Error(t, err)
	})

	t.Run("encode", func(t *testing.T) {
		out, err := root.Path("Utility").Encode()
		require.NoError(t, err)
		assert.Contains(t, string(out), "Torch")

		out, err = root.Path("Missing").Encode()
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}
