package gamedata

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("valid document", func(t *testing.T) {
		store, err := Load(ctx, []byte(fixtureJSON), "fixture")
		require.NoError(t, err)
		assert.Equal(t, "fixture", store.Source())
		assert.Equal(t, []string{
			"Classes", "NPCs", "Enemies", "Attributes", "Wear Item", "Consumables",
			"Utility", "Rewards", "Locations", "Shop Inventory",
		}, store.Root().Keys())
	})

	t.Run("yaml document", func(t *testing.T) {
		store, err := Load(ctx, []byte("Utility:\n  - Torch\n  - Rope\n"), "inline")
		require.NoError(t, err)
		assert.Equal(t, []string{"Torch", "Rope"}, store.Root().Path("Utility").Strings())
	})

	t.Run("json escapes", func(t *testing.T) {
		store, err := Load(ctx, []byte(`{"Utility": ["Bow\/Arrow", "Caf\u00e9", "Tab\tbed"]}`), "escapes")
		require.NoError(t, err)
		assert.Equal(t, []string{"Bow/Arrow", "Café", "Tab\tbed"}, store.Root().Path("Utility").Strings())
	})

	t.Run("json keeps key order and scalar kinds", func(t *testing.T) {
		store, err := Load(ctx, []byte(`{"Zeta": {"hp": 10, "gold": "10", "rate": 1.5, "boss": true, "npc": null}, "Alpha": []}`), "kinds")
		require.NoError(t, err)
		assert.Equal(t, []string{"Zeta", "Alpha"}, store.Root().Keys())

		zeta := store.Root().Path("Zeta")
		assert.Equal(t, []string{"hp", "gold", "rate", "boss", "npc"}, zeta.Keys())
		hp, err := zeta.Path("hp").Int()
		require.NoError(t, err)
		assert.Equal(t, 10, hp)
		_, err = zeta.Path("gold").Int()
		assert.Error(t, err, "quoted numbers stay strings")
		_, err = zeta.Path("rate").Int()
		assert.Error(t, err)
	})

	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"empty", "", ErrEmptyDocument},
		{"duplicate json key", `{"Utility": ["A"], "Utility": ["B"]}`, ErrDuplicateKey},
		{"duplicate nested key", `{"Classes": {"Warrior": {}, "Warrior": {}}}`, ErrDuplicateKey},
		{"duplicate yaml key", "Utility: [A]\nUtility: [B]\n", ErrDuplicateKey},
		{"whitespace", "  \n", ErrEmptyDocument},
		{"sequence root", `["Classes"]`, ErrNotMapping},
		{"scalar root", `"Classes"`, ErrNotMapping},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(ctx, []byte(tt.content), "inline")
			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, "inline", loadErr.Source)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	for _, content := range []string{`{"Classes": {`, `{"Classes" 1}`, `{"Classes": {}} {}`, `[1, 2`} {
		t.Run("malformed "+content, func(t *testing.T) {
			_, err := Load(ctx, []byte(content), "broken.json")
			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Contains(t, err.Error(), "broken.json")
		})
	}
}

func TestLoadFile(t *testing.T) {
	ctx := context.Background()

	t.Run("reads from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.json")
		require.NoError(t, os.WriteFile(path, []byte(fixtureJSON), 0o644))

		store, err := LoadFile(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, path, store.Source())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(ctx, filepath.Join(t.TempDir(), "nope.json"))
		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})
}

func TestNew(t *testing.T) {
	t.Run("nil root", func(t *testing.T) {
		_, err := New(nil)
		assert.ErrorIs(t, err, ErrEmptyDocument)
	})

	t.Run("store owns a copy of the tree", func(t *testing.T) {
		var doc yaml.Node
		require.NoError(t, yaml.Unmarshal([]byte(`{"Utility": ["Torch"]}`), &doc))

		store, err := New(&doc)
		require.NoError(t, err)

		// Rewrite the caller's tree after the store was built.
		doc.Content[0].Content[1].Content[0].Value = "Rope"

		assert.Equal(t, []string{"Torch"}, store.Root().Path("Utility").Strings())
	})
}

func TestLoadDefault(t *testing.T) {
	first, err := LoadDefault()
	require.NoError(t, err)
	second := MustLoadDefault()

	assert.Same(t, first, second, "bundled document should be parsed once")

	engine := NewEngine(first)
	for _, c := range Categories() {
		assert.NotEmpty(t, engine.List(c), "bundled content has no %s", c)
	}
}
