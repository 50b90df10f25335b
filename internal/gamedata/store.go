// Package gamedata provides validated access to the game content document.
//
// A Store holds the parsed document; an Engine answers category queries
// and builds players and enemies from named entries.
package gamedata

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gopkg.in/yaml.v3"

	"github.com/fourforfour/eldanialight/data"
	"github.com/fourforfour/eldanialight/internal/telemetry"
)

// Store holds one immutable content document.
type Store struct {
	root   Node
	source string
}

// New creates a store from an already-parsed document tree. The tree is
// copied, so later changes to root do not affect the store.
func New(root *yaml.Node) (*Store, error) {
	return newStore(root, "document")
}

func newStore(root *yaml.Node, source string) (*Store, error) {
	node := wrap(clone(root))
	if node.IsMissing() {
		return nil, &LoadError{Source: source, Err: ErrEmptyDocument}
	}
	if !node.IsMapping() {
		return nil, &LoadError{Source: source, Err: ErrNotMapping}
	}
	if err := checkDuplicateKeys(node.n); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return &Store{root: node, source: source}, nil
}

// checkDuplicateKeys rejects any mapping that declares the same key twice.
func checkDuplicateKeys(n *yaml.Node) error {
	if n.Kind == yaml.MappingNode {
		seen := make(map[string]bool, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if seen[key.Value] {
				if key.Line > 0 {
					return fmt.Errorf("%w: %q at line %d", ErrDuplicateKey, key.Value, key.Line)
				}
				return fmt.Errorf("%w: %q", ErrDuplicateKey, key.Value)
			}
			seen[key.Value] = true
		}
	}
	for _, c := range n.Content {
		if err := checkDuplicateKeys(c); err != nil {
			return err
		}
	}
	return nil
}

// Load parses a JSON (or YAML) document and creates a store from it.
// Content opening with '{' or '[' is read as JSON.
func Load(ctx context.Context, content []byte, source string) (*Store, error) {
	_, span := telemetry.Tracer("gamedata").Start(ctx, "gamedata.load")
	defer span.End()

	span.SetAttributes(
		attribute.String("gamedata.source", source),
		attribute.Int("gamedata.bytes", len(content)),
	)

	doc, err := parse(content)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, &LoadError{Source: source, Err: err}
	}

	store, err := newStore(doc, source)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("gamedata.sections", len(store.root.Keys())))
	return store, nil
}

func parse(content []byte) (*yaml.Node, error) {
	if isJSON(content) {
		return decodeJSON(content)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadFile reads and parses a content document from disk.
func LoadFile(ctx context.Context, path string) (*Store, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return Load(ctx, content, path)
}

var loadDefault = sync.OnceValues(func() (*Store, error) {
	content, err := data.Default()
	if err != nil {
		return nil, &LoadError{Source: "embedded " + data.DefaultFile, Err: err}
	}
	return Load(context.Background(), content, "embedded "+data.DefaultFile)
})

// LoadDefault returns the store for the bundled content document. The
// document is parsed once; later calls share the same store.
func LoadDefault() (*Store, error) {
	return loadDefault()
}

// MustLoadDefault returns the bundled store, panicking on error.
// Use this where the game cannot run without its content.
func MustLoadDefault() *Store {
	store, err := LoadDefault()
	if err != nil {
		panic(fmt.Errorf("bundled game data: %w", err))
	}
	return store
}

// Root returns the document root for navigation. A nil store has a
// missing root, so every lookup against it comes back empty.
func (s *Store) Root() Node {
	if s == nil {
		return Node{}
	}
	return s.root
}

// Source describes where the document came from.
func (s *Store) Source() string {
	if s == nil {
		return ""
	}
	return s.source
}
