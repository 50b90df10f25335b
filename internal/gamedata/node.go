package gamedata

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Node is a read-only handle on one node of the content document.
// The zero Node is missing; navigating from a missing node yields
// another missing node rather than an error.
type Node struct {
	n *yaml.Node
}

// wrap unwraps document and alias nodes so callers only ever see
// mappings, sequences and scalars.
func wrap(n *yaml.Node) Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return Node{}
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		case 0:
			return Node{}
		default:
			return Node{n: n}
		}
	}
	return Node{}
}

// IsMissing returns true if the node does not exist in the document.
func (n Node) IsMissing() bool { return n.n == nil }

// IsMapping returns true if the node is a keyed mapping.
func (n Node) IsMapping() bool { return n.n != nil && n.n.Kind == yaml.MappingNode }

// IsSequence returns true if the node is an ordered list.
func (n Node) IsSequence() bool { return n.n != nil && n.n.Kind == yaml.SequenceNode }

// IsScalar returns true if the node is a string, number or bool.
func (n Node) IsScalar() bool { return n.n != nil && n.n.Kind == yaml.ScalarNode }

// Path follows mapping keys from this node. Any key that is absent, or
// applied to a non-mapping, produces a missing node.
func (n Node) Path(keys ...string) Node {
	cur := n
	for _, key := range keys {
		cur = cur.child(key)
	}
	return cur
}

func (n Node) child(key string) Node {
	if !n.IsMapping() {
		return Node{}
	}
	for i := 0; i+1 < len(n.n.Content); i += 2 {
		if n.n.Content[i].Value == key {
			return wrap(n.n.Content[i+1])
		}
	}
	return Node{}
}

// Keys returns the key names of a mapping in declaration order.
// Non-mappings have no keys.
func (n Node) Keys() []string {
	if !n.IsMapping() {
		return []string{}
	}
	keys := make([]string, 0, len(n.n.Content)/2)
	for i := 0; i+1 < len(n.n.Content); i += 2 {
		keys = append(keys, n.n.Content[i].Value)
	}
	return keys
}

// Elements returns the children of a container: the items of a sequence,
// or the values of a mapping. Scalars and missing nodes have none.
func (n Node) Elements() []Node {
	if n.n == nil {
		return []Node{}
	}
	switch n.n.Kind {
	case yaml.SequenceNode:
		out := make([]Node, 0, len(n.n.Content))
		for _, c := range n.n.Content {
			out = append(out, wrap(c))
		}
		return out
	case yaml.MappingNode:
		out := make([]Node, 0, len(n.n.Content)/2)
		for i := 1; i < len(n.n.Content); i += 2 {
			out = append(out, wrap(n.n.Content[i]))
		}
		return out
	default:
		return []Node{}
	}
}

// Text returns the value of a scalar, or "" for anything else.
func (n Node) Text() string {
	if !n.IsScalar() {
		return ""
	}
	return n.n.Value
}

// Strings returns the text of every element, in order.
func (n Node) Strings() []string {
	elems := n.Elements()
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		out = append(out, e.Text())
	}
	return out
}

// Int decodes a scalar integer.
func (n Node) Int() (int, error) {
	if !n.IsScalar() {
		return 0, fmt.Errorf("expected integer scalar, got %s", n.kind())
	}
	var v int
	if err := n.n.Decode(&v); err != nil {
		return 0, err
	}
	return v, nil
}

// Encode renders the node as block-style YAML, whatever style the
// source document used.
func (n Node) Encode() ([]byte, error) {
	if n.n == nil {
		return []byte{}, nil
	}
	c := clone(n.n)
	clearStyle(c)
	return yaml.Marshal(c)
}

func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}

func (n Node) kind() string {
	if n.n == nil {
		return "missing node"
	}
	switch n.n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	default:
		return "unknown node"
	}
}

// clone deep-copies a parsed tree so the store owns its document outright.
func clone(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	out := *n
	if n.Alias != nil {
		out.Alias = clone(n.Alias)
	}
	if len(n.Content) > 0 {
		out.Content = make([]*yaml.Node, len(n.Content))
		for i, c := range n.Content {
			out.Content[i] = clone(c)
		}
	}
	return &out
}
