package vdom

import "github.com/charlescarrari/moon/pkg/host"

// TextType is the reserved type for text-leaf nodes.
const TextType = host.TextTag

// Node is the virtual tree node. An element node carries a tag in Type and
// its subtree in Children; a text leaf carries TextType and its literal text
// in Value. For elements, Value is the concatenation of the children's
// values, kept for diagnostics and serialization, not for rendering.
type Node struct {
	Type     string            // Tag name, or TextType for a text leaf
	Value    string            // Text content (leaf) or derived child text (element)
	Attrs    map[string]string // Attribute name -> value
	Children []*Node           // Ordered; position drives reconciliation
	Meta     *Metadata         // Render metadata, nil treated as defaults
}

// Metadata is per-node render metadata.
type Metadata struct {
	// ShouldRender gates reconciliation of the node's entire subtree.
	ShouldRender bool

	// Listeners maps event-type names to handlers, attached in order
	// when the node is materialized.
	Listeners map[string][]host.Handler
}

// DefaultMetadata returns the metadata applied when none is given at
// construction: rendering enabled, no listeners.
func DefaultMetadata() *Metadata {
	return &Metadata{
		ShouldRender: true,
		Listeners:    make(map[string][]host.Handler),
	}
}

// IsText reports whether the node is a text leaf.
func (n *Node) IsText() bool {
	return n.Type == TextType
}
