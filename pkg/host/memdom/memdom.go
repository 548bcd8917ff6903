package memdom

import (
	"strings"

	"github.com/charlescarrari/moon/pkg/host"
)

// Document is an in-memory host.Document.
type Document struct{}

// NewDocument creates a new in-memory document.
func NewDocument() *Document {
	return &Document{}
}

// CreateElement creates a detached element node.
func (d *Document) CreateElement(tag string) host.Node {
	return &Node{
		tag:   tag,
		attrs: make(map[string]string),
	}
}

// CreateText creates a detached text node.
func (d *Document) CreateText(text string) host.Node {
	return &Node{
		tag:  host.TextTag,
		text: text,
	}
}

// Node is an in-memory host.Node covering both elements and text nodes.
type Node struct {
	tag       string
	text      string
	attrs     map[string]string
	children  []host.Node
	listeners map[string][]host.Handler
}

// Tag returns the element tag, or host.TextTag for text nodes.
func (n *Node) Tag() string { return n.tag }

// IsText reports whether this is a text node.
func (n *Node) IsText() bool { return n.tag == host.TextTag }

// Text returns the text content ("" for elements).
func (n *Node) Text() string { return n.text }

// SetText replaces the text content.
func (n *Node) SetText(text string) { n.text = text }

// Attributes returns a fresh copy of the current attribute set.
func (n *Node) Attributes() map[string]string {
	out := make(map[string]string, len(n.attrs))
	for k, v := range n.attrs {
		out[k] = v
	}
	return out
}

// SetAttribute sets or replaces an attribute.
func (n *Node) SetAttribute(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
}

// RemoveAttribute removes an attribute if present.
func (n *Node) RemoveAttribute(name string) {
	delete(n.attrs, name)
}

// Children returns the current children in order.
func (n *Node) Children() []host.Node {
	out := make([]host.Node, len(n.children))
	copy(out, n.children)
	return out
}

// AppendChild appends a child at the end.
func (n *Node) AppendChild(child host.Node) {
	n.children = append(n.children, child)
}

// RemoveChild removes a child if present.
func (n *Node) RemoveChild(child host.Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// ReplaceChild replaces oldChild with newChild in place.
func (n *Node) ReplaceChild(newChild, oldChild host.Node) {
	for i, c := range n.children {
		if c == oldChild {
			n.children[i] = newChild
			return
		}
	}
}

// AddEventListener attaches a handler for the given event type.
func (n *Node) AddEventListener(event string, h host.Handler) {
	if n.listeners == nil {
		n.listeners = make(map[string][]host.Handler)
	}
	n.listeners[event] = append(n.listeners[event], h)
}

// Fire delivers an event to this node's listeners in registration order.
// It does not bubble.
func (n *Node) Fire(event string, detail map[string]any) {
	for _, h := range n.listeners[event] {
		h(host.Event{Type: event, Target: n, Detail: detail})
	}
}

// ListenerCount returns the number of handlers attached for the event type.
func (n *Node) ListenerCount(event string) int {
	return len(n.listeners[event])
}

// String returns a compact debug representation of the subtree.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n.IsText() {
		b.WriteString(n.text)
		return
	}
	b.WriteByte('<')
	b.WriteString(n.tag)
	b.WriteByte('>')
	for _, c := range n.children {
		if mc, ok := c.(*Node); ok {
			mc.write(b)
		}
	}
	b.WriteString("</")
	b.WriteString(n.tag)
	b.WriteByte('>')
}
