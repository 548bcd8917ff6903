package host

// TextTag is the tag reported by text nodes.
const TextTag = "#text"

// Document creates live nodes. It is the factory half of the live-tree
// protocol; the reconciler never constructs live nodes any other way.
type Document interface {
	// CreateElement creates a detached element with the given tag.
	CreateElement(tag string) Node

	// CreateText creates a detached text node with the given content.
	CreateText(text string) Node
}

// Node is a single live node, element or text. Implementations back this
// with whatever rendering surface they have; an in-memory tree is enough
// for the reconciler to operate.
type Node interface {
	// Tag returns the node's tag name, or TextTag for text nodes.
	Tag() string

	// IsText reports whether this is a text node.
	IsText() bool

	// Text returns the text content of a text node ("" for elements).
	Text() string

	// SetText replaces the text content of a text node.
	SetText(text string)

	// Attributes returns a fresh copy of the node's current attribute set.
	// Text nodes return an empty map.
	Attributes() map[string]string

	// SetAttribute sets or replaces an attribute.
	SetAttribute(name, value string)

	// RemoveAttribute removes an attribute. Removing an absent attribute
	// is a no-op.
	RemoveAttribute(name string)

	// Children returns the node's current children in order.
	Children() []Node

	// AppendChild appends a child at the end.
	AppendChild(child Node)

	// RemoveChild removes a child. Removing a non-child is a no-op.
	RemoveChild(child Node)

	// ReplaceChild replaces oldChild with newChild in place.
	ReplaceChild(newChild, oldChild Node)

	// AddEventListener attaches a handler for the given event type.
	// Handlers fire in registration order.
	AddEventListener(event string, h Handler)
}

// Event is delivered to handlers when an event fires on a live node.
type Event struct {
	Type   string
	Target Node
	Detail map[string]any
}

// Handler is an event callback.
type Handler func(Event)
