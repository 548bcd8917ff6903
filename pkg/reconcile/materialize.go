package reconcile

import (
	"github.com/charlescarrari/moon/pkg/host"
	"github.com/charlescarrari/moon/pkg/vdom"
)

// Dispatcher routes internally-dispatched signals. When a node declares a
// listener for an event type the dispatcher claims, materialization
// registers the handler here instead of on the live element.
type Dispatcher interface {
	// Dispatches reports whether the event type is an internal signal.
	Dispatches(event string) bool

	// Register attaches a handler for an internal signal.
	Register(event string, h host.Handler)
}

// Materialize realizes a virtual subtree into a detached live node. The
// caller appends or splices the result into the live tree.
//
// Listeners declared in the node's metadata are attached here, exactly once
// per materialization; later reconciliation passes over the same live node
// never re-attach them.
func (r *Reconciler) Materialize(n *vdom.Node) host.Node {
	if n.IsText() {
		return r.Doc.CreateText(n.Value)
	}

	el := r.Doc.CreateElement(n.Type)
	for name, value := range n.Attrs {
		el.SetAttribute(name, value)
	}
	for _, child := range n.Children {
		el.AppendChild(r.Materialize(child))
	}
	if n.Meta != nil {
		r.attachListeners(el, n.Meta.Listeners)
	}
	return el
}

func (r *Reconciler) attachListeners(el host.Node, listeners map[string][]host.Handler) {
	for event, handlers := range listeners {
		for _, h := range handlers {
			if r.Dispatcher != nil && r.Dispatcher.Dispatches(event) {
				r.Dispatcher.Register(event, h)
			} else {
				el.AddEventListener(event, h)
			}
		}
	}
}
