// Package moon is the public API for the Moon reconciliation engine.
//
// Moon builds an in-memory tree describing the desired interface state and
// mutates a live, externally-rendered tree to match it with minimal
// operations. The live tree is the only state retained between passes; each
// pass builds a fresh virtual tree and diffs it directly against what is
// currently rendered.
//
// Usage:
//
//	doc := memdom.NewDocument()
//	body := doc.CreateElement("body")
//
//	app := moon.New(doc, func() *vdom.Node {
//	    return vdom.Build("div", nil, nil, "hello")
//	})
//	app.Mount(body)
//	app.Update() // re-render after state changes
package moon

import (
	"log/slog"

	"github.com/charlescarrari/moon/pkg/host"
	"github.com/charlescarrari/moon/pkg/reconcile"
	"github.com/charlescarrari/moon/pkg/vdom"
)

// Silent suppresses informational log output from the surrounding glue.
// The reconciliation algorithm itself never consults it.
var Silent bool

// App binds a root render function to a mount point in a live tree and
// re-reconciles on demand. It owns the event bus that routes internally-
// dispatched signals declared with On.
//
// An App is single-threaded: callers serialize Mount/Update/Emit.
type App struct {
	doc    host.Document
	root   func() *vdom.Node
	rec    *reconcile.Reconciler
	bus    *EventBus
	mount  host.Node
	logger *slog.Logger
}

// New creates an App rendering the tree produced by root.
func New(doc host.Document, root func() *vdom.Node) *App {
	a := &App{
		doc:    doc,
		root:   root,
		bus:    NewEventBus(),
		logger: slog.Default().With("component", "app"),
	}
	a.rec = reconcile.New(doc)
	a.rec.Dispatcher = a.bus
	a.bus.afterEmit = a.Update
	return a
}

// Reconciler exposes the underlying reconciler for configuring directives
// or a mutation recorder.
func (a *App) Reconciler() *reconcile.Reconciler {
	return a.rec
}

// Bus returns the app's event bus.
func (a *App) Bus() *EventBus {
	return a.bus
}

// Mount attaches the app under parent and performs the first render pass.
func (a *App) Mount(parent host.Node) {
	a.mount = parent
	a.Update()
}

// Update builds a fresh virtual tree and reconciles it against the live
// first child of the mount point. The previous virtual tree is not kept;
// the live tree is the diff baseline.
func (a *App) Update() {
	if a.mount == nil {
		return
	}
	desired := a.root()

	var live host.Node
	if kids := a.mount.Children(); len(kids) > 0 {
		live = kids[0]
	}
	a.rec.Reconcile(live, desired, a.mount)

	if !Silent {
		rootType := ""
		if desired != nil {
			rootType = desired.Type
		}
		a.logger.Info("updated", "root", rootType)
	}
}

// EventBus routes internally-dispatched signals. Event types declared with
// On are claimed by the bus: when a node carrying a listener for such a
// type is materialized, the listener registers here instead of on the live
// element. Emit invokes handlers in registration order, then triggers a
// render pass.
type EventBus struct {
	declared  map[string]bool
	handlers  map[string][]host.Handler
	afterEmit func()
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{
		declared: make(map[string]bool),
		handlers: make(map[string][]host.Handler),
	}
}

// On declares event as an internal signal and attaches a handler for it.
func (b *EventBus) On(event string, h host.Handler) {
	b.declared[event] = true
	if h != nil {
		b.handlers[event] = append(b.handlers[event], h)
	}
}

// Declare marks event as an internal signal without attaching a handler.
// Listeners for it declared in node metadata will register on the bus at
// materialization.
func (b *EventBus) Declare(event string) {
	b.declared[event] = true
}

// Dispatches implements reconcile.Dispatcher.
func (b *EventBus) Dispatches(event string) bool {
	return b.declared[event]
}

// Register implements reconcile.Dispatcher.
func (b *EventBus) Register(event string, h host.Handler) {
	b.handlers[event] = append(b.handlers[event], h)
}

// Emit invokes the handlers for event in order, then triggers the app's
// render pass.
func (b *EventBus) Emit(event string, detail map[string]any) {
	for _, h := range b.handlers[event] {
		h(host.Event{Type: event, Detail: detail})
	}
	if b.afterEmit != nil {
		b.afterEmit()
	}
}
