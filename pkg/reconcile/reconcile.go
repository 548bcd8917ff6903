package reconcile

import (
	"strings"

	"github.com/charlescarrari/moon/pkg/host"
	"github.com/charlescarrari/moon/pkg/vdom"
)

// Reconciler mutates a live tree to match a desired virtual tree with
// minimal operations. All collaborators are explicit: the document that
// creates live nodes, the directive registry, the dispatcher for internal
// signals, and an optional mutation recorder.
//
// A Reconciler is not safe for concurrent use; callers serialize passes.
// Each call to Reconcile is one synchronous pass with no suspension points.
// A failure mid-pass leaves the live tree partially updated; there is no
// rollback.
type Reconciler struct {
	// Doc creates live nodes during materialization.
	Doc host.Document

	// Directives is the hook registry consulted by attribute diffing.
	Directives *DirectiveSet

	// Dispatcher claims internally-dispatched event types. May be nil,
	// in which case every listener attaches to the live element.
	Dispatcher Dispatcher

	rec Recorder
}

// New creates a Reconciler over the given document with an empty directive
// registry and no dispatcher.
func New(doc host.Document) *Reconciler {
	return &Reconciler{
		Doc:        doc,
		Directives: NewDirectiveSet(),
		rec:        nopRecorder{},
	}
}

// SetRecorder installs a mutation recorder. A nil recorder resets to the
// no-op default.
func (r *Reconciler) SetRecorder(rec Recorder) {
	if rec == nil {
		r.rec = nopRecorder{}
		return
	}
	r.rec = rec
}

// Reconcile mutates parent's live subtree so that live matches desired.
//
// Evaluated per call, first match wins:
//
//  1. desired's metadata has ShouldRender false: the whole subtree is
//     skipped, including removal logic.
//  2. live is nil, desired is not: materialize desired, append to parent.
//  3. desired is nil: remove live from parent.
//  4. tags differ (case-insensitively): materialize desired, replace live.
//  5. both are text: rewrite the live text content in place.
//  6. matching element tags: diff attributes, then recurse positionally
//     over children, passing nil past either side's length.
//
// Matching is strictly positional; there is no key-based reconciliation,
// so reordered children are seen as changed at every shifted position.
func (r *Reconciler) Reconcile(live host.Node, desired *vdom.Node, parent host.Node) {
	switch {
	case desired != nil && desired.Meta != nil && !desired.Meta.ShouldRender:
		r.rec.SubtreeSkipped()

	case live == nil && desired != nil:
		parent.AppendChild(r.Materialize(desired))
		r.rec.NodeCreated()

	case desired == nil:
		parent.RemoveChild(live)
		r.rec.NodeRemoved()

	case !strings.EqualFold(live.Tag(), desired.Type):
		parent.ReplaceChild(r.Materialize(desired), live)
		r.rec.NodeReplaced()

	case live.IsText() && desired.IsText():
		if live.Text() != desired.Value {
			live.SetText(desired.Value)
			r.rec.TextUpdated()
		}

	default:
		r.DiffAttributes(live, ExtractAttributes(live), desired.Attrs, desired)

		kids := live.Children()
		n := len(desired.Children)
		if len(kids) > n {
			n = len(kids)
		}
		for i := 0; i < n; i++ {
			var liveChild host.Node
			if i < len(kids) {
				liveChild = kids[i]
			}
			var want *vdom.Node
			if i < len(desired.Children) {
				want = desired.Children[i]
			}
			r.Reconcile(liveChild, want, live)
		}
	}
}
