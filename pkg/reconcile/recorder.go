package reconcile

// Recorder observes the mutations a reconciliation pass performs. The
// reconciler calls it synchronously as it works; implementations must be
// cheap. The Prometheus recorder in pkg/metrics implements this.
type Recorder interface {
	// NodeCreated counts a live node materialized and appended.
	NodeCreated()

	// NodeRemoved counts a live node removed from its parent.
	NodeRemoved()

	// NodeReplaced counts a live node replaced by a fresh subtree.
	NodeReplaced()

	// TextUpdated counts a text node's content rewritten in place.
	TextUpdated()

	// AttrSet counts an attribute set or updated.
	AttrSet()

	// AttrRemoved counts an attribute removed.
	AttrRemoved()

	// SubtreeSkipped counts a subtree left untouched by its render gate.
	SubtreeSkipped()
}

// nopRecorder is the default when no Recorder is configured.
type nopRecorder struct{}

func (nopRecorder) NodeCreated()    {}
func (nopRecorder) NodeRemoved()    {}
func (nopRecorder) NodeReplaced()   {}
func (nopRecorder) TextUpdated()    {}
func (nopRecorder) AttrSet()        {}
func (nopRecorder) AttrRemoved()    {}
func (nopRecorder) SubtreeSkipped() {}
