package reconcile

// countingRecorder tallies every mutation for assertions.
type countingRecorder struct {
	created, removed, replaced int
	textUpdates                int
	attrsSet, attrsRemoved     int
	skipped                    int
}

func (c *countingRecorder) NodeCreated()    { c.created++ }
func (c *countingRecorder) NodeRemoved()    { c.removed++ }
func (c *countingRecorder) NodeReplaced()   { c.replaced++ }
func (c *countingRecorder) TextUpdated()    { c.textUpdates++ }
func (c *countingRecorder) AttrSet()        { c.attrsSet++ }
func (c *countingRecorder) AttrRemoved()    { c.attrsRemoved++ }
func (c *countingRecorder) SubtreeSkipped() { c.skipped++ }

func (c *countingRecorder) total() int {
	return c.created + c.removed + c.replaced + c.textUpdates + c.attrsSet + c.attrsRemoved
}
