package reconcile

import (
	"github.com/charlescarrari/moon/pkg/host"
	"github.com/charlescarrari/moon/pkg/vdom"
)

// Directive is an attribute-named side-effecting hook. The attribute differ
// invokes it with the live element, the attribute's current live value, and
// the desired node, then removes the attribute from the live element. The
// hook may itself mutate the live tree.
type Directive func(el host.Node, value string, n *vdom.Node)

// DirectiveSet is the registry of directive hooks consulted by the
// attribute differ. It is passed in explicitly; the differ never reads
// ambient state.
type DirectiveSet struct {
	// Hooks maps attribute names to directive hooks. A hook runs before
	// its attribute is removed.
	Hooks map[string]Directive

	// Special names attributes that are consumed elsewhere in the
	// pipeline. They are removed from the live element without a hook.
	Special map[string]bool
}

// NewDirectiveSet creates an empty directive registry.
func NewDirectiveSet() *DirectiveSet {
	return &DirectiveSet{
		Hooks:   make(map[string]Directive),
		Special: make(map[string]bool),
	}
}

// IsDirective reports whether the name is registered as a hook directive.
func (d *DirectiveSet) IsDirective(name string) bool {
	if d == nil {
		return false
	}
	_, ok := d.Hooks[name]
	return ok
}

// IsSpecial reports whether the name is registered as a special directive.
func (d *DirectiveSet) IsSpecial(name string) bool {
	return d != nil && d.Special[name]
}
