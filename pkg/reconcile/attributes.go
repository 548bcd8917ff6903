package reconcile

import (
	"github.com/charlescarrari/moon/pkg/host"
	"github.com/charlescarrari/moon/pkg/vdom"
)

// ExtractAttributes reads the current attribute set off a live node. A nil
// node or a text node yields an empty map. Pure read, no side effects.
func ExtractAttributes(n host.Node) map[string]string {
	if n == nil || n.IsText() {
		return make(map[string]string)
	}
	return n.Attributes()
}

// DiffAttributes reconciles a live element's attributes against the desired
// set. For every key in the union of current and desired:
//
//   - absent from desired, or named as a directive or special directive:
//     the attribute is removed; a hook directive is invoked with
//     (element, currentValue, desiredNode) before removal
//   - missing from current, or current value differs: set to desired value
//   - otherwise: left alone
//
// Hooks are external collaborators; only invocation order (before removal)
// and argument shape are guaranteed here.
func (r *Reconciler) DiffAttributes(el host.Node, current, desired map[string]string, n *vdom.Node) {
	for name := range vdom.Merge(current, desired) {
		want, inDesired := desired[name]
		got, inCurrent := current[name]

		switch {
		case !inDesired || r.Directives.IsDirective(name) || r.Directives.IsSpecial(name):
			if r.Directives.IsDirective(name) {
				r.Directives.Hooks[name](el, got, n)
			}
			el.RemoveAttribute(name)
			r.rec.AttrRemoved()
		case !inCurrent || got != want:
			el.SetAttribute(name, want)
			r.rec.AttrSet()
		}
	}
}
