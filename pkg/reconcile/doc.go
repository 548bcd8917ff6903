// Package reconcile implements the diff/patch core: materializing virtual
// subtrees into live nodes and mutating a live tree to match a desired one.
//
// The reconciler diffs directly against the live rendered tree rather than
// a retained previous virtual tree. This conflates desired state with actual
// rendered state: correctness depends on the live tree's reported attributes
// and tag names matching what was last applied. If something else mutates
// the live tree between passes, diffing behavior diverges. That is an
// assumption of the design, not an invariant this package enforces.
package reconcile
