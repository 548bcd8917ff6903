// Package vdom provides the virtual tree node model and its constructor.
//
// A Node describes one element or text leaf of the desired interface state.
// Trees are built fresh on every render pass with Build and consumed once
// by the reconciler against the previously realized live tree; the system
// retains no previous virtual tree between passes — the live tree itself is
// the only retained state.
//
// # Building trees
//
//	node := vdom.Build("div", map[string]string{"class": "card"}, nil,
//	    vdom.Build("h1", nil, nil, "Title"),
//	    "plain text",
//	)
//
// Children may be *Node values, strings (which become text leaves), nil
// (an empty text leaf), or []*Node slices (spliced in flattened).
package vdom
