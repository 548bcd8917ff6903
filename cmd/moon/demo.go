package main

import (
	"fmt"

	"github.com/charlescarrari/moon/pkg/vdom"
)

// demoApp is the built-in counter served by `moon preview` and rendered by
// `moon export`. It keeps one integer of state and re-renders around it.
type demoApp struct {
	count int
}

func (d *demoApp) root() *vdom.Node {
	return vdom.Build("div", map[string]string{"class": "app"}, nil,
		vdom.Build("h1", nil, nil, "moon preview"),
		vdom.Build("p", map[string]string{"class": "count"}, nil,
			fmt.Sprintf("count: %d", d.count)),
		vdom.Build("button",
			map[string]string{"onclick": "moonEmit('increment')"}, nil,
			"increment"),
	)
}
