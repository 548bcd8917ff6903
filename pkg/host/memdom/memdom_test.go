package memdom

import (
	"testing"

	"github.com/charlescarrari/moon/pkg/host"
)

func TestCreateElement(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	if el.Tag() != "div" {
		t.Errorf("Tag = %q, want div", el.Tag())
	}
	if el.IsText() {
		t.Error("element reports IsText")
	}
	if len(el.Attributes()) != 0 {
		t.Errorf("new element has %d attrs, want 0", len(el.Attributes()))
	}
}

func TestCreateText(t *testing.T) {
	doc := NewDocument()
	txt := doc.CreateText("hi")

	if txt.Tag() != host.TextTag {
		t.Errorf("Tag = %q, want %q", txt.Tag(), host.TextTag)
	}
	if !txt.IsText() {
		t.Error("text node does not report IsText")
	}
	if txt.Text() != "hi" {
		t.Errorf("Text = %q, want hi", txt.Text())
	}
	if len(txt.Attributes()) != 0 {
		t.Errorf("text node has %d attrs, want 0", len(txt.Attributes()))
	}
}

func TestAttributesReturnsCopy(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	el.SetAttribute("class", "a")

	attrs := el.Attributes()
	attrs["class"] = "mutated"
	attrs["id"] = "x"

	if got := el.Attributes()["class"]; got != "a" {
		t.Errorf("class = %q after mutating the copy, want a", got)
	}
	if _, ok := el.Attributes()["id"]; ok {
		t.Error("mutating the copy added an attribute to the node")
	}
}

func TestRemoveAttributeAbsentIsNoop(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	el.RemoveAttribute("missing") // must not panic
}

func TestChildOperations(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("ul")
	a := doc.CreateElement("li")
	b := doc.CreateElement("li")
	c := doc.CreateElement("li")

	parent.AppendChild(a)
	parent.AppendChild(b)

	kids := parent.Children()
	if len(kids) != 2 || kids[0] != a || kids[1] != b {
		t.Fatalf("children = %v, want [a b]", kids)
	}

	parent.ReplaceChild(c, a)
	kids = parent.Children()
	if kids[0] != c {
		t.Error("ReplaceChild did not replace in place")
	}

	parent.RemoveChild(b)
	if len(parent.Children()) != 1 {
		t.Errorf("Expected 1 child after removal, got %d", len(parent.Children()))
	}

	parent.RemoveChild(b) // not a child anymore, must be a no-op
	if len(parent.Children()) != 1 {
		t.Error("removing a non-child changed the tree")
	}
}

func TestChildrenReturnsSnapshot(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	a := doc.CreateElement("span")
	parent.AppendChild(a)

	kids := parent.Children()
	parent.RemoveChild(a)

	if len(kids) != 1 {
		t.Error("previously taken snapshot changed after removal")
	}
}

func TestFireInvokesListenersInOrder(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("button").(*Node)

	var order []int
	el.AddEventListener("click", func(host.Event) { order = append(order, 1) })
	el.AddEventListener("click", func(host.Event) { order = append(order, 2) })

	el.Fire("click", nil)

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("handler order = %v, want [1 2]", order)
	}
	if el.ListenerCount("click") != 2 {
		t.Errorf("ListenerCount = %d, want 2", el.ListenerCount("click"))
	}
}

func TestFireDeliversEventShape(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("input").(*Node)

	var got host.Event
	el.AddEventListener("input", func(e host.Event) { got = e })

	el.Fire("input", map[string]any{"value": "abc"})

	if got.Type != "input" {
		t.Errorf("Type = %q, want input", got.Type)
	}
	if got.Target != el {
		t.Error("Target is not the fired node")
	}
	if got.Detail["value"] != "abc" {
		t.Errorf("Detail[value] = %v, want abc", got.Detail["value"])
	}
}

func TestStringDebugOutput(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div").(*Node)
	div.AppendChild(doc.CreateText("hi"))

	if got := div.String(); got != "<div>hi</div>" {
		t.Errorf("String = %q, want <div>hi</div>", got)
	}
}
