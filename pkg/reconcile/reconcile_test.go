package reconcile

import (
	"testing"

	"github.com/charlescarrari/moon/pkg/host/memdom"
	"github.com/charlescarrari/moon/pkg/vdom"
)

func TestReconcileAppendsWhenLiveAbsent(t *testing.T) {
	doc := memdom.NewDocument()
	r := New(doc)
	parent := doc.CreateElement("body")

	r.Reconcile(nil, vdom.Build("div", nil, nil, "hi"), parent)

	kids := parent.Children()
	if len(kids) != 1 {
		t.Fatalf("Expected 1 child appended, got %d", len(kids))
	}
	if kids[0].Tag() != "div" {
		t.Errorf("appended tag = %q, want div", kids[0].Tag())
	}

	// The same holds for a text-leaf desired node.
	parent2 := doc.CreateElement("body")
	r.Reconcile(nil, vdom.Text("x"), parent2)
	if len(parent2.Children()) != 1 {
		t.Fatalf("Expected 1 child appended for text leaf, got %d", len(parent2.Children()))
	}
}

func TestReconcileRemovesWhenDesiredAbsent(t *testing.T) {
	doc := memdom.NewDocument()
	r := New(doc)
	parent := doc.CreateElement("body")
	live := doc.CreateElement("div")
	parent.AppendChild(live)

	r.Reconcile(live, nil, parent)

	if len(parent.Children()) != 0 {
		t.Errorf("Expected live node removed, still have %d children", len(parent.Children()))
	}
}

func TestReconcileReplacesOnTagMismatch(t *testing.T) {
	doc := memdom.NewDocument()
	r := New(doc)
	parent := doc.CreateElement("body")
	live := doc.CreateElement("div")
	parent.AppendChild(live)

	r.Reconcile(live, vdom.Build("span", nil, nil), parent)

	kids := parent.Children()
	if len(kids) != 1 {
		t.Fatalf("Expected 1 child, got %d", len(kids))
	}
	if kids[0] == live {
		t.Error("live node survived a tag mismatch")
	}
	if kids[0].Tag() != "span" {
		t.Errorf("tag = %q, want span", kids[0].Tag())
	}
}

func TestReconcileTagMatchIsCaseInsensitive(t *testing.T) {
	doc := memdom.NewDocument()
	r := New(doc)
	rec := &countingRecorder{}
	r.SetRecorder(rec)

	parent := doc.CreateElement("body")
	live := doc.CreateElement("DIV")
	parent.AppendChild(live)

	r.Reconcile(live, vdom.Build("div", nil, nil), parent)

	if rec.replaced != 0 {
		t.Error("case-differing tags caused a replacement")
	}
	if parent.Children()[0] != live {
		t.Error("live node was swapped out")
	}
}

func TestReconcileReplacesTextWithElement(t *testing.T) {
	doc := memdom.NewDocument()
	r := New(doc)
	parent := doc.CreateElement("body")
	live := doc.CreateText("old")
	parent.AppendChild(live)

	r.Reconcile(live, vdom.Build("div", nil, nil), parent)

	kids := parent.Children()
	if len(kids) != 1 {
		t.Fatalf("Expected 1 child, got %d", len(kids))
	}
	if kids[0] == live {
		t.Error("text node was mutated in place instead of replaced")
	}
	if kids[0].Tag() != "div" {
		t.Errorf("tag = %q, want div", kids[0].Tag())
	}
}

func TestReconcileUpdatesTextInPlace(t *testing.T) {
	doc := memdom.NewDocument()
	r := New(doc)
	rec := &countingRecorder{}
	r.SetRecorder(rec)

	parent := doc.CreateElement("body")
	live := doc.CreateText("old")
	parent.AppendChild(live)

	r.Reconcile(live, vdom.Text("new"), parent)

	if parent.Children()[0] != live {
		t.Error("text node was replaced instead of rewritten")
	}
	if live.Text() != "new" {
		t.Errorf("Text = %q, want new", live.Text())
	}
	if rec.replaced != 0 || rec.created != 0 || rec.removed != 0 {
		t.Error("text update caused structural mutations")
	}
}

func TestReconcileShouldRenderFalseSkipsEverything(t *testing.T) {
	doc := memdom.NewDocument()
	r := New(doc)
	rec := &countingRecorder{}
	r.SetRecorder(rec)

	parent := doc.CreateElement("body")
	live := doc.CreateElement("div")
	live.SetAttribute("class", "stale")
	parent.AppendChild(live)

	// Desired differs in tag and attributes; the gate must still win.
	desired := vdom.Build("span", map[string]string{"class": "fresh"},
		&vdom.Metadata{ShouldRender: false})
	r.Reconcile(live, desired, parent)

	if rec.total() != 0 {
		t.Errorf("gated subtree saw %d mutations, want 0", rec.total())
	}
	if rec.skipped != 1 {
		t.Errorf("skipped = %d, want 1", rec.skipped)
	}
	if parent.Children()[0] != live {
		t.Error("live node changed under a ShouldRender=false gate")
	}
	if live.Attributes()["class"] != "stale" {
		t.Error("attributes changed under a ShouldRender=false gate")
	}
}

func TestReconcileMatchingElementDiffsAttrsAndChildren(t *testing.T) {
	doc := memdom.NewDocument()
	r := New(doc)

	parent := doc.CreateElement("body")
	live := r.Materialize(vdom.Build("div", map[string]string{"class": "a"}, nil,
		vdom.Build("span", nil, nil, "one"),
	))
	parent.AppendChild(live)

	desired := vdom.Build("div", map[string]string{"class": "b"}, nil,
		vdom.Build("span", nil, nil, "two"),
		vdom.Build("em", nil, nil, "extra"),
	)
	r.Reconcile(live, desired, parent)

	if parent.Children()[0] != live {
		t.Fatal("matching element was replaced")
	}
	if live.Attributes()["class"] != "b" {
		t.Errorf("class = %q, want b", live.Attributes()["class"])
	}

	kids := live.Children()
	if len(kids) != 2 {
		t.Fatalf("Expected 2 children, got %d", len(kids))
	}
	if kids[0].Tag() != "span" || kids[0].Children()[0].Text() != "two" {
		t.Error("existing child was not reconciled in place")
	}
	if kids[1].Tag() != "em" {
		t.Errorf("grown child tag = %q, want em", kids[1].Tag())
	}
}

func TestReconcileShrinksChildren(t *testing.T) {
	doc := memdom.NewDocument()
	r := New(doc)

	parent := doc.CreateElement("body")
	live := r.Materialize(vdom.Build("ul", nil, nil,
		vdom.Build("li", nil, nil, "a"),
		vdom.Build("li", nil, nil, "b"),
		vdom.Build("li", nil, nil, "c"),
	))
	parent.AppendChild(live)

	desired := vdom.Build("ul", nil, nil, vdom.Build("li", nil, nil, "a"))
	r.Reconcile(live, desired, parent)

	kids := live.Children()
	if len(kids) != 1 {
		t.Fatalf("Expected 1 child after shrink, got %d", len(kids))
	}
	if kids[0].Children()[0].Text() != "a" {
		t.Errorf("surviving child text = %q, want a", kids[0].Children()[0].Text())
	}
}

func TestReconcilePositionalShiftRebuilds(t *testing.T) {
	doc := memdom.NewDocument()
	r := New(doc)
	rec := &countingRecorder{}
	r.SetRecorder(rec)

	parent := doc.CreateElement("body")
	live := r.Materialize(vdom.Build("div", nil, nil,
		vdom.Build("a", nil, nil),
		vdom.Build("b", nil, nil),
	))
	parent.AppendChild(live)

	// Reordered children: positional matching sees both slots as changed.
	desired := vdom.Build("div", nil, nil,
		vdom.Build("b", nil, nil),
		vdom.Build("a", nil, nil),
	)
	r.Reconcile(live, desired, parent)

	if rec.replaced != 2 {
		t.Errorf("replaced = %d, want 2 (no key-based matching)", rec.replaced)
	}
}

func TestReconcileIdempotence(t *testing.T) {
	doc := memdom.NewDocument()
	r := New(doc)

	build := func() *vdom.Node {
		return vdom.Build("div", map[string]string{"class": "card", "id": "root"}, nil,
			vdom.Build("h1", nil, nil, "Title"),
			vdom.Build("ul", map[string]string{"class": "list"}, nil,
				vdom.Build("li", nil, nil, "a"),
				vdom.Build("li", nil, nil, "b"),
			),
			"trailing text",
		)
	}

	parent := doc.CreateElement("body")
	live := r.Materialize(build())
	parent.AppendChild(live)

	rec := &countingRecorder{}
	r.SetRecorder(rec)
	r.Reconcile(live, build(), parent)

	if rec.total() != 0 {
		t.Errorf("reconciling a freshly materialized tree performed %d mutations, want 0 "+
			"(created=%d removed=%d replaced=%d text=%d set=%d unset=%d)",
			rec.total(), rec.created, rec.removed, rec.replaced,
			rec.textUpdates, rec.attrsSet, rec.attrsRemoved)
	}
}

func TestReconcileDeepRecursion(t *testing.T) {
	doc := memdom.NewDocument()
	r := New(doc)

	parent := doc.CreateElement("body")
	live := r.Materialize(vdom.Build("div", nil, nil,
		vdom.Build("section", nil, nil,
			vdom.Build("p", nil, nil, "old"),
		),
	))
	parent.AppendChild(live)

	desired := vdom.Build("div", nil, nil,
		vdom.Build("section", nil, nil,
			vdom.Build("p", nil, nil, "new"),
		),
	)
	r.Reconcile(live, desired, parent)

	p := live.Children()[0].Children()[0]
	if got := p.Children()[0].Text(); got != "new" {
		t.Errorf("deep text = %q, want new", got)
	}
}
