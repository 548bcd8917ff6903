package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/charlescarrari/moon/pkg/host"
)

// voidElements cannot have children and render without a closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output. Development only; it inflates the
	// output size.
	Pretty bool

	// Indent is the string used per indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// Renderer serializes live host trees to HTML. Attributes render in sorted
// order so output is deterministic.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a live subtree to an HTML string.
func (r *Renderer) RenderToString(node host.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a live subtree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node host.Node) error {
	return r.renderNode(w, node, 0)
}

func (r *Renderer) renderNode(w io.Writer, node host.Node, depth int) error {
	if node == nil {
		return nil
	}
	if node.IsText() {
		_, err := io.WriteString(w, escapeHTML(node.Text()))
		return err
	}
	return r.renderElement(w, node, depth)
}

func (r *Renderer) renderElement(w io.Writer, node host.Node, depth int) error {
	tag := node.Tag()

	if r.config.Pretty && depth > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	if voidElements[tag] {
		_, err := io.WriteString(w, ">")
		return err
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	children := node.Children()
	if r.config.Pretty && len(children) > 0 {
		io.WriteString(w, "\n")
	}
	for _, child := range children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
		if r.config.Pretty {
			io.WriteString(w, "\n")
		}
	}
	if r.config.Pretty && len(children) > 0 {
		r.writeIndent(w, depth)
	}

	_, err := fmt.Fprintf(w, "</%s>", tag)
	return err
}

func (r *Renderer) renderAttributes(w io.Writer, node host.Node) error {
	attrs := node.Attributes()
	if len(attrs) == 0 {
		return nil
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := fmt.Fprintf(w, ` %s="%s"`, name, escapeAttr(attrs[name])); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	for i := 0; i < depth; i++ {
		if _, err := io.WriteString(w, r.config.Indent); err != nil {
			return err
		}
	}
	return nil
}
