package vdom

import "strings"

// Text creates a text-leaf node with the given content.
func Text(content string) *Node {
	return &Node{
		Type:  TextType,
		Value: content,
		Attrs: make(map[string]string),
	}
}

// Build creates an element node with the given tag, attributes, metadata,
// and children. Arguments default silently: nil attrs becomes an empty map,
// nil meta becomes DefaultMetadata.
//
// Each child argument is classified:
//   - []*Node is spliced in flattened, each element appended individually
//   - string becomes a new text leaf
//   - nil becomes an empty text leaf
//   - *Node is appended as-is
//
// The resulting node's Value is the concatenation of all children's values.
// The tag is not validated; a malformed tag surfaces later, at element
// creation in the host.
func Build(tag string, attrs map[string]string, meta *Metadata, children ...any) *Node {
	if attrs == nil {
		attrs = make(map[string]string)
	}
	if meta == nil {
		meta = DefaultMetadata()
	}

	kids := make([]*Node, 0, len(children))
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			kids = append(kids, Text(""))
		case string:
			kids = append(kids, Text(v))
		case []*Node:
			kids = append(kids, v...)
		case *Node:
			kids = append(kids, v)
		}
	}

	var val strings.Builder
	for _, k := range kids {
		val.WriteString(k.Value)
	}

	return &Node{
		Type:     tag,
		Value:    val.String(),
		Attrs:    attrs,
		Children: kids,
		Meta:     meta,
	}
}
