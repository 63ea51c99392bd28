// Package dom defines the host-neutral node tree produced by decoration.
//
// The decorator core builds values from this package instead of touching a
// real document, so hosts (HTML, in-memory fakes) decide how containers and
// text map onto their own node types.
package dom

import "strings"

// Node is a piece of generated content: either a Text run or a Container.
type Node interface {
	// PlainText returns the visible text carried by this node and its
	// descendants, in order.
	PlainText() string
}

// Text is a verbatim run of characters, typically whitespace preserved
// between word containers.
type Text struct {
	Value string
}

// PlainText returns the raw text value.
func (t Text) PlainText() string { return t.Value }

// Container is a generated wrapper element. Classes are style hooks only;
// the host decides the concrete element type.
type Container struct {
	Classes  []string
	Children []Node
}

// PlainText concatenates the text of all children, in order.
func (c Container) PlainText() string {
	var b strings.Builder
	for _, child := range c.Children {
		b.WriteString(child.PlainText())
	}
	return b.String()
}

// PlainText concatenates the text of a node sequence, in order. For any
// decorated element this reconstructs the original text exactly.
func PlainText(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(n.PlainText())
	}
	return b.String()
}
