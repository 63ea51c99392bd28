// Package html implements ports.Host on golang.org/x/net/html node trees.
// Selectors are CSS, compiled with cascadia and matched in document order.
// Generated containers render as <span> elements; the processed marker is a
// data attribute so it survives serialization.
package html

import (
	"io"
	"strings"

	"github.com/Kornerupin/blur-text/pkg/dom"
	"github.com/Kornerupin/blur-text/pkg/ports"
	"github.com/andybalholm/cascadia"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ProcessedAttr marks elements that have already been decorated.
const ProcessedAttr = "data-blurtext"

// Host adapts one parsed HTML document.
type Host struct {
	doc *xhtml.Node
}

var _ ports.Host = (*Host)(nil)

// New wraps an already parsed document (or any subtree root).
func New(doc *xhtml.Node) *Host {
	return &Host{doc: doc}
}

// ParseDocument parses HTML from r with the permissive x/net/html parser.
func ParseDocument(r io.Reader) (*xhtml.Node, error) {
	return xhtml.Parse(r)
}

// Document returns the wrapped root node.
func (h *Host) Document() *xhtml.Node { return h.doc }

// Render serializes the document, including any decoration applied so far.
func (h *Host) Render(w io.Writer) error {
	return xhtml.Render(w, h.doc)
}

// Resolve accepts a CSS selector string, a *html.Node, or a slice of nodes.
// A selector that parses but matches nothing resolves to an empty list; a
// selector that does not parse also resolves to an empty list, mirroring the
// degrade-to-no-op contract for bad selectors.
func (h *Host) Resolve(target any) ([]ports.Element, error) {
	switch t := target.(type) {
	case string:
		sel, err := cascadia.Compile(t)
		if err != nil {
			return nil, nil
		}
		matches := sel.MatchAll(h.doc)
		out := make([]ports.Element, len(matches))
		for i, n := range matches {
			out[i] = n
		}
		return out, nil
	case *xhtml.Node:
		return []ports.Element{t}, nil
	case []*xhtml.Node:
		out := make([]ports.Element, len(t))
		for i, n := range t {
			out[i] = n
		}
		return out, nil
	case []ports.Element:
		return append([]ports.Element(nil), t...), nil
	default:
		return nil, ports.ErrBadTarget
	}
}

// Text concatenates the text descendants of el, in order. Only element nodes
// have readable text.
func (h *Host) Text(el ports.Element) (string, bool) {
	n, ok := el.(*xhtml.Node)
	if !ok || n.Type != xhtml.ElementNode {
		return "", false
	}
	var b strings.Builder
	var walk func(*xhtml.Node)
	walk = func(node *xhtml.Node) {
		if node.Type == xhtml.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String(), true
}

// SetContent drops el's children and appends the rendered form of nodes.
func (h *Host) SetContent(el ports.Element, nodes []dom.Node) {
	n, ok := el.(*xhtml.Node)
	if !ok {
		return
	}
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	for _, node := range nodes {
		n.AppendChild(render(node))
	}
}

// Processed reports whether el carries the ProcessedAttr marker.
func (h *Host) Processed(el ports.Element) bool {
	n, ok := el.(*xhtml.Node)
	if !ok {
		return false
	}
	for _, a := range n.Attr {
		if a.Key == ProcessedAttr {
			return true
		}
	}
	return false
}

// MarkProcessed sets the ProcessedAttr marker on el.
func (h *Host) MarkProcessed(el ports.Element) {
	n, ok := el.(*xhtml.Node)
	if !ok || h.Processed(el) {
		return
	}
	n.Attr = append(n.Attr, xhtml.Attribute{Key: ProcessedAttr, Val: "1"})
}

// render converts a neutral node into a concrete HTML node. Containers become
// <span> elements with their classes joined into a class attribute.
func render(node dom.Node) *xhtml.Node {
	switch v := node.(type) {
	case dom.Text:
		return &xhtml.Node{Type: xhtml.TextNode, Data: v.Value}
	case dom.Container:
		span := &xhtml.Node{
			Type:     xhtml.ElementNode,
			Data:     "span",
			DataAtom: atom.Span,
		}
		if len(v.Classes) > 0 {
			span.Attr = []xhtml.Attribute{{Key: "class", Val: strings.Join(v.Classes, " ")}}
		}
		for _, child := range v.Children {
			span.AppendChild(render(child))
		}
		return span
	default:
		return &xhtml.Node{Type: xhtml.TextNode, Data: node.PlainText()}
	}
}
