// Package memory provides an in-memory ports.Host for tests and embedding.
// Decorated children are kept as the neutral dom.Node tree, so assertions can
// inspect exactly what the decorator produced.
package memory

import (
	"strings"

	"github.com/Kornerupin/blur-text/pkg/dom"
	"github.com/Kornerupin/blur-text/pkg/ports"
)

// Element is one element of the in-memory document.
type Element struct {
	ID     string
	Source string // original text content
	Opaque bool   // when true the element exposes no readable text

	Processed bool
	Children  []dom.Node
}

// NewElement creates a readable element with the given id and text.
func NewElement(id, text string) *Element {
	return &Element{ID: id, Source: text}
}

// Host is an in-memory document: an ordered list of elements. Selector
// resolution understands the "#id" form only.
type Host struct {
	elements []*Element
}

var _ ports.Host = (*Host)(nil)

// NewHost creates a document from the given elements, in document order.
func NewHost(elements ...*Element) *Host {
	return &Host{elements: elements}
}

// Resolve accepts a "#id" selector, an *Element, or a slice of elements.
func (h *Host) Resolve(target any) ([]ports.Element, error) {
	switch t := target.(type) {
	case string:
		id := strings.TrimPrefix(t, "#")
		var out []ports.Element
		for _, el := range h.elements {
			if el.ID == id {
				out = append(out, el)
			}
		}
		return out, nil
	case *Element:
		return []ports.Element{t}, nil
	case []*Element:
		out := make([]ports.Element, len(t))
		for i, el := range t {
			out[i] = el
		}
		return out, nil
	case []ports.Element:
		return append([]ports.Element(nil), t...), nil
	default:
		return nil, ports.ErrBadTarget
	}
}

// Text returns the element's source text. Opaque elements report no text
// capability and are skipped by the decorator.
func (h *Host) Text(el ports.Element) (string, bool) {
	e, ok := el.(*Element)
	if !ok || e.Opaque {
		return "", false
	}
	return e.Source, true
}

// SetContent replaces the element's children with the given nodes.
func (h *Host) SetContent(el ports.Element, nodes []dom.Node) {
	if e, ok := el.(*Element); ok {
		e.Children = nodes
	}
}

// Processed reports the element's decoration marker.
func (h *Host) Processed(el ports.Element) bool {
	e, ok := el.(*Element)
	return ok && e.Processed
}

// MarkProcessed sets the element's decoration marker.
func (h *Host) MarkProcessed(el ports.Element) {
	if e, ok := el.(*Element); ok {
		e.Processed = true
	}
}
