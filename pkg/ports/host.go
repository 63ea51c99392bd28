/*
Package ports defines the driven port between the decorator core and the
document it mutates.

The classifier and decomposer are pure; everything platform-specific —
selector resolution, reading text, replacing children — goes through the Host
interface, so the core stays unit-testable without a real document.

# Key Interfaces

  - Host: resolves targets and mutates elements in a concrete document
    (HTML tree, in-memory fake).
*/
package ports

import (
	"errors"

	"github.com/Kornerupin/blur-text/pkg/dom"
)

// Element is an opaque handle to a document element. Each Host defines the
// concrete type; the decorator never inspects it directly.
type Element any

// ErrBadTarget is returned by Resolve when the target is of a kind the host
// does not understand (not a selector, element, or element slice).
var ErrBadTarget = errors.New("unsupported target kind")

// Host adapts a concrete document to the decorator.
//
// Resolve accepts a selector string, a single Element, or a []Element and
// returns the matched elements in document order. A target that matches
// nothing resolves to an empty slice with a nil error; ErrBadTarget is
// reserved for values the host cannot interpret at all.
type Host interface {
	Resolve(target any) ([]Element, error)

	// Text returns the element's full text content. ok is false when the
	// handle has no readable text capability; such elements are skipped.
	Text(el Element) (text string, ok bool)

	// SetContent replaces the element's children with the rendered form of
	// the given nodes.
	SetContent(el Element, nodes []dom.Node)

	// Processed reports whether the element carries the decoration marker;
	// MarkProcessed sets it. The marker makes repeated decoration of the
	// same element a no-op.
	Processed(el Element) bool
	MarkProcessed(el Element)
}
