package blurtext

import (
	"github.com/Kornerupin/blur-text/pkg/dom"
	"github.com/Kornerupin/blur-text/pkg/ports"
	"github.com/Kornerupin/blur-text/pkg/segment"
)

// decorate replaces el's content with the composed container tree. The
// processed marker is checked first and set before mutation, so the same
// element is never decomposed twice.
func (d *Decorator) decorate(el ports.Element) {
	if d.host.Processed(el) {
		return
	}
	text, ok := d.host.Text(el)
	if !ok {
		// No readable text capability; skip without marking.
		d.logger.Debug("element has no readable text, skipped")
		return
	}

	d.host.MarkProcessed(el)
	nodes := Compose(text, d.cfg)
	d.host.SetContent(el, nodes)

	if d.hooks.OnElement != nil {
		d.hooks.OnElement()
	}
	if d.hooks.OnLetter != nil {
		for _, n := range nodes {
			word, isWord := n.(dom.Container)
			if !isWord {
				continue
			}
			for _, child := range word.Children {
				if letter, isLetter := child.(dom.Container); isLetter && len(letter.Classes) == 2 {
					d.hooks.OnLetter(letter.Classes[1])
				}
			}
		}
	}
}

// Compose turns text into the host-neutral container tree: one container per
// word (cfg.WordClass) holding one container per character (cfg.LetterClass
// plus the character's category), with whitespace runs preserved verbatim as
// text nodes between the words.
//
// Compose is pure and total: empty input yields nil, whitespace-only input
// yields a single text node, and characters outside every category classify
// as the fallback. Concatenating the text of the returned nodes reconstructs
// the input exactly.
func Compose(text string, cfg Config) []dom.Node {
	var nodes []dom.Node
	for _, run := range segment.Split(text) {
		if run.Space {
			nodes = append(nodes, dom.Text{Value: run.Text})
			continue
		}
		word := dom.Container{Classes: []string{cfg.WordClass}}
		for _, r := range run.Text {
			word.Children = append(word.Children, dom.Container{
				Classes:  []string{cfg.LetterClass, cfg.Categories.Classify(r)},
				Children: []dom.Node{dom.Text{Value: string(r)}},
			})
		}
		nodes = append(nodes, word)
	}
	return nodes
}
