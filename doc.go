/*
Package blurtext decorates the text of document elements for per-glyph blur
styling. Each word is wrapped in a word container and each character in a
letter container tagged with a category derived from the glyph's vertical ink
profile (ascenders, descenders, x-height), so a stylesheet can align a blur or
mask effect to the visual footprint of every character. Whitespace between
words is preserved verbatim as plain text, so the decorated element still
reads as the original string.

The package itself never renders anything: the visual effect comes from
caller-supplied CSS keyed on the generated classes.

# Hosts

Document access goes through the ports.Host interface. The package ships two
hosts: pkg/adapters/html works on golang.org/x/net/html trees with CSS
selector resolution, and pkg/adapters/memory is a lightweight in-memory
document for tests and embedding.

# Usage

	doc, err := htmlhost.ParseDocument(strings.NewReader(page))
	if err != nil {
		log.Fatal(err)
	}

	host := htmlhost.New(doc)
	err = blurtext.Decorate(host, "p.intro",
		blurtext.WithCategories(map[string]string{"tallUp": "XYZ"}),
		blurtext.WithLetterClass("glyph"),
	)
	if err != nil {
		log.Fatal(err)
	}

	host.Render(os.Stdout)

Targets that match nothing, characters from uncovered scripts, and elements
without text are all handled by degrading gracefully: an advisory is logged
and processing continues (or no-ops). Decoration is idempotent per element;
a processed marker makes repeated passes safe.
*/
package blurtext
