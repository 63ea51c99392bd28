package html_test

import (
	"bytes"
	"strings"
	"testing"

	blurtext "github.com/Kornerupin/blur-text"
	htmlhost "github.com/Kornerupin/blur-text/pkg/adapters/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xhtml "golang.org/x/net/html"
)

func parse(t *testing.T, page string) *htmlhost.Host {
	t.Helper()
	doc, err := htmlhost.ParseDocument(strings.NewReader(page))
	require.NoError(t, err)
	return htmlhost.New(doc)
}

func renderString(t *testing.T, h *htmlhost.Host) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, h.Render(&buf))
	return buf.String()
}

func TestResolveSelector(t *testing.T) {
	h := parse(t, `<div><p class="x">one</p><p>two</p><p class="x">three</p></div>`)

	els, err := h.Resolve("p.x")
	require.NoError(t, err)
	require.Len(t, els, 2)

	// Document order.
	first, _ := h.Text(els[0])
	second, _ := h.Text(els[1])
	assert.Equal(t, "one", first)
	assert.Equal(t, "three", second)
}

func TestResolveDegradesGracefully(t *testing.T) {
	h := parse(t, `<p>text</p>`)

	t.Run("no matches", func(t *testing.T) {
		els, err := h.Resolve("#missing")
		require.NoError(t, err)
		assert.Empty(t, els)
	})

	t.Run("unparsable selector", func(t *testing.T) {
		els, err := h.Resolve("p[[[")
		require.NoError(t, err)
		assert.Empty(t, els)
	})

	t.Run("unsupported kind", func(t *testing.T) {
		_, err := h.Resolve(3.14)
		assert.Error(t, err)
	})
}

func TestTextConcatenatesDescendants(t *testing.T) {
	h := parse(t, `<p>one <b>two</b> three</p>`)
	els, err := h.Resolve("p")
	require.NoError(t, err)
	require.Len(t, els, 1)

	text, ok := h.Text(els[0])
	require.True(t, ok)
	assert.Equal(t, "one two three", text)
}

func TestDecorateDocument(t *testing.T) {
	h := parse(t, `<p id="t">Hi go</p>`)

	require.NoError(t, blurtext.Decorate(h, "#t"))
	out := renderString(t, h)

	assert.Contains(t, out, `data-blurtext="1"`)
	assert.Contains(t, out, `<span class="blur-word">`)
	assert.Contains(t, out, `<span class="blur-letter tallUp">H</span>`)
	assert.Contains(t, out, `<span class="blur-letter tallUp">i</span>`)
	assert.Contains(t, out, `<span class="blur-letter tallDown">g</span>`)
	assert.Contains(t, out, `<span class="blur-letter low">o</span>`)
	// The space between the words survives as a bare text node.
	assert.Contains(t, out, `</span> <span class="blur-word">`)
}

func TestDecorateIsIdempotentOverRenders(t *testing.T) {
	h := parse(t, `<p id="t">same text</p>`)

	require.NoError(t, blurtext.Decorate(h, "#t"))
	once := renderString(t, h)

	require.NoError(t, blurtext.Decorate(h, "#t"))
	twice := renderString(t, h)

	assert.Equal(t, once, twice)
}

func TestMarkProcessedIsStable(t *testing.T) {
	h := parse(t, `<p id="t">x</p>`)
	els, err := h.Resolve("#t")
	require.NoError(t, err)
	require.Len(t, els, 1)

	h.MarkProcessed(els[0])
	h.MarkProcessed(els[0])

	n := els[0].(*xhtml.Node)
	count := 0
	for _, a := range n.Attr {
		if a.Key == htmlhost.ProcessedAttr {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestTextRequiresElementNode(t *testing.T) {
	h := parse(t, `<p>x</p>`)
	textNode := &xhtml.Node{Type: xhtml.TextNode, Data: "raw"}

	_, ok := h.Text(textNode)
	assert.False(t, ok)
}
