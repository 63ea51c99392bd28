package memory_test

import (
	"testing"

	"github.com/Kornerupin/blur-text/pkg/adapters/memory"
	"github.com/Kornerupin/blur-text/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKinds(t *testing.T) {
	a := memory.NewElement("a", "first")
	b := memory.NewElement("a", "second") // duplicate id, both must match
	c := memory.NewElement("c", "third")
	host := memory.NewHost(a, b, c)

	t.Run("selector matches in document order", func(t *testing.T) {
		els, err := host.Resolve("#a")
		require.NoError(t, err)
		require.Len(t, els, 2)
		assert.Same(t, a, els[0])
		assert.Same(t, b, els[1])
	})

	t.Run("single element", func(t *testing.T) {
		els, err := host.Resolve(c)
		require.NoError(t, err)
		assert.Equal(t, []ports.Element{c}, els)
	})

	t.Run("slice preserves order", func(t *testing.T) {
		els, err := host.Resolve([]*memory.Element{c, a})
		require.NoError(t, err)
		assert.Equal(t, []ports.Element{c, a}, els)
	})

	t.Run("unsupported kind", func(t *testing.T) {
		_, err := host.Resolve(struct{}{})
		assert.ErrorIs(t, err, ports.ErrBadTarget)
	})
}

func TestTextCapability(t *testing.T) {
	host := memory.NewHost()

	text, ok := host.Text(memory.NewElement("x", "hello"))
	assert.True(t, ok)
	assert.Equal(t, "hello", text)

	_, ok = host.Text(&memory.Element{ID: "o", Opaque: true})
	assert.False(t, ok)

	_, ok = host.Text("not an element")
	assert.False(t, ok)
}
