package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	t.Run("tags compare by name", func(t *testing.T) {
		assert.True(t, HostKind("div").Same(HostKind("div")))
		assert.False(t, HostKind("div").Same(HostKind("span")))
		assert.True(t, TextKind().Same(TextKind()))
		assert.False(t, TextKind().Same(HostKind("div")))
	})

	t.Run("components compare by function identity", func(t *testing.T) {
		a := Component(func(Props) *Node { return nil })
		b := Component(func(Props) *Node { return nil })

		assert.True(t, ComponentKind(a).Same(ComponentKind(a)))
		assert.False(t, ComponentKind(a).Same(ComponentKind(b)))
		assert.False(t, ComponentKind(a).Same(HostKind("a")))
	})

	t.Run("text can never collide with a tag", func(t *testing.T) {
		assert.True(t, TextKind().IsText())
		assert.False(t, HostKind("p").IsText())
		assert.False(t, ComponentKind(func(Props) *Node { return nil }).IsText())
	})
}

func TestNewElement(t *testing.T) {
	t.Run("flattens nested sequences", func(t *testing.T) {
		inner := []*Node{host("a"), host("b")}
		n := NewElement(HostKind("ul"), nil, inner, host("c"), []any{host("d"), "tail"})

		children := n.Props.Children()
		require.Len(t, children, 5)
		assert.Equal(t, "a", children[0].Kind.Tag())
		assert.Equal(t, "d", children[3].Kind.Tag())
		assert.True(t, children[4].Kind.IsText())
	})

	t.Run("promotes primitives to text nodes", func(t *testing.T) {
		n := NewElement(HostKind("p"), nil, "hi", 42, 1.5)

		children := n.Props.Children()
		require.Len(t, children, 3)
		for _, c := range children {
			assert.True(t, c.Kind.IsText())
			assert.Empty(t, c.Props.Children())
		}
		assert.Equal(t, "hi", children[0].Props[TextProp])
		assert.Equal(t, "42", children[1].Props[TextProp])
		assert.Equal(t, "1.5", children[2].Props[TextProp])
	})

	t.Run("copies the given props", func(t *testing.T) {
		props := Props{"id": "app"}
		n := NewElement(HostKind("div"), props)

		props["id"] = "changed"
		assert.Equal(t, "app", n.Props["id"])
	})

	t.Run("nil children are dropped", func(t *testing.T) {
		var hidden *Node
		n := NewElement(HostKind("div"), nil, hidden, host("p"))

		assert.Len(t, n.Props.Children(), 1)
	})
}

func TestListenerProps(t *testing.T) {
	assert.True(t, IsListener("onClick"))
	assert.True(t, IsListener("onInput"))
	assert.False(t, IsListener("on"))
	assert.False(t, IsListener("one"))

	assert.Equal(t, "click", EventName("onClick"))
	assert.Equal(t, "mousedown", EventName("onMouseDown"))
}
