package loom_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnatoleLucet/loom"
	"github.com/AnatoleLucet/loom/memdom"
)

// listApp renders lists[i] as childless elements under a "list" element,
// where i is a state cell switched through the exposed setter.
func listApp(lists [][]string, setter **loom.Setter[int]) loom.Component {
	return func(loom.Props) *loom.Node {
		index, setIndex := loom.UseState(0)
		*setter = setIndex

		children := make([]any, 0, len(lists[index]))
		for _, tag := range lists[index] {
			children = append(children, loom.El(tag, nil))
		}

		return loom.El("list", nil, children...)
	}
}

// mountLists mounts listApp and returns the dom (op log reset) and setter.
func mountLists(t *testing.T, lists ...[]string) (*memdom.DOM, *loom.Setter[int]) {
	t.Helper()

	dom, root := memdom.New()
	var setter *loom.Setter[int]
	loom.Mount(dom, root, loom.F(listApp(lists, &setter), nil))

	require.NotNil(t, setter)
	dom.ResetOps()
	return dom, setter
}

func assertOps(t *testing.T, want []string, dom *memdom.DOM) {
	t.Helper()

	if diff := cmp.Diff(want, dom.Ops()); diff != "" {
		t.Errorf("target ops mismatch (-want +got):\n%s\ntree:\n%s", diff, dom)
	}
}

func TestReconcile(t *testing.T) {
	t.Run("re-rendering the same tree is a no-op", func(t *testing.T) {
		dom, setter := mountLists(t, []string{"a", "b", "c"})

		setter.Set(0)

		assert.Empty(t, dom.Ops())
	})

	t.Run("one mismatched position tears down and rebuilds only itself", func(t *testing.T) {
		// first pass creates list#1, a#2, b#3, c#4
		dom, setter := mountLists(t, []string{"a", "b", "c"}, []string{"a", "x", "c"})

		setter.Set(1)

		assertOps(t, []string{
			"create x#5",
			"remove b#3 <- list#1",
			"append x#5 -> list#1",
		}, dom)
	})

	t.Run("pure append inserts the tail", func(t *testing.T) {
		dom, setter := mountLists(t, []string{"a", "b"}, []string{"a", "b", "c"})

		setter.Set(1)

		assertOps(t, []string{
			"create c#4",
			"append c#4 -> list#1",
		}, dom)
	})

	t.Run("pure truncation removes the tail", func(t *testing.T) {
		dom, setter := mountLists(t, []string{"a", "b", "c"}, []string{"a"})

		setter.Set(1)

		assertOps(t, []string{
			"remove b#3 <- list#1",
			"remove c#4 <- list#1",
		}, dom)
	})

	t.Run("shifted children are not realigned by type", func(t *testing.T) {
		// dropping the head misaligns every following position
		dom, setter := mountLists(t, []string{"a", "b", "c"}, []string{"b", "c"})

		setter.Set(1)

		assertOps(t, []string{
			"create b#5",
			"create c#6",
			"remove a#2 <- list#1",
			"remove b#3 <- list#1",
			"remove c#4 <- list#1",
			"append b#5 -> list#1",
			"append c#6 -> list#1",
		}, dom)
	})

	t.Run("update rewrites only changed properties", func(t *testing.T) {
		dom, root := memdom.New()

		var setter *loom.Setter[string]
		app := func(loom.Props) *loom.Node {
			color, setColor := loom.UseState("red")
			setter = setColor

			return loom.El("div", loom.Props{"id": "box", "color": color})
		}
		loom.Mount(dom, root, loom.F(app, nil))

		dom.ResetOps()
		setter.Set("blue")

		assertOps(t, []string{`set div#1 color=blue`}, dom)
	})

	t.Run("removed properties are cleared to empty", func(t *testing.T) {
		dom, root := memdom.New()

		var setter *loom.Setter[bool]
		app := func(loom.Props) *loom.Node {
			labelled, setLabelled := loom.UseState(true)
			setter = setLabelled

			props := loom.Props{}
			if labelled {
				props["label"] = "on"
			}
			return loom.El("div", props)
		}
		loom.Mount(dom, root, loom.F(app, nil))

		dom.ResetOps()
		setter.Set(false)

		assertOps(t, []string{"clear div#1 label"}, dom)

		div := root.Children()[0]
		assert.Equal(t, "", div.Prop("label"))
	})

	t.Run("changed listeners re-register without duplicate delivery", func(t *testing.T) {
		dom, root := memdom.New()

		clicks := 0
		var setter *loom.Setter[int]
		app := func(loom.Props) *loom.Node {
			gen, setGen := loom.UseState(0)
			setter = setGen

			// a fresh closure every render: the old listener must be
			// unregistered before the new one is added
			return loom.El("button", loom.Props{
				"onClick": func() { clicks += gen + 1 },
			})
		}
		loom.Mount(dom, root, loom.F(app, nil))

		button := root.Find("button")
		require.Equal(t, 1, button.ListenerCount("click"))

		setter.Set(1)

		assert.Equal(t, 1, button.ListenerCount("click"))
		button.Dispatch("click")
		assert.Equal(t, 2, clicks)
	})

	t.Run("nil children never occupy a diff position", func(t *testing.T) {
		dom, root := memdom.New()

		var setter *loom.Setter[int]
		app := func(loom.Props) *loom.Node {
			_, bump := loom.UseState(0)
			setter = bump

			// a typed nil child: the sibling after it must keep its
			// position across re-renders
			var hidden *loom.Node
			return loom.El("div", nil, hidden, loom.El("p", nil))
		}
		loom.Mount(dom, root, loom.F(app, nil))

		div := root.Children()[0]
		require.Len(t, div.Children(), 1)

		dom.ResetOps()
		setter.Set(0)

		assert.Empty(t, dom.Ops())
	})

	t.Run("removing a component that rendered nothing commits cleanly", func(t *testing.T) {
		dom, root := memdom.New()

		empty := func(loom.Props) *loom.Node { return nil }
		var setter *loom.Setter[bool]
		app := func(loom.Props) *loom.Node {
			showEmpty, setShow := loom.UseState(true)
			setter = setShow

			if showEmpty {
				return loom.El("div", nil, loom.F(empty, nil))
			}
			return loom.El("div", nil, loom.El("p", nil))
		}
		loom.Mount(dom, root, loom.F(app, nil))

		div := root.Children()[0]
		require.Empty(t, div.Children())

		// the removed unit is a component with no handle anywhere below it
		setter.Set(false)

		require.Len(t, div.Children(), 1)
		assert.Equal(t, "p", div.Children()[0].Tag())
	})

	t.Run("kind change reaches across component boundaries", func(t *testing.T) {
		dom, root := memdom.New()

		inner := func(loom.Props) *loom.Node {
			return loom.El("em", nil, "inner")
		}
		var setter *loom.Setter[bool]
		app := func(loom.Props) *loom.Node {
			showComponent, setShow := loom.UseState(true)
			setter = setShow

			if showComponent {
				return loom.El("div", nil, loom.F(inner, nil))
			}
			return loom.El("div", nil, loom.El("strong", nil, "host"))
		}
		loom.Mount(dom, root, loom.F(app, nil))

		div := root.Children()[0]
		require.Equal(t, "em", div.Children()[0].Tag())

		// the removed unit is a component: removal must descend to its
		// handle-owning child
		setter.Set(false)

		require.Len(t, div.Children(), 1)
		assert.Equal(t, "strong", div.Children()[0].Tag())
	})
}
