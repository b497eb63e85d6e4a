// Package memdom provides an in-memory render target for loom: a DOM-like
// tree of elements that records every mutation applied to it. It backs the
// engine's tests and non-browser hosts such as the terminal demo.
package memdom

import (
	"fmt"
	"reflect"
	"strings"

	tp "github.com/xlab/treeprint"

	"github.com/AnatoleLucet/loom"
)

// DOM owns a tree of elements and the log of mutations applied to them.
type DOM struct {
	root   *Element
	ops    []string
	nextID int
}

// New creates an empty DOM and returns it along with its root container
// element, ready to be passed to loom.Mount.
func New() (*DOM, *Element) {
	d := &DOM{nextID: 1}
	d.root = &Element{
		dom:       d,
		tag:       "#root",
		props:     map[string]any{},
		listeners: map[string][]any{},
	}
	return d, d.root
}

// CreateElement allocates a detached element with the given tag.
func (d *DOM) CreateElement(tag string) loom.Handle {
	e := d.newElement(tag)
	d.logf("create %s", e.label())
	return e
}

// CreateText allocates a detached text element.
func (d *DOM) CreateText(text string) loom.Handle {
	e := d.newElement("#text")
	if text != "" {
		e.props["nodeValue"] = text
	}
	d.logf("create %s", e.label())
	return e
}

func (d *DOM) newElement(tag string) *Element {
	e := &Element{
		dom:       d,
		id:        d.nextID,
		tag:       tag,
		props:     map[string]any{},
		listeners: map[string][]any{},
	}
	d.nextID++
	return e
}

// Root returns the root container element.
func (d *DOM) Root() *Element { return d.root }

// Ops returns the mutations recorded since the last ResetOps, in order.
func (d *DOM) Ops() []string { return d.ops }

// ResetOps clears the mutation log.
func (d *DOM) ResetOps() { d.ops = d.ops[:0] }

func (d *DOM) logf(format string, args ...any) {
	d.ops = append(d.ops, fmt.Sprintf(format, args...))
}

// String renders the attached tree, one branch per element.
func (d *DOM) String() string {
	tree := tp.NewWithRoot(d.root.label())
	d.root.addBranches(tree)
	return tree.String()
}

// Element is one node of the in-memory tree. It implements loom.Handle.
type Element struct {
	dom *DOM
	id  int
	tag string

	props     map[string]any
	listeners map[string][]any

	parent   *Element
	children []*Element
}

func (e *Element) SetProperty(name string, value any) {
	e.dom.logf("set %s %s=%v", e.label(), name, value)
	e.props[name] = value
}

func (e *Element) ClearProperty(name string) {
	e.dom.logf("clear %s %s", e.label(), name)
	e.props[name] = ""
}

func (e *Element) AddListener(event string, listener any) {
	e.dom.logf("listen %s %s", e.label(), event)
	e.listeners[event] = append(e.listeners[event], listener)
}

func (e *Element) RemoveListener(event string, listener any) {
	e.dom.logf("unlisten %s %s", e.label(), event)

	for i, l := range e.listeners[event] {
		if sameFunc(l, listener) {
			e.listeners[event] = append(e.listeners[event][:i], e.listeners[event][i+1:]...)
			return
		}
	}
}

func (e *Element) AppendChild(child loom.Handle) {
	c := child.(*Element)
	e.dom.logf("append %s -> %s", c.label(), e.label())

	c.parent = e
	e.children = append(e.children, c)
}

func (e *Element) RemoveChild(child loom.Handle) {
	c := child.(*Element)
	e.dom.logf("remove %s <- %s", c.label(), e.label())

	kept := e.children[:0]
	for _, ch := range e.children {
		if ch != c {
			kept = append(kept, ch)
		}
	}
	e.children = kept
	c.parent = nil
}

// Tag returns the element's tag name; "#text" for text elements.
func (e *Element) Tag() string { return e.tag }

// Prop returns the named property's current value.
func (e *Element) Prop(name string) any { return e.props[name] }

// Parent returns the element's parent, nil while detached.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the attached children in order.
func (e *Element) Children() []*Element { return e.children }

// ListenerCount returns how many listeners are registered for an event.
func (e *Element) ListenerCount(event string) int { return len(e.listeners[event]) }

// Dispatch invokes every func() listener registered for the event, in
// registration order. It iterates a snapshot: a listener may re-render and
// rewrite the registration list mid-dispatch.
func (e *Element) Dispatch(event string) {
	listeners := append([]any(nil), e.listeners[event]...)
	for _, l := range listeners {
		if fn, ok := l.(func()); ok {
			fn()
		}
	}
}

// Find returns the first element with the given tag in depth-first order,
// searching this element's subtree, or nil.
func (e *Element) Find(tag string) *Element {
	if e.tag == tag {
		return e
	}
	for _, c := range e.children {
		if found := c.Find(tag); found != nil {
			return found
		}
	}
	return nil
}

// InnerText concatenates the text content of the element's subtree.
func (e *Element) InnerText() string {
	var b strings.Builder
	e.innerText(&b)
	return b.String()
}

func (e *Element) innerText(b *strings.Builder) {
	if e.tag == "#text" {
		fmt.Fprint(b, e.props["nodeValue"])
		return
	}
	for _, c := range e.children {
		c.innerText(b)
	}
}

// sameFunc matches listener values by code pointer; funcs are not comparable
// with ==, and closures of one literal share a code pointer, so removal
// drops only the first match. The engine unregisters a listener before
// registering its replacement, so at most one candidate is present.
func sameFunc(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != reflect.Func || vb.Kind() != reflect.Func {
		return a == b
	}
	return va.Pointer() == vb.Pointer()
}

func (e *Element) label() string {
	return fmt.Sprintf("%s#%d", e.tag, e.id)
}

func (e *Element) addBranches(branch tp.Tree) {
	for _, c := range e.children {
		if c.tag == "#text" {
			branch.AddNode(fmt.Sprintf("%q", fmt.Sprint(c.props["nodeValue"])))
			continue
		}
		c.addBranches(branch.AddBranch(c.label()))
	}
}
