//go:build js && wasm

// Package jsdom renders to the real browser DOM through syscall/js, and
// provides a scheduler backed by requestIdleCallback.
package jsdom

import (
	"syscall/js"
	"time"

	"github.com/AnatoleLucet/loom"
)

// Document wraps the global document as a loom.Target.
type Document struct {
	doc js.Value
}

func New() *Document {
	return &Document{js.Global().Get("document")}
}

func (d *Document) CreateElement(tag string) loom.Handle {
	return newHandle(d.doc.Call("createElement", tag))
}

func (d *Document) CreateText(text string) loom.Handle {
	return newHandle(d.doc.Call("createTextNode", text))
}

// ElementByID wraps an existing DOM element, typically the mount container.
func (d *Document) ElementByID(id string) loom.Handle {
	return newHandle(d.doc.Call("getElementById", id))
}

type handle struct {
	v js.Value

	// registered js callbacks by event name, for removal. Go funcs carry no
	// usable identity, and a handle's property set holds at most one
	// listener per event, so the event name is the registration key.
	funcs map[string]js.Func
}

func newHandle(v js.Value) *handle {
	return &handle{v: v, funcs: map[string]js.Func{}}
}

func (h *handle) SetProperty(name string, value any) {
	h.v.Set(name, js.ValueOf(value))
}

func (h *handle) ClearProperty(name string) {
	h.v.Set(name, "")
}

func (h *handle) AddListener(event string, listener any) {
	fn, ok := listener.(func())
	if !ok {
		return
	}
	if prev, ok := h.funcs[event]; ok {
		h.v.Call("removeEventListener", event, prev)
		prev.Release()
	}

	f := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	h.funcs[event] = f
	h.v.Call("addEventListener", event, f)
}

func (h *handle) RemoveListener(event string, _ any) {
	f, ok := h.funcs[event]
	if !ok {
		return
	}

	h.v.Call("removeEventListener", event, f)
	f.Release()
	delete(h.funcs, event)
}

func (h *handle) AppendChild(child loom.Handle) {
	h.v.Call("appendChild", child.(*handle).v)
}

func (h *handle) RemoveChild(child loom.Handle) {
	h.v.Call("removeChild", child.(*handle).v)
}

// Scheduler delivers work-loop slices through requestIdleCallback, so
// rendering only runs while the browser is otherwise idle.
type Scheduler struct{}

func (Scheduler) RequestIdle(fn func(loom.Frame)) {
	var cb js.Func
	cb = js.FuncOf(func(_ js.Value, args []js.Value) any {
		fn(frame{args[0]})
		cb.Release()
		return nil
	})
	js.Global().Call("requestIdleCallback", cb)
}

type frame struct {
	deadline js.Value
}

func (f frame) TimeRemaining() time.Duration {
	ms := f.deadline.Call("timeRemaining").Float()
	return time.Duration(ms * float64(time.Millisecond))
}
