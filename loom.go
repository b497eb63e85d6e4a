// Package loom is a minimal incremental-rendering engine for tree-shaped UI
// descriptions: it converts a declarative node tree into mutations against a
// persistent render target, and re-renders after state changes by diffing
// against the previously committed tree instead of rebuilding it.
package loom

import "github.com/AnatoleLucet/loom/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

type (
	// Node is the immutable description of one UI tree position.
	Node = internal.Node
	// Props maps property names to values. Names starting with "on" are
	// event listeners ("onClick" registers for "click").
	Props = internal.Props
	// Component is a render function from props to a single node.
	Component = internal.Component

	// Target and Handle are the render-target primitive capability the
	// commit phase calls into; see the memdom and jsdom packages for
	// implementations.
	Target = internal.Target
	Handle = internal.Handle

	// Scheduler and Frame are the host's idle-time primitive.
	Scheduler = internal.Scheduler
	Frame     = internal.Frame
)

// El describes a host element. Children may be nodes, nested sequences of
// nodes, or primitive values, which are promoted to text nodes.
func El(tag string, props Props, children ...any) *Node {
	return internal.NewElement(internal.HostKind(tag), props, children...)
}

// Text describes a text node holding the stringified value.
func Text(value any) *Node {
	return internal.NewText(value)
}

// F describes a component node. The component function is invoked with the
// node's props (children included) on every pass that reaches it.
//
// Components are identified by their function's code identity: two closures
// made from the same function literal count as the same component, so a
// re-render that swaps one such closure for another at the same position
// reuses the existing instance's handles and state. Callers that need two
// positions to be distinct components must use distinct functions, not two
// closures of one factory.
func F(fn Component, props Props, children ...any) *Node {
	return internal.NewElement(internal.ComponentKind(fn), props, children...)
}

// Mount begins the first render pass of root under the given container
// handle. The engine instance is bound to the calling goroutine.
func Mount(target Target, container Handle, root *Node) {
	internal.GetRuntime().Mount(target, container, root)
}

// SetScheduler replaces the host scheduler for the calling goroutine's
// engine. Must be called before Mount. The default runs every pass to
// completion synchronously.
func SetScheduler(s Scheduler) {
	internal.GetRuntime().SetScheduler(s)
}

// Synchronous returns the run-to-completion scheduler.
func Synchronous() Scheduler {
	return internal.Synchronous()
}

// Dump renders the committed tree for debugging.
func Dump() string {
	return internal.GetRuntime().DumpTree()
}

// Setter updates one state cell. Both forms append to the cell's pending
// queue and schedule a coalesced re-render; updates are folded, in order,
// into the value the next time the owning component renders.
type Setter[T any] struct {
	enqueue func(func(any) any)
}

// Set queues a replacement value.
func (s *Setter[T]) Set(v T) {
	s.enqueue(func(any) any { return v })
}

// Update queues an old-to-new update function.
func (s *Setter[T]) Update(fn func(T) T) {
	s.enqueue(func(old any) any { return fn(as[T](old)) })
}

// UseState returns the current value of the next state cell of the component
// being rendered, creating it with the initial value on first render.
//
// Cells bind by call order: the Nth UseState call in a render always binds
// the Nth cell, so calls must not be reordered or made conditional across
// renders.
func UseState[T any](initial T) (T, *Setter[T]) {
	value, enqueue := internal.GetRuntime().UseState(initial)
	return as[T](value), &Setter[T]{enqueue}
}
