package internal

import "reflect"

// commitRoot applies a fully-reconciled pass to the render target in one
// uninterrupted walk, then promotes the in-progress tree to current.
// Removals run first, each entry independently; insertions and updates
// follow in depth-first order.
func (r *Runtime) commitRoot() {
	tracer().Debugf("commit: %d removals", len(r.deletions))

	for _, f := range r.deletions {
		r.commitDeletion(f)
	}
	r.deletions = r.deletions[:0]

	r.commitWork(r.wipRoot.child)

	// the promoted tree's history ends here; reconciliation already cut the
	// reused children's links, the root has no reconciler and is cut now, so
	// no committed root ever chains back past its predecessor
	r.wipRoot.alternate = nil
	r.currentRoot = r.wipRoot
	r.wipRoot = nil
}

func (r *Runtime) commitWork(f *Fiber) {
	if f == nil {
		return
	}

	// component fibers own no handle and are transparent here; their
	// descendants are still visited
	if f.dom != nil {
		switch f.effect {
		case EffectInsert:
			parentDom(f).AppendChild(f.dom)
		case EffectUpdate:
			var prev Props
			if f.alternate != nil {
				prev = f.alternate.props
			}
			applyProps(f.dom, prev, f.props)
		}
	}

	r.commitWork(f.child)
	r.commitWork(f.sibling)
}

// commitDeletion detaches a removed subtree. Removal recurses using the old
// tree's child links: a component fiber owns no handle, so removal descends
// until it reaches one; detaching that handle removes the whole subtree in
// the target's own model. A component that rendered nothing owns no handle
// anywhere below it, so there is nothing to detach.
func (r *Runtime) commitDeletion(f *Fiber) {
	d := f
	for d != nil && d.dom == nil {
		d = d.child
	}
	if d == nil {
		return
	}
	parentDom(f).RemoveChild(d.dom)
}

// parentDom walks up to the nearest ancestor that owns a target handle.
func parentDom(f *Fiber) Handle {
	p := f.parent
	for p.dom == nil {
		p = p.parent
	}
	return p.dom
}

// applyProps applies the difference between two property sets to a handle.
// Properties gone from the new set are cleared to empty, added or changed
// ones are set. Listener values are funcs, and funcs carry no usable
// equality (two closures of the same literal share a code pointer), so a
// listener property always counts as changed: every old listener is
// unregistered before any new one is added, keeping delivery single. A nil
// prev is the empty baseline of a freshly created handle.
func applyProps(dom Handle, prev, next Props) {
	for name, value := range prev {
		if IsListener(name) {
			dom.RemoveListener(EventName(name), value)
		}
	}

	for name := range prev {
		if IsListener(name) || name == childrenProp {
			continue
		}
		if _, ok := next[name]; !ok {
			dom.ClearProperty(name)
		}
	}

	for name, value := range next {
		if IsListener(name) || name == childrenProp {
			continue
		}
		if old, ok := prev[name]; !ok || !sameValue(old, value) {
			dom.SetProperty(name, value)
		}
	}

	for name, value := range next {
		if IsListener(name) {
			dom.AddListener(EventName(name), value)
		}
	}
}

// sameValue compares property values with ==. Uncomparable values count as
// always changed.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !reflect.ValueOf(a).Comparable() {
		return false
	}
	return a == b
}
