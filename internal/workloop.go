package internal

import "time"

// yieldThreshold is the minimum slice budget needed to start another unit.
const yieldThreshold = time.Millisecond

// workLoop drives one scheduling slice: it processes fibers one at a time
// until none is left or the frame's budget runs out, commits when the pass is
// complete, and re-arms itself while work remains. No fiber is ever
// interrupted mid-processing; the slice boundary is always between units.
func (r *Runtime) workLoop(frame Frame) {
	if r.running { // reentrant host callback
		return
	}
	r.running = true

	for r.nextUnit != nil && frame.TimeRemaining() > yieldThreshold {
		r.nextUnit = r.performUnit(r.nextUnit)
	}

	if r.nextUnit == nil && r.wipRoot != nil {
		r.commitRoot()
	}

	// A state update that arrived mid-pass is only observed by the next
	// pass; start it now that the previous one has committed.
	if r.pending && r.wipRoot == nil && r.currentRoot != nil {
		r.pending = false
		r.preparePass()
	}

	r.running = false

	if r.nextUnit != nil {
		r.schedule()
	}
}

// performUnit processes exactly one fiber and returns the next one in
// depth-first order: first child if any, else the nearest ancestor's sibling.
func (r *Runtime) performUnit(f *Fiber) *Fiber {
	if f.kind.IsComponent() {
		r.renderComponent(f)
	} else {
		if f.dom == nil {
			f.dom = r.createDom(f)
		}
		r.reconcileChildren(f, f.props.Children())
	}

	if f.child != nil {
		return f.child
	}
	for u := f; u != nil; u = u.parent {
		if u.sibling != nil {
			return u.sibling
		}
	}
	return nil
}

// renderComponent invokes the component function with the fiber's props,
// with hook bookkeeping bound to this fiber. Its single resulting node is
// the one-element input to reconciliation; a nil result renders nothing.
func (r *Runtime) renderComponent(f *Fiber) {
	r.wipFiber = f
	r.hookIndex = 0
	f.hooks = f.hooks[:0]

	child := f.kind.comp(f.props)

	r.wipFiber = nil

	var children []*Node
	if child != nil {
		children = []*Node{child}
	}
	r.reconcileChildren(f, children)
}

// createDom allocates the fiber's target handle and pre-applies its full
// property set, diffed against an empty baseline. This is the only target
// mutation outside commit; it is safe because the handle is not yet attached
// to the visible tree.
func (r *Runtime) createDom(f *Fiber) Handle {
	var dom Handle
	if f.kind.IsText() {
		dom = r.target.CreateText("")
	} else {
		dom = r.target.CreateElement(f.kind.Tag())
	}

	applyProps(dom, nil, f.props)
	return dom
}
