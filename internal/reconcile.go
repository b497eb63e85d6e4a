package internal

// reconcileChildren diffs a fiber's new child descriptions against the old
// child chain from its alternate, producing the new child chain with
// mutation markers.
//
// The diff is a single synchronized pass over both sequences by position; no
// lookahead, no keys. A reordered child list therefore tears down and
// rebuilds the misaligned suffix instead of moving nodes; that trade-off is
// deliberate.
func (r *Runtime) reconcileChildren(wip *Fiber, children []*Node) {
	var old *Fiber
	if wip.alternate != nil {
		old = wip.alternate.child
	}

	var prev *Fiber

	for index := 0; index < len(children) || old != nil; index++ {
		var desc *Node
		if index < len(children) {
			desc = children[index]
		}

		same := old != nil && desc != nil && old.kind.Same(desc.Kind)

		var next *Fiber
		switch {
		case same:
			// same type at the same position: keep the handle and node
			// identity, adopt the new props
			next = &Fiber{
				kind:      old.kind,
				props:     desc.Props,
				dom:       old.dom,
				parent:    wip,
				alternate: old,
				effect:    EffectUpdate,
			}
			// one-hop rule: the old fiber's own history is dead now,
			// cutting it keeps at most two trees alive
			old.alternate = nil
		case desc != nil:
			next = &Fiber{
				kind:   desc.Kind,
				props:  desc.Props,
				parent: wip,
				effect: EffectInsert,
			}
		}

		if old != nil && !same {
			old.effect = EffectRemove
			r.deletions = append(r.deletions, old)
			tracer().Debugf("reconcile: removing %v at index %d", old.kind, index)
		}

		if old != nil {
			old = old.sibling
		}

		if next != nil {
			if prev == nil {
				wip.child = next
			} else {
				prev.sibling = next
			}
			prev = next
		}
	}
}
