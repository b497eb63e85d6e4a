package internal

// Cell is one positional state slot of a component fiber: the resolved value
// plus the queue of pending update functions. The cell object itself is
// carried across passes, so an updater handle created in one render keeps
// feeding the same cell in every later one.
type Cell struct {
	value any
	queue []func(any) any
}

// UseState binds the next state cell of the component currently rendering.
// Cells are positional: the Nth call in a render always binds the Nth cell,
// so components must not reorder or conditionally skip state calls across
// renders (documented caller contract, not enforced).
//
// The returned enqueue func appends an update to this cell's queue and
// schedules a new, coalesced pass. The cell belongs to the committed tree,
// so the next pass observes the queued update through the fiber's
// alternate.
func (r *Runtime) UseState(initial any) (any, func(func(any) any)) {
	fiber := r.wipFiber
	if fiber == nil {
		panic("loom: UseState called outside a component render")
	}

	var cell *Cell
	if fiber.alternate != nil && r.hookIndex < len(fiber.alternate.hooks) {
		cell = fiber.alternate.hooks[r.hookIndex]
	}

	if cell == nil {
		cell = &Cell{value: initial}
	} else {
		// fold the pending updates, in enqueue order, into this render's
		// resolved value, then start a fresh queue
		for _, update := range cell.queue {
			cell.value = update(cell.value)
		}
		cell.queue = nil
	}

	fiber.hooks = append(fiber.hooks, cell)
	r.hookIndex++

	enqueue := func(update func(any) any) {
		cell.queue = append(cell.queue, update)
		r.Invalidate()
	}

	return cell.value, enqueue
}
