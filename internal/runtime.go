package internal

// Runtime is the engine's explicit pass state: the committed tree, the
// in-progress tree, the work-loop cursor, the pass-scoped removal list and
// the hook bookkeeping of the component currently rendering. One runtime
// drives one mounted tree; GetRuntime hands out the instance for the calling
// goroutine.
type Runtime struct {
	target    Target
	scheduler Scheduler

	// currentRoot is the committed tree; wipRoot the in-progress one, nil
	// while idle. At most one in-progress tree exists at a time.
	currentRoot *Fiber
	wipRoot     *Fiber

	// nextUnit is the work-loop cursor: the next fiber to process, nil when
	// the pass is complete. Suspension between slices happens here and only
	// here.
	nextUnit *Fiber

	// deletions collects fibers marked for removal during this pass; they
	// are not linked into the new tree.
	deletions []*Fiber

	// wipFiber/hookIndex bind UseState calls to the component currently
	// rendering.
	wipFiber  *Fiber
	hookIndex int

	running bool // a slice (or its commit) is executing right now
	pending bool // re-render requested while a pass was in flight
}

func NewRuntime() *Runtime {
	return &Runtime{scheduler: Synchronous()}
}

// SetScheduler replaces the host scheduler. Must be called before Mount.
func (r *Runtime) SetScheduler(s Scheduler) {
	r.scheduler = s
}

// Mount starts the first pass: a fresh root fiber owning the container
// handle, with the given node as its only child. Mounting again replaces the
// previous tree wholesale.
func (r *Runtime) Mount(target Target, container Handle, root *Node) {
	r.target = target
	r.currentRoot = nil
	r.pending = false
	r.deletions = r.deletions[:0]

	r.wipRoot = &Fiber{
		kind:  HostKind("#root"),
		props: Props{childrenProp: []*Node{root}},
		dom:   container,
	}
	r.nextUnit = r.wipRoot

	tracer().Debugf("mounting %v", root.Kind)
	r.schedule()
}

// Invalidate schedules a brand-new pass over the committed tree. Calls made
// while a pass is already scheduled or in flight coalesce: the queued state
// updates are picked up when their cell is next read, and one follow-up pass
// is guaranteed after the in-flight one commits.
func (r *Runtime) Invalidate() {
	if r.running || (r.wipRoot != nil && r.nextUnit != r.wipRoot) {
		// the pass is under way; its cells may already be resolved, so one
		// follow-up pass runs after it commits
		r.pending = true
		return
	}
	if r.wipRoot != nil {
		// pass scheduled but not started: the update is folded when its
		// cell is next read
		return
	}
	if r.currentRoot == nil {
		return
	}

	r.preparePass()
	r.schedule()
}

// preparePass sets up an in-progress root whose alternate is the committed
// root and resets the removal list.
func (r *Runtime) preparePass() {
	r.wipRoot = &Fiber{
		kind:      r.currentRoot.kind,
		props:     r.currentRoot.props,
		dom:       r.currentRoot.dom,
		alternate: r.currentRoot,
	}
	r.deletions = r.deletions[:0]
	r.nextUnit = r.wipRoot
}

func (r *Runtime) schedule() {
	r.scheduler.RequestIdle(r.workLoop)
}
