package internal

// Effect classifies the mutation a fiber carries into the commit phase.
type Effect int

const (
	EffectNone Effect = iota
	EffectInsert
	EffectUpdate
	EffectRemove
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectInsert:
		return "insert"
	case EffectUpdate:
		return "update"
	case EffectRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Fiber is the mutable bookkeeping record for one tree position during a
// render pass. It extends a Node with its render history: the target handle,
// the structural links of the in-progress tree, the fiber that held the same
// position in the last committed pass, the pending mutation, and the state
// cells of component fibers.
type Fiber struct {
	kind  Kind
	props Props

	// dom is the owned render-target handle. Component fibers never own one.
	dom Handle

	parent  *Fiber
	child   *Fiber
	sibling *Fiber

	// alternate is a non-owning reference to the fiber at the same position
	// in the last committed pass. Traversal follows it one hop for diffing,
	// never transitively.
	alternate *Fiber

	effect Effect

	// hooks are the positional state cells; component fibers only.
	hooks []*Cell
}
