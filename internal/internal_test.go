package internal

// Test doubles for the render-target boundary: handles that absorb every
// primitive call.

type nopHandle struct{ tag string }

func (*nopHandle) SetProperty(string, any)    {}
func (*nopHandle) ClearProperty(string)       {}
func (*nopHandle) AddListener(string, any)    {}
func (*nopHandle) RemoveListener(string, any) {}
func (*nopHandle) AppendChild(Handle)         {}
func (*nopHandle) RemoveChild(Handle)         {}

type nopTarget struct{}

func (nopTarget) CreateElement(tag string) Handle { return &nopHandle{tag: tag} }
func (nopTarget) CreateText(string) Handle        { return &nopHandle{tag: "#text"} }

func host(tag string) *Node { return NewElement(HostKind(tag), nil) }

// committedChain builds a parent fiber with an already-committed child chain
// of the given tags, every fiber owning a handle.
func committedChain(tags ...string) *Fiber {
	parent := &Fiber{kind: HostKind("parent"), dom: &nopHandle{tag: "parent"}}

	var prev *Fiber
	for _, tag := range tags {
		f := &Fiber{
			kind:   HostKind(tag),
			props:  Props{},
			dom:    &nopHandle{tag: tag},
			parent: parent,
		}
		if prev == nil {
			parent.child = f
		} else {
			prev.sibling = f
		}
		prev = f
	}

	return parent
}

func childSlice(parent *Fiber) []*Fiber {
	var out []*Fiber
	for f := parent.child; f != nil; f = f.sibling {
		out = append(out, f)
	}
	return out
}
