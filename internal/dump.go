package internal

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// DumpTree renders the committed fiber tree, one branch per fiber, for
// debugging and test logs.
func (r *Runtime) DumpTree() string {
	if r.currentRoot == nil {
		return "(no committed tree)"
	}

	tree := tp.NewWithRoot("#root")
	dumpChain(tree, r.currentRoot.child)
	return tree.String()
}

func dumpChain(branch tp.Tree, f *Fiber) {
	for ; f != nil; f = f.sibling {
		dumpChain(branch.AddBranch(f.describe()), f.child)
	}
}

func (f *Fiber) describe() string {
	if f.kind.IsText() {
		return fmt.Sprintf("%q", f.props[TextProp])
	}
	if len(f.hooks) > 0 {
		return fmt.Sprintf("%v [%d cells]", f.kind, len(f.hooks))
	}
	return f.kind.String()
}
