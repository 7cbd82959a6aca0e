package csg

// Traverser drives a depth-first walk of a node tree, calling the
// visitor on pre-order entry and post-order exit of every node. The
// walk is plain call-stack recursion: stack depth is bounded by tree
// depth, so callers with user-controlled trees must guard depth
// upstream.
type Traverser struct {
	visitor Visitor
	root    *Node
	session *Session
}

// NewTraverser prepares a traversal of the tree rooted at root. The
// session carries the optional progress registration; it may be nil
// for untracked walks.
func NewTraverser(v Visitor, root *Node, session *Session) *Traverser {
	return &Traverser{visitor: v, root: root, session: session}
}

// Execute runs the traversal. It reports AbortTraversal if the visitor
// aborted, ContinueTraversal otherwise.
func (t *Traverser) Execute() Response {
	if t.root == nil {
		return ContinueTraversal
	}
	return t.traverse(t.root, nil)
}

func (t *Traverser) traverse(n *Node, parent *Node) Response {
	state := State{prefix: true, parent: parent}
	resp := n.Accept(&state, t.visitor)
	t.session.reportProgress(n)
	if resp == AbortTraversal {
		return AbortTraversal
	}

	if resp == ContinueTraversal {
		for _, c := range n.children {
			if t.traverse(c, n) == AbortTraversal {
				return AbortTraversal
			}
		}
	}
	// A prune skips the children but the node still gets its exit visit.

	state.prefix, state.postfix = false, true
	if n.Accept(&state, t.visitor) == AbortTraversal {
		return AbortTraversal
	}
	return ContinueTraversal
}
