package csg

import "fmt"

// Response is the per-node traversal signal returned by a visitor.
type Response int

const (
	// ContinueTraversal descends into the node's children.
	ContinueTraversal Response = iota
	// PruneTraversal skips the node's children and proceeds to siblings.
	PruneTraversal
	// AbortTraversal terminates the whole traversal immediately.
	AbortTraversal
)

func (r Response) String() string {
	switch r {
	case ContinueTraversal:
		return "continue"
	case PruneTraversal:
		return "prune"
	case AbortTraversal:
		return "abort"
	default:
		return "unknown"
	}
}

// State threads per-traversal context through the recursion. Each node
// is visited twice: once with the prefix flag set (pre-order entry) and
// once with the postfix flag set (post-order exit).
type State struct {
	prefix  bool
	postfix bool
	parent  *Node
}

// IsPrefix reports whether this is the pre-order entry visit.
func (s *State) IsPrefix() bool { return s.prefix }

// IsPostfix reports whether this is the post-order exit visit.
func (s *State) IsPostfix() bool { return s.postfix }

// Parent returns the node whose subtree is being visited, or nil at
// the root.
func (s *State) Parent() *Node { return s.parent }

// Visitor is the capability that walks a tree. Accept dispatches to the
// method matching the node's category, so visitors process nodes by
// role without inspecting concrete kinds themselves.
type Visitor interface {
	VisitGroup(state *State, n *Node) Response
	VisitRoot(state *State, n *Node) Response
	VisitIntersection(state *State, n *Node) Response
	VisitPoly(state *State, n *Node) Response
	VisitLeaf(state *State, n *Node) Response
}

// BaseVisitor answers ContinueTraversal for every role. Embed it to
// implement only the roles a visitor cares about.
type BaseVisitor struct{}

func (BaseVisitor) VisitGroup(*State, *Node) Response        { return ContinueTraversal }
func (BaseVisitor) VisitRoot(*State, *Node) Response         { return ContinueTraversal }
func (BaseVisitor) VisitIntersection(*State, *Node) Response { return ContinueTraversal }
func (BaseVisitor) VisitPoly(*State, *Node) Response         { return ContinueTraversal }
func (BaseVisitor) VisitLeaf(*State, *Node) Response         { return ContinueTraversal }

// Accept performs the double dispatch: the node tells the visitor which
// role it plays, the visitor decides how to process it.
func (n *Node) Accept(state *State, v Visitor) Response {
	switch n.kind {
	case KindGroup:
		return v.VisitGroup(state, n)
	case KindRoot:
		return v.VisitRoot(state, n)
	case KindIntersection:
		return v.VisitIntersection(state, n)
	case KindPoly:
		return v.VisitPoly(state, n)
	case KindLeaf:
		return v.VisitLeaf(state, n)
	default:
		panic(fmt.Sprintf("csg: node %s has inconsistent kind %d", n, n.kind))
	}
}
