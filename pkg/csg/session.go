package csg

// Session is the build context for one compile cycle. It owns the
// instantiation counter and the optional progress registration that the
// reference design kept as process globals. A session is single-owner
// state: one tree build and its traversals at a time, never shared
// across concurrent compiles.
type Session struct {
	nextIdx  int
	hasRoot  bool
	progress *progressState
}

// NewSession returns a session ready to build a fresh tree. Indices
// start at 1.
func NewSession() *Session {
	return &Session{nextIdx: 1}
}

// Reset prepares the session for building a new tree from scratch.
// Indices restart at 1 and any progress registration is dropped, so
// indices are stable and comparable only within one compile's tree.
func (s *Session) Reset() {
	s.nextIdx = 1
	s.hasRoot = false
	s.progress = nil
}

func (s *Session) newNode(kind NodeKind, mi *ModuleInstantiation) *Node {
	n := &Node{kind: kind, idx: s.nextIdx, modinst: mi}
	s.nextIdx++
	return n
}

// NewGroup creates a grouping node.
func (s *Session) NewGroup(mi *ModuleInstantiation) *Node {
	return s.newNode(KindGroup, mi)
}

// NewRoot creates the tree root. Exactly one root exists per tree;
// creating a second without Reset is a caller bug.
func (s *Session) NewRoot(mi *ModuleInstantiation) *Node {
	if s.hasRoot {
		panic("csg: session already built a root node")
	}
	s.hasRoot = true
	return s.newNode(KindRoot, mi)
}

// NewIntersection creates a boolean-intersection marker node.
func (s *Session) NewIntersection(mi *ModuleInstantiation) *Node {
	return s.newNode(KindIntersection, mi)
}

// NewPoly creates an intermediate polygon-category node.
func (s *Session) NewPoly(mi *ModuleInstantiation) *Node {
	return s.newNode(KindPoly, mi)
}

// NewLeaf creates a terminal node backed by the given geometry source.
func (s *Session) NewLeaf(src GeometrySource, mi *ModuleInstantiation) *Node {
	n := s.newNode(KindLeaf, mi)
	n.source = src
	return n
}
