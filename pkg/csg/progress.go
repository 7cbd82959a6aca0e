package csg

// progressReportCount is the number of evenly spaced report points per
// progress-tracked traversal.
const progressReportCount = 50

// ProgressFunc receives the node being visited, the opaque context
// registered with it, and the node's progress mark.
type ProgressFunc func(n *Node, ctx interface{}, mark int)

type progressState struct {
	f     ProgressFunc
	ctx   interface{}
	total int
	step  int
}

// EnableProgress registers a progress callback for traversals run under
// this session and performs the preparation pass: it counts the nodes
// of the tree and stamps each with a mark reflecting its position in
// instantiation order. Purely observational; results of a traversal are
// identical with progress disabled.
func (s *Session) EnableProgress(root *Node, f ProgressFunc, ctx interface{}) {
	total := 0
	var prep func(n *Node)
	prep = func(n *Node) {
		for _, c := range n.children {
			prep(c)
		}
		total++
		n.progressMark = total
	}
	prep(root)

	step := total / progressReportCount
	if step < 1 {
		step = 1
	}
	s.progress = &progressState{f: f, ctx: ctx, total: total, step: step}
}

// FinishProgress drops the progress registration.
func (s *Session) FinishProgress() {
	s.progress = nil
}

// reportProgress fires the callback when the node's mark crosses one of
// the evenly spaced report thresholds.
func (s *Session) reportProgress(n *Node) {
	if s == nil || s.progress == nil {
		return
	}
	p := s.progress
	if n.progressMark%p.step == 0 {
		p.f(n, p.ctx, n.progressMark)
	}
}
