// Package evaluate resolves a scene-graph node tree to a single
// geometry value using a geometry kernel. It is a consumer of the csg
// traversal protocol: groups compose their children by union,
// intersection markers by boolean intersection, and leaves synthesize
// their own geometry.
package evaluate

import (
	"fmt"

	"github.com/adze-cad/adze/pkg/csg"
	"github.com/adze-cad/adze/pkg/geom"
	"github.com/adze-cad/adze/pkg/kernel"
)

// Evaluator resolves node trees with a fixed kernel backend.
type Evaluator struct {
	k kernel.Kernel
}

// New returns an evaluator backed by k.
func New(k kernel.Kernel) *Evaluator {
	return &Evaluator{k: k}
}

// Evaluate walks the tree rooted at root and returns its resolved
// geometry. An empty tree yields nil geometry and no error. The session
// may be nil; it only carries progress registration.
func (e *Evaluator) Evaluate(root *csg.Node, session *csg.Session) (geom.Geometry, error) {
	if root == nil {
		return nil, nil
	}

	v := &collectVisitor{k: e.k}
	v.push()
	csg.NewTraverser(v, root, session).Execute()
	if v.err != nil {
		return nil, v.err
	}
	return v.combine(v.pop(), opUnion)
}

type boolOp int

const (
	opUnion boolOp = iota
	opIntersection
)

// collectVisitor accumulates child geometries on a frame stack: a
// pre-order visit of a composite node opens a frame, the post-order
// visit closes it and folds the collected children into one geometry.
type collectVisitor struct {
	k     kernel.Kernel
	stack [][]geom.Geometry
	err   error
}

func (v *collectVisitor) push() {
	v.stack = append(v.stack, nil)
}

func (v *collectVisitor) pop() []geom.Geometry {
	top := v.stack[len(v.stack)-1]
	v.stack = v.stack[:len(v.stack)-1]
	return top
}

func (v *collectVisitor) add(g geom.Geometry) {
	v.stack[len(v.stack)-1] = append(v.stack[len(v.stack)-1], g)
}

func (v *collectVisitor) composite(state *csg.State, op boolOp) csg.Response {
	if state.IsPrefix() {
		v.push()
		return csg.ContinueTraversal
	}
	g, err := v.combine(v.pop(), op)
	if err != nil {
		v.err = err
		return csg.AbortTraversal
	}
	if g != nil {
		v.add(g)
	}
	return csg.ContinueTraversal
}

func (v *collectVisitor) VisitGroup(state *csg.State, n *csg.Node) csg.Response {
	return v.composite(state, opUnion)
}

func (v *collectVisitor) VisitRoot(state *csg.State, n *csg.Node) csg.Response {
	return v.composite(state, opUnion)
}

func (v *collectVisitor) VisitPoly(state *csg.State, n *csg.Node) csg.Response {
	return v.composite(state, opUnion)
}

func (v *collectVisitor) VisitIntersection(state *csg.State, n *csg.Node) csg.Response {
	return v.composite(state, opIntersection)
}

func (v *collectVisitor) VisitLeaf(state *csg.State, n *csg.Node) csg.Response {
	if !state.IsPrefix() {
		return csg.ContinueTraversal
	}
	g, err := n.CreateGeometry()
	if err != nil {
		v.err = fmt.Errorf("evaluate: %s: %w", n, err)
		return csg.AbortTraversal
	}
	if g != nil {
		v.add(g)
	}
	return csg.ContinueTraversal
}

// combine folds the geometries of one frame into a single value.
// Boolean composition is only defined for boundary solids; a lone 2D
// outline set or polygon mesh passes through untouched.
func (v *collectVisitor) combine(items []geom.Geometry, op boolOp) (geom.Geometry, error) {
	switch len(items) {
	case 0:
		return nil, nil
	case 1:
		return items[0], nil
	}

	acc, err := asSolid(items[0])
	if err != nil {
		return nil, err
	}
	for _, it := range items[1:] {
		s, err := asSolid(it)
		if err != nil {
			return nil, err
		}
		switch op {
		case opUnion:
			acc = v.k.Union(acc, s)
		case opIntersection:
			acc = v.k.Intersection(acc, s)
		}
	}
	return &geom.BoundarySolid{Solid: acc}, nil
}

func asSolid(g geom.Geometry) (kernel.Solid, error) {
	bs, ok := g.(*geom.BoundarySolid)
	if !ok {
		return nil, fmt.Errorf("evaluate: cannot combine %T with boolean operations", g)
	}
	// kernel.Solid and geom.Solid share one method set.
	return bs.Solid.(kernel.Solid), nil
}
