// Package csg defines the scene-graph node tree produced by
// instantiating a parsed model, and the visitor/state protocol used to
// walk it. The node tree is rebuilt from scratch for every compile of
// the source model; nodes never outlive one compile cycle.
package csg

import (
	"fmt"

	"github.com/adze-cad/adze/pkg/geom"
)

// NodeKind enumerates the closed set of node categories in the tree.
type NodeKind int

const (
	KindGroup        NodeKind = iota // transparent container, no geometric semantics
	KindRoot                         // the unique tree root, a group
	KindIntersection                 // marker for boolean-intersection subtrees
	KindPoly                         // intermediate category yielding polygon geometry
	KindLeaf                         // terminal node that synthesizes geometry itself
)

func (k NodeKind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindRoot:
		return "root"
	case KindIntersection:
		return "intersection"
	case KindPoly:
		return "poly"
	case KindLeaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// ModuleInstantiation is the source-location/provenance descriptor of
// the model statement a node was instantiated from. It is owned by the
// parser layer; nodes only reference it.
type ModuleInstantiation struct {
	Name string
	File string
	Line int
}

// GeometrySource synthesizes the geometry of a leaf node.
// Implementations live with the primitive definitions (cube, cylinder,
// imported meshes); the tree only carries the capability.
type GeometrySource interface {
	// CreateGeometry returns the node's geometry, or an error if the
	// source cannot produce one.
	CreateGeometry() (geom.Geometry, error)

	// Name is the human-readable primitive name, e.g. "cube".
	Name() string
}

// Node is one node of the scene-graph tree. Nodes form a strict tree:
// each node is owned by exactly one parent, with no sharing and no
// cycles. Identity is the instantiation index assigned by the build
// session; indices are comparable only within one compile's tree.
type Node struct {
	kind     NodeKind
	idx      int
	modinst  *ModuleInstantiation
	source   GeometrySource // leaf nodes only
	children []*Node

	// progressMark is scratch state written by the progress
	// preparation pass; it carries no meaning across passes.
	progressMark int
}

// Kind reports the node's category.
func (n *Node) Kind() NodeKind { return n.kind }

// Index returns the instantiation index assigned at construction.
func (n *Node) Index() int { return n.idx }

// ModInst returns the provenance descriptor, or nil.
func (n *Node) ModInst() *ModuleInstantiation { return n.modinst }

// Children returns the node's child list. Callers must not mutate it.
func (n *Node) Children() []*Node { return n.children }

// AddChild appends a child node. Leaf nodes are terminal; adding a
// child to one is a caller bug.
func (n *Node) AddChild(c *Node) {
	if n.kind == KindLeaf {
		panic(fmt.Sprintf("csg: leaf node %s cannot have children", n))
	}
	n.children = append(n.children, c)
}

// Name is the human-readable node name used in diagnostics output. For
// leaf nodes it is the primitive name of the geometry source.
func (n *Node) Name() string {
	if n.kind == KindLeaf && n.source != nil {
		return n.source.Name()
	}
	return n.kind.String()
}

func (n *Node) String() string {
	if n.modinst != nil && n.modinst.File != "" {
		return fmt.Sprintf("%s#%d (%s:%d)", n.Name(), n.idx, n.modinst.File, n.modinst.Line)
	}
	return fmt.Sprintf("%s#%d", n.Name(), n.idx)
}

// CreateGeometry synthesizes the geometry of a leaf node. Calling it on
// any other node kind is a caller bug.
func (n *Node) CreateGeometry() (geom.Geometry, error) {
	if n.kind != KindLeaf || n.source == nil {
		panic(fmt.Sprintf("csg: CreateGeometry on non-leaf node %s", n))
	}
	return n.source.CreateGeometry()
}
