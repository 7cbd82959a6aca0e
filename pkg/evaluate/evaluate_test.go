package evaluate_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/adze-cad/adze/pkg/csg"
	"github.com/adze-cad/adze/pkg/evaluate"
	"github.com/adze-cad/adze/pkg/export"
	"github.com/adze-cad/adze/pkg/geom"
	"github.com/adze-cad/adze/pkg/kernel"
	"github.com/adze-cad/adze/pkg/kernel/sdfx"
)

// opSolid records the boolean expression that produced it, so tests
// can assert composition order without real geometry.
type opSolid struct {
	desc string
}

func (s opSolid) IsManifold() bool                      { return true }
func (s opSolid) Triangles() ([][3]geom.Vector3, error) { return nil, nil }
func (s opSolid) BoundingBox() (min, max geom.Vector3)  { return geom.Vector3{}, geom.Vector3{} }

// fakeKernel composes opSolid descriptions instead of computing geometry.
type fakeKernel struct{}

func (fakeKernel) Box(x, y, z float64) kernel.Solid {
	return opSolid{desc: fmt.Sprintf("box(%g,%g,%g)", x, y, z)}
}

func (fakeKernel) Cylinder(h, r float64, segments int) kernel.Solid {
	return opSolid{desc: fmt.Sprintf("cyl(%g,%g)", h, r)}
}

func combineDesc(a, b kernel.Solid, op string) kernel.Solid {
	return opSolid{desc: "(" + a.(opSolid).desc + op + b.(opSolid).desc + ")"}
}

func (fakeKernel) Union(a, b kernel.Solid) kernel.Solid        { return combineDesc(a, b, "+") }
func (fakeKernel) Difference(a, b kernel.Solid) kernel.Solid   { return combineDesc(a, b, "-") }
func (fakeKernel) Intersection(a, b kernel.Solid) kernel.Solid { return combineDesc(a, b, "&") }

func (fakeKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid { return s }
func (fakeKernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid    { return s }

// solidShape is a leaf geometry source producing a fixed solid.
type solidShape struct {
	name string
	s    kernel.Solid
}

func (s solidShape) CreateGeometry() (geom.Geometry, error) {
	return &geom.BoundarySolid{Solid: s.s}, nil
}

func (s solidShape) Name() string { return s.name }

// outlineShape is a leaf geometry source producing a 2D outline set.
type outlineShape struct{}

func (outlineShape) CreateGeometry() (geom.Geometry, error) {
	return &geom.OutlineSet2D{Outlines: []geom.Outline{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
	}}, nil
}

func (outlineShape) Name() string { return "square" }

// failingShape always errors.
type failingShape struct{}

func (failingShape) CreateGeometry() (geom.Geometry, error) {
	return nil, errors.New("bad primitive parameters")
}

func (failingShape) Name() string { return "broken" }

func TestEvaluateGroupUnions(t *testing.T) {
	k := fakeKernel{}
	s := csg.NewSession()
	root := s.NewRoot(nil)
	group := s.NewGroup(nil)
	group.AddChild(s.NewLeaf(solidShape{name: "a", s: k.Box(1, 1, 1)}, nil))
	group.AddChild(s.NewLeaf(solidShape{name: "b", s: k.Box(2, 2, 2)}, nil))
	root.AddChild(group)

	g, err := evaluate.New(k).Evaluate(root, s)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	bs, ok := g.(*geom.BoundarySolid)
	if !ok {
		t.Fatalf("result = %T, want *geom.BoundarySolid", g)
	}
	desc := bs.Solid.(opSolid).desc
	if desc != "(box(1,1,1)+box(2,2,2))" {
		t.Errorf("composition = %q, want children unioned in order", desc)
	}
}

func TestEvaluateIntersectionMarker(t *testing.T) {
	k := fakeKernel{}
	s := csg.NewSession()
	root := s.NewRoot(nil)
	inter := s.NewIntersection(nil)
	inter.AddChild(s.NewLeaf(solidShape{name: "a", s: k.Box(1, 1, 1)}, nil))
	inter.AddChild(s.NewLeaf(solidShape{name: "b", s: k.Cylinder(2, 1, 16)}, nil))
	root.AddChild(inter)

	g, err := evaluate.New(k).Evaluate(root, s)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	desc := g.(*geom.BoundarySolid).Solid.(opSolid).desc
	if !strings.Contains(desc, "&") {
		t.Errorf("composition = %q, want an intersection", desc)
	}
}

func TestEvaluateOutlinePassThrough(t *testing.T) {
	s := csg.NewSession()
	root := s.NewRoot(nil)
	root.AddChild(s.NewLeaf(outlineShape{}, nil))

	g, err := evaluate.New(fakeKernel{}).Evaluate(root, s)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if _, ok := g.(*geom.OutlineSet2D); !ok {
		t.Fatalf("result = %T, want *geom.OutlineSet2D", g)
	}
}

func TestEvaluateRejectsMixedDimensions(t *testing.T) {
	k := fakeKernel{}
	s := csg.NewSession()
	root := s.NewRoot(nil)
	root.AddChild(s.NewLeaf(solidShape{name: "a", s: k.Box(1, 1, 1)}, nil))
	root.AddChild(s.NewLeaf(outlineShape{}, nil))

	if _, err := evaluate.New(k).Evaluate(root, s); err == nil {
		t.Fatal("mixing 2D and 3D under a boolean composition must fail")
	}
}

func TestEvaluateLeafError(t *testing.T) {
	s := csg.NewSession()
	root := s.NewRoot(nil)
	root.AddChild(s.NewLeaf(failingShape{}, nil))

	_, err := evaluate.New(fakeKernel{}).Evaluate(root, s)
	if err == nil {
		t.Fatal("leaf geometry error must propagate")
	}
	if !strings.Contains(err.Error(), "bad primitive parameters") {
		t.Errorf("error = %v, want wrapped leaf error", err)
	}
}

func TestEvaluateEmptyTree(t *testing.T) {
	s := csg.NewSession()
	root := s.NewRoot(nil)

	g, err := evaluate.New(fakeKernel{}).Evaluate(root, s)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if g != nil {
		t.Fatalf("result = %v, want nil geometry for an empty tree", g)
	}
}

// TestEvaluateAndExportSTL runs the whole pipeline: tree -> sdfx
// kernel -> boundary solid -> STL.
func TestEvaluateAndExportSTL(t *testing.T) {
	if testing.Short() {
		t.Skip("marching cubes is slow")
	}
	k := sdfx.New()
	s := csg.NewSession()
	root := s.NewRoot(nil)
	root.AddChild(s.NewLeaf(solidShape{name: "box", s: k.Box(10, 10, 10)}, nil))
	root.AddChild(s.NewLeaf(solidShape{name: "box2", s: k.Translate(k.Box(10, 10, 10), 5, 0, 0)}, nil))

	g, err := evaluate.New(k).Evaluate(root, s)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	var buf bytes.Buffer
	export.Write(g, &buf, export.FormatSTL)
	out := buf.String()
	if !strings.HasPrefix(out, "solid Adze_Model\n") {
		t.Fatalf("malformed STL output:\n%.200s", out)
	}
	if strings.Count(out, "facet normal") == 0 {
		t.Fatal("expected facets from the unioned boxes")
	}
}
