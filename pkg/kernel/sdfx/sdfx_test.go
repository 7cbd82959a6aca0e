package sdfx

import (
	"math"
	"testing"
)

func TestBoxTriangles(t *testing.T) {
	k := New()
	box := k.Box(100, 50, 25)
	if !box.IsManifold() {
		t.Fatal("sdfx solids are manifold by construction")
	}
	tris, err := box.Triangles()
	if err != nil {
		t.Fatalf("Triangles failed: %v", err)
	}
	if len(tris) == 0 {
		t.Fatal("expected non-zero triangle count")
	}
	t.Logf("box triangle count: %d", len(tris))
}

func TestCylinder(t *testing.T) {
	k := New()
	cyl := k.Cylinder(50, 10, 32)
	tris, err := cyl.Triangles()
	if err != nil {
		t.Fatalf("Triangles failed: %v", err)
	}
	if len(tris) == 0 {
		t.Fatal("expected non-zero triangle count")
	}
}

func TestDifference(t *testing.T) {
	k := New()

	box := k.Box(100, 100, 100)
	boxTris, err := box.Triangles()
	if err != nil {
		t.Fatalf("Triangles(box) failed: %v", err)
	}

	cyl := k.Cylinder(120, 20, 32)
	diff := k.Difference(box, k.Translate(cyl, 50, 50, 50))
	diffTris, err := diff.Triangles()
	if err != nil {
		t.Fatalf("Triangles(diff) failed: %v", err)
	}
	if len(diffTris) == 0 {
		t.Fatal("difference boundary is empty")
	}
	// A box with a hole should have more triangles than a plain box.
	if len(diffTris) <= len(boxTris) {
		t.Fatalf("difference (%d triangles) should have more triangles than box (%d triangles)",
			len(diffTris), len(boxTris))
	}
}

func TestUnion(t *testing.T) {
	k := New()
	box1 := k.Box(50, 50, 50)
	box2 := k.Translate(k.Box(50, 50, 50), 30, 0, 0)
	u := k.Union(box1, box2)
	tris, err := u.Triangles()
	if err != nil {
		t.Fatalf("Triangles failed: %v", err)
	}
	if len(tris) == 0 {
		t.Fatal("union boundary is empty")
	}
}

func TestBoundingBox(t *testing.T) {
	k := New()
	box := k.Box(100, 50, 25)
	min, max := box.BoundingBox()

	// Box has its minimum corner at the origin.
	const tol = 0.01
	expectMin := [3]float64{0, 0, 0}
	expectMax := [3]float64{100, 50, 25}

	gotMin := [3]float64{min.X, min.Y, min.Z}
	gotMax := [3]float64{max.X, max.Y, max.Z}
	for i := 0; i < 3; i++ {
		if math.Abs(gotMin[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected %f", i, gotMin[i], expectMin[i])
		}
		if math.Abs(gotMax[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected %f", i, gotMax[i], expectMax[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	k := New()
	box := k.Box(10, 10, 10)
	translated := k.Translate(box, 100, 200, 300)

	min, max := translated.BoundingBox()

	const tol = 0.5
	expectMin := [3]float64{100, 200, 300}
	expectMax := [3]float64{110, 210, 310}

	gotMin := [3]float64{min.X, min.Y, min.Z}
	gotMax := [3]float64{max.X, max.Y, max.Z}
	for i := 0; i < 3; i++ {
		if math.Abs(gotMin[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected ~%f", i, gotMin[i], expectMin[i])
		}
		if math.Abs(gotMax[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected ~%f", i, gotMax[i], expectMax[i])
		}
	}
}

func TestRotate(t *testing.T) {
	k := New()
	box := k.Box(100, 10, 10)

	// A long box along X rotated 90 degrees around Z should extend along Y instead.
	rotated := k.Rotate(box, 0, 0, 90)
	min, max := rotated.BoundingBox()

	xExtent := max.X - min.X
	yExtent := max.Y - min.Y

	const tol = 1.0
	if math.Abs(xExtent-10) > tol {
		t.Errorf("rotated X extent = %f, expected ~10", xExtent)
	}
	if math.Abs(yExtent-100) > tol {
		t.Errorf("rotated Y extent = %f, expected ~100", yExtent)
	}
}
