package export

import (
	"fmt"

	"github.com/adze-cad/adze/pkg/diag"
	"github.com/adze-cad/adze/pkg/geom"
)

// solidToASCIITriangles converts a boundary solid into deduplicated
// vertex keys and triangle index lists. The solid must be a valid
// 2-manifold; otherwise a diagnostic is emitted and the result is
// empty, which callers treat as "nothing to export". Kernel faults
// during the conversion are trapped at this boundary and produce the
// same diagnostic-plus-empty outcome.
func solidToASCIITriangles(s geom.Solid) (*vertexTable, [][]int) {
	vt := newVertexTable()
	if !requireManifold(s) {
		return vt, nil
	}

	raw, err := safeTriangles(s)
	if err != nil {
		diag.Errorf("geometry kernel error in boundary conversion: %v", err)
		return vt, nil
	}

	var tris [][]int
	for _, t := range raw {
		k1 := vertexKey3(t[0])
		k2 := vertexKey3(t[1])
		k3 := vertexKey3(t[2])
		i1 := vt.add(k1)
		i2 := vt.add(k2)
		i3 := vt.add(k3)
		// Triangles with fewer than 3 distinct vertices are dropped.
		if k1 != k2 && k1 != k3 && k2 != k3 {
			tris = append(tris, []int{i1, i2, i3})
		}
	}
	return vt, tris
}

// requireManifold reports whether s satisfies the 2-manifold
// precondition, emitting the user-facing diagnostic when it does not.
func requireManifold(s geom.Solid) bool {
	if s.IsManifold() {
		return true
	}
	diag.Errorf("Object isn't a valid 2-manifold! Modify your design.")
	return false
}

// solidMesh converts a boundary solid into an explicit triangle mesh
// without a manifold precondition, for formats that accept best-effort
// output. It reports false when the kernel conversion failed.
func solidMesh(s geom.Solid) (*geom.PolygonMesh, bool) {
	raw, err := safeTriangles(s)
	if err != nil {
		diag.Errorf("geometry kernel error in boundary conversion: %v", err)
		return nil, false
	}
	m := geom.NewPolygonMesh(3)
	for _, t := range raw {
		m.Append(t[0], t[1], t[2])
	}
	return m, true
}

// safeTriangles shields callers from panics inside the kernel
// conversion; they surface as ordinary errors instead of unwinding
// through the export layer.
func safeTriangles(s geom.Solid) (tris [][3]geom.Vector3, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("kernel fault: %v", r)
		}
	}()
	return s.Triangles()
}

// triangleNormal returns the unit normal of a triangle, oriented
// consistently with the vertex winding order. If the vertices are
// collinear the normal is meaningless, so the fixed fallback (1,0,0)
// is returned instead of a NaN vector.
func triangleNormal(a, b, c geom.Vector3) geom.Vector3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Length() == 0 {
		return geom.Vector3{X: 1}
	}
	return n.Normalized()
}
