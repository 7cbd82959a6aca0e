package export

import (
	"fmt"
	"io"

	"github.com/adze-cad/adze/pkg/diag"
	"github.com/adze-cad/adze/pkg/geom"
)

// encodeSTLMesh writes a polygon mesh as ASCII STL. STL only allows
// triangles, so the mesh is triangulated first; triangles without three
// distinct vertices are excluded.
func encodeSTLMesh(m *geom.PolygonMesh, w io.Writer) {
	triangulated := Triangulate(m)

	fmt.Fprintf(w, "solid Adze_Model\n")
	for _, p := range triangulated.Faces {
		k1 := vertexKey3(p[0])
		k2 := vertexKey3(p[1])
		k3 := vertexKey3(p[2])
		if k1 == k2 || k1 == k3 || k2 == k3 {
			continue
		}
		n := triangleNormal(p[0], p[1], p[2])
		fmt.Fprintf(w, "  facet normal %s %s %s\n",
			formatFloat(n.X), formatFloat(n.Y), formatFloat(n.Z))
		fmt.Fprintf(w, "    outer loop\n")
		for _, key := range []string{k1, k2, k3} {
			fmt.Fprintf(w, "      vertex %s\n", key)
		}
		fmt.Fprintf(w, "    endloop\n")
		fmt.Fprintf(w, "  endfacet\n")
	}
	fmt.Fprintf(w, "endsolid Adze_Model\n")
}

// encodeSTLSolid writes a boundary solid as ASCII STL. A non-manifold
// solid gets a warning and best-effort output rather than an empty
// export.
func encodeSTLSolid(s geom.Solid, w io.Writer) {
	if !s.IsManifold() {
		diag.Warnf("Exported object may not be a valid 2-manifold and may need repair")
	}
	m, ok := solidMesh(s)
	if !ok {
		return
	}
	encodeSTLMesh(m, w)
}
