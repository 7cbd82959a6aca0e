package export

import "github.com/adze-cad/adze/pkg/geom"

// Triangulate returns a mesh in which every face has exactly three
// vertices. Faces with more vertices are fan-triangulated from their
// first vertex; the output triangles cover the same area and boundary
// as the input face. Triangles pass through unchanged and faces with
// fewer than three vertices are dropped.
func Triangulate(m *geom.PolygonMesh) *geom.PolygonMesh {
	out := geom.NewPolygonMesh(m.Dimension())
	for _, face := range m.Faces {
		switch {
		case len(face) < 3:
			// nothing to emit
		case len(face) == 3:
			out.Append(face[0], face[1], face[2])
		default:
			for i := 1; i+1 < len(face); i++ {
				out.Append(face[0], face[i], face[i+1])
			}
		}
	}
	return out
}
