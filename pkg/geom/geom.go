// Package geom defines the resolved geometry representations produced by
// evaluating a scene-graph tree. Geometry is a closed union of three
// variants: a boolean-capable boundary solid, an explicit polygon mesh,
// and a set of closed 2D outlines. Consumers dispatch on the concrete
// variant; there is no universal internal mesh format.
package geom

// Geometry is the resolved result of evaluating a scene graph.
// Exactly three types implement it: *BoundarySolid, *PolygonMesh and
// *OutlineSet2D.
type Geometry interface {
	// Dimension reports 2 or 3.
	Dimension() int
	geometry() // marker method restricting implementations to this package
}

// Solid is the capability surface of a boolean-capable 3D solid as seen
// by the export layer. The geometry kernel provides implementations.
type Solid interface {
	// IsManifold reports whether the solid currently describes a valid
	// closed 2-manifold surface. Callers must check before asking for an
	// explicit face list.
	IsManifold() bool

	// Triangles returns the triangulated boundary of the solid. The
	// underlying conversion can fail for ill-conditioned solids.
	Triangles() ([][3]Vector3, error)

	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max Vector3)
}

// BoundarySolid wraps an opaque kernel solid. The solid may or may not
// be a valid 2-manifold; exporters check before converting to faces.
type BoundarySolid struct {
	Solid Solid
}

func (*BoundarySolid) Dimension() int { return 3 }
func (*BoundarySolid) geometry()      {}

// PolygonMesh is an explicit polygon soup. Each face is an ordered
// vertex loop and may have more than three vertices. There is no index
// buffer; points are compared by value. Faces may be non-planar or
// self-intersecting, but faces with repeated vertices are excluded at
// export time.
type PolygonMesh struct {
	dim   int
	Faces [][]Vector3
}

// NewPolygonMesh creates an empty mesh with the given dimension tag
// (2 or 3). The tag is fixed at construction.
func NewPolygonMesh(dim int) *PolygonMesh {
	return &PolygonMesh{dim: dim}
}

// Append adds one face given as an ordered vertex loop.
func (m *PolygonMesh) Append(face ...Vector3) {
	m.Faces = append(m.Faces, face)
}

func (m *PolygonMesh) Dimension() int { return m.dim }
func (*PolygonMesh) geometry()        {}

// Outline is an ordered sequence of 2D points forming one implicitly
// closed boundary loop; the last point connects back to the first.
type Outline []Vector2

// OutlineSet2D is a set of closed outlines describing a 2D shape.
// No convexity or self-intersection invariant is imposed.
type OutlineSet2D struct {
	Outlines []Outline
}

func (*OutlineSet2D) Dimension() int { return 2 }
func (*OutlineSet2D) geometry()      {}

// BoundingBox returns the axis-aligned bounding box of all outline
// points. Empty sets yield a zero box.
func (s *OutlineSet2D) BoundingBox() (min, max Vector2) {
	first := true
	for _, o := range s.Outlines {
		for _, p := range o {
			if first {
				min, max = p, p
				first = false
				continue
			}
			if p.X < min.X {
				min.X = p.X
			}
			if p.Y < min.Y {
				min.Y = p.Y
			}
			if p.X > max.X {
				max.X = p.X
			}
			if p.Y > max.Y {
				max.Y = p.Y
			}
		}
	}
	return min, max
}
