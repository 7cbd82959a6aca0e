// Package kernel defines the abstract geometry kernel interface.
// Implementations (sdfx) provide solid modeling and boolean operations
// behind this interface. The kernel abstraction allows swapping
// backends without changing the rest of the system.
package kernel

import "github.com/adze-cad/adze/pkg/geom"

// Solid is an opaque handle to a geometry kernel solid. It carries the
// capability surface the export layer consumes (geom.Solid) so that a
// kernel solid can be wrapped directly into a geom.BoundarySolid.
type Solid interface {
	geom.Solid
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) Solid
	Cylinder(height, radius float64, segments int) Solid

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees
}
