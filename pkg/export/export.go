// Package export serializes resolved geometry to interchange formats:
// triangulated solid formats (STL, AMF), face-list formats (OFF, OBJ)
// and 2D vector formats (DXF, SVG). Encoders are pure serialization
// steps; all geometric decisions (triangulation, vertex dedup,
// degenerate-face rejection, manifold checks) happen in the pipeline
// before them. Every numeric token is written with a '.' radix point
// regardless of host locale.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/adze-cad/adze/pkg/diag"
	"github.com/adze-cad/adze/pkg/geom"
)

// Version is stamped into format headers that carry a producer field.
const Version = "0.1.0"

// Format selects the output serialization.
type Format int

const (
	FormatSTL Format = iota
	FormatOFF
	FormatAMF
	FormatOBJ
	FormatDXF
	FormatSVG
)

func (f Format) String() string {
	switch f {
	case FormatSTL:
		return "STL"
	case FormatOFF:
		return "OFF"
	case FormatAMF:
		return "AMF"
	case FormatOBJ:
		return "OBJ"
	case FormatDXF:
		return "DXF"
	case FormatSVG:
		return "SVG"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Write serializes g to w in the requested format. Dispatch is by
// geometry variant first, then format. Supported pairs: solids and
// meshes with STL/OFF/AMF/OBJ, outline sets with DXF/SVG. Any other
// pairing is a caller bug and panics; the upstream layer choosing the
// format must enforce validity against the variant.
//
// Geometric precondition failures (a non-manifold solid where a
// manifold is required) are not panics: they emit a diagnostic, after
// which AMF and OBJ write nothing, OFF writes an empty header and STL
// falls back to best-effort output.
func Write(g geom.Geometry, w io.Writer, format Format) {
	switch g := g.(type) {
	case *geom.BoundarySolid:
		switch format {
		case FormatSTL:
			encodeSTLSolid(g.Solid, w)
		case FormatOFF:
			vt, tris := solidToASCIITriangles(g.Solid)
			encodeOFF(vt, tris, w)
		case FormatAMF:
			// A non-manifold solid resolves as zero output here, not an
			// empty document skeleton; only OFF writes a header for it.
			if !requireManifold(g.Solid) {
				return
			}
			vt, tris := solidToASCIITriangles(g.Solid)
			encodeAMF(vt, tris, w)
		case FormatOBJ:
			if !requireManifold(g.Solid) {
				return
			}
			vt, tris := solidToASCIITriangles(g.Solid)
			encodeOBJ(vt, tris, w)
		default:
			panic(fmt.Sprintf("export: %v not supported for solid geometry", format))
		}

	case *geom.PolygonMesh:
		switch format {
		case FormatSTL:
			encodeSTLMesh(g, w)
		case FormatOFF:
			vt, faces := canonicalFaces(g.Faces)
			encodeOFF(vt, faces, w)
		case FormatAMF:
			// AMF only allows triangles, so convert first.
			vt, tris := canonicalFaces(Triangulate(g).Faces)
			encodeAMF(vt, tris, w)
		case FormatOBJ:
			vt, faces := canonicalFaces(g.Faces)
			encodeOBJ(vt, faces, w)
		default:
			panic(fmt.Sprintf("export: %v not supported for mesh geometry", format))
		}

	case *geom.OutlineSet2D:
		switch format {
		case FormatDXF:
			encodeDXF(g, w)
		case FormatSVG:
			encodeSVG(g, w)
		default:
			panic(fmt.Sprintf("export: %v not supported for 2D geometry", format))
		}

	default:
		panic(fmt.Sprintf("export: unknown geometry variant %T", g))
	}
}

// WriteFile serializes g to the named file. Open failures are reported
// as a diagnostic and a returned error without attempting the export.
// Write and close failures during the export are trapped and collapsed
// into a single generic write error; the file is always closed, even
// after a failed write.
func WriteFile(g geom.Geometry, format Format, path string) error {
	f, err := os.Create(path)
	if err != nil {
		diag.Errorf("Can't open file %q for export", path)
		return fmt.Errorf("export: open %s: %w", path, err)
	}

	// The buffered writer makes mid-encode write failures sticky
	// instead of fatal; the flush below surfaces the first one.
	bw := bufio.NewWriter(f)
	Write(g, bw, format)
	werr := bw.Flush()
	cerr := f.Close()
	if werr != nil || cerr != nil {
		diag.Errorf("%q write error. (Disk full?)", path)
		return fmt.Errorf("export: write %s failed", path)
	}
	return nil
}
