package export

import (
	"fmt"
	"io"

	"github.com/adze-cad/adze/pkg/geom"
)

// encodeDXF writes an outline set as a minimal DXF drawing: every
// outline edge becomes one independent LINE entity on the default
// layer. The section skeleton is the smallest one common importers
// accept: Inkscape needs the BLOCKS section, a layer on each entity,
// and an OBJECTS section with a DICTIONARY entry.
func encodeDXF(set *geom.OutlineSet2D, w io.Writer) {
	fmt.Fprintf(w, "  0\nSECTION\n  2\nBLOCKS\n  0\nENDSEC\n")
	fmt.Fprintf(w, "  0\nSECTION\n  2\nENTITIES\n")

	for _, o := range set.Outlines {
		for i := range o {
			p1 := o[i]
			p2 := o[(i+1)%len(o)]
			fmt.Fprintf(w, "  0\nLINE\n")
			fmt.Fprintf(w, "  8\n0\n")
			fmt.Fprintf(w, " 10\n%s\n", formatFloat(p1.X))
			fmt.Fprintf(w, " 11\n%s\n", formatFloat(p2.X))
			fmt.Fprintf(w, " 20\n%s\n", formatFloat(p1.Y))
			fmt.Fprintf(w, " 21\n%s\n", formatFloat(p2.Y))
		}
	}

	fmt.Fprintf(w, "  0\nENDSEC\n")
	fmt.Fprintf(w, "  0\nSECTION\n  2\nOBJECTS\n  0\nDICTIONARY\n  0\nENDSEC\n")
	fmt.Fprintf(w, "  0\nEOF\n")
}
