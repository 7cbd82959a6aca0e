package export

import (
	"fmt"
	"io"
)

// encodeOBJ writes canonicalized vertices and faces as a Wavefront
// .obj file. Faces may be n-gons. OBJ indices are 1-based by format
// convention: each written index is 1 + the canonical 0-based index.
func encodeOBJ(vt *vertexTable, faces [][]int, w io.Writer) {
	fmt.Fprintf(w, "# WaveFront *.obj file (generated by Adze %s)\n\n", Version)
	fmt.Fprintf(w, "g Object\n")
	for _, key := range vt.keys {
		fmt.Fprintf(w, "v %s\n", key)
	}
	fmt.Fprintf(w, "\n")
	for _, face := range faces {
		fmt.Fprintf(w, "f ")
		for _, idx := range face {
			fmt.Fprintf(w, "%d ", 1+idx)
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "\n# end WaveFront *.obj file (generated by Adze %s)\n", Version)
}
