package export

import (
	"fmt"
	"io"
)

// encodeOFF writes canonicalized vertices and faces in OFF format.
// Faces may be n-gons; indices are 0-based. The edge count in the
// header is a placeholder zero, which consumers recompute.
func encodeOFF(vt *vertexTable, faces [][]int, w io.Writer) {
	fmt.Fprintf(w, "OFF %d %d 0\n", len(vt.keys), len(faces))
	for _, key := range vt.keys {
		fmt.Fprintf(w, "%s\n", key)
	}
	for _, face := range faces {
		fmt.Fprintf(w, "%d ", len(face))
		for _, idx := range face {
			fmt.Fprintf(w, "%d ", idx)
		}
		fmt.Fprintf(w, "\n")
	}
}
