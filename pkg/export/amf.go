package export

import (
	"fmt"
	"io"
)

// encodeAMF writes canonicalized vertices and triangles as an AMF
// document. AMF only allows triangles; callers triangulate first.
// Triangle indices are the 0-based canonical vertex indices.
func encodeAMF(vt *vertexTable, triangles [][]int, w io.Writer) {
	fmt.Fprintf(w, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(w, "<amf unit=\"millimeter\">\n")
	fmt.Fprintf(w, " <metadata type=\"producer\">Adze %s</metadata>\n", Version)
	fmt.Fprintf(w, " <object id=\"0\">\n")
	fmt.Fprintf(w, "  <mesh>\n")
	fmt.Fprintf(w, "   <vertices>\n")
	for _, key := range vt.keys {
		c := keyFields(key)
		if len(c) != 3 {
			return
		}
		fmt.Fprintf(w, "    <vertex><coordinates>\n")
		fmt.Fprintf(w, "     <x>%s</x>\n", c[0])
		fmt.Fprintf(w, "     <y>%s</y>\n", c[1])
		fmt.Fprintf(w, "     <z>%s</z>\n", c[2])
		fmt.Fprintf(w, "    </coordinates></vertex>\n")
	}
	fmt.Fprintf(w, "   </vertices>\n")
	fmt.Fprintf(w, "   <volume>\n")
	for _, t := range triangles {
		fmt.Fprintf(w, "    <triangle>\n")
		fmt.Fprintf(w, "     <v1>%d</v1>\n", t[0])
		fmt.Fprintf(w, "     <v2>%d</v2>\n", t[1])
		fmt.Fprintf(w, "     <v3>%d</v3>\n", t[2])
		fmt.Fprintf(w, "    </triangle>\n")
	}
	fmt.Fprintf(w, "   </volume>\n")
	fmt.Fprintf(w, "  </mesh>\n")
	fmt.Fprintf(w, " </object>\n")
	fmt.Fprintf(w, "</amf>\n")
}
