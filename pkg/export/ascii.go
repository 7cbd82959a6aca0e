package export

import (
	"strconv"
	"strings"

	"github.com/adze-cad/adze/pkg/geom"
)

// formatFloat renders a coordinate with six significant digits and a
// '.' radix point. The encoding never depends on host locale, and two
// points are the same vertex for export purposes exactly when their
// encodings are equal. No tolerance welding happens here: floating
// point noise produces distinct vertices, which keeps output
// deterministic.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// vertexKey3 is the canonical dedup key of a 3D point, e.g. "5 12 13".
func vertexKey3(v geom.Vector3) string {
	return formatFloat(v.X) + " " + formatFloat(v.Y) + " " + formatFloat(v.Z)
}

// keyFields splits a vertex key back into its coordinate tokens.
func keyFields(key string) []string {
	return strings.Fields(key)
}

// vertexTable assigns stable 0-based indices to canonical vertex keys,
// preserving first-seen order. Scoped to a single export call.
type vertexTable struct {
	keys  []string
	index map[string]int
}

func newVertexTable() *vertexTable {
	return &vertexTable{index: make(map[string]int)}
}

// add returns the index of key, inserting it if unseen.
func (t *vertexTable) add(key string) int {
	if i, ok := t.index[key]; ok {
		return i
	}
	i := len(t.keys)
	t.index[key] = i
	t.keys = append(t.keys, key)
	return i
}

// canonicalFaces converts point-list faces into a deduplicated vertex
// table plus per-face index lists. A face whose vertices are not all
// pairwise distinct is degenerate and excluded entirely; its vertices
// still enter the table, matching the reference behavior.
func canonicalFaces(faces [][]geom.Vector3) (*vertexTable, [][]int) {
	vt := newVertexTable()
	var out [][]int
	for _, face := range faces {
		idxs := make([]int, 0, len(face))
		seen := make(map[string]struct{}, len(face))
		for _, p := range face {
			key := vertexKey3(p)
			idxs = append(idxs, vt.add(key))
			seen[key] = struct{}{}
		}
		if len(seen) == len(face) {
			out = append(out, idxs)
		}
	}
	return vt, out
}
