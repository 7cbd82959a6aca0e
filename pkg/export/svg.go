package export

import (
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/adze-cad/adze/pkg/geom"
)

// svgPathStyle is applied to every outline path.
const svgPathStyle = `stroke="black" fill="lightgray" stroke-width="0.5"`

// encodeSVG writes an outline set as an SVG document. The view box is
// the outline set's axis-aligned bounding box with a 1-unit margin on
// all sides. SVG's y axis grows downward while the model's grows
// upward, so y coordinates are negated throughout. Outlines with no
// vertices contribute nothing.
func encodeSVG(set *geom.OutlineSet2D, w io.Writer) {
	min, max := set.BoundingBox()
	minx := int(math.Floor(min.X))
	miny := int(math.Floor(-max.Y))
	maxx := int(math.Ceil(max.X))
	maxy := int(math.Ceil(-min.Y))

	canvas := svg.New(w)
	canvas.Startview(maxx-minx, maxy-miny, minx-1, miny-1, maxx-minx+2, maxy-miny+2)
	canvas.Title("Adze Model")

	for _, o := range set.Outlines {
		if len(o) == 0 {
			continue
		}
		var d strings.Builder
		d.WriteString("M " + formatFloat(o[0].X) + "," + formatFloat(-o[0].Y))
		for _, p := range o[1:] {
			d.WriteString(" L " + formatFloat(p.X) + "," + formatFloat(-p.Y))
		}
		d.WriteString(" z")
		canvas.Path(d.String(), svgPathStyle)
	}

	canvas.End()
}
