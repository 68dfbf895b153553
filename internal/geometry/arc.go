package geometry

import (
	"fmt"
	"math"
	"strconv"

	"github.com/martinlindhe/unit"
)

// coordPrecision is the number of decimals kept when writing path data.
const coordPrecision = 6

// Point is a coordinate on the icon's drawing plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PolarToCartesian returns the point at radius and angle around c.
func PolarToCartesian(c Point, radius float64, angle SVGAngle) Point {
	rad := (unit.Angle(angle) * unit.Degree).Radians()
	return Point{
		X: c.X + radius*math.Cos(rad),
		Y: c.Y + radius*math.Sin(rad),
	}
}

// LargeArc reports whether the span between start and end exceeds 180°.
func LargeArc(start, end SVGAngle) bool {
	return math.Abs(float64(end-start)) > 180
}

// DescribeArc returns a closed pie-sector path: centre, line to the point at
// end, arc back to the point at start with sweep flag 0.
func DescribeArc(c Point, radius float64, start, end SVGAngle) string {
	from := PolarToCartesian(c, radius, end)
	to := PolarToCartesian(c, radius, start)

	largeArc := 0
	if LargeArc(start, end) {
		largeArc = 1
	}

	return fmt.Sprintf("M %s %s L %s %s A %s %s 0 %d 0 %s %s Z",
		formatCoord(c.X), formatCoord(c.Y),
		formatCoord(from.X), formatCoord(from.Y),
		formatCoord(radius), formatCoord(radius),
		largeArc,
		formatCoord(to.X), formatCoord(to.Y),
	)
}

// formatCoord trims float noise such as 20.999999999999996 and never prints -0.
func formatCoord(v float64) string {
	scale := math.Pow10(coordPrecision)
	r := math.Round(v*scale) / scale
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
