package geometry

import "math"

// svgOffset rotates compass bearings (0° up) into the SVG frame (0° right).
const svgOffset = 270

// CompassAngle is a bearing in degrees clockwise from North.
type CompassAngle float64

// SVGAngle is an angle in degrees clockwise from the +x axis of an SVG canvas.
type SVGAngle float64

// SVG converts a compass bearing into the SVG frame, in [0, 360).
func (a CompassAngle) SVG() SVGAngle {
	return SVGAngle(math.Mod(float64(a)+svgOffset, 360))
}

// MidDirection returns the bearing halfway from start to end, moving
// clockwise. A start greater than end means the range crosses North.
func MidDirection(start, end CompassAngle) CompassAngle {
	if start <= end {
		return (start + end) / 2
	}
	return CompassAngle(math.Mod(float64(start+end+360)/2, 360))
}

// SectorAngles returns the SVG angles to pass to DescribeArc so that the
// filled sector covers the clockwise sweep from start to end. When the end
// lands numerically before the start in the SVG frame it is extended by 360
// and wrapped is true.
func SectorAngles(start, end CompassAngle) (from, to SVGAngle, wrapped bool) {
	from, to = start.SVG(), end.SVG()
	if to < from {
		return from, to + 360, true
	}
	return from, to, false
}
