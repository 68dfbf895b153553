// Package geometry converts compass directions and direction ranges into the
// primitives used to draw swell and wind condition icons.
//
// # Frames
//
// Two angle frames are in play and each has its own type:
//
//	CompassAngle  0° = North (up), increasing clockwise. Source of truth for
//	              direction tokens and midpoints.
//	SVGAngle      0° = +x (right), increasing clockwise because SVG's y axis
//	              points down. Required by PolarToCartesian and DescribeArc.
//
// The only conversion is [CompassAngle.SVG], which adds 270° modulo 360.
// SVGAngle values may exceed 360 after the sector wrap extension; they are
// passed to DescribeArc as-is and must not be normalised in between.
//
// # Direction ranges
//
//	"NW-SE"  explicit range, start and end taken verbatim (315, 135)
//	"N"      single direction, expands to its neighbours (315, 45)
//
// Tokens are the eight case-sensitive names N, NE, E, SE, S, SW, W, NW.
// Anything else fails with [InvalidDirectionError].
//
// # Arc paths
//
// [DescribeArc] emits a closed pie sector:
//
//	M cx cy L <point at end> A r r 0 <large-arc> 0 <point at start> Z
//
// The sweep flag is always 0, so the arc runs counter-clockwise on screen from
// the end point back to the start point. [SectorAngles] picks the angles that
// make this sweep cover the selected range rather than its complement.
package geometry
