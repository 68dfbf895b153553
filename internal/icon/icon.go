// Package icon builds the render-ready geometry for the swell and wind
// condition icons and for the direction-range selector.
package icon

import (
	"errors"
	"fmt"

	"github.com/couchcryptid/surf-spot-etl/internal/geometry"
)

// selectorHalfWidth is half the angular width of one selector wedge.
const selectorHalfWidth = 22.5

// ErrUnknownVariant is returned by ParseVariant and Render for anything other
// than swell or wind.
var ErrUnknownVariant = errors.New("unknown icon variant")

// Variant selects which condition icon to build.
type Variant string

const (
	VariantSwell Variant = "swell"
	VariantWind  Variant = "wind"
)

// ParseVariant validates a variant name.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantSwell, VariantWind:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// SwellIcon is a stack of concentric filled sectors covering the range.
type SwellIcon struct {
	Range   string                `json:"range"`
	Start   geometry.CompassAngle `json:"start"`
	End     geometry.CompassAngle `json:"end"`
	Mid     geometry.CompassAngle `json:"mid"`
	Wrapped bool                  `json:"wrapped"`
	Rings   []string              `json:"rings"` // outermost first
	Color   string                `json:"color"`
}

// WindIcon is a single arrow pointing at the middle of the range.
type WindIcon struct {
	Range    string                `json:"range"`
	Start    geometry.CompassAngle `json:"start"`
	End      geometry.CompassAngle `json:"end"`
	Mid      geometry.CompassAngle `json:"mid"`
	Rotation float64               `json:"rotation"` // degrees clockwise from an upward arrow
	Tip      geometry.Point        `json:"tip"`
	Color    string                `json:"color"`
}

// SelectorSegment is one clickable wedge of the direction selector.
type SelectorSegment struct {
	Direction geometry.Direction `json:"direction"`
	Path      string             `json:"path"`
	Label     geometry.Point     `json:"label"`
}

// Swell builds the swell icon for rng.
func Swell(cfg Config, rng geometry.DirectionRange) SwellIcon {
	start, end := rng.Angles()
	from, to, wrapped := geometry.SectorAngles(start, end)

	rings := make([]string, 0, cfg.RingCount)
	for k := cfg.RingCount; k >= 1; k-- {
		r := cfg.Radius() * float64(k) / float64(cfg.RingCount)
		rings = append(rings, geometry.DescribeArc(cfg.Center(), r, from, to))
	}

	return SwellIcon{
		Range:   rng.String(),
		Start:   start,
		End:     end,
		Mid:     geometry.MidDirection(start, end),
		Wrapped: wrapped,
		Rings:   rings,
		Color:   cfg.SwellColor,
	}
}

// Wind builds the wind icon for rng.
func Wind(cfg Config, rng geometry.DirectionRange) WindIcon {
	start, end := rng.Angles()
	mid := geometry.MidDirection(start, end)

	return WindIcon{
		Range:    rng.String(),
		Start:    start,
		End:      end,
		Mid:      mid,
		Rotation: float64(mid),
		Tip:      geometry.PolarToCartesian(cfg.Center(), cfg.Radius(), mid.SVG()),
		Color:    cfg.WindColor,
	}
}

// Selector returns one wedge per compass direction, in table order.
func Selector(cfg Config) []SelectorSegment {
	dirs := geometry.Directions()
	segments := make([]SelectorSegment, 0, len(dirs))
	for _, d := range dirs {
		a := d.Angle().SVG()
		segments = append(segments, SelectorSegment{
			Direction: d,
			Path:      geometry.DescribeArc(cfg.Center(), cfg.Radius(), a-selectorHalfWidth, a+selectorHalfWidth),
			Label:     geometry.PolarToCartesian(cfg.Center(), cfg.Radius()*cfg.LabelRadiusRatio, a),
		})
	}
	return segments
}

// Render parses input and builds the icon for variant. The result is a
// SwellIcon or a WindIcon.
func Render(cfg Config, variant Variant, input string) (any, error) {
	rng, err := geometry.ParseRange(input)
	if err != nil {
		return nil, err
	}
	switch variant {
	case VariantSwell:
		return Swell(cfg, rng), nil
	case VariantWind:
		return Wind(cfg, rng), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
}
