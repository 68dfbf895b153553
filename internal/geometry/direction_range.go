package geometry

import "strings"

const rangeSeparator = "-"

// DirectionRange is a sector of the compass. A Single range holds the same
// direction in Start and End and stands for the sector spanning its two
// neighbours.
type DirectionRange struct {
	Start  Direction
	End    Direction
	Single bool
}

// SingleDirection returns the degenerate range centred on d.
func SingleDirection(d Direction) DirectionRange {
	return DirectionRange{Start: d, End: d, Single: true}
}

// ParseRange parses "<Direction>" or "<Direction>-<Direction>".
func ParseRange(input string) (DirectionRange, error) {
	first, second, isRange := strings.Cut(input, rangeSeparator)
	if !isRange {
		d, err := ParseDirection(input)
		if err != nil {
			return DirectionRange{}, &InvalidDirectionError{Input: input, Token: input}
		}
		return SingleDirection(d), nil
	}

	start, err := ParseDirection(first)
	if err != nil {
		return DirectionRange{}, &InvalidDirectionError{Input: input, Token: first}
	}
	end, err := ParseDirection(second)
	if err != nil {
		return DirectionRange{}, &InvalidDirectionError{Input: input, Token: second}
	}
	return DirectionRange{Start: start, End: end}, nil
}

// ParseDirectionRange parses input and returns its compass angles. Explicit
// ranges are returned as written, without reordering.
func ParseDirectionRange(input string) (start, end CompassAngle, err error) {
	r, err := ParseRange(input)
	if err != nil {
		return 0, 0, err
	}
	start, end = r.Angles()
	return start, end, nil
}

// Angles returns the start and end bearings of the range.
func (r DirectionRange) Angles() (start, end CompassAngle) {
	if r.Single {
		return r.Start.Prev().Angle(), r.Start.Next().Angle()
	}
	return r.Start.Angle(), r.End.Angle()
}

// Mid returns the bearing halfway through the range.
func (r DirectionRange) Mid() CompassAngle {
	return MidDirection(r.Angles())
}

func (r DirectionRange) String() string {
	if r.Single {
		return r.Start.String()
	}
	return r.Start.String() + rangeSeparator + r.End.String()
}
