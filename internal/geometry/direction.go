package geometry

// Direction is one of the eight compass points. The declaration order is the
// circular order used for neighbour lookups.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

const directionCount = 8

var directionNames = [directionCount]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

var directionAngles = [directionCount]CompassAngle{0, 45, 90, 135, 180, 225, 270, 315}

// Directions returns all compass points in table order, starting at North.
func Directions() []Direction {
	out := make([]Direction, directionCount)
	for i := range out {
		out[i] = Direction(i)
	}
	return out
}

// ParseDirection looks up a case-sensitive direction token.
func ParseDirection(token string) (Direction, error) {
	for i, name := range directionNames {
		if name == token {
			return Direction(i), nil
		}
	}
	return 0, &InvalidDirectionError{Token: token}
}

// Valid reports whether d is one of the eight compass points.
func (d Direction) Valid() bool {
	return d >= North && d <= NorthWest
}

func (d Direction) String() string {
	if !d.Valid() {
		return "Direction(?)"
	}
	return directionNames[d]
}

// Angle returns the compass bearing of d in degrees. Values outside the eight
// points are reduced modulo eight first.
func (d Direction) Angle() CompassAngle {
	return directionAngles[d.wrap()]
}

// Prev returns the neighbouring direction one step counter-clockwise.
func (d Direction) Prev() Direction {
	return (d.wrap() + directionCount - 1) % directionCount
}

// Next returns the neighbouring direction one step clockwise.
func (d Direction) Next() Direction {
	return (d.wrap() + 1) % directionCount
}

func (d Direction) wrap() Direction {
	return ((d % directionCount) + directionCount) % directionCount
}

// MarshalText encodes d as its token so directions appear by name in JSON.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses a direction token.
func (d *Direction) UnmarshalText(b []byte) error {
	parsed, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
