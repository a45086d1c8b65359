package hex

import (
	"errors"
	"fmt"
	"strings"
)

// Direction names one of the six neighbors of a hex.
type Direction int

const (
	Above Direction = iota
	Below
	LeftAbove
	LeftBelow
	RightAbove
	RightBelow
)

// ErrUnknownDirection is returned by ParseDirection for unrecognised names.
var ErrUnknownDirection = errors.New("unknown hex direction")

// Directions lists every direction in declaration order.
var Directions = [6]Direction{Above, Below, LeftAbove, LeftBelow, RightAbove, RightBelow}

// offsets is indexed by Direction. Entries come in antipodal pairs that sum to zero.
var offsets = [6]struct{ a, b int }{
	Above:      {1, 2},
	Below:      {-1, -2},
	LeftAbove:  {-1, 1},
	LeftBelow:  {-2, -1},
	RightAbove: {2, 1},
	RightBelow: {1, -1},
}

var names = [6]string{
	Above:      "above",
	Below:      "below",
	LeftAbove:  "left-above",
	LeftBelow:  "left-below",
	RightAbove: "right-above",
	RightBelow: "right-below",
}

// Valid reports whether d is one of the six named directions.
func (d Direction) Valid() bool { return d >= Above && d <= RightBelow }

// Offset returns the step taken when moving one hex in direction d.
// An invalid direction has the zero offset.
func (d Direction) Offset() Hex {
	if !d.Valid() {
		return Origin()
	}
	o := offsets[d]
	return FromEisensteinInteger(o.a, o.b)
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Above:
		return Below
	case Below:
		return Above
	case LeftAbove:
		return RightBelow
	case RightBelow:
		return LeftAbove
	case LeftBelow:
		return RightAbove
	case RightAbove:
		return LeftBelow
	}
	return d
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return names[d]
}

// ParseDirection accepts the names produced by String, case-insensitively,
// with '-', '_' or nothing between the two words.
func ParseDirection(s string) (Direction, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	for _, d := range Directions {
		if strings.ReplaceAll(names[d], "-", "") == key {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
