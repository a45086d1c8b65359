package hex

import (
	"errors"
	"math"
	"testing"

	"github.com/gravitas-games/eisenhex/pkg/eisenstein"
)

func TestHexesAdd(t *testing.T) {
	h1 := FromEisensteinInteger(1, 2)
	h2 := FromEisensteinInteger(3, 4)
	want := FromEisensteinInteger(4, 6)

	if got := h1.Add(h2); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}

	p1, p2 := &h1, &h2
	if got := h1.Add(*p2); got != want {
		t.Fatalf("value+reference: expected %v, got %v", want, got)
	}
	if got := p1.Add(h2); got != want {
		t.Fatalf("reference+value: expected %v, got %v", want, got)
	}
}

func TestHexGetsNeighbors(t *testing.T) {
	center := Origin()
	cases := []struct {
		dir  Direction
		want Hex
	}{
		{Above, FromEisensteinInteger(1, 2)},
		{Below, FromEisensteinInteger(-1, -2)},
		{LeftAbove, FromEisensteinInteger(-1, 1)},
		{LeftBelow, FromEisensteinInteger(-2, -1)},
		{RightAbove, FromEisensteinInteger(2, 1)},
		{RightBelow, FromEisensteinInteger(1, -1)},
	}
	for _, c := range cases {
		if got := center.Neighbor(c.dir); got != c.want {
			t.Errorf("%v: expected %v, got %v", c.dir, c.want, got)
		}
	}
}

func TestNeighborsFromNonOrigin(t *testing.T) {
	h := FromEisensteinInteger(4, -3)
	ns := h.Neighbors()
	for i, d := range Directions {
		want := FromInteger(h.Integer().Add(d.Offset().Integer()))
		if ns[i] != want {
			t.Errorf("%v: expected %v, got %v", d, want, ns[i])
		}
	}
}

func TestAntipodalDirectionsReturnHome(t *testing.T) {
	for _, d := range Directions {
		if got := Origin().Neighbor(d).Neighbor(d.Opposite()); got != Origin() {
			t.Errorf("%v then %v: expected origin, got %v", d, d.Opposite(), got)
		}
		if got := d.Offset().Add(d.Opposite().Offset()); got != Origin() {
			t.Errorf("offsets of %v and %v should cancel, got %v", d, d.Opposite(), got)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("expected %v to be its opposite's opposite", d)
		}
		if d.Opposite() == d {
			t.Errorf("%v is its own opposite", d)
		}
	}

	pairs := [][2]Direction{{Above, Below}, {LeftAbove, RightBelow}, {LeftBelow, RightAbove}}
	for _, p := range pairs {
		if p[0].Opposite() != p[1] {
			t.Errorf("expected opposite of %v to be %v, got %v", p[0], p[1], p[0].Opposite())
		}
	}
}

func TestOriginCoordinates(t *testing.T) {
	x, y := Origin().Coordinates()
	if x != 0 || y != 0 {
		t.Fatalf("expected (0, 0), got (%g, %g)", x, y)
	}
}

func TestNeighborCoordinatesFormHexagon(t *testing.T) {
	want := map[Direction]float64{
		RightAbove: 30,
		Above:      90,
		LeftAbove:  150,
		LeftBelow:  210,
		Below:      270,
		RightBelow: 330,
	}
	for _, d := range Directions {
		x, y := Origin().Neighbor(d).Coordinates()
		if r := math.Hypot(x, y); math.Abs(r-math.Sqrt(3)) > 1e-9 {
			t.Errorf("%v: expected distance √3, got %g", d, r)
		}
		angle := math.Atan2(y, x) * 180 / math.Pi
		if angle < 0 {
			angle += 360
		}
		if math.Abs(angle-want[d]) > 1e-9 {
			t.Errorf("%v: expected angle %g°, got %g°", d, want[d], angle)
		}
	}
}

func TestInvalidDirection(t *testing.T) {
	d := Direction(42)
	if d.Valid() {
		t.Fatalf("expected %d to be invalid", d)
	}
	h := FromEisensteinInteger(3, 3)
	if got := h.Neighbor(d); got != h {
		t.Fatalf("expected invalid direction to leave %v in place, got %v", h, got)
	}
	if got := d.String(); got != "Direction(42)" {
		t.Fatalf("unexpected string %q", got)
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(d.String())
		if err != nil {
			t.Fatalf("unexpected error parsing %q: %v", d.String(), err)
		}
		if got != d {
			t.Fatalf("expected %v, got %v", d, got)
		}
	}

	aliases := map[string]Direction{
		"LeftAbove":   LeftAbove,
		"right_below": RightBelow,
		" ABOVE ":     Above,
		"left below":  LeftBelow,
		"Right-Above": RightAbove,
	}
	for s, want := range aliases {
		got, err := ParseDirection(s)
		if err != nil {
			t.Fatalf("unexpected error parsing %q: %v", s, err)
		}
		if got != want {
			t.Errorf("%q: expected %v, got %v", s, want, got)
		}
	}

	if _, err := ParseDirection("sideways"); !errors.Is(err, ErrUnknownDirection) {
		t.Fatalf("expected ErrUnknownDirection, got %v", err)
	}
}

func TestHexWrapsInteger(t *testing.T) {
	z := eisenstein.New(-7, 2)
	if got := FromInteger(z).Integer(); got != z {
		t.Fatalf("expected %v, got %v", z, got)
	}
	if FromInteger(eisenstein.Zero()) != Origin() {
		t.Fatalf("expected wrapped zero to be origin")
	}
	if got := FromEisensteinInteger(1, 2).String(); got != "hex(1+2ω)" {
		t.Fatalf("unexpected string %q", got)
	}
}
