// Package hex addresses cells of a hexagonal tiling by Eisenstein integers.
//
// Neighboring cells differ by one of six fixed offsets. Projected onto the
// plane those offsets lie √3 from the origin at 60° steps, Above pointing
// straight up.
package hex

import "github.com/gravitas-games/eisenhex/pkg/eisenstein"

// Hex is a single cell location. Every Eisenstein integer is a valid Hex.
type Hex struct {
	z eisenstein.Integer
}

// FromEisensteinInteger returns the hex at a + bω.
func FromEisensteinInteger(a, b int) Hex { return Hex{eisenstein.New(a, b)} }

// FromInteger wraps z.
func FromInteger(z eisenstein.Integer) Hex { return Hex{z} }

// Origin returns the hex at 0.
func Origin() Hex { return Hex{eisenstein.Zero()} }

// Integer returns the wrapped Eisenstein integer.
func (h Hex) Integer() eisenstein.Integer { return h.z }

// Add returns h+o.
func (h Hex) Add(o Hex) Hex { return Hex{h.z.Add(o.z)} }

// Neighbor returns the adjacent hex in direction d.
func (h Hex) Neighbor(d Direction) Hex { return h.Add(d.Offset()) }

// Neighbors returns the six adjacent hexes, ordered like Directions.
func (h Hex) Neighbors() [6]Hex {
	var ns [6]Hex
	for i, d := range Directions {
		ns[i] = h.Neighbor(d)
	}
	return ns
}

// Coordinates returns the planar position of the hex center with unit
// lattice spacing. See eisenstein.Integer.Coordinates.
func (h Hex) Coordinates() (float64, float64) { return h.z.Coordinates() }

func (h Hex) String() string { return "hex(" + h.z.String() + ")" }
