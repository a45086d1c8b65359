// Package eisenstein implements the ring of Eisenstein integers a + bω,
// where ω is a primitive cube root of unity with ω² = -1 - ω.
//
// Arithmetic uses Go's int and wraps on overflow like any other int math.
package eisenstein

import (
	"fmt"
	"math"
)

// Integer is the Eisenstein integer a + bω. The zero value is Zero().
type Integer struct {
	a int
	b int
}

// New returns a + bω.
func New(a, b int) Integer { return Integer{a: a, b: b} }

// Zero returns the additive identity 0 + 0ω.
func Zero() Integer { return Integer{} }

// One returns the multiplicative identity 1 + 0ω.
func One() Integer { return Integer{a: 1} }

// Omega returns ω itself, 0 + 1ω.
func Omega() Integer { return Integer{b: 1} }

// A returns the rational part.
func (x Integer) A() int { return x.a }

// B returns the ω coefficient.
func (x Integer) B() int { return x.b }

// Add returns x+y.
func (x Integer) Add(y Integer) Integer { return Integer{x.a + y.a, x.b + y.b} }

// AddInt returns x+k, treating k as k + 0ω.
func (x Integer) AddInt(k int) Integer { return Integer{x.a + k, x.b} }

// IntAdd returns k+x.
func IntAdd(k int, x Integer) Integer { return Integer{k + x.a, x.b} }

// Mul returns x*y. Expanding (a1 + b1ω)(a2 + b2ω) and substituting
// ω² = -1 - ω puts -b1*b2 into both components.
func (x Integer) Mul(y Integer) Integer {
	bb := x.b * y.b
	return Integer{
		a: x.a*y.a - bb,
		b: x.a*y.b + x.b*y.a - bb,
	}
}

// MulInt returns x*k.
func (x Integer) MulInt(k int) Integer { return Integer{x.a * k, x.b * k} }

// IntMul returns k*x.
func IntMul(k int, x Integer) Integer { return Integer{k * x.a, k * x.b} }

// Coordinates returns the point of x in the complex plane, using
// ω = -1/2 + i·√3/2: x = a - b/2, y = b·√3/2.
func (x Integer) Coordinates() (float64, float64) {
	a, b := float64(x.a), float64(x.b)
	return a - b/2, b * math.Sqrt(3) / 2
}

// String formats x as "a+bω", e.g. "1+2ω" or "-1-1ω".
func (x Integer) String() string {
	return fmt.Sprintf("%d%+dω", x.a, x.b)
}
