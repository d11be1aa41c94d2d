// Package scalar provides the exact rational number type that every
// predicate, event, and mesh coordinate in this module is built from.
//
// # Overview
//
// A [Rational] wraps [math/big.Rat] and supports addition, subtraction,
// multiplication, division, comparison, and sign. No operation in this
// package ever rounds: the kernel's geometric predicates reduce to signs
// of polynomials in these coordinates, so the predicates are total and
// exact as long as the inputs are exact.
//
// # Construction
//
//   - [New] builds a Rational from an integer numerator/denominator pair.
//   - [FromInt64] builds a Rational from a whole number.
//   - [FromFloat64] builds a Rational from a float64, the way a caller
//     migrating from floating-point geometry would seed the kernel.
//
// [math/big.Rat] is the idiomatic Go choice for exact rational
// arithmetic; this package is a thin value-semantics wrapper around it.
package scalar

import (
	"fmt"
	"math/big"
)

// Rational is an exact rational scalar. The zero value is 0/1 and is
// ready to use.
type Rational struct {
	r big.Rat
}

// Zero is the additive identity.
func Zero() Rational {
	return Rational{}
}

// New returns the exact rational num/den. It panics if den is zero, the
// same precondition [big.Rat.SetFrac64] enforces.
func New(num, den int64) Rational {
	var s Rational
	s.r.SetFrac64(num, den)
	return s
}

// FromInt64 returns the exact rational equal to n.
func FromInt64(n int64) Rational {
	var s Rational
	s.r.SetInt64(n)
	return s
}

// FromFloat64 returns the exact rational equal to f. Since every finite
// float64 is itself a dyadic rational, this conversion is exact — it is
// the caller's responsibility not to expect arbitrary decimal literals
// like 0.1 to round-trip losslessly, because 0.1 is not exactly
// representable in float64 to begin with.
func FromFloat64(f float64) Rational {
	var s Rational
	if s.r.SetFloat64(f) == nil {
		panic(fmt.Errorf("scalar: %v is not a finite float64", f))
	}
	return s
}

// Add returns a+b.
func (a Rational) Add(b Rational) Rational {
	var s Rational
	s.r.Add(&a.r, &b.r)
	return s
}

// Sub returns a-b.
func (a Rational) Sub(b Rational) Rational {
	var s Rational
	s.r.Sub(&a.r, &b.r)
	return s
}

// Mul returns a*b.
func (a Rational) Mul(b Rational) Rational {
	var s Rational
	s.r.Mul(&a.r, &b.r)
	return s
}

// Div returns a/b. It panics if b is zero.
func (a Rational) Div(b Rational) Rational {
	if b.Sign() == 0 {
		panic(fmt.Errorf("scalar: division by zero"))
	}
	var s Rational
	s.r.Quo(&a.r, &b.r)
	return s
}

// Neg returns -a.
func (a Rational) Neg() Rational {
	var s Rational
	s.r.Neg(&a.r)
	return s
}

// Abs returns |a|.
func (a Rational) Abs() Rational {
	var s Rational
	s.r.Abs(&a.r)
	return s
}

// Sign returns -1, 0, or 1 depending on whether a is negative, zero, or
// positive.
func (a Rational) Sign() int {
	return a.r.Sign()
}

// Cmp returns -1, 0, or 1 depending on whether a is less than, equal to,
// or greater than b.
func (a Rational) Cmp(b Rational) int {
	return a.r.Cmp(&b.r)
}

// Less reports whether a < b.
func (a Rational) Less(b Rational) bool {
	return a.Cmp(b) < 0
}

// Eq reports whether a == b.
func (a Rational) Eq(b Rational) bool {
	return a.Cmp(b) == 0
}

// IsZero reports whether a is exactly zero.
func (a Rational) IsZero() bool {
	return a.r.Sign() == 0
}

// Float64 returns the nearest float64 to a, along with whether the
// conversion is exact. Provided for output/display only; no predicate in
// this module relies on it.
func (a Rational) Float64() (f float64, exact bool) {
	return a.r.Float64()
}

// String renders a in "num/den" form, or the bare integer when den == 1.
func (a Rational) String() string {
	if a.r.IsInt() {
		return a.r.Num().String()
	}
	return a.r.RatString()
}

// Mid returns the midpoint (a+b)/2. Used by the Boolean reducer to pick
// sample points on result rings.
func Mid(a, b Rational) Rational {
	return a.Add(b).Div(FromInt64(2))
}
