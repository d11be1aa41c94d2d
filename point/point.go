// Package point defines the foundational geometric primitive of this
// kernel, the Point type. Every event, segment, and quad-edge vertex is
// built on top of it.
//
// # Overview
//
// Point represents a point in the plane with exact rational coordinates
// ([github.com/havralex/planekernel/scalar.Rational]). Unlike a
// floating-point point type, equality and ordering here are exact: two
// points compare equal if and only if both coordinates compare equal as
// rationals, with no epsilon tolerance anywhere.
//
// # Key operations
//
//   - Construction: [New], [FromInt64], [FromFloat64].
//   - Equality & ordering: [Point.Eq], [Point.Less] (lexicographic on
//     (x, y), matching the order fixed by the data model).
//   - Vector arithmetic: [Point.Sub], [Point.Add], [Point.CrossProduct],
//     [Point.DotProduct] — used directly by the predicate package.
package point

import (
	"encoding/json"
	"fmt"

	"github.com/havralex/planekernel/scalar"
)

// Point is a pair of exact rational coordinates.
type Point struct {
	x, y scalar.Rational
}

// New returns the point (x, y).
func New(x, y scalar.Rational) Point {
	return Point{x: x, y: y}
}

// FromInt64 returns the point with integer coordinates (x, y).
func FromInt64(x, y int64) Point {
	return Point{x: scalar.FromInt64(x), y: scalar.FromInt64(y)}
}

// FromFloat64 returns the point (x, y), converting each coordinate to
// its exact rational equivalent via [scalar.FromFloat64].
func FromFloat64(x, y float64) Point {
	return Point{x: scalar.FromFloat64(x), y: scalar.FromFloat64(y)}
}

// X returns the x-coordinate.
func (p Point) X() scalar.Rational {
	return p.x
}

// Y returns the y-coordinate.
func (p Point) Y() scalar.Rational {
	return p.y
}

// Coordinates returns both coordinates as separate values.
func (p Point) Coordinates() (x, y scalar.Rational) {
	return p.x, p.y
}

// Eq reports whether p and q have exactly equal coordinates.
func (p Point) Eq(q Point) bool {
	return p.x.Eq(q.x) && p.y.Eq(q.y)
}

// Less reports whether p < q in the lexicographic order (x, y) ascending,
// the order the data model fixes for segment normalisation and the
// events queue.
func (p Point) Less(q Point) bool {
	if cmp := p.x.Cmp(q.x); cmp != 0 {
		return cmp < 0
	}
	return p.y.Less(q.y)
}

// Add returns the componentwise sum of p and q, treating both as
// vectors from the origin.
func (p Point) Add(q Point) Point {
	return Point{x: p.x.Add(q.x), y: p.y.Add(q.y)}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{x: p.x.Sub(q.x), y: p.y.Sub(q.y)}
}

// CrossProduct returns the 2D cross product (determinant) of the vectors
// p and q: p.x*q.y - p.y*q.x. Its sign is the basis of every orientation
// predicate in this module.
func (p Point) CrossProduct(q Point) scalar.Rational {
	return p.x.Mul(q.y).Sub(p.y.Mul(q.x))
}

// DotProduct returns the dot product of the vectors p and q.
func (p Point) DotProduct(q Point) scalar.Rational {
	return p.x.Mul(q.x).Add(p.y.Mul(q.y))
}

// Min returns the lexicographically smaller of p and q.
func Min(p, q Point) Point {
	if p.Less(q) {
		return p
	}
	return q
}

// Max returns the lexicographically larger of p and q.
func Max(p, q Point) Point {
	if p.Less(q) {
		return q
	}
	return p
}

// String renders p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.x.String(), p.y.String())
}

// MarshalJSON serialises p as an {"x":..,"y":..} object using float64
// approximations of its exact coordinates, for display/debugging only.
func (p Point) MarshalJSON() ([]byte, error) {
	x, _ := p.x.Float64()
	y, _ := p.y.Float64()
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: x, Y: y})
}
