// Package geomkernel is the root of an exact-rational 2D computational
// geometry kernel: a Bentley-Ottmann sweep-line engine for Boolean set
// operations and topological relation classification between polygonal
// regions, and a quad-edge Delaunay triangulation engine.
//
// # Overview
//
// All coordinates are [github.com/havralex/planekernel/scalar.Rational]
// values, so every predicate the kernel evaluates — orientation,
// intersection existence, on-segment, in-polygon — reduces to the sign
// of an integer polynomial and is computed without rounding error.
//
// The sweep engine lives across [github.com/havralex/planekernel/event],
// [github.com/havralex/planekernel/sweepqueue],
// [github.com/havralex/planekernel/sweepstatus], and
// [github.com/havralex/planekernel/sweep], and is consumed by
// [github.com/havralex/planekernel/boolop] (Boolean set operations) and
// [github.com/havralex/planekernel/relate] (relation classification).
// The triangulation engine lives in
// [github.com/havralex/planekernel/quadedge] and
// [github.com/havralex/planekernel/delaunay].
//
// This package itself holds only the enumerations, size constants, and
// error values shared across those subsystems.
package geomkernel

import "fmt"

// Orientation is the sign of the cross product (b-a) x (c-a) for three
// points a, b, c.
type Orientation int8

const (
	// Clockwise indicates a right turn at b.
	Clockwise Orientation = -1
	// Collinear indicates a, b, c lie on one line.
	Collinear Orientation = 0
	// CounterClockwise indicates a left turn at b.
	CounterClockwise Orientation = 1
)

// String renders the orientation's name.
func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "Clockwise"
	case Collinear:
		return "Collinear"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		panic(fmt.Errorf("geomkernel: unsupported orientation value %d", o))
	}
}

// Relation is one of the eleven mutually exclusive topological relations
// between two multisegmentals. The integer values 0..10 in this order
// are fixed so a complement table can be expressed as a simple swap.
type Relation uint8

const (
	Disjoint Relation = iota
	Touch
	Cross
	Overlap
	Cover
	Encloses
	Composite
	Equal
	Component
	Enclosed
	Within
)

// String renders the relation's name.
func (r Relation) String() string {
	switch r {
	case Disjoint:
		return "Disjoint"
	case Touch:
		return "Touch"
	case Cross:
		return "Cross"
	case Overlap:
		return "Overlap"
	case Cover:
		return "Cover"
	case Encloses:
		return "Encloses"
	case Composite:
		return "Composite"
	case Equal:
		return "Equal"
	case Component:
		return "Component"
	case Enclosed:
		return "Enclosed"
	case Within:
		return "Within"
	default:
		panic(fmt.Errorf("geomkernel: unsupported relation value %d", r))
	}
}

// Complement swaps the relation as seen from the other operand: Relate(a,
// b).Complement() == Relate(b, a). Cover/Within, Encloses/Enclosed, and
// Composite/Component swap pairwise; Cross, Disjoint, Equal, Overlap, and
// Touch are self-complementary.
func (r Relation) Complement() Relation {
	switch r {
	case Cover:
		return Within
	case Within:
		return Cover
	case Encloses:
		return Enclosed
	case Enclosed:
		return Encloses
	case Composite:
		return Component
	case Component:
		return Composite
	default:
		return r
	}
}

// Minimum cardinalities a well-formed multisegmental must satisfy at
// ingestion.
const (
	MinContourVerticesCount      = 3
	MinMultisegmentSegmentsCount = 2
	MinMultipolygonPolygonsCount = 2
)

// Precondition-violation error kinds. The geometry constructors return
// the vertex, segment, polygon, zero-length and self-intersection errors
// before the engine is entered. ErrSameOperandOverlap is raised inside
// the sweep, as a panic, when two segments of one operand overlap.
// ErrNonClosedContour is not returned by any function in this module.
var (
	ErrTooFewVertices     = fmt.Errorf("geomkernel: fewer than %d vertices", MinContourVerticesCount)
	ErrTooFewSegments     = fmt.Errorf("geomkernel: fewer than %d segments", MinMultisegmentSegmentsCount)
	ErrTooFewPolygons     = fmt.Errorf("geomkernel: fewer than %d polygons", MinMultipolygonPolygonsCount)
	ErrZeroLengthSegment  = fmt.Errorf("geomkernel: zero-length segment")
	ErrSelfIntersecting   = fmt.Errorf("geomkernel: self-intersecting polygon")
	ErrNonClosedContour   = fmt.Errorf("geomkernel: contour is not closed")
	ErrSameOperandOverlap = fmt.Errorf("geomkernel: overlapping collinear segments from the same operand")
)
