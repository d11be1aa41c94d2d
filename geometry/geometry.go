// Package geometry defines the concrete multisegmental value types the
// kernel's Boolean and relation engines consume: segments, contours,
// multisegments, polygons, multipolygons, and the empty geometry, plus
// the tagged [Geometry] union that lets a caller hand any of them to an
// operation without the engine knowing which.
//
// Every constructor validates the precondition its type carries:
// minimum cardinalities, non-degenerate edges, and — for contours — the
// absence of self-intersection. Segments of different contours of one
// polygon or multipolygon, and segments of one multisegment, are not
// checked against each other; an overlap among them reaches the sweep
// engine, which panics with [geomkernel.ErrSameOperandOverlap].
package geometry

import (
	"fmt"

	"github.com/havralex/planekernel/geomkernel"
	"github.com/havralex/planekernel/point"
	"github.com/havralex/planekernel/predicate"
	"github.com/havralex/planekernel/scalar"
)

// Geometry is the tagged union of every multisegmental value this
// package defines. The marker method keeps the set closed.
type Geometry interface {
	// Dimension is -1 for Empty, 1 for linear geometries (segments,
	// multisegments, contours), 2 for regions (polygons, multipolygons).
	Dimension() int

	isGeometry()
}

// Multisegmental is any geometry that can enumerate its segments, the
// iterable form the sweep driver consumes.
type Multisegmental interface {
	Segments() []Segment
}

// Segment is an unordered endpoint pair normalised so that Start is the
// lexicographically smaller endpoint.
type Segment struct {
	start, end point.Point
}

// NewSegment returns the segment {a, b}. A zero-length segment is a
// precondition violation and is rejected here, before the engine is
// entered.
func NewSegment(a, b point.Point) (Segment, error) {
	if a.Eq(b) {
		return Segment{}, geomkernel.ErrZeroLengthSegment
	}
	return newSegment(a, b), nil
}

func newSegment(a, b point.Point) Segment {
	if b.Less(a) {
		a, b = b, a
	}
	return Segment{start: a, end: b}
}

// Start returns the lexicographically smaller endpoint.
func (s Segment) Start() point.Point { return s.start }

// End returns the lexicographically larger endpoint.
func (s Segment) End() point.Point { return s.end }

// Eq reports whether s and t have equal normalised endpoints.
func (s Segment) Eq(t Segment) bool {
	return s.start.Eq(t.start) && s.end.Eq(t.end)
}

// Segments returns s as a one-element slice, satisfying
// [Multisegmental].
func (s Segment) Segments() []Segment { return []Segment{s} }

// Dimension of a segment is 1.
func (s Segment) Dimension() int { return 1 }

func (s Segment) isGeometry() {}

// String renders the segment's normalised endpoints.
func (s Segment) String() string {
	return fmt.Sprintf("[%s, %s]", s.start, s.end)
}

// Multisegment is an ordered collection of at least
// [geomkernel.MinMultisegmentSegmentsCount] segments.
type Multisegment struct {
	segments []Segment
}

// NewMultisegment validates the cardinality precondition and returns the
// multisegment over segments.
func NewMultisegment(segments []Segment) (Multisegment, error) {
	if len(segments) < geomkernel.MinMultisegmentSegmentsCount {
		return Multisegment{}, geomkernel.ErrTooFewSegments
	}
	cp := make([]Segment, len(segments))
	copy(cp, segments)
	return Multisegment{segments: cp}, nil
}

// Segments returns the multisegment's segments.
func (m Multisegment) Segments() []Segment {
	return append([]Segment(nil), m.segments...)
}

// Dimension of a multisegment is 1.
func (m Multisegment) Dimension() int { return 1 }

func (m Multisegment) isGeometry() {}

// Contour is a closed polyline over at least
// [geomkernel.MinContourVerticesCount] vertices; the closing edge from
// the last vertex back to the first is implicit.
type Contour struct {
	vertices []point.Point
}

// NewContour validates the contour preconditions — vertex count,
// non-degenerate edges, and simplicity — and returns the contour over
// vertices. A contour whose edges cross or overlap anywhere except at
// consecutive shared vertices is rejected with
// [geomkernel.ErrSelfIntersecting], so a single contour cannot breach
// the sweep's same-operand overlap invariant.
func NewContour(vertices []point.Point) (Contour, error) {
	if len(vertices) >= 2 && vertices[0].Eq(vertices[len(vertices)-1]) {
		// Tolerate an explicitly closed vertex list by dropping the
		// repeated closing vertex.
		vertices = vertices[:len(vertices)-1]
	}
	if len(vertices) < geomkernel.MinContourVerticesCount {
		return Contour{}, geomkernel.ErrTooFewVertices
	}
	n := len(vertices)
	for i := 0; i < n; i++ {
		if vertices[i].Eq(vertices[(i+1)%n]) {
			return Contour{}, geomkernel.ErrZeroLengthSegment
		}
	}
	cp := make([]point.Point, n)
	copy(cp, vertices)
	c := Contour{vertices: cp}
	if c.selfIntersects() {
		return Contour{}, geomkernel.ErrSelfIntersecting
	}
	return c, nil
}

// Vertices returns the contour's vertices in order.
func (c Contour) Vertices() []point.Point {
	return append([]point.Point(nil), c.vertices...)
}

// Segments returns the contour's edges, including the implicit closing
// edge.
func (c Contour) Segments() []Segment {
	n := len(c.vertices)
	out := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, newSegment(c.vertices[i], c.vertices[(i+1)%n]))
	}
	return out
}

// SignedAreaDoubled returns twice the shoelace signed area of the
// contour: positive when the vertices wind counterclockwise.
func (c Contour) SignedAreaDoubled() scalar.Rational {
	sum := scalar.Zero()
	n := len(c.vertices)
	for i := 0; i < n; i++ {
		sum = sum.Add(c.vertices[i].CrossProduct(c.vertices[(i+1)%n]))
	}
	return sum
}

// Orientation returns the winding direction of the contour, or
// Collinear when all vertices lie on one line.
func (c Contour) Orientation() geomkernel.Orientation {
	switch c.SignedAreaDoubled().Sign() {
	case 1:
		return geomkernel.CounterClockwise
	case -1:
		return geomkernel.Clockwise
	default:
		return geomkernel.Collinear
	}
}

// Dimension of a contour is 1: it is a closed polyline, not a region.
func (c Contour) Dimension() int { return 1 }

func (c Contour) isGeometry() {}

// selfIntersects reports whether any two non-adjacent edges of the
// contour meet, or any two adjacent edges share more than their common
// vertex.
func (c Contour) selfIntersects() bool {
	n := len(c.vertices)
	edges := make([][2]point.Point, n)
	for i := 0; i < n; i++ {
		edges[i] = [2]point.Point{c.vertices[i], c.vertices[(i+1)%n]}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			adjacent := j == i+1 || (i == 0 && j == n-1)
			if adjacent {
				// Adjacent edges share exactly one vertex; any further
				// contact means the contour folds back on itself.
				shared := edges[i][1]
				if i == 0 && j == n-1 {
					shared = edges[i][0]
				}
				if edgesShareMoreThan(edges[i], edges[j], shared) {
					return true
				}
				continue
			}
			if segmentsMeet(edges[i][0], edges[i][1], edges[j][0], edges[j][1]) {
				return true
			}
		}
	}
	return false
}

func edgesShareMoreThan(e1, e2 [2]point.Point, shared point.Point) bool {
	for _, p := range []point.Point{e1[0], e1[1]} {
		if !p.Eq(shared) && onSegment(e2[0], p, e2[1]) {
			return true
		}
	}
	for _, p := range []point.Point{e2[0], e2[1]} {
		if !p.Eq(shared) && onSegment(e1[0], p, e1[1]) {
			return true
		}
	}
	return false
}

// segmentsMeet reports whether closed segments ab and cd have any point
// in common.
func segmentsMeet(a, b, c, d point.Point) bool {
	o1 := predicate.Orient(a, b, c)
	o2 := predicate.Orient(a, b, d)
	o3 := predicate.Orient(c, d, a)
	o4 := predicate.Orient(c, d, b)

	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == geomkernel.Collinear && onSegment(a, c, b) {
		return true
	}
	if o2 == geomkernel.Collinear && onSegment(a, d, b) {
		return true
	}
	if o3 == geomkernel.Collinear && onSegment(c, a, d) {
		return true
	}
	if o4 == geomkernel.Collinear && onSegment(c, b, d) {
		return true
	}
	return false
}

func onSegment(a, p, b point.Point) bool {
	return predicate.Orient(a, b, p) == geomkernel.Collinear &&
		predicate.OnClosedSegment(a, p, b)
}

// Polygon is a region bounded by a border contour minus zero or more
// hole contours.
type Polygon struct {
	border Contour
	holes  []Contour
}

// NewPolygon returns the polygon with the given border and holes. The
// contours themselves have already been validated by [NewContour]; a
// collinear (zero-area) border is rejected here.
func NewPolygon(border Contour, holes []Contour) (Polygon, error) {
	if border.Orientation() == geomkernel.Collinear {
		return Polygon{}, geomkernel.ErrSelfIntersecting
	}
	cp := make([]Contour, len(holes))
	copy(cp, holes)
	return Polygon{border: border, holes: cp}, nil
}

// Border returns the polygon's outer contour.
func (p Polygon) Border() Contour { return p.border }

// Holes returns the polygon's hole contours.
func (p Polygon) Holes() []Contour {
	return append([]Contour(nil), p.holes...)
}

// Segments returns the edges of the border and of every hole.
func (p Polygon) Segments() []Segment {
	out := p.border.Segments()
	for _, h := range p.holes {
		out = append(out, h.Segments()...)
	}
	return out
}

// Dimension of a polygon is 2.
func (p Polygon) Dimension() int { return 2 }

func (p Polygon) isGeometry() {}

// Multipolygon is a collection of at least
// [geomkernel.MinMultipolygonPolygonsCount] polygons.
type Multipolygon struct {
	polygons []Polygon
}

// NewMultipolygon validates the cardinality precondition and returns the
// multipolygon over polygons.
func NewMultipolygon(polygons []Polygon) (Multipolygon, error) {
	if len(polygons) < geomkernel.MinMultipolygonPolygonsCount {
		return Multipolygon{}, geomkernel.ErrTooFewPolygons
	}
	cp := make([]Polygon, len(polygons))
	copy(cp, polygons)
	return Multipolygon{polygons: cp}, nil
}

// Polygons returns the multipolygon's polygons.
func (m Multipolygon) Polygons() []Polygon {
	return append([]Polygon(nil), m.polygons...)
}

// Segments returns the edges of every polygon in the multipolygon.
func (m Multipolygon) Segments() []Segment {
	var out []Segment
	for _, p := range m.polygons {
		out = append(out, p.Segments()...)
	}
	return out
}

// Dimension of a multipolygon is 2.
func (m Multipolygon) Dimension() int { return 2 }

func (m Multipolygon) isGeometry() {}

// Empty is the geometry with no points: the identity of union and the
// absorbing element of intersection.
type Empty struct{}

// Dimension of the empty geometry is -1.
func (Empty) Dimension() int { return -1 }

func (Empty) isGeometry() {}
