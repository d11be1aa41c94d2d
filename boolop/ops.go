package boolop

import (
	"fmt"

	"github.com/havralex/planekernel/event"
	"github.com/havralex/planekernel/geometry"
	"github.com/havralex/planekernel/geomopts"
	"github.com/havralex/planekernel/point"
	"github.com/havralex/planekernel/scalar"
)

// ErrMixedDimensions is returned when union or symmetric difference is
// asked to combine a linear geometry with a region: those operations
// have no single-dimension result to express.
var ErrMixedDimensions = fmt.Errorf("boolop: union and symmetric difference require operands of equal dimension")

// Unite returns the union of a and b. Empty is the identity.
func Unite(a, b geometry.Geometry, opts ...geomopts.Option) (geometry.Geometry, error) {
	if isEmpty(a) {
		return b, nil
	}
	if isEmpty(b) {
		return a, nil
	}
	if a.Dimension() != b.Dimension() {
		return nil, ErrMixedDimensions
	}
	if a.Dimension() == 2 {
		return regionOperation(Union, a, b, opts), nil
	}
	return linearOperation(Union, a, b, opts), nil
}

// Intersect returns the intersection of a and b. Empty is absorbing.
// Mixed region/linear operands produce the linear clipping of the
// linear operand against the region.
func Intersect(a, b geometry.Geometry, opts ...geomopts.Option) (geometry.Geometry, error) {
	if isEmpty(a) || isEmpty(b) {
		return geometry.Empty{}, nil
	}
	if a.Dimension() == 2 && b.Dimension() == 2 {
		return regionIntersection(a, b, opts), nil
	}
	return linearOperation(Intersection, a, b, opts), nil
}

// Subtract returns the difference a minus b. Subtracting a linear
// geometry from a region removes nothing of positive area, so the
// region is returned unchanged.
func Subtract(a, b geometry.Geometry, opts ...geomopts.Option) (geometry.Geometry, error) {
	if isEmpty(a) {
		return geometry.Empty{}, nil
	}
	if isEmpty(b) {
		return a, nil
	}
	if a.Dimension() == 2 && b.Dimension() == 2 {
		return regionDifference(a, b, opts), nil
	}
	if a.Dimension() == 2 {
		return a, nil
	}
	return linearOperation(Difference, a, b, opts), nil
}

// SymmetricSubtract returns the symmetric difference of a and b. Empty
// is the identity.
func SymmetricSubtract(a, b geometry.Geometry, opts ...geomopts.Option) (geometry.Geometry, error) {
	if isEmpty(a) {
		return b, nil
	}
	if isEmpty(b) {
		return a, nil
	}
	if a.Dimension() != b.Dimension() {
		return nil, ErrMixedDimensions
	}
	if a.Dimension() == 2 {
		return regionOperation(SymmetricDifference, a, b, opts), nil
	}
	return linearOperation(SymmetricDifference, a, b, opts), nil
}

func isEmpty(g geometry.Geometry) bool {
	_, ok := g.(geometry.Empty)
	return ok
}

// linearOperation runs the full sweep over two linear (or mixed)
// operands and reduces the surviving pieces to a linear geometry.
func linearOperation(kind Kind, a, b geometry.Geometry, opts []geomopts.Option) geometry.Geometry {
	op := FromMultisegmentals(kind, a, b, opts...)
	segments := ReduceEventsToSegments(op, op.Events(), func(start, end point.Point) geometry.Segment {
		s, err := geometry.NewSegment(start, end)
		if err != nil {
			panic(fmt.Errorf("boolop: reducer produced a degenerate segment: %w", err))
		}
		return s
	})
	return wrapSegments(segments)
}

// regionOperation runs the full sweep over two region operands with no
// pre-filtering; union and symmetric difference need every edge of both
// operands regardless of box overlap.
func regionOperation(kind Kind, a, b geometry.Geometry, opts []geomopts.Option) geometry.Geometry {
	op := FromMultisegmentals(kind, a, b, opts...)
	return wrapPolygonValues(reducePolygons(op, op.Events()))
}

// regionIntersection applies the bounding-box pre-filter: operand polygons
// whose boxes share no area with the other operand's overall box are
// dropped, and the sweep is cut off once event starts pass the clipping
// window's right edge.
func regionIntersection(a, b geometry.Geometry, opts []geomopts.Option) geometry.Geometry {
	aPolys, bPolys := polygonsOf(a), polygonsOf(b)
	aBoxes, bBoxes := boxesOf(aPolys), boxesOf(bPolys)
	aBox, bBox := mergeBoxes(aBoxes), mergeBoxes(bBoxes)
	if !aBox.HasCommonAreaWith(bBox) {
		return geometry.Empty{}
	}

	aCommon := polygonsWithCommonArea(aPolys, aBoxes, bBox)
	bCommon := polygonsWithCommonArea(bPolys, bBoxes, aBox)
	if len(aCommon) == 0 || len(bCommon) == 0 {
		return geometry.Empty{}
	}

	maxX := aBox.MaxX()
	if bBox.MaxX().Less(maxX) {
		maxX = bBox.MaxX()
	}
	op := FromMultisegmentalsSequences(Intersection, aCommon, bCommon, opts...)
	return wrapPolygonValues(reducePolygons(op, collectBounded(op, maxX)))
}

// regionDifference applies the bounding-box pre-filter for subtraction: first
// operand polygons outside the second operand's overall box pass
// through unchanged, and the sweep is cut off past the first operand's
// own right edge, beyond which only second-operand events remain.
func regionDifference(a, b geometry.Geometry, opts []geomopts.Option) geometry.Geometry {
	aPolys, bPolys := polygonsOf(a), polygonsOf(b)
	aBoxes, bBoxes := boxesOf(aPolys), boxesOf(bPolys)
	aBox, bBox := mergeBoxes(aBoxes), mergeBoxes(bBoxes)
	if !aBox.HasCommonAreaWith(bBox) {
		return wrapPolygonValues(aPolys)
	}

	var common []geometry.Geometry
	var commonBoxes []Box
	var passedThrough []geometry.Polygon
	for i, p := range aPolys {
		if aBoxes[i].HasCommonAreaWith(bBox) {
			common = append(common, p)
			commonBoxes = append(commonBoxes, aBoxes[i])
		} else {
			passedThrough = append(passedThrough, p)
		}
	}
	if len(common) == 0 {
		return wrapPolygonValues(aPolys)
	}
	bCommon := polygonsWithCommonArea(bPolys, bBoxes, mergeBoxes(commonBoxes))
	if len(bCommon) == 0 {
		return wrapPolygonValues(aPolys)
	}

	op := FromMultisegmentalsSequences(Difference, common, bCommon, opts...)
	result := reducePolygons(op, collectBounded(op, mergeBoxes(commonBoxes).MaxX()))
	result = append(result, passedThrough...)
	return wrapPolygonValues(result)
}

// collectBounded drives the sweep, collecting processed events until
// the queue empties or the next event's start x passes maxX — beyond
// that no event can change the result inside the clipping window.
func collectBounded(op *Operation, maxX scalar.Rational) []event.Handle {
	var out []event.Handle
	op.Sweep.RunBounded(maxX, func(e event.Handle) bool {
		out = append(out, e)
		return true
	})
	return out
}

func reducePolygons(op *Operation, events []event.Handle) []geometry.Polygon {
	return ReduceEventsToPolygons(op, events,
		func(vertices []point.Point) geometry.Contour {
			c, err := geometry.NewContour(vertices)
			if err != nil {
				panic(fmt.Errorf("boolop: reducer produced an invalid contour: %w", err))
			}
			return c
		},
		func(border geometry.Contour, holes []geometry.Contour) geometry.Polygon {
			p, err := geometry.NewPolygon(border, holes)
			if err != nil {
				panic(fmt.Errorf("boolop: reducer produced an invalid polygon: %w", err))
			}
			return p
		})
}

func polygonsOf(g geometry.Geometry) []geometry.Polygon {
	switch v := g.(type) {
	case geometry.Polygon:
		return []geometry.Polygon{v}
	case geometry.Multipolygon:
		return v.Polygons()
	default:
		panic(fmt.Errorf("boolop: expected a region geometry, got %T", g))
	}
}

func boxesOf(polys []geometry.Polygon) []Box {
	out := make([]Box, len(polys))
	for i, p := range polys {
		out[i] = boxOfPolygon(p)
	}
	return out
}

func polygonsWithCommonArea(polys []geometry.Polygon, boxes []Box, against Box) []geometry.Geometry {
	var out []geometry.Geometry
	for i, p := range polys {
		if boxes[i].HasCommonAreaWith(against) {
			out = append(out, p)
		}
	}
	return out
}

func wrapSegments(segments []geometry.Segment) geometry.Geometry {
	switch len(segments) {
	case 0:
		return geometry.Empty{}
	case 1:
		return segments[0]
	default:
		m, err := geometry.NewMultisegment(segments)
		if err != nil {
			panic(fmt.Errorf("boolop: %w", err))
		}
		return m
	}
}

func wrapPolygonValues(polys []geometry.Polygon) geometry.Geometry {
	switch len(polys) {
	case 0:
		return geometry.Empty{}
	case 1:
		return polys[0]
	default:
		m, err := geometry.NewMultipolygon(polys)
		if err != nil {
			panic(fmt.Errorf("boolop: %w", err))
		}
		return m
	}
}
