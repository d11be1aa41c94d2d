package boolop

import (
	"github.com/havralex/planekernel/geometry"
	"github.com/havralex/planekernel/scalar"
)

// Box is the axis-aligned bounding box the pre-filter pass works with
//. It lives here rather than in a public geometry package because
// bounding-box arithmetic is internal plumbing of the operation
// entrypoints, not part of the kernel's data model.
type Box struct {
	minX, minY, maxX, maxY scalar.Rational
}

// boxOfSegments returns the bounding box of every endpoint in segments.
// segments must be non-empty.
func boxOfSegments(segments []geometry.Segment) Box {
	first := segments[0]
	b := Box{
		minX: first.Start().X(), minY: first.Start().Y(),
		maxX: first.Start().X(), maxY: first.Start().Y(),
	}
	for _, s := range segments {
		for _, p := range []scalar.Rational{s.Start().X(), s.End().X()} {
			if p.Less(b.minX) {
				b.minX = p
			}
			if b.maxX.Less(p) {
				b.maxX = p
			}
		}
		for _, p := range []scalar.Rational{s.Start().Y(), s.End().Y()} {
			if p.Less(b.minY) {
				b.minY = p
			}
			if b.maxY.Less(p) {
				b.maxY = p
			}
		}
	}
	return b
}

// boxOfPolygon returns the bounding box of p's border; holes lie inside
// it by construction.
func boxOfPolygon(p geometry.Polygon) Box {
	return boxOfSegments(p.Border().Segments())
}

// mergeBoxes returns the smallest box covering every box in boxes.
// boxes must be non-empty.
func mergeBoxes(boxes []Box) Box {
	out := boxes[0]
	for _, b := range boxes[1:] {
		if b.minX.Less(out.minX) {
			out.minX = b.minX
		}
		if b.minY.Less(out.minY) {
			out.minY = b.minY
		}
		if out.maxX.Less(b.maxX) {
			out.maxX = b.maxX
		}
		if out.maxY.Less(b.maxY) {
			out.maxY = b.maxY
		}
	}
	return out
}

// MaxX returns the box's largest x-coordinate, the clipping-window bound
// the sweep short-circuit compares event starts against.
func (b Box) MaxX() scalar.Rational { return b.maxX }

// HasCommonAreaWith reports whether b and o share interior area. Boxes
// that merely touch along an edge or at a corner share no area: a
// region operation between their owners can only produce
// lower-dimensional contact, which contributes nothing to a region
// result.
func (b Box) HasCommonAreaWith(o Box) bool {
	return b.minX.Less(o.maxX) && o.minX.Less(b.maxX) &&
		b.minY.Less(o.maxY) && o.minY.Less(b.maxY)
}
