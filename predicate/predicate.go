// Package predicate implements the exact geometric predicates the sweep
// and triangulation engines are built on: orientation, line intersection,
// interval membership, and point-in-polygon.
//
// Every predicate here is total and pure over finite scalars:
// there is no epsilon anywhere, because [github.com/havralex/planekernel/scalar.Rational]
// carries no rounding error. Orientation is the sign of an exact
// determinant; intersection of two non-parallel lines is the exact
// rational solution of the 2x2 linear system they define.
package predicate

import (
	"github.com/havralex/planekernel/geomkernel"
	"github.com/havralex/planekernel/point"
	"github.com/havralex/planekernel/scalar"
)

// Orient returns the orientation of the turn at b when walking from a to
// b to c: the sign of the determinant (b-a) x (c-a).
func Orient(a, b, c point.Point) geomkernel.Orientation {
	cross := b.Sub(a).CrossProduct(c.Sub(a))
	switch cross.Sign() {
	case 0:
		return geomkernel.Collinear
	case 1:
		return geomkernel.CounterClockwise
	default:
		return geomkernel.Clockwise
	}
}

// Intersect returns the exact point where lines p1p2 and p3p4 cross,
// along with whether the lines are not parallel. Callers must only rely
// on the result falling strictly between both segments' endpoints after
// independently confirming (via [Orient]) that the four points describe a
// proper crossing — this function only solves the underlying linear
// system, it does not itself check segment bounds.
func Intersect(p1, p2, p3, p4 point.Point) (point.Point, bool) {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	denom := d1.CrossProduct(d2)
	if denom.IsZero() {
		return point.Point{}, false
	}

	// Solve p1 + t*d1 == p3 + u*d2 for t using Cramer's rule.
	diff := p3.Sub(p1)
	t := diff.CrossProduct(d2).Div(denom)

	x := p1.X().Add(t.Mul(d1.X()))
	y := p1.Y().Add(t.Mul(d1.Y()))
	return point.New(x, y), true
}

// StrictlyBetween reports whether p lies strictly between a and b,
// assuming a, b, p are already known to be collinear. Used by
// T-junction detection to confirm an endpoint falls in a
// segment's open interior rather than at one of its ends.
func StrictlyBetween(a, p, b point.Point) bool {
	lo, hi := point.Min(a, b), point.Max(a, b)
	return lo.Less(p) && p.Less(hi)
}

// OnClosedSegment reports whether p lies on the closed segment [a, b],
// assuming a, b, p are already known to be collinear.
func OnClosedSegment(a, p, b point.Point) bool {
	lo, hi := point.Min(a, b), point.Max(a, b)
	return !p.Less(lo) && !hi.Less(p)
}

// InPolygon reports whether p lies strictly inside the closed polygon
// described by vertices (in order, implicitly closed), using the exact
// winding-number-free even/odd ray-casting rule evaluated with [Orient]
// so that no epsilon is needed at the boundary. Points exactly on an
// edge are reported as not-inside; callers sample strictly interior
// points when they need boundary-free containment answers.
func InPolygon(p point.Point, vertices []point.Point) bool {
	inside := false
	n := len(vertices)
	for i := 0; i < n; i++ {
		a := vertices[i]
		b := vertices[(i+1)%n]

		if onSegmentInclusive(a, p, b) {
			return false
		}

		if (a.Y().Less(p.Y())) != (b.Y().Less(p.Y())) {
			// Edge straddles p's horizontal line; compute exact x of the
			// crossing via the cross-product sign rather than solving for
			// it, avoiding any division until strictly necessary.
			if rayCrossesEdge(p, a, b) {
				inside = !inside
			}
		}
	}
	return inside
}

func onSegmentInclusive(a, p, b point.Point) bool {
	if Orient(a, b, p) != geomkernel.Collinear {
		return false
	}
	return OnClosedSegment(a, p, b)
}

// rayCrossesEdge reports whether the horizontal ray from p in the +x
// direction crosses edge (a, b), given that a.y and b.y straddle p.y.
func rayCrossesEdge(p, a, b point.Point) bool {
	// x-intercept of edge ab at y = p.y is:
	//   a.x + (p.y - a.y) * (b.x - a.x) / (b.y - a.y)
	// Compare that to p.x without dividing, by multiplying through by
	// (b.y - a.y) and flipping the inequality if that factor is negative.
	dy := b.Y().Sub(a.Y())
	lhs := p.X().Sub(a.X()).Mul(dy)
	rhs := p.Y().Sub(a.Y()).Mul(b.X().Sub(a.X()))
	if dy.Sign() < 0 {
		lhs, rhs = rhs, lhs
	}
	return lhs.Less(rhs)
}

// InCircle implements the exact 4x4 in-circle determinant test used by
// Delaunay legality checks: it returns a positive value when d
// lies strictly inside the circle through a, b, c taken
// counterclockwise, zero when d lies exactly on that circle, and
// negative when d lies strictly outside it.
func InCircle(a, b, c, d point.Point) int {
	ax, ay := a.X().Sub(d.X()), a.Y().Sub(d.Y())
	bx, by := b.X().Sub(d.X()), b.Y().Sub(d.Y())
	cx, cy := c.X().Sub(d.X()), c.Y().Sub(d.Y())

	aSq := ax.Mul(ax).Add(ay.Mul(ay))
	bSq := bx.Mul(bx).Add(by.Mul(by))
	cSq := cx.Mul(cx).Add(cy.Mul(cy))

	det := det3(
		ax, ay, aSq,
		bx, by, bSq,
		cx, cy, cSq,
	)
	return det.Sign()
}

func det3(a11, a12, a13, a21, a22, a23, a31, a32, a33 scalar.Rational) scalar.Rational {
	t1 := a11.Mul(a22.Mul(a33).Sub(a23.Mul(a32)))
	t2 := a12.Mul(a21.Mul(a33).Sub(a23.Mul(a31)))
	t3 := a13.Mul(a21.Mul(a32).Sub(a22.Mul(a31)))
	return t1.Sub(t2).Add(t3)
}
