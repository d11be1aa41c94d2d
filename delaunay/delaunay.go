// Package delaunay implements a recursive divide-and-conquer Delaunay
// triangulation builder: given a point set, it returns a
// [github.com/havralex/planekernel/quadedge.Mesh] plus the left- and
// right-hull edges bounding it, legal in the in-circle sense everywhere.
//
// The algorithm is the classic Guibas-Stolfi (1985) divide-and-conquer
// construction: sort and deduplicate, triangulate halves recursively,
// then merge by walking the lower common tangent upward, deleting any
// cross edge the in-circle test invalidates.
package delaunay

import (
	"sort"

	"github.com/havralex/planekernel/geomkernel"
	"github.com/havralex/planekernel/point"
	"github.com/havralex/planekernel/predicate"
	"github.com/havralex/planekernel/quadedge"
)

// Triangulation is the result of [Build]: a mesh together with the hull
// edges bounding its leftmost and rightmost extent.
type Triangulation struct {
	Mesh      *quadedge.Mesh
	LeftSide  quadedge.Edge
	RightSide quadedge.Edge
}

// Build triangulates points. Points need not be pre-sorted or
// pre-deduplicated; Build sorts lexicographically and removes
// duplicates itself.
func Build(points []point.Point) *Triangulation {
	sorted := make([]point.Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
	sorted = quadedge.DeduplicateSorted(sorted)

	mesh := quadedge.FromPoints(sorted)
	if len(sorted) == 0 {
		return &Triangulation{Mesh: mesh}
	}
	if len(sorted) == 1 {
		return &Triangulation{Mesh: mesh}
	}

	b := &builder{mesh: mesh, points: sorted}
	left, right := b.build(0, len(sorted))
	return &Triangulation{Mesh: mesh, LeftSide: left, RightSide: right}
}

type builder struct {
	mesh   *quadedge.Mesh
	points []point.Point
}

// build triangulates points[lo:hi] and returns its (leftmost, rightmost)
// hull edges.
func (b *builder) build(lo, hi int) (leftEdge, rightEdge quadedge.Edge) {
	n := hi - lo
	switch n {
	case 2:
		e := b.mesh.MakeEdge(lo, lo+1)
		return e, e.Sym()

	case 3:
		a := b.mesh.MakeEdge(lo, lo+1)
		c := b.mesh.MakeEdge(lo+1, lo+2)
		b.mesh.Splice(a.Sym(), c)

		p0, p1, p2 := b.points[lo], b.points[lo+1], b.points[lo+2]
		switch predicate.Orient(p0, p1, p2) {
		case geomkernel.CounterClockwise:
			e := b.mesh.Connect(c, a)
			return a, e.Sym()
		case geomkernel.Clockwise:
			e := b.mesh.Connect(c, a)
			return e.Sym(), e
		default:
			// Collinear: leave the two-edge polyline a-c.
			return a, c.Sym()
		}

	default:
		mid := lo + n/2
		ldo, ldi := b.build(lo, mid)
		rdi, rdo := b.build(mid, hi)
		return b.merge(ldo, ldi, rdi, rdo)
	}
}

// merge computes the lower common tangent between the left and right
// sub-triangulations and zips them together, deleting any cross edge
// invalidated by the in-circle test along the way.
func (b *builder) merge(ldo, ldi, rdi, rdo quadedge.Edge) (leftEdge, rightEdge quadedge.Edge) {
	m := b.mesh

	// Walk up to the lower common tangent.
	for {
		if leftOf(m, m.Org(rdi), ldi) {
			ldi = m.Lnext(ldi)
		} else if rightOf(m, m.Org(ldi), rdi) {
			rdi = m.Rprev(rdi)
		} else {
			break
		}
	}

	baseEdge := m.Connect(rdi.Sym(), ldi)
	if m.Org(ldi).Eq(m.Org(ldo)) {
		ldo = baseEdge.Sym()
	}
	if m.Org(rdi).Eq(m.Org(rdo)) {
		rdo = baseEdge
	}

	for {
		lcand := m.Onext(baseEdge.Sym())
		lcandValid := validCandidate(m, lcand, baseEdge)
		if lcandValid {
			for inCircle(m, m.Dest(baseEdge), m.Org(baseEdge), m.Dest(lcand), m.Dest(m.Onext(lcand))) {
				next := m.Onext(lcand)
				m.DeleteEdge(lcand)
				lcand = next
				lcandValid = validCandidate(m, lcand, baseEdge)
				if !lcandValid {
					break
				}
			}
		}

		rcand := m.Oprev(baseEdge)
		rcandValid := validCandidate(m, rcand, baseEdge)
		if rcandValid {
			for inCircle(m, m.Dest(baseEdge), m.Org(baseEdge), m.Dest(rcand), m.Dest(m.Oprev(rcand))) {
				next := m.Oprev(rcand)
				m.DeleteEdge(rcand)
				rcand = next
				rcandValid = validCandidate(m, rcand, baseEdge)
				if !rcandValid {
					break
				}
			}
		}

		if !lcandValid && !rcandValid {
			break
		}

		if !lcandValid ||
			(rcandValid && inCircle(m, m.Dest(lcand), m.Org(lcand), m.Org(rcand), m.Dest(rcand))) {
			baseEdge = m.Connect(rcand, baseEdge.Sym())
		} else {
			baseEdge = m.Connect(baseEdge.Sym(), lcand.Sym())
		}
	}

	return ldo, rdo
}

// validCandidate reports whether candidate's destination is still
// strictly above baseEdge, i.e. whether it can still be considered for
// the merge's upward zip.
func validCandidate(m *quadedge.Mesh, candidate, baseEdge quadedge.Edge) bool {
	return predicate.Orient(m.Dest(baseEdge), m.Org(baseEdge), m.Dest(candidate)) == geomkernel.CounterClockwise
}

func leftOf(m *quadedge.Mesh, p point.Point, e quadedge.Edge) bool {
	return predicate.Orient(p, m.Org(e), m.Dest(e)) == geomkernel.CounterClockwise
}

func rightOf(m *quadedge.Mesh, p point.Point, e quadedge.Edge) bool {
	return predicate.Orient(p, m.Org(e), m.Dest(e)) == geomkernel.Clockwise
}

// inCircle reports whether d lies strictly inside the circle through a,
// b, c.
func inCircle(m *quadedge.Mesh, a, b, c point.Point, d point.Point) bool {
	return predicate.InCircle(a, b, c, d) > 0
}

// BoundaryPoints walks the hull starting from LeftSide, advancing
// clockwise around the outer (right) face onto the next hull edge, and
// returns every boundary vertex once. For a
// triangulation of fewer than two distinct points (no edges at all), it
// falls back to the mesh's point list. A collinear input's polyline walk
// visits interior vertices from both sides; the seen-set keeps each
// vertex's first visit only.
func (t *Triangulation) BoundaryPoints() []point.Point {
	if len(t.Mesh.Points()) < 2 {
		return append([]point.Point(nil), t.Mesh.Points()...)
	}

	start := t.LeftSide
	var result []point.Point
	seen := make(map[int]bool)
	e := start
	for {
		if org := t.Mesh.OrgIndex(e); !seen[org] {
			seen[org] = true
			result = append(result, t.Mesh.Org(e))
		}
		candidate := t.Mesh.Rprev(e)
		if candidate == start {
			break
		}
		e = candidate
	}
	return result
}

// TrianglesVertices enumerates every triangular face as an (a, b, c)
// counterclockwise vertex triple, deduplicated by requiring a to be the
// lexicographically minimal vertex of the triangle: of a triangle's
// three directed boundary edges in CCW order, exactly one starts at the
// smallest vertex, so requiring a < b and a < c visits every face once.
// A wholly collinear input produces no triangles.
func (t *Triangulation) TrianglesVertices() [][3]point.Point {
	m := t.Mesh
	var result [][3]point.Point
	for _, e := range m.PrimalEdges() {
		a := m.Org(e)
		bPt := m.Dest(e)
		thirdIdx := m.DestIndex(m.Lnext(e))
		c := m.Points()[thirdIdx]

		if !(a.Less(bPt) && a.Less(c)) {
			continue
		}
		// The left face is a closed triangle only if walking the other
		// way around it reaches the same third vertex.
		if m.DestIndex(m.Onext(e)) != thirdIdx {
			continue
		}
		if predicate.Orient(a, bPt, c) != geomkernel.CounterClockwise {
			continue
		}
		result = append(result, [3]point.Point{a, bPt, c})
	}
	return result
}
