// Package quadedge implements the Guibas-Stolfi quad-edge data
// structure: an array/handle mesh of directed edges that
// represents a planar subdivision and its dual simultaneously.
//
// Each undirected edge is a group of four directed-edge handles: e,
// Sym(e) (the same edge, reversed), Rot(e) and InvRot(e) (the dual edge
// crossing it, in each rotational direction). A handle is a plain int;
// the four handles of one quad-edge are four consecutive integers, and
// Sym/Rot/InvRot are arithmetic on the low two bits rather than pointer
// chasing — the array translation of the classic pointer-based
// quad-edge of Guibas-Stolfi (1985).
package quadedge

import (
	"fmt"

	"github.com/havralex/planekernel/point"
)

// Edge is a directed-edge handle. Handles are grouped in fours: for any
// handle e, e-(e%4) is the base of its quad-edge, and the low two bits
// select which of the four directions e names.
type Edge int

const noOrigin = -1

// Sym returns the same undirected edge, reversed: Org(Sym(e)) ==
// Dest(e).
func (e Edge) Sym() Edge { return e.base() + (e.rot()+2)%4 }

// Rot returns the dual edge crossing e, rotated 90 degrees
// counterclockwise.
func (e Edge) Rot() Edge { return e.base() + (e.rot()+1)%4 }

// InvRot returns the dual edge crossing e, rotated 90 degrees clockwise
// (the inverse of Rot).
func (e Edge) InvRot() Edge { return e.base() + (e.rot()+3)%4 }

func (e Edge) base() Edge { return e - e%4 }
func (e Edge) rot() Edge  { return e % 4 }

// Mesh is a growable array of quad-edges plus the vertex coordinates
// they reference. A Mesh is built by [FromPoints] and mutated by
// [Mesh.MakeEdge], [Mesh.Splice], [Mesh.Connect], and
// [Mesh.DeleteEdge]; it is not safe for concurrent use.
type Mesh struct {
	points []point.Point
	next   []Edge // Onext, one slot per directed-edge handle
	org    []int  // origin vertex index, meaningful only at rot 0 and 2
	alive  []bool // per quad-edge (indexed by base/4), false once deleted
}

// FromPoints returns an empty mesh referencing points. Callers must
// pass points already sorted and deduplicated; [DeduplicateSorted]
// handles the latter in one pass over a lexicographically sorted slice.
func FromPoints(points []point.Point) *Mesh {
	cp := make([]point.Point, len(points))
	copy(cp, points)
	return &Mesh{points: cp}
}

// DeduplicateSorted removes consecutive equal points from a
// lexicographically sorted slice in place.
func DeduplicateSorted(points []point.Point) []point.Point {
	if len(points) == 0 {
		return points
	}
	out := points[:1]
	for _, p := range points[1:] {
		if !p.Eq(out[len(out)-1]) {
			out = append(out, p)
		}
	}
	return out
}

// Points returns the mesh's vertex array, indexed the same way
// [Mesh.OrgIndex] reports.
func (m *Mesh) Points() []point.Point { return m.points }

// MakeEdge appends a new quad-edge with origin vertex index org and
// destination vertex index dest, and returns its primal handle (the
// direction running org -> dest). The new edge's Onext rings are
// initialised to itself and its Sym/dual per the classic QuadEdge
// constructor.
func (m *Mesh) MakeEdge(org, dest int) Edge {
	base := Edge(len(m.next))
	m.next = append(m.next, base, base+3, base+2, base+1)
	m.org = append(m.org, org, noOrigin, dest, noOrigin)
	m.alive = append(m.alive, true)
	return base
}

// Splice is the Guibas-Stolfi involution that merges two distinct origin
// rings into one, or splits one ring into two, depending on whether a
// and b already share an origin ring.
func (m *Mesh) Splice(a, b Edge) {
	alpha := m.Onext(a).Rot()
	beta := m.Onext(b).Rot()

	aNext, bNext := m.Onext(a), m.Onext(b)
	alphaNext, betaNext := m.Onext(alpha), m.Onext(beta)

	m.setOnext(a, bNext)
	m.setOnext(b, aNext)
	m.setOnext(alpha, betaNext)
	m.setOnext(beta, alphaNext)
}

// Connect creates a new edge from Dest(a) to Org(b) and splices it into
// both a's and b's rings so that the new edge, a, and b all share a left
// face. It returns the primal handle of the new edge, running
// Dest(a) -> Org(b).
func (m *Mesh) Connect(a, b Edge) Edge {
	e := m.MakeEdge(m.DestIndex(a), m.OrgIndex(b))
	m.Splice(e, m.Lnext(a))
	m.Splice(e.Sym(), b)
	return e
}

// DeleteEdge splices e out of both its origin and destination rings and
// marks its quad-edge tombstoned. The handle must not be
// used again afterward.
func (m *Mesh) DeleteEdge(e Edge) {
	m.Splice(e, m.Oprev(e))
	m.Splice(e.Sym(), m.Oprev(e.Sym()))
	m.alive[int(e.base())/4] = false
}

// Alive reports whether e's quad-edge has not been deleted.
func (m *Mesh) Alive(e Edge) bool {
	return m.alive[int(e.base())/4]
}

// Onext returns the next edge counterclockwise around e's origin.
func (m *Mesh) Onext(e Edge) Edge { return m.next[e] }

// Oprev returns the next edge clockwise around e's origin.
func (m *Mesh) Oprev(e Edge) Edge { return m.Onext(e.Rot()).Rot() }

// Dnext returns the next edge counterclockwise around e's destination.
func (m *Mesh) Dnext(e Edge) Edge { return m.Onext(e.Sym()).Sym() }

// Dprev returns the next edge clockwise around e's destination.
func (m *Mesh) Dprev(e Edge) Edge { return m.Onext(e.InvRot()).InvRot() }

// Lnext returns the next edge counterclockwise around e's left face,
// i.e. the next edge of the face to e's left, following its boundary.
func (m *Mesh) Lnext(e Edge) Edge { return m.Onext(e.InvRot()).Rot() }

// Lprev returns the next edge clockwise around e's left face.
func (m *Mesh) Lprev(e Edge) Edge { return m.Onext(e).Sym() }

// Rnext returns the next edge counterclockwise around e's right face.
func (m *Mesh) Rnext(e Edge) Edge { return m.Onext(e.Rot()).InvRot() }

// Rprev returns the next edge clockwise around e's right face.
func (m *Mesh) Rprev(e Edge) Edge { return m.Onext(e.Sym()) }

// OrgIndex returns the index into [Mesh.Points] of e's origin vertex.
func (m *Mesh) OrgIndex(e Edge) int {
	if e.rot() == 0 || e.rot() == 2 {
		return m.org[e]
	}
	return m.org[e.Sym()]
}

// DestIndex returns the index into [Mesh.Points] of e's destination
// vertex.
func (m *Mesh) DestIndex(e Edge) int {
	return m.OrgIndex(e.Sym())
}

// Org returns e's origin point.
func (m *Mesh) Org(e Edge) point.Point { return m.points[m.OrgIndex(e)] }

// Dest returns e's destination point.
func (m *Mesh) Dest(e Edge) point.Point { return m.points[m.DestIndex(e)] }

func (m *Mesh) setOnext(e, onext Edge) {
	m.next[e] = onext
}

// PrimalEdges returns every live directed primal handle (both
// directions of every undirected edge still in the mesh), for callers
// that need to enumerate edges without walking rings (e.g.
// [github.com/havralex/planekernel/delaunay]'s triangle enumeration).
func (m *Mesh) PrimalEdges() []Edge {
	var out []Edge
	for base := 0; base+3 < len(m.next); base += 4 {
		if !m.alive[base/4] {
			continue
		}
		out = append(out, Edge(base), Edge(base+2))
	}
	return out
}

// CheckInvariants re-verifies the mesh invariants: Sym(Sym(e)) ==
// e, and Onext forms a cycle around every origin. It is a fatal
// programmer error (panics) if either is violated.
func (m *Mesh) CheckInvariants() {
	for base := 0; base+3 < len(m.next); base += 4 {
		e := Edge(base)
		if e.Sym().Sym() != e {
			panic(fmt.Errorf("quadedge: Sym(Sym(%d)) != %d", e, e))
		}
		if !m.alive[base/4] {
			continue
		}
		for _, dir := range []Edge{e, e.Rot(), e.Sym(), e.InvRot()} {
			seen := map[Edge]bool{dir: true}
			cur := m.Onext(dir)
			for cur != dir {
				if seen[cur] {
					panic(fmt.Errorf("quadedge: Onext ring at %d does not return to itself", dir))
				}
				seen[cur] = true
				cur = m.Onext(cur)
			}
		}
	}
}
