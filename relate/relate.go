// Package relate classifies the topological relation between two
// geometries into the eleven mutually exclusive tags of
// [geomkernel.Relation].
//
// The engine reuses the same sweep the Boolean operations run but,
// instead of reducing events into output geometry, it
// aggregates per-operand counts of inside, outside, and shared boundary
// pieces plus the crossing and touching transitions the sweep resolved,
// and reads the relation off those aggregates.
package relate

import (
	"github.com/havralex/planekernel/event"
	"github.com/havralex/planekernel/geometry"
	"github.com/havralex/planekernel/geomkernel"
	"github.com/havralex/planekernel/geomopts"
	"github.com/havralex/planekernel/sweep"
)

// Relate returns the relation of a to b. The complement identity
// Relate(a, b).Complement() == Relate(b, a) holds for all inputs.
func Relate(a, b geometry.Geometry, opts ...geomopts.Option) geomkernel.Relation {
	aEmpty, bEmpty := isEmpty(a), isEmpty(b)
	switch {
	case aEmpty && bEmpty:
		return geomkernel.Equal
	case aEmpty || bEmpty:
		return geomkernel.Disjoint
	}

	st := sweepStats(a, b, opts)

	switch {
	case a.Dimension() == 2 && b.Dimension() == 2:
		return classifyRegions(st)
	case a.Dimension() == 2:
		// Region versus linear: classify from the linear operand's
		// viewpoint and swap roles back.
		return classifyLinearAgainstRegion(st.swapped()).Complement()
	case b.Dimension() == 2:
		return classifyLinearAgainstRegion(st)
	default:
		return classifyLinear(st)
	}
}

// operandStats aggregates what the sweep saw of one operand's pieces.
type operandStats struct {
	inside     bool // a non-shared piece inside the other operand
	outside    bool // a non-shared piece outside the other operand
	common     bool // a piece shared with the other operand's boundary
	commonSame bool // a shared piece with interiors on the same side
	commonDiff bool // a shared piece with interiors on opposite sides
	nonCommon  bool
}

type stats struct {
	first, second operandStats
	crossed       bool // a proper crossing between the operands
	touched       bool // a non-crossing shared point between the operands
}

func (s stats) swapped() stats {
	return stats{first: s.second, second: s.first, crossed: s.crossed, touched: s.touched}
}

// sweepStats runs the full sweep over both operands and aggregates the
// per-piece labels, plus the shared-point bookkeeping that separates
// touching from crossing contact.
func sweepStats(a, b geometry.Geometry, opts []geomopts.Option) stats {
	opts = append(opts[:len(opts):len(opts)], geomopts.WithIntersectionCollection())
	op := sweep.New(opts...)
	op.AddOperand(geometry.OrientedSegmentsOf(a), true)
	op.AddOperand(geometry.OrientedSegmentsOf(b), false)

	var lefts []event.Handle
	op.Run(func(e event.Handle) bool {
		if op.Store.IsLeft(e) {
			lefts = append(lefts, e)
		}
		return true
	})

	var st stats
	endpointOperands := make(map[string]uint8)
	for _, e := range lefts {
		first := op.Store.IsFromFirstOperand(e)
		side := &st.first
		var bit uint8 = 1
		if !first {
			side = &st.second
			bit = 2
		}

		if op.IsCommonPolylineComponent(e) {
			side.common = true
			if op.SameTransition(e) {
				side.commonSame = true
			} else {
				side.commonDiff = true
			}
		} else {
			side.nonCommon = true
			if op.IsInside(e) {
				side.inside = true
			} else {
				side.outside = true
			}
		}

		start, end := op.Endpoints(e)
		endpointOperands[start.String()] |= bit
		endpointOperands[end.String()] |= bit
	}

	st.crossed = op.CrossingsBetweenOperands() > 0

	crossKeys := make(map[string]bool)
	for _, p := range op.CrossingPoints() {
		crossKeys[p.String()] = true
	}
	for key, mask := range endpointOperands {
		if mask == 3 && !crossKeys[key] {
			st.touched = true
			break
		}
	}
	return st
}

func contact(s stats) bool {
	return s.first.common || s.second.common || s.touched || s.crossed
}

func classifyRegions(s stats) geomkernel.Relation {
	aAllCommon := s.first.common && !s.first.nonCommon
	bAllCommon := s.second.common && !s.second.nonCommon
	switch {
	case aAllCommon && bAllCommon:
		return geomkernel.Equal
	case aAllCommon:
		// A's whole boundary lies on B's. Same-side interiors make A a
		// component of B; opposite-side interiors mean A fills a hole
		// of B, sharing only boundary.
		if s.first.commonSame {
			return geomkernel.Component
		}
		return geomkernel.Touch
	case bAllCommon:
		if s.second.commonSame {
			return geomkernel.Composite
		}
		return geomkernel.Touch
	}

	aStraddles := s.first.inside && s.first.outside
	bStraddles := s.second.inside && s.second.outside
	switch {
	case aStraddles || bStraddles:
		return geomkernel.Overlap
	case s.first.inside:
		if contact(s) {
			return geomkernel.Enclosed
		}
		return geomkernel.Within
	case s.second.inside:
		if contact(s) {
			return geomkernel.Encloses
		}
		return geomkernel.Cover
	case contact(s):
		return geomkernel.Touch
	default:
		return geomkernel.Disjoint
	}
}

// classifyLinearAgainstRegion relates a linear first operand to a
// region second operand.
func classifyLinearAgainstRegion(s stats) geomkernel.Relation {
	a := s.first
	switch {
	case a.common && !a.nonCommon:
		return geomkernel.Component
	case a.inside && a.outside:
		return geomkernel.Cross
	case a.inside:
		if a.common || s.touched {
			return geomkernel.Enclosed
		}
		return geomkernel.Within
	case a.common || s.touched:
		return geomkernel.Touch
	case s.crossed:
		return geomkernel.Cross
	default:
		return geomkernel.Disjoint
	}
}

func classifyLinear(s stats) geomkernel.Relation {
	aAllCommon := s.first.common && !s.first.nonCommon
	bAllCommon := s.second.common && !s.second.nonCommon
	switch {
	case aAllCommon && bAllCommon:
		return geomkernel.Equal
	case aAllCommon:
		return geomkernel.Component
	case bAllCommon:
		return geomkernel.Composite
	case s.first.common || s.second.common:
		return geomkernel.Overlap
	case s.crossed:
		return geomkernel.Cross
	case s.touched:
		return geomkernel.Touch
	default:
		return geomkernel.Disjoint
	}
}

func isEmpty(g geometry.Geometry) bool {
	_, ok := g.(geometry.Empty)
	return ok
}
