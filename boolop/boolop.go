// Package boolop implements exact Boolean set operations — union,
// intersection, difference, symmetric difference — over the kernel's
// multisegmental geometries, on top of the sweep engine's event stream
//.
//
// An [Operation] couples one sweep run with an operation [Kind]; its
// per-event result predicate decides which processed left events
// survive into the output, and the reducers in reduce.go thread those
// survivors into segments or polygons. The top-level entrypoints in
// ops.go add the bounding-box pre-filter and the x-window sweep
// short-circuit around the raw engine.
package boolop

import (
	"fmt"

	"github.com/havralex/planekernel/event"
	"github.com/havralex/planekernel/geometry"
	"github.com/havralex/planekernel/geomopts"
	"github.com/havralex/planekernel/sweep"
)

// Kind selects which Boolean set operation an [Operation] computes.
type Kind int

const (
	// Union keeps every point belonging to either operand.
	Union Kind = iota
	// Intersection keeps the points belonging to both operands.
	Intersection
	// Difference keeps the points of the first operand not in the
	// second.
	Difference
	// SymmetricDifference keeps the points belonging to exactly one
	// operand.
	SymmetricDifference
)

// String renders the operation kind's name.
func (k Kind) String() string {
	switch k {
	case Union:
		return "Union"
	case Intersection:
		return "Intersection"
	case Difference:
		return "Difference"
	case SymmetricDifference:
		return "SymmetricDifference"
	default:
		panic(fmt.Errorf("boolop: unsupported operation kind %d", k))
	}
}

// Operation is one Boolean computation over two ingested operands. It
// owns its sweep exclusively and is driven either through
// [Operation.Next] or all at once through [Operation.Events].
type Operation struct {
	Kind  Kind
	Sweep *sweep.Operation

	// region selects the region result predicate (interiors and
	// boundary transitions) over the linear one (pieces and common
	// components). Set when both operands are two-dimensional.
	region bool
}

// FromSegmentsIterables returns the operation over two plain segment
// collections.
func FromSegmentsIterables(kind Kind, first, second []geometry.Segment, opts ...geomopts.Option) *Operation {
	op := newOperation(kind, false, opts)
	for _, s := range first {
		op.Sweep.AddSegment(s.Start(), s.End(), true)
	}
	for _, s := range second {
		op.Sweep.AddSegment(s.Start(), s.End(), false)
	}
	return op
}

// FromMultisegmentals returns the operation over two geometries.
func FromMultisegmentals(kind Kind, first, second geometry.Geometry, opts ...geomopts.Option) *Operation {
	return FromMultisegmentalsSequences(kind, []geometry.Geometry{first}, []geometry.Geometry{second}, opts...)
}

// FromMultisegmentalsSequences returns the operation over two sequences
// of geometries, each sequence forming one operand. This is the
// form the pre-filter passes use, feeding only the polygons whose boxes
// overlap the other operand.
func FromMultisegmentalsSequences(kind Kind, first, second []geometry.Geometry, opts ...geomopts.Option) *Operation {
	region := allRegion(first) && allRegion(second)
	op := newOperation(kind, region, opts)
	for _, g := range first {
		op.Sweep.AddOperand(geometry.OrientedSegmentsOf(g), true)
	}
	for _, g := range second {
		op.Sweep.AddOperand(geometry.OrientedSegmentsOf(g), false)
	}
	return op
}

// FromMultisegmentalMultisegmentalsSequence is the asymmetric mix with a
// single geometry as the first operand.
func FromMultisegmentalMultisegmentalsSequence(kind Kind, first geometry.Geometry, second []geometry.Geometry, opts ...geomopts.Option) *Operation {
	return FromMultisegmentalsSequences(kind, []geometry.Geometry{first}, second, opts...)
}

// FromMultisegmentalsSequenceMultisegmental is the asymmetric mix with a
// single geometry as the second operand.
func FromMultisegmentalsSequenceMultisegmental(kind Kind, first []geometry.Geometry, second geometry.Geometry, opts ...geomopts.Option) *Operation {
	return FromMultisegmentalsSequences(kind, first, []geometry.Geometry{second}, opts...)
}

func newOperation(kind Kind, region bool, opts []geomopts.Option) *Operation {
	return &Operation{Kind: kind, Sweep: sweep.New(opts...), region: region}
}

func allRegion(gs []geometry.Geometry) bool {
	for _, g := range gs {
		if g.Dimension() != 2 {
			return false
		}
	}
	return len(gs) > 0
}

// Next advances the underlying sweep by one event.
func (o *Operation) Next() (event.Handle, bool) {
	return o.Sweep.Next()
}

// Events drives the sweep to completion and returns every processed
// event in queue order.
func (o *Operation) Events() []event.Handle {
	var out []event.Handle
	o.Sweep.Run(func(e event.Handle) bool {
		out = append(out, e)
		return true
	})
	return out
}

// inResult decides whether processed left event e contributes an edge to
// this operation's output.
//
// Region operands follow the boundary-transition rules: a shared
// boundary piece survives union and intersection only when both
// interiors lie on the same side of it, survives difference only when
// they lie on opposite sides, and never survives symmetric difference;
// every non-shared edge is kept or dropped by which side of the other
// operand it lies on, with symmetric difference keeping all of them
// (an edge of one operand inside the other separates the two one-sided
// remainders there).
//
// Linear operands reduce to the simpler piece rules: common pieces are
// tagged once via the first operand, and "inside" only ever fires for a
// linear operand clipped against a region.
func (o *Operation) inResult(e event.Handle) bool {
	s := o.Sweep
	first := s.Store.IsFromFirstOperand(e)

	if o.region {
		if s.IsCommonPolylineComponent(e) {
			switch o.Kind {
			case Union, Intersection:
				return first && s.SameTransition(e)
			case Difference:
				return !first && !s.SameTransition(e)
			default:
				return false
			}
		}
		switch o.Kind {
		case Union:
			return !s.IsInside(e)
		case Intersection:
			return s.IsInside(e)
		case Difference:
			if first {
				return !s.IsInside(e)
			}
			return s.IsInside(e)
		default:
			return true
		}
	}

	if s.IsCommonPolylineComponent(e) {
		switch o.Kind {
		case Union, Intersection:
			return first
		default:
			return false
		}
	}
	switch o.Kind {
	case Union, SymmetricDifference:
		return !s.IsInside(e)
	case Intersection:
		return s.IsInside(e)
	default:
		return first && !s.IsInside(e)
	}
}
