// Package sweep implements the operation driver: the state machine
// that pops events from the queue, maintains the sweep status, detects
// and splits intersections between newly-adjacent segments, and labels
// each left event with the derived booleans the reducers need.
//
// The driver never touches a coordinate directly: it mutates an
// [github.com/havralex/planekernel/event.Store] by splitting events,
// and every split point comes from
// [github.com/havralex/planekernel/predicate]'s exact arithmetic.
package sweep

import (
	"fmt"

	"github.com/havralex/planekernel/event"
	"github.com/havralex/planekernel/geometry"
	"github.com/havralex/planekernel/geomkernel"
	"github.com/havralex/planekernel/geomopts"
	"github.com/havralex/planekernel/internal/trace"
	"github.com/havralex/planekernel/point"
	"github.com/havralex/planekernel/predicate"
	"github.com/havralex/planekernel/scalar"
	"github.com/havralex/planekernel/sweepqueue"
	"github.com/havralex/planekernel/sweepstatus"
)

// Labels holds the per-left-event booleans the reducers read. InsideOther
// says whether the segment piece lay inside the other operand's region
// at the moment it entered the status; Common and SameTransition record
// the outcome of the collinear-overlap branch for pieces shared by both
// operands' boundaries: SameTransition is true when both regions'
// interiors lie on the same side of the shared piece.
type Labels struct {
	InsideOther    bool
	Common         bool
	SameTransition bool
}

// Operation owns one event store, queue, and status exclusively for the
// duration of a single Boolean/relation computation: it is not
// shared across goroutines, and separate Operations may run concurrently
// on disjoint inputs.
type Operation struct {
	Store  *event.Store
	Queue  *sweepqueue.Queue
	Status *sweepstatus.Status

	labels []Labels

	// interiorToLeft is indexed by segment id and records, for region
	// operands, whether the owning region's interior lies to the left of
	// the segment's normalised start->end direction. Pieces produced by
	// division inherit their parent's id, and with it this flag.
	interiorToLeft []bool

	crossings    int
	collectCross bool
	crossPoints  []point.Point
}

// New returns an operation driving a fresh event store.
func New(opts ...geomopts.Option) *Operation {
	o := geomopts.Apply(opts...)
	var store *event.Store
	if o.EventCapacityHint > 0 {
		store = event.NewStoreWithCapacity(o.EventCapacityHint)
	} else {
		store = event.NewStore()
	}
	return &Operation{
		Store:        store,
		Queue:        sweepqueue.New(store),
		Status:       sweepstatus.New(store),
		collectCross: o.CollectIntersections,
	}
}

// AddSegment ingests one segment belonging to the operand tagged by
// fromFirstOperand, queuing both its left and right events.
func (op *Operation) AddSegment(a, b point.Point, fromFirstOperand bool) {
	op.AddOrientedSegment(a, b, fromFirstOperand, false)
}

// AddOrientedSegment ingests one directed segment a->b whose owning
// region's interior lies to the left of that direction when
// interiorToLeftOfAB is set. The store normalises endpoints; the flag is
// re-expressed relative to the normalised direction so labelling never
// has to care which way the caller walked the contour.
func (op *Operation) AddOrientedSegment(a, b point.Point, fromFirstOperand, interiorToLeftOfAB bool) {
	left, right := op.Store.AppendSegment(a, b, fromFirstOperand)
	itl := interiorToLeftOfAB
	if !op.Store.Endpoint(left).Eq(a) {
		itl = !itl
	}
	op.setInteriorToLeft(op.Store.SegmentID(left), itl)
	op.Queue.Push(left)
	op.Queue.Push(right)
}

// AddOperand ingests every edge of one operand's oriented segment
// stream (see [geometry.OrientedSegmentsOf]).
func (op *Operation) AddOperand(segments []geometry.OrientedSegment, fromFirstOperand bool) {
	for _, s := range segments {
		op.AddOrientedSegment(s.Start, s.End, fromFirstOperand, s.InteriorToLeft)
	}
}

// Next advances the state machine by one event. ok is false once the
// queue is empty.
func (op *Operation) Next() (event.Handle, bool) {
	e, ok := op.Queue.Pop()
	if !ok {
		return 0, false
	}
	trace.Tracef("pop event %d at %s (left=%t)", e, op.Store.Endpoint(e), op.Store.IsLeft(e))

	if op.Store.IsLeft(e) {
		if !op.Status.Contains(e) {
			op.Status.Insert(e)
			below, hasBelow, above, hasAbove := op.Status.Neighbors(e)
			if hasBelow {
				op.detectIntersection(below, e)
			}
			if hasAbove {
				op.detectIntersection(e, above)
			}
			op.computeLabel(e, below, hasBelow)
		}
	} else {
		l := op.Store.Opposite(e)
		if op.Status.Contains(l) {
			below, hasBelow, above, hasAbove := op.Status.Neighbors(l)
			op.Status.Remove(l)
			if hasBelow && hasAbove {
				op.detectIntersection(below, above)
			}
		}
	}

	return e, true
}

// Run drives the state machine to completion, calling yield with every
// event in queue order. It stops early if yield returns false.
func (op *Operation) Run(yield func(event.Handle) bool) {
	for {
		e, ok := op.Next()
		if !ok {
			return
		}
		if !yield(e) {
			return
		}
	}
}

// RunBounded is Run's x-window variant: it stops, without
// consuming the event, as soon as the next queued event's x exceeds
// maxX, because no further events can change the result inside that
// window.
func (op *Operation) RunBounded(maxX scalar.Rational, yield func(event.Handle) bool) {
	for {
		peek, ok := op.Queue.Peek()
		if !ok {
			return
		}
		if op.Store.Endpoint(peek).X().Cmp(maxX) > 0 {
			return
		}
		e, _ := op.Next()
		if !yield(e) {
			return
		}
	}
}

// IsOutside reports whether left event e's segment lies outside the
// other operand at the moment it was processed.
func (op *Operation) IsOutside(e event.Handle) bool {
	return !op.label(op.Store.Left(e)).InsideOther
}

// IsInside reports whether left event e's segment lies inside the other
// operand at the moment it was processed.
func (op *Operation) IsInside(e event.Handle) bool {
	return op.label(op.Store.Left(e)).InsideOther
}

// IsCommonPolylineComponent reports whether e's segment piece was merged
// with a coincident piece from the other operand during overlap
// resolution.
func (op *Operation) IsCommonPolylineComponent(e event.Handle) bool {
	return op.label(op.Store.Left(e)).Common
}

// SameTransition reports whether e's common piece has both operands'
// interiors on the same side. Meaningful only when
// [Operation.IsCommonPolylineComponent] is true.
func (op *Operation) SameTransition(e event.Handle) bool {
	return op.label(op.Store.Left(e)).SameTransition
}

// InteriorToLeft reports whether the owning region's interior lies to
// the left of e's segment in its normalised start->end direction. Always
// false for edges ingested without orientation (linear operands).
func (op *Operation) InteriorToLeft(e event.Handle) bool {
	id := op.Store.SegmentID(op.Store.Left(e))
	if id >= len(op.interiorToLeft) {
		return false
	}
	return op.interiorToLeft[id]
}

// CrossingsBetweenOperands returns how many proper crossings between
// segments of different operands the sweep has resolved so far.
func (op *Operation) CrossingsBetweenOperands() int {
	return op.crossings
}

// CrossingPoints returns the proper-crossing points recorded so far.
// Empty unless the operation was built with
// [geomopts.WithIntersectionCollection].
func (op *Operation) CrossingPoints() []point.Point {
	return op.crossPoints
}

func (op *Operation) setInteriorToLeft(segmentID int, itl bool) {
	for len(op.interiorToLeft) <= segmentID {
		op.interiorToLeft = append(op.interiorToLeft, false)
	}
	op.interiorToLeft[segmentID] = itl
}

// Endpoints returns the current (possibly split) start and end points of
// the segment piece e belongs to.
func (op *Operation) Endpoints(e event.Handle) (start, end point.Point) {
	left := op.Store.Left(e)
	return op.Store.Endpoint(left), op.Store.Endpoint(op.Store.Opposite(left))
}

func (op *Operation) label(left event.Handle) Labels {
	if int(left) >= len(op.labels) {
		return Labels{}
	}
	return op.labels[left]
}

func (op *Operation) setLabel(left event.Handle, l Labels) {
	idx := int(left)
	if idx >= len(op.labels) {
		grown := make([]Labels, idx+1)
		copy(grown, op.labels)
		op.labels = grown
	}
	op.labels[idx] = l
}

func (op *Operation) markCommon(a, b event.Handle) {
	same := op.InteriorToLeft(a) == op.InteriorToLeft(b)

	la := op.label(a)
	la.Common = true
	la.SameTransition = same
	op.setLabel(a, la)

	lb := op.label(b)
	lb.Common = true
	lb.SameTransition = same
	op.setLabel(b, lb)
}

// computeLabel derives InsideOther for a freshly inserted left event
// from its below neighbour: a same-operand neighbour passes its own
// answer up unchanged, unless it is a common piece, in which case it
// also bounds the other operand and the strip above it is inside the
// other operand exactly when both operands' interiors lie on the same
// side of it and that side is above; an other-operand neighbour answers
// directly — the strip between the two segments is inside the other
// operand exactly when that operand's interior lies above (to the left
// of) the neighbour's edge.
func (op *Operation) computeLabel(e event.Handle, below event.Handle, hasBelow bool) {
	cur := op.label(e)
	if !hasBelow {
		cur.InsideOther = false
	} else {
		sameOperand := op.Store.IsFromFirstOperand(below) == op.Store.IsFromFirstOperand(e)
		if sameOperand && op.label(below).Common {
			cur.InsideOther = op.InteriorToLeft(below) == op.SameTransition(below)
		} else if sameOperand {
			cur.InsideOther = op.label(below).InsideOther
		} else {
			cur.InsideOther = op.InteriorToLeft(below)
		}
	}
	op.setLabel(e, cur)
}

// divide splits left event e at pt (strictly interior to its segment)
// and pushes the two freshly created events back onto the queue.
func (op *Operation) divide(e event.Handle, pt point.Point) (leftPart, rightPart event.Handle) {
	leftPart, rightPart = op.Store.Divide(e, pt)
	trace.Tracef("divide event %d at %s -> left=%d right=%d", e, pt, leftPart, rightPart)
	op.Queue.Push(op.Store.Opposite(leftPart))
	op.Queue.Push(rightPart)
	return
}

// detectIntersection runs the orientation-grid dispatch between two
// status-adjacent left events: proper crossings split both segments at
// the intersection point, T-junctions split the host at the touching
// endpoint, and collinear overlaps fall through to handleOverlap.
func (op *Operation) detectIntersection(a, b event.Handle) {
	sa, ea := op.Endpoints(a)
	sb, eb := op.Endpoints(b)

	o1 := predicate.Orient(sa, ea, sb)
	o2 := predicate.Orient(sa, ea, eb)
	o3 := predicate.Orient(sb, eb, sa)
	o4 := predicate.Orient(sb, eb, ea)

	if o1 == geomkernel.Collinear && o2 == geomkernel.Collinear && o3 == geomkernel.Collinear && o4 == geomkernel.Collinear {
		op.handleOverlap(a, b, sa, ea, sb, eb)
		return
	}

	handledT := false
	if o1 == geomkernel.Collinear && predicate.StrictlyBetween(sa, sb, ea) {
		op.divide(a, sb)
		handledT = true
	}
	if o2 == geomkernel.Collinear && predicate.StrictlyBetween(sa, eb, ea) {
		op.divide(a, eb)
		handledT = true
	}
	if o3 == geomkernel.Collinear && predicate.StrictlyBetween(sb, sa, eb) {
		op.divide(b, sa)
		handledT = true
	}
	if o4 == geomkernel.Collinear && predicate.StrictlyBetween(sb, ea, eb) {
		op.divide(b, ea)
		handledT = true
	}
	if handledT {
		return
	}

	properCrossing := o1 != geomkernel.Collinear && o2 != geomkernel.Collinear && o1 != o2 &&
		o3 != geomkernel.Collinear && o4 != geomkernel.Collinear && o3 != o4
	if !properCrossing {
		return
	}

	pt, ok := predicate.Intersect(sa, ea, sb, eb)
	if !ok {
		return
	}
	if op.Store.IsFromFirstOperand(a) != op.Store.IsFromFirstOperand(b) {
		op.crossings++
		if op.collectCross {
			op.crossPoints = append(op.crossPoints, pt)
		}
	}
	op.divide(a, pt)
	op.divide(b, pt)
}

// handleOverlap resolves the four collinear-overlap sub-cases:
// equal-start, equal-end, strict containment, and strict overlap.
// Same-operand collinear overlap is a caller precondition violation;
// detecting it here, after ingestion, is an internal invariant breach,
// not a recoverable error.
func (op *Operation) handleOverlap(a, b event.Handle, sa, ea, sb, eb point.Point) {
	if op.Store.IsFromFirstOperand(a) == op.Store.IsFromFirstOperand(b) {
		panic(geomkernel.ErrSameOperandOverlap)
	}

	switch {
	case sa.Eq(sb) && ea.Eq(eb):
		op.markCommon(a, b)

	case sa.Eq(sb):
		if ea.Less(eb) {
			op.divide(b, ea)
		} else {
			op.divide(a, eb)
		}
		op.markCommon(a, b)

	case ea.Eq(eb):
		if sa.Less(sb) {
			op.divide(a, sb)
		} else {
			op.divide(b, sa)
		}
		op.markCommon(a, b)

	case sa.Less(sb) && eb.Less(ea):
		// b strictly contained in a: split a at both of b's endpoints.
		_, rightOfA := op.divide(a, sb)
		rightOfA, _ = op.divide(rightOfA, eb)
		op.markCommon(rightOfA, b)

	case sb.Less(sa) && ea.Less(eb):
		// a strictly contained in b: split b at both of a's endpoints.
		_, rightOfB := op.divide(b, sa)
		rightOfB, _ = op.divide(rightOfB, ea)
		op.markCommon(a, rightOfB)

	case sa.Less(sb) && sb.Less(ea) && ea.Less(eb):
		// partial overlap, a starts first: a=[sa,ea), b=[sb,eb), sa<sb<ea<eb.
		_, rightOfA := op.divide(a, sb)
		op.markCommon(rightOfA, b)
		op.divide(b, ea)

	case sb.Less(sa) && sa.Less(eb) && eb.Less(ea):
		// partial overlap, b starts first.
		_, rightOfB := op.divide(b, sa)
		op.markCommon(a, rightOfB)
		op.divide(a, eb)

	default:
		panic(fmt.Errorf("sweep: unhandled collinear overlap between (%s,%s) and (%s,%s)", sa, ea, sb, eb))
	}
}
