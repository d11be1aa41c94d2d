// Package sweepqueue implements the events priority queue the operation
// driver pops from: a min-priority queue of event handles ordered by a
// lexicographic key over the event's point, its left/right kind, and a
// collinearity tie-break against its opposite event's far endpoint.
//
// The queue is backed by [github.com/google/btree]: BTreeG gives
// ReplaceOrInsert and an ordered Min/DeleteMin, exactly what a priority
// queue needs without hand-rolling a heap.
package sweepqueue

import (
	"github.com/google/btree"
	"github.com/havralex/planekernel/event"
	"github.com/havralex/planekernel/geomkernel"
	"github.com/havralex/planekernel/predicate"
)

// degree is the btree.NewG fanout.
const degree = 32

// Queue is a min-priority queue of event handles.
type Queue struct {
	store *event.Store
	tree  *btree.BTreeG[event.Handle]
}

// New returns an empty queue whose ordering is computed against store.
// store must outlive the queue; the event store only ever grows, so
// queued handles never dangle.
func New(store *event.Store) *Queue {
	return &Queue{
		store: store,
		tree:  btree.NewG(degree, func(a, b event.Handle) bool { return less(store, a, b) }),
	}
}

// Push inserts e into the queue.
func (q *Queue) Push(e event.Handle) {
	q.tree.ReplaceOrInsert(e)
}

// Pop removes and returns the minimum event in the queue. ok is false if
// the queue is empty.
func (q *Queue) Pop() (e event.Handle, ok bool) {
	min, found := q.tree.DeleteMin()
	return min, found
}

// Peek returns the minimum event without removing it.
func (q *Queue) Peek() (e event.Handle, ok bool) {
	return q.tree.Min()
}

// Len returns the number of events currently queued.
func (q *Queue) Len() int {
	return q.tree.Len()
}

// less implements the queue's strict-less order: event start, then
// endpoint kind (right before left at the same point), then the
// orientation tie-break between the opposites' far endpoints. Residual
// ties (two distinct handles at the same point, same kind, collinear
// opposites from the same operand) are broken by segment id and finally
// by the raw handle value, so the backing btree — which treats any two
// items that compare neither-less as equal and would otherwise silently
// coalesce them — always sees a strict total order.
func less(store *event.Store, a, b event.Handle) bool {
	if a == b {
		return false
	}

	pa, pb := store.Endpoint(a), store.Endpoint(b)
	if cmp := pa.X().Cmp(pb.X()); cmp != 0 {
		return cmp < 0
	}
	if cmp := pa.Y().Cmp(pb.Y()); cmp != 0 {
		return cmp < 0
	}

	aLeft, bLeft := store.IsLeft(a), store.IsLeft(b)
	if aLeft != bLeft {
		// Right endpoint before left endpoint when one is left and the
		// other right at the same point.
		return !aLeft
	}

	// Same point, same left/right kind: compare the orientation of the
	// other event's far endpoint against this event's own segment.
	farA := store.Endpoint(store.Opposite(a))
	farB := store.Endpoint(store.Opposite(b))
	orient := predicate.Orient(pa, farA, farB)

	if orient == geomkernel.Collinear {
		aFirst, bFirst := store.IsFromFirstOperand(a), store.IsFromFirstOperand(b)
		if aFirst != bFirst {
			// The event from the first operand loses the tie (processed
			// later): a < b exactly when b, not a, is first-operand.
			return bFirst
		}
		if store.SegmentID(a) != store.SegmentID(b) {
			return store.SegmentID(a) < store.SegmentID(b)
		}
		return a < b
	}

	if aLeft {
		return orient == geomkernel.CounterClockwise
	}
	return orient == geomkernel.Clockwise
}
