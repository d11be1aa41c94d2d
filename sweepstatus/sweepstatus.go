// Package sweepstatus implements the sweep status: the ordered set of
// currently active left-events, keyed by the below/above relation of
// their segments at the sweep line's current position.
//
// The status is backed by [github.com/emirpasic/gods]'s red-black tree:
// [gods/trees/redblacktree] gives iterator-based predecessor/successor
// lookups for free, and its comparator closes over the event
// [github.com/havralex/planekernel/event.Store] rather than a mutable
// sweep-x field, because the ordering compares two segments directly
// instead of against a scalar sweep position.
//
// [gods/trees/redblacktree]: https://github.com/emirpasic/gods
package sweepstatus

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/havralex/planekernel/event"
	"github.com/havralex/planekernel/geomkernel"
	"github.com/havralex/planekernel/predicate"
)

// Status is the ordered set of active left-events.
type Status struct {
	store *event.Store
	tree  *rbt.Tree
}

// New returns an empty status structure ordered against store.
func New(store *event.Store) *Status {
	return &Status{
		store: store,
		tree:  rbt.NewWith(comparator(store)),
	}
}

// Insert adds left event e to the status.
func (s *Status) Insert(e event.Handle) {
	s.tree.Put(e, nil)
}

// Remove removes left event e from the status.
func (s *Status) Remove(e event.Handle) {
	s.tree.Remove(e)
}

// Contains reports whether e is currently in the status.
func (s *Status) Contains(e event.Handle) bool {
	_, found := s.tree.Get(e)
	return found
}

// Len returns the number of left-events currently active.
func (s *Status) Len() int {
	return s.tree.Size()
}

// Neighbors returns e's below and above neighbours in the status order.
// hasBelow/hasAbove are false when e is at the bottom/top of the
// status.
func (s *Status) Neighbors(e event.Handle) (below event.Handle, hasBelow bool, above event.Handle, hasAbove bool) {
	node := s.tree.GetNode(e)
	if node == nil {
		return
	}

	belowIter := s.tree.IteratorAt(node)
	if belowIter.Prev() {
		below = belowIter.Key().(event.Handle)
		hasBelow = true
	}

	aboveIter := s.tree.IteratorAt(node)
	if aboveIter.Next() {
		above = aboveIter.Key().(event.Handle)
		hasAbove = true
	}
	return
}

// comparator implements the below/above ordering between two left
// events' segments. A final handle fallback guarantees strict totality
// for fully coincident same-operand segments, which are a caller
// precondition violation but must not make the backing tree silently
// coalesce two live entries.
func comparator(store *event.Store) func(a, b interface{}) int {
	return func(x, y interface{}) int {
		a, b := x.(event.Handle), y.(event.Handle)
		if a == b {
			return 0
		}
		if less(store, a, b) {
			return -1
		}
		if less(store, b, a) {
			return 1
		}
		if a < b {
			return -1
		}
		return 1
	}
}

// less reports whether a's segment is below b's at the current sweep
// position, resolving the one-endpoint-collinear sub-cases explicitly.
func less(store *event.Store, a, b event.Handle) bool {
	sa, ea := store.Endpoint(a), store.Endpoint(store.Opposite(a))
	sb, eb := store.Endpoint(b), store.Endpoint(store.Opposite(b))

	o1 := predicate.Orient(sa, ea, sb)
	o2 := predicate.Orient(sa, ea, eb)
	if o1 == o2 {
		if o1 != geomkernel.Collinear {
			// b lies wholly on one side of a's line: CCW means b is on
			// a's left, i.e. above it (segments run left-to-right/upward
			// after normalisation), so a sorts below b.
			return o1 == geomkernel.CounterClockwise
		}

		// Same line: operand tag first, then position along the line.
		aFirst, bFirst := store.IsFromFirstOperand(a), store.IsFromFirstOperand(b)
		if aFirst != bFirst {
			return aFirst
		}
		if cmp := sa.Y().Cmp(sb.Y()); cmp != 0 {
			return cmp < 0
		}
		if cmp := sa.X().Cmp(sb.X()); cmp != 0 {
			return cmp < 0
		}
		if cmp := ea.Y().Cmp(eb.Y()); cmp != 0 {
			return cmp < 0
		}
		return ea.X().Cmp(eb.X()) < 0
	}

	o3 := predicate.Orient(sb, eb, sa)
	o4 := predicate.Orient(sb, eb, ea)
	if o3 == o4 {
		return o3 == geomkernel.Clockwise
	}
	if o1 == geomkernel.Collinear {
		return o2 == geomkernel.CounterClockwise
	}
	if o3 == geomkernel.Collinear {
		return o4 == geomkernel.Clockwise
	}
	if o4 == geomkernel.Collinear {
		return o3 == geomkernel.Clockwise
	}
	return o1 == geomkernel.CounterClockwise
}
