// Package event implements the append-only event store the sweep engine
// is built on: every segment endpoint the operation driver
// ever sees is an integer handle indexing parallel arrays of points,
// opposite-event links, and operand identity.
//
// # Handle convention
//
// A [Handle] is a non-negative int. Even handles are left events (the
// endpoint of a segment piece that sorts first in sweep order); odd
// handles are right events. [Store.Opposite] gives the other endpoint of
// the same segment piece. Handles and their endpoints are appended on
// ingestion ([Store.AppendSegment]) and on intersection splitting
// ([Store.Divide]); nothing is ever freed.
package event

import (
	"fmt"

	"github.com/havralex/planekernel/point"
)

// Handle is an event handle: a non-negative integer index into a Store's
// parallel arrays.
type Handle int

// Store holds the growing parallel arrays backing every event handle
// produced during one operation. A Store is not safe for concurrent use
// by multiple goroutines; each operation owns its store exclusively.
type Store struct {
	endpoints    []point.Point
	opposites    []Handle
	firstOperand []bool
	segmentIDs   []int
	nextSegment  int
}

// NewStore returns an empty event store.
func NewStore() *Store {
	return &Store{}
}

// NewStoreWithCapacity returns an empty store whose backing arrays are
// pre-sized for n input segments (2n initial handles), so ingestion of a
// known-size input never reallocates.
func NewStoreWithCapacity(n int) *Store {
	return &Store{
		endpoints:    make([]point.Point, 0, 2*n),
		opposites:    make([]Handle, 0, 2*n),
		firstOperand: make([]bool, 0, 2*n),
		segmentIDs:   make([]int, 0, 2*n),
	}
}

// Len returns the number of event handles currently allocated.
func (s *Store) Len() int {
	return len(s.endpoints)
}

// AppendSegment ingests one segment, normalising its endpoints so the
// lexicographically smaller one becomes the left event, and returns the
// (left, right) handle pair. fromFirstOperand tags which operand the
// segment belongs to for Boolean/relation bookkeeping.
//
// A zero-length segment is rejected at ingestion rather than silently
// accepted.
func (s *Store) AppendSegment(a, b point.Point, fromFirstOperand bool) (left, right Handle) {
	if a.Eq(b) {
		panic(fmt.Errorf("event: zero-length segment at %s", a))
	}
	start, end := a, b
	if end.Less(start) {
		start, end = end, start
	}

	left = Handle(len(s.endpoints))
	right = left + 1
	id := s.nextSegment
	s.nextSegment++

	s.endpoints = append(s.endpoints, start, end)
	s.opposites = append(s.opposites, right, left)
	s.firstOperand = append(s.firstOperand, fromFirstOperand, fromFirstOperand)
	s.segmentIDs = append(s.segmentIDs, id, id)
	return left, right
}

// Divide splits the segment piece represented by left event e at
// midpoint, which must lie strictly between e's endpoint and its
// opposite's endpoint. It returns (leftPart, rightPart): leftPart is the
// left event of the [start(e), midpoint] half (the handle e itself,
// reused unchanged), and rightPart is the left event of the
// [midpoint, end(e)] half (a freshly allocated handle).
//
// Two new handles are appended as one aligned pair so that the even/odd
// parity convention continues to hold for them regardless of which
// existing handles they end up paired with: the even one becomes the
// new left event of the right half (opposite the original right event),
// the odd one becomes the new right event of the left half (opposite e).
func (s *Store) Divide(e Handle, midpoint point.Point) (leftPart, rightPart Handle) {
	if !s.IsLeft(e) {
		panic(fmt.Errorf("event: Divide called on right event %d", e))
	}
	o := s.opposites[e]
	if !(s.endpoints[e].Less(midpoint) && midpoint.Less(s.endpoints[o])) {
		panic(fmt.Errorf("event: midpoint %s not strictly inside (%s, %s)", midpoint, s.endpoints[e], s.endpoints[o]))
	}

	base := Handle(len(s.endpoints))
	newLeft := base      // even: left event of the right half, opposite o
	newRight := base + 1 // odd: right event of the left half, opposite e

	s.endpoints = append(s.endpoints, midpoint, midpoint)
	s.opposites = append(s.opposites, o, e)
	s.firstOperand = append(s.firstOperand, s.firstOperand[o], s.firstOperand[e])
	s.segmentIDs = append(s.segmentIDs, s.segmentIDs[o], s.segmentIDs[e])

	s.opposites[e] = newRight
	s.opposites[o] = newLeft

	return e, newLeft
}

// IsLeft reports whether e is a left event (even handle).
func (s *Store) IsLeft(e Handle) bool {
	return e%2 == 0
}

// Opposite returns the handle of the other endpoint of the segment piece
// e belongs to.
func (s *Store) Opposite(e Handle) Handle {
	return s.opposites[e]
}

// Endpoint returns the point e represents.
func (s *Store) Endpoint(e Handle) point.Point {
	return s.endpoints[e]
}

// Left returns the left-event handle of the pair e belongs to.
func (s *Store) Left(e Handle) Handle {
	if s.IsLeft(e) {
		return e
	}
	return s.opposites[e]
}

// IsFromFirstOperand reports whether e's segment piece was tagged as
// belonging to the first operand at ingestion.
func (s *Store) IsFromFirstOperand(e Handle) bool {
	return s.firstOperand[e]
}

// SegmentID returns the stable identity of the original ingested segment
// e's piece descends from. Divided pieces inherit their parent's id, so
// two pieces with equal SegmentID values originated from the same input
// segment even after splitting.
func (s *Store) SegmentID(e Handle) int {
	return s.segmentIDs[e]
}

// CheckInvariants re-verifies the event-store invariants. It is a
// fatal programmer error (panics) if any invariant is violated; callers
// would normally only invoke this under test or with debug tracing
// enabled, since it is O(store size).
func (s *Store) CheckInvariants() {
	if len(s.endpoints) != len(s.opposites) || len(s.endpoints)%2 != 0 {
		panic(fmt.Errorf("event: store arrays misaligned: %d endpoints, %d opposites", len(s.endpoints), len(s.opposites)))
	}
	for e := Handle(0); int(e) < len(s.endpoints); e++ {
		o := s.opposites[e]
		if s.opposites[o] != e {
			panic(fmt.Errorf("event: opposite link asymmetric at handle %d", e))
		}
		if s.IsLeft(e) && !s.endpoints[e].Less(s.endpoints[o]) {
			panic(fmt.Errorf("event: left event %d endpoint %s not < opposite endpoint %s", e, s.endpoints[e], s.endpoints[o]))
		}
	}
}
