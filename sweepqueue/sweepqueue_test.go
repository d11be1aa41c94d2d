package sweepqueue

import (
	"testing"

	"github.com/havralex/planekernel/event"
	"github.com/havralex/planekernel/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_PopsInLexicographicOrder(t *testing.T) {
	store := event.NewStore()
	q := New(store)

	// Two disjoint horizontal segments; left events should pop in
	// ascending (x, y) order.
	l1, r1 := store.AppendSegment(point.FromInt64(0, 0), point.FromInt64(1, 0), true)
	l2, r2 := store.AppendSegment(point.FromInt64(2, 0), point.FromInt64(3, 0), true)

	for _, e := range []event.Handle{l1, r1, l2, r2} {
		q.Push(e)
	}

	require.Equal(t, 4, q.Len())

	first, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, l1, first)

	second, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, r1, second)

	third, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, l2, third)

	fourth, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, r2, fourth)

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestQueue_RightBeforeLeftAtSamePoint(t *testing.T) {
	store := event.NewStore()
	q := New(store)

	// Segment A ends where segment B starts: (0,0)-(1,1) and (1,1)-(2,2).
	_, rA := store.AppendSegment(point.FromInt64(0, 0), point.FromInt64(1, 1), true)
	lB, _ := store.AppendSegment(point.FromInt64(1, 1), point.FromInt64(2, 2), true)

	q.Push(rA)
	q.Push(lB)

	first, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, rA, first, "the right event at a shared point pops before the left event")
}
