package sweepstatus

import (
	"testing"

	"github.com/havralex/planekernel/event"
	"github.com/havralex/planekernel/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_NeighborsOrdersByVerticalPosition(t *testing.T) {
	store := event.NewStore()
	s := New(store)

	// Three parallel horizontal segments stacked bottom to top.
	bottomLeft, _ := store.AppendSegment(point.FromInt64(0, 0), point.FromInt64(1, 0), true)
	midLeft, _ := store.AppendSegment(point.FromInt64(0, 1), point.FromInt64(1, 1), true)
	topLeft, _ := store.AppendSegment(point.FromInt64(0, 2), point.FromInt64(1, 2), true)

	s.Insert(bottomLeft)
	s.Insert(midLeft)
	s.Insert(topLeft)

	below, hasBelow, above, hasAbove := s.Neighbors(midLeft)
	require.True(t, hasBelow)
	require.True(t, hasAbove)
	assert.Equal(t, bottomLeft, below)
	assert.Equal(t, topLeft, above)

	_, hasBelow, _, hasAbove = s.Neighbors(bottomLeft)
	assert.False(t, hasBelow)
	assert.True(t, hasAbove)

	_, hasBelow, _, hasAbove = s.Neighbors(topLeft)
	assert.True(t, hasBelow)
	assert.False(t, hasAbove)
}

func TestStatus_RemoveThenContains(t *testing.T) {
	store := event.NewStore()
	s := New(store)

	left, _ := store.AppendSegment(point.FromInt64(0, 0), point.FromInt64(1, 0), true)
	s.Insert(left)
	assert.True(t, s.Contains(left))

	s.Remove(left)
	assert.False(t, s.Contains(left))
}
