package sweep

import (
	"testing"

	"github.com/havralex/planekernel/event"
	"github.com/havralex/planekernel/geometry"
	"github.com/havralex/planekernel/geomopts"
	"github.com/havralex/planekernel/point"
	"github.com/havralex/planekernel/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runToCompletion(op *Operation) []event.Handle {
	var lefts []event.Handle
	op.Run(func(e event.Handle) bool {
		if op.Store.IsLeft(e) {
			lefts = append(lefts, e)
		}
		return true
	})
	return lefts
}

func TestOperation_ProperCrossingSplitsBothSegments(t *testing.T) {
	op := New(geomopts.WithIntersectionCollection())
	op.AddSegment(point.FromInt64(0, 0), point.FromInt64(2, 2), true)
	op.AddSegment(point.FromInt64(0, 2), point.FromInt64(2, 0), false)

	lefts := runToCompletion(op)

	// Each original segment is divided once at (1, 1): two extra handle
	// pairs on top of the four ingested ones.
	assert.Equal(t, 8, op.Store.Len())
	assert.Len(t, lefts, 4, "four left events: two pieces per input segment")
	assert.Equal(t, 1, op.CrossingsBetweenOperands())

	require.Len(t, op.CrossingPoints(), 1)
	assert.True(t, op.CrossingPoints()[0].Eq(point.FromInt64(1, 1)))

	crossing := point.FromInt64(1, 1)
	var touching int
	for _, e := range lefts {
		start, end := op.Endpoints(e)
		if start.Eq(crossing) || end.Eq(crossing) {
			touching++
		}
	}
	assert.Equal(t, 4, touching, "every piece has an endpoint at the crossing")

	op.Store.CheckInvariants()
}

func TestOperation_CollinearOverlapMarksCommonPieces(t *testing.T) {
	op := New()
	op.AddSegment(point.FromInt64(0, 0), point.FromInt64(3, 0), true)
	op.AddSegment(point.FromInt64(1, 0), point.FromInt64(2, 0), false)

	lefts := runToCompletion(op)

	var common int
	for _, e := range lefts {
		if op.IsCommonPolylineComponent(e) {
			common++
			start, end := op.Endpoints(e)
			assert.True(t, start.Eq(point.FromInt64(1, 0)), "common piece starts at overlap start, got %s", start)
			assert.True(t, end.Eq(point.FromInt64(2, 0)), "common piece ends at overlap end, got %s", end)
		}
	}
	assert.Equal(t, 2, common, "one coincident piece per operand")
}

func TestOperation_SameOperandOverlapPanics(t *testing.T) {
	op := New()
	op.AddSegment(point.FromInt64(0, 0), point.FromInt64(3, 0), true)
	op.AddSegment(point.FromInt64(1, 0), point.FromInt64(2, 0), true)

	assert.Panics(t, func() { runToCompletion(op) })
}

func TestOperation_InsideLabelAgainstRegionOperand(t *testing.T) {
	op := New()

	square, err := squareRegion(0, 0, 4)
	require.NoError(t, err)
	op.AddOperand(geometry.OrientedSegmentsOf(square), false)

	// One segment strictly inside the square, one strictly above it.
	op.AddSegment(point.FromInt64(1, 1), point.FromInt64(3, 1), true)
	op.AddSegment(point.FromInt64(1, 5), point.FromInt64(3, 5), true)

	lefts := runToCompletion(op)

	var inside, outside int
	for _, e := range lefts {
		if !op.Store.IsFromFirstOperand(e) {
			continue
		}
		start, _ := op.Endpoints(e)
		if op.IsInside(e) {
			inside++
			assert.True(t, start.Y().Eq(scalar.FromInt64(1)), "only the low segment is inside")
		} else {
			outside++
		}
	}
	assert.Equal(t, 1, inside)
	assert.Equal(t, 1, outside)
}

func TestOperation_ReversedContourYieldsSameLabels(t *testing.T) {
	for _, reversed := range []bool{false, true} {
		op := New()

		vertices := []point.Point{
			point.FromInt64(0, 0), point.FromInt64(4, 0),
			point.FromInt64(4, 4), point.FromInt64(0, 4),
		}
		if reversed {
			for i, j := 0, len(vertices)-1; i < j; i, j = i+1, j-1 {
				vertices[i], vertices[j] = vertices[j], vertices[i]
			}
		}
		border, err := geometry.NewContour(vertices)
		require.NoError(t, err)
		square, err := geometry.NewPolygon(border, nil)
		require.NoError(t, err)
		op.AddOperand(geometry.OrientedSegmentsOf(square), false)
		op.AddSegment(point.FromInt64(1, 1), point.FromInt64(3, 1), true)

		for _, e := range runToCompletion(op) {
			if op.Store.IsFromFirstOperand(e) {
				assert.True(t, op.IsInside(e), "inside label must not depend on winding (reversed=%t)", reversed)
			}
		}
	}
}

func TestOperation_RunBoundedStopsAtWindowEdge(t *testing.T) {
	op := New()
	op.AddSegment(point.FromInt64(0, 0), point.FromInt64(1, 0), true)
	op.AddSegment(point.FromInt64(5, 0), point.FromInt64(6, 0), false)

	var seen int
	op.RunBounded(scalar.FromInt64(2), func(event.Handle) bool {
		seen++
		return true
	})
	assert.Equal(t, 2, seen, "only the first segment's two events fall inside the window")
	assert.Equal(t, 2, op.Queue.Len(), "the out-of-window events stay queued")
}

func squareRegion(x, y, side int64) (geometry.Polygon, error) {
	border, err := geometry.NewContour([]point.Point{
		point.FromInt64(x, y),
		point.FromInt64(x+side, y),
		point.FromInt64(x+side, y+side),
		point.FromInt64(x, y+side),
	})
	if err != nil {
		return geometry.Polygon{}, err
	}
	return geometry.NewPolygon(border, nil)
}
