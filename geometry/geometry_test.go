package geometry

import (
	"testing"

	"github.com/havralex/planekernel/geomkernel"
	"github.com/havralex/planekernel/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(t *testing.T, x, y, side int64) Polygon {
	t.Helper()
	border, err := NewContour([]point.Point{
		point.FromInt64(x, y),
		point.FromInt64(x+side, y),
		point.FromInt64(x+side, y+side),
		point.FromInt64(x, y+side),
	})
	require.NoError(t, err)
	p, err := NewPolygon(border, nil)
	require.NoError(t, err)
	return p
}

func TestNewSegment(t *testing.T) {
	s, err := NewSegment(point.FromInt64(2, 2), point.FromInt64(0, 0))
	require.NoError(t, err)
	assert.True(t, s.Start().Eq(point.FromInt64(0, 0)), "endpoints are normalised")
	assert.True(t, s.End().Eq(point.FromInt64(2, 2)))

	_, err = NewSegment(point.FromInt64(1, 1), point.FromInt64(1, 1))
	assert.ErrorIs(t, err, geomkernel.ErrZeroLengthSegment)
}

func TestNewContour(t *testing.T) {
	tests := map[string]struct {
		vertices []point.Point
		wantErr  error
	}{
		"triangle": {
			vertices: []point.Point{point.FromInt64(0, 0), point.FromInt64(1, 0), point.FromInt64(0, 1)},
		},
		"explicitly closed vertex list": {
			vertices: []point.Point{point.FromInt64(0, 0), point.FromInt64(1, 0), point.FromInt64(0, 1), point.FromInt64(0, 0)},
		},
		"too few vertices": {
			vertices: []point.Point{point.FromInt64(0, 0), point.FromInt64(1, 0)},
			wantErr:  geomkernel.ErrTooFewVertices,
		},
		"repeated consecutive vertex": {
			vertices: []point.Point{point.FromInt64(0, 0), point.FromInt64(0, 0), point.FromInt64(1, 0), point.FromInt64(0, 1)},
			wantErr:  geomkernel.ErrZeroLengthSegment,
		},
		"bowtie self-intersection": {
			vertices: []point.Point{point.FromInt64(0, 0), point.FromInt64(2, 2), point.FromInt64(2, 0), point.FromInt64(0, 2)},
			wantErr:  geomkernel.ErrSelfIntersecting,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := NewContour(tc.vertices)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, c.Vertices(), 3)
			assert.Len(t, c.Segments(), 3, "segments include the implicit closing edge")
		})
	}
}

func TestContour_Orientation(t *testing.T) {
	ccw, err := NewContour([]point.Point{point.FromInt64(0, 0), point.FromInt64(1, 0), point.FromInt64(0, 1)})
	require.NoError(t, err)
	assert.Equal(t, geomkernel.CounterClockwise, ccw.Orientation())

	cw, err := NewContour([]point.Point{point.FromInt64(0, 0), point.FromInt64(0, 1), point.FromInt64(1, 0)})
	require.NoError(t, err)
	assert.Equal(t, geomkernel.Clockwise, cw.Orientation())
}

func TestNewMultisegment_TooFewSegments(t *testing.T) {
	s, err := NewSegment(point.FromInt64(0, 0), point.FromInt64(1, 0))
	require.NoError(t, err)
	_, err = NewMultisegment([]Segment{s})
	assert.ErrorIs(t, err, geomkernel.ErrTooFewSegments)
}

func TestNewMultipolygon_TooFewPolygons(t *testing.T) {
	_, err := NewMultipolygon([]Polygon{square(t, 0, 0, 1)})
	assert.ErrorIs(t, err, geomkernel.ErrTooFewPolygons)
}

func TestDimensions(t *testing.T) {
	seg, err := NewSegment(point.FromInt64(0, 0), point.FromInt64(1, 0))
	require.NoError(t, err)

	assert.Equal(t, -1, Empty{}.Dimension())
	assert.Equal(t, 1, seg.Dimension())
	assert.Equal(t, 2, square(t, 0, 0, 1).Dimension())
}

func TestOrientedSegmentsOf_CanonicalisesWinding(t *testing.T) {
	// The same square wound both ways must produce the same oriented
	// edge set: interior to the left of every emitted direction.
	ccwBorder, err := NewContour([]point.Point{
		point.FromInt64(0, 0), point.FromInt64(2, 0), point.FromInt64(2, 2), point.FromInt64(0, 2),
	})
	require.NoError(t, err)
	cwBorder, err := NewContour([]point.Point{
		point.FromInt64(0, 2), point.FromInt64(2, 2), point.FromInt64(2, 0), point.FromInt64(0, 0),
	})
	require.NoError(t, err)

	ccwSquare, err := NewPolygon(ccwBorder, nil)
	require.NoError(t, err)
	cwSquare, err := NewPolygon(cwBorder, nil)
	require.NoError(t, err)

	toKeys := func(segs []OrientedSegment) map[string]bool {
		out := make(map[string]bool, len(segs))
		for _, s := range segs {
			require.True(t, s.InteriorToLeft)
			out[s.Start.String()+"->"+s.End.String()] = true
		}
		return out
	}

	assert.Equal(t, toKeys(OrientedSegmentsOf(ccwSquare)), toKeys(OrientedSegmentsOf(cwSquare)))
}

func TestOrientedSegmentsOf_HolesKeepInteriorLeft(t *testing.T) {
	border, err := NewContour([]point.Point{
		point.FromInt64(0, 0), point.FromInt64(4, 0), point.FromInt64(4, 4), point.FromInt64(0, 4),
	})
	require.NoError(t, err)
	hole, err := NewContour([]point.Point{
		point.FromInt64(1, 1), point.FromInt64(3, 1), point.FromInt64(3, 3), point.FromInt64(1, 3),
	})
	require.NoError(t, err)
	p, err := NewPolygon(border, []Contour{hole})
	require.NoError(t, err)

	segs := OrientedSegmentsOf(p)
	require.Len(t, segs, 8)

	// The hole's bottom edge must be walked right-to-left so the
	// polygon interior below it stays on the walk's left.
	var found bool
	for _, s := range segs {
		if s.Start.Eq(point.FromInt64(3, 1)) && s.End.Eq(point.FromInt64(1, 1)) {
			found = true
		}
	}
	assert.True(t, found, "hole bottom edge runs clockwise")
}
