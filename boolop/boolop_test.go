package boolop

import (
	"sort"
	"testing"

	"github.com/havralex/planekernel/geometry"
	"github.com/havralex/planekernel/point"
	"github.com/havralex/planekernel/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(t *testing.T, x, y, side int64) geometry.Polygon {
	t.Helper()
	border, err := geometry.NewContour([]point.Point{
		point.FromInt64(x, y),
		point.FromInt64(x+side, y),
		point.FromInt64(x+side, y+side),
		point.FromInt64(x, y+side),
	})
	require.NoError(t, err)
	p, err := geometry.NewPolygon(border, nil)
	require.NoError(t, err)
	return p
}

// areaDoubled returns twice the total area of a region geometry: border
// areas minus hole areas, summed over polygons.
func areaDoubled(t *testing.T, g geometry.Geometry) scalar.Rational {
	t.Helper()
	total := scalar.Zero()
	var polys []geometry.Polygon
	switch v := g.(type) {
	case geometry.Empty:
		return total
	case geometry.Polygon:
		polys = []geometry.Polygon{v}
	case geometry.Multipolygon:
		polys = v.Polygons()
	default:
		t.Fatalf("expected a region geometry, got %T", g)
	}
	for _, p := range polys {
		total = total.Add(p.Border().SignedAreaDoubled().Abs())
		for _, h := range p.Holes() {
			total = total.Sub(h.SignedAreaDoubled().Abs())
		}
	}
	return total
}

func vertexSet(t *testing.T, c geometry.Contour) []string {
	t.Helper()
	var out []string
	for _, v := range c.Vertices() {
		out = append(out, v.String())
	}
	sort.Strings(out)
	return out
}

func TestOverlappingSquares(t *testing.T) {
	a := square(t, 0, 0, 2)
	b := square(t, 1, 1, 2)

	intersection, err := Intersect(a, b)
	require.NoError(t, err)
	got, ok := intersection.(geometry.Polygon)
	require.True(t, ok, "expected a single polygon, got %T", intersection)
	assert.True(t, areaDoubled(t, got).Eq(scalar.FromInt64(2)), "intersection area is 1")
	assert.Equal(t,
		vertexSet(t, square(t, 1, 1, 1).Border()),
		vertexSet(t, got.Border()),
		"intersection is the unit square [(1,1),(2,1),(2,2),(1,2)]")
	assert.Empty(t, got.Holes())

	union, err := Unite(a, b)
	require.NoError(t, err)
	assert.True(t, areaDoubled(t, union).Eq(scalar.FromInt64(14)), "union is an L-shape of area 7, got %s", areaDoubled(t, union))

	difference, err := Subtract(a, b)
	require.NoError(t, err)
	assert.True(t, areaDoubled(t, difference).Eq(scalar.FromInt64(6)), "difference is an L-shape of area 3, got %s", areaDoubled(t, difference))

	xor, err := SymmetricSubtract(a, b)
	require.NoError(t, err)
	assert.True(t, areaDoubled(t, xor).Eq(scalar.FromInt64(12)), "symmetric difference has area 6, got %s", areaDoubled(t, xor))
}

func TestTouchingSquares(t *testing.T) {
	a := square(t, 0, 0, 1)
	b := square(t, 1, 0, 1)

	intersection, err := Intersect(a, b)
	require.NoError(t, err)
	assert.IsType(t, geometry.Empty{}, intersection, "touching squares share no area")

	union, err := Unite(a, b)
	require.NoError(t, err)
	got, ok := union.(geometry.Polygon)
	require.True(t, ok, "expected a single rectangle, got %T", union)
	assert.True(t, areaDoubled(t, got).Eq(scalar.FromInt64(4)))
	assert.Equal(t, []string{"(0, 0)", "(0, 1)", "(2, 0)", "(2, 1)"}, vertexSet(t, got.Border()),
		"the shared edge dissolves into the rectangle [(0,0),(2,0),(2,1),(0,1)]")
	assert.Empty(t, got.Holes())
}

func TestNestedSquares_DifferenceLeavesHole(t *testing.T) {
	outer := square(t, 0, 0, 4)
	inner := square(t, 1, 1, 2)

	difference, err := Subtract(outer, inner)
	require.NoError(t, err)
	got, ok := difference.(geometry.Polygon)
	require.True(t, ok, "expected one polygon with a hole, got %T", difference)

	require.Len(t, got.Holes(), 1)
	assert.Equal(t, vertexSet(t, outer.Border()), vertexSet(t, got.Border()))
	assert.Equal(t, vertexSet(t, inner.Border()), vertexSet(t, got.Holes()[0]))
	assert.True(t, areaDoubled(t, got).Eq(scalar.FromInt64(24)), "area 16 minus hole area 4")
}

func TestDisjointSquares(t *testing.T) {
	a := square(t, 0, 0, 1)
	b := square(t, 5, 5, 1)

	intersection, err := Intersect(a, b)
	require.NoError(t, err)
	assert.IsType(t, geometry.Empty{}, intersection)

	difference, err := Subtract(a, b)
	require.NoError(t, err)
	assert.True(t, areaDoubled(t, difference).Eq(scalar.FromInt64(2)), "subtracting a far-away square changes nothing")

	union, err := Unite(a, b)
	require.NoError(t, err)
	_, ok := union.(geometry.Multipolygon)
	assert.True(t, ok, "union of disjoint squares is a multipolygon, got %T", union)
	assert.True(t, areaDoubled(t, union).Eq(scalar.FromInt64(4)))
}

func TestEmptyOperandLaws(t *testing.T) {
	a := square(t, 0, 0, 2)

	union, err := Unite(a, geometry.Empty{})
	require.NoError(t, err)
	assert.Equal(t, geometry.Geometry(a), union, "Empty is the identity of union")

	intersection, err := Intersect(a, geometry.Empty{})
	require.NoError(t, err)
	assert.IsType(t, geometry.Empty{}, intersection, "Empty absorbs intersection")

	difference, err := Subtract(geometry.Empty{}, a)
	require.NoError(t, err)
	assert.IsType(t, geometry.Empty{}, difference)

	xor, err := SymmetricSubtract(geometry.Empty{}, a)
	require.NoError(t, err)
	assert.Equal(t, geometry.Geometry(a), xor)
}

func TestAlgebraicLaws(t *testing.T) {
	a := square(t, 0, 0, 2)
	b := square(t, 1, 1, 2)

	t.Run("idempotence", func(t *testing.T) {
		union, err := Unite(a, a)
		require.NoError(t, err)
		assert.True(t, areaDoubled(t, union).Eq(scalar.FromInt64(8)))

		intersection, err := Intersect(a, a)
		require.NoError(t, err)
		assert.True(t, areaDoubled(t, intersection).Eq(scalar.FromInt64(8)))
	})

	t.Run("commutativity", func(t *testing.T) {
		ab, err := Unite(a, b)
		require.NoError(t, err)
		ba, err := Unite(b, a)
		require.NoError(t, err)
		assert.True(t, areaDoubled(t, ab).Eq(areaDoubled(t, ba)))

		abI, err := Intersect(a, b)
		require.NoError(t, err)
		baI, err := Intersect(b, a)
		require.NoError(t, err)
		assert.Equal(t, vertexSet(t, abI.(geometry.Polygon).Border()), vertexSet(t, baI.(geometry.Polygon).Border()))
	})

	t.Run("symmetric difference via union minus intersection", func(t *testing.T) {
		union, err := Unite(a, b)
		require.NoError(t, err)
		intersection, err := Intersect(a, b)
		require.NoError(t, err)
		viaSubtract, err := Subtract(union, intersection)
		require.NoError(t, err)
		direct, err := SymmetricSubtract(a, b)
		require.NoError(t, err)
		assert.True(t, areaDoubled(t, viaSubtract).Eq(areaDoubled(t, direct)))
	})

	t.Run("absorption", func(t *testing.T) {
		intersection, err := Intersect(a, b)
		require.NoError(t, err)
		absorbed, err := Unite(a, intersection)
		require.NoError(t, err)
		assert.True(t, areaDoubled(t, absorbed).Eq(scalar.FromInt64(8)), "A united with A-intersect-B is A")
	})
}

func TestReversedWindingGivesSameResult(t *testing.T) {
	ccw := square(t, 0, 0, 2)

	cwBorder, err := geometry.NewContour([]point.Point{
		point.FromInt64(0, 2), point.FromInt64(2, 2), point.FromInt64(2, 0), point.FromInt64(0, 0),
	})
	require.NoError(t, err)
	cw, err := geometry.NewPolygon(cwBorder, nil)
	require.NoError(t, err)

	b := square(t, 1, 1, 2)
	fromCCW, err := Intersect(ccw, b)
	require.NoError(t, err)
	fromCW, err := Intersect(cw, b)
	require.NoError(t, err)
	assert.Equal(t,
		vertexSet(t, fromCCW.(geometry.Polygon).Border()),
		vertexSet(t, fromCW.(geometry.Polygon).Border()))
}

func TestLinearOperations(t *testing.T) {
	seg := func(x1, y1, x2, y2 int64) geometry.Segment {
		s, err := geometry.NewSegment(point.FromInt64(x1, y1), point.FromInt64(x2, y2))
		require.NoError(t, err)
		return s
	}

	t.Run("intersection of overlapping segments is the shared piece", func(t *testing.T) {
		got, err := Intersect(seg(0, 0, 3, 0), seg(1, 0, 5, 0))
		require.NoError(t, err)
		piece, ok := got.(geometry.Segment)
		require.True(t, ok, "expected a single segment, got %T", got)
		assert.True(t, piece.Start().Eq(point.FromInt64(1, 0)))
		assert.True(t, piece.End().Eq(point.FromInt64(3, 0)))
	})

	t.Run("difference removes the shared piece", func(t *testing.T) {
		got, err := Subtract(seg(0, 0, 3, 0), seg(1, 0, 5, 0))
		require.NoError(t, err)
		piece, ok := got.(geometry.Segment)
		require.True(t, ok, "expected a single segment, got %T", got)
		assert.True(t, piece.Start().Eq(point.FromInt64(0, 0)))
		assert.True(t, piece.End().Eq(point.FromInt64(1, 0)))
	})

	t.Run("union of crossing segments keeps all four pieces", func(t *testing.T) {
		got, err := Unite(seg(0, 0, 2, 2), seg(0, 2, 2, 0))
		require.NoError(t, err)
		multi, ok := got.(geometry.Multisegment)
		require.True(t, ok, "expected a multisegment, got %T", got)
		assert.Len(t, multi.Segments(), 4, "each input is split at (1,1)")
	})

	t.Run("clipping a segment by a region", func(t *testing.T) {
		got, err := Intersect(seg(-1, 1, 5, 1), square(t, 0, 0, 2))
		require.NoError(t, err)
		piece, ok := got.(geometry.Segment)
		require.True(t, ok, "expected a single segment, got %T", got)
		assert.True(t, piece.Start().Eq(point.FromInt64(0, 1)))
		assert.True(t, piece.End().Eq(point.FromInt64(2, 1)))
	})

	t.Run("union of mixed dimensions is rejected", func(t *testing.T) {
		_, err := Unite(seg(0, 0, 1, 1), square(t, 0, 0, 2))
		assert.ErrorIs(t, err, ErrMixedDimensions)
	})
}
