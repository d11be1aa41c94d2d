package boolop

import (
	"fmt"
	"sort"

	"github.com/havralex/planekernel/event"
	"github.com/havralex/planekernel/geomkernel"
	"github.com/havralex/planekernel/point"
	"github.com/havralex/planekernel/predicate"
	"github.com/havralex/planekernel/scalar"
)

// ReduceEventsToSegments keeps the processed left events satisfying the
// operation predicate, pairs each with its opposite to recover the
// segment piece's endpoints, deduplicates, and builds one value per
// surviving piece with the caller's constructor.
func ReduceEventsToSegments[S any](o *Operation, events []event.Handle, makeSegment func(start, end point.Point) S) []S {
	pieces := survivingPieces(o, events)
	out := make([]S, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, makeSegment(p[0], p[1]))
	}
	return out
}

// ReduceEventsToPolygons threads the surviving edges into closed
// contours with a winding walk, separates borders from holes by nesting
// depth, clusters each hole under its enclosing border, and builds the
// output polygons with the caller's constructors.
func ReduceEventsToPolygons[C, P any](
	o *Operation,
	events []event.Handle,
	makeContour func(vertices []point.Point) C,
	makePolygon func(border C, holes []C) P,
) []P {
	rings := assembleRings(survivingPieces(o, events))
	if len(rings) == 0 {
		return nil
	}

	// Nesting depth via a point-in-polygon test against a non-shared
	// interior sample point of each ring: even depth rings are borders,
	// odd depth rings are holes of the deepest border containing them.
	samples := make([]point.Point, len(rings))
	for i, r := range rings {
		samples[i] = point.New(
			scalar.Mid(r[0].X(), r[1].X()),
			scalar.Mid(r[0].Y(), r[1].Y()),
		)
	}
	depths := make([]int, len(rings))
	for i := range rings {
		for j, other := range rings {
			if i != j && predicate.InPolygon(samples[i], other) {
				depths[i]++
			}
		}
	}

	type polyAcc struct {
		border []point.Point
		holes  [][]point.Point
	}
	var polys []*polyAcc
	borderIndex := make(map[int]int)
	for i, r := range rings {
		if depths[i]%2 == 0 {
			borderIndex[i] = len(polys)
			polys = append(polys, &polyAcc{border: orientRing(r, geomkernel.CounterClockwise)})
		}
	}
	for i, r := range rings {
		if depths[i]%2 == 0 {
			continue
		}
		parent := -1
		for j := range rings {
			if j != i && depths[j] == depths[i]-1 && predicate.InPolygon(samples[i], rings[j]) {
				parent = j
				break
			}
		}
		if parent < 0 {
			panic(fmt.Errorf("boolop: hole ring with no enclosing border"))
		}
		acc := polys[borderIndex[parent]]
		acc.holes = append(acc.holes, orientRing(r, geomkernel.Clockwise))
	}

	out := make([]P, 0, len(polys))
	for _, acc := range polys {
		holes := make([]C, 0, len(acc.holes))
		for _, h := range acc.holes {
			holes = append(holes, makeContour(h))
		}
		out = append(out, makePolygon(makeContour(acc.border), holes))
	}
	return out
}

// survivingPieces filters events through the operation predicate and
// returns the deduplicated normalised endpoint pairs of the surviving
// segment pieces, sorted lexicographically for deterministic output.
func survivingPieces(o *Operation, events []event.Handle) [][2]point.Point {
	seen := make(map[string]bool)
	var pieces [][2]point.Point
	for _, e := range events {
		if !o.Sweep.Store.IsLeft(e) || !o.inResult(e) {
			continue
		}
		start, end := o.Sweep.Endpoints(e)
		key := start.String() + "|" + end.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		pieces = append(pieces, [2]point.Point{start, end})
	}
	sort.Slice(pieces, func(i, j int) bool {
		if !pieces[i][0].Eq(pieces[j][0]) {
			return pieces[i][0].Less(pieces[j][0])
		}
		return pieces[i][1].Less(pieces[j][1])
	})
	return pieces
}

// assembleRings walks the surviving edges into closed rings. Each
// endpoint of a well-formed result is shared by an even number of
// surviving edges — exactly two away from degenerate touch points.
//
// The walk traces the face on its right-hand side: it starts at the
// lexicographically smallest unused vertex along the steepest unused
// edge (so the ring's interior begins on the right) and, at every
// vertex, continues into the first unused edge counterclockwise from
// the reversed incoming direction. At a touch point shared by two rings
// this keeps each walk on its own face instead of jumping across.
func assembleRings(pieces [][2]point.Point) [][]point.Point {
	used := make([]bool, len(pieces))
	incident := make(map[string][]int)
	for i, p := range pieces {
		incident[p[0].String()] = append(incident[p[0].String()], i)
		incident[p[1].String()] = append(incident[p[1].String()], i)
	}

	var rings [][]point.Point
	for i := range pieces {
		if used[i] {
			continue
		}
		// pieces is sorted, so the first unused piece starts at the
		// lexicographically smallest unused vertex.
		start := pieces[i][0]
		first := pickSteepest(pieces, used, incident[start.String()], start)
		used[first] = true
		prev, cur := start, otherEndpoint(pieces[first], start)
		ring := []point.Point{prev}

		for !cur.Eq(start) {
			ring = append(ring, cur)
			next := pickNext(pieces, used, incident[cur.String()], prev, cur)
			if next < 0 {
				// Open chain: the inputs violated the well-formedness
				// precondition. Drop the fragment rather than emit a
				// non-closed contour.
				ring = nil
				break
			}
			used[next] = true
			prev = cur
			cur = otherEndpoint(pieces[next], cur)
		}
		if ring == nil {
			continue
		}
		if simplified := dropCollinear(ring); len(simplified) >= geomkernel.MinContourVerticesCount {
			rings = append(rings, canonicalRing(simplified))
		}
	}
	return rings
}

func otherEndpoint(piece [2]point.Point, p point.Point) point.Point {
	if piece[0].Eq(p) {
		return piece[1]
	}
	return piece[0]
}

// pickSteepest chooses the unused edge out of the ring's starting
// vertex whose direction is furthest counterclockwise from straight
// down. Every edge at a lexicographically minimal vertex points into
// the right half-plane or straight up, so the steepest one has the
// ring's interior on the walk's right-hand side.
func pickSteepest(pieces [][2]point.Point, used []bool, candidates []int, start point.Point) int {
	down := point.FromInt64(0, -1)
	best := -1
	var bestDir point.Point
	for _, c := range candidates {
		if used[c] {
			continue
		}
		dir := otherEndpoint(pieces[c], start).Sub(start)
		if best < 0 || angleCCWLess(down, bestDir, dir) {
			best = c
			bestDir = dir
		}
	}
	return best
}

// pickNext chooses the next unused edge out of cur: the first one
// counterclockwise from the reversed incoming direction, continuing the
// face on the walk's right.
func pickNext(pieces [][2]point.Point, used []bool, candidates []int, prev, cur point.Point) int {
	back := prev.Sub(cur)
	best := -1
	var bestDir point.Point
	for _, c := range candidates {
		if used[c] {
			continue
		}
		dir := otherEndpoint(pieces[c], cur).Sub(cur)
		if best < 0 || angleCCWLess(back, dir, bestDir) {
			best = c
			bestDir = dir
		}
	}
	return best
}

// angleCCWLess reports whether d1's counterclockwise angle from the
// reference direction ref is strictly smaller than d2's, using only
// exact sign tests. Directions equal to ref itself sort first, then the
// counterclockwise half-plane, the opposite direction, and the
// clockwise half-plane.
func angleCCWLess(ref, d1, d2 point.Point) bool {
	p1, p2 := anglePhase(ref, d1), anglePhase(ref, d2)
	if p1 != p2 {
		return p1 < p2
	}
	// Same open half-plane: the one reached first rotating
	// counterclockwise has positive cross product towards the other.
	return d1.CrossProduct(d2).Sign() > 0
}

func anglePhase(ref, d point.Point) int {
	cross := ref.CrossProduct(d).Sign()
	switch {
	case cross == 0 && ref.DotProduct(d).Sign() > 0:
		return 0
	case cross > 0:
		return 1
	case cross == 0:
		return 2
	default:
		return 3
	}
}

// dropCollinear removes vertices at which the ring does not turn, so
// split points introduced by the sweep along a straight result edge do
// not survive into the output contour.
func dropCollinear(ring []point.Point) []point.Point {
	n := len(ring)
	if n < 3 {
		return ring
	}
	out := make([]point.Point, 0, n)
	for i := 0; i < n; i++ {
		a := ring[(i+n-1)%n]
		b := ring[i]
		c := ring[(i+1)%n]
		if predicate.Orient(a, b, c) != geomkernel.Collinear {
			out = append(out, b)
		}
	}
	return out
}

// canonicalRing rotates the ring to start at its lexicographically
// minimal vertex, for deterministic output.
func canonicalRing(ring []point.Point) []point.Point {
	if len(ring) == 0 {
		return ring
	}
	min := 0
	for i, p := range ring {
		if p.Less(ring[min]) {
			min = i
		}
	}
	return append(append([]point.Point(nil), ring[min:]...), ring[:min]...)
}

// orientRing returns the ring wound in the requested direction: borders
// counterclockwise, holes clockwise. This is where the engine
// canonicalises orientation regardless of how the inputs were wound.
func orientRing(ring []point.Point, want geomkernel.Orientation) []point.Point {
	if ringOrientation(ring) == want {
		return ring
	}
	out := make([]point.Point, len(ring))
	out[0] = ring[0]
	for i := 1; i < len(ring); i++ {
		out[i] = ring[len(ring)-i]
	}
	return out
}

func ringOrientation(ring []point.Point) geomkernel.Orientation {
	sum := scalar.Zero()
	n := len(ring)
	for i := 0; i < n; i++ {
		sum = sum.Add(ring[i].CrossProduct(ring[(i+1)%n]))
	}
	switch sum.Sign() {
	case 1:
		return geomkernel.CounterClockwise
	case -1:
		return geomkernel.Clockwise
	default:
		return geomkernel.Collinear
	}
}
