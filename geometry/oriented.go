package geometry

import (
	"fmt"

	"github.com/havralex/planekernel/geomkernel"
	"github.com/havralex/planekernel/point"
)

// OrientedSegment is a directed edge annotated with which side of the
// a->b walk its region's interior lies on. For linear geometries the
// flag is meaningless and left false; the sweep's labelling only reads
// it off edges belonging to a region operand.
type OrientedSegment struct {
	Start, End     point.Point
	InteriorToLeft bool
}

// OrientedSegmentsOf flattens any geometry into the directed,
// interior-annotated edge stream the sweep driver ingests. Region
// contours are canonicalised first — borders counterclockwise, holes
// clockwise — so that the interior of the region always lies to the
// left of the walk; this is what makes the engine indifferent to the
// winding direction a caller happened to supply.
func OrientedSegmentsOf(g Geometry) []OrientedSegment {
	switch v := g.(type) {
	case Empty:
		return nil
	case Segment:
		return []OrientedSegment{{Start: v.start, End: v.end}}
	case Multisegment:
		out := make([]OrientedSegment, 0, len(v.segments))
		for _, s := range v.segments {
			out = append(out, OrientedSegment{Start: s.start, End: s.end})
		}
		return out
	case Contour:
		segs := v.Segments()
		out := make([]OrientedSegment, 0, len(segs))
		for _, s := range segs {
			out = append(out, OrientedSegment{Start: s.start, End: s.end})
		}
		return out
	case Polygon:
		return orientedPolygonEdges(v)
	case Multipolygon:
		var out []OrientedSegment
		for _, p := range v.polygons {
			out = append(out, orientedPolygonEdges(p)...)
		}
		return out
	default:
		panic(fmt.Errorf("geometry: unsupported geometry %T", g))
	}
}

func orientedPolygonEdges(p Polygon) []OrientedSegment {
	out := orientedContourEdges(p.border, geomkernel.CounterClockwise)
	for _, h := range p.holes {
		out = append(out, orientedContourEdges(h, geomkernel.Clockwise)...)
	}
	return out
}

// orientedContourEdges walks c in the given canonical winding direction
// and emits each edge with InteriorToLeft set: a counterclockwise
// border and a clockwise hole both keep the polygon's interior on the
// left of the walk.
func orientedContourEdges(c Contour, want geomkernel.Orientation) []OrientedSegment {
	vs := c.vertices
	n := len(vs)
	out := make([]OrientedSegment, 0, n)
	forward := c.Orientation() == want
	for i := 0; i < n; i++ {
		a, b := vs[i], vs[(i+1)%n]
		if !forward {
			a, b = b, a
		}
		out = append(out, OrientedSegment{Start: a, End: b, InteriorToLeft: true})
	}
	return out
}
