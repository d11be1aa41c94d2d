// Command geomkernelctl exercises the kernel from the command line:
// Boolean operations and relation classification over simple integer
// polygons supplied as JSON, and Delaunay triangulation over randomly
// generated point sets. Results are printed to stdout as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/havralex/planekernel/boolop"
	"github.com/havralex/planekernel/delaunay"
	"github.com/havralex/planekernel/geometry"
	"github.com/havralex/planekernel/geomopts"
	"github.com/havralex/planekernel/point"
	"github.com/havralex/planekernel/relate"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:        "geomkernelctl",
		Usage:       "Runs exact Boolean operations, relation queries, and Delaunay triangulations, printing JSON to stdout",
		HideVersion: true,
		Commands: []*cli.Command{
			booleanCommand(),
			relateCommand(),
			triangulateCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func polygonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "first",
			Usage:    "First polygon as a JSON array of [x, y] integer vertex pairs",
			Aliases:  []string{"a"},
			Required: true,
			OnlyOnce: true,
		},
		&cli.StringFlag{
			Name:     "second",
			Usage:    "Second polygon as a JSON array of [x, y] integer vertex pairs",
			Aliases:  []string{"b"},
			Required: true,
			OnlyOnce: true,
		},
	}
}

func booleanCommand() *cli.Command {
	return &cli.Command{
		Name:      "boolean",
		Usage:     "Computes a Boolean set operation between two polygons",
		UsageText: "geomkernelctl boolean --op <union|intersection|difference|xor> --first <json> --second <json>",
		Flags: append(polygonFlags(),
			&cli.StringFlag{
				Name:     "op",
				Usage:    "Operation to run: union, intersection, difference, or xor",
				Value:    "union",
				OnlyOnce: true,
				Validator: func(s string) error {
					switch s {
					case "union", "intersection", "difference", "xor":
						return nil
					}
					return fmt.Errorf("unknown operation %q", s)
				},
			},
		),
		Action: runBoolean,
	}
}

func runBoolean(_ context.Context, cmd *cli.Command) error {
	first, err := parsePolygon(cmd.String("first"))
	if err != nil {
		return fmt.Errorf("parsing --first: %w", err)
	}
	second, err := parsePolygon(cmd.String("second"))
	if err != nil {
		return fmt.Errorf("parsing --second: %w", err)
	}

	var result geometry.Geometry
	switch cmd.String("op") {
	case "union":
		result, err = boolop.Unite(first, second)
	case "intersection":
		result, err = boolop.Intersect(first, second)
	case "difference":
		result, err = boolop.Subtract(first, second)
	case "xor":
		result, err = boolop.SymmetricSubtract(first, second)
	}
	if err != nil {
		return err
	}
	return printJSON(geometryToJSON(result))
}

func relateCommand() *cli.Command {
	return &cli.Command{
		Name:      "relate",
		Usage:     "Classifies the topological relation between two polygons",
		UsageText: "geomkernelctl relate --first <json> --second <json>",
		Flags:     polygonFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			first, err := parsePolygon(cmd.String("first"))
			if err != nil {
				return fmt.Errorf("parsing --first: %w", err)
			}
			second, err := parsePolygon(cmd.String("second"))
			if err != nil {
				return fmt.Errorf("parsing --second: %w", err)
			}
			relation := relate.Relate(first, second, geomopts.WithIntersectionCollection())
			return printJSON(map[string]string{
				"relation":   relation.String(),
				"complement": relation.Complement().String(),
			})
		},
	}
}

func triangulateCommand() *cli.Command {
	return &cli.Command{
		Name:      "triangulate",
		Usage:     "Builds the Delaunay triangulation of random integer points",
		UsageText: "geomkernelctl triangulate --number <value> --maxx <value> --minx <value> --maxy <value> --miny <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of points to generate",
				Value:    10,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u < 2 {
						return fmt.Errorf("number must be at least two")
					}
					return nil
				},
			},
			&cli.IntFlag{Name: "maxx", Usage: "The maximum X value of the plane", OnlyOnce: true, Value: 10},
			&cli.IntFlag{Name: "minx", Usage: "The minimum X value of the plane", OnlyOnce: true, Value: 0},
			&cli.IntFlag{Name: "maxy", Usage: "The maximum Y value of the plane", OnlyOnce: true, Value: 10},
			&cli.IntFlag{Name: "miny", Usage: "The minimum Y value of the plane", OnlyOnce: true, Value: 0},
		},
		Action: runTriangulate,
	}
}

func runTriangulate(_ context.Context, cmd *cli.Command) error {
	minx, maxx := cmd.Int("minx"), cmd.Int("maxx")
	miny, maxy := cmd.Int("miny"), cmd.Int("maxy")
	if minx >= maxx {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if miny >= maxy {
		return fmt.Errorf("maxy must be greater than miny")
	}

	n := cmd.Int("number")
	points := make([]point.Point, n)
	for i := range points {
		points[i] = point.FromInt64(
			randomIntInRange(minx, maxx),
			randomIntInRange(miny, maxy),
		)
	}

	triangulation := delaunay.Build(points)
	triangles := triangulation.TrianglesVertices()
	out := struct {
		Boundary  []point.Point    `json:"boundary"`
		Triangles [][3]point.Point `json:"triangles"`
	}{
		Boundary:  triangulation.BoundaryPoints(),
		Triangles: triangles,
	}
	return printJSON(out)
}

func randomIntInRange(min, max int64) int64 {
	return min + rand.Int64N(max-min+1)
}

// parsePolygon decodes a JSON array of [x, y] integer pairs into a
// hole-free polygon.
func parsePolygon(raw string) (geometry.Polygon, error) {
	var pairs [][2]int64
	if err := json.Unmarshal([]byte(raw), &pairs); err != nil {
		return geometry.Polygon{}, err
	}
	vertices := make([]point.Point, len(pairs))
	for i, p := range pairs {
		vertices[i] = point.FromInt64(p[0], p[1])
	}
	border, err := geometry.NewContour(vertices)
	if err != nil {
		return geometry.Polygon{}, err
	}
	return geometry.NewPolygon(border, nil)
}

func geometryToJSON(g geometry.Geometry) any {
	switch v := g.(type) {
	case geometry.Empty:
		return map[string]any{"kind": "empty"}
	case geometry.Segment:
		return map[string]any{"kind": "segment", "start": v.Start(), "end": v.End()}
	case geometry.Multisegment:
		return map[string]any{"kind": "multisegment", "segments": v.Segments()}
	case geometry.Polygon:
		return polygonJSON(v)
	case geometry.Multipolygon:
		polys := make([]any, 0, len(v.Polygons()))
		for _, p := range v.Polygons() {
			polys = append(polys, polygonJSON(p))
		}
		return map[string]any{"kind": "multipolygon", "polygons": polys}
	default:
		return map[string]any{"kind": fmt.Sprintf("%T", g)}
	}
}

func polygonJSON(p geometry.Polygon) any {
	holes := make([][]point.Point, 0, len(p.Holes()))
	for _, h := range p.Holes() {
		holes = append(holes, h.Vertices())
	}
	return map[string]any{
		"kind":   "polygon",
		"border": p.Border().Vertices(),
		"holes":  holes,
	}
}

func printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
