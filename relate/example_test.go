package relate_test

import (
	"fmt"

	"github.com/havralex/planekernel/geometry"
	"github.com/havralex/planekernel/point"
	"github.com/havralex/planekernel/relate"
)

func ExampleRelate() {
	s1, _ := geometry.NewSegment(point.FromInt64(0, 0), point.FromInt64(2, 2))
	s2, _ := geometry.NewSegment(point.FromInt64(0, 2), point.FromInt64(2, 0))
	fmt.Println(relate.Relate(s1, s2))
	// Output: Cross
}
