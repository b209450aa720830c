package geom

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Atom is the only geometry the index and the sampler understand.
// The set of implementations is closed: Point, Segment and Polygon.
type Atom interface {
	Bound() BBox
	atom()
}

// Point is a single coordinate.
type Point struct {
	orb.Point
}

// Segment is a straight line between two coordinates.
type Segment struct {
	A, B orb.Point
}

// Polygon is a filled area; the first ring is the exterior, the rest are holes.
type Polygon struct {
	orb.Polygon
}

func (Point) atom()   {}
func (Segment) atom() {}
func (Polygon) atom() {}

// Bound returns the degenerate box at the point.
func (p Point) Bound() BBox { return PointBox(p.Point) }

// Bound returns the box spanned by the two endpoints.
func (s Segment) Bound() BBox { return PointBox(s.A).Extend(s.B) }

// Bound returns the box of the exterior ring; holes never extend it.
func (p Polygon) Bound() BBox {
	if len(p.Polygon) == 0 || len(p.Polygon[0]) == 0 {
		return BBox{}
	}
	return FromBound(p.Polygon[0].Bound())
}

func (p Point) String() string { return fmt.Sprintf("POINT(%g %g)", p.Point[0], p.Point[1]) }

func (s Segment) String() string {
	return fmt.Sprintf("SEGMENT(%g %g, %g %g)", s.A[0], s.A[1], s.B[0], s.B[1])
}

func (p Polygon) String() string {
	n := 0
	if len(p.Polygon) > 0 {
		n = len(p.Polygon[0])
	}
	return fmt.Sprintf("POLYGON(%d vertices, %d holes)", n, max(0, len(p.Polygon)-1))
}
