package geom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Intersects is the exact test run on index candidates.
//
// Points use half-open containment (min inclusive, max exclusive) so that a
// point falls in exactly one dot of a tiling. Segments and polygons are
// tested against the closed rectangle.
func Intersects(a Atom, box BBox) bool {
	switch a := a.(type) {
	case Point:
		return containsHalfOpen(box, a.Point)
	case Segment:
		return segmentIntersects(box, a.A, a.B)
	case Polygon:
		return polygonIntersects(box, a.Polygon)
	}
	return false
}

func containsHalfOpen(b BBox, p orb.Point) bool {
	return b.MinX <= p[0] && p[0] < b.MaxX && b.MinY <= p[1] && p[1] < b.MaxY
}

// segmentIntersects clips the segment a-b against b (Liang-Barsky).
func segmentIntersects(b BBox, a, c orb.Point) bool {
	dx, dy := c[0]-a[0], c[1]-a[1]
	t0, t1 := 0.0, 1.0
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}
	return clip(-dx, a[0]-b.MinX) &&
		clip(dx, b.MaxX-a[0]) &&
		clip(-dy, a[1]-b.MinY) &&
		clip(dy, b.MaxY-a[1]) &&
		t0 <= t1
}

func polygonIntersects(b BBox, p orb.Polygon) bool {
	if len(p) == 0 || len(p[0]) == 0 {
		return false
	}
	if !FromBound(p[0].Bound()).Intersects(b) {
		return false
	}
	for _, r := range p {
		for i := range r {
			j := (i + 1) % len(r)
			if segmentIntersects(b, r[i], r[j]) {
				return true
			}
		}
	}
	// no edge touches the rectangle: it is either fully inside the area
	// (outside every hole) or fully outside it
	return planar.PolygonContains(p, b.Center())
}
