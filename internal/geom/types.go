package geom

import (
	"math"

	"github.com/paulmach/orb"
)

// BBox is an axis-aligned rectangle in data coordinates.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// PointBox returns the degenerate box covering a single coordinate.
func PointBox(p orb.Point) BBox {
	return BBox{MinX: p[0], MinY: p[1], MaxX: p[0], MaxY: p[1]}
}

// FromBound converts an orb bound.
func FromBound(b orb.Bound) BBox {
	return BBox{MinX: b.Min[0], MinY: b.Min[1], MaxX: b.Max[0], MaxY: b.Max[1]}
}

// Bound converts the box back to an orb bound.
func (b BBox) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{b.MinX, b.MinY}, Max: orb.Point{b.MaxX, b.MaxY}}
}

// Extend grows the box to include p.
func (b BBox) Extend(p orb.Point) BBox {
	if p[0] < b.MinX {
		b.MinX = p[0]
	}
	if p[1] < b.MinY {
		b.MinY = p[1]
	}
	if p[0] > b.MaxX {
		b.MaxX = p[0]
	}
	if p[1] > b.MaxY {
		b.MaxY = p[1]
	}
	return b
}

// Union returns the smallest box covering both b and o.
func (b BBox) Union(o BBox) BBox {
	return BBox{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// IsDegenerate reports whether the box has zero width or height.
func (b BBox) IsDegenerate() bool {
	return !(b.MaxX > b.MinX && b.MaxY > b.MinY)
}

// Intersects reports whether two boxes overlap, edges included.
func (b BBox) Intersects(o BBox) bool {
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX && b.MinY <= o.MaxY && o.MinY <= b.MaxY
}

// Pad grows the box by d on every side.
func (b BBox) Pad(d float64) BBox {
	return BBox{MinX: b.MinX - d, MinY: b.MinY - d, MaxX: b.MaxX + d, MaxY: b.MaxY + d}
}

// Center returns the midpoint of the box.
func (b BBox) Center() orb.Point {
	return orb.Point{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2}
}

// Dataset is what a decoder hands to the renderer: geometries in a planar
// coordinate system plus whatever attributes the source carried.
type Dataset struct {
	Geometries []orb.Geometry
	// Area marks polygons as filled areas rather than outlines.
	Area       bool
	Attributes Attributes
	Source     string
}

// Attributes is a flat table of per-feature properties.
type Attributes struct {
	Columns []string
	Rows    [][]string
}

// Counts returns the number of point, line and polygon members in the dataset.
func (d Dataset) Counts() (pts, lines, polys int) {
	var walk func(g orb.Geometry)
	walk = func(g orb.Geometry) {
		switch g := g.(type) {
		case orb.Point:
			pts++
		case orb.MultiPoint:
			pts += len(g)
		case orb.LineString:
			lines++
		case orb.MultiLineString:
			lines += len(g)
		case orb.Ring, orb.Polygon, orb.Bound:
			polys++
		case orb.MultiPolygon:
			polys += len(g)
		case orb.Collection:
			for _, m := range g {
				walk(m)
			}
		}
	}
	for _, g := range d.Geometries {
		walk(g)
	}
	return pts, lines, polys
}

// BBox returns the union envelope of every geometry, or false when the
// dataset has no coordinates.
func (d Dataset) BBox() (BBox, bool) {
	var bb BBox
	ok := false
	for _, g := range d.Geometries {
		if g == nil || isEmpty(g) {
			continue
		}
		b := FromBound(g.Bound())
		if !ok {
			bb, ok = b, true
			continue
		}
		bb = bb.Union(b)
	}
	return bb, ok
}

func isEmpty(g orb.Geometry) bool {
	switch g := g.(type) {
	case orb.MultiPoint:
		return len(g) == 0
	case orb.LineString:
		return len(g) == 0
	case orb.MultiLineString:
		for _, ls := range g {
			if len(ls) > 0 {
				return false
			}
		}
		return true
	case orb.Ring:
		return len(g) == 0
	case orb.Polygon:
		return len(g) == 0 || len(g[0]) == 0
	case orb.MultiPolygon:
		for _, p := range g {
			if !isEmpty(p) {
				return false
			}
		}
		return true
	case orb.Collection:
		for _, m := range g {
			if m != nil && !isEmpty(m) {
				return false
			}
		}
		return true
	}
	return false
}
