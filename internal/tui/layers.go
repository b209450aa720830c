package tui

import "github.com/paulmach/orb"

// layers records which geometry kinds the map draws.
type layers struct {
	points, lines, polys bool
}

func allLayers() layers { return layers{points: true, lines: true, polys: true} }

func (l layers) all() bool { return l.points && l.lines && l.polys }

// filter keeps the geometries of visible kinds. Collections are filtered
// member by member and dropped once nothing visible is left in them.
func (l layers) filter(gs []orb.Geometry) []orb.Geometry {
	if l.all() {
		return gs
	}
	out := make([]orb.Geometry, 0, len(gs))
	for _, g := range gs {
		if g = l.keep(g); g != nil {
			out = append(out, g)
		}
	}
	return out
}

func (l layers) keep(g orb.Geometry) orb.Geometry {
	switch g := g.(type) {
	case orb.Point, orb.MultiPoint:
		if l.points {
			return g
		}
	case orb.LineString, orb.MultiLineString:
		if l.lines {
			return g
		}
	case orb.Polygon, orb.MultiPolygon, orb.Ring, orb.Bound:
		if l.polys {
			return g
		}
	case orb.Collection:
		c := orb.Collection(l.filter(g))
		if len(c) > 0 {
			return c
		}
	}
	return nil
}
