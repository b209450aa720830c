package geom

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// NormalizeOptions controls how geometry is flattened into atoms.
type NormalizeOptions struct {
	// IsArea keeps polygons whole for containment tests; otherwise only
	// their exterior ring is kept, as segments.
	IsArea bool
	// Tolerance is the Douglas-Peucker threshold; 0 disables simplification.
	Tolerance float64
}

// Tolerance scales a simplification proportion to the output resolution.
func Tolerance(proportion float64, rows, cols int) float64 {
	if proportion <= 0 || rows <= 0 || cols <= 0 {
		return 0
	}
	return proportion / float64(rows*cols)
}

// Normalize flattens g into atoms. Multi and collection types are
// decomposed recursively; the order of the result carries no meaning.
func Normalize(g orb.Geometry, opts NormalizeOptions) ([]Atom, error) {
	return appendAtoms(nil, g, opts)
}

// NormalizeAll normalizes every geometry and concatenates the atoms.
func NormalizeAll(gs []orb.Geometry, opts NormalizeOptions) ([]Atom, error) {
	var out []Atom
	for _, g := range gs {
		var err error
		out, err = appendAtoms(out, g, opts)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func appendAtoms(out []Atom, g orb.Geometry, opts NormalizeOptions) ([]Atom, error) {
	if g == nil {
		return out, nil
	}
	// the simplifier drops geometries it collapses entirely
	if g = simplified(g, opts.Tolerance); g == nil {
		return out, nil
	}
	switch g := g.(type) {
	case orb.Point:
		if err := checkPoint(g); err != nil {
			return nil, err
		}
		return append(out, Point{g}), nil
	case orb.MultiPoint:
		for _, p := range g {
			if err := checkPoint(p); err != nil {
				return nil, err
			}
			out = append(out, Point{p})
		}
		return out, nil
	case orb.LineString:
		return appendSegments(out, g, false)
	case orb.MultiLineString:
		var err error
		for _, ls := range g {
			if out, err = appendSegments(out, ls, false); err != nil {
				return nil, err
			}
		}
		return out, nil
	case orb.Ring:
		return appendPolygon(out, orb.Polygon{g}, opts.IsArea)
	case orb.Bound:
		return appendPolygon(out, g.ToPolygon(), opts.IsArea)
	case orb.Polygon:
		return appendPolygon(out, g, opts.IsArea)
	case orb.MultiPolygon:
		var err error
		for _, p := range g {
			if out, err = appendPolygon(out, p, opts.IsArea); err != nil {
				return nil, err
			}
		}
		return out, nil
	case orb.Collection:
		var err error
		for _, m := range g {
			if out, err = appendAtoms(out, m, opts); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("normalize: %T: %w", g, ErrUnsupportedFormat)
}

func appendPolygon(out []Atom, p orb.Polygon, isArea bool) ([]Atom, error) {
	if len(p) == 0 || len(p[0]) == 0 {
		return out, nil
	}
	if !isArea {
		return appendSegments(out, orb.LineString(p[0]), true)
	}
	for _, r := range p {
		for _, pt := range r {
			if err := checkPoint(pt); err != nil {
				return nil, err
			}
		}
	}
	return append(out, Polygon{p}), nil
}

// appendSegments emits one segment per consecutive pair. With ring set, the
// closing segment back to the first vertex is added unless the ring is
// already explicitly closed.
func appendSegments(out []Atom, ls orb.LineString, ring bool) ([]Atom, error) {
	for _, p := range ls {
		if err := checkPoint(p); err != nil {
			return nil, err
		}
	}
	for i := 1; i < len(ls); i++ {
		out = append(out, Segment{A: ls[i-1], B: ls[i]})
	}
	if ring && len(ls) > 2 && !ls[0].Equal(ls[len(ls)-1]) {
		out = append(out, Segment{A: ls[len(ls)-1], B: ls[0]})
	}
	return out, nil
}

func simplified(g orb.Geometry, tolerance float64) orb.Geometry {
	if tolerance <= 0 {
		return g
	}
	switch g.(type) {
	case orb.LineString, orb.MultiLineString, orb.Ring, orb.Polygon, orb.MultiPolygon:
		// the simplifier works in place
		return simplify.DouglasPeucker(tolerance).Simplify(orb.Clone(g))
	}
	return g
}

func checkPoint(p orb.Point) error {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("coordinate (%g, %g): %w", p[0], p[1], ErrUnrepresentable)
		}
	}
	return nil
}

// CheckAtoms rejects atoms holding a NaN or infinite coordinate, which would
// otherwise poison the union box.
func CheckAtoms(atoms []Atom) error {
	for _, a := range atoms {
		switch a := a.(type) {
		case Point:
			if err := checkPoint(a.Point); err != nil {
				return err
			}
		case Segment:
			if err := checkPoint(a.A); err != nil {
				return err
			}
			if err := checkPoint(a.B); err != nil {
				return err
			}
		case Polygon:
			for _, r := range a.Polygon {
				for _, p := range r {
					if err := checkPoint(p); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}
