package geom

import (
	"fmt"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
)

// LoadShapefile reads a .shp file (with its .dbf sidecar when present).
// Polygon parts are grouped into polygons by ring orientation: clockwise
// rings start a new polygon, counter-clockwise rings are holes of the
// previous one.
func LoadShapefile(path string) (Dataset, error) {
	r, err := shp.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("shapefile: open %q: %w", path, err)
	}
	defer r.Close()

	d := Dataset{Area: true}
	fields := r.Fields()
	for _, f := range fields {
		d.Attributes.Columns = append(d.Attributes.Columns, f.String())
	}
	for r.Next() {
		n, s := r.Shape()
		g := shapeGeometry(s)
		if g == nil {
			continue
		}
		d.Geometries = append(d.Geometries, g)
		if len(fields) > 0 {
			row := make([]string, len(fields))
			for i := range fields {
				row[i] = dbfValue(r.ReadAttribute(n, i))
			}
			d.Attributes.Rows = append(d.Attributes.Rows, row)
		}
	}
	if err := r.Err(); err != nil {
		return Dataset{}, fmt.Errorf("shapefile: %w", err)
	}
	if len(d.Geometries) == 0 {
		return Dataset{}, fmt.Errorf("shapefile: %w", ErrNoGeometry)
	}
	return d, nil
}

// dbfValue strips the fixed-width padding of a DBF field.
func dbfValue(v string) string {
	return strings.TrimSpace(strings.TrimRight(v, "\x00"))
}

func shapeGeometry(s shp.Shape) orb.Geometry {
	switch s := s.(type) {
	case *shp.Point:
		return orb.Point{s.X, s.Y}
	case *shp.PointZ:
		return orb.Point{s.X, s.Y}
	case *shp.PointM:
		return orb.Point{s.X, s.Y}
	case *shp.MultiPoint:
		return shapeMultiPoint(s.Points)
	case *shp.MultiPointZ:
		return shapeMultiPoint(s.Points)
	case *shp.PolyLine:
		return orb.MultiLineString(shapeParts(s.Parts, s.Points))
	case *shp.PolyLineZ:
		return orb.MultiLineString(shapeParts(s.Parts, s.Points))
	case *shp.Polygon:
		return shapePolygons(shapeParts(s.Parts, s.Points))
	case *shp.PolygonZ:
		return shapePolygons(shapeParts(s.Parts, s.Points))
	}
	return nil
}

func shapeMultiPoint(pts []shp.Point) orb.Geometry {
	mp := make(orb.MultiPoint, 0, len(pts))
	for _, p := range pts {
		mp = append(mp, orb.Point{p.X, p.Y})
	}
	return mp
}

func shapeParts(parts []int32, pts []shp.Point) []orb.LineString {
	out := make([]orb.LineString, 0, len(parts))
	for i, start := range parts {
		end := int32(len(pts))
		if i+1 < len(parts) {
			end = parts[i+1]
		}
		if start < 0 || start > end || int(end) > len(pts) {
			continue
		}
		ls := make(orb.LineString, 0, end-start)
		for _, p := range pts[start:end] {
			ls = append(ls, orb.Point{p.X, p.Y})
		}
		out = append(out, ls)
	}
	return out
}

func shapePolygons(rings []orb.LineString) orb.Geometry {
	var mp orb.MultiPolygon
	for _, ls := range rings {
		r := orb.Ring(ls)
		if len(mp) == 0 || r.Orientation() == orb.CW {
			mp = append(mp, orb.Polygon{r})
			continue
		}
		mp[len(mp)-1] = append(mp[len(mp)-1], r)
	}
	if len(mp) == 1 {
		return mp[0]
	}
	return mp
}
