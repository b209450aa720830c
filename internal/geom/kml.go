package geom

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

type kmlBoundary struct {
	Coordinates string `xml:"LinearRing>coordinates"`
}

type kmlPolygon struct {
	Outer kmlBoundary   `xml:"outerBoundaryIs"`
	Inner []kmlBoundary `xml:"innerBoundaryIs"`
}

type kmlGeometry struct {
	Points   []kmlCoords   `xml:"Point"`
	Lines    []kmlCoords   `xml:"LineString"`
	Polygons []kmlPolygon  `xml:"Polygon"`
	Multi    []kmlGeometry `xml:"MultiGeometry"`
}

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPlacemark struct {
	Name string `xml:"name"`
	kmlGeometry
}

type kmlContainer struct {
	Placemarks []kmlPlacemark `xml:"Placemark"`
	Folders    []kmlContainer `xml:"Folder"`
	Documents  []kmlContainer `xml:"Document"`
}

// LoadKML extracts Point, LineString and Polygon placemarks, including those
// nested in folders and MultiGeometry. KML coordinates are "lon,lat[,alt]";
// altitude is ignored.
func LoadKML(r io.Reader) (Dataset, error) {
	var doc kmlContainer
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return Dataset{}, fmt.Errorf("kml: %w", err)
	}
	d := Dataset{Area: true, Attributes: Attributes{Columns: []string{"name"}}}
	var walk func(c kmlContainer)
	walk = func(c kmlContainer) {
		for _, pm := range c.Placemarks {
			if g := pm.geometry(); g != nil {
				d.Geometries = append(d.Geometries, g)
				d.Attributes.Rows = append(d.Attributes.Rows, []string{pm.Name})
			}
		}
		for _, f := range c.Folders {
			walk(f)
		}
		for _, f := range c.Documents {
			walk(f)
		}
	}
	walk(doc)
	if len(d.Geometries) == 0 {
		return Dataset{}, fmt.Errorf("kml: %w", ErrNoGeometry)
	}
	return d, nil
}

func (k kmlGeometry) geometry() orb.Geometry {
	var c orb.Collection
	for _, p := range k.Points {
		for _, pt := range parseKMLCoords(p.Coordinates) {
			c = append(c, pt)
		}
	}
	for _, l := range k.Lines {
		if ls := parseKMLCoords(l.Coordinates); len(ls) > 0 {
			c = append(c, orb.LineString(ls))
		}
	}
	for _, p := range k.Polygons {
		outer := parseKMLCoords(p.Outer.Coordinates)
		if len(outer) == 0 {
			continue
		}
		poly := orb.Polygon{orb.Ring(outer)}
		for _, in := range p.Inner {
			if ring := parseKMLCoords(in.Coordinates); len(ring) > 0 {
				poly = append(poly, orb.Ring(ring))
			}
		}
		c = append(c, poly)
	}
	for _, m := range k.Multi {
		if g := m.geometry(); g != nil {
			c = append(c, g)
		}
	}
	switch len(c) {
	case 0:
		return nil
	case 1:
		return c[0]
	}
	return c
}

// parseKMLCoords reads whitespace separated "lon,lat[,alt]" tuples.
func parseKMLCoords(s string) []orb.Point {
	var out []orb.Point
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, orb.Point{lon, lat})
	}
	return out
}
