package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LoadGeoJSON reads a FeatureCollection, a Feature or a bare Geometry.
// Feature properties are collected into the attribute table.
func LoadGeoJSON(r io.Reader) (Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Dataset{}, err
	}
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return Dataset{}, fmt.Errorf("geojson: %w", err)
	}
	if head.Type == "" {
		return Dataset{}, errors.New("invalid geojson: missing type")
	}

	var features []*geojson.Feature
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return Dataset{}, fmt.Errorf("geojson: %w", err)
		}
		features = fc.Features
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return Dataset{}, fmt.Errorf("geojson: %w", err)
		}
		features = []*geojson.Feature{f}
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return Dataset{}, fmt.Errorf("geojson: %w", err)
		}
		if g.Geometry() == nil {
			return Dataset{}, fmt.Errorf("geojson %s: %w", head.Type, ErrNoGeometry)
		}
		return Dataset{Geometries: []orb.Geometry{g.Geometry()}, Area: true}, nil
	}

	d := Dataset{Area: true}
	props := make([]geojson.Properties, 0, len(features))
	for _, f := range features {
		if f == nil || f.Geometry == nil {
			continue
		}
		d.Geometries = append(d.Geometries, f.Geometry)
		props = append(props, f.Properties)
	}
	if len(d.Geometries) == 0 {
		return Dataset{}, fmt.Errorf("geojson: %w", ErrNoGeometry)
	}
	d.Attributes = propertyTable(props)
	return d, nil
}

// propertyTable unions property keys across features into one table.
func propertyTable(props []geojson.Properties) Attributes {
	seen := map[string]bool{}
	var cols []string
	for _, p := range props {
		var keys []string
		for k := range p {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		cols = append(cols, keys...)
	}
	if len(cols) == 0 {
		return Attributes{}
	}
	rows := make([][]string, 0, len(props))
	for _, p := range props {
		vals := make([]string, 0, len(cols))
		for _, k := range cols {
			vals = append(vals, formatValue(p[k]))
		}
		rows = append(rows, vals)
	}
	return Attributes{Columns: cols, Rows: rows}
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		bs, _ := json.Marshal(t)
		return string(bs)
	}
}
