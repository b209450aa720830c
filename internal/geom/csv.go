package geom

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// CSVColumns names the columns holding coordinates. Empty names fall back to
// the usual spellings; WKT, when set, takes precedence over Lat/Lon.
type CSVColumns struct {
	Lat string
	Lon string
	WKT string
}

var (
	defaultLatColumns = []string{"lat", "latitude", "y"}
	defaultLonColumns = []string{"lon", "lng", "long", "longitude", "x"}
)

// LoadCSV reads a CSV with a header row. Rows whose coordinates don't parse
// are skipped. Every column is kept as an attribute.
func LoadCSV(r io.Reader, cols CSVColumns) (Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return Dataset{}, fmt.Errorf("csv: %w", err)
	}
	if len(recs) == 0 {
		return Dataset{}, errors.New("empty csv")
	}
	header := recs[0]

	d := Dataset{Area: true, Attributes: Attributes{Columns: header}}
	if cols.WKT != "" {
		idx := columnIndex(header, []string{cols.WKT})
		if idx == -1 {
			return Dataset{}, fmt.Errorf("csv: geometry column %q not found", cols.WKT)
		}
		for _, row := range recs[1:] {
			if idx >= len(row) {
				continue
			}
			g, err := parseWKTValue(row[idx])
			if err != nil {
				continue
			}
			d.Geometries = append(d.Geometries, g)
			d.Attributes.Rows = append(d.Attributes.Rows, padRow(row, len(header)))
		}
	} else {
		idxLat := columnIndex(header, candidates(cols.Lat, defaultLatColumns))
		idxLon := columnIndex(header, candidates(cols.Lon, defaultLonColumns))
		if idxLat == -1 || idxLon == -1 {
			return Dataset{}, errors.New("csv: latitude/longitude columns not found")
		}
		var pts orb.MultiPoint
		for _, row := range recs[1:] {
			if idxLon >= len(row) || idxLat >= len(row) {
				continue
			}
			lon, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxLon]), 64)
			lat, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxLat]), 64)
			if err1 != nil || err2 != nil {
				continue
			}
			pts = append(pts, orb.Point{lon, lat})
			d.Attributes.Rows = append(d.Attributes.Rows, padRow(row, len(header)))
		}
		if len(pts) > 0 {
			d.Geometries = []orb.Geometry{pts}
		}
	}
	if len(d.Geometries) == 0 {
		return Dataset{}, fmt.Errorf("csv: no valid rows parsed: %w", ErrNoGeometry)
	}
	return d, nil
}

func candidates(name string, defaults []string) []string {
	if name != "" {
		return []string{name}
	}
	return defaults
}

// columnIndex returns the first header matching any name, case-insensitively.
func columnIndex(header, names []string) int {
	for _, n := range names {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), n) {
				return i
			}
		}
	}
	return -1
}

func padRow(row []string, n int) []string {
	out := make([]string, n)
	copy(out, row)
	return out
}
