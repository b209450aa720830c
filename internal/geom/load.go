package geom

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LoadOptions carries the decoder knobs that come from configuration.
type LoadOptions struct {
	// Format overrides detection from the file extension; required for stdin
	// unless the input is GeoJSON.
	Format string
	CSV    CSVColumns
	// PolylinePrecision defaults to DefaultPolylinePrecision.
	PolylinePrecision int
	Stdin             io.Reader
}

// Extensions lists the file extensions Load understands.
var Extensions = []string{".geojson", ".json", ".wkt", ".csv", ".kml", ".polyline", ".shp"}

// Supported reports whether path has a loadable extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// FormatOf maps a path to a format name.
func FormatOf(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "json":
		return "geojson"
	case "txt":
		return "wkt"
	}
	return ext
}

// Load reads path, or stdin when path is "-", into a dataset.
func Load(path string, opts LoadOptions) (Dataset, error) {
	format := strings.ToLower(opts.Format)
	if format == "" {
		format = "geojson"
		if path != "-" {
			format = FormatOf(path)
		}
	}
	if format == "shp" {
		if path == "-" {
			return Dataset{}, fmt.Errorf("load: shapefiles cannot be read from stdin: %w", ErrUnsupportedFormat)
		}
		d, err := LoadShapefile(path)
		d.Source = path
		return d, err
	}

	var r io.Reader
	if path == "-" {
		r = opts.Stdin
		if r == nil {
			r = os.Stdin
		}
	} else {
		f, err := os.Open(path)
		if err != nil {
			return Dataset{}, err
		}
		defer f.Close()
		r = f
	}
	d, err := Decode(r, format, opts)
	if err != nil {
		return Dataset{}, err
	}
	d.Source = path
	return d, nil
}

// Decode reads a stream in the named format.
func Decode(r io.Reader, format string, opts LoadOptions) (Dataset, error) {
	switch format {
	case "geojson":
		return LoadGeoJSON(r)
	case "wkt":
		data, err := io.ReadAll(r)
		if err != nil {
			return Dataset{}, err
		}
		return ParseWKT(string(data))
	case "csv":
		return LoadCSV(r, opts.CSV)
	case "kml":
		return LoadKML(r)
	case "polyline":
		return LoadPolyline(r, opts.PolylinePrecision)
	}
	return Dataset{}, fmt.Errorf("load %q: %w", format, ErrUnsupportedFormat)
}
