package geom

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/twpayne/go-polyline"
)

// DefaultPolylinePrecision is the number of decimals used by Google's
// encoded polyline format.
const DefaultPolylinePrecision = 5

// LoadPolyline reads one encoded polyline per non-empty line. Encoded pairs
// are (lat, lng) and are swapped to (x, y).
func LoadPolyline(r io.Reader, precision int) (Dataset, error) {
	if precision <= 0 {
		precision = DefaultPolylinePrecision
	}
	codec := polyline.Codec{Dim: 2, Scale: math.Pow10(precision)}
	var d Dataset
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		coords, _, err := codec.DecodeCoords([]byte(line))
		if err != nil {
			return Dataset{}, fmt.Errorf("polyline: %w", err)
		}
		ls := make(orb.LineString, 0, len(coords))
		for _, c := range coords {
			ls = append(ls, orb.Point{c[1], c[0]})
		}
		switch len(ls) {
		case 0:
		case 1:
			d.Geometries = append(d.Geometries, ls[0])
		default:
			d.Geometries = append(d.Geometries, ls)
		}
	}
	if err := sc.Err(); err != nil {
		return Dataset{}, fmt.Errorf("polyline: %w", err)
	}
	if len(d.Geometries) == 0 {
		return Dataset{}, fmt.Errorf("polyline: %w", ErrNoGeometry)
	}
	return d, nil
}
