package geom

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// ParseWKT parses a single WKT geometry, or one geometry per non-empty line.
// Lines that fail to parse are skipped; the call fails only when none parse.
func ParseWKT(s string) (Dataset, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Dataset{}, fmt.Errorf("wkt: empty input: %w", ErrNoGeometry)
	}
	d := Dataset{Area: true}
	var firstErr error
	sc := bufio.NewScanner(strings.NewReader(s))
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		g, err := wkt.Unmarshal(line)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		d.Geometries = append(d.Geometries, g)
	}
	if err := sc.Err(); err != nil {
		return Dataset{}, fmt.Errorf("wkt: %w", err)
	}
	if len(d.Geometries) == 0 && strings.Contains(s, "\n") {
		// a single geometry wrapped over several lines
		if g, err := wkt.Unmarshal(strings.Join(strings.Fields(s), " ")); err == nil {
			d.Geometries = []orb.Geometry{g}
			return d, nil
		}
	}
	if len(d.Geometries) == 0 {
		if firstErr != nil {
			return Dataset{}, fmt.Errorf("wkt: %w", firstErr)
		}
		return Dataset{}, fmt.Errorf("wkt: %w", ErrNoGeometry)
	}
	return d, nil
}

// parseWKTValue parses a single WKT string, used for CSV geometry columns.
func parseWKTValue(s string) (orb.Geometry, error) {
	return wkt.Unmarshal(strings.TrimSpace(s))
}
