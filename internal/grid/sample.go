package grid

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"geomap/internal/geom"
)

// SampleCell computes the dot mask of one cell. A dot is set when any atom
// intersects its rectangle; the search stops at the first match.
func SampleCell(idx *geom.Index, g Grid, row, col int) uint8 {
	var mask uint8
	for dr := 0; dr < DotRows; dr++ {
		for dc := 0; dc < DotCols; dc++ {
			box := g.DotBox(row, col, dr, dc)
			hit := idx.Any(box, func(a geom.Atom) bool {
				return geom.Intersects(a, box)
			})
			if hit {
				mask |= DotBit(dr, dc)
			}
		}
	}
	return mask
}

// Sample fills a canvas for the whole grid. Rows are sampled concurrently;
// each goroutine only writes its own row.
func Sample(idx *geom.Index, g Grid) *Canvas {
	c := NewCanvas(g.Cols, g.Rows)
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for r := 0; r < g.Rows; r++ {
		eg.Go(func() error {
			for col := 0; col < g.Cols; col++ {
				c.Set(r, col, SampleCell(idx, g, r, col))
			}
			return nil
		})
	}
	// sampling never fails
	_ = eg.Wait()
	return c
}
