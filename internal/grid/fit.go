package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"geomap/internal/geom"
)

// ErrInvalidSize is returned when the requested output is not positive.
var ErrInvalidSize = errors.New("invalid output size")

// Grid maps printed character cells onto data space.
type Grid struct {
	Rows, Cols int
	// BBox is the data envelope the grid is anchored to; row 0 starts at
	// BBox.MaxY and column 0 at BBox.MinX.
	BBox geom.BBox
	// CellSize and DotSize are (width, height) in data units.
	CellSize [2]float64
	DotSize  [2]float64
}

// Fit sizes a width x height character grid to box. The printed grid always
// has exactly ceil(width) x ceil(height) cells; only the data extent each
// cell covers follows the box's aspect ratio, one cell being twice as tall
// as it is wide in dots.
func Fit(width, height float64, box geom.BBox) (Grid, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return Grid{}, fmt.Errorf("fit %gx%g: %w", width, height, ErrInvalidSize)
	}
	box = widen(box)
	bw, bh := box.Width(), box.Height()

	boxAspect := bw / bh
	termAspect := width / height

	var colsF, rowsF float64
	switch {
	case termAspect > 1 && (boxAspect <= 2 || termAspect > boxAspect*2):
		colsF, rowsF = height*boxAspect*2, height
	default:
		colsF, rowsF = width, (width/boxAspect)/2
	}

	cw, ch := bw/colsF, bh/rowsF
	return Grid{
		Rows:     int(math.Ceil(height)),
		Cols:     int(math.Ceil(width)),
		BBox:     box,
		CellSize: [2]float64{cw, ch},
		DotSize:  [2]float64{cw / DotCols, ch / DotRows},
	}, nil
}

// widen replaces a zero extent with the other axis' extent, or with a unit
// extent when both are zero, keeping the data centered.
func widen(b geom.BBox) geom.BBox {
	if !b.IsDegenerate() {
		return b
	}
	w, h := b.Width(), b.Height()
	ext := math.Max(w, h)
	if !(ext > 0) {
		ext = 1
	}
	c := b.Center()
	if !(w > 0) {
		b.MinX, b.MaxX = c[0]-ext/2, c[0]+ext/2
	}
	if !(h > 0) {
		b.MinY, b.MaxY = c[1]-ext/2, c[1]+ext/2
	}
	return b
}

// CellOrigin returns the top-left corner of a cell in data space.
func (g Grid) CellOrigin(row, col int) (x, y float64) {
	return g.BBox.MinX + g.CellSize[0]*float64(col), g.BBox.MaxY - g.CellSize[1]*float64(row)
}

// DotBox returns the data-space rectangle of one dot of a cell.
func (g Grid) DotBox(row, col, dotRow, dotCol int) geom.BBox {
	x, y := g.CellOrigin(row, col)
	minX := x + g.DotSize[0]*float64(dotCol)
	maxY := y - g.DotSize[1]*float64(dotRow)
	return geom.BBox{
		MinX: minX,
		MinY: maxY - g.DotSize[1],
		MaxX: minX + g.DotSize[0],
		MaxY: maxY,
	}
}

// CellCenter returns the data coordinate at the middle of a cell.
func (g Grid) CellCenter(row, col int) orb.Point {
	x, y := g.CellOrigin(row, col)
	return orb.Point{x + g.CellSize[0]/2, y - g.CellSize[1]/2}
}

// CellAt returns the cell covering a data coordinate. Cells own their left
// and bottom edges, matching the point test used while sampling.
func (g Grid) CellAt(p orb.Point) (row, col int, ok bool) {
	if !(g.CellSize[0] > 0 && g.CellSize[1] > 0) {
		return 0, 0, false
	}
	col = int(math.Floor((p[0] - g.BBox.MinX) / g.CellSize[0]))
	row = int(math.Ceil((g.BBox.MaxY-p[1])/g.CellSize[1])) - 1
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return 0, 0, false
	}
	return row, col, true
}
