package tui

import (
	"fmt"
	"path/filepath"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshAttrsFromCurrent rebuilds the table columns/rows from the current dataset
func (m *Model) refreshAttrsFromCurrent() {
	cols, rows := m.buildAttributes()
	// If there are no columns or rows, disable attributes view to avoid rendering panics
	if len(cols) == 0 || len(rows) == 0 {
		m.showAttrs = false
		m.status = "no attributes for current dataset"
		return
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	maxColW := 24
	for _, c := range cols {
		w := len(c) + 2
		if w > maxColW {
			w = maxColW
		}
		tcols = append(tcols, table.Column{Title: c, Width: w})
	}
	// Normalize each row to match the number of table columns
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		cells := make([]string, len(tcols))
		cells[0] = fmt.Sprintf("%d", i+1)
		copy(cells[1:], r)
		trows = append(trows, table.Row(cells))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// buildAttributes returns the dataset's attribute table, or a one-row summary
// for sources that carry no attributes.
func (m *Model) buildAttributes() ([]string, [][]string) {
	a := m.data.Attributes
	if len(a.Columns) > 0 && len(a.Rows) > 0 {
		return a.Columns, a.Rows
	}
	if m.selPath == "" {
		// pasted WKT: no attributes available
		return nil, nil
	}
	pts, lines, polys := m.data.Counts()
	bbox := ""
	if bb, ok := m.data.BBox(); ok {
		bbox = fmt.Sprintf("[%.5f,%.5f,%.5f,%.5f]", bb.MinX, bb.MinY, bb.MaxX, bb.MaxY)
	}
	cols := []string{"name", "path", "bbox", "points", "lines", "polygons"}
	vals := []string{filepath.Base(m.selPath), m.selPath, bbox, fmt.Sprint(pts), fmt.Sprint(lines), fmt.Sprint(polys)}
	return cols, [][]string{vals}
}
