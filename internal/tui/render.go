package tui

import (
	"fmt"
	"strings"

	"geomap/internal/geom"
	"geomap/internal/grid"
)

// layout returns the map area's origin and size for the current window.
// View and the mouse handler must agree on it.
func (m Model) layout() (originX, originY, w, h int) {
	sideW := 0
	if m.showSidebar {
		sideW = sidebarWidth
	}
	headerHeight := 1
	footerHeight := 2
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)
	mapWidth := contentWidth - sideW - 1
	if mapWidth < 10 {
		mapWidth = 10
	}
	originX = sideW
	if m.showSidebar {
		originX++
	}
	return originX, headerHeight, mapWidth, contentHeight
}

// rerender runs the braille pipeline for the current map area.
func (m *Model) rerender() {
	_, _, w, h := m.layout()
	m.mapW, m.mapH = w, h
	m.mapLines, m.hasGrid = nil, false
	if len(m.data.Geometries) == 0 || m.width == 0 || m.height == 0 {
		return
	}
	gs := m.layers.filter(m.data.Geometries)
	if len(gs) == 0 {
		m.logger.Debug("every layer with data is hidden")
		return
	}
	canvas, g, err := grid.RenderGeometries(gs, grid.Options{
		Width:    w,
		Height:   h,
		Simplify: m.simplify,
		Area:     m.data.Area && !m.outline,
	})
	if err != nil {
		m.status = "render error: " + err.Error()
		m.logger.Error("render failed", "err", err)
		return
	}
	m.mapLines, m.grid, m.hasGrid = canvas.Lines(), g, true
	m.logger.Debug("rendered", "cols", g.Cols, "rows", g.Rows, "simplify", m.simplify, "outline", m.outline)
}

// mapView returns the last render, or a blank area.
func (m Model) mapView() string {
	if len(m.mapLines) == 0 {
		blank := strings.Repeat(" ", m.mapW)
		lines := make([]string, m.mapH)
		for i := range lines {
			lines[i] = blank
		}
		return strings.Join(lines, "\n")
	}
	return strings.Join(m.mapLines, "\n")
}

// hover updates the footer coordinate for a mouse position in the window.
func (m *Model) hover(x, y int) {
	ox, oy, w, h := m.layout()
	m.hoverHasGeo = false
	if !m.hasGrid || x < ox || x >= ox+w || y < oy || y >= oy+h {
		return
	}
	p := m.grid.CellCenter(y-oy, x-ox)
	m.hoverHasGeo = true
	m.hoverLon, m.hoverLat = p[0], p[1]
}

// inspect builds the dataset summary popup.
func (m Model) inspect() string {
	name := m.data.Source
	if name == "" {
		name = "<unsaved>"
	}
	pts, lines, polys := m.data.Counts()
	meta := []string{
		fmt.Sprintf("source: %s", name),
		fmt.Sprintf("counts: pts=%d ls=%d poly=%d", pts, lines, polys),
	}
	if bb, ok := m.data.BBox(); ok {
		meta = append(meta, fmt.Sprintf("bbox: [%.5f, %.5f, %.5f, %.5f]", bb.MinX, bb.MinY, bb.MaxX, bb.MaxY))
	}
	if m.hasGrid {
		meta = append(meta,
			fmt.Sprintf("grid: %dx%d cells", m.grid.Cols, m.grid.Rows),
			fmt.Sprintf("cell: %.6g x %.6g", m.grid.CellSize[0], m.grid.CellSize[1]),
		)
	}
	mode := "area"
	if m.outline || !m.data.Area {
		mode = "outline"
	}
	meta = append(meta,
		fmt.Sprintf("mode: %s  simplify: %g", mode, m.simplify),
		"crs: unknown",
	)
	return strings.Join(meta, "\n")
}

// setData swaps the dataset and re-renders.
func (m *Model) setData(d geom.Dataset) {
	m.data = d
	m.inspectPopup = ""
	m.rerender()
	pts, lines, polys := d.Counts()
	m.status = fmt.Sprintf("counts: pts=%d ls=%d poly=%d", pts, lines, polys)
}
