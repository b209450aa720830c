package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 28

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentWidth := max(10, m.width)
	_, _, mapWidth, mapHeight := m.layout()

	body := m.mainPane(mapWidth, mapHeight)
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, mapHeight-2)
		sidebar := lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", body)
	}

	header := lipgloss.NewStyle().Width(contentWidth).Render(titleStyle.Render(" geomap ─ terminal braille map "))
	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, m.footer(contentWidth))
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// mainPane renders whichever of the attribute table, the paste box or the
// map occupies the content area. The inspect popup is drawn over the map so
// the map keeps the origin used for mouse hover.
func (m Model) mainPane(w, h int) string {
	switch {
	case m.showAttrs:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		boxW := min(w, max(32, colW))
		m.tbl.SetWidth(boxW - 4)
		m.tbl.SetHeight(min(h-2, 20))
		box := boxStyle.Width(boxW).Render(m.tbl.View())
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(w)
		m.ta.SetHeight(min(h, 12))
		return lipgloss.NewStyle().Width(w).Height(h).Render(m.ta.View())
	}
	pane := m.mapView()
	if m.inspectPopup != "" {
		box := boxStyle.MaxWidth(max(20, min(48, w/2))).Render(m.inspectPopup)
		pane = overlay(pane, box, h)
	}
	return pane
}

// overlay draws box over the left edge of base, vertically centered. base
// must be plain text with single-width runes, as the braille map is.
func overlay(base, box string, height int) string {
	rows := strings.Split(base, "\n")
	boxRows := strings.Split(box, "\n")
	top := max(0, (height-len(boxRows))/2)
	for i, br := range boxRows {
		r := top + i
		if r >= len(rows) {
			break
		}
		under := []rune(rows[r])
		cut := min(len(under), lipgloss.Width(br))
		rows[r] = br + string(under[cut:])
	}
	return strings.Join(rows, "\n")
}

// footer shows the status line, key help and the hovered data coordinate.
func (m Model) footer(width int) string {
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, dimStyle.Render(" "+m.status+" "), m.renderHelp())
	coords := ""
	if m.hoverHasGeo {
		coords = hoverStyle.Render(fmt.Sprintf("  x=%.5f y=%.5f  ", m.hoverLon, m.hoverLat))
	}
	spacer := max(0, width-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacer+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"Tab sidebar",
		"Enter open",
		"p paste",
		"a attrs",
		"i inspect",
		"o outline",
		"s simplify",
		"1/2/3/l layers",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
