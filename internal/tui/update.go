package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"geomap/internal/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-1-2) // refined in View
		}
		m.rerender()
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				w := strings.TrimSpace(m.ta.Value())
				if w == "" {
					m.status = "paste: empty"
					return m, nil
				}
				d, err := geom.ParseWKT(w)
				if err != nil {
					m.status = "wkt error: " + err.Error()
					return m, nil
				}
				m.selPath = ""
				m.pasteMode = false
				m.ta.Blur()
				m.setData(d)
				m.status = "rendered WKT  " + m.status
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "o":
			m.outline = !m.outline
			m.rerender()
			m.status = fmt.Sprintf("outline: %v", m.outline)
		case "s":
			m.simplify = nextStep(m.simplify)
			m.rerender()
			m.status = fmt.Sprintf("simplify: %g", m.simplify)
		case "1":
			m.layers.points = !m.layers.points
			m.rerender()
			m.status = fmt.Sprintf("points: %v", m.layers.points)
		case "2":
			m.layers.lines = !m.layers.lines
			m.rerender()
			m.status = fmt.Sprintf("lines: %v", m.layers.lines)
		case "3":
			m.layers.polys = !m.layers.polys
			m.rerender()
			m.status = fmt.Sprintf("polys: %v", m.layers.polys)
		case "l":
			// all on unless every layer already is
			on := !m.layers.all()
			m.layers = layers{points: on, lines: on, polys: on}
			m.rerender()
			m.status = fmt.Sprintf("layers: pts=%v ls=%v poly=%v", m.layers.points, m.layers.lines, m.layers.polys)
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.height-1-2)
			}
			m.rerender()
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrsFromCurrent()
			}
		case "i":
			if m.inspectPopup != "" {
				m.inspectPopup = ""
				m.status = "view mode"
				break
			}
			if len(m.data.Geometries) == 0 {
				m.inspectPopup = "no dataset loaded"
				m.status = m.inspectPopup
				break
			}
			m.inspectPopup = m.inspect()
			m.status = "inspect popup"
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		}
	case tea.MouseMsg:
		m.hover(msg.X, msg.Y)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func nextStep(cur float64) float64 {
	for i, s := range simplifySteps {
		if s == cur {
			return simplifySteps[(i+1)%len(simplifySteps)]
		}
	}
	return simplifySteps[0]
}
