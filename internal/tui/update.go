package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"geopath/internal/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		lo := m.layout()
		m.mapW, m.mapH = lo.mapW, lo.mapH
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, lo.contentH-2)
		}
	case tea.KeyMsg:
		// While the list is filtering, keys belong to it.
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			m.inspectPopup = ""
		case "1":
			m.layers.outline = !m.layers.outline
			m.status = fmt.Sprintf("outline: %v", m.layers.outline)
		case "2":
			m.layers.fill = !m.layers.fill
			m.status = fmt.Sprintf("fill: %v", m.layers.fill)
		case "3":
			m.layers.vertices = !m.layers.vertices
			m.status = fmt.Sprintf("vertices: %v", m.layers.vertices)
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "r":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			lo := m.layout()
			m.mapW, m.mapH = lo.mapW, lo.mapH
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, lo.contentH-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			return m, m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrsFromCurrent()
			}
		case "i":
			m.inspect()
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY--
		case "down":
			m.offsetY++
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		m.updateHover(msg.X, msg.Y)
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		doc := strings.TrimSpace(m.ta.Value())
		if doc == "" {
			m.status = "paste: empty"
			return m, nil
		}
		c, err := geom.DecodeGeoJSON(strings.NewReader(doc))
		if err != nil {
			m.status = "paste error: " + err.Error()
			return m, nil
		}
		if m.setCollection(c, "rendered paste") {
			m.selPath = ""
			m.pasteMode = false
			m.ta.Blur()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// updateHover tracks the mouse over the map: the lon/lat under the cursor
// and the nearest ring vertex.
func (m *Model) updateHover(x, y int) {
	lo := m.layout()
	if x < lo.mapX || x >= lo.mapX+lo.mapW || y < lo.mapY || y >= lo.mapY+lo.mapH {
		m.hover = hover{}
		return
	}
	h := hover{active: true, cell: [2]int{x - lo.mapX, y - lo.mapY}}
	h.lon, h.lat, h.hasGeo = m.cellToLonLat(h.cell[0], h.cell[1], lo.mapW, lo.mapH)
	h.dot = [2]int{h.cell[0] * 2, h.cell[1] * 4}
	if _, at, ok := m.nearestVertex(h.dot[0], h.dot[1], lo.mapW, lo.mapH); ok {
		h.dot = at
	}
	m.hover = h
}

func (m *Model) inspect() {
	if !m.loaded {
		m.inspectPopup = "nothing loaded"
		m.status = m.inspectPopup
		return
	}
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = "<pasted>"
	}
	meta := []string{
		fmt.Sprintf("name: %s", name),
		fmt.Sprintf("path: %s", m.selPath),
		fmt.Sprintf("bbox: %v", m.bbox),
		fmt.Sprintf("counts: %s", m.counts()),
		fmt.Sprintf("canvas: %gx%g", m.size.Width, m.size.Height),
		fmt.Sprintf("svg path: %d cmds, %d subpaths, length %.2f", len(m.path), m.path.Subpaths(), m.path.Length()),
	}
	for _, s := range m.ex.Skipped {
		meta = append(meta, fmt.Sprintf("skipped: feature %d (%s)", s.Feature, s.Kind))
	}
	if lon, lat, ok := m.inspectNearest(); ok {
		meta = append(meta, fmt.Sprintf("nearest: lon=%.6f lat=%.6f", lon, lat))
	}
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}
