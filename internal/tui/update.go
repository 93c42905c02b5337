package tui

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"geopoly/internal/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// popup geometry is in screen space
		m.hidePopup()
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; will be refined in View
		}
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
				d, err := geom.ParseWKTData(w)
				if err != nil {
					m.status = "wkt error: " + err.Error()
					return m, nil
				}
				m.selPath = ""
				m.setData(d)
				if m.spec != nil {
					m.status = "rendered WKT" + m.counts()
				}
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.showPoints = !m.showPoints
			m.status = fmt.Sprintf("points: %v", m.showPoints)
		case "2":
			m.showLines = !m.showLines
			m.status = fmt.Sprintf("lines: %v", m.showLines)
		case "3":
			m.showPolys = !m.showPolys
			m.status = fmt.Sprintf("polys: %v", m.showPolys)
		case "+", "=":
			if m.zoom < 64 {
				m.hidePopup()
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.hidePopup()
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
			// the map width changes with the sidebar
			m.hidePopup()
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
		case "s":
			m.showSpec = !m.showSpec && m.spec != nil
			if m.showSpec {
				m.status = "mark spec"
			}
		case "esc":
			switch {
			case m.showSpec:
				m.showSpec = false
			case m.showAttrs:
				m.showAttrs = false
			case m.chart.popup != nil:
				m.hidePopup()
			default:
				m.inspectPopup = ""
			}
		case "i":
			if len(m.rows) > 0 {
				w, h, _, _ := m.layout()
				mx, my := w, h*2
				if m.hovering {
					mx, my = m.hoverMicX, m.hoverMicY
				}
				m.openPopup(mx, my)
				break
			}
			lon, lat, ok := m.inspectNearest()
			if ok {
				name := filepath.Base(m.selPath)
				if m.selPath == "" {
					name = "<unsaved>"
				}
				m.inspectPopup = m.pointSummary(name, lon, lat)
				m.status = "inspect popup"
			} else {
				m.inspectPopup = "no feature nearby"
				m.status = m.inspectPopup
			}
		case "l":
			// toggle all layers
			all := m.showPoints && m.showLines && m.showPolys
			m.showPoints = !all
			m.showLines = !all
			m.showPolys = !all
			m.status = fmt.Sprintf("layers: pts=%v ls=%v poly=%v", m.showPoints, m.showLines, m.showPolys)
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up", "down", "left", "right":
			m.hidePopup()
			m.pan(msg.String())
		}
	case tea.MouseMsg:
		// track hover over map area
		mapWidth, mapHeight, mapOriginX, mapOriginY := m.layout()
		if m.showSidebar {
			m.l.SetSize(28-2, mapHeight-2)
		}
		// mouse cell within map?
		cx, cy := msg.X, msg.Y
		if cx >= mapOriginX && cx < mapOriginX+mapWidth && cy >= mapOriginY && cy < mapOriginY+mapHeight {
			m.hovering = true
			m.hoverCellX = cx - mapOriginX
			m.hoverCellY = cy - mapOriginY
			// compute lon/lat for footer
			if lon, lat, ok := m.cellToLonLat(m.hoverCellX, m.hoverCellY, mapWidth, mapHeight); ok {
				m.hoverHasGeo = true
				m.hoverLon = lon
				m.hoverLat = lat
			} else {
				m.hoverHasGeo = false
			}
			// find nearest vertex (points + line vertices + polygon vertices) using micro coords
			bx, by := m.nearestVertexMicro(m.hoverCellX*2, m.hoverCellY*4, mapWidth, mapHeight)
			m.hoverMicX, m.hoverMicY = bx, by
			if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && len(m.rows) > 0 && !m.showAttrs && !m.showSpec {
				m.openPopup(bx, by)
			}
		} else {
			m.hovering = false
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) pan(dir string) {
	switch dir {
	case "up":
		m.offsetY -= 1
	case "down":
		m.offsetY += 1
	case "left":
		m.offsetX -= 2
	case "right":
		m.offsetX += 2
	}
}

// nearestVertexMicro returns the drawn vertex closest to the microgrid point
// (hx, hy), or (hx, hy) itself when nothing is drawn.
func (m Model) nearestVertexMicro(hx, hy, w, h int) (int, int) {
	best := 1<<31 - 1
	bx, by := hx, hy
	consider := func(p [2]float64) {
		mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
		if !ok {
			return
		}
		dx, dy := mx-hx, my-hy
		if d := dx*dx + dy*dy; d < best {
			best = d
			bx, by = mx, my
		}
	}
	for _, p := range m.points {
		consider(p)
	}
	for _, ls := range m.lines {
		for _, p := range ls {
			consider(p)
		}
	}
	for _, poly := range m.polygons {
		for _, ring := range poly {
			for _, p := range ring {
				consider(p)
			}
		}
	}
	return bx, by
}

// specJSON renders the current mark spec as indented JSON.
func (m Model) specJSON() string {
	if m.spec == nil {
		return "no mark spec"
	}
	b, err := json.MarshalIndent(m.spec, "", "  ")
	if err != nil {
		return "spec error: " + err.Error()
	}
	return string(b)
}
