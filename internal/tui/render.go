package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"geopoly/internal/popup"
)

// cellToLonLat converts a map cell coordinate back to lon/lat using bbox, zoom, and pan.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	if !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	lon := m.bbox.MinX + nx*(m.bbox.MaxX-m.bbox.MinX)
	lat := m.bbox.MinY + ny*(m.bbox.MaxY-m.bbox.MinY)
	return lon, lat, true
}

func (m Model) renderAsciiMap(w, h int) string {
	// High-resolution braille buffer for crisp lines/edges
	br := newBrailleBuf(w, h)

	// Draw polygons (fill then edges)
	if m.showPolys && len(m.polygons) > 0 {
		for _, poly := range m.polygons {
			var ringsMic [][][2]int
			for _, ring := range poly {
				var sm [][2]int
				for _, p := range ring {
					mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
					if !ok {
						continue
					}
					sm = append(sm, [2]int{mx, my})
				}
				if len(sm) >= 3 {
					ringsMic = append(ringsMic, sm)
				}
			}
			if len(ringsMic) == 0 {
				continue
			}
			// holes ignored for now
			br.fillRing(ringsMic[0])
			for _, r := range ringsMic {
				br.strokeRing(r)
			}
		}
	}

	// Draw points only when dataset has no lines or polygons
	if m.showPoints && len(m.lines) == 0 && len(m.polygons) == 0 && len(m.points) > 0 && m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY {
		for _, p := range m.points {
			mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
			if !ok {
				continue
			}
			br.setPixel(mx, my)
		}
	}

	// Draw line strings (high-res)
	if m.showLines && len(m.lines) > 0 {
		for _, ls := range m.lines {
			var prev *[2]int
			for _, p := range ls {
				mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
				if !ok {
					continue
				}
				if prev != nil {
					br.drawLineMicro(prev[0], prev[1], mx, my)
				}
				prev = &[2]int{mx, my}
			}
		}
	}

	cells := br.cells()
	if p := m.chart.popup; p != nil {
		m.overlayPopup(cells, p, w, h)
	}

	// Hover highlight: draw an orange circle at the hovered vertex cell
	if m.hovering {
		cx := m.hoverMicX / 2
		cy := m.hoverMicY / 4
		if cy >= 0 && cy < len(cells) && cx >= 0 && cx < len(cells[cy]) {
			cells[cy][cx] = hoverStyle.Render("◯")
		}
	}
	lines := make([]string, len(cells))
	for y, row := range cells {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

// overlayPopup draws the popup rings over cells, filled with the popup fill
// color and outlined with its stroke color.
func (m Model) overlayPopup(cells [][]string, p *popup.Popup, w, h int) {
	fill := newBrailleBuf(w, h)
	edge := newBrailleBuf(w, h)
	for i, r := range p.Rings {
		pts := make([][2]int, 0, len(r))
		for _, pt := range r {
			s := p.Transform.Screen(pt)
			pts = append(pts, [2]int{int(math.Round(s.X)), int(math.Round(s.Y))})
		}
		if i == 0 {
			fill.fillRing(pts)
		}
		edge.strokeRing(pts)
	}
	fillStyle := lipgloss.NewStyle().Foreground(popupColor(p.Style.FillColor, accentFg))
	// terminals have no line width; thick strokes are drawn bold
	edgeStyle := lipgloss.NewStyle().Foreground(popupColor(p.Style.StrokeColor, baseFg)).Bold(p.Style.StrokeWidth >= 2)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			e, f := edge.mask(x, y), fill.mask(x, y)
			switch {
			case e != 0:
				cells[y][x] = edgeStyle.Render(string(brailleRune(e | f)))
			case f != 0:
				cells[y][x] = fillStyle.Render(string(brailleRune(f)))
			}
		}
	}
}

// popupColor converts a resolved style color to a terminal color. Values
// that are not hex colors, such as gradients or named colors, fall back.
func popupColor(v any, fallback lipgloss.Color) lipgloss.Color {
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	if s == "white" {
		return lipgloss.Color("#ffffff")
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return fallback
	}
	return lipgloss.Color(c.Hex())
}

// screenXYMicro maps lon/lat into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(lon, lat float64, w, h int) (int, int, bool) {
	if !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	nx := (lon - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (lat - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// screenXY maps lon/lat to current screen integer coordinates considering zoom and pan.
func (m Model) screenXY(lon, lat float64, w, h int) (int, int, bool) {
	if !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	nx := (lon - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (lat - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w-1)) + m.offsetX
	sy := int((1.0-zy)*float64(h-1)) + m.offsetY
	return sx, sy, true
}

// inspectNearest finds the point closest to the viewport center and returns lon/lat.
func (m Model) inspectNearest() (lon, lat float64, ok bool) {
	if len(m.points) == 0 {
		return 0, 0, false
	}
	w, h, _, _ := m.layout()
	cx, cy := w/2, h/2
	bestD := math.MaxInt
	var best [2]float64
	for _, p := range m.points {
		sx, sy, ok2 := m.screenXY(p[0], p[1], w, h)
		if !ok2 {
			continue
		}
		dx := sx - cx
		dy := sy - cy
		if d := dx*dx + dy*dy; d < bestD {
			bestD = d
			best = p
		}
	}
	if bestD == math.MaxInt {
		return 0, 0, false
	}
	return best[0], best[1], true
}

// pointSummary is the inspect text for point datasets.
func (m Model) pointSummary(name string, lon, lat float64) string {
	return strings.Join([]string{
		fmt.Sprintf("name: %s", name),
		fmt.Sprintf("path: %s", m.selPath),
		fmt.Sprintf("bbox: [%.5f, %.5f, %.5f, %.5f]", m.bbox.MinX, m.bbox.MinY, m.bbox.MaxX, m.bbox.MaxY),
		fmt.Sprintf("counts: pts=%d ls=%d poly=%d", len(m.points), len(m.lines), len(m.polygons)),
		fmt.Sprintf("nearest: lon=%.6f lat=%.6f", lon, lat),
	}, "\n")
}
