package tui

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"geopoly/internal/geom"
	"geopoly/internal/popup"
)

// lonScale and latScale map model coordinates onto the braille microgrid of
// a w x h cell map, in the bottom-up pixel units popup decoding expects.
func (m Model) lonScale(w int) popup.ScaleFunc {
	return func(lon float64) float64 {
		nx := (lon - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
		zx := 0.5 + (nx-0.5)*m.zoom
		return zx*float64(w*2-1) + float64(m.offsetX*2)
	}
}

func (m Model) latScale(h int) popup.ScaleFunc {
	return func(lat float64) float64 {
		ny := (lat - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
		zy := 0.5 + (ny-0.5)*m.zoom
		return zy*float64(h*4-1) - float64(m.offsetY*4)
	}
}

// pickRow returns the packed row with the vertex nearest to the microgrid
// point (mx, my), or -1.
func (m Model) pickRow(mx, my, w, h int) int {
	best, bestD := -1, math.MaxInt
	for i, r := range m.rows {
		vs := r.Verts()
		for j := 0; j+1 < len(vs); j += 2 {
			sx, sy, ok := m.screenXYMicro(float64(vs[j]), float64(vs[j+1]), w, h)
			if !ok {
				continue
			}
			dx, dy := sx-mx, sy-my
			if d := dx*dx + dy*dy; d < bestD {
				best, bestD = i, d
			}
		}
	}
	return best
}

// openPopup renders the popup for the row nearest to (mx, my).
func (m *Model) openPopup(mx, my int) {
	w, h, _, _ := m.layout()
	idx := m.pickRow(mx, my, w, h)
	if idx < 0 {
		m.status = "no polygon nearby"
		return
	}
	row := m.rows[idx]
	p, err := m.engine.Render(m.chart, popup.Request{
		Spec:         m.spec,
		Layer:        m.layer,
		Row:          row,
		Viewport:     popup.Viewport{Width: float64(w * 2), Height: float64(h * 4)},
		XScale:       m.lonScale(w),
		YScale:       m.latScale(h),
		MinPopupArea: m.cfg.MinPopupArea,
		Animate:      m.cfg.Animate,
	})
	if err != nil {
		if errors.Is(err, popup.ErrNoMarkSpec) {
			m.status = "popup: layer has no mark spec"
		} else {
			m.status = "popup error: " + err.Error()
		}
		return
	}
	m.popupRow = idx
	m.inspectPopup = popupSummary(p, row)
	m.status = fmt.Sprintf("popup row %d  scale %.2fx", idx+1, p.Transform.Scale)
	if p.Class != "" {
		m.status += "  " + p.Class
	}
}

// hidePopup hides the map popup, if any.
func (m *Model) hidePopup() {
	m.engine.Hide(m.chart, func(popup.Chart) {
		m.popupRow = -1
		m.inspectPopup = ""
		m.status = "popup closed  " + m.chart.exitClass
	})
}

// popupSummary lists the popup's geometry and the columns it consulted.
func popupSummary(p *popup.Popup, row geom.Row) string {
	lines := []string{
		fmt.Sprintf("anchor: %.1f, %.1f", p.Anchor.X, p.Anchor.Y),
		fmt.Sprintf("bounds: %.0fx%.0f", p.Bounds.Width(), p.Bounds.Height()),
		fmt.Sprintf("scale: %.2f", p.Transform.Scale),
		fmt.Sprintf("rings: %d", len(p.Rings)),
		fmt.Sprintf("fill: %v  stroke: %v  width: %g", p.Style.FillColor, p.Style.StrokeColor, p.Style.StrokeWidth),
	}
	for _, c := range p.Columns {
		if isGeomColumn(c) {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %v", c, row[c]))
	}
	return strings.Join(lines, "\n")
}

func isGeomColumn(c string) bool {
	switch c {
	case geom.ColVerts, geom.ColIndices, geom.ColLineDrawInfo, geom.ColPolyDrawInfo:
		return true
	}
	return false
}
