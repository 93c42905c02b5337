package tui

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"geopoly/internal/config"
	"geopoly/internal/geom"
	"geopoly/internal/mark"
	"geopoly/internal/metrics"
	"geopoly/internal/popup"
	"geopoly/internal/scale"
)

// categorical palette for string-valued fill attributes
var fillPalette = []string{"#22a7f0", "#ef4444", "#f59e0b", "#10b981", "#8b5cf6", "#ec4899", "#14b8a6", "#eab308"}

// strokeWidthRange bounds the data-driven stroke width.
var strokeWidthRange = [2]float64{0.5, 3}

// mapChart is the map canvas seen as a chart: it names the position scales
// and holds the popup drawn on it.
type mapChart struct {
	id        string
	popup     *popup.Popup
	exitClass string
}

func (c *mapChart) ID() string         { return c.id }
func (c *mapChart) XScaleName() string { return "x" }
func (c *mapChart) YScaleName() string { return "y" }
func (c *mapChart) DrawPopup(p *popup.Popup) {
	c.popup = p
	c.exitClass = ""
}

// ExitPopup clears the overlay right away; a terminal has nothing to animate.
func (c *mapChart) ExitPopup(class string, done func()) {
	c.popup = nil
	c.exitClass = class
	if done != nil {
		done()
	}
}

// buildLayer turns the configuration into a polygon layer, building the
// value scales the configured attributes need from rows.
func buildLayer(cfg config.Config, rows []geom.Row, log *slog.Logger) *mark.Layer {
	l := mark.NewLayer("polys")
	l.DefaultFillColor = cfg.FillColor
	l.DefaultStrokeColor = cfg.StrokeColor
	l.DefaultStrokeWidth = cfg.StrokeWidth
	if err := l.SetLineJoin(cfg.LineJoin); err != nil {
		log.Warn("layer_line_join", "err", err)
	}
	if err := l.SetMiterLimit(cfg.MiterLimitValue()); err != nil {
		log.Warn("layer_miter_limit", "err", err)
	}

	if a := cfg.FillColorAttr; a != "" {
		l.FillColorAttr = a
		if dom, ok := scale.DomainOf(rows, a); ok {
			cs, err := scale.NewColor("polys_fillColor", dom, cfg.FillColorRange[0], cfg.FillColorRange[1])
			if err != nil {
				log.Warn("layer_fill_scale", "err", err)
			} else {
				l.FillColorScale = cs
			}
		} else {
			l.FillColorScale = scale.Palette("polys_fillColor", rows, a, fillPalette)
		}
	}
	// stroke colors come straight from the column
	if a := cfg.StrokeColorAttr; a != "" {
		l.StrokeColorAttr = a
	}
	if a := cfg.StrokeWidthAttr; a != "" {
		if f, err := strconv.ParseFloat(a, 64); err == nil {
			l.StrokeWidthAttr = f
		} else {
			l.StrokeWidthAttr = a
			if dom, ok := scale.DomainOf(rows, a); ok {
				l.StrokeWidthScale = &scale.Numeric{
					ScaleName: "polys_strokeWidth",
					Linear:    scale.Linear{Domain: dom, Range: strokeWidthRange},
				}
			}
		}
	}
	if cfg.HasPopupStyle() {
		l.PopupStyle = &mark.PopupStyle{
			FillColor:   cfg.PopupFill,
			StrokeColor: cfg.PopupStroke,
			StrokeWidth: cfg.PopupStrokeWidth,
		}
	}
	return l
}

// rebuildLayer repacks the loaded polygons and resolves the layer's mark
// spec. Any popup on display is hidden first.
func (m *Model) rebuildLayer(fs []geom.Feature) {
	m.hidePopup()
	m.rows = geom.PackFeatures(fs)
	m.layer = buildLayer(m.cfg, m.rows, m.log)
	spec, err := mark.ResolveChannels(m.layer, m.chart, m.query())
	if err != nil {
		m.spec = nil
		m.log.Error("mark_spec_error", "err", err)
		m.status = "mark error: " + err.Error()
		return
	}
	m.spec = spec
	metrics.MarkSpecsTotal.Inc()
	m.log.Info("mark_spec_ok", "rows", len(m.rows), "fields", strings.Join(spec.Fields(), ","))
}

// query names the data the mark spec is drawn from.
func (m *Model) query() string {
	table := "pasted"
	if m.selPath != "" {
		table = strings.TrimSuffix(filepath.Base(m.selPath), filepath.Ext(m.selPath))
	}
	return fmt.Sprintf("SELECT * FROM %q", table)
}
