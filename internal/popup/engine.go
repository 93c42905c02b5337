package popup

import (
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"geopoly/internal/geom"
	"geopoly/internal/logger"
	"geopoly/internal/mark"
	"geopoly/internal/metrics"
)

// Animation classes for showing and hiding popups.
const (
	ClassPopup   = "popupPoly"   // show, auto-scaled
	ClassFadeIn  = "fadeInPoly"  // show, not scaled
	ClassRemove  = "removePoly"  // hide, auto-scaled
	ClassFadeOut = "fadeOutPoly" // hide, not scaled
)

var (
	ErrIneligibleRow = errors.New("row has no polygon geometry")
	ErrNoMarkSpec    = errors.New("popup requires a resolved mark spec and its layer")
)

// Chart is the surface a popup is drawn on. IDs key the popup state, so
// independent charts need distinct IDs.
type Chart interface {
	ID() string
	DrawPopup(p *Popup)
	ExitPopup(class string, done func())
}

// Request is everything one popup is built from.
type Request struct {
	Spec  *mark.MarkSpec
	Layer *mark.Layer
	Row   geom.Row

	Viewport Viewport
	Margins  Margins
	XScale   ScaleFunc
	YScale   ScaleFunc

	MinPopupArea float64
	Animate      bool
}

// Style is the resolved popup style. FillColor and StrokeColor are whatever
// the channel resolved to, usually a color string.
type Style struct {
	FillColor   any
	StrokeColor any
	StrokeWidth float64
}

// Popup is the drawable result of Render.
type Popup struct {
	Anchor    Point
	Bounds    Bounds
	Transform Transform
	Rings     []Ring // relative to the bounds' corner, already scaled
	Style     Style
	Scaled    bool
	Class     string // show animation, empty when not animated
	// Columns are the row columns the popup reads. The x/y position fields
	// are not row columns and are left out.
	Columns   []string
}

// Engine renders polygon popups and remembers, per chart, whether the popup
// on display was auto-scaled.
type Engine struct {
	log *slog.Logger

	mu     sync.Mutex
	scaled map[string]bool
}

func NewEngine(l *slog.Logger) *Engine {
	if l == nil {
		l = logger.L()
	}
	return &Engine{log: l, scaled: map[string]bool{}}
}

// Render decodes the row, derives the auto-scale and draws the popup on
// chart. A previous popup state for the chart is replaced.
func (e *Engine) Render(chart Chart, req Request) (*Popup, error) {
	if req.Spec == nil || req.Layer == nil {
		return nil, ErrNoMarkSpec
	}
	if !IsRowEligible(req.Row) {
		return nil, ErrIneligibleRow
	}
	rings, b, err := DecodeRings(req.Row.Buffer(), req.Viewport, req.Margins, req.XScale, req.YScale)
	if err != nil {
		metrics.DecodeErrorsTotal.Inc()
		e.log.Warn("popup_decode_error", "chart", chart.ID(), "err", err)
		return nil, err
	}
	factor, scaled := AutoScale(b, req.MinPopupArea)
	tr := NewTransform(b, factor)

	p := &Popup{
		Anchor:    b.Center(),
		Bounds:    b,
		Transform: tr,
		Rings:     tr.Apply(rings, b),
		Style:     resolveStyle(req, scaled),
		Scaled:    scaled,
		Columns:   RequiredColumns(req.Spec),
	}
	if req.Animate {
		p.Class = ClassFadeIn
		if scaled {
			p.Class = ClassPopup
		}
	}
	chart.DrawPopup(p)

	e.mu.Lock()
	e.scaled[chart.ID()] = scaled
	e.mu.Unlock()

	metrics.PopupsTotal.WithLabelValues(strconv.FormatBool(scaled)).Inc()
	metrics.PopupRings.Observe(float64(len(rings)))
	e.log.Debug("popup_render_ok", "chart", chart.ID(), "rings", len(rings), "scale", factor)
	return p, nil
}

// Hide plays the exit animation for the chart's popup and forgets its state.
// onComplete runs once the animation ends. Hiding a chart without a popup
// does nothing.
func (e *Engine) Hide(chart Chart, onComplete func(Chart)) {
	e.mu.Lock()
	scaled, ok := e.scaled[chart.ID()]
	delete(e.scaled, chart.ID())
	e.mu.Unlock()
	if !ok {
		e.log.Debug("popup_hide_noop", "chart", chart.ID())
		return
	}
	class := ClassFadeOut
	if scaled {
		class = ClassRemove
	}
	var done func()
	if onComplete != nil {
		done = func() { onComplete(chart) }
	}
	chart.ExitPopup(class, done)
	metrics.PopupHidesTotal.Inc()
	e.log.Debug("popup_hide_ok", "chart", chart.ID(), "class", class)
}

// IsScaled reports the state of the chart's popup; ok is false when none is shown.
func (e *Engine) IsScaled(chartID string) (scaled, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	scaled, ok = e.scaled[chartID]
	return scaled, ok
}

// resolveStyle reads the style from the row through the mark spec. A layer
// popup style overrides it only for unscaled popups.
func resolveStyle(req Request, scaled bool) Style {
	l := req.Layer
	s := Style{
		FillColor:   req.Spec.Value(mark.ChannelFillColor, req.Row, l.DefaultFillColor),
		StrokeColor: req.Spec.Value(mark.ChannelStrokeColor, req.Row, l.DefaultStrokeColor),
		StrokeWidth: l.DefaultStrokeWidth,
	}
	if w, ok := mark.ToNumber(req.Spec.Value(mark.ChannelStrokeWidth, req.Row, l.DefaultStrokeWidth)); ok {
		s.StrokeWidth = w
	}
	if ps := l.PopupStyle; ps != nil && !scaled {
		if ps.FillColor != "" {
			s.FillColor = ps.FillColor
		}
		if ps.StrokeColor != "" {
			s.StrokeColor = ps.StrokeColor
		}
		if ps.StrokeWidth != nil {
			s.StrokeWidth = *ps.StrokeWidth
		}
	}
	return s
}
