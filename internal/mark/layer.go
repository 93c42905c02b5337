package mark

import (
	"math"
	"strings"
)

// Scale is an externally built scale. Only its name is consulted here.
type Scale interface {
	Name() string
}

// Mapper is implemented by scales that can map a row value to a channel value.
type Mapper interface {
	Map(v any) (any, bool)
}

// PopupStyle overrides the data-driven popup style. Empty colors and a nil
// width leave the data-driven value in place; a zero width is an override.
type PopupStyle struct {
	FillColor   string
	StrokeColor string
	StrokeWidth *float64
}

// Layer is the per-layer configuration of a polygon layer.
//
// An attribute is nil (unset), a column name, or for StrokeWidthAttr a
// literal number. The default colors are passed through untouched and may
// be constants or gradient/pattern descriptions.
type Layer struct {
	Name string

	FillColorAttr   any
	StrokeColorAttr any
	StrokeWidthAttr any

	FillColorScale   Scale
	StrokeColorScale Scale
	StrokeWidthScale Scale

	DefaultFillColor   any
	DefaultStrokeColor any
	DefaultStrokeWidth float64

	PopupStyle *PopupStyle

	lineJoin   LineJoin
	miterLimit float64
}

// NewLayer returns a layer with the default style.
func NewLayer(name string) *Layer {
	return &Layer{
		Name:               name,
		DefaultFillColor:   "#22a7f0",
		DefaultStrokeColor: "white",
		DefaultStrokeWidth: 0,
		lineJoin:           LineJoinMiter,
		miterLimit:         10,
	}
}

func (l *Layer) LineJoin() LineJoin   { return l.lineJoin }
func (l *Layer) MiterLimit() float64 { return l.miterLimit }

// SetLineJoin accepts "miter", "round" or "bevel" in any letter case.
func (l *Layer) SetLineJoin(v any) error {
	s, ok := v.(string)
	if !ok {
		return &ValidationError{Channel: ChannelLineJoin, Value: v, Reason: "line join must be a string and one of miter, round, bevel"}
	}
	lj := LineJoin(strings.ToLower(s))
	for _, valid := range LineJoins {
		if lj == valid {
			l.lineJoin = lj
			return nil
		}
	}
	return &ValidationError{Channel: ChannelLineJoin, Value: v, Reason: "line join must be one of miter, round, bevel"}
}

// SetMiterLimit accepts any number >= 0.
func (l *Layer) SetMiterLimit(v any) error {
	f, ok := ToNumber(v)
	if !ok || math.IsNaN(f) {
		return &ValidationError{Channel: ChannelMiterLimit, Value: v, Reason: "miter limit must be a number"}
	}
	if f < 0 {
		return &ValidationError{Channel: ChannelMiterLimit, Value: v, Reason: "miter limit must be >= 0"}
	}
	l.miterLimit = f
	return nil
}

// ToNumber converts any Go numeric kind to float64.
func ToNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
