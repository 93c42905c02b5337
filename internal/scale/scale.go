// Package scale provides the host-side scales the viewer builds for a polygon
// layer: linear coordinate scales and named value scales for the color and
// width channels.
package scale

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"geopoly/internal/geom"
	"geopoly/internal/mark"
)

// Linear maps a continuous domain onto a continuous range.
type Linear struct {
	Domain [2]float64
	Range  [2]float64
}

// Map returns the range value for v. A zero-width domain maps to the range start.
func (l Linear) Map(v float64) float64 {
	d := l.Domain[1] - l.Domain[0]
	if d == 0 {
		return l.Range[0]
	}
	t := (v - l.Domain[0]) / d
	return l.Range[0] + t*(l.Range[1]-l.Range[0])
}

// Color is a named linear color scale over a numeric domain. Colors are
// blended in Lab space.
type Color struct {
	ScaleName string
	Domain    [2]float64
	from, to  colorful.Color
}

// NewColor builds a color scale between two hex colors.
func NewColor(name string, domain [2]float64, from, to string) (*Color, error) {
	c0, err := colorful.Hex(from)
	if err != nil {
		return nil, fmt.Errorf("color scale %s: %w", name, err)
	}
	c1, err := colorful.Hex(to)
	if err != nil {
		return nil, fmt.Errorf("color scale %s: %w", name, err)
	}
	return &Color{ScaleName: name, Domain: domain, from: c0, to: c1}, nil
}

func (c *Color) Name() string { return c.ScaleName }

// Map returns the hex color for a numeric value, clamped to the domain.
func (c *Color) Map(v any) (any, bool) {
	f, ok := mark.ToNumber(v)
	if !ok {
		return nil, false
	}
	t := 0.0
	if d := c.Domain[1] - c.Domain[0]; d != 0 {
		t = (f - c.Domain[0]) / d
	}
	t = math.Max(0, math.Min(1, t))
	return c.from.BlendLab(c.to, t).Clamped().Hex(), true
}

// Ordinal maps categories onto a fixed color list, falling back to Default.
type Ordinal struct {
	ScaleName string
	Values    map[string]string
	Default   string
}

func (o *Ordinal) Name() string { return o.ScaleName }

func (o *Ordinal) Map(v any) (any, bool) {
	if c, ok := o.Values[fmt.Sprint(v)]; ok {
		return c, true
	}
	if o.Default == "" {
		return nil, false
	}
	return o.Default, true
}

// Numeric is a named linear scale for numeric channels such as stroke width.
type Numeric struct {
	ScaleName string
	Linear
}

func (n *Numeric) Name() string { return n.ScaleName }

func (n *Numeric) Map(v any) (any, bool) {
	f, ok := mark.ToNumber(v)
	if !ok {
		return nil, false
	}
	return n.Linear.Map(f), true
}

// DomainOf returns the numeric extent of a column across rows.
func DomainOf(rows []geom.Row, field string) ([2]float64, bool) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, r := range rows {
		f, ok := mark.ToNumber(r[field])
		if !ok {
			continue
		}
		lo = math.Min(lo, f)
		hi = math.Max(hi, f)
	}
	if math.IsInf(lo, 1) {
		return [2]float64{}, false
	}
	return [2]float64{lo, hi}, true
}

// Palette assigns colors to the distinct string values of a column, in first
// seen order, cycling through colors.
func Palette(name string, rows []geom.Row, field string, colors []string) *Ordinal {
	o := &Ordinal{ScaleName: name, Values: map[string]string{}}
	for _, r := range rows {
		v, ok := r[field]
		if !ok || v == nil || len(colors) == 0 {
			continue
		}
		k := fmt.Sprint(v)
		if _, seen := o.Values[k]; !seen {
			o.Values[k] = colors[len(o.Values)%len(colors)]
		}
	}
	return o
}
