// Package popup turns one packed polygon row into the geometry of an
// inspection popup: screen-space rings, their visible bounds, and a transform
// that enlarges polygons too small to inspect.
package popup

import (
	"errors"
	"fmt"
	"math"

	"geopoly/internal/geom"
)

// ErrMalformedBuffer is returned when draw-info records do not fit the
// vertex buffer.
var ErrMalformedBuffer = errors.New("malformed polygon buffer")

// ScaleFunc maps model units to pixels.
type ScaleFunc func(float64) float64

type Viewport struct {
	Width  float64
	Height float64
}

type Margins struct {
	Left float64
	Top  float64
}

type Point struct {
	X, Y float64
}

// Ring is one closed polygon boundary without its closure vertices.
type Ring []Point

// Bounds is a screen-space box accumulated from the visible vertices only.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// NewBounds returns empty bounds that any point widens.
func NewBounds() Bounds {
	return Bounds{MinX: math.Inf(1), MaxX: math.Inf(-1), MinY: math.Inf(1), MaxY: math.Inf(-1)}
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Center is the popup anchor.
func (b Bounds) Center() Point {
	return Point{X: b.MinX + b.Width()/2, Y: b.MinY + b.Height()/2}
}

// Add widens the bounds by p when p lies inside the viewport, edges included.
func (b *Bounds) Add(p Point, vp Viewport) {
	if p.X < 0 || p.X > vp.Width || p.Y < 0 || p.Y > vp.Height {
		return
	}
	b.MinX = math.Min(b.MinX, p.X)
	b.MaxX = math.Max(b.MaxX, p.X)
	b.MinY = math.Min(b.MinY, p.Y)
	b.MaxY = math.Max(b.MaxY, p.Y)
}

// Finalize replaces unset edges with the viewport's and widens a zero extent
// to the full viewport on that axis.
func (b *Bounds) Finalize(vp Viewport) {
	if math.IsInf(b.MinX, 1) {
		b.MinX = 0
	}
	if math.IsInf(b.MaxX, -1) {
		b.MaxX = vp.Width
	}
	if math.IsInf(b.MinY, 1) {
		b.MinY = 0
	}
	if math.IsInf(b.MaxY, -1) {
		b.MaxY = vp.Height
	}
	// a single visible point gives zero extent
	if b.MinX == b.MaxX {
		b.MinX, b.MaxX = 0, vp.Width
	}
	if b.MinY == b.MaxY {
		b.MinY, b.MaxY = 0, vp.Height
	}
}

// DecodeRings reads every ring of a packed row into screen space and
// returns the finalized bounds of the visible vertices. Points outside the
// viewport stay in their ring but do not widen the bounds.
//
// Draw-info firstIndex values are relative to the row's first record and
// in vertex units. The three closure vertices ending each ring are dropped.
func DecodeRings(buf geom.PackedBuffer, vp Viewport, m Margins, xs, ys ScaleFunc) ([]Ring, Bounds, error) {
	info := buf.DrawInfo
	if len(info)%geom.DrawInfoStride != 0 {
		return nil, Bounds{}, fmt.Errorf("%w: %d draw-info values is not a multiple of %d", ErrMalformedBuffer, len(info), geom.DrawInfoStride)
	}
	b := NewBounds()
	rings := make([]Ring, 0, len(info)/geom.DrawInfoStride)
	var base int32
	if len(info) > 0 {
		base = info[2]
	}
	for i := 0; i < len(info); i += geom.DrawInfoStride {
		count := int(info[i])
		if count < geom.ClosureVerts {
			return nil, Bounds{}, fmt.Errorf("%w: ring %d has %d vertices", ErrMalformedBuffer, i/geom.DrawInfoStride, count)
		}
		start := int(info[i+2]-base) * 2
		end := start + (count-geom.ClosureVerts)*2
		if start < 0 || end > len(buf.Verts) {
			return nil, Bounds{}, fmt.Errorf("%w: ring %d spans [%d,%d) of %d coordinates", ErrMalformedBuffer, i/geom.DrawInfoStride, start, end, len(buf.Verts))
		}
		ring := make(Ring, 0, (end-start)/2)
		for idx := start; idx < end; idx += 2 {
			p := Point{
				X: xs(float64(buf.Verts[idx])) + m.Left,
				Y: vp.Height - ys(float64(buf.Verts[idx+1])) - 1 + m.Top,
			}
			b.Add(p, vp)
			ring = append(ring, p)
		}
		rings = append(rings, ring)
	}
	b.Finalize(vp)
	return rings, b, nil
}

// AutoScale returns the factor that gives the bounds at least minArea.
// Bounds already that large, or without area, are not scaled.
func AutoScale(b Bounds, minArea float64) (float64, bool) {
	area := b.Width() * b.Height()
	if area <= 0 {
		return 1, false
	}
	ratio := minArea / area
	if ratio > 1 {
		return math.Sqrt(ratio), true
	}
	return 1, false
}

// Transform places the popup group. The group is translated so that scaling
// by Scale keeps the bounds' center in place; Origin is the center relative
// to the bounds' corner.
type Transform struct {
	TranslateX float64
	TranslateY float64
	Scale      float64
	OriginX    float64
	OriginY    float64
}

// NewTransform builds the group transform for bounds scaled by s. The y
// term uses MinY+1 to match the half-open pixel rows of the y flip.
func NewTransform(b Bounds, s float64) Transform {
	w, h := b.Width(), b.Height()
	return Transform{
		TranslateX: s*b.MinX - (s-1)*(b.MinX+w/2),
		TranslateY: s*(b.MinY+1) - (s-1)*(b.MinY+1+h/2),
		Scale:      s,
		OriginX:    w / 2,
		OriginY:    h / 2,
	}
}

// Apply returns the rings relative to the bounds' corner, scaled.
func (t Transform) Apply(rings []Ring, b Bounds) []Ring {
	out := make([]Ring, len(rings))
	for i, r := range rings {
		pts := make(Ring, len(r))
		for j, p := range r {
			pts[j] = Point{X: t.Scale * (p.X - b.MinX), Y: t.Scale * (p.Y - b.MinY)}
		}
		out[i] = pts
	}
	return out
}

// Screen maps a point returned by Apply back to viewport coordinates.
func (t Transform) Screen(p Point) Point {
	return Point{X: p.X + t.TranslateX, Y: p.Y + t.TranslateY}
}
