package popup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geopoly/internal/geom"
)

func identity(v float64) float64 { return v }

var vp = Viewport{Width: 400, Height: 300}

// flipY undoes the screen flip so tests can write screen coordinates.
func flipY(y float64) float64 { return vp.Height - 1 - y }

func verts(pts ...[2]float64) []float32 {
	out := make([]float32, 0, 2*len(pts))
	for _, p := range pts {
		out = append(out, float32(p[0]), float32(flipY(p[1])))
	}
	return out
}

func TestDecodeDropsClosureVertices(t *testing.T) {
	buf := geom.PackedBuffer{
		Verts:    verts([2]float64{10, 10}, [2]float64{20, 10}, [2]float64{20, 20}, [2]float64{10, 20}, [2]float64{10, 10}, [2]float64{20, 10}, [2]float64{20, 20}),
		DrawInfo: []int32{7, 1, 0, 0},
	}
	rings, b, err := DecodeRings(buf, vp, Margins{}, identity, identity)
	require.NoError(t, err)
	require.Len(t, rings, 1)
	assert.Equal(t, Ring{{10, 10}, {20, 10}, {20, 20}, {10, 20}}, rings[0])
	assert.Equal(t, Bounds{MinX: 10, MaxX: 20, MinY: 10, MaxY: 20}, b)
}

func TestDecodeRowRelativeIndices(t *testing.T) {
	pts := [][2]float64{
		{1, 1}, {2, 1}, {2, 2}, {1, 1}, {2, 1}, {2, 2},
		{5, 5}, {6, 5}, {5, 5}, {6, 5}, {7, 7},
	}
	relative := geom.PackedBuffer{Verts: verts(pts...), DrawInfo: []int32{6, 1, 0, 0, 5, 1, 6, 0}}
	absolute := geom.PackedBuffer{Verts: relative.Verts, DrawInfo: []int32{6, 1, 40, 0, 5, 1, 46, 0}}

	want := []Ring{
		{{1, 1}, {2, 1}, {2, 2}},
		{{5, 5}, {6, 5}},
	}
	for _, buf := range []geom.PackedBuffer{relative, absolute} {
		rings, _, err := DecodeRings(buf, vp, Margins{}, identity, identity)
		require.NoError(t, err)
		assert.Equal(t, want, rings)
	}
}

func TestDecodeMargins(t *testing.T) {
	buf := geom.PackedBuffer{Verts: []float32{0, 0, 0, 0, 0, 0, 0, 0}, DrawInfo: []int32{4, 1, 0, 0}}
	rings, _, err := DecodeRings(buf, vp, Margins{Left: 5, Top: 7}, identity, identity)
	require.NoError(t, err)
	assert.Equal(t, Ring{{5, 300 - 0 - 1 + 7}}, rings[0])
}

func TestBoundsOutsideViewport(t *testing.T) {
	buf := geom.PackedBuffer{
		Verts:    verts([2]float64{-50, -50}, [2]float64{-10, -50}, [2]float64{-10, -10}, [2]float64{-50, -50}, [2]float64{-10, -50}, [2]float64{-10, -10}),
		DrawInfo: []int32{6, 1, 0, 0},
	}
	rings, b, err := DecodeRings(buf, vp, Margins{}, identity, identity)
	require.NoError(t, err)
	// outside points keep the shape
	assert.Len(t, rings[0], 3)
	assert.Equal(t, Bounds{MinX: 0, MaxX: 400, MinY: 0, MaxY: 300}, b)
}

func TestBoundsDegenerateAxis(t *testing.T) {
	buf := geom.PackedBuffer{
		Verts:    verts([2]float64{50, 10}, [2]float64{50, 90}, [2]float64{900, 40}, [2]float64{50, 10}, [2]float64{50, 90}, [2]float64{900, 40}),
		DrawInfo: []int32{6, 1, 0, 0},
	}
	_, b, err := DecodeRings(buf, vp, Margins{}, identity, identity)
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.MinX)
	assert.Equal(t, 400.0, b.MaxX)
	assert.Equal(t, 10.0, b.MinY)
	assert.Equal(t, 90.0, b.MaxY)
}

func TestBoundsSingleVisiblePoint(t *testing.T) {
	b := NewBounds()
	b.Add(Point{30, 40}, vp)
	b.Add(Point{500, 40}, vp)
	b.Finalize(vp)
	assert.Equal(t, Bounds{MinX: 0, MaxX: 400, MinY: 0, MaxY: 300}, b)
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		buf  geom.PackedBuffer
	}{
		{"partial record", geom.PackedBuffer{Verts: make([]float32, 20), DrawInfo: []int32{6, 1, 0}}},
		{"short ring", geom.PackedBuffer{Verts: make([]float32, 20), DrawInfo: []int32{2, 1, 0, 0}}},
		{"past the end", geom.PackedBuffer{Verts: make([]float32, 8), DrawInfo: []int32{9, 1, 0, 0}}},
		{"before the start", geom.PackedBuffer{Verts: make([]float32, 20), DrawInfo: []int32{4, 1, 5, 0, 4, 1, 0, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeRings(tt.buf, vp, Margins{}, identity, identity)
			assert.ErrorIs(t, err, ErrMalformedBuffer)
		})
	}
}

func TestAutoScale(t *testing.T) {
	b := Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}

	s, scaled := AutoScale(b, 400)
	assert.True(t, scaled)
	assert.Equal(t, 2.0, s)

	s, scaled = AutoScale(b, 50)
	assert.False(t, scaled)
	assert.Equal(t, 1.0, s)

	s, scaled = AutoScale(b, 100)
	assert.False(t, scaled)
	assert.Equal(t, 1.0, s)
}

func TestTransform(t *testing.T) {
	b := Bounds{MinX: 10, MaxX: 20, MinY: 30, MaxY: 40}
	tr := NewTransform(b, 2)
	assert.Equal(t, 5.0, tr.TranslateX)
	assert.Equal(t, 26.0, tr.TranslateY)
	assert.Equal(t, 5.0, tr.OriginX)
	assert.Equal(t, 5.0, tr.OriginY)

	out := tr.Apply([]Ring{{{10, 30}, {15, 35}}}, b)
	assert.Equal(t, []Ring{{{0, 0}, {10, 10}}}, out)
	// the center stays put, one row down for the pixel convention
	assert.Equal(t, Point{15, 36}, tr.Screen(out[0][1]))

	same := NewTransform(b, 1)
	assert.Equal(t, Point{10, 31}, same.Screen(same.Apply([]Ring{{{10, 30}}}, b)[0][0]))
}
