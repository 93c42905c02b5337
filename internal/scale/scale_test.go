package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geopoly/internal/geom"
)

func TestLinear(t *testing.T) {
	l := Linear{Domain: [2]float64{0, 10}, Range: [2]float64{0, 100}}
	assert.Equal(t, 50.0, l.Map(5))
	assert.Equal(t, 0.0, Linear{Range: [2]float64{0, 9}}.Map(3))
}

func TestColorEnds(t *testing.T) {
	c, err := NewColor("fill", [2]float64{0, 10}, "#000000", "#ffffff")
	require.NoError(t, err)
	assert.Equal(t, "fill", c.Name())

	v, ok := c.Map(0)
	require.True(t, ok)
	assert.Equal(t, "#000000", v)
	v, _ = c.Map(10.0)
	assert.Equal(t, "#ffffff", v)
	// clamped
	v, _ = c.Map(99.0)
	assert.Equal(t, "#ffffff", v)

	_, ok = c.Map("x")
	assert.False(t, ok)

	_, err = NewColor("bad", [2]float64{0, 1}, "red", "#fff")
	assert.Error(t, err)
}

func TestPalette(t *testing.T) {
	rows := []geom.Row{{"k": "a"}, {"k": "b"}, {"k": "a"}, {"k": "c"}, {}}
	o := Palette("stroke", rows, "k", []string{"#111111", "#222222"})
	v, ok := o.Map("c")
	require.True(t, ok)
	assert.Equal(t, "#111111", v)
	_, ok = o.Map("zzz")
	assert.False(t, ok)

	o.Default = "#999999"
	v, _ = o.Map("zzz")
	assert.Equal(t, "#999999", v)
}

func TestDomainOf(t *testing.T) {
	d, ok := DomainOf([]geom.Row{{"v": 3.0}, {"v": -1}, {"v": "x"}}, "v")
	require.True(t, ok)
	assert.Equal(t, [2]float64{-1, 3}, d)

	_, ok = DomainOf(nil, "v")
	assert.False(t, ok)
}

func TestNumeric(t *testing.T) {
	n := &Numeric{ScaleName: "w", Linear: Linear{Domain: [2]float64{0, 1}, Range: [2]float64{1, 3}}}
	v, ok := n.Map(0.5)
	require.True(t, ok)
	assert.Equal(t, 2.0, v)
}

func TestDomainOfUnsignedAndSmallInts(t *testing.T) {
	d, ok := DomainOf([]geom.Row{{"v": uint8(7)}, {"v": int16(-2)}, {"v": uint64(4)}}, "v")
	require.True(t, ok)
	assert.Equal(t, [2]float64{-2, 7}, d)
}
