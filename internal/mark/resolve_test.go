package mark

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testChart struct{}

func (testChart) XScaleName() string { return "x" }
func (testChart) YScaleName() string { return "y" }

type namedScale struct{ name string }

func (s *namedScale) Name() string { return s.name }

func TestResolveScaleAndField(t *testing.T) {
	fill := &namedScale{"fill"}
	stroke := &namedScale{"stroke"}
	width := &namedScale{"width"}
	l := NewLayer("counties")
	l.FillColorScale, l.FillColorAttr = fill, "pop"
	l.StrokeColorScale, l.StrokeColorAttr = stroke, "state"
	l.StrokeWidthScale, l.StrokeWidthAttr = width, "area"

	spec, err := ResolveChannels(l, testChart{}, "SELECT 1")
	require.NoError(t, err)

	assert.Equal(t, Binding{Kind: BindScaleField, Scale: "fill", Field: "pop"}, spec.Mark.Properties[ChannelFillColor])
	assert.Equal(t, Binding{Kind: BindScaleField, Scale: "stroke", Field: "state"}, spec.Mark.Properties[ChannelStrokeColor])
	assert.Equal(t, Binding{Kind: BindScaleField, Scale: "width", Field: "area"}, spec.Mark.Properties[ChannelStrokeWidth])
	require.Len(t, spec.Scales, 3)
	assert.Same(t, fill, spec.Scales[0])
	assert.Same(t, stroke, spec.Scales[1])
	assert.Same(t, width, spec.Scales[2])

	// every scale binding has its scale in the list
	for _, ch := range Channels {
		b := spec.Mark.Properties[ch]
		if b.Kind == BindScaleField && !ch.IsPosition() {
			assert.NotNil(t, spec.Scale(b.Scale), ch.String())
		}
	}
}

func TestResolveSharedScaleIsAppendedPerUse(t *testing.T) {
	shared := &namedScale{"color"}
	l := NewLayer("l")
	l.FillColorScale, l.FillColorAttr = shared, "a"
	l.StrokeColorScale, l.StrokeColorAttr = shared, "b"

	spec, err := ResolveChannels(l, testChart{}, "")
	require.NoError(t, err)
	assert.Len(t, spec.Scales, 2)
}

func TestResolvePositionAndLiterals(t *testing.T) {
	l := NewLayer("l")
	require.NoError(t, l.SetLineJoin("Round"))
	require.NoError(t, l.SetMiterLimit(4))

	spec, err := ResolveChannels(l, testChart{}, "q")
	require.NoError(t, err)
	assert.Equal(t, Binding{Kind: BindScaleField, Scale: "x", Field: "x"}, spec.Mark.Properties[ChannelX])
	assert.Equal(t, Binding{Kind: BindScaleField, Scale: "y", Field: "y"}, spec.Mark.Properties[ChannelY])
	assert.Equal(t, "round", spec.Mark.Properties[ChannelLineJoin].Value)
	assert.Equal(t, 4.0, spec.Mark.Properties[ChannelMiterLimit].Value)
	assert.Empty(t, spec.Scales)
	assert.Equal(t, Data{Name: "l", Format: "polys", ShapeColGroup: "mapd", SQL: "q"}, spec.Data)
}

func TestResolveFieldAndDefaults(t *testing.T) {
	gradient := map[string]any{"type": "linear", "stops": []string{"#000", "#fff"}}
	l := NewLayer("l")
	l.FillColorAttr = "color"
	l.DefaultStrokeColor = gradient
	l.DefaultStrokeWidth = 2

	spec, err := ResolveChannels(l, testChart{}, "")
	require.NoError(t, err)
	assert.Equal(t, Binding{Kind: BindField, Field: "color"}, spec.Mark.Properties[ChannelFillColor])
	assert.Equal(t, Binding{Kind: BindDefault, Value: gradient}, spec.Mark.Properties[ChannelStrokeColor])
	assert.Equal(t, Binding{Kind: BindDefault, Value: 2.0}, spec.Mark.Properties[ChannelStrokeWidth])
}

func TestResolveNumericAttr(t *testing.T) {
	l := NewLayer("l")
	l.StrokeWidthAttr = 3
	spec, err := ResolveChannels(l, testChart{}, "")
	require.NoError(t, err)
	assert.Equal(t, Binding{Kind: BindLiteral, Value: 3.0}, spec.Mark.Properties[ChannelStrokeWidth])

	for _, setup := range []func(*Layer){
		func(l *Layer) { l.FillColorAttr = 12 },
		func(l *Layer) { l.StrokeColorAttr = 1.5 },
		func(l *Layer) { l.StrokeWidthAttr = true },
	} {
		l := NewLayer("l")
		setup(l)
		_, err := ResolveChannels(l, testChart{}, "")
		var te *TypeError
		require.True(t, errors.As(err, &te), "%v", err)
		assert.ErrorIs(t, err, ErrType)
	}
}

func TestResolveConfigurationErrors(t *testing.T) {
	l := NewLayer("l")
	l.FillColorScale, l.FillColorAttr = &namedScale{""}, "pop"
	_, err := ResolveChannels(l, testChart{}, "")
	var ce *ConfigurationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, ChannelFillColor, ce.Channel)
	assert.Contains(t, err.Error(), "scale missing name")

	l = NewLayer("l")
	l.StrokeWidthScale = &namedScale{"w"}
	_, err = ResolveChannels(l, testChart{}, "")
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "attribute required")

	l = NewLayer("l")
	l.StrokeColorScale, l.StrokeColorAttr = &namedScale{"s"}, 7
	_, err = ResolveChannels(l, testChart{}, "")
	assert.ErrorIs(t, err, ErrType)
}
