package mark

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upperScale struct{ namedScale }

func (upperScale) Map(v any) (any, bool) {
	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	return "#" + s, true
}

func TestMarkSpecJSON(t *testing.T) {
	l := NewLayer("polys")
	l.FillColorScale, l.FillColorAttr = &namedScale{"fill"}, "pop"
	l.StrokeColorAttr = "edge"
	l.StrokeWidthAttr = 2

	spec, err := ResolveChannels(l, testChart{}, "SELECT *")
	require.NoError(t, err)
	out, err := json.Marshal(spec)
	require.NoError(t, err)

	assert.JSONEq(t, `{
	  "data": {"name": "polys", "format": "polys", "shapeColGroup": "mapd", "sql": "SELECT *"},
	  "scales": [{"name": "fill"}],
	  "mark": {
	    "type": "polys",
	    "from": {"data": "polys"},
	    "properties": {
	      "x": {"scale": "x", "field": "x"},
	      "y": {"scale": "y", "field": "y"},
	      "fillColor": {"scale": "fill", "field": "pop"},
	      "strokeColor": {"field": "edge"},
	      "strokeWidth": 2,
	      "lineJoin": "miter",
	      "miterLimit": 10
	    }
	  }
	}`, string(out))
}

func TestMarkSpecFieldsAndValue(t *testing.T) {
	l := NewLayer("l")
	l.FillColorScale, l.FillColorAttr = &upperScale{namedScale{"fill"}}, "code"
	l.StrokeColorAttr = "code"
	l.StrokeWidthAttr = "w"

	spec, err := ResolveChannels(l, testChart{}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"code", "w"}, spec.Fields())

	row := map[string]any{"code": "abc", "w": 3.0}
	assert.Equal(t, "#abc", spec.Value(ChannelFillColor, row, "def"))
	assert.Equal(t, "abc", spec.Value(ChannelStrokeColor, row, "def"))
	assert.Equal(t, 3.0, spec.Value(ChannelStrokeWidth, row, 1.0))
	assert.Equal(t, "def", spec.Value(ChannelFillColor, map[string]any{"code": 5}, "def"))
	assert.Equal(t, "def", spec.Value(ChannelStrokeColor, map[string]any{}, "def"))
	assert.Equal(t, "miter", spec.Value(ChannelLineJoin, row, nil))
}
