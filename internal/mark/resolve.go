package mark

// Chart names the coordinate scales the polygon positions bind to.
type Chart interface {
	XScaleName() string
	YScaleName() string
}

const (
	FormatPolys    = "polys"
	ShapeColGroup  = "mapd"
	positionFieldX = "x"
	positionFieldY = "y"
)

// ResolveChannels resolves every channel of the layer into a mark spec for
// the given query. It fails on the first invalid channel.
func ResolveChannels(l *Layer, chart Chart, query string) (*MarkSpec, error) {
	spec := &MarkSpec{
		Data: Data{
			Name:          l.Name,
			Format:        FormatPolys,
			ShapeColGroup: ShapeColGroup,
			SQL:           query,
		},
		Mark: Mark{
			Type:       FormatPolys,
			From:       l.Name,
			Properties: make(map[Channel]Binding, len(Channels)),
		},
	}
	for _, ch := range Channels {
		b, sc, err := l.resolve(ch, chart)
		if err != nil {
			return nil, err
		}
		spec.Mark.Properties[ch] = b
		if sc != nil {
			spec.Scales = append(spec.Scales, sc)
		}
	}
	return spec, nil
}

// resolve returns the binding for one channel and the scale it references, if any.
func (l *Layer) resolve(ch Channel, chart Chart) (Binding, Scale, error) {
	switch ch {
	case ChannelX:
		return Binding{Kind: BindScaleField, Scale: chart.XScaleName(), Field: positionFieldX}, nil, nil
	case ChannelY:
		return Binding{Kind: BindScaleField, Scale: chart.YScaleName(), Field: positionFieldY}, nil, nil
	case ChannelFillColor:
		return l.resolveData(ch, l.FillColorScale, l.FillColorAttr, l.DefaultFillColor)
	case ChannelStrokeColor:
		return l.resolveData(ch, l.StrokeColorScale, l.StrokeColorAttr, l.DefaultStrokeColor)
	case ChannelStrokeWidth:
		return l.resolveData(ch, l.StrokeWidthScale, l.StrokeWidthAttr, l.DefaultStrokeWidth)
	case ChannelLineJoin:
		return Binding{Kind: BindDefault, Value: string(l.lineJoin)}, nil, nil
	case ChannelMiterLimit:
		return Binding{Kind: BindDefault, Value: l.miterLimit}, nil, nil
	}
	return Binding{}, nil, &ConfigurationError{Layer: l.Name, Channel: ch, Reason: "unknown channel"}
}

func (l *Layer) resolveData(ch Channel, sc Scale, attr any, def any) (Binding, Scale, error) {
	field, isField := attr.(string)
	if isField && field == "" {
		attr = nil
	}
	if sc != nil {
		if sc.Name() == "" {
			return Binding{}, nil, &ConfigurationError{Layer: l.Name, Channel: ch, Reason: "scale missing name"}
		}
		if attr == nil {
			return Binding{}, nil, &ConfigurationError{Layer: l.Name, Channel: ch, Reason: "attribute required when scale present"}
		}
		if !isField {
			return Binding{}, nil, &TypeError{Layer: l.Name, Channel: ch, Got: attr, Expected: "a string field reference when a scale is present"}
		}
		return Binding{Kind: BindScaleField, Scale: sc.Name(), Field: field}, sc, nil
	}
	if attr == nil {
		return Binding{Kind: BindDefault, Value: def}, nil, nil
	}
	if isField {
		return Binding{Kind: BindField, Field: field}, nil, nil
	}
	if n, ok := ToNumber(attr); ok && ch.allowsLiteral() {
		return Binding{Kind: BindLiteral, Value: n}, nil, nil
	}
	expected := "a string field reference"
	if ch.allowsLiteral() {
		expected = "a string field reference or a number"
	}
	return Binding{}, nil, &TypeError{Layer: l.Name, Channel: ch, Got: attr, Expected: expected}
}
