package mark

import "encoding/json"

// BindingKind tells how a channel was resolved.
type BindingKind int

const (
	// BindScaleField maps a column through a named scale.
	BindScaleField BindingKind = iota
	// BindField uses a column's values directly.
	BindField
	// BindLiteral is a constant taken from the attribute itself.
	BindLiteral
	// BindDefault is the layer's default value for the channel.
	BindDefault
)

// Binding is the resolved value of one channel.
type Binding struct {
	Kind  BindingKind
	Scale string
	Field string
	Value any
}

// MarshalJSON writes scale and field bindings as objects and literals bare.
func (b Binding) MarshalJSON() ([]byte, error) {
	switch b.Kind {
	case BindScaleField:
		return json.Marshal(struct {
			Scale string `json:"scale"`
			Field string `json:"field"`
		}{b.Scale, b.Field})
	case BindField:
		return json.Marshal(struct {
			Field string `json:"field"`
		}{b.Field})
	}
	return json.Marshal(b.Value)
}

// Data describes the data source of the mark.
type Data struct {
	Name          string `json:"name"`
	Format        string `json:"format"`
	ShapeColGroup string `json:"shapeColGroup"`
	SQL           string `json:"sql"`
}

// Mark is the polygon mark and its channel bindings.
type Mark struct {
	Type       string
	From       string
	Properties map[Channel]Binding
}

func (m Mark) MarshalJSON() ([]byte, error) {
	props := make(map[string]Binding, len(m.Properties))
	for ch, b := range m.Properties {
		props[ch.String()] = b
	}
	return json.Marshal(struct {
		Type       string             `json:"type"`
		From       map[string]string  `json:"from"`
		Properties map[string]Binding `json:"properties"`
	}{m.Type, map[string]string{"data": m.From}, props})
}

// MarkSpec is the renderer-agnostic description of a polygon layer. Scales
// holds every scale a binding references, in resolution order.
type MarkSpec struct {
	Data   Data
	Scales []Scale
	Mark   Mark
}

func (s *MarkSpec) MarshalJSON() ([]byte, error) {
	scales := make([]any, 0, len(s.Scales))
	for _, sc := range s.Scales {
		if _, ok := sc.(json.Marshaler); ok {
			scales = append(scales, sc)
			continue
		}
		scales = append(scales, map[string]string{"name": sc.Name()})
	}
	return json.Marshal(struct {
		Data   Data  `json:"data"`
		Scales []any `json:"scales"`
		Mark   Mark  `json:"mark"`
	}{s.Data, scales, s.Mark})
}

// Property returns the binding of a channel.
func (s *MarkSpec) Property(ch Channel) (Binding, bool) {
	b, ok := s.Mark.Properties[ch]
	return b, ok
}

// Scale looks up a referenced scale by name.
func (s *MarkSpec) Scale(name string) Scale {
	for _, sc := range s.Scales {
		if sc.Name() == name {
			return sc
		}
	}
	return nil
}

// Fields returns the columns referenced by the non-position channels, in
// resolution order and without repeats.
func (s *MarkSpec) Fields() []string {
	var out []string
	seen := map[string]bool{}
	for _, ch := range Channels {
		if ch.IsPosition() {
			continue
		}
		b, ok := s.Mark.Properties[ch]
		if !ok || b.Field == "" || seen[b.Field] {
			continue
		}
		seen[b.Field] = true
		out = append(out, b.Field)
	}
	return out
}

// Value resolves a channel for one data row. Field bindings read the row,
// scale bindings map the row value through the scale when it is a Mapper,
// and literal or default bindings return their value. def is used when the
// row has no usable value.
func (s *MarkSpec) Value(ch Channel, row map[string]any, def any) any {
	b, ok := s.Mark.Properties[ch]
	if !ok {
		return def
	}
	switch b.Kind {
	case BindScaleField:
		v, ok := row[b.Field]
		if !ok || v == nil {
			return def
		}
		m, ok := s.Scale(b.Scale).(Mapper)
		if !ok {
			return v
		}
		if out, ok := m.Map(v); ok {
			return out
		}
		return def
	case BindField:
		if v, ok := row[b.Field]; ok && v != nil {
			return v
		}
		return def
	}
	return b.Value
}
