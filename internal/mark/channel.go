// Package mark resolves the render channels of a polygon layer into a
// renderer-agnostic mark spec.
//
// Each channel binds to a scale and field, a bare field, a literal or the
// layer default. Position channels always bind to the chart's coordinate
// scales; lineJoin and miterLimit are always literals.
package mark

// Channel is one independently resolvable visual attribute of a mark.
type Channel int

const (
	ChannelX Channel = iota
	ChannelY
	ChannelFillColor
	ChannelStrokeColor
	ChannelStrokeWidth
	ChannelLineJoin
	ChannelMiterLimit
)

// Channels lists every channel in resolution order.
var Channels = []Channel{
	ChannelX,
	ChannelY,
	ChannelFillColor,
	ChannelStrokeColor,
	ChannelStrokeWidth,
	ChannelLineJoin,
	ChannelMiterLimit,
}

var channelNames = [...]string{
	ChannelX:           "x",
	ChannelY:           "y",
	ChannelFillColor:   "fillColor",
	ChannelStrokeColor: "strokeColor",
	ChannelStrokeWidth: "strokeWidth",
	ChannelLineJoin:    "lineJoin",
	ChannelMiterLimit:  "miterLimit",
}

func (c Channel) String() string {
	if c < 0 || int(c) >= len(channelNames) {
		return "unknown"
	}
	return channelNames[c]
}

// IsPosition reports whether the channel is implied by the polygon geometry.
func (c Channel) IsPosition() bool { return c == ChannelX || c == ChannelY }

// allowsLiteral reports whether a numeric attribute may bind as a literal.
func (c Channel) allowsLiteral() bool { return c == ChannelStrokeWidth }

// LineJoin is the shape of stroke joins.
type LineJoin string

const (
	LineJoinMiter LineJoin = "miter"
	LineJoinRound LineJoin = "round"
	LineJoinBevel LineJoin = "bevel"
)

// LineJoins lists the accepted line joins.
var LineJoins = []LineJoin{LineJoinMiter, LineJoinRound, LineJoinBevel}
