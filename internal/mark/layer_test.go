package mark

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLineJoin(t *testing.T) {
	l := NewLayer("l")
	assert.Equal(t, LineJoinMiter, l.LineJoin())

	for _, in := range []string{"miter", "ROUND", "Bevel"} {
		assert.NoError(t, l.SetLineJoin(in), in)
	}
	assert.Equal(t, LineJoinBevel, l.LineJoin())

	for _, in := range []any{"square", "", 1, nil, LineJoinRound} {
		err := l.SetLineJoin(in)
		assert.ErrorIs(t, err, ErrValidation, "%v", in)
		assert.Equal(t, LineJoinBevel, l.LineJoin())
	}
}

func TestSetMiterLimit(t *testing.T) {
	l := NewLayer("l")
	assert.Equal(t, 10.0, l.MiterLimit())

	assert.NoError(t, l.SetMiterLimit(0))
	assert.NoError(t, l.SetMiterLimit(float32(2.5)))
	assert.Equal(t, 2.5, l.MiterLimit())

	for _, in := range []any{-1, "4", math.NaN(), nil} {
		assert.ErrorIs(t, l.SetMiterLimit(in), ErrValidation, "%v", in)
		assert.Equal(t, 2.5, l.MiterLimit())
	}
}
