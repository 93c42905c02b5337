package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrailleSetPixel(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0)
	b.setPixel(1, 3)
	b.setPixel(2, 1)
	b.setPixel(-1, 0)
	b.setPixel(4, 0)
	b.setPixel(0, 4)

	assert.Equal(t, uint8(0x01|0x80), b.mask(0, 0))
	assert.Equal(t, uint8(0x02), b.mask(1, 0))
	assert.Equal(t, uint8(0), b.mask(5, 5))
	assert.Equal(t, [][]string{{"⢁", "⠂"}}, b.cells())
}

func TestBrailleFillAndStroke(t *testing.T) {
	square := [][2]int{{0, 0}, {3, 0}, {3, 7}, {0, 7}}

	filled := newBrailleBuf(2, 2)
	filled.fillRing(square)
	// scanlines are half-open, so the bottom micro row stays clear
	for x := 0; x < 2; x++ {
		assert.Equal(t, uint8(0xff), filled.mask(x, 0), "cell %d,0", x)
		assert.Equal(t, uint8(0x3f), filled.mask(x, 1), "cell %d,1", x)
	}

	outline := newBrailleBuf(2, 2)
	outline.strokeRing(square)
	// below the top edge only the left column is drawn
	assert.Equal(t, uint8(0xff)&^brailleDots[1][1]&^brailleDots[2][1]&^brailleDots[3][1], outline.mask(0, 0))
}

func TestBrailleDiagonalLine(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.drawLineMicro(0, 0, 3, 3)
	assert.Equal(t, brailleDots[0][0]|brailleDots[1][1], b.mask(0, 0))
	assert.Equal(t, brailleDots[2][0]|brailleDots[3][1], b.mask(1, 0))
}
