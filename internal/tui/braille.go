package tui

import "sort"

// brailleDots[row][col] is the dot bit of a braille cell for the micro-pixel
// at (col, row) of its 2x4 grid.
var brailleDots = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// brailleBuf is a w x h cell canvas addressed in micro-pixels, two across
// and four down per cell.
type brailleBuf struct {
	w, h int
	m    [][]uint8
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// setPixel sets a micro-pixel; points off the canvas are dropped.
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 || mx >= b.w*2 || my >= b.h*4 {
		return
	}
	b.m[my/4][mx/2] |= brailleDots[my%4][mx%2]
}

// mask returns the dot mask of cell (x, y), zero off the canvas.
func (b *brailleBuf) mask(x, y int) uint8 {
	if y < 0 || y >= b.h || x < 0 || x >= b.w {
		return 0
	}
	return b.m[y][x]
}

// drawLineMicro draws a Bresenham line between two micro-pixels.
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// strokeRing draws a closed ring outline.
func (b *brailleBuf) strokeRing(ring [][2]int) {
	for i, a := range ring {
		c := ring[(i+1)%len(ring)]
		b.drawLineMicro(a[0], a[1], c[0], c[1])
	}
}

// fillRing fills a ring with the even-odd rule, one scanline per micro row.
func (b *brailleBuf) fillRing(ring [][2]int) {
	var xs []int
	for y := 0; y < b.h*4; y++ {
		xs = xs[:0]
		for i, a := range ring {
			c := ring[(i+1)%len(ring)]
			if a[1] == c[1] {
				continue
			}
			if (y >= a[1] && y < c[1]) || (y >= c[1] && y < a[1]) {
				t := float64(y-a[1]) / float64(c[1]-a[1])
				xs = append(xs, a[0]+int(t*float64(c[0]-a[0])))
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := max(0, xs[i]); x <= min(xs[i+1], b.w*2-1); x++ {
				b.setPixel(x, y)
			}
		}
	}
}

// cells returns one braille glyph per cell, blank where nothing is set.
func (b *brailleBuf) cells() [][]string {
	out := make([][]string, b.h)
	for y := range out {
		row := make([]string, b.w)
		for x := range row {
			row[x] = string(brailleRune(b.m[y][x]))
		}
		out[y] = row
	}
	return out
}

func brailleRune(mask uint8) rune {
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
