package tui

import "slices"

// brailleDots maps a micro-pixel inside a cell (row, column) to its dot bit.
var brailleDots = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// brailleBuf is a canvas of w x h cells with 2x4 micro-pixels per cell.
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

func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleDots[my%4][mx%2]
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
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

// drawRing outlines a closed ring.
func (b *brailleBuf) drawRing(r [][2]int) {
	for i, a := range r {
		c := r[(i+1)%len(r)]
		b.drawLineMicro(a[0], a[1], c[0], c[1])
	}
}

// fillRings fills the area inside rings by the even-odd rule, one microgrid
// scanline at a time, so holes stay empty.
func (b *brailleBuf) fillRings(rings [][][2]int) {
	var xs []int
	for y := 0; y < b.h*4; y++ {
		xs = xs[:0]
		for _, r := range rings {
			for i, a := range r {
				c := r[(i+1)%len(r)]
				if a[1] == c[1] {
					continue
				}
				if (y >= a[1] && y < c[1]) || (y >= c[1] && y < a[1]) {
					t := float64(y-a[1]) / float64(c[1]-a[1])
					xs = append(xs, int(float64(a[0])+t*float64(c[0]-a[0])))
				}
			}
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := max(0, xs[i]); x <= min(xs[i+1], b.w*2-1); x++ {
				b.setPixel(x, y)
			}
		}
	}
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	row := make([]rune, b.w)
	for y := range b.h {
		for x, mask := range b.m[y] {
			row[x] = ' '
			if mask != 0 {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}
