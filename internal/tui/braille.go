package tui

import "sort"

// brailleBuf is a dot matrix of 2x4 dots per terminal cell, stored as one
// Unicode braille mask per cell.
type brailleBuf struct {
	cols, rows int
	cells      []uint8
}

// dotBits[row][col] is the braille bit for a dot inside a cell.
var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

func newBrailleBuf(cols, rows int) *brailleBuf {
	return &brailleBuf{cols: cols, rows: rows, cells: make([]uint8, cols*rows)}
}

// setPixel sets the dot at microgrid position (mx, my). Dots off the grid
// are dropped.
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 || mx >= b.cols*2 || my >= b.rows*4 {
		return
	}
	b.cells[(my/4)*b.cols+mx/2] |= dotBits[my%4][mx%2]
}

func (b *brailleBuf) cell(cx, cy int) uint8 { return b.cells[cy*b.cols+cx] }

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

// fillRing fills a closed ring with the even-odd rule, one microgrid
// scanline at a time.
func (b *brailleBuf) fillRing(ring [][2]int) {
	for y := 0; y < b.rows*4; y++ {
		var xs []int
		for i := range ring {
			a := ring[i]
			c := ring[(i+1)%len(ring)]
			if a[1] == c[1] { // horizontal edge: skip
				continue
			}
			y0, y1 := a[1], c[1]
			if (y >= y0 && y < y1) || (y >= y1 && y < y0) {
				t := float64(y-y0) / float64(y1-y0)
				xs = append(xs, int(float64(a[0])+t*float64(c[0]-a[0])))
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := max(0, xs[i]); x <= min(xs[i+1], b.cols*2-1); x++ {
				b.setPixel(x, y)
			}
		}
	}
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.rows)
	row := make([]rune, b.cols)
	for cy := range out {
		for cx := range row {
			row[cx] = ' '
			if mask := b.cell(cx, cy); mask != 0 {
				row[cx] = rune(0x2800 + int(mask))
			}
		}
		out[cy] = string(row)
	}
	return out
}
