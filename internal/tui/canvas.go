package tui

// canvas is a braille rasterizer: every terminal cell carries a 2x4 grid of
// micro-pixels encoded as a Unicode braille glyph.
type canvas struct {
	w, h  int // in cells
	cells []uint8
}

// brailleBits maps a (column, row) micro offset inside a cell to its bit in
// the braille mask (U+2800 block layout).
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func newCanvas(w, h int) *canvas {
	return &canvas{w: w, h: h, cells: make([]uint8, w*h)}
}

// set lights the micro-pixel at (mx, my); out-of-bounds is a no-op.
func (c *canvas) set(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= c.w || cy >= c.h {
		return
	}
	c.cells[cy*c.w+cx] |= brailleBits[mx%2][my%4]
}

// line rasterizes a segment on the microgrid using Bresenham.
func (c *canvas) line(x0, y0, x1, y1 int) {
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
		c.set(x0, y0)
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

// rows renders the canvas, one string per cell row; empty cells are spaces.
func (c *canvas) rows() []string {
	out := make([]string, c.h)
	row := make([]rune, c.w)
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			mask := c.cells[y*c.w+x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
