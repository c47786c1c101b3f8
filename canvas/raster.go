package canvas

import "math"

func (c *Canvas) set(x, y int, pixel uint16) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	off := y*c.stride + x*2
	if off+1 >= len(c.buf) {
		return
	}
	c.buf[off] = byte(pixel)
	c.buf[off+1] = byte(pixel >> 8)
}

// hline fills x0..x1 inclusive on row y.
func (c *Canvas) hline(x0, x1, y int, pixel uint16) {
	if y < 0 || y >= c.h {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	x0 = maxInt(x0, 0)
	x1 = minInt(x1, c.w-1)
	if x0 > x1 {
		return
	}
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	row := y * c.stride
	for x := x0; x <= x1; x++ {
		off := row + x*2
		if off+1 >= len(c.buf) {
			return
		}
		c.buf[off] = lo
		c.buf[off+1] = hi
	}
}

func (c *Canvas) fillRect(x0, y0, w, h int, pixel uint16) {
	if w <= 0 || h <= 0 {
		return
	}
	for y := y0; y < y0+h; y++ {
		c.hline(x0, x0+w-1, y, pixel)
	}
}

// line is Bresenham with a square pen of side width.
func (c *Canvas) line(x0, y0, x1, y1, width int, pixel uint16) {
	plot := func(x, y int) { c.set(x, y, pixel) }
	if width > 1 {
		lo := -(width - 1) / 2
		plot = func(x, y int) { c.fillRect(x+lo, y+lo, width, width, pixel) }
	}

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
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

// circle is the midpoint circle.
func (c *Canvas) circle(cx, cy, r int, pixel uint16) {
	x := r
	y := 0
	err := 0
	for x >= y {
		c.set(cx+x, cy+y, pixel)
		c.set(cx+y, cy+x, pixel)
		c.set(cx-x, cy+y, pixel)
		c.set(cx-y, cy+x, pixel)
		c.set(cx-x, cy-y, pixel)
		c.set(cx-y, cy-x, pixel)
		c.set(cx+x, cy-y, pixel)
		c.set(cx+y, cy-x, pixel)
		y++
		if err <= 0 {
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

// ring draws a circle outline width pixels thick, centered on r.
func (c *Canvas) ring(cx, cy, r, width int, pixel uint16) {
	outer := r + width/2
	inner := outer - width
	for y := -outer; y <= outer; y++ {
		dxo := isqrt(outer*outer - y*y)
		if inner < 0 || absInt(y) > inner {
			c.hline(cx-dxo, cx+dxo, cy+y, pixel)
			continue
		}
		dxi := isqrt(inner*inner - y*y)
		c.hline(cx-dxo, cx-dxi-1, cy+y, pixel)
		c.hline(cx+dxi+1, cx+dxo, cy+y, pixel)
	}
}

func (c *Canvas) fillCircle(cx, cy, r int, pixel uint16) {
	for y := -r; y <= r; y++ {
		dx := isqrt(r*r - y*y)
		c.hline(cx-dx, cx+dx, cy+y, pixel)
	}
}

// roundRectSpan returns the filled columns of row y inside the rounded
// rect, or ok=false when y is outside it.
func roundRectSpan(x0, y0, w, h, r, y int) (left, right int, ok bool) {
	if w <= 0 || h <= 0 || y < y0 || y >= y0+h {
		return 0, 0, false
	}
	r = clampCorner(r, w, h)
	inset := 0
	switch top, bottom := y0+r, y0+h-1-r; {
	case y < top:
		dy := top - y
		inset = r - isqrt(r*r-dy*dy)
	case y > bottom:
		dy := y - bottom
		inset = r - isqrt(r*r-dy*dy)
	}
	return x0 + inset, x0 + w - 1 - inset, true
}

// roundRectOutline strokes the rect with the pen inside its bounds; each
// row is the outer span minus the span of the rect inset by width.
func (c *Canvas) roundRectOutline(x0, y0, w, h, r, width int, pixel uint16) {
	if w <= 0 || h <= 0 {
		return
	}
	if width < 1 {
		width = 1
	}
	ix, iy := x0+width, y0+width
	iw, ih := w-2*width, h-2*width
	ir := maxInt(r-width, 0)
	for y := y0; y < y0+h; y++ {
		l, rr, _ := roundRectSpan(x0, y0, w, h, r, y)
		il, irr, inside := roundRectSpan(ix, iy, iw, ih, ir, y)
		if !inside {
			c.hline(l, rr, y, pixel)
			continue
		}
		if il > l {
			c.hline(l, il-1, y, pixel)
		}
		if irr < rr {
			c.hline(irr+1, rr, y, pixel)
		}
	}
}

func clampCorner(r, w, h int) int {
	if r < 0 {
		return 0
	}
	if m := minInt(w, h) / 2; r > m {
		return m
	}
	return r
}

func isqrt(v int) int {
	if v <= 0 {
		return 0
	}
	return int(math.Sqrt(float64(v)))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
