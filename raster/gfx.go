package raster

import "nifri2/proto-face/face"

// The primitives follow the Adafruit GFX algorithms, pixel for pixel. Arithmetic is in
// int so int16 coordinates cannot overflow.

func (c *Canvas) hline(x, y, w int, col face.Color) {
	if w < 0 {
		x += w + 1
		w = -w
	}
	if y < 0 || y >= int(c.h) {
		return
	}
	x0 := max(x, 0)
	x1 := min(x+w, int(c.w))
	for i := x0; i < x1; i++ {
		c.plot(i, y, col)
	}
}

func (c *Canvas) vline(x, y, h int, col face.Color) {
	if h < 0 {
		y += h + 1
		h = -h
	}
	if x < 0 || x >= int(c.w) {
		return
	}
	y0 := max(y, 0)
	y1 := min(y+h, int(c.h))
	for i := y0; i < y1; i++ {
		c.plot(x, i, col)
	}
}

func (c *Canvas) DrawLine(x0, y0, x1, y1 int16, col face.Color) {
	c.line(int(x0), int(y0), int(x1), int(y1), col)
}

func (c *Canvas) line(x0, y0, x1, y1 int, col face.Color) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dx := x1 - x0
	dy := abs(y1 - y0)
	err := dx / 2
	ystep := 1
	if y0 > y1 {
		ystep = -1
	}
	for ; x0 <= x1; x0++ {
		if steep {
			c.plot(y0, x0, col)
		} else {
			c.plot(x0, y0, col)
		}
		err -= dy
		if err < 0 {
			y0 += ystep
			err += dx
		}
	}
}

func (c *Canvas) FillRect(x, y, w, h int16, col face.Color) {
	for i := 0; i < int(h); i++ {
		c.hline(int(x), int(y)+i, int(w), col)
	}
}

func (c *Canvas) DrawRect(x, y, w, h int16, col face.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	xi, yi, wi, hi := int(x), int(y), int(w), int(h)
	c.hline(xi, yi, wi, col)
	c.hline(xi, yi+hi-1, wi, col)
	c.vline(xi, yi, hi, col)
	c.vline(xi+wi-1, yi, hi, col)
}

func (c *Canvas) DrawCircle(x, y, r int16, col face.Color) {
	x0, y0, ri := int(x), int(y), int(r)
	if ri < 0 {
		return
	}
	f := 1 - ri
	ddx, ddy := 1, -2*ri
	px, py := 0, ri

	c.plot(x0, y0+ri, col)
	c.plot(x0, y0-ri, col)
	c.plot(x0+ri, y0, col)
	c.plot(x0-ri, y0, col)
	for px < py {
		if f >= 0 {
			py--
			ddy += 2
			f += ddy
		}
		px++
		ddx += 2
		f += ddx
		c.plot(x0+px, y0+py, col)
		c.plot(x0-px, y0+py, col)
		c.plot(x0+px, y0-py, col)
		c.plot(x0-px, y0-py, col)
		c.plot(x0+py, y0+px, col)
		c.plot(x0-py, y0+px, col)
		c.plot(x0+py, y0-px, col)
		c.plot(x0-py, y0-px, col)
	}
}

func (c *Canvas) FillCircle(x, y, r int16, col face.Color) {
	if r < 0 {
		return
	}
	c.vline(int(x), int(y)-int(r), 2*int(r)+1, col)
	c.fillCircleHelper(int(x), int(y), int(r), 3, 0, col)
}

// circleHelper draws the quarter arcs selected by corners (1 top-left, 2 top-right,
// 4 bottom-right, 8 bottom-left).
func (c *Canvas) circleHelper(x0, y0, r int, corners uint8, col face.Color) {
	f := 1 - r
	ddx, ddy := 1, -2*r
	x, y := 0, r
	for x < y {
		if f >= 0 {
			y--
			ddy += 2
			f += ddy
		}
		x++
		ddx += 2
		f += ddx
		if corners&4 != 0 {
			c.plot(x0+x, y0+y, col)
			c.plot(x0+y, y0+x, col)
		}
		if corners&2 != 0 {
			c.plot(x0+x, y0-y, col)
			c.plot(x0+y, y0-x, col)
		}
		if corners&8 != 0 {
			c.plot(x0-y, y0+x, col)
			c.plot(x0-x, y0+y, col)
		}
		if corners&1 != 0 {
			c.plot(x0-y, y0-x, col)
			c.plot(x0-x, y0-y, col)
		}
	}
}

// fillCircleHelper fills the right (1) and/or left (2) half of a circle, stretched
// vertically by delta.
func (c *Canvas) fillCircleHelper(x0, y0, r int, sides uint8, delta int, col face.Color) {
	f := 1 - r
	ddx, ddy := 1, -2*r
	x, y := 0, r
	px, py := x, y
	delta++
	for x < y {
		if f >= 0 {
			y--
			ddy += 2
			f += ddy
		}
		x++
		ddx += 2
		f += ddx
		if x < y+1 {
			if sides&1 != 0 {
				c.vline(x0+x, y0-y, 2*y+delta, col)
			}
			if sides&2 != 0 {
				c.vline(x0-x, y0-y, 2*y+delta, col)
			}
		}
		if y != py {
			if sides&1 != 0 {
				c.vline(x0+py, y0-px, 2*px+delta, col)
			}
			if sides&2 != 0 {
				c.vline(x0-py, y0-px, 2*px+delta, col)
			}
			py = y
		}
		px = x
	}
}

func (c *Canvas) DrawRoundRect(x, y, w, h, r int16, col face.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	xi, yi, wi, hi := int(x), int(y), int(w), int(h)
	ri := clampRadius(int(r), wi, hi)
	c.hline(xi+ri, yi, wi-2*ri, col)
	c.hline(xi+ri, yi+hi-1, wi-2*ri, col)
	c.vline(xi, yi+ri, hi-2*ri, col)
	c.vline(xi+wi-1, yi+ri, hi-2*ri, col)
	c.circleHelper(xi+ri, yi+ri, ri, 1, col)
	c.circleHelper(xi+wi-ri-1, yi+ri, ri, 2, col)
	c.circleHelper(xi+wi-ri-1, yi+hi-ri-1, ri, 4, col)
	c.circleHelper(xi+ri, yi+hi-ri-1, ri, 8, col)
}

func (c *Canvas) FillRoundRect(x, y, w, h, r int16, col face.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	xi, yi, wi, hi := int(x), int(y), int(w), int(h)
	ri := clampRadius(int(r), wi, hi)
	for i := xi + ri; i < xi+wi-ri; i++ {
		c.vline(i, yi, hi, col)
	}
	c.fillCircleHelper(xi+wi-ri-1, yi+ri, ri, 1, hi-2*ri-1, col)
	c.fillCircleHelper(xi+ri, yi+ri, ri, 2, hi-2*ri-1, col)
}

func (c *Canvas) FillTriangle(x0, y0, x1, y1, x2, y2 int16, col face.Color) {
	ax, ay := int(x0), int(y0)
	bx, by := int(x1), int(y1)
	cx, cy := int(x2), int(y2)

	// sort by y: ay <= by <= cy
	if ay > by {
		ax, ay, bx, by = bx, by, ax, ay
	}
	if by > cy {
		bx, by, cx, cy = cx, cy, bx, by
	}
	if ay > by {
		ax, ay, bx, by = bx, by, ax, ay
	}

	if ay == cy {
		lo := min(ax, bx, cx)
		hi := max(ax, bx, cx)
		c.hline(lo, ay, hi-lo+1, col)
		return
	}

	dx01, dy01 := bx-ax, by-ay
	dx02, dy02 := cx-ax, cy-ay
	dx12, dy12 := cx-bx, cy-by
	sa, sb := 0, 0

	last := by - 1
	if by == cy {
		last = by
	}
	y := ay
	for ; y <= last; y++ {
		a := ax + sa/dy01
		b := ax + sb/dy02
		sa += dx01
		sb += dx02
		if a > b {
			a, b = b, a
		}
		c.hline(a, y, b-a+1, col)
	}

	sa = dx12 * (y - by)
	sb = dx02 * (y - ay)
	for ; y <= cy; y++ {
		a := bx + sa/dy12
		b := ax + sb/dy02
		sa += dx12
		sb += dx02
		if a > b {
			a, b = b, a
		}
		c.hline(a, y, b-a+1, col)
	}
}

func clampRadius(r, w, h int) int {
	return max(min(r, w/2, h/2), 0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
