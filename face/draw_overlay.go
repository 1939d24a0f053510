package face

// erase clears a rectangle grown by pad pixels on every side.
func (e *Engine) erase(r Rect, pad int16) {
	e.surface.FillRoundRect(r.X-pad, r.Y-pad, r.W+2*pad, r.H+2*pad, e.render.Radius, e.bg)
}

func (e *Engine) eraseMouth() {
	if e.render.MouthVisible {
		m := e.render.Mouth
		e.surface.FillRect(m.X-2, m.Y-3, m.W+4, m.H+14, e.bg)
	}
}

func (e *Engine) blush(amount float32) {
	if amount <= 0.3 {
		return
	}
	s := e.surface
	l, r := e.render.Left, e.render.Right
	w := int16(10 * amount)
	h := int16(5 * amount)
	s.FillRoundRect(l.X-12, l.Y+l.H-5, w, h, 2, e.fg)
	if !e.params.Cyclops {
		s.FillRoundRect(r.X+r.W+2, r.Y+r.H-5, w, h, 2, e.fg)
	}
}

func (e *Engine) drawLove() {
	p := &e.params
	if p.Love < drawThreshold {
		return
	}
	if p.Heart >= eraseThreshold {
		for _, eye := range e.eyes() {
			e.erase(eye, 2)
		}
	}
	for _, eye := range e.eyes() {
		e.drawHeart(eye.CenterX(), eye.CenterY(), p.Heart)
	}
	e.blush(p.Love)
}

func (e *Engine) drawHeart(cx, cy int16, scale float32) {
	if scale < drawThreshold {
		return
	}
	s := e.surface
	scale *= 1 + sinf(e.params.HeartPulse)*0.15

	size := int16(28 * scale)
	r := size / 3
	off := size / 3

	s.FillCircle(cx-off+2, cy-off/3, r, e.fg)
	s.FillCircle(cx+off-2, cy-off/3, r, e.fg)
	s.FillTriangle(cx-size/2-2, cy+2, cx+size/2+2, cy+2, cx, cy+size/2+4, e.fg)
	s.FillRect(cx-off+2, cy-off/3, (off-2)*2, r+2, e.fg)

	if size > 16 {
		hl := max(size/10, 2)
		s.FillCircle(cx-off/2, cy-off/2, hl, e.bg)
	}
}

func (e *Engine) drawUwU() {
	p := &e.params
	if p.UwU < drawThreshold {
		return
	}
	if p.UwU >= eraseThreshold {
		for _, eye := range e.eyes() {
			e.erase(eye, 2)
		}
		e.eraseMouth()
	}
	for i, eye := range e.eyes() {
		e.drawU(eye, p.UwU, i == 0)
	}
	if e.render.MouthVisible {
		m := e.render.Mouth
		e.drawW(m.CenterX(), m.Y, m.W/3, 3)
	}
	e.blush(p.UwU)
}

// drawU draws a "U" shaped closed eye. The stroke is heavier on the outer side.
func (e *Engine) drawU(eye Rect, amount float32, left bool) {
	s := e.surface
	w := int16(float32(eye.W) * 0.8 * amount)
	if w < 4 {
		return
	}
	h := w / 2
	cx := eye.CenterX()
	top := eye.CenterY() - h/2
	half := float32(w) / 2

	for x := cx - w/2; x <= cx+w/2; x++ {
		n := float32(x-cx) / half
		y := top + h - int16(float32(h)*(1-n*n))
		thick := int16(2)
		if (left && x < cx) || (!left && x > cx) {
			thick = 3
		}
		for t := int16(0); t < thick; t++ {
			s.SetPixel(x, y+t, e.fg)
		}
	}
	// straight sides of the U
	s.DrawLine(cx-w/2, top-h/2, cx-w/2, top, e.fg)
	s.DrawLine(cx+w/2, top-h/2, cx+w/2, top, e.fg)
}

func (e *Engine) drawXD() {
	p := &e.params
	if p.XD < drawThreshold {
		return
	}
	if p.XD >= eraseThreshold {
		for _, eye := range e.eyes() {
			e.erase(eye, 2)
		}
		e.eraseMouth()
	}
	for i, eye := range e.eyes() {
		e.drawChevron(eye, p.XD, i == 0)
	}
	if e.render.MouthVisible {
		m := e.render.Mouth
		w := int16(float32(m.W+8) * p.XD)
		e.drawD(m.CenterX()-w/2, m.Y, w, 10)
	}
}

// drawChevron draws ">" for the left eye and "<" for the right.
func (e *Engine) drawChevron(eye Rect, amount float32, left bool) {
	s := e.surface
	w := int16(float32(eye.W) * 0.6 * amount)
	h := int16(float32(min(eye.H, eye.W)) * 0.7 * amount)
	if w < 3 || h < 3 {
		return
	}
	cx, cy := eye.CenterX(), eye.CenterY()
	tipX, backX := cx+w/2, cx-w/2
	if !left {
		tipX, backX = backX, tipX
	}
	for d := int16(-1); d <= 1; d++ {
		s.DrawLine(backX, cy-h/2+d, tipX, cy+d, e.fg)
		s.DrawLine(backX, cy+h/2+d, tipX, cy+d, e.fg)
	}
}

func (e *Engine) drawTears() {
	p := &e.params
	if p.Tears < drawThreshold {
		return
	}
	screenH := e.layout.ScreenH
	size := max(int16(4*p.Tears), 1)

	for i, eye := range e.eyes() {
		start := eye.Bottom()
		span := float32(screenH - start)
		if span <= 0 {
			continue
		}
		fall := p.TearFall + float32(i)*10
		y := start + int16(fall-span*float32(int(fall/span)))
		if y >= screenH-size {
			continue
		}
		x := eye.CenterX()
		e.surface.FillCircle(x, y+size, size, e.fg)
		e.surface.FillTriangle(x-size+1, y+size, x+size-1, y+size, x, y, e.fg)
	}
}

func (e *Engine) drawKnocked() {
	p := &e.params
	if p.Knocked < spiralThreshold {
		return
	}
	if p.Knocked >= eraseThreshold {
		for _, eye := range e.eyes() {
			e.erase(eye, 1)
		}
	}
	for _, eye := range e.eyes() {
		r := max(min(eye.W, eye.H)/2-2, 8)
		r = max(int16(float32(r)*p.Knocked), 2)
		e.drawSpiral(eye.CenterX(), eye.CenterY(), r)
	}
}

// drawSpiral draws a double-line spiral growing outward from the center.
func (e *Engine) drawSpiral(cx, cy, maxR int16) {
	s := e.surface
	angle := e.params.Spiral
	radius := float32(2)
	px, py := cx, cy
	for radius < float32(maxR) {
		x := cx + int16(cosf(angle)*radius)
		y := cy + int16(sinf(angle)*radius)
		s.DrawLine(px, py, x, y, e.fg)
		s.DrawLine(px+1, py, x+1, y, e.fg)
		px, py = x, y
		angle += 0.3
		radius += 0.4
	}
}
