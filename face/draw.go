package face

// draw composites one frame in fixed order: eyes, eyelids, mouth, sweat, exclusive
// overlays. The surface is flushed at the end.
func (e *Engine) draw() {
	s := e.surface
	s.Clear()
	e.drawEyes()
	e.drawEyelids()
	if e.mouthEnabled {
		e.drawMouth()
	}
	e.drawSweat()
	e.drawLove()
	e.drawUwU()
	e.drawXD()
	e.drawTears()
	e.drawKnocked()
	s.Flush()
}

func (e *Engine) eyes() []Rect {
	if e.params.Cyclops {
		return e.eyeBuf[:1]
	}
	return e.eyeBuf[:2]
}

func (e *Engine) drawEyes() {
	rs := &e.render
	e.eyeBuf[0], e.eyeBuf[1] = rs.Left, rs.Right
	for _, r := range e.eyes() {
		e.surface.FillRoundRect(r.X, r.Y, r.W, r.H, rs.Radius, e.fg)
	}
}

func (e *Engine) drawEyelids() {
	p := &e.params
	rs := &e.render
	s := e.surface
	l, r := rs.Left, rs.Right

	// tired: outer corners droop
	if p.Fatigue > drawThreshold {
		droop := int16(float32(l.H) * 0.4 * p.Fatigue)
		s.FillTriangle(l.X, l.Y-1, l.X+l.W, l.Y-1, l.X, l.Y+droop, e.bg)
		if !p.Cyclops {
			s.FillTriangle(r.X, r.Y-1, r.X+r.W, r.Y-1, r.X+r.W, r.Y+droop, e.bg)
		}
	}

	// angry: inner corners droop
	if p.Anger > drawThreshold {
		droop := int16(float32(l.H) * 0.4 * p.Anger)
		s.FillTriangle(l.X, l.Y-1, l.X+l.W, l.Y-1, l.X+l.W, l.Y+droop, e.bg)
		if !p.Cyclops {
			s.FillTriangle(r.X, r.Y-1, r.X+r.W, r.Y-1, r.X, r.Y+droop, e.bg)
		}
	}

	// happy: rounded mask pushed up from below
	if p.Joy > drawThreshold {
		lift := int16(float32(l.H) * 0.5 * p.Joy)
		h := e.layout.EyeH
		for _, eye := range e.eyes() {
			s.FillRoundRect(eye.X-1, eye.Y+eye.H-lift+1, eye.W+2, h, rs.Radius, e.bg)
		}
	}
}

func (e *Engine) drawMouth() {
	rs := &e.render
	if !rs.MouthVisible {
		return
	}
	s := e.surface
	m := rs.Mouth
	cx := m.CenterX()
	open := e.params.MouthOpenness
	openH := int16(open * 8)

	switch e.params.shapeShown() {
	case MouthSmile:
		if open > drawThreshold {
			w := m.W - 4
			h := 4 + openH
			s.FillRoundRect(m.X+2, m.Y, w, h, h/2, e.fg)
			if openH > 2 {
				s.FillRoundRect(m.X+4, m.Y+2, w-4, h-4, (h-4)/2, e.bg)
			}
			return
		}
		e.parabola(m, 5, true)
	case MouthFrown:
		e.parabola(m, 4, false)
	case MouthOpen:
		h := 10 + openH
		s.FillRoundRect(m.X+4, m.Y-2, m.W-8, h, 4, e.fg)
		s.FillRoundRect(m.X+6, m.Y, m.W-12, h-4, 3, e.bg)
	case MouthOoo:
		r := 5 + openH/3
		s.FillCircle(cx, m.Y+r-2, r, e.fg)
		s.FillCircle(cx, m.Y+r-2, r-2, e.bg)
	case MouthFlat:
		s.FillRoundRect(m.X+2, m.Y+2, m.W-4, 3+openH/2, 1, e.fg)
	case MouthW:
		e.drawW(cx, m.Y, m.W/2, 4+openH/2)
	case MouthD:
		e.drawD(m.X, m.Y, m.W, 8+openH)
	}
}

// parabola rasterizes a thick quadratic curve across the mouth width. A smile is high
// at the corners and low in the middle; a frown the other way round.
func (e *Engine) parabola(m Rect, depth int16, smile bool) {
	const thickness = 3
	cx := m.CenterX()
	half := float32(m.W) / 2
	if half < 1 {
		half = 1
	}
	for x := m.X; x <= m.X+m.W; x++ {
		n := float32(x-cx) / half
		curve := n * n
		var y int16
		if smile {
			y = m.Y + depth - int16(curve*float32(depth))
		} else {
			y = m.Y + int16(curve*float32(depth))
		}
		for t := int16(0); t < thickness; t++ {
			e.surface.SetPixel(x, y+t, e.fg)
		}
	}
}

// drawW draws a compact "w": two valleys joined at a center peak, two pixels thick.
func (e *Engine) drawW(cx, y, w, h int16) {
	s := e.surface
	q := w / 4
	x0, x1, x2, x3, x4 := cx-2*q, cx-q, cx, cx+q, cx+2*q
	for d := int16(0); d < 2; d++ {
		s.DrawLine(x0, y+d, x1, y+h+d, e.fg)
		s.DrawLine(x1, y+h+d, x2, y+h/3+d, e.fg)
		s.DrawLine(x2, y+h/3+d, x3, y+h+d, e.fg)
		s.DrawLine(x3, y+h+d, x4, y+d, e.fg)
	}
}

// drawD draws a wide laughing mouth: flat top, round bottom, dark inside.
func (e *Engine) drawD(x, y, w, h int16) {
	s := e.surface
	r := min(h/2, w/2)
	s.FillRoundRect(x, y, w, h, r, e.fg)
	s.FillRect(x, y, w, r, e.fg)
	if h > 4 && w > 4 {
		s.FillRoundRect(x+2, y+2, w-4, h-4, max(r-2, 0), e.bg)
		s.FillRect(x+2, y+2, w-4, max(r-2, 0), e.bg)
	}
}

func (e *Engine) drawSweat() {
	if e.params.Sweat <= drawThreshold {
		return
	}
	scale := e.params.Sweat
	for i := range e.sweat {
		d := &e.sweat[i]
		size := d.size * scale
		if size < 1 {
			size = 1
		}
		e.surface.FillRoundRect(int16(d.x), int16(d.y), int16(size), int16(size*1.5), 3, e.fg)
	}
}
