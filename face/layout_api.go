package face

// SetWidth sets the base eye width.
func (e *Engine) SetWidth(w int16) {
	e.layout.EyeW = size16(w, 1)
	e.layout.Recompute()
}

// SetHeight sets the base eye height.
func (e *Engine) SetHeight(h int16) {
	e.layout.EyeH = size16(h, 1)
	e.layout.Recompute()
}

// SetSpacing sets the gap between the eyes.
func (e *Engine) SetSpacing(space int16) {
	e.layout.Spacing = size16(space, 0)
	e.layout.Recompute()
}

// SetBorderRadius sets the base corner radius of the eyes.
func (e *Engine) SetBorderRadius(r int16) {
	e.layout.Radius = size16(r, 0)
	e.layout.Recompute()
}

// SetMouthSize sets the base mouth size.
func (e *Engine) SetMouthSize(w, h int16) {
	e.layout.MouthW = size16(w, 1)
	e.layout.MouthH = size16(h, 1)
	e.layout.Recompute()
}

// SetLayout replaces the whole layout. The screen size is kept.
func (e *Engine) SetLayout(l Layout) {
	l.ScreenW = e.layout.ScreenW
	l.ScreenH = e.layout.ScreenH
	l.EyeW = size16(l.EyeW, 1)
	l.EyeH = size16(l.EyeH, 1)
	l.Spacing = size16(l.Spacing, 0)
	l.Radius = size16(l.Radius, 0)
	l.MouthW = size16(l.MouthW, 1)
	l.MouthH = size16(l.MouthH, 1)
	l.Recompute()
	e.layout = l
}

func (e *Engine) EyeWidth() int16     { return e.layout.EyeW }
func (e *Engine) EyeHeight() int16    { return e.layout.EyeH }
func (e *Engine) Spacing() int16      { return e.layout.Spacing }
func (e *Engine) BorderRadius() int16 { return e.layout.Radius }
func (e *Engine) MouthWidth() int16   { return e.layout.MouthW }
