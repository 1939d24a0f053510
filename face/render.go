package face

// Rect is a pixel rectangle.
type Rect struct {
	X, Y, W, H int16
}

// Bottom is the first row below the rectangle.
func (r Rect) Bottom() int16 { return r.Y + r.H }

// CenterX is the horizontal center.
func (r Rect) CenterX() int16 { return r.X + r.W/2 }

// CenterY is the vertical center.
func (r Rect) CenterY() int16 { return r.Y + r.H/2 }

// RenderState is the per-frame geometry derived from Layout and Params. It is rebuilt
// every frame and never fed back into the parameters.
type RenderState struct {
	Left   Rect
	Right  Rect // zero in cyclops mode
	Mouth  Rect
	Radius int16

	MouthVisible bool
}

const (
	mouthGap        = 4
	mouthBottomKeep = 8
	mouthOpenGrow   = 6

	parallaxBias = 0.05
	curiousBias  = 0.25
	bulgePx      = 2
)

// ComputeRender derives the frame geometry for a layout and parameter set.
func ComputeRender(l *Layout, p *Params) RenderState {
	var rs RenderState

	squish := p.Squish
	if squish <= 0 {
		squish = 1
	}
	sx, sy := SquashScales(squish)

	eyeW := float32(l.EyeW) * sx
	maxW := (float32(l.ScreenW) - float32(l.Spacing)) / 2
	if p.Cyclops {
		maxW = float32(l.ScreenW)
	}
	eyeW = min(eyeW, maxW, float32(l.EyeW)*2)
	eyeH := float32(l.EyeH) * sy

	parallax := 1 + absf(p.GazeX)*parallaxBias
	bulge := bulgePx * squish
	leftScale := 1 - p.GazeX*curiousBias*p.Curious
	rightScale := 1 + p.GazeX*curiousBias*p.Curious

	maxGX := max((float32(l.ScreenW)-2*float32(l.EyeW)-float32(l.Spacing))/2, 0)
	maxGY := max((float32(l.ScreenH)-float32(l.EyeH))/2, 0)
	offX := p.GazeX*maxGX + p.HFlicker
	offY := p.GazeY*maxGY + p.VFlicker

	leftCX := float32(l.LeftX) + float32(l.EyeW)/2
	rightCX := float32(l.RightX) + float32(l.EyeW)/2
	if p.Cyclops {
		leftCX = float32(l.ScreenW) / 2
	}
	cy := float32(l.EyeY) + float32(l.EyeH)/2 + offY

	rs.Left = eyeRect(l, leftCX+offX, cy, eyeW, eyeH, p.Openness*p.LeftOpenness, parallax, bulge, leftScale)
	if !p.Cyclops {
		rs.Right = eyeRect(l, rightCX+offX, cy, eyeW, eyeH, p.Openness*p.RightOpenness, parallax, bulge, rightScale)
	}

	rs.Radius = max(int16(float32(l.Radius)*min(sx, sy)), 2)

	bottom := rs.Left.Bottom()
	if !p.Cyclops {
		bottom = max(bottom, rs.Right.Bottom())
	}
	rs.Mouth = Rect{
		X: (l.ScreenW-l.MouthW)/2 + int16(offX),
		Y: bottom + mouthGap,
		W: l.MouthW,
		H: l.MouthH + int16(p.MouthOpenness*mouthOpenGrow),
	}
	rs.MouthVisible = rs.Mouth.Y <= l.ScreenH-mouthBottomKeep
	if rs.MouthVisible {
		rs.Mouth.H = min(rs.Mouth.H, l.ScreenH-rs.Mouth.Y)
	}
	// a hidden mouth is clamped too; only MouthVisible gates drawing
	rs.Mouth = clampRect(rs.Mouth, l.ScreenW, l.ScreenH)
	return rs
}

// SquashScales returns the horizontal and vertical scale for a squish value. Their
// product stays 1 so the eye keeps its area.
func SquashScales(squish float32) (h, v float32) {
	return 1 / squish, squish
}

func eyeRect(l *Layout, cx, cy, w, h, open, parallax, bulge, scale float32) Rect {
	h = max(h*open, 1)
	fw := w * parallax * scale
	fh := (h + bulge) * scale
	r := Rect{
		W: max(int16(fw), 1),
		H: max(int16(fh), 1),
	}
	r.X = int16(cx - float32(r.W)/2)
	r.Y = int16(cy - float32(r.H)/2)
	return clampRect(r, l.ScreenW, l.ScreenH)
}

// clampRect keeps a rectangle at least one pixel large and inside the screen.
func clampRect(r Rect, w, h int16) Rect {
	r.W = clamp16(r.W, 1, max(w, 1))
	r.H = clamp16(r.H, 1, max(h, 1))
	r.X = clamp16(r.X, 0, w-r.W)
	r.Y = clamp16(r.Y, 0, h-r.H)
	return r
}
