package face

// Layout is the base geometry of the face. It only changes through the layout setters,
// each of which recomputes the derived fields.
type Layout struct {
	ScreenW int16
	ScreenH int16
	EyeW    int16
	EyeH    int16
	Spacing int16
	Radius  int16
	MouthW  int16
	MouthH  int16

	// derived
	CenterX int16
	CenterY int16
	LeftX   int16
	RightX  int16
	EyeY    int16
}

// DefaultLayout is the 128x64 OLED layout.
func DefaultLayout() Layout {
	l := Layout{
		ScreenW: 128,
		ScreenH: 64,
		EyeW:    36,
		EyeH:    36,
		Spacing: 10,
		Radius:  8,
		MouthW:  20,
		MouthH:  6,
	}
	l.Recompute()
	return l
}

// MaxLayoutSize caps every base size the layout setters accept, in pixels.
const MaxLayoutSize = 1 << 14

// Recompute derives the centered eye positions from the base values. The sums are done
// in int so large base values cannot wrap.
func (l *Layout) Recompute() {
	sw, sh := int(l.ScreenW), int(l.ScreenH)
	ew, eh, sp := int(l.EyeW), int(l.EyeH), int(l.Spacing)

	l.CenterX = l.ScreenW / 2
	l.CenterY = l.ScreenH / 2

	left := (sw - (ew + sp + ew)) / 2
	l.LeftX = to16(left)
	l.RightX = to16(left + ew + sp)
	l.EyeY = to16((sh - eh) / 2)
}

// size16 limits a base size to [lo, MaxLayoutSize].
func size16(v, lo int16) int16 {
	return clamp16(v, lo, MaxLayoutSize)
}

func to16(v int) int16 {
	return int16(max(min(v, 1<<15-1), -1<<15))
}
