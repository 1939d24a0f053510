// Package face implements a parametric eyes-and-mouth animation engine for small
// two-colour displays.
//
// The engine keeps every animated quantity as a continuous parameter that is smoothed
// toward a target each frame. Timed expressions, blinking and gaze only ever move
// targets; the geometry for a frame is derived from the parameters and drawn onto a
// Surface in a fixed order.
package face

// Color is a display colour index. Monochrome displays use 0 and 1.
type Color uint8

const (
	Black Color = 0
	White Color = 1
)

// Surface is the drawing contract the compositor draws against.
type Surface interface {
	Clear()
	Flush()

	SetPixel(x, y int16, c Color)
	DrawLine(x0, y0, x1, y1 int16, c Color)
	FillRect(x, y, w, h int16, c Color)
	DrawRect(x, y, w, h int16, c Color)
	FillRoundRect(x, y, w, h, r int16, c Color)
	DrawRoundRect(x, y, w, h, r int16, c Color)
	FillCircle(x, y, r int16, c Color)
	DrawCircle(x, y, r int16, c Color)
	FillTriangle(x0, y0, x1, y1, x2, y2 int16, c Color)
}
