package face

import (
	"math/rand"
	"time"
)

type call struct {
	op    string
	args  []int16
	color Color
}

// recorder is a Surface that keeps every call of the current frame.
type recorder struct {
	calls   []call
	flushes int
}

func (r *recorder) add(op string, c Color, args ...int16) {
	r.calls = append(r.calls, call{op: op, args: args, color: c})
}

func (r *recorder) Clear() { r.calls = r.calls[:0] }
func (r *recorder) Flush() { r.flushes++ }

func (r *recorder) SetPixel(x, y int16, c Color) { r.add("pixel", c, x, y) }
func (r *recorder) DrawLine(x0, y0, x1, y1 int16, c Color) {
	r.add("line", c, x0, y0, x1, y1)
}
func (r *recorder) FillRect(x, y, w, h int16, c Color) { r.add("fillRect", c, x, y, w, h) }
func (r *recorder) DrawRect(x, y, w, h int16, c Color) { r.add("rect", c, x, y, w, h) }
func (r *recorder) FillRoundRect(x, y, w, h, rad int16, c Color) {
	r.add("fillRoundRect", c, x, y, w, h, rad)
}
func (r *recorder) DrawRoundRect(x, y, w, h, rad int16, c Color) {
	r.add("roundRect", c, x, y, w, h, rad)
}
func (r *recorder) FillCircle(x, y, rad int16, c Color) { r.add("fillCircle", c, x, y, rad) }
func (r *recorder) DrawCircle(x, y, rad int16, c Color) { r.add("circle", c, x, y, rad) }
func (r *recorder) FillTriangle(x0, y0, x1, y1, x2, y2 int16, c Color) {
	r.add("fillTriangle", c, x0, y0, x1, y1, x2, y2)
}

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

// fakeClock is a manually advanced clock.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestEngine() (*Engine, *recorder) {
	rec := &recorder{}
	e := New(rec, WithRand(rand.New(rand.NewSource(1))))
	e.SetAutoBlinker(false, 3, 3)
	return e, rec
}

func steps(e *Engine, n int, dt float32) {
	for i := 0; i < n; i++ {
		e.Step(dt)
	}
}
