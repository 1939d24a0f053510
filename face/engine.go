package face

import (
	"math/rand"
	"time"
)

// Engine animates one face on one Surface. It is not safe for concurrent use; the
// command methods and Update must be called from the same goroutine.
type Engine struct {
	surface Surface
	bg, fg  Color

	layout  Layout
	params  Params
	targets Targets
	render  RenderState
	eyeBuf  [2]Rect

	overlay   overlayTimer
	blink     Recurring
	idle      Recurring
	mouthAnim MouthAnim
	wink      wink
	flicker   flicker
	sweat     [sweatDrops]sweatDrop

	// flicker amplitude requests in px
	shiverH, shiverV float32
	manualH, manualV float32

	mouthBase       MouthShape
	mouthEnabled    bool
	winkDuration    float32
	mouthTransition float32

	frameInterval time.Duration
	last          time.Time
	now           func() time.Time
	rnd           *rand.Rand
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithClock replaces the monotonic clock used by Update.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRand sets the random source for blink, idle gaze and sweat.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rnd = r }
}

// WithColors sets the background and foreground colours.
func WithColors(bg, fg Color) Option {
	return func(e *Engine) { e.bg, e.fg = bg, fg }
}

// New builds an engine drawing on s with the default 128x64 layout at 50 fps.
func New(s Surface, opts ...Option) *Engine {
	e := &Engine{
		surface:       s,
		bg:            Black,
		fg:            White,
		frameInterval: 20 * time.Millisecond,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rnd == nil {
		e.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.layout = DefaultLayout()
	e.Defaults()
	return e
}

// Defaults puts every parameter, target and timer back to its starting value. Layout,
// colours and the frame rate are kept.
func (e *Engine) Defaults() {
	e.params.reset()
	e.targets.reset()
	e.overlay = overlayTimer{}
	e.blink = Recurring{Enabled: true, Cooldown: 2, Interval: 3, Variation: 3}
	e.idle = Recurring{Interval: 2, Variation: 3}
	e.mouthAnim = MouthAnim{}
	e.wink = wink{}
	e.flicker = flicker{}
	e.shiverH, e.shiverV = 0, 0
	e.manualH, e.manualV = 0, 0
	e.mouthBase = MouthSmile
	e.mouthEnabled = true
	e.winkDuration = DefaultWinkDuration
	e.mouthTransition = DefaultMouthTransition
	e.resetSweat()
}

// Begin sizes the screen, sets the frame-rate ceiling and starts from closed eyes that
// open smoothly.
func (e *Engine) Begin(width, height int16, maxFrameRate int) {
	e.layout.ScreenW = width
	e.layout.ScreenH = height
	e.layout.Recompute()

	if maxFrameRate <= 0 {
		maxFrameRate = 50
	}
	e.frameInterval = time.Second / time.Duration(maxFrameRate)

	e.surface.Clear()
	e.surface.Flush()

	e.params.Openness = 0
	e.params.LeftOpenness = 1
	e.params.RightOpenness = 1
	e.targets.Openness = 1
	e.resetSweat()

	e.last = e.now()
}

// Update runs one frame if at least one frame interval has passed since the previous
// one. It reports whether a frame was drawn.
func (e *Engine) Update() bool {
	now := e.now()
	elapsed := now.Sub(e.last)
	if elapsed < e.frameInterval {
		return false
	}
	e.last = now
	e.Step(float32(elapsed.Seconds()))
	return true
}

// Step runs one frame with an explicit time step in seconds.
func (e *Engine) Step(dt float32) {
	if dt < 0 {
		dt = 0
	}
	e.updateTimers(dt)
	smooth(&e.params, &e.targets, dt)
	e.render = ComputeRender(&e.layout, &e.params)
	e.draw()
	e.finishWink(dt)
}

// Params returns a copy of the current parameters.
func (e *Engine) Params() Params { return e.params }

// Targets returns a copy of the current targets.
func (e *Engine) Targets() Targets { return e.targets }

// Layout returns a copy of the layout.
func (e *Engine) Layout() Layout { return e.layout }

// RenderState returns the geometry of the last frame.
func (e *Engine) RenderState() RenderState { return e.render }

// FrameInterval is the minimum spacing between frames.
func (e *Engine) FrameInterval() time.Duration { return e.frameInterval }

func (e *Engine) random() float32 { return e.rnd.Float32() }
