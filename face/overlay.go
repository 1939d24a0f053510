package face

// Overlay is one of the mutually exclusive expressions. At most one is running at a
// time; triggering another cancels it.
type Overlay int8

const (
	OverlayNone Overlay = iota
	OverlayLove
	OverlayCry
	OverlayConfused
	OverlayLaugh
	OverlayUwU
	OverlayXD
	OverlayKnocked
)

var overlayNames = [...]string{"none", "love", "cry", "confused", "laugh", "uwu", "xd", "knocked"}

func (o Overlay) String() string {
	if o < 0 || int(o) >= len(overlayNames) {
		return "none"
	}
	return overlayNames[o]
}

const (
	// releaseLevel is the level below which a finished overlay hands the mouth back.
	releaseLevel = 0.1

	drawThreshold   = 0.1
	eraseThreshold  = 0.5
	spiralThreshold = 0.05
	spiralAdvance   = 0.1

	knockedBlinkLimit = 0.5
)

// Default durations in seconds for the legacy triggers.
const (
	DefaultLoveDuration     = 2.0
	DefaultCryDuration      = 3.0
	DefaultConfusedDuration = 0.5
	DefaultLaughDuration    = 1.0
	DefaultUwUDuration      = 2.0
	DefaultXDDuration       = 1.5
)

// overlayTimer is the single tagged overlay slot.
type overlayTimer struct {
	kind      Overlay
	remaining float32
	elapsed   float32

	// releasing is a finished overlay whose forced mouth is still held.
	releasing Overlay
}

// Remaining reports the time left on an overlay's timer. Knocked has no timer and
// reports 1 while on.
func (e *Engine) Remaining(o Overlay) float32 {
	if e.overlay.kind != o {
		return 0
	}
	if o == OverlayKnocked {
		return 1
	}
	return e.overlay.remaining
}

// Active returns the running overlay.
func (e *Engine) Active() Overlay {
	return e.overlay.kind
}

// trigger starts an overlay, cancelling whatever is running.
func (e *Engine) trigger(o Overlay, duration float32) {
	e.cancelOverlays()
	if duration < 0 {
		duration = 0
	}
	e.overlay.kind = o
	e.overlay.remaining = duration
	e.overlay.elapsed = 0
	e.overlay.releasing = OverlayNone

	switch o {
	case OverlayLove:
		e.params.HeartPulse = 0
	case OverlayCry:
		e.params.TearFall = 0
	case OverlayKnocked:
		e.params.Spiral = 0
	}
	e.assertOverlay()
}

// cancelOverlays stops the running overlay and pushes every exclusive target back to 0.
// The parameters themselves decay through the smoother.
func (e *Engine) cancelOverlays() {
	if e.overlay.kind != OverlayNone {
		e.releaseTargets(e.overlay.kind)
		e.overlay.releasing = e.overlay.kind
	}
	t := &e.targets
	t.Heart = 0
	t.Love = 0
	t.UwU = 0
	t.XD = 0
	t.Knocked = 0
	t.Tears = 0

	e.overlay.kind = OverlayNone
	e.overlay.remaining = 0
	e.overlay.elapsed = 0
	e.shiverH = 0
	e.shiverV = 0
}

// releaseTargets drops the targets an overlay owns.
func (e *Engine) releaseTargets(o Overlay) {
	t := &e.targets
	switch o {
	case OverlayLove:
		t.Love = 0
		t.Heart = 0
	case OverlayCry:
		t.Tears = 0
		t.Fatigue = 0
	case OverlayLaugh:
		t.Joy = 0
		t.MouthOpenness = 0
	case OverlayUwU:
		t.UwU = 0
	case OverlayXD:
		t.XD = 0
	case OverlayKnocked:
		t.Knocked = 0
	}
}

// assertOverlay re-applies the running overlay's targets and forced mouth.
func (e *Engine) assertOverlay() {
	t := &e.targets
	switch e.overlay.kind {
	case OverlayLove:
		t.Love = 1
		t.Heart = 1
		e.forceMouth(MouthSmile)
	case OverlayCry:
		t.Tears = 1
		t.Fatigue = 0.5
		e.forceMouth(MouthFrown)
	case OverlayConfused:
		e.forceMouth(MouthOoo)
	case OverlayLaugh:
		t.Joy = 1
		e.forceMouth(MouthSmile)
	case OverlayUwU:
		t.UwU = 1
		e.forceMouth(MouthW)
	case OverlayXD:
		t.XD = 1
		e.forceMouth(MouthD)
	case OverlayKnocked:
		t.Knocked = 1
		e.forceMouth(MouthOoo)
	}
}

// level is the visible strength of an overlay, used to decide when its side effects
// are released after the timer ran out.
func (e *Engine) level(o Overlay) float32 {
	p := &e.params
	switch o {
	case OverlayLove:
		return p.Love
	case OverlayCry:
		return p.Tears
	case OverlayLaugh:
		return p.Joy
	case OverlayUwU:
		return p.UwU
	case OverlayXD:
		return p.XD
	case OverlayKnocked:
		return p.Knocked
	}
	return 0
}

func (e *Engine) updateOverlay(dt float32) {
	ov := &e.overlay
	p := &e.params

	switch ov.kind {
	case OverlayNone:
	case OverlayKnocked:
		e.assertOverlay()
	default:
		ov.remaining -= dt
		ov.elapsed += dt
		if ov.remaining <= 0 {
			e.releaseTargets(ov.kind)
			ov.releasing = ov.kind
			ov.kind = OverlayNone
			ov.remaining = 0
			ov.elapsed = 0
			e.shiverH = 0
			e.shiverV = 0
			break
		}
		e.assertOverlay()
		switch ov.kind {
		case OverlayLove:
			p.HeartPulse += dt * 10
		case OverlayCry:
			p.TearFall += dt * 40
		case OverlayConfused:
			e.shiverH = 8
		case OverlayLaugh:
			e.shiverV = 2
			e.targets.MouthOpenness = (sinf(ov.elapsed*12) + 1) * 0.5
		}
	}

	if p.Knocked > spiralAdvance {
		p.Spiral += dt * 5
	}

	if ov.releasing != OverlayNone && e.level(ov.releasing) < releaseLevel {
		ov.releasing = OverlayNone
		e.setMouthTarget(e.mouthBase)
	}
}
