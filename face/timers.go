package face

// Recurring is a countdown that re-arms itself to Interval + uniform(0, Variation)
// each time it fires.
type Recurring struct {
	Enabled   bool
	Cooldown  float32
	Interval  float32
	Variation float32
}

// tick counts down and reports whether the timer fired.
func (r *Recurring) tick(dt float32, rnd func() float32) bool {
	if !r.Enabled {
		return false
	}
	r.Cooldown -= dt
	if r.Cooldown > 0 {
		return false
	}
	r.Cooldown = r.Interval + rnd()*r.Variation
	return true
}

const (
	DefaultWinkDuration    = 0.25
	DefaultMouthTransition = 0.15

	winkSquint = 0.7

	// shiver frequencies in rad/s
	hShiverFreq = 50
	vShiverFreq = 20
	// flicker envelope ramp in px/s
	flickerRamp = 80
)

type wink struct {
	remaining float32
}

type flicker struct {
	ampH  float32
	ampV  float32
	phase float32
}

const sweatDrops = 3

type sweatDrop struct {
	x, y, size float32
	limit      float32
}

func (e *Engine) updateTimers(dt float32) {
	e.updateOverlay(dt)
	e.updateFlicker(dt)

	if e.params.Knocked <= knockedBlinkLimit {
		if e.blink.tick(dt, e.random) {
			e.Blink()
		}
	}
	if e.idle.tick(dt, e.random) {
		e.targets.GazeX = e.random()*2 - 1
		e.targets.GazeY = e.random()*2 - 1
	}

	e.updateMouthAnim(dt)
	e.advanceMouthShape(dt)
	e.updateSweat(dt)
}

// updateFlicker recomputes the frame-local shiver offsets. The amplitude follows its
// target linearly, the offset itself is a sinusoid of the phase.
func (e *Engine) updateFlicker(dt float32) {
	f := &e.flicker
	f.ampH = ApproachLinear(f.ampH, max(e.shiverH, e.manualH), flickerRamp, dt)
	f.ampV = ApproachLinear(f.ampV, max(e.shiverV, e.manualV), flickerRamp, dt)
	if f.ampH == 0 && f.ampV == 0 {
		f.phase = 0
		e.params.HFlicker = 0
		e.params.VFlicker = 0
		return
	}
	f.phase += dt
	e.params.HFlicker = clampf(f.ampH*sinf(f.phase*hShiverFreq), -f.ampH, f.ampH)
	e.params.VFlicker = clampf(f.ampV*sinf(f.phase*vShiverFreq), -f.ampV, f.ampV)
}

// finishWink restores both eyes once the wink has run its course.
func (e *Engine) finishWink(dt float32) {
	if e.wink.remaining <= 0 {
		return
	}
	e.wink.remaining -= dt
	if e.wink.remaining <= 0 {
		e.wink.remaining = 0
		e.targets.LeftOpenness = 1
		e.targets.RightOpenness = 1
	}
}

func (e *Engine) resetSweat() {
	for i := range e.sweat {
		e.respawnDrop(i)
		e.sweat[i].y = e.random() * 20
	}
}

func (e *Engine) respawnDrop(i int) {
	w := float32(e.layout.ScreenW)
	d := &e.sweat[i]
	switch i {
	case 0:
		d.x = e.random() * 30
	case 1:
		d.x = 30 + e.random()*max(w-60, 0)
	default:
		d.x = w - 30 + e.random()*30
	}
	d.y = 2
	d.size = 2
	d.limit = 20 + e.random()*10
}

// updateSweat moves the drops: they grow while near the top and shrink after, and
// start over once they leave their window.
func (e *Engine) updateSweat(dt float32) {
	if e.params.Sweat <= drawThreshold && e.targets.Sweat == 0 {
		return
	}
	for i := range e.sweat {
		d := &e.sweat[i]
		d.y += 25 * dt
		if d.y > d.limit {
			e.respawnDrop(i)
		}
		if d.y < 15 {
			d.size += 15 * dt
		} else {
			d.size -= 5 * dt
		}
		if d.size < 1 {
			d.size = 1
		}
	}
}
