package face

// SetOpenness sets the overall eye openness target, clamped to [0,1]. An optional
// speed replaces the openness rate.
func (e *Engine) SetOpenness(target float32, speed ...float32) {
	e.targets.Openness = clampf(target, 0, 1)
	e.setRate(GroupOpenness, speed)
}

// Open opens both eyes.
func (e *Engine) Open() { e.targets.Openness = 1 }

// Close closes both eyes.
func (e *Engine) Close() { e.targets.Openness = 0 }

// SetSquish sets the squash/stretch target, clamped to [0.5,1.5].
func (e *Engine) SetSquish(target float32, speed ...float32) {
	e.targets.Squish = clampf(target, 0.5, 1.5)
	e.setRate(GroupSquish, speed)
}

// SetGaze sets the gaze target, each axis clamped to [-1,1].
func (e *Engine) SetGaze(x, y float32, speed ...float32) {
	e.targets.GazeX = clampf(x, -1, 1)
	e.targets.GazeY = clampf(y, -1, 1)
	e.setRate(GroupGaze, speed)
}

// SetMouthOpenness sets the mouth openness target, clamped to [0,1].
func (e *Engine) SetMouthOpenness(target float32, speed ...float32) {
	e.targets.MouthOpenness = clampf(target, 0, 1)
	e.setRate(GroupMouth, speed)
}

// SetMouthType starts a transition to shape. While an overlay forces its own mouth the
// request is remembered and applied once the overlay lets go.
func (e *Engine) SetMouthType(shape MouthShape) {
	if shape < MouthSmile || shape > MouthD {
		shape = MouthSmile
	}
	e.mouthBase = shape
	if e.overlay.kind != OverlayNone || e.overlay.releasing != OverlayNone {
		return
	}
	e.setMouthTarget(shape)
}

func (e *Engine) setMouthTarget(shape MouthShape) {
	p := &e.params
	if p.MouthTarget == shape {
		return
	}
	if p.Mouth == shape {
		// transition reversed before the swap point
		p.MouthTarget = shape
		p.MouthProgress = 1
		return
	}
	p.MouthTarget = shape
	p.MouthProgress = 0
}

// SetMouthEnabled hides or shows the mouth.
func (e *Engine) SetMouthEnabled(on bool) { e.mouthEnabled = on }

// SetJoy sets the joy weight target.
func (e *Engine) SetJoy(w float32, speed ...float32) {
	e.targets.Joy = clampf(w, 0, 1)
	e.setRate(GroupEmotion, speed)
}

// SetAnger sets the anger weight target.
func (e *Engine) SetAnger(w float32, speed ...float32) {
	e.targets.Anger = clampf(w, 0, 1)
	e.setRate(GroupEmotion, speed)
}

// SetFatigue sets the fatigue weight target.
func (e *Engine) SetFatigue(w float32, speed ...float32) {
	e.targets.Fatigue = clampf(w, 0, 1)
	e.setRate(GroupEmotion, speed)
}

// SetLove sets the love weight target.
func (e *Engine) SetLove(w float32, speed ...float32) {
	e.targets.Love = clampf(w, 0, 1)
	e.setRate(GroupEmotion, speed)
}

// ResetEmotions drives all emotion weights and the heart back to 0 and cancels any
// timed overlay.
func (e *Engine) ResetEmotions() {
	e.cancelOverlays()
	t := &e.targets
	t.Joy = 0
	t.Anger = 0
	t.Fatigue = 0
	t.Love = 0
	t.Heart = 0
}

// Blink snaps both eyes shut; the smoother reopens them.
func (e *Engine) Blink() {
	e.params.Openness = 0
}

// Wink closes one eye and squints the other for the wink duration.
func (e *Engine) Wink(left bool) {
	if left {
		e.targets.LeftOpenness = 0
		e.targets.RightOpenness = winkSquint
	} else {
		e.targets.RightOpenness = 0
		e.targets.LeftOpenness = winkSquint
	}
	e.wink.remaining = e.winkDuration
}

// TriggerLove shows heart eyes for d seconds.
func (e *Engine) TriggerLove(d float32) { e.trigger(OverlayLove, d) }

// TriggerCry shows falling tears for d seconds.
func (e *Engine) TriggerCry(d float32) { e.trigger(OverlayCry, d) }

// TriggerConfused shakes the eyes for d seconds.
func (e *Engine) TriggerConfused(d float32) { e.trigger(OverlayConfused, d) }

// TriggerLaugh bounces the face with a laughing mouth for d seconds.
func (e *Engine) TriggerLaugh(d float32) { e.trigger(OverlayLaugh, d) }

// TriggerUwU replaces the face with "uwu" for d seconds.
func (e *Engine) TriggerUwU(d float32) { e.trigger(OverlayUwU, d) }

// TriggerXD replaces the face with "xD" for d seconds.
func (e *Engine) TriggerXD(d float32) { e.trigger(OverlayXD, d) }

// StartMouthAnim runs a mouth micro-animation for d seconds.
func (e *Engine) StartMouthAnim(kind MouthAnimKind, d float32) {
	if kind <= MouthAnimNone || kind > MouthAnimWobble || d <= 0 {
		e.mouthAnim = MouthAnim{}
		e.targets.MouthOpenness = 0
		return
	}
	e.mouthAnim = MouthAnim{Kind: kind, Remaining: d}
}

// SetKnocked turns the dizzy spiral eyes on or off.
func (e *Engine) SetKnocked(on bool) {
	if on {
		e.trigger(OverlayKnocked, 0)
		return
	}
	if e.overlay.kind == OverlayKnocked {
		e.releaseTargets(OverlayKnocked)
		e.overlay.kind = OverlayNone
		e.overlay.releasing = OverlayKnocked
	}
	e.targets.Knocked = 0
}

// SetCyclops hides the second eye.
func (e *Engine) SetCyclops(on bool) { e.params.Cyclops = on }

// SetSweat turns the sweat drops on or off.
func (e *Engine) SetSweat(on bool) { e.targets.Sweat = onOff(on) }

// SetCuriosity turns curious mode on or off.
func (e *Engine) SetCuriosity(on bool) { e.targets.Curious = onOff(on) }

// SetHFlicker shakes the face horizontally by amplitude pixels.
func (e *Engine) SetHFlicker(on bool, amplitude float32) {
	e.manualH = 0
	if on {
		e.manualH = clampf(amplitude, 0, 16)
	}
}

// SetVFlicker shakes the face vertically by amplitude pixels.
func (e *Engine) SetVFlicker(on bool, amplitude float32) {
	e.manualV = 0
	if on {
		e.manualV = clampf(amplitude, 0, 16)
	}
}

// SetAutoBlinker configures automatic blinking.
func (e *Engine) SetAutoBlinker(on bool, interval, variation float32) {
	e.blink.Enabled = on
	e.blink.Interval = max(interval, 0)
	e.blink.Variation = max(variation, 0)
}

// SetIdleMode configures random gaze wandering. The first move comes shortly after
// enabling.
func (e *Engine) SetIdleMode(on bool, interval, variation float32) {
	e.idle.Enabled = on
	e.idle.Interval = max(interval, 0)
	e.idle.Variation = max(variation, 0)
	if on {
		e.idle.Cooldown = 0.5
	}
}

// AutoBlinker returns the auto-blink timer.
func (e *Engine) AutoBlinker() Recurring { return e.blink }

// IdleMode returns the idle gaze timer.
func (e *Engine) IdleMode() Recurring { return e.idle }

// SetRate sets a group's convergence rate.
func (e *Engine) SetRate(g Group, rate float32) {
	*e.targets.Rates.ptr(g) = max(rate, 0)
}

// Rate returns a group's convergence rate.
func (e *Engine) Rate(g Group) float32 {
	return *e.targets.Rates.ptr(g)
}

func (e *Engine) setRate(g Group, speed []float32) {
	if len(speed) > 0 {
		e.SetRate(g, speed[0])
	}
}

// SetWinkDuration sets how long a wink holds, in seconds.
func (e *Engine) SetWinkDuration(d float32) { e.winkDuration = max(d, 0) }

// SetMouthTransition sets the mouth shape transition time, in seconds.
func (e *Engine) SetMouthTransition(d float32) { e.mouthTransition = max(d, 0) }

// SetDisplayColors sets the background and foreground colours.
func (e *Engine) SetDisplayColors(bg, fg Color) {
	e.bg = bg
	e.fg = fg
}

func onOff(on bool) float32 {
	if on {
		return 1
	}
	return 0
}
