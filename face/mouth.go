package face

// MouthShape is one of the closed set of mouth variants.
type MouthShape int8

const (
	MouthSmile MouthShape = iota
	MouthFrown
	MouthOpen
	MouthOoo
	MouthFlat
	MouthW
	MouthD
)

var mouthNames = [...]string{"smile", "frown", "open", "ooo", "flat", "w", "d"}

func (m MouthShape) String() string {
	if m < 0 || int(m) >= len(mouthNames) {
		return "smile"
	}
	return mouthNames[m]
}

// ParseMouthShape resolves a mouth name. Unknown names resolve to smile.
func ParseMouthShape(name string) (MouthShape, bool) {
	for i, n := range mouthNames {
		if n == name {
			return MouthShape(i), true
		}
	}
	return MouthSmile, false
}

// MouthAnimKind selects a mouth micro-animation.
type MouthAnimKind int8

const (
	MouthAnimNone MouthAnimKind = iota
	MouthAnimTalk
	MouthAnimChew
	MouthAnimWobble
)

// MouthAnim is a running mouth micro-animation.
type MouthAnim struct {
	Kind      MouthAnimKind
	Remaining float32
	Elapsed   float32
}

// openness is the mouth-openness target for the animation at its current elapsed time.
func (a *MouthAnim) openness() float32 {
	t := a.Elapsed
	switch a.Kind {
	case MouthAnimTalk:
		return (sinf(t*8) + 1) * 0.5
	case MouthAnimChew:
		return absf(sinf(t*6)) * 0.7
	case MouthAnimWobble:
		return 0.35 + 0.25*sinf(t*14)
	}
	return 0
}

// shapeShown is the shape the compositor draws while a transition is in progress.
func (p *Params) shapeShown() MouthShape {
	if p.Mouth != p.MouthTarget && p.MouthProgress >= 0.5 {
		return p.MouthTarget
	}
	return p.Mouth
}

func (e *Engine) advanceMouthShape(dt float32) {
	p := &e.params
	if p.Mouth == p.MouthTarget {
		p.MouthProgress = 1
		return
	}
	if e.mouthTransition <= 0 {
		p.MouthProgress = 1
	} else {
		p.MouthProgress += dt / e.mouthTransition
	}
	if p.MouthProgress >= 1 {
		p.MouthProgress = 1
		p.Mouth = p.MouthTarget
	}
}

// forceMouth switches the shape immediately, skipping the transition.
func (e *Engine) forceMouth(m MouthShape) {
	e.params.Mouth = m
	e.params.MouthTarget = m
	e.params.MouthProgress = 1
}

func (e *Engine) updateMouthAnim(dt float32) {
	a := &e.mouthAnim
	if a.Kind == MouthAnimNone {
		return
	}
	a.Remaining -= dt
	a.Elapsed += dt
	if a.Remaining <= 0 {
		a.Kind = MouthAnimNone
		a.Remaining = 0
		e.targets.MouthOpenness = 0
		return
	}
	e.targets.MouthOpenness = clampf(a.openness(), 0, 1)
}
