package face

// Mood is the older enumerated mood.
type Mood uint8

const (
	MoodDefault Mood = iota
	MoodTired
	MoodAngry
	MoodHappy
)

// Position is the older compass gaze position.
type Position uint8

const (
	PosCenter Position = iota
	PosN
	PosNE
	PosE
	PosSE
	PosS
	PosSW
	PosW
	PosNW
)

var compass = [...][2]float32{
	PosCenter: {0, 0},
	PosN:      {0, -1},
	PosNE:     {1, -1},
	PosE:      {1, 0},
	PosSE:     {1, 1},
	PosS:      {0, 1},
	PosSW:     {-1, 1},
	PosW:      {-1, 0},
	PosNW:     {-1, -1},
}

// SetMood maps a legacy mood onto the emotion weights. Unknown moods are neutral.
func (e *Engine) SetMood(m Mood) {
	e.ResetEmotions()
	switch m {
	case MoodTired:
		e.SetFatigue(1)
	case MoodAngry:
		e.SetAnger(1)
	case MoodHappy:
		e.SetJoy(1)
	}
}

// SetPosition maps a compass position onto the gaze. Unknown positions center.
func (e *Engine) SetPosition(pos Position) {
	if int(pos) >= len(compass) {
		pos = PosCenter
	}
	g := compass[pos]
	e.SetGaze(g[0], g[1])
}

// SetMouthTypeCode maps the legacy 1-based mouth codes: 1 smile, 2 frown, 3 open,
// 4 ooo, 5 flat, 6 w, 7 d. Anything else is a smile.
func (e *Engine) SetMouthTypeCode(code int) {
	e.SetMouthType(MouthCode(code))
}

// MouthCode resolves a legacy 1-based mouth code.
func MouthCode(code int) MouthShape {
	if code < 1 || code > int(MouthD)+1 {
		return MouthSmile
	}
	return MouthShape(code - 1)
}

// StartMouthAnimCode maps the legacy animation codes (1 talk, 2 chew, 3 wobble,
// 4 laugh) and a duration in milliseconds.
func (e *Engine) StartMouthAnimCode(code int, ms int) {
	d := float32(ms) / 1000
	switch code {
	case 1:
		e.StartMouthAnim(MouthAnimTalk, d)
	case 2:
		e.StartMouthAnim(MouthAnimChew, d)
	case 3:
		e.StartMouthAnim(MouthAnimWobble, d)
	case 4:
		e.TriggerLaugh(d)
	}
}

func (e *Engine) AnimLove()     { e.TriggerLove(DefaultLoveDuration) }
func (e *Engine) AnimCry()      { e.TriggerCry(DefaultCryDuration) }
func (e *Engine) AnimConfused() { e.TriggerConfused(DefaultConfusedDuration) }
func (e *Engine) AnimLaugh()    { e.TriggerLaugh(DefaultLaughDuration) }
func (e *Engine) AnimKnocked()  { e.SetKnocked(true) }
