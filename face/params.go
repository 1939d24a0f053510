package face

// Params is the current value of every animated quantity.
type Params struct {
	Openness      float32
	LeftOpenness  float32
	RightOpenness float32
	Squish        float32 // 1 is neutral
	GazeX         float32
	GazeY         float32

	Joy     float32
	Anger   float32
	Fatigue float32
	Love    float32

	MouthOpenness float32
	Mouth         MouthShape
	MouthTarget   MouthShape
	MouthProgress float32

	Heart   float32
	Knocked float32
	Sweat   float32
	Curious float32
	UwU     float32
	XD      float32
	Tears   float32

	Cyclops bool

	HeartPulse float32
	Spiral     float32
	TearFall   float32

	// frame-local shiver offsets in pixels
	HFlicker float32
	VFlicker float32
}

func (p *Params) reset() {
	*p = Params{
		Openness:      1,
		LeftOpenness:  1,
		RightOpenness: 1,
		Squish:        1,
		Mouth:         MouthSmile,
		MouthTarget:   MouthSmile,
		MouthProgress: 1,
	}
}

// Rates are the per-group convergence rates, in 1/s.
type Rates struct {
	Openness float32
	Squish   float32
	Gaze     float32
	Emotion  float32
	Mouth    float32
	Heart    float32
	Effect   float32
}

// DefaultRates returns the stock convergence rates.
func DefaultRates() Rates {
	return Rates{
		Openness: 12,
		Squish:   10,
		Gaze:     6,
		Emotion:  5,
		Mouth:    15,
		Heart:    8,
		Effect:   4,
	}
}

// Group names a rate group.
type Group int8

const (
	GroupOpenness Group = iota
	GroupSquish
	GroupGaze
	GroupEmotion
	GroupMouth
	GroupHeart
	GroupEffect
)

var groupNames = [...]string{"openness", "squish", "gaze", "emotion", "mouth", "heart", "effect"}

func (g Group) String() string {
	if g < 0 || int(g) >= len(groupNames) {
		return "unknown"
	}
	return groupNames[g]
}

// ParseGroup resolves a rate group name.
func ParseGroup(name string) (Group, bool) {
	for i, n := range groupNames {
		if n == name {
			return Group(i), true
		}
	}
	return 0, false
}

func (r *Rates) ptr(g Group) *float32 {
	switch g {
	case GroupOpenness:
		return &r.Openness
	case GroupSquish:
		return &r.Squish
	case GroupGaze:
		return &r.Gaze
	case GroupEmotion:
		return &r.Emotion
	case GroupMouth:
		return &r.Mouth
	case GroupHeart:
		return &r.Heart
	default:
		return &r.Effect
	}
}

// Targets are the values the continuous parameters are smoothed toward.
type Targets struct {
	Openness      float32
	LeftOpenness  float32
	RightOpenness float32
	Squish        float32
	GazeX         float32
	GazeY         float32

	Joy     float32
	Anger   float32
	Fatigue float32
	Love    float32

	MouthOpenness float32

	Heart   float32
	Knocked float32
	Sweat   float32
	Curious float32
	UwU     float32
	XD      float32
	Tears   float32

	Rates Rates
}

func (t *Targets) reset() {
	*t = Targets{
		Openness:      1,
		LeftOpenness:  1,
		RightOpenness: 1,
		Squish:        1,
		Rates:         DefaultRates(),
	}
}

// smooth advances every continuous parameter one step toward its target.
func smooth(p *Params, t *Targets, dt float32) {
	r := &t.Rates

	p.Openness = SmoothDamp(p.Openness, t.Openness, r.Openness, dt)
	p.LeftOpenness = SmoothDamp(p.LeftOpenness, t.LeftOpenness, r.Openness, dt)
	p.RightOpenness = SmoothDamp(p.RightOpenness, t.RightOpenness, r.Openness, dt)
	p.Squish = SmoothDamp(p.Squish, t.Squish, r.Squish, dt)
	p.GazeX = SmoothDamp(p.GazeX, t.GazeX, r.Gaze, dt)
	p.GazeY = SmoothDamp(p.GazeY, t.GazeY, r.Gaze, dt)

	p.Joy = SmoothDamp(p.Joy, t.Joy, r.Emotion, dt)
	p.Anger = SmoothDamp(p.Anger, t.Anger, r.Emotion, dt)
	p.Fatigue = SmoothDamp(p.Fatigue, t.Fatigue, r.Emotion, dt)
	p.Love = SmoothDamp(p.Love, t.Love, r.Emotion, dt)

	p.MouthOpenness = SmoothDamp(p.MouthOpenness, t.MouthOpenness, r.Mouth, dt)
	p.Heart = SmoothDamp(p.Heart, t.Heart, r.Heart, dt)

	p.Knocked = SmoothDamp(p.Knocked, t.Knocked, r.Effect, dt)
	p.Sweat = SmoothDamp(p.Sweat, t.Sweat, r.Effect, dt)
	p.Curious = SmoothDamp(p.Curious, t.Curious, r.Effect, dt)
	p.UwU = SmoothDamp(p.UwU, t.UwU, r.Effect, dt)
	p.XD = SmoothDamp(p.XD, t.XD, r.Effect, dt)
	p.Tears = SmoothDamp(p.Tears, t.Tears, r.Effect, dt)
}
