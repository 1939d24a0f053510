package cmd

import "nifri2/proto-face/face"

type Expression byte

const (
	Expr_Neutral Expression = 0x00 + iota
	Expr_Happy
	Expr_Sad
	Expr_Angry
	Expr_Love
	Expr_Surprised
	Expr_Confused
	Expr_Sleepy
	Expr_Curious
	Expr_Nervous
	Expr_Knocked
	Expr_UwU
	Expr_XD
	Expr_Idle
)

var expressionNames = [...]string{
	Expr_Neutral:   "neutral",
	Expr_Happy:     "happy",
	Expr_Sad:       "sad",
	Expr_Angry:     "angry",
	Expr_Love:      "love",
	Expr_Surprised: "surprised",
	Expr_Confused:  "confused",
	Expr_Sleepy:    "sleepy",
	Expr_Curious:   "curious",
	Expr_Nervous:   "nervous",
	Expr_Knocked:   "knocked",
	Expr_UwU:       "uwu",
	Expr_XD:        "xd",
	Expr_Idle:      "idle",
}

var expressionAliases = map[string]Expression{
	"dizzy":  Expr_Knocked,
	"normal": Expr_Neutral,
	"reset":  Expr_Neutral,
}

func (x Expression) String() string {
	if int(x) >= len(expressionNames) {
		return "unknown"
	}
	return expressionNames[x]
}

func ParseExpression(name string) (Expression, bool) {
	for i, n := range expressionNames {
		if n == name {
			return Expression(i), true
		}
	}
	x, ok := expressionAliases[name]
	return x, ok
}

// resetEffects turns off everything an expression may have switched on.
func (h *Handler) resetEffects() {
	e := h.face
	e.SetCuriosity(false)
	e.SetHFlicker(false, 0)
	e.SetVFlicker(false, 0)
	e.SetSweat(false)
	e.SetIdleMode(false, 0, 0)
	e.SetKnocked(false)
	h.sweat = false
}

// Express switches the face to a preset expression. Unknown expressions are neutral.
func (h *Handler) Express(x Expression) {
	e := h.face
	h.resetEffects()

	switch x {
	case Expr_Happy:
		e.SetMood(face.MoodHappy)
		e.SetPosition(face.PosCenter)
		e.TriggerLaugh(h.laughDuration)
		e.SetMouthType(face.MouthSmile)
	case Expr_Sad:
		e.SetMood(face.MoodTired)
		e.SetPosition(face.PosCenter)
		e.SetMouthType(face.MouthFrown)
	case Expr_Angry:
		e.SetMood(face.MoodAngry)
		e.SetPosition(face.PosCenter)
		e.SetMouthType(face.MouthFlat)
	case Expr_Love:
		e.SetMood(face.MoodHappy)
		e.SetPosition(face.PosCenter)
		e.TriggerLove(h.loveDuration)
		e.SetMouthType(face.MouthOpen)
	case Expr_Surprised:
		e.SetMood(face.MoodDefault)
		e.SetCuriosity(true)
		e.SetPosition(face.PosN)
		e.Blink()
		e.SetMouthType(face.MouthOpen)
	case Expr_Confused:
		e.SetMood(face.MoodDefault)
		e.AnimConfused()
		e.SetMouthType(face.MouthOoo)
	case Expr_Sleepy:
		e.SetMood(face.MoodTired)
		e.SetPosition(face.PosSW)
		e.SetMouthType(face.MouthFlat)
	case Expr_Curious:
		e.SetMood(face.MoodDefault)
		e.SetCuriosity(true)
		e.SetPosition(face.PosE)
		e.SetMouthType(face.MouthOoo)
	case Expr_Nervous:
		e.SetMood(face.MoodDefault)
		e.SetSweat(true)
		h.sweat = true
		e.SetCuriosity(true)
		e.SetPosition(face.PosN)
		e.SetMouthType(face.MouthFrown)
	case Expr_Knocked:
		e.SetKnocked(true)
	case Expr_UwU:
		e.SetMood(face.MoodHappy)
		e.SetPosition(face.PosCenter)
		e.TriggerUwU(face.DefaultUwUDuration)
	case Expr_XD:
		e.SetMood(face.MoodHappy)
		e.SetPosition(face.PosCenter)
		e.TriggerXD(face.DefaultXDDuration)
	case Expr_Idle:
		e.SetMood(face.MoodDefault)
		e.SetIdleMode(true, 1, 2)
		e.SetPosition(face.PosCenter)
		e.SetMouthType(face.MouthSmile)
	default:
		e.SetMood(face.MoodDefault)
		e.SetPosition(face.PosCenter)
		e.SetMouthType(face.MouthSmile)
	}
}
