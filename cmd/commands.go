package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"nifri2/proto-face/face"
)

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadSetting     = errors.New("bad setting")
)

// Handler routes text commands and packets to a face. It holds the toggle state so
// repeated toggles flip it.
type Handler struct {
	face *face.Engine

	sweat   bool
	cyclops bool
	mouth   bool

	laughDuration float32
	loveDuration  float32
}

func NewHandler(e *face.Engine) *Handler {
	return &Handler{
		face:          e,
		mouth:         true,
		laughDuration: face.DefaultLaughDuration,
		loveDuration:  face.DefaultLoveDuration,
	}
}

// SetDurations sets the laugh and love durations in seconds used by the text commands.
func (h *Handler) SetDurations(laugh, love float32) {
	if laugh > 0 {
		h.laughDuration = laugh
	}
	if love > 0 {
		h.loveDuration = love
	}
}

func (h *Handler) Durations() (laugh, love float32) {
	return h.laughDuration, h.loveDuration
}

// Handle runs every word of line as a command, in order, and returns one response line
// per command. It stops at the first command that fails.
func (h *Handler) Handle(line string) ([]string, error) {
	words, err := shlex.Split(strings.ToLower(line))
	if err != nil {
		return nil, fmt.Errorf("split %q: %w", line, err)
	}
	if len(words) == 0 {
		return nil, ErrEmptyCommand
	}
	out := make([]string, 0, len(words))
	for _, w := range words {
		resp, err := h.run(w)
		if err != nil {
			return out, err
		}
		out = append(out, resp)
	}
	return out, nil
}

var positions = map[string]face.Position{
	"center": face.PosCenter,
	"n":      face.PosN,
	"up":     face.PosN,
	"ne":     face.PosNE,
	"e":      face.PosE,
	"right":  face.PosE,
	"se":     face.PosSE,
	"s":      face.PosS,
	"down":   face.PosS,
	"sw":     face.PosSW,
	"w":      face.PosW,
	"left":   face.PosW,
	"nw":     face.PosNW,
}

var mouthAnims = map[string]struct {
	kind face.MouthAnimKind
	secs float32
}{
	"talk":   {face.MouthAnimTalk, 3},
	"chew":   {face.MouthAnimChew, 2},
	"wobble": {face.MouthAnimWobble, 2},
}

func (h *Handler) run(w string) (string, error) {
	e := h.face

	if x, ok := ParseExpression(w); ok {
		h.Express(x)
		return "Expression: " + x.String(), nil
	}
	// "w" is the west position; the w mouth is "mouth:w"
	if p, ok := positions[w]; ok {
		e.SetPosition(p)
		return "Position: " + w, nil
	}
	if m, ok := face.ParseMouthShape(strings.TrimPrefix(w, "mouth:")); ok {
		e.SetMouthType(m)
		return "Mouth: " + m.String(), nil
	}
	if a, ok := mouthAnims[w]; ok {
		e.StartMouthAnim(a.kind, a.secs)
		return "Mouth: " + w, nil
	}

	switch w {
	case "blink":
		h.Act(Action_Blink)
	case "wink":
		h.Act(Action_Wink)
	case "winkr":
		h.Act(Action_WinkRight)
	case "laugh":
		h.Act(Action_Laugh)
	case "cry":
		h.Act(Action_Cry)
	case "sweat":
		return "Sweat: " + onOff(h.Toggle(Toggle_Sweat, !h.sweat)), nil
	case "cyclops":
		return "Cyclops: " + onOff(h.Toggle(Toggle_Cyclops, !h.cyclops)), nil
	case "mouth":
		return "Mouth: " + onOff(h.Toggle(Toggle_Mouth, !h.mouth)), nil
	case "help", "?":
		return Help, nil
	default:
		switch {
		case strings.HasPrefix(w, "set:"):
			if err := h.settings(strings.TrimPrefix(w, "set:")); err != nil {
				return "", err
			}
			return "Settings applied", nil
		case strings.HasPrefix(w, "speed:"):
			return h.speed(strings.TrimPrefix(w, "speed:"))
		}
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, w)
	}
	return "Action: " + w, nil
}

// Act runs a one-shot action.
func (h *Handler) Act(a Action) {
	e := h.face
	switch a {
	case Action_Blink:
		e.Blink()
	case Action_Wink:
		e.Wink(true)
		e.SetMouthType(face.MouthSmile)
	case Action_WinkRight:
		e.Wink(false)
		e.SetMouthType(face.MouthSmile)
	case Action_Laugh:
		e.TriggerLaugh(h.laughDuration)
	case Action_Cry:
		e.AnimCry()
	}
}

// Toggle sets a toggle and returns its new state.
func (h *Handler) Toggle(t Toggle, on bool) bool {
	e := h.face
	switch t {
	case Toggle_Sweat:
		h.sweat = on
		e.SetSweat(on)
	case Toggle_Cyclops:
		h.cyclops = on
		e.SetCyclops(on)
	case Toggle_Mouth:
		h.mouth = on
		e.SetMouthEnabled(on)
	case Toggle_Idle:
		e.SetIdleMode(on, 1, 2)
	default:
		return false
	}
	return on
}

// settings applies "ew=36,eh=36,es=10,er=8,mw=20,lt=1000,vt=2000,bi=3". Durations are
// in milliseconds, the blink interval in seconds.
func (h *Handler) settings(s string) error {
	e := h.face
	for _, kv := range strings.Split(s, ",") {
		if kv == "" {
			continue
		}
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("%w: %q", ErrBadSetting, kv)
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrBadSetting, key, err)
		}
		v := int16(max(min(n, 1<<14), 0))
		switch key {
		case "ew":
			e.SetWidth(v)
		case "eh":
			e.SetHeight(v)
		case "es":
			e.SetSpacing(v)
		case "er":
			e.SetBorderRadius(v)
		case "mw":
			e.SetMouthSize(v, e.Layout().MouthH)
		case "mh":
			e.SetMouthSize(e.MouthWidth(), v)
		case "lt":
			h.SetDurations(float32(n)/1000, 0)
		case "vt":
			h.SetDurations(0, float32(n)/1000)
		case "bi":
			e.SetAutoBlinker(true, float32(n), 3)
		default:
			return fmt.Errorf("%w: unknown key %q", ErrBadSetting, key)
		}
	}
	return nil
}

// speed applies "<group>=<rate>".
func (h *Handler) speed(s string) (string, error) {
	name, val, ok := strings.Cut(s, "=")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrBadSetting, s)
	}
	g, ok := face.ParseGroup(name)
	if !ok {
		return "", fmt.Errorf("%w: unknown group %q", ErrBadSetting, name)
	}
	rate, err := strconv.ParseFloat(val, 32)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrBadSetting, name, err)
	}
	h.face.SetRate(g, float32(rate))
	return fmt.Sprintf("Speed: %s=%g", g, h.face.Rate(g)), nil
}

// HandlePacket applies a packet received from the dispatcher.
func (h *Handler) HandlePacket(p Packet) (string, error) {
	e := h.face
	switch p.Command {
	case Cmd_NoOp:
		return "", nil
	case Cmd_Expression:
		x := Expression(p.Arg0)
		h.Express(x)
		return "Expression: " + x.String(), nil
	case Cmd_Mouth:
		e.SetMouthTypeCode(int(p.Arg0))
		return "Mouth: " + face.MouthCode(int(p.Arg0)).String(), nil
	case Cmd_Position:
		e.SetPosition(face.Position(p.Arg0))
		return fmt.Sprintf("Position: %d", p.Arg0), nil
	case Cmd_Toggle:
		on := h.Toggle(Toggle(p.Arg0), p.Arg1 != 0)
		return fmt.Sprintf("Toggle %d: %s", p.Arg0, onOff(on)), nil
	case Cmd_Action:
		h.Act(Action(p.Arg0))
		return fmt.Sprintf("Action: %d", p.Arg0), nil
	case Cmd_MouthAnim:
		e.StartMouthAnimCode(int(p.Arg0), int(p.Arg1)*100)
		return fmt.Sprintf("Mouth anim: %d", p.Arg0), nil
	}
	return "", fmt.Errorf("%w: command 0x%02X", ErrUnknownCommand, int(p.Command))
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}

const Help = `EXPRESSIONS: happy sad angry love surprised confused sleepy curious nervous knocked uwu xd neutral idle
MOUTH: smile frown open ooo flat d mouth:w talk chew wobble
ACTIONS: blink wink winkr laugh cry
POSITIONS: center n ne e se s sw w nw
TOGGLES: sweat cyclops mouth
SETTINGS: set:ew=36,eh=36,es=10,er=8,mw=20,lt=1000,vt=2000,bi=3  speed:<group>=<rate>`
