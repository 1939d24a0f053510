package cmd

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"nifri2/proto-face/face"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var ErrBadConfig = errors.New("bad config")

type Config struct {
	FrameRate int          `yaml:"frame_rate"`
	Inverted  bool         `yaml:"inverted"`
	Layout    LayoutConfig `yaml:"layout"`
	Rates     RatesConfig  `yaml:"rates"`
	Blink     TimerConfig  `yaml:"blink"`
	Idle      TimerConfig  `yaml:"idle"`

	WinkDuration    float32 `yaml:"wink_duration"`
	MouthTransition float32 `yaml:"mouth_transition"`
	LaughDuration   float32 `yaml:"laugh_duration"`
	LoveDuration    float32 `yaml:"love_duration"`

	Shuffle ShuffleConfig `yaml:"shuffle"`
}

type LayoutConfig struct {
	EyeWidth    int16 `yaml:"eye_width"`
	EyeHeight   int16 `yaml:"eye_height"`
	Spacing     int16 `yaml:"spacing"`
	Radius      int16 `yaml:"radius"`
	MouthWidth  int16 `yaml:"mouth_width"`
	MouthHeight int16 `yaml:"mouth_height"`
}

type RatesConfig struct {
	Openness float32 `yaml:"openness"`
	Squish   float32 `yaml:"squish"`
	Gaze     float32 `yaml:"gaze"`
	Emotion  float32 `yaml:"emotion"`
	Mouth    float32 `yaml:"mouth"`
	Heart    float32 `yaml:"heart"`
	Effect   float32 `yaml:"effect"`
}

type TimerConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Interval  float32 `yaml:"interval"`
	Variation float32 `yaml:"variation"`
}

type ShuffleConfig struct {
	Enabled      bool `yaml:"enabled"`
	ExprMinMs    int  `yaml:"expr_min_ms"`
	ExprMaxMs    int  `yaml:"expr_max_ms"`
	NeutralMinMs int  `yaml:"neutral_min_ms"`
	NeutralMaxMs int  `yaml:"neutral_max_ms"`
}

// DefaultConfig returns the embedded defaults.
func DefaultConfig() Config {
	var c Config
	if err := yaml.Unmarshal(defaultsYAML, &c); err != nil {
		panic("cmd: embedded defaults: " + err.Error())
	}
	return c
}

// ParseConfig reads a YAML document over the defaults, so missing keys keep their
// default values.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c Config) Validate() error {
	switch {
	case c.FrameRate <= 0 || c.FrameRate > 1000:
		return fmt.Errorf("%w: frame_rate %d", ErrBadConfig, c.FrameRate)
	case c.Layout.EyeWidth <= 0 || c.Layout.EyeHeight <= 0:
		return fmt.Errorf("%w: eye size %dx%d", ErrBadConfig, c.Layout.EyeWidth, c.Layout.EyeHeight)
	case c.Layout.MouthWidth <= 0 || c.Layout.MouthHeight <= 0:
		return fmt.Errorf("%w: mouth size %dx%d", ErrBadConfig, c.Layout.MouthWidth, c.Layout.MouthHeight)
	case c.Shuffle.ExprMaxMs < c.Shuffle.ExprMinMs || c.Shuffle.NeutralMaxMs < c.Shuffle.NeutralMinMs:
		return fmt.Errorf("%w: shuffle max below min", ErrBadConfig)
	}
	return nil
}

// Apply pushes the configuration into an engine. Begin must still be called with the
// frame rate.
func (c Config) Apply(e *face.Engine) {
	l := e.Layout()
	l.EyeW = c.Layout.EyeWidth
	l.EyeH = c.Layout.EyeHeight
	l.Spacing = c.Layout.Spacing
	l.Radius = c.Layout.Radius
	l.MouthW = c.Layout.MouthWidth
	l.MouthH = c.Layout.MouthHeight
	e.SetLayout(l)

	r := c.Rates
	e.SetRate(face.GroupOpenness, r.Openness)
	e.SetRate(face.GroupSquish, r.Squish)
	e.SetRate(face.GroupGaze, r.Gaze)
	e.SetRate(face.GroupEmotion, r.Emotion)
	e.SetRate(face.GroupMouth, r.Mouth)
	e.SetRate(face.GroupHeart, r.Heart)
	e.SetRate(face.GroupEffect, r.Effect)

	e.SetAutoBlinker(c.Blink.Enabled, c.Blink.Interval, c.Blink.Variation)
	e.SetIdleMode(c.Idle.Enabled, c.Idle.Interval, c.Idle.Variation)
	e.SetWinkDuration(c.WinkDuration)
	e.SetMouthTransition(c.MouthTransition)

	if c.Inverted {
		e.SetDisplayColors(face.White, face.Black)
	} else {
		e.SetDisplayColors(face.Black, face.White)
	}
}

// ApplyHandler sets the handler's laugh and love durations.
func (c Config) ApplyHandler(h *Handler) {
	h.SetDurations(c.LaughDuration, c.LoveDuration)
}

// ApplyShuffle sets the shuffler timings.
func (c Config) ApplyShuffle(s *Shuffler) {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	s.ExprMin = ms(c.Shuffle.ExprMinMs)
	s.ExprMax = ms(c.Shuffle.ExprMaxMs)
	s.NeutralMin = ms(c.Shuffle.NeutralMinMs)
	s.NeutralMax = ms(c.Shuffle.NeutralMaxMs)
}

// Capture copies the live engine and handler state back into the configuration, so
// runtime edits can be saved.
func (c *Config) Capture(e *face.Engine, h *Handler) {
	l := e.Layout()
	c.Layout = LayoutConfig{
		EyeWidth:    l.EyeW,
		EyeHeight:   l.EyeH,
		Spacing:     l.Spacing,
		Radius:      l.Radius,
		MouthWidth:  l.MouthW,
		MouthHeight: l.MouthH,
	}
	c.Rates = RatesConfig{
		Openness: e.Rate(face.GroupOpenness),
		Squish:   e.Rate(face.GroupSquish),
		Gaze:     e.Rate(face.GroupGaze),
		Emotion:  e.Rate(face.GroupEmotion),
		Mouth:    e.Rate(face.GroupMouth),
		Heart:    e.Rate(face.GroupHeart),
		Effect:   e.Rate(face.GroupEffect),
	}
	b := e.AutoBlinker()
	c.Blink = TimerConfig{Enabled: b.Enabled, Interval: b.Interval, Variation: b.Variation}
	if h != nil {
		c.LaughDuration, c.LoveDuration = h.Durations()
	}
}
