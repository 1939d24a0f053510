package main

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// cue is a short sound played in response to a command.
type cue int

const (
	cueAccept cue = iota
	cueReject
)

// sound plays command cues through a shared mixer. A sound that is not open is silent.
type sound struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	open  bool
	muted bool
}

func newSound() *sound {
	return &sound{mixer: &beep.Mixer{}}
}

// Open starts the speaker.
func (s *sound) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.open = true
	return nil
}

func (s *sound) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	speaker.Close()
	s.open = false
}

func (s *sound) SetMuted(m bool) {
	s.mu.Lock()
	s.muted = m
	s.mu.Unlock()
}

func (s *sound) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

func (s *sound) Play(c cue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open || s.muted {
		return
	}
	speaker.Lock()
	s.mixer.Add(cueStreamer(c))
	speaker.Unlock()
}

func cueStreamer(c cue) beep.Streamer {
	switch c {
	case cueReject:
		return beep.Take(sampleRate.N(150*time.Millisecond), newTone(sampleRate, 160, 0))
	default:
		return beep.Seq(
			beep.Take(sampleRate.N(40*time.Millisecond), newTone(sampleRate, 880, 0)),
			beep.Take(sampleRate.N(60*time.Millisecond), newTone(sampleRate, 1320, 0)),
		)
	}
}

// tone is a sine with a short attack so cues do not click.
type tone struct {
	sr     beep.SampleRate
	freq   float64
	pos    int
	attack float64
}

func newTone(sr beep.SampleRate, freq, attack float64) *tone {
	if attack <= 0 {
		attack = 0.005
	}
	return &tone{sr: sr, freq: freq, attack: attack}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		at := float64(t.pos) / float64(t.sr)
		v := 0.2 * math.Sin(2*math.Pi*t.freq*at) * math.Min(at/t.attack, 1)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
