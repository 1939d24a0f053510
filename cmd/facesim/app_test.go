package main

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"nifri2/proto-face/cmd"
	"nifri2/proto-face/prefs"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestApp(t *testing.T) (*app, tcell.SimulationScreen, *fakeClock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(140, 40)

	store := prefs.NewStore(nil)
	store.Prefs().Shuffle = false
	clock := &fakeClock{t: time.Unix(1000, 0)}
	return newApp(screen, store, newSound(), clock.now), screen, clock
}

func frames(a *app, c *fakeClock, n int) {
	for i := 0; i < n; i++ {
		c.advance(a.face.FrameInterval())
		a.tick()
	}
}

func typeLine(a *app, line string) {
	for _, r := range line {
		a.key(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	a.key(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
}

func TestFrameDrawsHalfBlocks(t *testing.T) {
	a, screen, clock := newTestApp(t)
	frames(a, clock, 30)

	white := tcell.NewRGBColor(0xFF, 0xFF, 0xFF)
	lit := 0
	for y := 0; y < a.display.Rows(); y++ {
		for x := 0; x < cmd.ScreenWidth; x++ {
			r, _, style, _ := screen.GetContent(x, y)
			if r != halfBlock {
				t.Fatalf("cell %d,%d = %q, want half block", x, y, r)
			}
			fg, bg, _ := style.Decompose()
			if fg == white || bg == white {
				lit++
			}
		}
	}
	if lit < 100 {
		t.Errorf("only %d lit cells after the eyes opened", lit)
	}
	if a.display.Rows() != cmd.ScreenHeight/2 {
		t.Errorf("rows = %d", a.display.Rows())
	}
}

func TestJitteryTicksKeepFrameRate(t *testing.T) {
	a, _, clock := newTestApp(t)
	iv := a.tickInterval()
	if iv >= a.face.FrameInterval() {
		t.Fatalf("tick interval %v not below frame interval %v", iv, a.face.FrameInterval())
	}

	start := clock.t
	drawn := 0
	for k := 1; ; k++ {
		jitter := time.Millisecond
		if k%2 == 0 {
			jitter = -jitter
		}
		clock.t = start.Add(time.Duration(k)*iv + jitter)
		if clock.t.Sub(start) > time.Second {
			break
		}
		if a.tick() {
			drawn++
		}
	}
	// 50 fps for one second, a couple of frames may slip
	if drawn < 45 {
		t.Errorf("expected about 50 frames in a second, got %d", drawn)
	}
}

func TestTermDisplayPairsRows(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 10)

	d := newTermDisplay(screen, 4, 3, 1, 2)
	red := tcell.NewRGBColor(0xFF, 0, 0)
	d.SetPixel(0, 0, rgba(0xFF, 0, 0))
	d.SetPixel(0, 1, rgba(0, 0, 0xFF))
	d.SetPixel(3, 2, rgba(0xFF, 0, 0))
	d.SetPixel(9, 9, rgba(0xFF, 0, 0))
	if err := d.Display(); err != nil {
		t.Fatal(err)
	}

	_, _, style, _ := screen.GetContent(1, 2)
	fg, bg, _ := style.Decompose()
	if fg != red || bg != tcell.NewRGBColor(0, 0, 0xFF) {
		t.Errorf("cell 1,2 fg=%v bg=%v", fg, bg)
	}
	// odd height: the last row has no lower pixel
	_, _, style, _ = screen.GetContent(4, 3)
	fg, bg, _ = style.Decompose()
	if fg != red || bg != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("cell 4,3 fg=%v bg=%v", fg, bg)
	}
	if d.Rows() != 2 {
		t.Errorf("rows = %d", d.Rows())
	}
}

func TestTypedCommandRunsOnFace(t *testing.T) {
	a, screen, clock := newTestApp(t)
	typeLine(a, "happy")

	if a.status != "Expression: happy" || a.failed {
		t.Fatalf("status = %q failed=%v", a.status, a.failed)
	}
	if got := a.face.Targets().Joy; got != 1 {
		t.Errorf("joy target = %v", got)
	}
	if len(a.input) != 0 {
		t.Errorf("input not cleared: %q", string(a.input))
	}
	if !a.holdUntil.After(clock.now()) {
		t.Error("command should hold the shuffle")
	}

	frames(a, clock, 1)
	y := a.display.Rows() + 2
	var b strings.Builder
	for x := 0; x < len(a.status); x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	if b.String() != a.status {
		t.Errorf("status row = %q", b.String())
	}
}

func TestBadCommandReports(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.submit("happy bogus")

	if !a.failed {
		t.Fatal("expected failure")
	}
	if !strings.HasPrefix(a.status, "Expression: happy; ") || !strings.Contains(a.status, "unknown command") {
		t.Errorf("status = %q", a.status)
	}

	a.submit("sad")
	if a.failed {
		t.Error("failure should clear on the next good command")
	}
}

func TestBackspaceAndQuit(t *testing.T) {
	a, _, _ := newTestApp(t)
	for _, r := range "sadd" {
		a.key(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	a.key(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	if string(a.input) != "sad" {
		t.Errorf("input = %q", string(a.input))
	}
	a.key(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if !a.quit {
		t.Error("escape should quit")
	}

	b, _, _ := newTestApp(t)
	b.submit("quit")
	if !b.quit {
		t.Error("quit command should quit")
	}
}

func TestShuffleToggle(t *testing.T) {
	a, _, clock := newTestApp(t)
	a.submit("shuffle")
	if !a.shuffle || a.status != "Shuffle: on" {
		t.Fatalf("shuffle=%v status=%q", a.shuffle, a.status)
	}

	a.shuffler.Pool = []cmd.Expression{cmd.Expr_Angry}

	// neutral first, then an expression from the pool
	frames(a, clock, 1)
	if got := a.face.Targets().Anger; got != 0 {
		t.Fatalf("anger after neutral = %v", got)
	}
	clock.advance(a.shuffler.NeutralMax + time.Second)
	frames(a, clock, 1)
	if got := a.face.Targets().Anger; got != 1 {
		t.Errorf("anger after shuffle = %v", got)
	}

	// a typed command holds the shuffle
	a.submit("sad")
	clock.advance(a.shuffler.ExprMax + time.Second)
	frames(a, clock, 1)
	if got := a.face.Targets().Fatigue; got != 1 {
		t.Errorf("fatigue during hold = %v", got)
	}

	a.submit("shuffle")
	if a.shuffle {
		t.Error("second toggle should turn shuffle off")
	}
}

func TestSaveCapturesSettings(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.submit("set:ew=40")
	a.submit("sound")
	a.submit("save")
	if a.failed {
		t.Fatalf("status = %q", a.status)
	}

	p := a.store.Prefs()
	if p.Face.Layout.EyeWidth != 40 {
		t.Errorf("saved eye width = %d", p.Face.Layout.EyeWidth)
	}
	if p.Sound {
		t.Error("sound should be saved muted")
	}
}

func TestToneRampsIn(t *testing.T) {
	tn := newTone(sampleRate, 440, 0.01)
	buf := make([][2]float64, sampleRate.N(20*time.Millisecond))
	n, ok := tn.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("stream = %d %v", n, ok)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v", buf[0][0])
	}
	peak := 0.0
	for i, s := range buf {
		if s[0] != s[1] {
			t.Fatalf("sample %d not mono", i)
		}
		peak = max(peak, s[0])
	}
	if peak <= 0.1 || peak > 0.2 {
		t.Errorf("peak = %v", peak)
	}
}

func TestClosedSoundIsSilent(t *testing.T) {
	s := newSound()
	s.Play(cueAccept)
	s.Close()
	if s.open {
		t.Error("sound should stay closed")
	}
}

func rgba(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 0xFF} }
