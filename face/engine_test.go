package face

import (
	"math/rand"
	"testing"
	"time"
)

func TestBegin_OpensFromClosed(t *testing.T) {
	e, _ := newTestEngine()
	e.Begin(128, 64, 50)

	if p := e.Params(); p.Openness != 0 {
		t.Fatalf("expected closed eyes after Begin, got openness %v", p.Openness)
	}
	if tg := e.Targets(); tg.Openness != 1 || tg.Rates.Openness != 12 {
		t.Fatalf("expected target 1 at rate 12, got %v at %v", tg.Openness, tg.Rates.Openness)
	}

	steps(e, 50, 0.02)

	if p := e.Params(); p.Openness <= 0.99 {
		t.Errorf("expected openness > 0.99 after 50 ticks, got %v", p.Openness)
	}
}

func TestUpdate_SkipsCallsInsideFrameInterval(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	rec := &recorder{}
	e := New(rec, WithClock(clk.now), WithRand(rand.New(rand.NewSource(1))))
	e.Begin(128, 64, 50)
	flushes := rec.flushes

	clk.advance(10 * time.Millisecond)
	if e.Update() {
		t.Error("expected no frame 10ms after Begin")
	}
	clk.advance(10 * time.Millisecond)
	if !e.Update() {
		t.Error("expected a frame 20ms after Begin")
	}
	if rec.flushes != flushes+1 {
		t.Errorf("expected one flush, got %d", rec.flushes-flushes)
	}
	if p := e.Params(); p.Openness <= 0 {
		t.Errorf("expected eyes to start opening, got %v", p.Openness)
	}
}

func TestUpdate_UsesElapsedTimeAsStep(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	e := New(&recorder{}, WithClock(clk.now), WithRand(rand.New(rand.NewSource(1))))
	e.SetAutoBlinker(false, 3, 3)
	e.Begin(128, 64, 50)

	clk.advance(100 * time.Millisecond)
	e.Update()

	want := 1 - expf(-12*0.1)
	if got := e.Params().Openness; absf(got-want) > 1e-4 {
		t.Errorf("expected openness %v after a 100ms frame, got %v", want, got)
	}
}

func TestSetters_ClampToDomain(t *testing.T) {
	e, _ := newTestEngine()

	e.SetOpenness(3)
	e.SetSquish(0.1)
	e.SetGaze(-4, 9)
	e.SetMouthOpenness(-1)
	e.SetJoy(2)
	e.SetAnger(-2)

	tg := e.Targets()
	if tg.Openness != 1 {
		t.Errorf("expected openness 1, got %v", tg.Openness)
	}
	if tg.Squish != 0.5 {
		t.Errorf("expected squish 0.5, got %v", tg.Squish)
	}
	if tg.GazeX != -1 || tg.GazeY != 1 {
		t.Errorf("expected gaze (-1,1), got (%v,%v)", tg.GazeX, tg.GazeY)
	}
	if tg.MouthOpenness != 0 {
		t.Errorf("expected mouth openness 0, got %v", tg.MouthOpenness)
	}
	if tg.Joy != 1 || tg.Anger != 0 {
		t.Errorf("expected joy 1 anger 0, got %v %v", tg.Joy, tg.Anger)
	}
}

func TestSetGaze_OptionalSpeed(t *testing.T) {
	e, _ := newTestEngine()
	e.SetGaze(0.5, 0, 2)
	if r := e.Rate(GroupGaze); r != 2 {
		t.Errorf("expected gaze rate 2, got %v", r)
	}
	e.SetGaze(0, 0)
	if r := e.Rate(GroupGaze); r != 2 {
		t.Errorf("expected gaze rate kept at 2, got %v", r)
	}
}

func TestConvergence_AllGroups(t *testing.T) {
	e, _ := newTestEngine()
	e.SetSquish(1.4)
	e.SetGaze(-0.6, 0.3)
	e.SetFatigue(0.7)
	e.SetMouthOpenness(0.4)
	e.SetCuriosity(true)

	steps(e, 400, 0.02)

	p := e.Params()
	checks := []struct {
		name      string
		got, want float32
	}{
		{"squish", p.Squish, 1.4},
		{"gazeX", p.GazeX, -0.6},
		{"gazeY", p.GazeY, 0.3},
		{"fatigue", p.Fatigue, 0.7},
		{"mouth", p.MouthOpenness, 0.4},
		{"curious", p.Curious, 1},
	}
	for _, c := range checks {
		if absf(c.got-c.want) > 1e-3 {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, c.got)
		}
	}
}

func TestBlink_SnapsShutAndReopens(t *testing.T) {
	e, _ := newTestEngine()
	e.Blink()
	if p := e.Params(); p.Openness != 0 {
		t.Fatalf("expected openness 0 right after blink, got %v", p.Openness)
	}
	steps(e, 40, 0.02)
	if p := e.Params(); p.Openness < 0.99 {
		t.Errorf("expected eyes open again, got %v", p.Openness)
	}
}

func TestAutoBlink_Fires(t *testing.T) {
	e, _ := newTestEngine()
	e.SetAutoBlinker(true, 3, 3)

	blinked := false
	for i := 0; i < 150; i++ {
		e.Step(0.02)
		if e.Params().Openness < 0.5 {
			blinked = true
			break
		}
	}
	if !blinked {
		t.Error("expected an automatic blink within 3 seconds")
	}
}

func TestRecurring_RearmsWithinVariation(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	r := Recurring{Enabled: true, Interval: 3, Variation: 2}

	fired := 0
	for i := 0; i < 2000; i++ {
		if !r.tick(0.02, rnd.Float32) {
			continue
		}
		fired++
		if r.Cooldown < r.Interval || r.Cooldown > r.Interval+r.Variation {
			t.Fatalf("firing %d: expected cooldown in [3,5], got %v", fired, r.Cooldown)
		}
	}
	if fired < 5 {
		t.Errorf("expected at least 5 firings in 40 s, got %d", fired)
	}
}

func TestIdleMode_RearmsWithinVariation(t *testing.T) {
	e, _ := newTestEngine()
	e.SetIdleMode(true, 0.5, 0.25)

	fired := 0
	prev := e.IdleMode().Cooldown
	for i := 0; i < 500; i++ {
		e.Step(0.02)
		cd := e.IdleMode().Cooldown
		if cd > prev {
			fired++
			if cd < 0.5 || cd > 0.75 {
				t.Fatalf("firing %d: expected cooldown in [0.5,0.75], got %v", fired, cd)
			}
		}
		prev = cd
	}
	if fired < 5 {
		t.Errorf("expected repeated idle moves, got %d", fired)
	}
}

func TestAutoBlink_SuppressedWhileKnocked(t *testing.T) {
	e, _ := newTestEngine()
	e.SetAutoBlinker(true, 0.2, 0)
	e.SetKnocked(true)
	steps(e, 20, 0.02)
	if e.Params().Knocked <= 0.5 {
		t.Fatalf("expected knocked above 0.5, got %v", e.Params().Knocked)
	}

	for i := 0; i < 150; i++ {
		e.Step(0.02)
		if o := e.Params().Openness; o < 0.9 {
			t.Fatalf("expected no blink while knocked, openness %v at tick %d", o, i)
		}
	}
}

func TestIdleMode_PicksGazeInRange(t *testing.T) {
	e, _ := newTestEngine()
	e.SetIdleMode(true, 0.1, 0.1)

	moved := false
	for i := 0; i < 200; i++ {
		e.Step(0.02)
		tg := e.Targets()
		if tg.GazeX < -1 || tg.GazeX > 1 || tg.GazeY < -1 || tg.GazeY > 1 {
			t.Fatalf("gaze target out of range: (%v,%v)", tg.GazeX, tg.GazeY)
		}
		if tg.GazeX != 0 || tg.GazeY != 0 {
			moved = true
		}
	}
	if !moved {
		t.Error("expected idle mode to move the gaze")
	}
}

func TestWink_LeftEye(t *testing.T) {
	e, _ := newTestEngine()
	e.Wink(true)

	tg := e.Targets()
	if tg.LeftOpenness != 0 {
		t.Fatalf("expected left target 0, got %v", tg.LeftOpenness)
	}

	minLeft, minRight := float32(1), float32(1)
	elapsed := float32(0)
	restored := false
	for i := 0; i < 100; i++ {
		e.Step(0.02)
		elapsed += 0.02
		p := e.Params()
		minLeft = min(minLeft, p.LeftOpenness)
		minRight = min(minRight, p.RightOpenness)
		tg := e.Targets()
		if !restored && tg.LeftOpenness == 1 && tg.RightOpenness == 1 {
			restored = true
			if elapsed > DefaultWinkDuration+0.02 {
				t.Errorf("expected eyes restored within the wink duration, took %v", elapsed)
			}
		}
	}

	if !restored {
		t.Fatal("expected both eye targets back at 1")
	}
	if minLeft > 0.1 {
		t.Errorf("expected left eye nearly closed, lowest %v", minLeft)
	}
	if minRight < 0.65 || minRight > 0.75 {
		t.Errorf("expected right eye to dip to about 0.7, lowest %v", minRight)
	}
	p := e.Params()
	if p.LeftOpenness < 0.99 || p.RightOpenness < 0.99 {
		t.Errorf("expected both eyes open at the end, got %v %v", p.LeftOpenness, p.RightOpenness)
	}
}

func TestDefaults_ResetsState(t *testing.T) {
	e, _ := newTestEngine()
	e.SetJoy(1)
	e.TriggerLove(2)
	e.SetCyclops(true)
	steps(e, 10, 0.02)

	e.Defaults()

	p := e.Params()
	if p.Joy != 0 || p.Love != 0 || p.Cyclops {
		t.Errorf("expected neutral params, got joy %v love %v cyclops %v", p.Joy, p.Love, p.Cyclops)
	}
	if e.Active() != OverlayNone {
		t.Errorf("expected no overlay, got %s", e.Active())
	}
}

func TestLayoutSetters_RecomputeDerived(t *testing.T) {
	e, _ := newTestEngine()
	e.SetWidth(30)
	e.SetSpacing(20)

	l := e.Layout()
	if l.LeftX != (128-80)/2 {
		t.Errorf("expected left eye at %d, got %d", (128-80)/2, l.LeftX)
	}
	if l.RightX != l.LeftX+30+20 {
		t.Errorf("expected right eye at %d, got %d", l.LeftX+50, l.RightX)
	}

	e.SetHeight(20)
	if l := e.Layout(); l.EyeY != 22 {
		t.Errorf("expected eye row 22, got %d", l.EyeY)
	}
}

func TestLayout_LargeSizesDoNotWrap(t *testing.T) {
	l := DefaultLayout()
	l.EyeW = 30000
	l.Recompute()
	if l.LeftX != -29941 || l.RightX != 69 {
		t.Errorf("expected left -29941 right 69, got %d %d", l.LeftX, l.RightX)
	}
	p := Params{Openness: 1, LeftOpenness: 1, RightOpenness: 1, Squish: 1, GazeX: 1}
	rs := ComputeRender(&l, &p)
	if !inside(rs.Left, l.ScreenW, l.ScreenH) || !inside(rs.Right, l.ScreenW, l.ScreenH) {
		t.Errorf("expected eyes on screen, got %+v %+v", rs.Left, rs.Right)
	}

	e, _ := newTestEngine()
	e.SetWidth(32767)
	if got := e.EyeWidth(); got != MaxLayoutSize {
		t.Errorf("expected eye width capped at %d, got %d", MaxLayoutSize, got)
	}
	if l := e.Layout(); l.RightX <= l.LeftX {
		t.Errorf("expected right eye after left eye, got %d %d", l.LeftX, l.RightX)
	}
	steps(e, 5, 0.02)
	rs = e.RenderState()
	if !inside(rs.Left, 128, 64) || !inside(rs.Right, 128, 64) {
		t.Errorf("expected eyes on screen, got %+v %+v", rs.Left, rs.Right)
	}
}
