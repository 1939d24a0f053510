package face

import "testing"

func TestParseMouthShape(t *testing.T) {
	m, ok := ParseMouthShape("w")
	if !ok || m != MouthW {
		t.Errorf("expected w, got %s %v", m, ok)
	}
	m, ok = ParseMouthShape("grin")
	if ok || m != MouthSmile {
		t.Errorf("expected smile fallback, got %s %v", m, ok)
	}
}

func TestSetMouthType_SwapsHalfway(t *testing.T) {
	e, _ := newTestEngine()
	e.SetMouthType(MouthFrown)

	e.Step(0.05)
	p := e.Params()
	if p.shapeShown() != MouthSmile {
		t.Errorf("expected smile before the swap point, got %s", p.shapeShown())
	}

	e.Step(0.05)
	p = e.Params()
	if p.shapeShown() != MouthFrown {
		t.Errorf("expected frown after the swap point, got %s", p.shapeShown())
	}
	if p.Mouth != MouthSmile {
		t.Errorf("expected transition still running, active is %s", p.Mouth)
	}

	e.Step(0.06)
	p = e.Params()
	if p.Mouth != MouthFrown || p.MouthProgress != 1 {
		t.Errorf("expected frown active, got %s at %v", p.Mouth, p.MouthProgress)
	}
}

func TestSetMouthType_ReverseBeforeSwap(t *testing.T) {
	e, _ := newTestEngine()
	e.SetMouthType(MouthOpen)
	e.Step(0.02)
	e.SetMouthType(MouthSmile)

	p := e.Params()
	if p.MouthTarget != MouthSmile || p.MouthProgress != 1 {
		t.Errorf("expected transition cancelled, got target %s at %v", p.MouthTarget, p.MouthProgress)
	}
}

func TestSetMouthType_InstantWithoutTransition(t *testing.T) {
	e, _ := newTestEngine()
	e.SetMouthTransition(0)
	e.SetMouthType(MouthD)
	e.Step(0.02)
	if p := e.Params(); p.Mouth != MouthD {
		t.Errorf("expected d immediately, got %s", p.Mouth)
	}
}

func TestMouthAnim_RunsThenCloses(t *testing.T) {
	e, _ := newTestEngine()
	e.StartMouthAnim(MouthAnimTalk, 0.5)

	peak := float32(0)
	for i := 0; i < 20; i++ {
		e.Step(0.02)
		peak = max(peak, e.Targets().MouthOpenness)
	}
	if peak < 0.5 {
		t.Errorf("expected the mouth to open while talking, peak %v", peak)
	}

	steps(e, 10, 0.02)
	if tg := e.Targets(); tg.MouthOpenness != 0 {
		t.Errorf("expected mouth target 0 after talking, got %v", tg.MouthOpenness)
	}
	steps(e, 30, 0.02)
	if p := e.Params(); p.MouthOpenness > 0.01 {
		t.Errorf("expected mouth closed, got %v", p.MouthOpenness)
	}
}

func TestMouthAnim_Shapes(t *testing.T) {
	cases := []struct {
		kind     MouthAnimKind
		elapsed  float32
		expected float32
	}{
		{MouthAnimTalk, 0, 0.5},
		{MouthAnimChew, 0, 0},
		{MouthAnimWobble, 0, 0.35},
		{MouthAnimNone, 1, 0},
	}
	for _, c := range cases {
		a := MouthAnim{Kind: c.kind, Elapsed: c.elapsed}
		if got := a.openness(); absf(got-c.expected) > 1e-5 {
			t.Errorf("kind %d: expected %v, got %v", c.kind, c.expected, got)
		}
	}
}

func TestStartMouthAnim_ZeroDurationStops(t *testing.T) {
	e, _ := newTestEngine()
	e.StartMouthAnim(MouthAnimChew, 1)
	steps(e, 10, 0.02)
	e.StartMouthAnim(MouthAnimChew, 0)
	if tg := e.Targets(); tg.MouthOpenness != 0 {
		t.Errorf("expected mouth target 0, got %v", tg.MouthOpenness)
	}
}
