package face

import "testing"

func TestMouthCode(t *testing.T) {
	cases := map[int]MouthShape{
		0: MouthSmile,
		1: MouthSmile,
		2: MouthFrown,
		4: MouthOoo,
		6: MouthW,
		7: MouthD,
		8: MouthSmile,
	}
	for code, want := range cases {
		if got := MouthCode(code); got != want {
			t.Errorf("code %d: expected %s, got %s", code, want, got)
		}
	}
}

func TestSetPosition_Compass(t *testing.T) {
	e, _ := newTestEngine()
	e.SetPosition(PosNE)
	if tg := e.Targets(); tg.GazeX != 1 || tg.GazeY != -1 {
		t.Errorf("expected (1,-1), got (%v,%v)", tg.GazeX, tg.GazeY)
	}

	e.SetPosition(Position(42))
	if tg := e.Targets(); tg.GazeX != 0 || tg.GazeY != 0 {
		t.Errorf("expected center for unknown position, got (%v,%v)", tg.GazeX, tg.GazeY)
	}
}

func TestSetMood_ReplacesEmotion(t *testing.T) {
	e, _ := newTestEngine()
	e.SetMood(MoodAngry)
	e.SetMood(MoodTired)

	tg := e.Targets()
	if tg.Fatigue != 1 || tg.Anger != 0 {
		t.Errorf("expected only fatigue, got fatigue %v anger %v", tg.Fatigue, tg.Anger)
	}

	e.SetMood(MoodDefault)
	if tg := e.Targets(); tg.Fatigue != 0 || tg.Joy != 0 || tg.Anger != 0 {
		t.Errorf("expected neutral mood, got %+v", tg)
	}
}

func TestSetMood_UnknownIsNeutral(t *testing.T) {
	e, _ := newTestEngine()
	e.SetMood(MoodHappy)
	e.SetLove(1)
	e.SetMood(Mood(42))

	tg := e.Targets()
	if tg.Joy != 0 || tg.Anger != 0 || tg.Fatigue != 0 || tg.Love != 0 {
		t.Errorf("expected every emotion at 0 for an unknown mood, got %+v", tg)
	}
}

func TestStartMouthAnimCode_Laugh(t *testing.T) {
	e, _ := newTestEngine()
	e.StartMouthAnimCode(4, 500)
	if e.Active() != OverlayLaugh {
		t.Fatalf("expected laugh, got %s", e.Active())
	}
	if r := e.Remaining(OverlayLaugh); absf(r-0.5) > 1e-6 {
		t.Errorf("expected 0.5s left, got %v", r)
	}
}

func TestAnimTriggers_DefaultDurations(t *testing.T) {
	e, _ := newTestEngine()
	e.AnimCry()
	if r := e.Remaining(OverlayCry); r != DefaultCryDuration {
		t.Errorf("expected %v, got %v", DefaultCryDuration, r)
	}
	e.AnimKnocked()
	if e.Active() != OverlayKnocked {
		t.Errorf("expected knocked, got %s", e.Active())
	}
}
