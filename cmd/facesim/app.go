package main

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"nifri2/proto-face/cmd"
	"nifri2/proto-face/face"
	"nifri2/proto-face/prefs"
	"nifri2/proto-face/raster"
)

// how long a typed command holds before the shuffle resumes
const commandHold = 8 * time.Second

var (
	promptStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	errorStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

type app struct {
	screen   tcell.Screen
	display  *termDisplay
	canvas   *raster.Canvas
	face     *face.Engine
	handler  *cmd.Handler
	shuffler *cmd.Shuffler
	store    *prefs.Store
	sound    *sound
	now      func() time.Time

	input     []rune
	status    string
	failed    bool
	shuffle   bool
	holdUntil time.Time
	quit      bool
}

func newApp(screen tcell.Screen, store *prefs.Store, snd *sound, now func() time.Time) *app {
	if now == nil {
		now = time.Now
	}
	p := store.Prefs()

	display := newTermDisplay(screen, cmd.ScreenWidth, cmd.ScreenHeight, 0, 0)
	canvas := raster.New(display)
	e := face.New(canvas, face.WithClock(now))
	p.Face.Apply(e)

	h := cmd.NewHandler(e)
	p.Face.ApplyHandler(h)

	sh := cmd.NewShuffler(rand.New(rand.NewSource(now().UnixNano())))
	p.Face.ApplyShuffle(sh)

	snd.SetMuted(!p.Sound)

	a := &app{
		screen:   screen,
		display:  display,
		canvas:   canvas,
		face:     e,
		handler:  h,
		shuffler: sh,
		store:    store,
		sound:    snd,
		now:      now,
		shuffle:  p.Shuffle,
		status:   "type help and press enter",
	}
	e.Begin(cmd.ScreenWidth, cmd.ScreenHeight, p.Face.FrameRate)
	return a
}

// run drives the face until the context ends or the user quits.
func (a *app) run(ctx context.Context) {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(a.tickInterval())
	defer ticker.Stop()

	for !a.quit {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			a.event(ev)
		case <-ticker.C:
			a.tick()
		}
	}
}

func (a *app) event(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		a.key(ev)
	}
}

func (a *app) key(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.quit = true
	case tcell.KeyEnter:
		line := string(a.input)
		a.input = a.input[:0]
		a.submit(line)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.input) > 0 {
			a.input = a.input[:len(a.input)-1]
		}
	case tcell.KeyRune:
		a.input = append(a.input, ev.Rune())
	}
	a.drawPrompt()
	a.screen.Show()
}

// submit runs a typed line. The simulator keeps a few words for itself and hands the
// rest to the command handler.
func (a *app) submit(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	slog.Debug("command", "line", line)

	switch strings.ToLower(line) {
	case "quit", "exit":
		a.quit = true
		return
	case "shuffle":
		a.shuffle = !a.shuffle
		a.shuffler.Reset()
		a.holdUntil = time.Time{}
		a.report("Shuffle: "+onOff(a.shuffle), nil)
		return
	case "sound":
		a.sound.SetMuted(!a.sound.Muted())
		a.report("Sound: "+onOff(!a.sound.Muted()), nil)
		return
	case "save":
		a.report("Saved", a.save())
		return
	}

	resp, err := a.handler.Handle(line)
	a.holdUntil = a.now().Add(commandHold)
	a.shuffler.Reset()
	if err != nil {
		slog.Warn("command failed", "line", line, "error", err)
	}
	a.report(strings.Join(resp, "; "), err)
}

func (a *app) report(msg string, err error) {
	if err != nil {
		if msg != "" {
			msg += "; "
		}
		a.status = msg + err.Error()
		a.failed = true
		a.sound.Play(cueReject)
		return
	}
	a.status = strings.Join(strings.Fields(msg), " ")
	a.failed = false
	a.sound.Play(cueAccept)
}

// tickInterval is half a frame so ticker jitter never pushes a frame out by a whole
// interval.
func (a *app) tickInterval() time.Duration {
	return max(a.face.FrameInterval()/2, time.Millisecond)
}

// tick advances the shuffle and the face, and shows the frame if one was drawn.
func (a *app) tick() bool {
	now := a.now()
	if a.shuffle && !now.Before(a.holdUntil) {
		if x, ok := a.shuffler.Next(now); ok {
			a.handler.Express(x)
			slog.Debug("shuffle", "expression", x.String())
		}
	}
	if !a.face.Update() {
		return false
	}
	if err := a.canvas.Err(); err != nil {
		slog.Error("display", "error", err)
	}
	a.drawPrompt()
	a.screen.Show()
	return true
}

func (a *app) drawPrompt() {
	y := a.display.Rows() + 1
	a.drawLine(y, "> "+string(a.input), promptStyle)
	style := statusStyle
	if a.failed {
		style = errorStyle
	}
	a.drawLine(y+1, a.status, style)
}

func (a *app) drawLine(y int, text string, style tcell.Style) {
	w, _ := a.screen.Size()
	x := 0
	for _, r := range text {
		if x >= w {
			break
		}
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		a.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

// save writes the live face settings back to the preferences store.
func (a *app) save() error {
	p := a.store.Prefs()
	p.Face.Capture(a.face, a.handler)
	p.Sound = !a.sound.Muted()
	p.Shuffle = a.shuffle
	return a.store.Save()
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
