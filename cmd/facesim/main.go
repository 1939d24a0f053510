// Command facesim runs the face in a terminal. Each text row shows two rows of pixels
// and typed lines are run as face commands.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"nifri2/proto-face/cmd"
	"nifri2/proto-face/prefs"
)

func main() {
	var (
		logPath    = flag.String("log", "", "write logs to this file")
		debug      = flag.Bool("debug", false, "log at debug level")
		configPath = flag.String("config", "", "YAML face config; replaces the saved one")
		noSound    = flag.Bool("nosound", false, "start muted")
		noShuffle  = flag.Bool("noshuffle", false, "start with the shuffle off")
		resetPrefs = flag.Bool("reset-prefs", false, "forget saved preferences")
	)
	flag.Parse()

	if err := run(*logPath, *debug, *configPath, *noSound, *noShuffle, *resetPrefs); err != nil {
		fmt.Fprintln(os.Stderr, "facesim:", err)
		os.Exit(1)
	}
}

func run(logPath string, debug bool, configPath string, noSound, noShuffle, resetPrefs bool) error {
	// the terminal owns stdout, so logs go to a file or nowhere
	var w io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		w = f
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))

	store, err := prefs.Open(prefs.AppName)
	if err != nil {
		slog.Warn("preferences kept in memory", "error", err)
	}
	if resetPrefs {
		if err := store.Reset(); err != nil {
			slog.Error("reset preferences", "error", err)
		}
	} else if err := store.Load(); err != nil {
		slog.Warn("using default preferences", "error", err)
	}

	p := store.Prefs()
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		c, err := cmd.ParseConfig(data)
		if err != nil {
			return err
		}
		p.Face = c
		p.Shuffle = c.Shuffle.Enabled
	}
	if noSound {
		p.Sound = false
	}
	if noShuffle {
		p.Shuffle = false
	}

	snd := newSound()
	if err := snd.Open(); err != nil {
		slog.Warn("sound disabled", "error", err)
	}
	defer snd.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp(screen, store, snd, nil)
	slog.Info("face started", "persistent", store.Persistent(), "fps", p.Face.FrameRate)
	a.run(ctx)

	if err := a.save(); err != nil {
		slog.Error("save preferences", "error", err)
	}
	slog.Info("face stopped")
	return nil
}
