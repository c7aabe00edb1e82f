package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bughunt/audio"
	"github.com/lixenwraith/bughunt/config"
	"github.com/lixenwraith/bughunt/game"
	"github.com/lixenwraith/bughunt/input"
	"github.com/lixenwraith/bughunt/render"
)

const (
	logDir      = "logs"
	logFileName = "bughunt.log"

	// One frame per tick; the snake auto-advances every Speed ticks.
	frameInterval = 16 * time.Millisecond
)

var (
	configFlag = flag.String("config", config.DefaultPath, "path to the settings file")
	seedFlag   = flag.Int64("seed", 0, "override the RNG seed (0 = from the clock)")
	debugFlag  = flag.Bool("debug", false, "write a debug log to logs/bughunt.log")
	quietFlag  = flag.Bool("quiet", false, "start with sound muted")
)

// setupLogging routes the stdlib logger to a file when debugging and
// discards it otherwise; a TUI cannot log to stdout
func setupLogging(debugEnabled bool) *os.File {
	if !debugEnabled {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bughunt: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace so it
	// lands on a sane screen
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "BUGHUNT CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))
	screen.HideCursor()

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(*quietFlag || !cfg.Sound)

	ctrl, err := game.NewController(cfg.Game())
	if err != nil {
		panic(err)
	}
	renderer := render.New(screen)

	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(frameInterval)
	defer frameTicker.Stop()

	ticksSinceMove := 0

	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				renderer.Frame(ctrl, sound.Muted())
				continue
			}

			cmd := input.Map(ev)
			if cmd.Op == input.OpQuit {
				return
			}

			// Any key resets a finished game
			if ctrl.Status().Terminal() && cmd.Op != input.OpNone {
				ctrl, err = game.NewController(cfg.Game())
				if err != nil {
					panic(err)
				}
				ticksSinceMove = 0
				renderer.Frame(ctrl, sound.Muted())
				continue
			}

			switch cmd.Op {
			case input.OpMove:
				step(ctrl, cmd.Dir, sound)
				ticksSinceMove = 0
			case input.OpHint:
				ctrl.CycleHint(cmd.Delta)
			case input.OpPause:
				ctrl.TogglePause()
			case input.OpMute:
				sound.ToggleMute()
			}
			renderer.Frame(ctrl, sound.Muted())

		case <-frameTicker.C:
			if cfg.Speed > 0 && ctrl.Status() == game.StatusRunning {
				ticksSinceMove++
				if ticksSinceMove >= cfg.Speed {
					step(ctrl, ctrl.Heading(), sound)
					ticksSinceMove = 0
				}
			}
			renderer.Frame(ctrl, sound.Muted())
		}
	}
}

// step advances the game and plays the matching cue
func step(ctrl *game.Controller, dir game.Direction, sound *audio.SoundManager) {
	before := ctrl.Status()
	res := ctrl.Step(dir)
	switch {
	case res.Status == game.StatusWon && before == game.StatusRunning:
		sound.PlayWin()
	case res.Status == game.StatusGameOver && before == game.StatusRunning:
		sound.PlayGameOver()
	case res.Grew:
		sound.PlayEat()
	}
}
