// Command abyss runs the tentacle animation in the terminal
// Drag the core with the mouse; Space fires the energy bridge
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/abyss/audio"
	"github.com/lixenwraith/abyss/config"
	"github.com/lixenwraith/abyss/core"
	"github.com/lixenwraith/abyss/engine"
	"github.com/lixenwraith/abyss/parameter"
	"github.com/lixenwraith/abyss/render"
	"github.com/lixenwraith/abyss/status"
	"github.com/lixenwraith/abyss/terminal"
	"github.com/lixenwraith/abyss/vmath"
)

var (
	configPath = flag.String("config", "", "TOML parameter file overlaid on the defaults")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 derives one from the clock")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	fpsFlag    = flag.Int("fps", 0, "Target frame rate, 0 keeps the configured rate")
	noAudio    = flag.Bool("no-audio", false, "Disable audio output")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configPath)
	if err == nil && *fpsFlag > 0 {
		cfg.Engine.FPS = *fpsFlag
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "abyss: %v\n", err)
		os.Exit(1)
	}
	if *configPath != "" {
		log.Printf("config loaded from %s", *configPath)
	}

	term, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "abyss: %v\n", err)
		os.Exit(1)
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "abyss: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashTerminal(term)
	// Normal exit terminal cleanup
	defer term.Fini()

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	cols, rows := term.Size()
	ww, wh := render.WorldSize(cols, rows)
	world := engine.NewWorld(cfg, ww, wh, vmath.NewFastRand(seed))
	log.Printf("seed %d, color mode %s", seed, term.ColorMode())

	// Audio failure is non-fatal, the animation runs silent
	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = !*noAudio
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(*muteFlag)

	a := newApp(term, world, status.NewRegistry(), sound, engine.MonotonicTimeProvider{})

	eventChan := make(chan terminal.Event, parameter.EventQueueSize)
	core.Go(func() {
		for {
			ev := term.PollEvent()
			eventChan <- ev
			// Clean exit on terminal closure or error
			if ev.Type == terminal.EventClosed || ev.Type == terminal.EventError {
				return
			}
		}
	})

	frameTicker := time.NewTicker(cfg.FrameInterval())
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if ev.Type == terminal.EventError {
				log.Printf("terminal error: %v", ev.Err)
			}
			if !a.handleEvent(ev) {
				return
			}
		case now := <-frameTicker.C:
			a.frame(now)
		}
	}
}
