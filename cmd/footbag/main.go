package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/footbag/audio"
	"github.com/lixenwraith/footbag/config"
	"github.com/lixenwraith/footbag/input"
	"github.com/lixenwraith/footbag/status"
)

var (
	configFlag      = flag.String("config", "", "Path to a TOML config file")
	seedFlag        = flag.Uint64("seed", 0, "Random seed; 0 uses the config value or the clock")
	debugFlag       = flag.Bool("debug", false, "Enable file logging and the debug overlay")
	muteFlag        = flag.Bool("mute", false, "Start with sound muted")
	writeConfigFlag = flag.String("write-config", "", "Write the effective config to this path and exit")
)

func main() {
	flag.Parse()
	os.Exit(realMain(run))
}

// realMain loads configuration and hands it to start, returning the process
// exit code. Deferred cleanup runs before main calls os.Exit.
func realMain(start func(*config.Config, *input.KeyTable) error) int {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "footbag: %v\n", err)
		return 1
	}
	applyFlags(cfg)

	if *writeConfigFlag != "" {
		if err := config.Save(*writeConfigFlag, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "footbag: %v\n", err)
			return 1
		}
		return 0
	}

	keys, err := input.BuildKeyTable(cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "footbag: keys: %v\n", err)
		return 1
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := start(cfg, keys); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "footbag: %v\n", err)
		return 1
	}
	return 0
}

// applyFlags layers command-line flags over the loaded config
func applyFlags(cfg *config.Config) {
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
}

func run(cfg *config.Config, keys *input.KeyTable) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mFOOTBAG CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	registry := status.NewRegistry()

	sound := audio.NewSoundManager(cfg.Audio, registry)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio unavailable, continuing silent: %v", err)
	} else {
		defer sound.Cleanup()
	}

	log.Printf("start seed=%d fps=%d", cfg.Seed, cfg.FPS)
	s := newSession(screen, keys, sound, registry, sessionOptions{
		Seed:  cfg.Seed,
		FPS:   cfg.FPS,
		Debug: cfg.Debug,
	})

	eventChan := make(chan tcell.Event, 256)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(s.stepper.Interval())
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !s.handle(ev) {
				log.Printf("quit at score %d", s.game.Score())
				return nil
			}
		case <-frameTicker.C:
			s.tick()
		}
	}
}
