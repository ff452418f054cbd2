package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ncc-erp/ncc-lucky-draw/audio"
	"github.com/ncc-erp/ncc-lucky-draw/config"
	"github.com/ncc-erp/ncc-lucky-draw/core"
	"github.com/ncc-erp/ncc-lucky-draw/reel"
)

const frameInterval = 16 * time.Millisecond

var (
	configFlag = flag.String("config", "lucky-draw.yaml", "Path to the YAML configuration")
	envFlag    = flag.String("env", ".env", "Path to a dotenv file seeding LUCKY_DRAW_* variables")
	debugFlag  = flag.Bool("debug", false, "Write a debug log under the configured log directory")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	// Ensure the terminal is restored even if the draw crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, logFile := setupLogging(*debugFlag, cfg.LogDir)
	if logFile != nil {
		defer logFile.Close()
	}
	logger.Info().
		Int("names", len(cfg.Names)).
		Int("excluded", len(cfg.Exclude)).
		Int("max_reel_items", cfg.MaxReelItems).
		Bool("remove_winner", cfg.RemoveWinner).
		Msg("configuration loaded")

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()

	// Audio is optional; the draw runs silently without a device
	sound := audio.NewSoundManager()
	if cfg.Sound {
		if err := sound.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("audio initialization failed, continuing without audio")
		} else {
			defer sound.Cleanup()
		}
	}
	sound.SetMuted(*muteFlag)

	a := newApp(screen, cfg, reel.SystemClock{}, sound, logger)
	a.cfgPath = *configFlag
	a.envPath = *envFlag

	eventChan := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(frameInterval)
	defer frameTicker.Stop()

	a.render()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				logger.Info().Msg("exit requested")
				return
			}
		case <-frameTicker.C:
			a.render()
		}
	}
}
