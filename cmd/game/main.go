// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Karyazilim/6cPastaSavasi/internal/assets"
	"github.com/Karyazilim/6cPastaSavasi/internal/audio"
	"github.com/Karyazilim/6cPastaSavasi/internal/config"
	"github.com/Karyazilim/6cPastaSavasi/internal/state"
)

const version = "1.0.0"

// App adapts the state machine to ebiten's game loop, measuring wall-clock
// delta time with a clamp so a long frame never teleports entities.
type App struct {
	ctx            *state.Context
	machine        *state.StateMachine
	lastUpdateTime time.Time
	interrupt      chan os.Signal
}

func (a *App) Update() error {
	select {
	case <-a.interrupt:
		return ebiten.Termination
	default:
	}

	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	a.machine.Update(deltaTime)

	if a.ctx.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.machine.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.ctx.Config.ScreenWidth, a.ctx.Config.ScreenHeight
}

func main() {
	fullscreen := flag.Bool("fullscreen", false, "launch in fullscreen mode")
	windowed := flag.String("windowed", "", "launch windowed at WIDTHxHEIGHT (e.g. 1024x768)")
	aiFlag := flag.String("ai", "", "AI difficulty: easy|normal|hard")
	seed := flag.Int64("seed", 0, "random seed for deterministic AI behavior (0 = time-based)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("6C Sınıfı - Pasta Savaşı v%s\n", version)
		return
	}
	if *fullscreen && *windowed != "" {
		log.Fatal("-fullscreen and -windowed are mutually exclusive")
	}

	settings, err := config.LoadSettings(config.SettingsFile)
	if err != nil {
		log.Printf("settings: %v, using defaults", err)
	}

	cfg := config.Default()
	if w, h, err := config.ParseResolution(settings.Resolution); err == nil {
		cfg.ScreenWidth, cfg.ScreenHeight = w, h
	}
	if d, err := config.ParseDifficulty(settings.Difficulty); err == nil {
		cfg.Difficulty = d
	}

	// Command line beats the settings file. A malformed value is rejected
	// here, before the simulation is ever constructed.
	if *windowed != "" {
		w, h, err := config.ParseResolution(*windowed)
		if err != nil {
			log.Fatal(err)
		}
		cfg.ScreenWidth, cfg.ScreenHeight = w, h
	}
	if *aiFlag != "" {
		d, err := config.ParseDifficulty(*aiFlag)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Difficulty = d
		settings.Difficulty = d.String()
	}
	cfg.Seed = *seed
	if *seed != 0 {
		log.Printf("using random seed: %d", *seed)
	}

	ctx := &state.Context{
		Config:       cfg,
		Settings:     settings,
		SettingsPath: config.SettingsFile,
	}

	fonts, err := assets.LoadFonts()
	if err != nil {
		log.Printf("fonts: %v, using fallback face", err)
	}
	ctx.Fonts = fonts

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Printf("audio: %v, continuing without sound", err)
	}
	sound.SetVolume(settings.Volume)
	ctx.Sound = sound
	defer sound.Cleanup()

	machine := state.NewStateMachine()
	ctx.Machine = machine
	machine.SetState(state.NewMenuState(ctx))

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	app := &App{
		ctx:            ctx,
		machine:        machine,
		lastUpdateTime: time.Now(),
		interrupt:      interrupt,
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("6C Sınıfı - Pasta Savaşı")
	if *fullscreen || settings.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	log.Printf("starting, AI difficulty: %s, %dx%d", cfg.Difficulty, cfg.ScreenWidth, cfg.ScreenHeight)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		sound.Cleanup()
		log.Fatal(err)
	}
}
