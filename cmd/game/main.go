// cmd/game/main.go
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxFrameTime {
		deltaTime = config.MaxFrameTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	defsDir := flag.String("defs", "", "directory with towers.json and enemies.json (default: built-in)")
	levelPath := flag.String("level", "", "level JSON file (default: built-in)")
	menu := flag.Bool("menu", false, "start from the menu instead of the game")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	lib, err := loadLibrary(*defsDir)
	if err != nil {
		logger.Error("failed to load definitions", "error", err)
		os.Exit(1)
	}
	lvl, err := loadLevel(*levelPath)
	if err != nil {
		logger.Error("failed to load level", "error", err)
		os.Exit(1)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if *menu {
		sm.SetState(state.NewMenuState(sm, lvl, lib, logger))
	} else {
		sm.SetState(state.NewGameState(sm, lvl, lib, logger))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tower Defense")
	ebiten.SetTPS(int(config.TickRate))
	if err := ebiten.RunGame(app); err != nil {
		logger.Error("game exited with error", "error", err)
		os.Exit(1)
	}
}

func loadLibrary(dir string) (*defs.Library, error) {
	if dir == "" {
		return defs.DefaultLibrary()
	}
	return defs.LoadLibrary(dir)
}

func loadLevel(path string) (*defs.Level, error) {
	if path == "" {
		return defs.DefaultLevel()
	}
	return defs.LoadLevel(path)
}
