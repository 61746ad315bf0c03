// internal/state/menu_state.go
package state

import (
	"image/color"
	"log/slog"

	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран
type MenuState struct {
	sm      *StateMachine
	level   *defs.Level
	library *defs.Library
	logger  *slog.Logger
}

func NewMenuState(sm *StateMachine, level *defs.Level, lib *defs.Library, logger *slog.Logger) *MenuState {
	return &MenuState{sm: sm, level: level, library: lib, logger: logger}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.level, m.library, m.logger))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255}) // Чёрный экран
	ebitenutil.DebugPrintAt(screen, "TOWER DEFENSE", config.ScreenWidth/2-40, config.ScreenHeight/2-40)
	ebitenutil.DebugPrintAt(screen, "Press Space to start", config.ScreenWidth/2-60, config.ScreenHeight/2)
	ebitenutil.DebugPrintAt(screen, "1-5 tower  U upgrade  S sell  T target  N wave  P pause  F speed",
		config.ScreenWidth/2-190, config.ScreenHeight/2+30)
}

func (m *MenuState) Exit() {}
