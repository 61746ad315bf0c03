// internal/state/game_state.go
package state

import (
	"errors"
	"log/slog"

	"go-td-sim/internal/app"
	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/types"
	"go-td-sim/internal/ui"
	"go-td-sim/pkg/geom"
	"go-td-sim/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	loop     *app.Loop
	renderer *render.FieldRenderer
	panel    *ui.SidePanel
	logger   *slog.Logger

	level   *defs.Level
	library *defs.Library

	chosen   defs.TowerKind // что строим следующим кликом
	selected types.EntityID
}

func NewGameState(sm *StateMachine, level *defs.Level, lib *defs.Library, logger *slog.Logger) *GameState {
	gameLogic := app.NewGame(level, lib, logger)

	mapColors := render.MapColors{
		BackgroundColor: config.BackgroundColor,
		PathColor:       config.PathColor,
		SpotColor:       config.SpotColor,
		SpotHoverColor:  config.SpotHoverColor,
		SelectionColor:  config.SelectionColor,
		PathWidth:       float32(config.TileSize * 0.8),
	}

	return &GameState{
		sm:       sm,
		game:     gameLogic,
		loop:     app.NewLoop(gameLogic),
		renderer: render.NewFieldRenderer(level, mapColors),
		panel:    ui.NewSidePanel(lib),
		logger:   logger,
		level:    level,
		library:  lib,
		chosen:   defs.TowerCannon,
	}
}

// Enter снимает паузу, в том числе при возврате из PauseState.
func (g *GameState) Enter() {
	g.game.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	if g.game.IsOver() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sm.SetState(NewGameState(g.sm, g.level, g.library, g.logger))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.panel.PulsePause()
		g.pause()
		return
	}
	g.handleKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.panel.Contains(x, y) {
			if g.handlePanelClick(x, y) {
				return
			}
		} else {
			g.handleFieldClick(x, y)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.selected = 0
	}

	g.loop.Advance(deltaTime)
}

func (g *GameState) handleKeys() {
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5} {
		if i < len(defs.TowerKinds) && inpututil.IsKeyJustPressed(key) {
			g.chosen = defs.TowerKinds[i]
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.startWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.panel.PulseSpeed()
		g.game.CycleSpeed()
	}
	if g.selected == 0 {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		g.upgrade()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.sell()
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.cycleTargeting()
	}
}

// handlePanelClick возвращает true, если игра ушла в другое состояние.
func (g *GameState) handlePanelClick(x, y int) bool {
	action, kind := g.panel.HandleClick(x, y, g.selected != 0)
	switch action {
	case ui.ActionSelectKind:
		g.chosen = kind
	case ui.ActionStartWave:
		g.startWave()
	case ui.ActionUpgrade:
		g.upgrade()
	case ui.ActionSell:
		g.sell()
	case ui.ActionTarget:
		g.cycleTargeting()
	case ui.ActionSpeed:
		g.game.CycleSpeed()
	case ui.ActionPause:
		g.pause()
		return true
	}
	return false
}

func (g *GameState) handleFieldClick(x, y int) {
	p := geom.Point{X: float64(x), Y: float64(y)}
	if id, ok := g.game.TowerAtPoint(p); ok {
		g.selected = id
		return
	}
	spot, ok := g.game.SpotAt(p)
	if !ok {
		g.selected = 0
		return
	}
	id, _, err := g.game.PlaceTower(spot, g.chosen)
	if err != nil {
		g.report("place tower", err)
		return
	}
	g.selected = id
}

func (g *GameState) startWave() {
	if _, err := g.game.StartWave(); err != nil {
		g.report("start wave", err)
	}
}

func (g *GameState) upgrade() {
	if _, err := g.game.UpgradeTower(g.selected); err != nil {
		g.report("upgrade tower", err)
	}
}

func (g *GameState) sell() {
	if _, err := g.game.SellTower(g.selected); err != nil {
		g.report("sell tower", err)
		return
	}
	g.selected = 0
}

func (g *GameState) cycleTargeting() {
	if _, err := g.game.CycleTargeting(g.selected); err != nil {
		g.report("cycle targeting", err)
	}
}

func (g *GameState) pause() {
	g.game.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g))
}

// report логирует отказ команды. Нехватка денег и конец игры — обычные ситуации.
func (g *GameState) report(op string, err error) {
	if errors.Is(err, app.ErrInsufficientFunds) || errors.Is(err, app.ErrGameOver) {
		g.logger.Debug("command rejected", "op", op, "error", err)
		return
	}
	g.logger.Warn("command failed", "op", op, "error", err)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()

	hover := -1
	x, y := ebiten.CursorPosition()
	if spot, ok := g.game.SpotAt(geom.Point{X: float64(x), Y: float64(y)}); ok {
		hover = spot
	}
	var selected *component.Tower
	if g.selected != 0 {
		if t, ok := snap.Tower(g.selected); ok {
			selected = t
		}
	}

	g.renderer.Draw(screen, &snap, hover, selected)
	g.panel.Draw(screen, &snap, g.chosen, selected)
}

func (g *GameState) Exit() {}
