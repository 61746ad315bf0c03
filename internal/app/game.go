// internal/app/game.go
package app

import (
	"errors"
	"log/slog"
	"sync"

	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/internal/system"
	"go-td-sim/internal/types"

	"github.com/google/uuid"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrSpotOccupied      = errors.New("spot already has a tower")
	ErrUnknownSpot       = errors.New("unknown build spot")
	ErrUnknownTower      = errors.New("unknown tower")
	ErrUnknownTowerKind  = errors.New("unknown tower kind")
	ErrGameOver          = errors.New("game is over")
)

// Economy is the player's state after an action.
type Economy struct {
	Money  int
	Health int
}

// Game holds the main game state and logic.
//
// All mutation goes through Tick and the player actions, which take the write lock.
// Renderers read through Snapshot.
type Game struct {
	ID      uuid.UUID
	Level   *defs.Level
	Library *defs.Library

	mu                 sync.RWMutex
	ECS                *entity.ECS
	AuraSystem         *system.AuraSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	MovementSystem     *system.MovementSystem
	WaveSystem         *system.WaveSystem
	VisualEffectSystem *system.VisualEffectSystem
	StateSystem        *system.StateSystem
	PlayerSystem       *system.PlayerSystem
	EventDispatcher    *event.Dispatcher

	logger     *slog.Logger
	spots      []types.EntityID // tower on each build spot, 0 if empty
	isPaused   bool
	speedIndex int
}

// NewGame initializes a new game instance on level. A nil logger means slog.Default().
func NewGame(level *defs.Level, lib *defs.Library, logger *slog.Logger) *Game {
	if level == nil || lib == nil {
		panic("level and library cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	id := uuid.New()
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ID:                 id,
		Level:              level,
		Library:            lib,
		ECS:                ecs,
		AuraSystem:         system.NewAuraSystem(ecs),
		CombatSystem:       system.NewCombatSystem(ecs),
		ProjectileSystem:   system.NewProjectileSystem(ecs),
		MovementSystem:     system.NewMovementSystem(ecs, eventDispatcher),
		WaveSystem:         system.NewWaveSystem(ecs, lib, level.Path, eventDispatcher),
		VisualEffectSystem: system.NewVisualEffectSystem(ecs),
		PlayerSystem:       system.NewPlayerSystem(ecs),
		EventDispatcher:    eventDispatcher,
		logger:             logger.With("game_id", id.String()),
		spots:              make([]types.EntityID, len(level.Spots)),
	}

	// The economy must settle before anyone else hears about a kill or a wave end.
	eventDispatcher.Subscribe(event.EnemyDestroyed, g.PlayerSystem)
	eventDispatcher.Subscribe(event.EnemyLeaked, g.PlayerSystem)
	eventDispatcher.Subscribe(event.WaveEnded, g.PlayerSystem)
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.WaveStarted, listener)
	eventDispatcher.Subscribe(event.WaveEnded, listener)
	eventDispatcher.Subscribe(event.GameOver, listener)

	return g
}

// GameEventListener пишет в лог важные для игрока события.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	ecs := l.game.ECS
	switch data := e.Data.(type) {
	case event.WaveStartedData:
		l.game.logger.Info("wave started", "wave", data.Wave, "enemies", data.Enemies)
	case event.WaveEndedData:
		l.game.logger.Info("wave complete", "wave", data.Wave, "bonus", data.Bonus, "money", ecs.Player.Money)
	case event.GameOverData:
		l.game.logger.Warn("game over", "wave", data.Wave, "time", ecs.GameTime)
	}
}

// Subscribe registers an external listener. Listeners run on the simulation
// goroutine with the game lock held.
func (g *Game) Subscribe(eventType event.EventType, listener event.Listener) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.EventDispatcher.Subscribe(eventType, listener)
}

// Tick advances the simulation by one fixed step of dt seconds.
func (g *Game) Tick(dt float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tick(dt)
}

func (g *Game) tick(dt float64) {
	if g.StateSystem.CheckGameOver() {
		return
	}
	g.ECS.GameTime += dt
	g.ECS.Tick++

	g.AuraSystem.Update(dt)
	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.WaveSystem.Update(dt)
	g.VisualEffectSystem.Update(dt)

	g.ECS.Commit()
}

// Frame runs one host frame: the current speed multiplier worth of fixed ticks,
// or nothing while paused.
func (g *Game) Frame() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.isPaused {
		return
	}
	for range g.speedMultiplier() {
		g.tick(config.FixedStep)
	}
}

// StartWave begins the next enemy wave. It is a no-op while a wave is running.
func (g *Game) StartWave() (Economy, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.isOver() {
		return g.economy(), ErrGameOver
	}
	started, err := g.WaveSystem.StartWave()
	if err != nil {
		return g.economy(), err
	}
	if !started {
		g.logger.Debug("wave already running", "wave", g.ECS.Wave.Number)
	}
	return g.economy(), nil
}

func (g *Game) SetPaused(paused bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.isPaused = paused
}

func (g *Game) TogglePause() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.isPaused = !g.isPaused
	return g.isPaused
}

func (g *Game) IsPaused() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.isPaused
}

// CycleSpeed switches 1× → 2× → 4× → 1× and returns the new multiplier.
func (g *Game) CycleSpeed() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.speedIndex = (g.speedIndex + 1) % len(config.SpeedMultipliers)
	return config.SpeedMultipliers[g.speedIndex]
}

func (g *Game) Speed() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.speedMultiplier()
}

func (g *Game) speedMultiplier() int {
	return config.SpeedMultipliers[g.speedIndex]
}

func (g *Game) IsOver() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.isOver()
}

func (g *Game) isOver() bool {
	return g.ECS.GameState == component.GameOverState || g.ECS.Player.IsDefeated()
}

func (g *Game) economy() Economy {
	return Economy{Money: g.ECS.Player.Money, Health: g.ECS.Player.Health}
}
