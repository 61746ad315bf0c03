// internal/system/wave.go
package system

import (
	"fmt"

	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/pkg/geom"
)

type WaveSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	path            *geom.Path
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, lib *defs.Library, path *geom.Path, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		lib:             lib,
		path:            path,
		eventDispatcher: eventDispatcher,
	}
}

// StartWave spawns the next wave. It does nothing and returns false while a wave is running.
func (s *WaveSystem) StartWave() (bool, error) {
	if s.ecs.Wave.InProgress {
		return false, nil
	}

	n := s.ecs.Wave.Number + 1
	stats := defs.StatsForWave(n)
	enemies := make([]*component.Enemy, 0, stats.Count)
	for slot := range stats.Count {
		e, err := s.spawnEnemy(stats, slot)
		if err != nil {
			return false, fmt.Errorf("wave %d slot %d: %w", n, slot, err)
		}
		enemies = append(enemies, e)
	}

	for _, e := range enemies {
		s.ecs.AddEnemy(e)
	}
	s.ecs.Wave = component.Wave{Number: n, InProgress: true, Spawned: len(enemies)}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveStartedData{Wave: n, Enemies: len(enemies)},
	})
	return true, nil
}

// spawnEnemy creates the enemy for slot, placed behind the path entry so the
// column walks in one after another.
func (s *WaveSystem) spawnEnemy(stats defs.WaveStats, slot int) (*component.Enemy, error) {
	kind := defs.KindForSlot(stats.Number, slot)
	def, ok := s.lib.Enemy(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", defs.ErrMissingEnemy, kind)
	}

	health, speed := stats.Health, stats.Speed
	if !def.WaveScaled {
		health, speed = def.HealthAt(stats.Number), def.Speed
	}

	dx, dy := s.path.EntryDirection()
	offset := float64(slot) * config.EnemySpacing
	pos := s.path.At(0).Add(-dx*offset, -dy*offset)

	return component.NewEnemy(s.ecs.NewEntity(), def, health, speed, s.path, pos), nil
}

// Update завершает волну, когда на поле не осталось врагов.
func (s *WaveSystem) Update(deltaTime float64) {
	if !s.ecs.Wave.InProgress || len(s.ecs.Enemies) > 0 {
		return
	}
	s.ecs.Wave.InProgress = false
	bonus := WaveBonus(s.ecs.Wave.Number, s.ecs.Player.Money)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveEnded,
		Data: event.WaveEndedData{Wave: s.ecs.Wave.Number, Bonus: bonus},
	})
}
