// internal/system/movement.go
package system

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
)

// MovementSystem лечит, двигает и убирает врагов.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update runs the enemy phase of a tick. Healers heal before anyone moves; then every
// enemy advances and is removed if it died or reached the end of the path.
func (s *MovementSystem) Update(deltaTime float64) {
	for _, e := range s.ecs.Enemies {
		if !e.IsDead() {
			e.HealNearby(s.ecs.Enemies, deltaTime)
		}
	}

	s.ecs.FilterEnemies(func(e *component.Enemy) bool {
		e.Advance(deltaTime)
		switch {
		case e.IsDead():
			s.ecs.SpawnEffect(component.NewVisualEffect(e.Position, config.DeathEffectRadius, config.DeathEffectLife, config.ColorGold))
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemyDestroyed,
				Data: event.EnemyData{EnemyID: e.ID, Kind: e.Kind, Bounty: e.Bounty},
			})
			return false
		case e.HasReachedEnd():
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemyLeaked,
				Data: event.EnemyData{EnemyID: e.ID, Kind: e.Kind},
			})
			return false
		default:
			return true
		}
	})
}
