// internal/entity/ecs.go
package entity

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/types"
)

// ECS owns every live entity of one game.
//
// Entities are kept in slices so iteration order is insertion order; targeting ties
// are broken by that order. Projectiles and effects created during a tick go to the
// pending lists and only become visible after Commit.
type ECS struct {
	GameTime float64 // simulated seconds
	Tick     int64   // fixed ticks simulated
	NextID   types.EntityID

	Towers      []*component.Tower
	Enemies     []*component.Enemy
	Projectiles []*component.Projectile
	Effects     []*component.VisualEffect

	towerIndex map[types.EntityID]*component.Tower
	enemyIndex map[types.EntityID]*component.Enemy

	pendingProjectiles []*component.Projectile
	pendingEffects     []*component.VisualEffect

	Player    component.Player
	Wave      component.Wave
	GameState component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		towerIndex: make(map[types.EntityID]*component.Tower),
		enemyIndex: make(map[types.EntityID]*component.Enemy),
		Player: component.Player{
			Money:  config.StartingMoney,
			Health: config.StartingHealth,
		},
		GameState: component.BuildState,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddTower registers a tower. Towers are only placed between ticks, so they skip the pending stage.
func (ecs *ECS) AddTower(t *component.Tower) {
	ecs.Towers = append(ecs.Towers, t)
	ecs.towerIndex[t.ID] = t
}

// RemoveTower unregisters a tower and reports whether it existed.
func (ecs *ECS) RemoveTower(id types.EntityID) bool {
	if _, ok := ecs.towerIndex[id]; !ok {
		return false
	}
	delete(ecs.towerIndex, id)
	for i, t := range ecs.Towers {
		if t.ID == id {
			ecs.Towers = append(ecs.Towers[:i], ecs.Towers[i+1:]...)
			break
		}
	}
	return true
}

func (ecs *ECS) Tower(id types.EntityID) (*component.Tower, bool) {
	t, ok := ecs.towerIndex[id]
	return t, ok
}

// AddEnemy registers an enemy. Used when a wave starts, outside of a tick.
func (ecs *ECS) AddEnemy(e *component.Enemy) {
	ecs.Enemies = append(ecs.Enemies, e)
	ecs.enemyIndex[e.ID] = e
}

// LivingEnemy returns the enemy with id if it is still registered and alive.
func (ecs *ECS) LivingEnemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := ecs.enemyIndex[id]
	if !ok || e.IsDead() {
		return nil, false
	}
	return e, true
}

// SpawnProjectile queues a projectile for the next tick.
func (ecs *ECS) SpawnProjectile(p *component.Projectile) {
	ecs.pendingProjectiles = append(ecs.pendingProjectiles, p)
}

// SpawnEffect queues a visual effect for the next tick.
func (ecs *ECS) SpawnEffect(v *component.VisualEffect) {
	ecs.pendingEffects = append(ecs.pendingEffects, v)
}

// Pending returns the number of queued projectiles and effects.
func (ecs *ECS) Pending() (projectiles, effects int) {
	return len(ecs.pendingProjectiles), len(ecs.pendingEffects)
}

// Commit moves everything queued during the tick into the live collections.
func (ecs *ECS) Commit() {
	ecs.Projectiles = append(ecs.Projectiles, ecs.pendingProjectiles...)
	ecs.Effects = append(ecs.Effects, ecs.pendingEffects...)
	clear(ecs.pendingProjectiles)
	clear(ecs.pendingEffects)
	ecs.pendingProjectiles = ecs.pendingProjectiles[:0]
	ecs.pendingEffects = ecs.pendingEffects[:0]
}

// FilterEnemies keeps only the enemies for which keep returns true, preserving order.
func (ecs *ECS) FilterEnemies(keep func(*component.Enemy) bool) {
	kept := ecs.Enemies[:0]
	for _, e := range ecs.Enemies {
		if keep(e) {
			kept = append(kept, e)
		} else {
			delete(ecs.enemyIndex, e.ID)
		}
	}
	clear(ecs.Enemies[len(kept):])
	ecs.Enemies = kept
}

// FilterProjectiles keeps only the projectiles for which keep returns true.
func (ecs *ECS) FilterProjectiles(keep func(*component.Projectile) bool) {
	kept := ecs.Projectiles[:0]
	for _, p := range ecs.Projectiles {
		if keep(p) {
			kept = append(kept, p)
		}
	}
	clear(ecs.Projectiles[len(kept):])
	ecs.Projectiles = kept
}

// FilterEffects keeps only the effects for which keep returns true.
func (ecs *ECS) FilterEffects(keep func(*component.VisualEffect) bool) {
	kept := ecs.Effects[:0]
	for _, v := range ecs.Effects {
		if keep(v) {
			kept = append(kept, v)
		}
	}
	clear(ecs.Effects[len(kept):])
	ecs.Effects = kept
}
