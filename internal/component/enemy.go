// internal/component/enemy.go
package component

import (
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/geom"
)

// Enemy представляет вражескую сущность.
// Position is the centre of the enemy's tile-sized footprint.
type Enemy struct {
	ID            types.EntityID
	Kind          defs.EnemyKind
	Position      geom.Point
	Health        int
	MaxHealth     int
	Speed         float64 // current speed, halved while slowed
	OriginalSpeed float64
	Path          *geom.Path
	PathIndex     int // index of the waypoint being walked to
	Bounty        int
	Flying        bool
	Slow          SlowStatus
	Healer        HealerAura // zero unless Kind == EnemyHealer
	Visuals       defs.Visuals
}

// HealerAura is the periodic area heal carried by healers.
type HealerAura struct {
	Radius   float64
	Amount   int
	Interval float64
	Cooldown float64
}

// NewEnemy creates an enemy at pos walking towards the second waypoint of path.
func NewEnemy(id types.EntityID, def defs.EnemyDefinition, health int, speed float64, path *geom.Path, pos geom.Point) *Enemy {
	e := &Enemy{
		ID:            id,
		Kind:          def.ID,
		Position:      pos,
		Health:        health,
		MaxHealth:     health,
		Speed:         speed,
		OriginalSpeed: speed,
		Path:          path,
		PathIndex:     1,
		Bounty:        def.Bounty,
		Flying:        def.Flying,
		Visuals:       def.Visuals,
	}
	if def.Heal != nil {
		e.Healer = HealerAura{
			Radius:   def.Heal.Radius,
			Amount:   def.Heal.Amount,
			Interval: def.Heal.Interval,
			Cooldown: def.Heal.Interval,
		}
	}
	return e
}

// TakeDamage lowers health unconditionally. Health may go negative.
func (e *Enemy) TakeDamage(amount int) {
	e.Health -= amount
}

// Heal raises health, never above MaxHealth.
func (e *Enemy) Heal(amount int) {
	e.Health = min(e.MaxHealth, e.Health+amount)
}

func (e *Enemy) IsDead() bool {
	return e.Health <= 0
}

func (e *Enemy) HasReachedEnd() bool {
	return e.PathIndex >= e.Path.Len()
}

// Footprint is the tile-sized box projectiles collide with.
func (e *Enemy) Footprint() geom.Rect {
	return geom.RectAround(e.Position, config.EnemyHalfSize)
}

// IsHealer reports whether the enemy carries a heal aura.
func (e *Enemy) IsHealer() bool {
	return e.Kind == defs.EnemyHealer && e.Healer.Interval > 0
}

// HealNearby counts the heal cooldown down and, when it expires, heals every other
// living enemy within the aura radius. Returns how many enemies were healed.
func (e *Enemy) HealNearby(all []*Enemy, dt float64) int {
	if !e.IsHealer() {
		return 0
	}
	e.Healer.Cooldown -= dt
	if e.Healer.Cooldown > 0 {
		return 0
	}

	healed := 0
	for _, other := range all {
		if other == e || other.IsDead() {
			continue
		}
		if geom.Distance(e.Position, other.Position) <= e.Healer.Radius {
			other.Heal(e.Healer.Amount)
			healed++
		}
	}
	e.Healer.Cooldown = e.Healer.Interval
	return healed
}
