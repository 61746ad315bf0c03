// internal/system/utils.go
package system

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/types"
)

// ApplyDamage наносит урон врагу и возвращает урон, который засчитывается башне:
// не больше оставшегося здоровья цели.
func ApplyDamage(e *component.Enemy, damage int) int {
	if damage <= 0 || e.IsDead() {
		return 0
	}
	credited := min(e.Health, damage)
	e.TakeDamage(damage)
	return credited
}

// creditTower adds damage to the source tower's tally if the tower still exists.
func creditTower(ecs *entity.ECS, towerID types.EntityID, amount int) {
	if t, ok := ecs.Tower(towerID); ok {
		t.RecordDamage(amount)
	}
}
