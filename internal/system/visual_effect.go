// internal/system/visual_effect.go
package system

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами: вспышками, дымом, взрывами.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update уменьшает таймеры и удаляет истёкшие эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	s.ecs.FilterEffects(func(v *component.VisualEffect) bool {
		return !v.Update(deltaTime)
	})
}
