// internal/system/aura.go
package system

import (
	"math"

	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/entity"
)

// AuraSystem обрабатывает логику башен поддержки.
type AuraSystem struct {
	ecs *entity.ECS
}

func NewAuraSystem(ecs *entity.ECS) *AuraSystem {
	return &AuraSystem{ecs: ecs}
}

// Update пересчитывает скорострельность всех башен на этот тик.
// Every tower is reset first and only then buffed, so the result does not depend
// on the order towers were built in.
func (s *AuraSystem) Update(deltaTime float64) {
	// Шаг 1: сбросить баффы прошлого тика.
	for _, t := range s.ecs.Towers {
		t.ResetFireRate()
	}

	// Шаг 2: каждая башня поддержки умножает скорострельность соседей.
	for _, support := range s.ecs.Towers {
		if !support.IsSupport() {
			continue
		}
		for _, t := range s.ecs.Towers {
			if t == support || t.IsSupport() {
				continue
			}
			if support.InRange(t.Center) {
				t.ApplyBuff(support.BuffMultiplier)
			}
		}
		s.pulse(support)
	}
}

func (s *AuraSystem) pulse(support *component.Tower) {
	phase := math.Sin(s.ecs.GameTime / config.AuraPulsePeriod)
	radius := support.Range * (0.8 + 0.2*phase)
	s.ecs.SpawnEffect(component.NewVisualEffect(support.Center, radius, config.AuraPulseLife, config.ColorAura))
}
