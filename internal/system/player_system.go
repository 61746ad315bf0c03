// internal/system/player_system.go
package system

import (
	"go-td-sim/internal/config"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
)

// PlayerSystem отвечает за экономику игрока: награды, утечки и бонусы за волну.
type PlayerSystem struct {
	ecs *entity.ECS
}

func NewPlayerSystem(ecs *entity.ECS) *PlayerSystem {
	return &PlayerSystem{ecs: ecs}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		if data, ok := e.Data.(event.EnemyData); ok {
			s.ecs.Player.Money += data.Bounty
		}
	case event.EnemyLeaked:
		s.ecs.Player.Health -= config.LeakDamage
	case event.WaveEnded:
		if data, ok := e.Data.(event.WaveEndedData); ok {
			s.ecs.Player.Money += data.Bonus
		}
	}
}

// WaveBonus is the payout for finishing wave n while holding money:
// a flat part, a per-wave part and interest on savings, rounded down.
func WaveBonus(wave, money int) int {
	return config.WaveBonusBase + config.WaveBonusPerWave*wave + money*config.InterestPercent/100
}
