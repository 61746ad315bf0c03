// internal/defs/waves.go
package defs

import "go-td-sim/internal/config"

// WaveStats are the scaled numbers for one wave.
type WaveStats struct {
	Number int
	Count  int
	Health int     // base health of a wave-scaled enemy
	Speed  float64 // base speed of a wave-scaled enemy
}

// StatsForWave applies the wave formula to wave n.
func StatsForWave(n int) WaveStats {
	return WaveStats{
		Number: n,
		Count:  config.WaveBaseCount + config.WaveCountPerWave*n,
		Health: config.WaveBaseHealth + config.WaveHealthPerWave*n,
		Speed:  config.WaveBaseSpeed + config.WaveSpeedPerWave*float64(n),
	}
}

// SpawnRule puts Kind into every Every-th spawn slot once the wave number is above AfterWave.
type SpawnRule struct {
	Kind      EnemyKind
	AfterWave int
	Every     int
}

// WaveComposition is checked top to bottom; the first matching rule wins.
var WaveComposition = []SpawnRule{
	{Kind: EnemyHealer, AfterWave: 8, Every: 7},
	{Kind: EnemyFlying, AfterWave: 6, Every: 6},
	{Kind: EnemyTank, AfterWave: 4, Every: 5},
	{Kind: EnemyRunner, AfterWave: 2, Every: 4},
}

// KindForSlot picks the enemy type for spawn slot i of wave n.
func KindForSlot(wave, slot int) EnemyKind {
	for _, rule := range WaveComposition {
		if wave > rule.AfterWave && slot%rule.Every == 0 {
			return rule.Kind
		}
	}
	return EnemyBasic
}
