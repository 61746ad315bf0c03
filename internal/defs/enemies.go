// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
// WaveScaled enemies take health and speed from the wave formula instead.
type EnemyDefinition struct {
	ID            EnemyKind `json:"id"`
	Name          string    `json:"name"`
	Health        int       `json:"health"`
	HealthPerWave int       `json:"health_per_wave"`
	Speed         float64   `json:"speed"`
	WaveScaled    bool      `json:"wave_scaled,omitempty"`
	Bounty        int       `json:"bounty"`
	Flying        bool      `json:"flying,omitempty"`
	Heal          *HealDef  `json:"heal,omitempty"`
	Visuals       Visuals   `json:"visuals"`
}

// HealDef describes the periodic area heal of a healer.
type HealDef struct {
	Radius   float64 `json:"radius"`
	Amount   int     `json:"amount"`
	Interval float64 `json:"interval"` // seconds
}

// HealthAt returns the spawn health of a non wave-scaled enemy on wave n.
func (d EnemyDefinition) HealthAt(wave int) int {
	return d.Health + d.HealthPerWave*wave
}
