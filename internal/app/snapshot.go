// internal/app/snapshot.go
package app

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/geom"
)

// Snapshot is a copy of everything a renderer needs. It shares no memory with the
// running game except the immutable path.
type Snapshot struct {
	Health         int
	Money          int
	Wave           int
	WaveInProgress bool
	State          component.GameState
	Paused         bool
	Speed          int
	Time           float64

	Path        *geom.Path
	Spots       []SpotView
	Towers      []component.Tower
	Enemies     []component.Enemy
	Projectiles []component.Projectile
	Effects     []component.VisualEffect
}

// SpotView is a build spot and the tower on it, if any.
type SpotView struct {
	Corner geom.Point
	Tower  types.EntityID
}

func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ecs := g.ECS
	s := Snapshot{
		Health:         ecs.Player.Health,
		Money:          ecs.Player.Money,
		Wave:           ecs.Wave.Number,
		WaveInProgress: ecs.Wave.InProgress,
		State:          ecs.GameState,
		Paused:         g.isPaused,
		Speed:          g.speedMultiplier(),
		Time:           ecs.GameTime,
		Path:           g.Level.Path,
		Spots:          make([]SpotView, len(g.Level.Spots)),
		Towers:         make([]component.Tower, len(ecs.Towers)),
		Enemies:        make([]component.Enemy, len(ecs.Enemies)),
		Projectiles:    make([]component.Projectile, len(ecs.Projectiles)),
		Effects:        make([]component.VisualEffect, len(ecs.Effects)),
	}
	for i, corner := range g.Level.Spots {
		s.Spots[i] = SpotView{Corner: corner, Tower: g.spots[i]}
	}
	for i, t := range ecs.Towers {
		s.Towers[i] = *t
	}
	for i, e := range ecs.Enemies {
		s.Enemies[i] = *e
	}
	for i, p := range ecs.Projectiles {
		s.Projectiles[i] = *p
	}
	for i, v := range ecs.Effects {
		s.Effects[i] = *v
	}
	return s
}

// Tower finds a tower in the snapshot by id.
func (s *Snapshot) Tower(id types.EntityID) (*component.Tower, bool) {
	for i := range s.Towers {
		if s.Towers[i].ID == id {
			return &s.Towers[i], true
		}
	}
	return nil, false
}

// Enemy finds an enemy in the snapshot by id.
func (s *Snapshot) Enemy(id types.EntityID) (*component.Enemy, bool) {
	for i := range s.Enemies {
		if s.Enemies[i].ID == id {
			return &s.Enemies[i], true
		}
	}
	return nil, false
}
