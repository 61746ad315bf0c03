// internal/system/projectile.go
package system

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/entity"
	"go-td-sim/pkg/geom"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	s.ecs.FilterProjectiles(func(p *component.Projectile) bool {
		return s.step(p, deltaTime)
	})
}

// step advances one projectile and reports whether it is still in flight.
func (s *ProjectileSystem) step(p *component.Projectile, deltaTime float64) bool {
	target, ok := s.ecs.LivingEnemy(p.TargetID)
	if !ok {
		// Цель пропала: снаряд исчезает без урона.
		return false
	}

	p.MoveToward(target.Position, deltaTime)
	if p.Kind == component.ProjectileRocket {
		s.ecs.SpawnEffect(component.NewVisualEffect(p.Position, config.SmokeRadius, config.SmokeLife, config.ColorSmoke))
	}

	if !p.HitBox().Intersects(target.Footprint()) {
		return true
	}
	s.hitTarget(p, target)
	return false
}

func (s *ProjectileSystem) hitTarget(p *component.Projectile, target *component.Enemy) {
	switch p.Kind {
	case component.ProjectileBullet:
		creditTower(s.ecs, p.SourceID, ApplyDamage(target, p.Damage))
	case component.ProjectileFrostBolt:
		target.ApplySlow(p.SlowDuration)
	case component.ProjectileRocket:
		s.explode(p, target.Position)
	}
}

// explode deals full damage to every living enemy within the splash radius of center.
func (s *ProjectileSystem) explode(p *component.Projectile, center geom.Point) {
	s.ecs.SpawnEffect(component.NewVisualEffect(center, p.SplashRadius, config.ExplosionLife, config.ColorOrange))

	total := 0
	for _, e := range s.ecs.Enemies {
		if e.IsDead() {
			continue
		}
		if geom.Distance(center, e.Position) <= p.SplashRadius {
			total += ApplyDamage(e, p.Damage)
		}
	}
	creditTower(s.ecs, p.SourceID, total)
}
