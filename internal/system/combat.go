package system

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
)

// CombatSystem управляет наведением и стрельбой башен.
// Must run after AuraSystem in the same tick so fire rates include buffs.
type CombatSystem struct {
	ecs *entity.ECS
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs}
}

func (s *CombatSystem) Update(deltaTime float64) {
	now := s.ecs.Tick
	for _, t := range s.ecs.Towers {
		if t.IsSupport() {
			continue
		}

		target := s.validateTarget(t)
		if target == nil {
			target = s.acquireTarget(t)
		}
		if target == nil {
			t.TargetID = 0
			continue
		}
		t.TargetID = target.ID
		t.Turret.AimAt(t.Center, target.Position)

		if t.Ready(now) {
			s.fire(t, target)
			t.MarkFired(now)
		}
	}
}

// validateTarget returns the held target if it is still alive and in range.
func (s *CombatSystem) validateTarget(t *component.Tower) *component.Enemy {
	if t.TargetID == 0 {
		return nil
	}
	e, ok := s.ecs.LivingEnemy(t.TargetID)
	if !ok || !t.CanTarget(e) || !t.InRange(e.Position) {
		return nil
	}
	return e
}

// acquireTarget picks a new target by the tower's mode. Ties go to the enemy
// encountered first.
func (s *CombatSystem) acquireTarget(t *component.Tower) *component.Enemy {
	var best *component.Enemy
	for _, e := range s.ecs.Enemies {
		if e.IsDead() || !t.CanTarget(e) || !t.InRange(e.Position) {
			continue
		}
		if best == nil || prefers(t.Mode, e, best) {
			best = e
		}
	}
	return best
}

// prefers reports whether candidate strictly beats current under mode.
func prefers(mode component.TargetingMode, candidate, current *component.Enemy) bool {
	switch mode {
	case component.TargetFirst:
		return candidate.PathIndex > current.PathIndex
	case component.TargetLast:
		return candidate.PathIndex < current.PathIndex
	case component.TargetStrongest:
		return candidate.Health > current.Health
	case component.TargetWeakest:
		return candidate.Health < current.Health
	default:
		return false
	}
}

func (s *CombatSystem) fire(t *component.Tower, target *component.Enemy) {
	switch t.Kind {
	case defs.TowerLaser:
		credited := ApplyDamage(target, t.Damage)
		t.RecordDamage(credited)
		s.ecs.SpawnEffect(component.NewVisualEffect(target.Position, config.LaserSparkRadius, config.LaserSparkLife, config.ColorRed))
		return
	case defs.TowerCannon:
		s.spawnProjectile(t, target, component.ProjectileBullet)
	case defs.TowerFrost:
		s.spawnProjectile(t, target, component.ProjectileFrostBolt)
	case defs.TowerRocket:
		s.spawnProjectile(t, target, component.ProjectileRocket)
	default:
		return
	}

	if v := t.Visuals; v.FlashLife > 0 {
		s.ecs.SpawnEffect(component.NewVisualEffect(t.Center, v.FlashRadius, v.FlashLife, v.FlashColor))
	}
}

func (s *CombatSystem) spawnProjectile(t *component.Tower, target *component.Enemy, kind component.ProjectileKind) {
	p := &component.Projectile{
		ID:       s.ecs.NewEntity(),
		Kind:     kind,
		Position: t.Center,
		TargetID: target.ID,
		SourceID: t.ID,
		Speed:    t.ProjectileSpeed,
	}
	switch kind {
	case component.ProjectileBullet:
		p.Damage = t.Damage
	case component.ProjectileFrostBolt:
		p.SlowDuration = t.SlowDuration
	case component.ProjectileRocket:
		p.Damage = t.Damage
		p.SplashRadius = t.SplashRadius
	}
	s.ecs.SpawnProjectile(p)
}
