// internal/component/projectile.go
package component

import (
	"math"

	"go-td-sim/internal/config"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/geom"
)

// ProjectileKind is the closed set of projectile payloads.
type ProjectileKind int

const (
	ProjectileBullet ProjectileKind = iota
	ProjectileFrostBolt
	ProjectileRocket
)

func (k ProjectileKind) String() string {
	switch k {
	case ProjectileBullet:
		return "bullet"
	case ProjectileFrostBolt:
		return "frost"
	case ProjectileRocket:
		return "rocket"
	default:
		return "unknown"
	}
}

// Projectile представляет летящий снаряд.
// Target and source are ids; either may be gone by the time the projectile lands.
type Projectile struct {
	ID       types.EntityID
	Kind     ProjectileKind
	Position geom.Point
	TargetID types.EntityID
	SourceID types.EntityID
	Speed    float64

	Damage       int     // bullet and rocket
	SlowDuration int     // frost, in ticks
	SplashRadius float64 // rocket
}

// HitBox is the small square used for impact tests.
func (p *Projectile) HitBox() geom.Rect {
	return geom.RectAround(p.Position, config.ProjectileHalfSize)
}

// MoveToward homes on target at the projectile's speed.
func (p *Projectile) MoveToward(target geom.Point, dt float64) {
	angle := geom.Angle(p.Position, target)
	p.Position.X += p.Speed * dt * math.Cos(angle)
	p.Position.Y += p.Speed * dt * math.Sin(angle)
}
