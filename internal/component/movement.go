// internal/component/movement.go
package component

import (
	"math"

	"go-td-sim/pkg/geom"
)

// Advance moves the enemy one step along its path.
//
// Arrival is coarse: the waypoint counts as reached when the distance left after moving
// is below the distance covered this step. Fast enemies can overshoot corners; wave
// tuning depends on that, so it is not clamped.
func (e *Enemy) Advance(dt float64) {
	e.Slow.tick(e)

	if e.HasReachedEnd() || e.IsDead() {
		return
	}

	target := e.Path.At(e.PathIndex)
	angle := geom.Angle(e.Position, target)
	step := e.Speed * dt
	e.Position.X += step * math.Cos(angle)
	e.Position.Y += step * math.Sin(angle)

	if geom.Distance(e.Position, target) < step {
		e.PathIndex++
	}
}
