// internal/component/turret.go
package component

import "go-td-sim/pkg/geom"

// Turret отвечает за поворот "головы" башни. Cosmetic only.
type Turret struct {
	// Angle - текущий угол поворота в радианах.
	Angle float64
}

// AimAt turns the turret from origin towards target instantly.
func (t *Turret) AimAt(origin, target geom.Point) {
	t.Angle = geom.Angle(origin, target)
}
