// internal/component/effect.go
package component

import (
	"image/color"

	"go-td-sim/pkg/geom"
)

// VisualEffect is a short-lived cosmetic circle. It never affects the simulation.
type VisualEffect struct {
	Position geom.Point
	Radius   float64
	Life     float64 // remaining, seconds
	MaxLife  float64
	Color    color.RGBA
}

func NewVisualEffect(pos geom.Point, radius, life float64, c color.RGBA) *VisualEffect {
	return &VisualEffect{Position: pos, Radius: radius, Life: life, MaxLife: life, Color: c}
}

// Update counts the lifetime down and reports whether the effect has expired.
func (v *VisualEffect) Update(dt float64) bool {
	v.Life -= dt
	return v.Life <= 0
}

// FadeRatio is the remaining share of the lifetime, in [0, 1].
func (v *VisualEffect) FadeRatio() float64 {
	if v.MaxLife <= 0 || v.Life <= 0 {
		return 0
	}
	return min(1, v.Life/v.MaxLife)
}

// CurrentRadius grows from half the radius to the full radius as the effect fades.
func (v *VisualEffect) CurrentRadius() float64 {
	return v.Radius * (1 - 0.5*v.FadeRatio())
}

// FadedColor scales the alpha channel by the fade ratio.
func (v *VisualEffect) FadedColor() color.RGBA {
	c := v.Color
	c.A = uint8(float64(c.A) * v.FadeRatio())
	return c
}
