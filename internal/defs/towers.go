// internal/defs/towers.go
package defs

import "image/color"

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID                    TowerKind   `json:"id"`
	Name                  string      `json:"name"`
	Cost                  int         `json:"cost"`
	UpgradeCost           int         `json:"upgrade_cost"`
	UpgradeCostMultiplier float64     `json:"upgrade_cost_multiplier"`
	Range                 float64     `json:"range"`
	Damage                int         `json:"damage"`
	FireRate              float64     `json:"fire_rate"` // Shots per second
	ProjectileSpeed       float64     `json:"projectile_speed,omitempty"`
	SplashRadius          float64     `json:"splash_radius,omitempty"`
	SlowDuration          int         `json:"slow_duration,omitempty"` // In ticks
	BuffMultiplier        float64     `json:"buff_multiplier,omitempty"`
	Upgrade               UpgradeStep `json:"upgrade"`
	Visuals               Visuals     `json:"visuals"`
}

// UpgradeStep is what a single upgrade adds to a tower.
type UpgradeStep struct {
	Damage             int     `json:"damage,omitempty"`
	Range              float64 `json:"range,omitempty"`
	FireRateMultiplier float64 `json:"fire_rate_multiplier,omitempty"`
	SlowDuration       int     `json:"slow_duration,omitempty"`
	BuffMultiplier     float64 `json:"buff_multiplier,omitempty"`
}

// Visuals contains parameters for rendering an entity and its muzzle flash.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor,omitempty"`
	FlashColor   color.RGBA `json:"flash_color,omitempty"`
	FlashRadius  float64    `json:"flash_radius,omitempty"`
	FlashLife    float64    `json:"flash_life,omitempty"`
}
