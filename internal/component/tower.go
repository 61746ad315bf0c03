// internal/component/tower.go
package component

import (
	"fmt"

	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/geom"
)

// TargetingMode decides which enemy in range a tower picks.
type TargetingMode int

const (
	TargetFirst     TargetingMode = iota // furthest along the path
	TargetLast                           // least far along the path
	TargetStrongest                      // most health
	TargetWeakest                        // least health
	targetingModeCount
)

func (m TargetingMode) String() string {
	switch m {
	case TargetFirst:
		return "FIRST"
	case TargetLast:
		return "LAST"
	case TargetStrongest:
		return "STRONGEST"
	case TargetWeakest:
		return "WEAKEST"
	default:
		return fmt.Sprintf("TargetingMode(%d)", int(m))
	}
}

// Next returns the following mode in the FIRST → LAST → STRONGEST → WEAKEST cycle.
func (m TargetingMode) Next() TargetingMode {
	return (m + 1) % targetingModeCount
}

// Tower представляет башню, стоящую на клетке для строительства.
type Tower struct {
	ID     types.EntityID
	Kind   defs.TowerKind
	Spot   geom.Point // top-left corner of the build spot
	Center geom.Point
	Level  int

	Range           float64
	Damage          int
	ProjectileSpeed float64
	SplashRadius    float64
	SlowDuration    int     // ticks, frost only
	BuffMultiplier  float64 // support only
	Weapon

	Cost           int // base cost paid on placement
	UpgradeCost    int
	CostMultiplier float64
	Invested       int // base cost plus every upgrade paid
	upgrade        defs.UpgradeStep

	Mode        TargetingMode
	TargetID    types.EntityID
	DamageDealt int64
	Turret      Turret
	Visuals     defs.Visuals
}

// NewTower builds a level 1 tower of def on the spot whose top-left corner is spot.
func NewTower(id types.EntityID, def defs.TowerDefinition, spot geom.Point) *Tower {
	return &Tower{
		ID:              id,
		Kind:            def.ID,
		Spot:            spot,
		Center:          defs.SpotCenter(spot),
		Level:           1,
		Range:           def.Range,
		Damage:          def.Damage,
		ProjectileSpeed: def.ProjectileSpeed,
		SplashRadius:    def.SplashRadius,
		SlowDuration:    def.SlowDuration,
		BuffMultiplier:  def.BuffMultiplier,
		Weapon: Weapon{
			BaseFireRate: def.FireRate,
			FireRate:     def.FireRate,
		},
		Cost:           def.Cost,
		UpgradeCost:    def.UpgradeCost,
		CostMultiplier: def.UpgradeCostMultiplier,
		Invested:       def.Cost,
		upgrade:        def.Upgrade,
		Visuals:        def.Visuals,
	}
}

// IsSupport reports whether the tower only buffs others and never fires.
func (t *Tower) IsSupport() bool {
	return t.Kind == defs.TowerSupport
}

// CanTarget reports whether the tower's variant is able to shoot at e at all.
func (t *Tower) CanTarget(e *Enemy) bool {
	switch t.Kind {
	case defs.TowerSupport:
		return false
	case defs.TowerFrost:
		return !e.Flying
	default:
		return true
	}
}

// InRange reports whether p lies within the tower's range, inclusive.
func (t *Tower) InRange(p geom.Point) bool {
	return geom.Distance(t.Center, p) <= t.Range
}

// CycleTargetingMode switches to the next mode. A held target is kept; the new
// mode applies at the next acquisition.
func (t *Tower) CycleTargetingMode() {
	t.Mode = t.Mode.Next()
}

// Upgrade applies one step of the variant's upgrade table. The caller has already
// charged UpgradeCost; it is added to Invested before the cost is raised.
func (t *Tower) Upgrade() {
	t.Invested += t.UpgradeCost
	t.Level++

	t.Damage += t.upgrade.Damage
	t.Range += t.upgrade.Range
	t.SlowDuration += t.upgrade.SlowDuration
	t.BuffMultiplier += t.upgrade.BuffMultiplier
	if m := t.upgrade.FireRateMultiplier; m > 0 {
		t.BaseFireRate *= m
		t.FireRate = t.BaseFireRate
	}

	t.UpgradeCost = int(float64(t.UpgradeCost) * t.CostMultiplier)
}

// SellValue is the refund for selling the tower: a fixed share of everything invested.
func (t *Tower) SellValue() int {
	return t.Invested * config.SellRefundPercent / 100
}

// RecordDamage credits damage dealt by this tower.
func (t *Tower) RecordDamage(amount int) {
	if amount > 0 {
		t.DamageDealt += int64(amount)
	}
}

// Stats returns the side-panel description of the tower.
func (t *Tower) Stats() string {
	switch t.Kind {
	case defs.TowerSupport:
		return fmt.Sprintf("Level %d\nRange: %.0f\nBuff: x%.2f\nUpgrade: $%d\nSell: $%d",
			t.Level, t.Range, t.BuffMultiplier, t.UpgradeCost, t.SellValue())
	case defs.TowerFrost:
		return fmt.Sprintf("Level %d\nRange: %.0f\nSlow: %.1fs\nRate: %.2f/s\nTarget: %s\nUpgrade: $%d\nSell: $%d",
			t.Level, t.Range, float64(t.SlowDuration)/config.TickRate, t.FireRate, t.Mode, t.UpgradeCost, t.SellValue())
	default:
		return fmt.Sprintf("Level %d\nDamage: %d\nRange: %.0f\nRate: %.2f/s\nTarget: %s\nDealt: %d\nUpgrade: $%d\nSell: $%d",
			t.Level, t.Damage, t.Range, t.FireRate, t.Mode, t.DamageDealt, t.UpgradeCost, t.SellValue())
	}
}
