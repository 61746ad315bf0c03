package component

import (
	"image/color"
	"math"
	"testing"

	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/pkg/geom"

	"pgregory.net/rapid"
)

func straightPath(t testing.TB, length float64) *geom.Path {
	t.Helper()
	p, err := geom.NewPath([]geom.Point{{X: 0, Y: 0}, {X: length, Y: 0}})
	if err != nil {
		t.Fatalf("NewPath: %v", err)
	}
	return p
}

func basicDef() defs.EnemyDefinition {
	return defs.EnemyDefinition{ID: defs.EnemyBasic, Bounty: 10}
}

func TestEnemy_DamageSumsToDeath(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		health := rapid.IntRange(1, 1000).Draw(rt, "health")
		hits := rapid.SliceOf(rapid.IntRange(0, 200)).Draw(rt, "hits")

		e := NewEnemy(1, basicDef(), health, 60, straightPath(t, 100), geom.Point{})
		total := 0
		for _, h := range hits {
			e.TakeDamage(h)
			total += h
		}

		if e.Health != health-total {
			rt.Fatalf("expected health %d, got %d", health-total, e.Health)
		}
		if e.IsDead() != (total >= health) {
			rt.Fatalf("expected dead=%v after %d damage on %d health", total >= health, total, health)
		}
	})
}

func TestEnemy_HealClampsToMax(t *testing.T) {
	e := NewEnemy(1, basicDef(), 100, 60, straightPath(t, 100), geom.Point{})
	e.TakeDamage(1)
	e.Heal(5)
	if e.Health != 100 {
		t.Errorf("Expected health 100, got %d", e.Health)
	}
}

func TestEnemy_SlowHalvesThenRestores(t *testing.T) {
	e := NewEnemy(1, basicDef(), 100, 60, straightPath(t, 10000), geom.Point{})

	e.ApplySlow(3)
	if e.Speed != 30 {
		t.Fatalf("Expected slowed speed 30, got %v", e.Speed)
	}
	// Re-applying refreshes the duration without slowing further.
	e.ApplySlow(3)
	if e.Speed != 30 {
		t.Fatalf("Expected slow not to stack, got speed %v", e.Speed)
	}

	e.Advance(1.0 / 60)
	e.Advance(1.0 / 60)
	if !e.Slow.Active || e.Speed != 30 {
		t.Fatalf("Expected still slowed after 2 ticks, got active=%v speed=%v", e.Slow.Active, e.Speed)
	}
	e.Advance(1.0 / 60)
	if e.Slow.Active {
		t.Error("Expected slow to expire after 3 ticks")
	}
	if e.Speed != e.OriginalSpeed {
		t.Errorf("Expected speed restored to %v, got %v", e.OriginalSpeed, e.Speed)
	}
}

func TestEnemy_AdvanceMovesAlongPath(t *testing.T) {
	e := NewEnemy(1, basicDef(), 100, 60, straightPath(t, 1000), geom.Point{})
	e.Advance(1.0 / 60)
	if math.Abs(e.Position.X-1) > 1e-9 || math.Abs(e.Position.Y) > 1e-9 {
		t.Errorf("Expected position (1,0), got %+v", e.Position)
	}
	if e.PathIndex != 1 {
		t.Errorf("Expected path index 1, got %d", e.PathIndex)
	}
}

func TestEnemy_ReachesEnd(t *testing.T) {
	e := NewEnemy(1, basicDef(), 100, 600, straightPath(t, 10), geom.Point{})
	e.Advance(1.0 / 60)
	if !e.HasReachedEnd() {
		t.Fatalf("Expected enemy at end, index %d", e.PathIndex)
	}
	pos := e.Position
	e.Advance(1.0 / 60)
	if e.Position != pos || e.PathIndex != 2 {
		t.Errorf("Expected no movement past the end, got %+v index %d", e.Position, e.PathIndex)
	}
}

func TestEnemy_DeadDoesNotMove(t *testing.T) {
	e := NewEnemy(1, basicDef(), 10, 60, straightPath(t, 1000), geom.Point{})
	e.TakeDamage(10)
	e.Advance(1.0 / 60)
	if e.Position != (geom.Point{}) {
		t.Errorf("Expected dead enemy to stay put, got %+v", e.Position)
	}
}

func TestEnemy_HealNearby(t *testing.T) {
	path := straightPath(t, 1000)
	healerDef := defs.EnemyDefinition{
		ID:   defs.EnemyHealer,
		Heal: &defs.HealDef{Radius: 60, Amount: 2, Interval: 1},
	}
	healer := NewEnemy(1, healerDef, 150, 60, path, geom.Point{X: 100})
	near := NewEnemy(2, basicDef(), 100, 60, path, geom.Point{X: 150})
	far := NewEnemy(3, basicDef(), 100, 60, path, geom.Point{X: 200})
	dead := NewEnemy(4, basicDef(), 100, 60, path, geom.Point{X: 110})
	for _, e := range []*Enemy{healer, near, far} {
		e.TakeDamage(50)
	}
	dead.TakeDamage(100)
	all := []*Enemy{healer, near, far, dead}

	if n := healer.HealNearby(all, 0.5); n != 0 {
		t.Fatalf("Expected no heal before cooldown, healed %d", n)
	}
	if n := healer.HealNearby(all, 0.5); n != 1 {
		t.Fatalf("Expected 1 healed, got %d", n)
	}
	if near.Health != 52 {
		t.Errorf("Expected near health 52, got %d", near.Health)
	}
	if far.Health != 50 {
		t.Errorf("Expected far health 50, got %d", far.Health)
	}
	if healer.Health != 100 {
		t.Errorf("Expected healer not to heal itself, got %d", healer.Health)
	}
	if dead.Health != 0 {
		t.Errorf("Expected dead enemy untouched, got %d", dead.Health)
	}
	if healer.Healer.Cooldown != 1 {
		t.Errorf("Expected cooldown reset to 1, got %v", healer.Healer.Cooldown)
	}

	if n := near.HealNearby(all, 5); n != 0 {
		t.Errorf("Expected non-healer to heal nobody, got %d", n)
	}
}

func TestWeapon_CooldownSpacing(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rate := rapid.Float64Range(0.1, 30).Draw(rt, "rate")
		ticks := rapid.IntRange(1, 2000).Draw(rt, "ticks")

		w := Weapon{BaseFireRate: rate, FireRate: rate}
		var shots []int64
		for tick := int64(1); tick <= int64(ticks); tick++ {
			if w.Ready(tick) {
				w.MarkFired(tick)
				shots = append(shots, tick)
			}
		}
		if len(shots) == 0 {
			rt.Fatalf("expected the first check to fire immediately")
		}
		for i := 1; i < len(shots); i++ {
			gap := float64(shots[i]-shots[i-1]) / config.TickRate
			if gap < 1/rate-1e-9 {
				rt.Fatalf("shots %d and %d are %v apart, want >= %v", i-1, i, gap, 1/rate)
			}
			// Никогда не опаздывает больше чем на тик.
			if gap > 1/rate+1/config.TickRate+1e-9 {
				rt.Fatalf("shots %d and %d are %v apart, want < %v", i-1, i, gap, 1/rate+1/config.TickRate)
			}
		}
	})
}

func TestWeapon_BuffsCompound(t *testing.T) {
	w := Weapon{BaseFireRate: 1, FireRate: 1}
	w.ApplyBuff(1.25)
	w.ApplyBuff(1.25)
	if math.Abs(w.FireRate-1.5625) > 1e-9 {
		t.Errorf("Expected 1.5625, got %v", w.FireRate)
	}
	w.ResetFireRate()
	if w.FireRate != 1 {
		t.Errorf("Expected reset to 1, got %v", w.FireRate)
	}
}

func TestTargetingMode_Cycle(t *testing.T) {
	want := []TargetingMode{TargetLast, TargetStrongest, TargetWeakest, TargetFirst}
	m := TargetFirst
	for _, w := range want {
		m = m.Next()
		if m != w {
			t.Fatalf("Expected %s, got %s", w, m)
		}
	}
}

func TestTower_CanTarget(t *testing.T) {
	lib, err := defs.DefaultLibrary()
	if err != nil {
		t.Fatalf("DefaultLibrary: %v", err)
	}
	flyer := &Enemy{Flying: true}
	walker := &Enemy{}

	tests := []struct {
		kind   defs.TowerKind
		flying bool
		walker bool
	}{
		{defs.TowerCannon, true, true},
		{defs.TowerFrost, false, true},
		{defs.TowerRocket, true, true},
		{defs.TowerLaser, true, true},
		{defs.TowerSupport, false, false},
	}
	for _, tt := range tests {
		def, _ := lib.Tower(tt.kind)
		tw := NewTower(1, def, geom.Point{})
		if got := tw.CanTarget(flyer); got != tt.flying {
			t.Errorf("%s vs flying: expected %v, got %v", tt.kind, tt.flying, got)
		}
		if got := tw.CanTarget(walker); got != tt.walker {
			t.Errorf("%s vs ground: expected %v, got %v", tt.kind, tt.walker, got)
		}
	}
}

func TestTower_UpgradeCannon(t *testing.T) {
	lib, err := defs.DefaultLibrary()
	if err != nil {
		t.Fatalf("DefaultLibrary: %v", err)
	}
	def, _ := lib.Tower(defs.TowerCannon)
	tw := NewTower(1, def, geom.Point{X: 100, Y: 50})

	if tw.Center != (geom.Point{X: 125, Y: 75}) {
		t.Errorf("Expected centre (125,75), got %+v", tw.Center)
	}

	tw.Upgrade()
	if tw.Level != 2 || tw.Damage != 40 || tw.Range != 130 {
		t.Errorf("Expected level 2, 40 dmg, 130 range, got %d, %d, %v", tw.Level, tw.Damage, tw.Range)
	}
	if math.Abs(tw.BaseFireRate-1.1) > 1e-9 {
		t.Errorf("Expected base rate 1.1, got %v", tw.BaseFireRate)
	}
	if tw.UpgradeCost != 112 {
		t.Errorf("Expected next upgrade cost 112, got %d", tw.UpgradeCost)
	}
	if tw.Invested != 175 {
		t.Errorf("Expected invested 175, got %d", tw.Invested)
	}
	if tw.SellValue() != 131 {
		t.Errorf("Expected sell value 131, got %d", tw.SellValue())
	}
}

func TestTower_SellNeverProfits(t *testing.T) {
	lib, err := defs.DefaultLibrary()
	if err != nil {
		t.Fatalf("DefaultLibrary: %v", err)
	}
	rapid.Check(t, func(rt *rapid.T) {
		kind := rapid.SampledFrom(defs.TowerKinds).Draw(rt, "kind")
		upgrades := rapid.IntRange(0, 12).Draw(rt, "upgrades")

		def, _ := lib.Tower(kind)
		tw := NewTower(1, def, geom.Point{})
		paid := tw.Cost
		for range upgrades {
			paid += tw.UpgradeCost
			tw.Upgrade()
		}
		if tw.Invested != paid {
			rt.Fatalf("expected invested %d, got %d", paid, tw.Invested)
		}
		if tw.SellValue() > paid {
			rt.Fatalf("sell value %d exceeds paid %d", tw.SellValue(), paid)
		}
	})
}

func TestTower_CycleKeepsTarget(t *testing.T) {
	tw := &Tower{TargetID: 7}
	tw.CycleTargetingMode()
	if tw.Mode != TargetLast || tw.TargetID != 7 {
		t.Errorf("Expected LAST holding target 7, got %s target %d", tw.Mode, tw.TargetID)
	}
}

func TestVisualEffect_Lifecycle(t *testing.T) {
	v := NewVisualEffect(geom.Point{}, 20, 0.4, color.RGBA{255, 215, 0, 255})
	if v.FadeRatio() != 1 {
		t.Errorf("Expected fresh effect fade 1, got %v", v.FadeRatio())
	}
	if v.Update(0.2) {
		t.Fatal("Expected effect alive after half its life")
	}
	if math.Abs(v.FadeRatio()-0.5) > 1e-9 {
		t.Errorf("Expected fade 0.5, got %v", v.FadeRatio())
	}
	if !v.Update(0.25) {
		t.Error("Expected effect expired")
	}
	if v.FadeRatio() != 0 {
		t.Errorf("Expected expired fade 0, got %v", v.FadeRatio())
	}
}
