package entity

import (
	"testing"

	"go-td-sim/internal/component"
)

func TestECS_NewEntityIsMonotonic(t *testing.T) {
	ecs := NewECS()
	a, b := ecs.NewEntity(), ecs.NewEntity()
	if a == 0 || b != a+1 {
		t.Errorf("Expected consecutive non-zero ids, got %d and %d", a, b)
	}
}

func TestECS_PendingInvisibleUntilCommit(t *testing.T) {
	ecs := NewECS()
	ecs.SpawnProjectile(&component.Projectile{ID: ecs.NewEntity()})
	ecs.SpawnEffect(&component.VisualEffect{Life: 1, MaxLife: 1})

	if len(ecs.Projectiles) != 0 || len(ecs.Effects) != 0 {
		t.Fatalf("Expected nothing live before commit, got %d projectiles %d effects", len(ecs.Projectiles), len(ecs.Effects))
	}
	if p, v := ecs.Pending(); p != 1 || v != 1 {
		t.Fatalf("Expected 1 pending of each, got %d and %d", p, v)
	}

	ecs.Commit()
	if len(ecs.Projectiles) != 1 || len(ecs.Effects) != 1 {
		t.Errorf("Expected 1 live of each after commit, got %d and %d", len(ecs.Projectiles), len(ecs.Effects))
	}
	if p, v := ecs.Pending(); p != 0 || v != 0 {
		t.Errorf("Expected pending drained, got %d and %d", p, v)
	}
}

func TestECS_FilterEnemiesKeepsOrderAndIndex(t *testing.T) {
	ecs := NewECS()
	for range 5 {
		ecs.AddEnemy(&component.Enemy{ID: ecs.NewEntity(), Health: 10})
	}
	ecs.Enemies[1].Health = 0
	ecs.Enemies[3].Health = 0

	ecs.FilterEnemies(func(e *component.Enemy) bool { return !e.IsDead() })

	if len(ecs.Enemies) != 3 {
		t.Fatalf("Expected 3 enemies, got %d", len(ecs.Enemies))
	}
	for i, want := range []uint64{1, 3, 5} {
		if uint64(ecs.Enemies[i].ID) != want {
			t.Errorf("Expected enemy %d at %d, got %d", want, i, ecs.Enemies[i].ID)
		}
	}
	if _, ok := ecs.LivingEnemy(2); ok {
		t.Error("Expected removed enemy to be gone from the index")
	}
	if _, ok := ecs.LivingEnemy(3); !ok {
		t.Error("Expected kept enemy to be found")
	}
}

func TestECS_LivingEnemyIgnoresDead(t *testing.T) {
	ecs := NewECS()
	e := &component.Enemy{ID: ecs.NewEntity(), Health: 5}
	ecs.AddEnemy(e)
	e.TakeDamage(5)
	if _, ok := ecs.LivingEnemy(e.ID); ok {
		t.Error("Expected dead enemy not to be returned")
	}
}

func TestECS_RemoveTower(t *testing.T) {
	ecs := NewECS()
	a := &component.Tower{ID: ecs.NewEntity()}
	b := &component.Tower{ID: ecs.NewEntity()}
	ecs.AddTower(a)
	ecs.AddTower(b)

	if !ecs.RemoveTower(a.ID) {
		t.Fatal("Expected removal to succeed")
	}
	if ecs.RemoveTower(a.ID) {
		t.Error("Expected second removal to report false")
	}
	if len(ecs.Towers) != 1 || ecs.Towers[0] != b {
		t.Errorf("Expected only tower %d left, got %v", b.ID, ecs.Towers)
	}
	if _, ok := ecs.Tower(a.ID); ok {
		t.Error("Expected removed tower to be gone from the index")
	}
}

func TestNewECS_StartingResources(t *testing.T) {
	ecs := NewECS()
	if ecs.Player.Money != 200 || ecs.Player.Health != 100 {
		t.Errorf("Expected 200 money and 100 health, got %d and %d", ecs.Player.Money, ecs.Player.Health)
	}
	if ecs.GameState != component.BuildState {
		t.Errorf("Expected BUILD state, got %s", ecs.GameState)
	}
}
