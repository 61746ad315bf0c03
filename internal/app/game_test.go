package app_test

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"go-td-sim/internal/app"
	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/event"
	"go-td-sim/internal/event/mocks"
	"go-td-sim/pkg/geom"

	"go.uber.org/mock/gomock"
)

func newGame(t testing.TB) *app.Game {
	t.Helper()
	level, err := defs.DefaultLevel()
	if err != nil {
		t.Fatalf("DefaultLevel: %v", err)
	}
	lib, err := defs.DefaultLibrary()
	if err != nil {
		t.Fatalf("DefaultLibrary: %v", err)
	}
	return app.NewGame(level, lib, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// clearWave kills every enemy on the field and runs the tick that collects them.
func clearWave(g *app.Game) {
	for _, e := range g.ECS.Enemies {
		e.TakeDamage(e.Health)
	}
	g.Tick(config.FixedStep)
}

func TestGame_EconomyScenario(t *testing.T) {
	g := newGame(t)

	id, econ, err := g.PlaceTower(0, defs.TowerCannon)
	if err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}
	if econ.Money != 100 {
		t.Fatalf("Expected 100 money after placing, got %d", econ.Money)
	}

	econ, err = g.UpgradeTower(id)
	if err != nil {
		t.Fatalf("UpgradeTower: %v", err)
	}
	if econ.Money != 25 {
		t.Fatalf("Expected 25 money after upgrading, got %d", econ.Money)
	}

	_, econ, err = g.PlaceTower(1, defs.TowerCannon)
	if !errors.Is(err, app.ErrInsufficientFunds) {
		t.Fatalf("Expected ErrInsufficientFunds, got %v", err)
	}
	if econ.Money != 25 {
		t.Errorf("Expected money unchanged at 25, got %d", econ.Money)
	}
	snap := g.Snapshot()
	if len(snap.Towers) != 1 || snap.Spots[1].Tower != 0 {
		t.Errorf("Expected rejected placement to leave spot 1 empty, got %d towers", len(snap.Towers))
	}

	econ, err = g.UpgradeTower(id)
	if !errors.Is(err, app.ErrInsufficientFunds) || econ.Money != 25 {
		t.Errorf("Expected upgrade rejected at 25 money, got %v and %d", err, econ.Money)
	}
}

func TestGame_PlacementErrors(t *testing.T) {
	g := newGame(t)
	if _, _, err := g.PlaceTower(0, defs.TowerCannon); err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}

	tests := []struct {
		name string
		spot int
		kind defs.TowerKind
		want error
	}{
		{"occupied", 0, defs.TowerCannon, app.ErrSpotOccupied},
		{"negative spot", -1, defs.TowerCannon, app.ErrUnknownSpot},
		{"spot out of range", 99, defs.TowerCannon, app.ErrUnknownSpot},
		{"unknown kind", 2, defs.TowerKind("MORTAR"), app.ErrUnknownTowerKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, econ, err := g.PlaceTower(tt.spot, tt.kind)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			if econ.Money != 100 {
				t.Errorf("Expected money unchanged at 100, got %d", econ.Money)
			}
		})
	}
}

func TestGame_SellRefundsAndFreesSpot(t *testing.T) {
	g := newGame(t)
	id, _, err := g.PlaceTower(3, defs.TowerCannon)
	if err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}

	econ, err := g.SellTower(id)
	if err != nil {
		t.Fatalf("SellTower: %v", err)
	}
	if econ.Money != 175 {
		t.Errorf("Expected 175 after a 75 refund, got %d", econ.Money)
	}
	if _, err := g.SellTower(id); !errors.Is(err, app.ErrUnknownTower) {
		t.Errorf("Expected stale id to be rejected, got %v", err)
	}
	if _, _, err := g.PlaceTower(3, defs.TowerCannon); err != nil {
		t.Errorf("Expected spot 3 free again, got %v", err)
	}
}

func TestGame_CycleTargeting(t *testing.T) {
	g := newGame(t)
	id, _, _ := g.PlaceTower(0, defs.TowerCannon)

	mode, err := g.CycleTargeting(id)
	if err != nil || mode != component.TargetLast {
		t.Errorf("Expected LAST, got %s (%v)", mode, err)
	}
	if _, err := g.CycleTargeting(id + 100); !errors.Is(err, app.ErrUnknownTower) {
		t.Errorf("Expected ErrUnknownTower, got %v", err)
	}
}

func TestGame_StartWaveIdempotent(t *testing.T) {
	g := newGame(t)
	if _, err := g.StartWave(); err != nil {
		t.Fatalf("StartWave: %v", err)
	}
	if _, err := g.StartWave(); err != nil {
		t.Fatalf("StartWave: %v", err)
	}

	snap := g.Snapshot()
	if snap.Wave != 1 || !snap.WaveInProgress {
		t.Errorf("Expected wave 1 in progress, got wave %d in progress %v", snap.Wave, snap.WaveInProgress)
	}
	if len(snap.Enemies) != 7 {
		t.Errorf("Expected 7 enemies, got %d", len(snap.Enemies))
	}
	if snap.State != component.WaveState {
		t.Errorf("Expected WAVE state, got %s", snap.State)
	}
}

func TestGame_WaveCompletionPayout(t *testing.T) {
	g := newGame(t)
	if _, err := g.StartWave(); err != nil {
		t.Fatalf("StartWave: %v", err)
	}
	clearWave(g)

	snap := g.Snapshot()
	// 7 basic bounties of 10, then 100 + 10*1 + 5% of 270.
	if snap.Money != 393 {
		t.Errorf("Expected 393 money, got %d", snap.Money)
	}
	if snap.WaveInProgress || snap.State != component.BuildState {
		t.Errorf("Expected wave over in BUILD state, got in progress %v state %s", snap.WaveInProgress, snap.State)
	}
	if len(snap.Effects) != 7 {
		t.Errorf("Expected 7 death effects, got %d", len(snap.Effects))
	}
}

func TestGame_WaveThreeComposition(t *testing.T) {
	g := newGame(t)
	for range 2 {
		if _, err := g.StartWave(); err != nil {
			t.Fatalf("StartWave: %v", err)
		}
		clearWave(g)
	}
	if _, err := g.StartWave(); err != nil {
		t.Fatalf("StartWave: %v", err)
	}

	snap := g.Snapshot()
	if snap.Wave != 3 || len(snap.Enemies) != 11 {
		t.Fatalf("Expected 11 enemies on wave 3, got %d on wave %d", len(snap.Enemies), snap.Wave)
	}
	for _, e := range snap.Enemies {
		if e.Kind == defs.EnemyBasic && e.MaxHealth != 140 {
			t.Errorf("Expected basic health 140, got %d", e.MaxHealth)
		}
	}
}

func TestGame_NewEntitiesInvisibleUntilNextTick(t *testing.T) {
	g := newGame(t)
	g.ECS.Player.Money = 1000
	// Spot 1 sits 158px from the path entry, inside rocket range.
	if _, _, err := g.PlaceTower(1, defs.TowerRocket); err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}
	if _, err := g.StartWave(); err != nil {
		t.Fatalf("StartWave: %v", err)
	}

	g.Tick(config.FixedStep)
	snap := g.Snapshot()
	if len(snap.Projectiles) != 1 {
		t.Fatalf("Expected 1 rocket after the firing tick, got %d", len(snap.Projectiles))
	}
	center := defs.SpotCenter(g.Level.Spots[1])
	if snap.Projectiles[0].Position != center {
		t.Errorf("Expected rocket not moved in the tick it was fired, at %+v", snap.Projectiles[0].Position)
	}
	for _, v := range snap.Effects {
		if v.FadeRatio() != 1 {
			t.Errorf("Expected effects spawned this tick not aged, fade %v", v.FadeRatio())
		}
	}

	g.Tick(config.FixedStep)
	snap = g.Snapshot()
	if len(snap.Projectiles) != 1 || snap.Projectiles[0].Position == center {
		t.Errorf("Expected rocket in flight on the next tick")
	}
}

func TestGame_GameOverIsTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := newGame(t)

	listener := mocks.NewMockListener(ctrl)
	listener.EXPECT().OnEvent(event.Event{Type: event.GameOver, Data: event.GameOverData{Wave: 1}}).Times(1)
	g.Subscribe(event.GameOver, listener)

	if _, err := g.StartWave(); err != nil {
		t.Fatalf("StartWave: %v", err)
	}
	g.ECS.Player.Health = 10
	last := g.Level.Path.At(g.Level.Path.Len() - 1)
	for _, e := range g.ECS.Enemies {
		e.PathIndex = g.Level.Path.Len() - 1
		e.Position = last.Add(-0.1, 0)
	}

	g.Tick(config.FixedStep) // every enemy leaks
	if !g.IsOver() {
		t.Fatal("Expected game over once health is gone")
	}
	before := g.Snapshot()

	for range 5 {
		g.Tick(config.FixedStep)
	}
	after := g.Snapshot()
	if after.State != component.GameOverState {
		t.Errorf("Expected GAME OVER state, got %s", after.State)
	}
	if after.Time != before.Time {
		t.Errorf("Expected simulation frozen, time moved from %v to %v", before.Time, after.Time)
	}
	if _, _, err := g.PlaceTower(0, defs.TowerCannon); !errors.Is(err, app.ErrGameOver) {
		t.Errorf("Expected ErrGameOver, got %v", err)
	}
	if _, err := g.StartWave(); !errors.Is(err, app.ErrGameOver) {
		t.Errorf("Expected ErrGameOver from StartWave, got %v", err)
	}
}

func TestGame_DispatchesTowerEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := newGame(t)
	listener := mocks.NewMockListener(ctrl)
	g.Subscribe(event.TowerPlaced, listener)
	g.Subscribe(event.TowerRemoved, listener)

	gomock.InOrder(
		listener.EXPECT().OnEvent(gomock.Cond(func(e event.Event) bool {
			d, ok := e.Data.(event.TowerData)
			return e.Type == event.TowerPlaced && ok && d.Kind == defs.TowerCannon && d.Money == 100
		})),
		listener.EXPECT().OnEvent(gomock.Cond(func(e event.Event) bool {
			d, ok := e.Data.(event.TowerData)
			return e.Type == event.TowerRemoved && ok && d.Money == 75
		})),
	)

	id, _, err := g.PlaceTower(0, defs.TowerCannon)
	if err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}
	if _, err := g.SellTower(id); err != nil {
		t.Fatalf("SellTower: %v", err)
	}
}

func TestGame_FrameSpeedAndPause(t *testing.T) {
	g := newGame(t)

	g.Frame()
	if got := g.Snapshot().Time; !near(got, config.FixedStep) {
		t.Fatalf("Expected one tick at 1x, time %v", got)
	}

	if s := g.CycleSpeed(); s != 2 {
		t.Fatalf("Expected 2x, got %d", s)
	}
	g.Frame()
	if got := g.Snapshot().Time; !near(got, 3*config.FixedStep) {
		t.Errorf("Expected three ticks total, time %v", got)
	}

	if s := g.CycleSpeed(); s != 4 {
		t.Errorf("Expected 4x, got %d", s)
	}
	if s := g.CycleSpeed(); s != 1 {
		t.Errorf("Expected speed to wrap to 1x, got %d", s)
	}

	if !g.TogglePause() {
		t.Fatal("Expected paused")
	}
	before := g.Snapshot().Time
	g.Frame()
	if after := g.Snapshot().Time; after != before {
		t.Errorf("Expected no ticks while paused, time moved %v -> %v", before, after)
	}
}

func TestLoop_FixedSteps(t *testing.T) {
	g := newGame(t)
	loop := app.NewLoop(g)

	steps, alpha := loop.Advance(3*config.FixedStep + 0.001)
	if steps != 3 {
		t.Errorf("Expected 3 steps, got %d", steps)
	}
	if alpha <= 0 || alpha >= 1 {
		t.Errorf("Expected alpha in (0,1), got %v", alpha)
	}

	steps, _ = loop.Advance(10)
	if steps < 14 || steps > 15 {
		t.Errorf("Expected a long frame capped to about 15 steps, got %d", steps)
	}
}

func TestGame_ConcurrentSnapshots(t *testing.T) {
	g := newGame(t)
	g.ECS.Player.Money = 10000
	for spot := range g.Level.Spots {
		kind := defs.TowerKinds[spot%len(defs.TowerKinds)]
		if _, _, err := g.PlaceTower(spot, kind); err != nil {
			t.Fatalf("PlaceTower %d: %v", spot, err)
		}
	}
	if _, err := g.StartWave(); err != nil {
		t.Fatalf("StartWave: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 300 {
			g.Tick(config.FixedStep)
		}
	}()
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				snap := g.Snapshot()
				for _, e := range snap.Enemies {
					if e.PathIndex > snap.Path.Len() {
						t.Errorf("Path index %d beyond path of %d", e.PathIndex, snap.Path.Len())
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestGame_TowerAtPoint(t *testing.T) {
	g := newGame(t)
	id, _, _ := g.PlaceTower(2, defs.TowerCannon)
	corner := g.Level.Spots[2]

	got, ok := g.TowerAtPoint(corner.Add(10, 10))
	if !ok || got != id {
		t.Errorf("Expected tower %d, got %d (%v)", id, got, ok)
	}
	if _, ok := g.TowerAtPoint(geom.Point{X: 790, Y: 590}); ok {
		t.Error("Expected no tower off the build spots")
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
