// internal/app/autoplay.go
package app

import (
	"context"
	"errors"
	"fmt"

	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/types"

	"github.com/google/uuid"
)

// ErrWaveStalled means a wave did not finish within the tick limit.
var ErrWaveStalled = errors.New("wave did not finish")

// BuildOrder is one scripted tower placement.
type BuildOrder struct {
	Spot int
	Kind defs.TowerKind
}

// AutoplayOptions configures a scripted run.
type AutoplayOptions struct {
	Orders       []BuildOrder
	MaxWaves     int
	MaxWaveTicks int  // 0 means 60 simulated minutes
	Upgrade      bool // spend leftover money on upgrades once every order is placed
}

// TowerResult is the end-of-run record of one tower.
type TowerResult struct {
	ID          types.EntityID
	Kind        defs.TowerKind
	Level       int
	DamageDealt int64
}

// AutoplayResult summarizes a scripted run.
type AutoplayResult struct {
	GameID        uuid.UUID
	WavesSurvived int
	Money         int
	Health        int
	Ticks         int
	Over          bool
	Towers        []TowerResult
}

// Autoplay runs the game without a host: before every wave it places whatever
// orders it can afford, in order, then starts the wave and ticks until it ends.
// It stops after MaxWaves waves, at game over, or when ctx is cancelled.
func (g *Game) Autoplay(ctx context.Context, opts AutoplayOptions) (AutoplayResult, error) {
	limit := opts.MaxWaveTicks
	if limit <= 0 {
		limit = int(config.TickRate) * 3600
	}
	pending := opts.Orders
	ticks := 0

	for wave := 0; wave < opts.MaxWaves && !g.IsOver(); wave++ {
		pending = g.placeOrders(pending)
		if len(pending) == 0 && opts.Upgrade {
			g.upgradeCheapest()
		}
		if _, err := g.StartWave(); err != nil {
			return g.result(ticks), err
		}

		waveTicks := 0
		for g.waveRunning() {
			if waveTicks%int(config.TickRate) == 0 {
				if err := ctx.Err(); err != nil {
					return g.result(ticks), err
				}
			}
			if waveTicks >= limit {
				return g.result(ticks), fmt.Errorf("%w: wave %d after %d ticks", ErrWaveStalled, wave+1, waveTicks)
			}
			g.Tick(config.FixedStep)
			waveTicks++
			ticks++
		}
	}
	return g.result(ticks), nil
}

// placeOrders places orders from the front of the queue until one cannot be
// afforded. Orders that can never succeed are dropped.
func (g *Game) placeOrders(orders []BuildOrder) []BuildOrder {
	for len(orders) > 0 {
		o := orders[0]
		_, _, err := g.PlaceTower(o.Spot, o.Kind)
		switch {
		case err == nil:
		case errors.Is(err, ErrInsufficientFunds):
			return orders
		default:
			g.logger.Warn("build order dropped", "spot", o.Spot, "kind", o.Kind, "error", err)
		}
		orders = orders[1:]
	}
	return orders
}

// upgradeCheapest keeps buying the cheapest available upgrade while money lasts.
func (g *Game) upgradeCheapest() {
	for {
		g.mu.RLock()
		var best types.EntityID
		cost := 0
		for _, t := range g.ECS.Towers {
			if best == 0 || t.UpgradeCost < cost {
				best, cost = t.ID, t.UpgradeCost
			}
		}
		money := g.ECS.Player.Money
		g.mu.RUnlock()

		if best == 0 || cost > money {
			return
		}
		if _, err := g.UpgradeTower(best); err != nil {
			return
		}
	}
}

func (g *Game) waveRunning() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.ECS.Wave.InProgress && !g.isOver()
}

func (g *Game) result(ticks int) AutoplayResult {
	g.mu.RLock()
	defer g.mu.RUnlock()

	over := g.isOver()
	survived := g.ECS.Wave.Number
	if over || g.ECS.Wave.InProgress {
		survived--
	}
	r := AutoplayResult{
		GameID:        g.ID,
		WavesSurvived: max(survived, 0),
		Money:         g.ECS.Player.Money,
		Health:        g.ECS.Player.Health,
		Ticks:         ticks,
		Over:          over,
		Towers:        make([]TowerResult, 0, len(g.ECS.Towers)),
	}
	for _, t := range g.ECS.Towers {
		r.Towers = append(r.Towers, TowerResult{ID: t.ID, Kind: t.Kind, Level: t.Level, DamageDealt: t.DamageDealt})
	}
	return r
}
