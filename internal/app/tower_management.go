// internal/app/tower_management.go
package app

import (
	"fmt"

	"go-td-sim/internal/component"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/event"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/geom"
)

// PlaceTower builds a tower of kind on build spot index spot.
// Nothing changes unless the spot is free and the player can pay.
func (g *Game) PlaceTower(spot int, kind defs.TowerKind) (types.EntityID, Economy, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.isOver() {
		return 0, g.economy(), ErrGameOver
	}
	if spot < 0 || spot >= len(g.spots) {
		return 0, g.economy(), fmt.Errorf("%w: %d", ErrUnknownSpot, spot)
	}
	if g.spots[spot] != 0 {
		return 0, g.economy(), fmt.Errorf("%w: %d", ErrSpotOccupied, spot)
	}
	def, ok := g.Library.Tower(kind)
	if !ok {
		return 0, g.economy(), fmt.Errorf("%w: %s", ErrUnknownTowerKind, kind)
	}
	if !g.ECS.Player.Spend(def.Cost) {
		g.logger.Debug("tower placement rejected", "kind", kind, "cost", def.Cost, "money", g.ECS.Player.Money)
		return 0, g.economy(), ErrInsufficientFunds
	}

	t := component.NewTower(g.ECS.NewEntity(), def, g.Level.Spots[spot])
	g.ECS.AddTower(t)
	g.spots[spot] = t.ID

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerData{TowerID: t.ID, Kind: t.Kind, Level: t.Level, Money: def.Cost},
	})
	return t.ID, g.economy(), nil
}

// UpgradeTower pays the tower's upgrade cost and applies one upgrade step.
func (g *Game) UpgradeTower(id types.EntityID) (Economy, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.isOver() {
		return g.economy(), ErrGameOver
	}
	t, ok := g.ECS.Tower(id)
	if !ok {
		return g.economy(), fmt.Errorf("%w: %d", ErrUnknownTower, id)
	}
	cost := t.UpgradeCost
	if !g.ECS.Player.Spend(cost) {
		g.logger.Debug("tower upgrade rejected", "tower", id, "cost", cost, "money", g.ECS.Player.Money)
		return g.economy(), ErrInsufficientFunds
	}
	t.Upgrade()

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerUpgraded,
		Data: event.TowerData{TowerID: t.ID, Kind: t.Kind, Level: t.Level, Money: cost},
	})
	return g.economy(), nil
}

// SellTower removes the tower and refunds part of everything spent on it.
func (g *Game) SellTower(id types.EntityID) (Economy, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.isOver() {
		return g.economy(), ErrGameOver
	}
	t, ok := g.ECS.Tower(id)
	if !ok {
		return g.economy(), fmt.Errorf("%w: %d", ErrUnknownTower, id)
	}
	refund := t.SellValue()
	g.ECS.RemoveTower(id)
	for i, occupant := range g.spots {
		if occupant == id {
			g.spots[i] = 0
		}
	}
	g.ECS.Player.Money += refund

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerRemoved,
		Data: event.TowerData{TowerID: t.ID, Kind: t.Kind, Level: t.Level, Money: refund},
	})
	return g.economy(), nil
}

// CycleTargeting switches the tower to its next targeting mode.
func (g *Game) CycleTargeting(id types.EntityID) (component.TargetingMode, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	t, ok := g.ECS.Tower(id)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownTower, id)
	}
	t.CycleTargetingMode()
	return t.Mode, nil
}

// SpotAt returns the build spot containing p.
func (g *Game) SpotAt(p geom.Point) (int, bool) {
	return g.Level.SpotAt(p)
}

// TowerAtPoint returns the id of the tower on the spot containing p.
func (g *Game) TowerAtPoint(p geom.Point) (types.EntityID, bool) {
	spot, ok := g.Level.SpotAt(p)
	if !ok {
		return 0, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	id := g.spots[spot]
	return id, id != 0
}
