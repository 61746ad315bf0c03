// internal/component/player.go
package component

// Player хранит ресурсы игрока: деньги и здоровье базы.
type Player struct {
	Money  int
	Health int
}

func (p *Player) CanAfford(cost int) bool {
	return p.Money >= cost
}

// Spend deducts cost if the player can afford it and reports whether it did.
func (p *Player) Spend(cost int) bool {
	if !p.CanAfford(cost) {
		return false
	}
	p.Money -= cost
	return true
}

func (p *Player) IsDefeated() bool {
	return p.Health <= 0
}
