package component

import "go-td-sim/internal/config"

// readySlack absorbs rounding in ticks*rate for rates like 1.1 or 1.25^n.
const readySlack = 1e-9

// Weapon — компонент для башен, управляющий атакой.
// Cooldown is counted in fixed simulation ticks, so speed multipliers and pauses
// never let a tower fire faster than FireRate and accumulated float time cannot
// push a shot a tick late.
type Weapon struct {
	BaseFireRate float64 // Скорострельность без баффов (выстрелов в секунду)
	FireRate     float64 // Текущая скорострельность
	LastFire     int64   // Tick of the last shot
	HasFired     bool
}

// ResetFireRate drops any buffs applied during the previous tick.
func (w *Weapon) ResetFireRate() {
	w.FireRate = w.BaseFireRate
}

// ApplyBuff multiplies the current fire rate. Buffs from several supports compound.
func (w *Weapon) ApplyBuff(multiplier float64) {
	w.FireRate *= multiplier
}

// Ready reports whether at least 1/FireRate seconds worth of ticks have passed
// since the last shot. A weapon that has never fired is always ready.
func (w *Weapon) Ready(tick int64) bool {
	if w.FireRate <= 0 {
		return false
	}
	if !w.HasFired {
		return true
	}
	return float64(tick-w.LastFire)*w.FireRate >= config.TickRate-readySlack
}

func (w *Weapon) MarkFired(tick int64) {
	w.LastFire = tick
	w.HasFired = true
}
