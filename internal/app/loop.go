// internal/app/loop.go
package app

import (
	"time"

	"go-td-sim/internal/config"
)

// Loop drives a Game at a fixed timestep from a variable-rate host.
// Each accumulated step runs one Frame, so the speed multiplier and pause apply.
type Loop struct {
	game        *Game
	accumulator float64
	lastTime    time.Time
	now         func() time.Time
}

func NewLoop(game *Game) *Loop {
	return &Loop{game: game, now: time.Now}
}

// Update should be called every render frame. Returns the interpolation alpha.
func (l *Loop) Update() float64 {
	now := l.now()
	if l.lastTime.IsZero() {
		l.lastTime = now
	}
	frameTime := now.Sub(l.lastTime).Seconds()
	l.lastTime = now
	_, alpha := l.Advance(frameTime)
	return alpha
}

// Advance feeds frameTime seconds of wall time into the accumulator and runs as many
// fixed steps as fit. Frame times are capped to avoid the spiral of death.
func (l *Loop) Advance(frameTime float64) (steps int, alpha float64) {
	frameTime = min(frameTime, config.MaxFrameTime)
	l.accumulator += frameTime

	for l.accumulator >= config.FixedStep {
		l.game.Frame()
		l.accumulator -= config.FixedStep
		steps++
	}
	return steps, l.accumulator / config.FixedStep
}
