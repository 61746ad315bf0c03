// internal/system/state.go
package system

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
)

// StateSystem следит за фазой игры.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.WaveStarted, ss)
	eventDispatcher.Subscribe(event.WaveEnded, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if s.ecs.GameState == component.GameOverState {
		return
	}
	switch e.Type {
	case event.WaveStarted:
		s.ecs.GameState = component.WaveState
	case event.WaveEnded:
		s.ecs.GameState = component.BuildState
	}
}

// CheckGameOver switches to the terminal state the first time the player's health
// is gone and reports whether the game is over.
func (s *StateSystem) CheckGameOver() bool {
	if s.ecs.GameState == component.GameOverState {
		return true
	}
	if !s.ecs.Player.IsDefeated() {
		return false
	}
	s.ecs.GameState = component.GameOverState
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.GameOverData{Wave: s.ecs.Wave.Number},
	})
	return true
}

func (s *StateSystem) Current() component.GameState {
	return s.ecs.GameState
}
