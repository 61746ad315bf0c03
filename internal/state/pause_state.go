// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-td-sim/internal/config"
	"go-td-sim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует поверх замороженной игры. Симуляция не тикает.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if action, _ := s.previousState.panel.HandleClick(x, y, false); action == ui.ActionPause {
			unpause = true
		}
	}
	if unpause {
		s.previousState.panel.PulsePause()
		// GameState.Enter снимает паузу
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.PlayfieldW, config.PlayfieldH, color.RGBA{0, 0, 0, 128}, false)

	const pauseText = "PAUSED"
	face := basicfont.Face7x13
	bounds := text.BoundString(face, pauseText)
	x := (int(config.PlayfieldW) - bounds.Dx()) / 2
	y := int(config.PlayfieldH) / 2
	text.Draw(screen, pauseText, face, x, y, color.White)
}

func (s *PauseState) Exit() {}
