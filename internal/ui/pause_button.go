// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton рисует паузу или "play", если игра на паузе.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{X: x, Y: y, Size: size, PauseColor: pauseColor, PlayColor: playColor}
}

func (b *PauseButton) Draw(screen *ebiten.Image, paused bool) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	size := b.Size * float32(1.0+0.3*math.Exp(-elapsed*8))

	if paused {
		// "Play": шеврон из линий
		vector.StrokeLine(screen, b.X-size*0.6, b.Y-size, b.X+size*0.8, b.Y, 4, b.PlayColor, true)
		vector.StrokeLine(screen, b.X+size*0.8, b.Y, b.X-size*0.6, b.Y+size, 4, b.PlayColor, true)
		vector.StrokeLine(screen, b.X-size*0.6, b.Y-size, b.X-size*0.6, b.Y+size, 4, b.PlayColor, true)
		return
	}
	width := size * 0.6
	height := size * 2
	spacing := size * 0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
}

func (b *PauseButton) IsClicked(x, y int) bool {
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*2
}

func (b *PauseButton) Pulse() {
	b.LastClickTime = time.Now()
}
