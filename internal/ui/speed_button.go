// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton рисует по шеврону на каждую ступень ускорения.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	Color         color.Color
}

func NewSpeedButton(x, y, size float32, c color.Color) *SpeedButton {
	return &SpeedButton{X: x, Y: y, Size: size, Color: c}
}

// Draw shows one chevron at 1x, two at 2x and three at 4x.
func (b *SpeedButton) Draw(screen *ebiten.Image, multiplier int) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	size := b.Size * float32(1.0+0.3*math.Exp(-elapsed*8))

	chevrons := 1
	for m := multiplier; m > 1; m /= 2 {
		chevrons++
	}
	step := size * 0.7
	left := b.X - step*float32(chevrons-1)/2 - size/2
	for i := range chevrons {
		x := left + step*float32(i)
		vector.StrokeLine(screen, x, b.Y-size, x+size, b.Y, 3, b.Color, true)
		vector.StrokeLine(screen, x+size, b.Y, x, b.Y+size, 3, b.Color, true)
	}
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*2.5
}

func (b *SpeedButton) Pulse() {
	b.LastClickTime = time.Now()
}
