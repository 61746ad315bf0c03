// internal/ui/side_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"go-td-sim/internal/app"
	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Action is what a click on the side panel asks the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionSelectKind
	ActionStartWave
	ActionUpgrade
	ActionSell
	ActionTarget
	ActionPause
	ActionSpeed
)

const (
	panelPadding = 10
	buttonHeight = 26
	lineHeight   = 16
)

type kindButton struct {
	*Button
	kind defs.TowerKind
	cost int
}

// SidePanel — правая панель: ресурсы, меню строительства и выбранная башня.
type SidePanel struct {
	X    int
	face font.Face

	wave    *WaveIndicator
	pause   *PauseButton
	speed   *SpeedButton
	kinds   []kindButton
	start   *Button
	upgrade *Button
	sell    *Button
	target  *Button
}

func NewSidePanel(lib *defs.Library) *SidePanel {
	x := int(config.PlayfieldW)
	inner := config.PanelWidth - 2*panelPadding
	left := x + panelPadding

	p := &SidePanel{
		X:     x,
		face:  basicfont.Face7x13,
		wave:  NewWaveIndicator(x+config.PanelWidth/2, 28, config.ColorGold),
		pause: NewPauseButton(float32(left+20), 96, 9, config.TextLightColor, config.HealthBarFront),
		speed: NewSpeedButton(float32(left+70), 96, 8, config.TextLightColor),
	}

	y := 124
	for _, kind := range defs.TowerKinds {
		def, ok := lib.Tower(kind)
		if !ok {
			continue
		}
		label := fmt.Sprintf("%s  $%d", def.Name, def.Cost)
		p.kinds = append(p.kinds, kindButton{
			Button: NewButton(image.Rect(left, y, left+inner, y+buttonHeight), label),
			kind:   kind,
			cost:   def.Cost,
		})
		y += buttonHeight + 6
	}
	y += 6
	p.start = NewButton(image.Rect(left, y, left+inner, y+buttonHeight), "Start Wave")

	bottom := config.ScreenHeight - panelPadding
	half := (inner - 6) / 2
	p.target = NewButton(image.Rect(left, bottom-buttonHeight, left+inner, bottom), "Target")
	row := bottom - 2*buttonHeight - 6
	p.upgrade = NewButton(image.Rect(left, row, left+half, row+buttonHeight), "Upgrade")
	p.sell = NewButton(image.Rect(left+inner-half, row, left+inner, row+buttonHeight), "Sell")
	return p
}

// Contains reports whether the point is over the panel.
func (p *SidePanel) Contains(x, y int) bool {
	return x >= p.X && y >= 0 && y < config.ScreenHeight
}

// HandleClick maps a click to an action. The tower kind is set only for
// ActionSelectKind.
func (p *SidePanel) HandleClick(x, y int, hasSelection bool) (Action, defs.TowerKind) {
	if p.pause.IsClicked(x, y) {
		p.pause.Pulse()
		return ActionPause, ""
	}
	if p.speed.IsClicked(x, y) {
		p.speed.Pulse()
		return ActionSpeed, ""
	}
	for _, b := range p.kinds {
		if b.Contains(x, y) {
			return ActionSelectKind, b.kind
		}
	}
	if p.start.Contains(x, y) {
		return ActionStartWave, ""
	}
	if !hasSelection {
		return ActionNone, ""
	}
	switch {
	case p.upgrade.Contains(x, y):
		return ActionUpgrade, ""
	case p.sell.Contains(x, y):
		return ActionSell, ""
	case p.target.Contains(x, y):
		return ActionTarget, ""
	}
	return ActionNone, ""
}

// PulsePause и PulseSpeed анимируют кнопки при нажатии с клавиатуры.
func (p *SidePanel) PulsePause() { p.pause.Pulse() }
func (p *SidePanel) PulseSpeed() { p.speed.Pulse() }

// Draw renders the panel for the snapshot. chosen is the kind placed on the next
// click; selected is nil when no tower is selected.
func (p *SidePanel) Draw(screen *ebiten.Image, snap *app.Snapshot, chosen defs.TowerKind, selected *component.Tower) {
	vector.DrawFilledRect(screen, float32(p.X), 0, config.PanelWidth, float32(config.ScreenHeight), config.PanelColor, false)

	p.wave.Draw(screen, p.face, snap.Wave)
	left := p.X + panelPadding
	text.Draw(screen, fmt.Sprintf("$ %d", snap.Money), p.face, left, 52, config.ColorGold)
	text.Draw(screen, fmt.Sprintf("HP %d", snap.Health), p.face, left+config.PanelWidth/2, 52, config.TextLightColor)
	p.drawHealth(screen, left, 60, snap.Health)

	p.pause.Draw(screen, snap.Paused)
	p.speed.Draw(screen, snap.Speed)
	text.Draw(screen, fmt.Sprintf("x%d", snap.Speed), p.face, left+110, 101, config.TextLightColor)

	over := snap.State == component.GameOverState
	for _, b := range p.kinds {
		b.Draw(screen, p.face, !over && snap.Money >= b.cost)
		if b.kind == chosen {
			r := b.Rect
			vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, config.ColorGold, false)
		}
	}
	p.start.Draw(screen, p.face, !over && !snap.WaveInProgress)

	y := p.start.Rect.Max.Y + 24
	if over {
		msg := fmt.Sprintf("GAME OVER\nSurvived %d waves", max(snap.Wave-1, 0))
		drawLines(screen, msg, p.face, left, y, config.ColorRed)
		return
	}
	if selected != nil {
		p.drawSelection(screen, left, y, selected, snap.Money)
	}
}

func (p *SidePanel) drawSelection(screen *ebiten.Image, x, y int, t *component.Tower, money int) {
	text.Draw(screen, string(t.Kind), p.face, x, y, config.TextLightColor)
	drawLines(screen, t.Stats(), p.face, x, y+lineHeight+4, config.TextLightColor)

	p.upgrade.Draw(screen, p.face, money >= t.UpgradeCost)
	p.sell.Draw(screen, p.face, true)
	p.target.Text = "Target: " + t.Mode.String()
	p.target.Draw(screen, p.face, !t.IsSupport())
}

// drawHealth рисует полоску здоровья игрока, по делению на каждые 10 HP.
func (p *SidePanel) drawHealth(screen *ebiten.Image, x, y, health int) {
	const (
		pips = config.StartingHealth / config.LeakDamage
		gap  = 2
	)
	w := float32(config.PanelWidth-2*panelPadding-gap*(pips-1)) / pips
	for i := range pips {
		c := config.HealthBarBack
		if health > i*config.LeakDamage {
			c = config.HealthBarFront
		}
		px := float32(x) + float32(i)*(w+gap)
		vector.DrawFilledRect(screen, px, float32(y), w, 10, c, false)
	}
}

func drawLines(screen *ebiten.Image, s string, face font.Face, x, y int, c color.Color) {
	for i, line := range strings.Split(s, "\n") {
		text.Draw(screen, line, face, x, y+i*lineHeight, c)
	}
}
