// pkg/render/field_renderer.go
package render

import (
	"image/color"
	"math"

	"go-td-sim/internal/app"
	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldRenderer draws the playfield part of a snapshot.
type FieldRenderer struct {
	colors   MapColors
	mapImage *ebiten.Image // Предрендеренные путь и клетки
	path     *geom.Path
	spots    []geom.Point
}

func NewFieldRenderer(level *defs.Level, colors MapColors) *FieldRenderer {
	r := &FieldRenderer{
		colors:   colors,
		mapImage: ebiten.NewImage(int(config.PlayfieldW), int(config.PlayfieldH)),
		path:     level.Path,
		spots:    level.Spots,
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage pre-renders the parts of the field that never change.
func (r *FieldRenderer) RenderMapImage() {
	img := r.mapImage
	img.Fill(r.colors.BackgroundColor)

	points := r.path.Points()
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		vector.StrokeLine(img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), r.colors.PathWidth, r.colors.PathColor, true)
	}
	// Round the corners.
	for _, p := range points {
		vector.DrawFilledCircle(img, float32(p.X), float32(p.Y), r.colors.PathWidth/2, r.colors.PathColor, true)
	}

	for _, s := range r.spots {
		drawCell(img, s, r.colors.SpotColor)
	}
}

// Draw renders the snapshot. hoverSpot is -1 when the cursor is off the build spots.
func (r *FieldRenderer) Draw(screen *ebiten.Image, snap *app.Snapshot, hoverSpot int, selected *component.Tower) {
	screen.DrawImage(r.mapImage, nil)

	if hoverSpot >= 0 && hoverSpot < len(r.spots) && snap.Spots[hoverSpot].Tower == 0 {
		drawCell(screen, r.spots[hoverSpot], r.colors.SpotHoverColor)
	}
	if selected != nil {
		vector.DrawFilledCircle(screen, float32(selected.Center.X), float32(selected.Center.Y), float32(selected.Range), Straight(r.colors.SelectionColor, 1), true)
	}

	for i := range snap.Towers {
		r.drawTower(screen, snap, &snap.Towers[i])
	}
	for i := range snap.Enemies {
		r.drawEnemy(screen, &snap.Enemies[i])
	}
	for i := range snap.Projectiles {
		r.drawProjectile(screen, &snap.Projectiles[i])
	}
	for i := range snap.Effects {
		v := &snap.Effects[i]
		vector.DrawFilledCircle(screen, float32(v.Position.X), float32(v.Position.Y), float32(v.CurrentRadius()), Straight(v.Color, v.FadeRatio()), true)
	}
}

func (r *FieldRenderer) drawTower(screen *ebiten.Image, snap *app.Snapshot, t *component.Tower) {
	cx, cy := float32(t.Center.X), float32(t.Center.Y)
	radius := float32(config.TileSize * t.Visuals.RadiusFactor)

	vector.DrawFilledCircle(screen, cx+2, cy+2, radius, config.ShadowColor, true)
	vector.DrawFilledCircle(screen, cx, cy, radius, t.Visuals.Color, true)
	vector.StrokeCircle(screen, cx, cy, radius, 2, DarkenColor(t.Visuals.Color), true)

	if t.IsSupport() {
		return
	}
	barrel := float64(radius) * 1.3
	bx := cx + float32(barrel*math.Cos(t.Turret.Angle))
	by := cy + float32(barrel*math.Sin(t.Turret.Angle))
	vector.StrokeLine(screen, cx, cy, bx, by, 5, DarkenColor(t.Visuals.Color), true)

	if t.Kind == defs.TowerLaser && t.TargetID != 0 {
		if e, ok := snap.Enemy(t.TargetID); ok {
			vector.StrokeLine(screen, bx, by, float32(e.Position.X), float32(e.Position.Y), 2, config.ColorRed, true)
		}
	}
}

func (r *FieldRenderer) drawEnemy(screen *ebiten.Image, e *component.Enemy) {
	x, y := float32(e.Position.X), float32(e.Position.Y)
	radius := float32(config.TileSize * e.Visuals.RadiusFactor)

	if e.Flying {
		vector.DrawFilledCircle(screen, x+4, y+8, radius*0.8, config.ShadowColor, true)
	}
	vector.DrawFilledCircle(screen, x, y, radius, e.Visuals.Color, true)
	if e.Slow.Active {
		vector.DrawFilledCircle(screen, x, y, radius, Straight(config.SlowTintColor, 1), true)
	}

	// Полоска здоровья
	const barH = 4
	barW := float32(config.TileSize * 0.8)
	ratio := float32(max(0, e.Health)) / float32(e.MaxHealth)
	top := y - radius - 8
	vector.DrawFilledRect(screen, x-barW/2, top, barW, barH, config.HealthBarBack, false)
	vector.DrawFilledRect(screen, x-barW/2, top, barW*ratio, barH, config.HealthBarFront, false)
}

func (r *FieldRenderer) drawProjectile(screen *ebiten.Image, p *component.Projectile) {
	var c color.RGBA
	radius := float32(4)
	switch p.Kind {
	case component.ProjectileFrostBolt:
		c = color.RGBA{0, 255, 255, 255}
	case component.ProjectileRocket:
		c, radius = config.ColorOrange, 5
	default:
		c = color.RGBA{255, 255, 0, 255}
	}
	vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), radius, c, true)
}

func drawCell(dst *ebiten.Image, corner geom.Point, c color.Color) {
	const inset = 2
	size := float32(config.TileSize - 2*inset)
	vector.DrawFilledRect(dst, float32(corner.X)+inset, float32(corner.Y)+inset, size, size, c, false)
}
