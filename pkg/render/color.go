// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the static playfield.
type MapColors struct {
	BackgroundColor color.RGBA
	PathColor       color.RGBA
	SpotColor       color.RGBA
	SpotHoverColor  color.RGBA
	SelectionColor  color.RGBA
	PathWidth       float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Straight treats c as non-premultiplied, which is how the config and definition
// tables store translucent colours, and scales its alpha by ratio.
func Straight(c color.RGBA, ratio float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * ratio)}
}
