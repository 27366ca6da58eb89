package platform

import "image/color"

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Fade returns the color with its alpha scaled by alpha in [0, 1].
func (c Color) Fade(alpha float32) Color {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float32(c.A) * alpha)
	return c
}

// RGBA implements color.Color with non-premultiplied input.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Palette used by the game, matching the raylib defaults.
var (
	LightGray = Color{200, 200, 200, 255}
	Gray      = Color{130, 130, 130, 255}
	DarkGray  = Color{80, 80, 80, 255}
	Yellow    = Color{253, 249, 0, 255}
	Gold      = Color{255, 203, 0, 255}
	Orange    = Color{255, 161, 0, 255}
	Pink      = Color{255, 109, 194, 255}
	Red       = Color{230, 41, 55, 255}
	Maroon    = Color{190, 33, 55, 255}
	Green     = Color{0, 228, 48, 255}
	Lime      = Color{0, 158, 47, 255}
	SkyBlue   = Color{102, 191, 255, 255}
	DarkBlue  = Color{0, 82, 172, 255}
	Purple    = Color{200, 122, 255, 255}
	White     = Color{255, 255, 255, 255}
	Black     = Color{0, 0, 0, 255}
)
