package view

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to ebiten.
type Color struct {
	R, G, B, A float64
}

// rgb builds an opaque Color from 8-bit components.
func rgb(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

// Palette.
var (
	ColorBackground = rgb(0xff, 0xff, 0xff)
	ColorNode       = rgb(0xff, 0xfd, 0xd0) // cream
	ColorHighlight  = rgb(0x90, 0xee, 0x90) // light green
	ColorInk        = rgb(0x00, 0x00, 0x00)
	ColorButton     = rgb(0xe8, 0xe8, 0xe8)
	ColorButtonDown = rgb(0xc8, 0xc8, 0xc8)
	ColorToolbar    = rgb(0xf4, 0xf4, 0xf4)
	ColorOverlay    = Color{0, 0, 0, 0.35}
)

// Geometry.
const (
	NodeRadius  = 20.0
	edgeWidth   = 2
	strokeWidth = 2

	toolbarHeight = 48.0
	toolbarPad    = 10.0
	widgetHeight  = 28.0
	fieldWidth    = 120.0
	buttonWidth   = 96.0
	buttonGap     = 8.0

	noticeWidth  = 520.0
	noticeHeight = 120.0
)
