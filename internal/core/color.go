package core

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Palette used by game screens.
var (
	ColorBackground = colornames.Skyblue
	ColorTarget     = colornames.Red
	ColorText       = colornames.Black
	ColorTimer      = colornames.Red
	ColorCongrats   = colornames.Green
	ColorSummary    = colornames.Gold
	ColorFPS        = colornames.Lime
)

// RGBA converts any color to 8-bit non-premultiplied RGBA.
func RGBA(c color.Color) color.RGBA {
	if rgba, ok := c.(color.RGBA); ok {
		return rgba
	}
	n, _ := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}
