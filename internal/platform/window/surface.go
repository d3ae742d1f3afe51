package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/clicker/internal/core"
)

// baseFontSize is the pixel height of basicfont.Face7x13.
const baseFontSize = 13

// surface draws onto the frame's screen image.
type surface struct {
	dst  *ebiten.Image
	face *text.GoXFace
}

func newSurface() *surface {
	return &surface{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (s *surface) Clear(c color.Color) {
	s.dst.Fill(c)
}

func (s *surface) DrawCircle(center core.Vec2, radius float64, c color.Color) {
	vector.DrawFilledCircle(s.dst, float32(center.X), float32(center.Y), float32(radius), c, true)
}

// DrawText scales the bitmap face so that size is the line height.
func (s *surface) DrawText(str string, x, y, size int, c color.Color) {
	scale := float64(size) / baseFontSize

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, s.face, op)
}

func (s *surface) MeasureText(str string, size int) int {
	return int(text.Advance(str, s.face) * float64(size) / baseFontSize)
}

func (s *surface) DrawFPS(x, y int) {
	s.DrawText(fmt.Sprintf("%.0f FPS", ebiten.ActualFPS()), x, y, 20, core.ColorFPS)
}
