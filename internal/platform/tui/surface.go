package tui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vovakirdan/clicker/internal/core"
)

// targetRune fills cells covered by a circle.
const targetRune = '█'

// cellSurface rasterizes world coordinates onto a character Screen.
// One cell covers worldW/width by worldH/height world units.
type cellSurface struct {
	screen *core.Screen
	worldW float64
	worldH float64
	fps    int
}

func newCellSurface(screen *core.Screen, cfg core.RuntimeConfig) *cellSurface {
	return &cellSurface{
		screen: screen,
		worldW: float64(cfg.WorldW),
		worldH: float64(cfg.WorldH),
	}
}

// cellSize returns the world size of one cell.
func (s *cellSurface) cellSize() (w, h float64) {
	return s.worldW / float64(max(s.screen.Width(), 1)), s.worldH / float64(max(s.screen.Height(), 1))
}

// toCell maps a world point to the cell containing it.
func (s *cellSurface) toCell(p core.Vec2) (col, row int) {
	cw, ch := s.cellSize()
	return int(math.Floor(p.X / cw)), int(math.Floor(p.Y / ch))
}

// toWorld maps a cell to the world point at its center.
func (s *cellSurface) toWorld(col, row int) core.Vec2 {
	cw, ch := s.cellSize()
	return core.V((float64(col)+0.5)*cw, (float64(row)+0.5)*ch)
}

func (s *cellSurface) Clear(c color.Color) {
	s.screen.Fill(' ', core.RGBA(c))
}

// DrawCircle fills every cell whose center lies in the circle. The cell
// holding the center is always filled so small targets stay visible.
func (s *cellSurface) DrawCircle(center core.Vec2, radius float64, c color.Color) {
	fg := core.RGBA(c)
	circle := core.Circle{Center: center, Radius: radius}

	minCol, minRow := s.toCell(core.V(center.X-radius, center.Y-radius))
	maxCol, maxRow := s.toCell(core.V(center.X+radius, center.Y+radius))
	minCol = core.Clamp(minCol, 0, s.screen.Width()-1)
	maxCol = core.Clamp(maxCol, 0, s.screen.Width()-1)
	minRow = core.Clamp(minRow, 0, s.screen.Height()-1)
	maxRow = core.Clamp(maxRow, 0, s.screen.Height()-1)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if circle.Contains(s.toWorld(col, row)) {
				s.screen.SetCell(col, row, targetRune, fg)
			}
		}
	}

	col, row := s.toCell(center)
	s.screen.SetCell(col, row, targetRune, fg)
}

// DrawText writes one rune per cell; size is ignored.
func (s *cellSurface) DrawText(str string, x, y, _ int, c color.Color) {
	col, row := s.toCell(core.V(float64(x), float64(y)))
	s.screen.DrawText(col, row, str, core.RGBA(c))
}

// MeasureText returns the world width of str at one rune per cell.
func (s *cellSurface) MeasureText(str string, _ int) int {
	cw, _ := s.cellSize()
	return int(float64(len([]rune(str))) * cw)
}

func (s *cellSurface) DrawFPS(x, y int) {
	s.DrawText(fmt.Sprintf("%d FPS", s.fps), x, y, 0, core.ColorFPS)
}
