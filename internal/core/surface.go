package core

import (
	"image/color"
	"time"
)

// Surface is the render target a game draws into once per frame.
// Coordinates are world units; text positions are the top-left corner.
type Surface interface {
	Clear(c color.Color)
	DrawCircle(center Vec2, radius float64, c color.Color)
	DrawText(s string, x, y, size int, c color.Color)
	MeasureText(s string, size int) int
	DrawFPS(x, y int)
}

// Clock supplies wall-clock time for session timing.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}
