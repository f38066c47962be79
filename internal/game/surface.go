package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenSurface draws the backdrop onto an ebiten image.
type screenSurface struct {
	dst *ebiten.Image
	bg  color.Color
}

func (s screenSurface) Clear() {
	s.dst.Fill(s.bg)
}

func (s screenSurface) FillCircle(x, y, r float64, clr color.Color) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), clr, true)
}

func (s screenSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}
