package fx

import (
	"math"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
)

// Tilt is a card's 3D hover transform, in degrees.
type Tilt struct {
	RotateX float64
	RotateY float64
	Scale   float64
}

// Flat is the resting transform.
func Flat() Tilt {
	return Tilt{Scale: 1}
}

// TiltAt computes the transform for a w*h card with the pointer at (x, y)
// relative to the card's top-left corner.
func TiltAt(w, h, x, y float64) Tilt {
	if w <= 0 || h <= 0 {
		return Flat()
	}
	cx, cy := w/2, h/2
	return Tilt{
		RotateX: ((y - cy) / cy) * -config.TiltMaxDegrees,
		RotateY: ((x - cx) / cx) * config.TiltMaxDegrees,
		Scale:   config.TiltHoverScale,
	}
}

func (t Tilt) IsFlat() bool {
	return t.RotateX == 0 && t.RotateY == 0 && t.Scale == 1
}

// Corners projects a w*h card through the transform and returns its corners
// (top-left, top-right, bottom-right, bottom-left) relative to the card origin.
// Scale is applied first, then rotateY, then rotateX, then perspective.
func (t Tilt) Corners(w, h float64) [4][2]float64 {
	ax := t.RotateX * math.Pi / 180
	ay := t.RotateY * math.Pi / 180
	sinX, cosX := math.Sincos(ax)
	sinY, cosY := math.Sincos(ay)
	cx, cy := w/2, h/2

	local := [4][2]float64{{-cx, -cy}, {cx, -cy}, {cx, cy}, {-cx, cy}}
	var out [4][2]float64
	for i, p := range local {
		x, y, z := p[0]*t.Scale, p[1]*t.Scale, 0.0

		x, z = x*cosY+z*sinY, -x*sinY+z*cosY
		y, z = y*cosX-z*sinX, y*sinX+z*cosX

		f := config.TiltPerspective / (config.TiltPerspective - z)
		out[i] = [2]float64{cx + x*f, cy + y*f}
	}
	return out
}
