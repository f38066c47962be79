package particles

import (
	"image/color"
	"math"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
)

// Surface is the drawing capability the backdrop renders onto.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
}

// Viewport is the visible drawing area in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

func (v Viewport) Area() float64 {
	if v.Width <= 0 || v.Height <= 0 {
		return 0
	}
	return v.Width * v.Height
}

// Pointer is the user's cursor. Set stays false until the first movement so an
// untouched pointer never repels anything.
type Pointer struct {
	X, Y   float64
	Set    bool
	Radius float64
}

func NewPointer() Pointer {
	return Pointer{Radius: config.PointerRadius}
}

// MoveTo returns the pointer at (x, y), marked as set.
func (p Pointer) MoveTo(x, y float64) Pointer {
	p.X, p.Y, p.Set = x, y, true
	return p
}

type Particle struct {
	ID     uint64
	X, Y   float64
	DX, DY float64
	Size   float64
	Color  color.RGBA
}

// Step returns the particle after one update: boundary reflection, pointer
// repulsion, then movement by velocity*dt. The receiver is not modified.
func (p Particle) Step(dt float64, vp Viewport, ptr Pointer) Particle {
	if p.X > vp.Width || p.X < 0 {
		p.DX = -p.DX
	}
	if p.Y > vp.Height || p.Y < 0 {
		p.DY = -p.DY
	}

	if ptr.Set {
		p = p.repel(vp, ptr)
	}

	p.X += p.DX * dt
	p.Y += p.DY * dt
	return p
}

// repel pushes the particle away from the pointer one axis at a time. Each push
// is skipped if it would land within size*EdgeMarginFactor of that edge.
func (p Particle) repel(vp Viewport, ptr Pointer) Particle {
	dx := ptr.X - p.X
	dy := ptr.Y - p.Y
	if math.Hypot(dx, dy) >= ptr.Radius+p.Size {
		return p
	}

	margin := p.Size * config.EdgeMarginFactor
	if ptr.X < p.X && p.X < vp.Width-margin {
		p.X += config.RepelStep
	}
	if ptr.X > p.X && p.X > margin {
		p.X -= config.RepelStep
	}
	if ptr.Y < p.Y && p.Y < vp.Height-margin {
		p.Y += config.RepelStep
	}
	if ptr.Y > p.Y && p.Y > margin {
		p.Y -= config.RepelStep
	}
	return p
}

func (p Particle) Draw(s Surface) {
	s.FillCircle(p.X, p.Y, p.Size, p.Color)
}
