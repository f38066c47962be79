package particles

import (
	"image/color"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
)

// Connection is a line between two particles, by index into the batch.
type Connection struct {
	A, B  int
	Alpha float64
}

// Threshold is the squared distance below which two particles connect.
func Threshold(vp Viewport) float64 {
	return (vp.Width / config.ConnectionDivisor) * (vp.Height / config.ConnectionDivisor)
}

// Opacity maps a squared distance to line alpha, clamped to [0, 1] before scaling.
func Opacity(dist2 float64) float64 {
	return clamp01(1-dist2/config.OpacityFalloff) * config.LineAlphaScale
}

// Connect walks every unordered pair a <= b, self-pairs included, and returns the
// ones closer than the viewport threshold.
func Connect(ps []Particle, vp Viewport) []Connection {
	limit := Threshold(vp)
	var out []Connection
	for a := 0; a < len(ps); a++ {
		for b := a; b < len(ps); b++ {
			dx := ps[a].X - ps[b].X
			dy := ps[a].Y - ps[b].Y
			d2 := dx*dx + dy*dy
			if d2 < limit {
				out = append(out, Connection{A: a, B: b, Alpha: Opacity(d2)})
			}
		}
	}
	return out
}

// RenderConnections strokes each visible connection.
func RenderConnections(s Surface, ps []Particle, conns []Connection) {
	for _, c := range conns {
		if c.Alpha <= 0 {
			continue
		}
		a, b := ps[c.A], ps[c.B]
		s.StrokeLine(a.X, a.Y, b.X, b.Y, config.LineWidth, lineColor(c.Alpha))
	}
}

func lineColor(alpha float64) color.NRGBA {
	c := config.ConnectionColor
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
