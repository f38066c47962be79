package game

import (
	"image/color"
	"math"

	"github.com/iburimskiy/portfolio-backdrop/internal/fx"
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
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

func withAlpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(clamp01(a) * 255)}
}

type palette struct {
	bg     color.RGBA
	text   color.RGBA
	muted  color.RGBA
	card   color.RGBA
	border color.RGBA
	accent color.RGBA
	navbar color.RGBA
}

func paletteFor(t fx.Theme) palette {
	if t == fx.Light {
		return palette{
			bg:     color.RGBA{R: 240, G: 244, B: 248, A: 255},
			text:   color.RGBA{R: 20, G: 24, B: 32, A: 255},
			muted:  color.RGBA{R: 90, G: 100, B: 115, A: 255},
			card:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
			border: color.RGBA{R: 200, G: 210, B: 222, A: 255},
			accent: color.RGBA{R: 0, G: 150, B: 145, A: 255},
			navbar: color.RGBA{R: 255, G: 255, B: 255, A: 230},
		}
	}
	return palette{
		bg:     color.RGBA{R: 10, G: 12, B: 20, A: 255},
		text:   color.RGBA{R: 235, G: 240, B: 250, A: 255},
		muted:  color.RGBA{R: 140, G: 150, B: 170, A: 255},
		card:   color.RGBA{R: 22, G: 26, B: 40, A: 255},
		border: color.RGBA{R: 60, G: 70, B: 90, A: 255},
		accent: color.RGBA{R: 0, G: 242, B: 234, A: 255},
		navbar: color.RGBA{R: 14, G: 16, B: 28, A: 230},
	}
}
