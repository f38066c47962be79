package game

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
	"github.com/iburimskiy/portfolio-backdrop/internal/fx"
	"github.com/iburimskiy/portfolio-backdrop/internal/page"
)

const glyphWidth = 7

var whiteSubImage *ebiten.Image

func white() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

func (g *Game) Draw(screen *ebiten.Image) {
	pal := paletteFor(g.theme)

	// backdrop clears the screen itself; if it has failed, clear here instead
	surface := screenSurface{dst: screen, bg: pal.bg}
	if !g.guard.Run(behaviorBackdrop, func() { g.loop.Tick(surface) }) {
		screen.Fill(pal.bg)
	}

	g.guard.Run(behaviorTypewriter, func() { g.drawHero(screen, pal) })
	g.guard.Run(behaviorReveal, func() { g.drawSections(screen, pal) })
	g.guard.Run(behaviorNavbar, func() { g.drawNavbar(screen, pal) })
	g.guard.Run(behaviorContact, func() { g.drawToast(screen, pal) })
	g.guard.Run(behaviorCursor, func() { g.drawCursor(screen, pal) })

	status := "Wheel/PgUp/PgDn: scroll  T: theme  Enter: contact  Esc/Q: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, g.height-20)
}

func drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(dst, s, basicfont.Face7x13, op)
}

func textWidth(s string, scale float64) float64 {
	return float64(len([]rune(s))*glyphWidth) * scale
}

func (g *Game) drawHero(screen *ebiten.Image, pal palette) {
	top := -g.doc.ScrollY
	if top+float64(g.height) < 0 {
		return
	}
	cx := float64(g.width) / 2
	cy := top + float64(g.height)/2

	greeting := "Hi, I'm a developer crafting"
	drawText(screen, greeting, cx-textWidth(greeting, 2)/2, cy-40, 2, pal.muted)

	line := g.typewriter.Text() + "|"
	drawText(screen, line, cx-textWidth(line, 4)/2, cy+20, 4, pal.accent)
}

func (g *Game) drawSections(screen *ebiten.Image, pal palette) {
	for _, e := range g.doc.Elements {
		if e.Hidden && !g.observer.Shown(e.ID) {
			continue
		}
		r := g.doc.Screen(e.Rect)
		if r.Y+r.H < 0 || r.Y > float64(g.height) {
			continue
		}
		switch e.Kind {
		case page.KindHeading:
			drawText(screen, e.Title, r.X, r.Y+30, 3, pal.text)
		case page.KindCard:
			g.drawCard(screen, pal, e, r)
		case page.KindSkills:
			g.drawSkills(screen, pal, e, r)
		case page.KindContact:
			g.drawContact(screen, pal, e, r)
		}
	}
}

func (g *Game) drawCard(screen *ebiten.Image, pal palette, e page.Element, r page.Rect) {
	tilt, ok := g.tilts[e.ID]
	if !ok {
		tilt = fx.Flat()
	}
	corners := tilt.Corners(r.W, r.H)

	vs := make([]ebiten.Vertex, 4)
	cr, cg, cb, ca := float32(pal.card.R)/255, float32(pal.card.G)/255, float32(pal.card.B)/255, float32(0.85)
	for i, c := range corners {
		vs[i] = ebiten.Vertex{
			DstX: float32(r.X + c[0]), DstY: float32(r.Y + c[1]),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	op := &ebiten.DrawTrianglesOptions{ColorScaleMode: ebiten.ColorScaleModeStraightAlpha, AntiAlias: true}
	screen.DrawTriangles(vs, []uint16{0, 1, 2, 0, 2, 3}, white(), op)

	border := pal.border
	if !tilt.IsFlat() {
		border = pal.accent
	}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%4]
		vector.StrokeLine(screen, float32(r.X+a[0]), float32(r.Y+a[1]), float32(r.X+b[0]), float32(r.Y+b[1]), 1.5, border, true)
	}

	tl := corners[0]
	drawText(screen, e.Title, r.X+tl[0]+20, r.Y+tl[1]+40, 2, pal.text)
	drawText(screen, e.Body, r.X+tl[0]+20, r.Y+tl[1]+72, 1, pal.muted)
}

func (g *Game) drawSkills(screen *ebiten.Image, pal palette, e page.Element, r page.Rect) {
	drawText(screen, e.Title, r.X, r.Y+30, 3, pal.text)
	barW := r.W * 0.6
	for i, sk := range e.Skills {
		y := r.Y + 48 + float64(i)*page.SkillRow
		drawText(screen, sk.Name, r.X, y+16, 1, pal.text)

		bx := r.X + 140
		vector.DrawFilledRect(screen, float32(bx), float32(y+6), float32(barW), 12, pal.border, false)

		fill := g.bars[sk.Name].Width * barW
		if fill <= 0 {
			continue
		}
		hue := 175 + float64(i)*25
		cr, cg, cb := hsvToRgb(hue, 0.9, 0.95)
		vector.DrawFilledRect(screen, float32(bx), float32(y+6), float32(fill), 12, color.RGBA{R: cr, G: cg, B: cb, A: 255}, false)
	}
}

func (g *Game) drawContact(screen *ebiten.Image, pal palette, e page.Element, r page.Rect) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), withAlpha(pal.card, 0.85), false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1.5, pal.border, false)
	drawText(screen, e.Title, r.X+24, r.Y+48, 3, pal.text)
	drawText(screen, e.Body, r.X+24, r.Y+84, 1, pal.muted)

	b := g.doc.Screen(g.doc.SendButton())
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), pal.accent, false)
	label := "Send Message"
	drawText(screen, label, b.X+(b.W-textWidth(label, 1))/2, b.Y+b.H/2+4, 1, pal.bg)
}

func (g *Game) drawNavbar(screen *ebiten.Image, pal palette) {
	if g.nav.Scrolled {
		vector.DrawFilledRect(screen, 0, 0, float32(g.width), page.NavbarHeight, pal.navbar, false)
		vector.StrokeLine(screen, 0, page.NavbarHeight, float32(g.width), page.NavbarHeight, 1, pal.border, false)
	}
	drawText(screen, "<dev/>", page.SideMargin, page.NavbarHeight/2+8, 2, pal.accent)

	b := g.doc.ThemeButton()
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, pal.border, false)
	// the bitmap font has no glyphs for the sun and moon symbols
	label := strings.TrimSpace(strings.TrimLeft(g.theme.Label(), "☀☾"))
	drawText(screen, label, b.X+(b.W-textWidth(label, 1))/2, b.Y+b.H/2+4, 1, pal.text)

	if g.nav.BackToTop {
		t := g.doc.BackToTop()
		vector.DrawFilledCircle(screen, float32(t.X+t.W/2), float32(t.Y+t.H/2), float32(t.W/2), pal.accent, true)
		drawText(screen, "^", t.X+t.W/2-3, t.Y+t.H/2+5, 1, pal.bg)
	}
}

func (g *Game) drawToast(screen *ebiten.Image, pal palette) {
	t := &g.form.Toast
	if !t.Visible() {
		return
	}
	alpha := clamp01(t.Remaining() / 0.1)
	w := textWidth(t.Message, 1) + 40
	x := (float64(g.width) - w) / 2
	y := float64(g.height) - 100

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 40, withAlpha(pal.card, alpha), false)
	glow := 1 + clamp01(g.chimeLevel)*4
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), 40, float32(glow), withAlpha(config.ParticleColor, alpha), false)
	drawText(screen, t.Message, x+20, y+24, 1, withAlpha(pal.text, alpha))
}

func (g *Game) drawCursor(screen *ebiten.Image, pal palette) {
	if !g.cursor.Active() {
		return
	}
	ox, oy := g.cursor.Outline()
	vector.StrokeCircle(screen, float32(ox), float32(oy), float32(g.cursor.OutlineRadius()), 1.5, withAlpha(pal.accent, 0.6), true)
	vector.DrawFilledCircle(screen, float32(g.cursor.DotX), float32(g.cursor.DotY), config.CursorDotRadius, pal.accent, true)
}
