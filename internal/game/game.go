package game

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/portfolio-backdrop/internal/audio"
	"github.com/iburimskiy/portfolio-backdrop/internal/config"
	"github.com/iburimskiy/portfolio-backdrop/internal/fx"
	"github.com/iburimskiy/portfolio-backdrop/internal/page"
	"github.com/iburimskiy/portfolio-backdrop/internal/particles"
)

// Behavior names used for isolation.
const (
	behaviorBackdrop   = "backdrop"
	behaviorCursor     = "cursor"
	behaviorTilt       = "tilt"
	behaviorReveal     = "reveal"
	behaviorNavbar     = "navbar"
	behaviorTypewriter = "typewriter"
	behaviorContact    = "contact"
	behaviorTheme      = "theme"
)

// input is one frame's worth of pointer and keyboard state.
type input struct {
	x, y    float64
	moved   bool
	clicked bool
	wheel   float64
	keys    map[ebiten.Key]bool
}

type Game struct {
	guard *fx.Guard

	// backdrop
	loop *particles.Loop

	// page
	doc        *page.Document
	cursor     *fx.Cursor
	observer   *fx.Observer
	bars       map[string]*fx.ProgressBar
	tilts      map[string]fx.Tilt
	typewriter *fx.Typewriter
	form       fx.ContactForm
	theme      fx.Theme
	nav        fx.ScrollState

	// audio and dialogs
	player     *audio.Player
	chimeLevel float64
	prompter   Prompter

	// window
	width, height int
	lastX, lastY  int
	pointerSeen   bool

	lastErr error
}

// New builds the game for the given settings. player may be nil to run silent.
func New(s config.Settings, player *audio.Player, prompter Prompter) *Game {
	theme, err := fx.ParseTheme(s.Theme)
	if err != nil {
		log.Printf("[GAME] %v, using dark", err)
	}

	seed := uint64(s.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	g := &Game{
		guard:      fx.NewGuard(),
		loop:       particles.NewLoop(particles.Viewport{Width: float64(s.Window.Width), Height: float64(s.Window.Height)}, rng),
		doc:        page.Layout(float64(s.Window.Width), float64(s.Window.Height)),
		cursor:     fx.NewCursor(),
		observer:   fx.NewObserver(),
		bars:       map[string]*fx.ProgressBar{},
		tilts:      map[string]fx.Tilt{},
		typewriter: fx.NewTypewriter(config.Phrases),
		theme:      theme,
		player:     player,
		prompter:   prompter,
		width:      s.Window.Width,
		height:     s.Window.Height,
	}
	for _, sk := range page.Skills {
		g.bars[sk.Name] = &fx.ProgressBar{DataWidth: sk.DataWidth}
	}
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	g.step(g.readInput(), dt)
	return nil
}

func (g *Game) readInput() input {
	mx, my := ebiten.CursorPosition()
	in := input{
		x:       float64(mx),
		y:       float64(my),
		clicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		keys:    map[ebiten.Key]bool{},
	}
	if !g.pointerSeen {
		g.pointerSeen = true
	} else if mx != g.lastX || my != g.lastY {
		in.moved = true
	}
	g.lastX, g.lastY = mx, my

	_, wy := ebiten.Wheel()
	in.wheel = -wy * config.ScrollWheelFactor

	for _, k := range []ebiten.Key{ebiten.KeyT, ebiten.KeyEnter, ebiten.KeyHome, ebiten.KeyPageUp, ebiten.KeyPageDown} {
		if inpututil.IsKeyJustPressed(k) {
			in.keys[k] = true
		}
	}
	return in
}

// step advances every behavior by one frame. Each one is isolated: a panic in
// one disables it and leaves the others running.
func (g *Game) step(in input, dt time.Duration) {
	if in.moved {
		g.guard.Run(behaviorBackdrop, func() { g.loop.MovePointer(in.x, in.y) })
	}
	g.guard.Run(behaviorCursor, func() { g.updateCursor(in, dt) })
	g.guard.Run(behaviorTilt, func() { g.updateTilt(in) })
	g.guard.Run(behaviorNavbar, func() { g.updateScroll(in) })
	g.guard.Run(behaviorReveal, func() { g.updateReveal(dt) })
	g.guard.Run(behaviorTypewriter, func() { g.typewriter.Advance(dt) })
	g.guard.Run(behaviorTheme, func() { g.updateTheme(in) })
	g.guard.Run(behaviorContact, func() { g.updateContact(in, dt) })
}

func (g *Game) updateCursor(in input, dt time.Duration) {
	if in.moved {
		g.cursor.Move(in.x, in.y)
	}
	hit := g.doc.HitTest(in.x, in.y)
	g.cursor.Hovering = (hit != nil && hit.Hover) ||
		g.doc.ThemeButton().Contains(in.x, in.y) ||
		g.doc.Screen(g.doc.SendButton()).Contains(in.x, in.y)
	g.cursor.Advance(dt)
}

// updateTilt tilts the card under the pointer and flattens every other card.
func (g *Game) updateTilt(in input) {
	hit := g.doc.HitTest(in.x, in.y)
	for _, e := range g.doc.Elements {
		if e.Kind != page.KindCard {
			continue
		}
		if hit == nil || hit.ID != e.ID {
			g.tilts[e.ID] = fx.Flat()
			continue
		}
		r := g.doc.Screen(e.Rect)
		g.tilts[e.ID] = fx.TiltAt(r.W, r.H, in.x-r.X, in.y-r.Y)
	}
}

func (g *Game) updateScroll(in input) {
	if in.wheel != 0 {
		g.doc.ScrollBy(in.wheel)
	}
	switch {
	case in.keys[ebiten.KeyHome]:
		g.doc.ScrollTo(0)
	case in.keys[ebiten.KeyPageDown]:
		g.doc.ScrollBy(float64(g.height) * 0.9)
	case in.keys[ebiten.KeyPageUp]:
		g.doc.ScrollBy(-float64(g.height) * 0.9)
	}

	g.nav = fx.ScrollStateAt(g.doc.ScrollY)
	if g.nav.BackToTop && in.clicked && g.doc.BackToTop().Contains(in.x, in.y) {
		g.doc.ScrollTo(0)
		g.nav = fx.ScrollStateAt(0)
	}
}

func (g *Game) updateReveal(dt time.Duration) {
	for _, e := range g.doc.Elements {
		if !e.Hidden {
			continue
		}
		if g.observer.Observe(e.ID, g.doc.VisibleRatio(e)) {
			for _, sk := range e.Skills {
				g.bars[sk.Name].Reveal()
			}
		}
	}
	for _, b := range g.bars {
		b.Advance(dt)
	}
}

func (g *Game) updateTheme(in input) {
	if in.keys[ebiten.KeyT] || (in.clicked && g.doc.ThemeButton().Contains(in.x, in.y)) {
		g.theme = g.theme.Toggle()
		log.Printf("[GAME] theme %s", g.theme)
	}
}

func (g *Game) updateContact(in input, dt time.Duration) {
	send := g.doc.Screen(g.doc.SendButton())
	if in.keys[ebiten.KeyEnter] || (in.clicked && send.Contains(in.x, in.y)) {
		if err := g.submitContact(); err != nil {
			g.lastErr = err
		}
	}
	g.form.Toast.Advance(dt)
	if g.player != nil {
		g.chimeLevel = g.player.Level()
	}
}

// resize relays out the page and reseeds the backdrop for a new window size.
func (g *Game) resize(w, h int) {
	g.width, g.height = w, h
	g.guard.Run(behaviorBackdrop, func() {
		g.loop.Resize(particles.Viewport{Width: float64(w), Height: float64(h)})
	})

	scroll := g.doc.ScrollY
	g.doc = page.Layout(float64(w), float64(h))
	g.doc.ScrollTo(scroll)
	clear(g.tilts)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
