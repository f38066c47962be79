package game

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
	"github.com/iburimskiy/portfolio-backdrop/internal/fx"
	"github.com/iburimskiy/portfolio-backdrop/internal/particles"
)

type fakePrompter struct {
	name, message string
	ok            bool
	err           error
	notified      []string
}

func (f *fakePrompter) Message() (string, string, bool, error) {
	return f.name, f.message, f.ok, f.err
}

func (f *fakePrompter) Notify(text string) error {
	f.notified = append(f.notified, text)
	return nil
}

const frame = time.Second / 60

func newTestGame(p Prompter) *Game {
	s := config.Default()
	s.Seed = 42
	return New(s, nil, p)
}

func noInput() input {
	return input{keys: map[ebiten.Key]bool{}}
}

func TestNewSeedsBackdrop(t *testing.T) {
	g := newTestGame(nil)
	want := particles.Count(particles.Viewport{Width: config.WindowWidth, Height: config.WindowHeight})
	if n := len(g.loop.Particles()); n != want {
		t.Errorf("expected %d particles, got %d", want, n)
	}
	if g.theme != fx.Dark {
		t.Errorf("expected dark theme, got %q", g.theme)
	}
}

func TestLayoutReseedsOnlyOnChange(t *testing.T) {
	g := newTestGame(nil)
	firstID := g.loop.Particles()[0].ID

	if w, h := g.Layout(config.WindowWidth, config.WindowHeight); w != config.WindowWidth || h != config.WindowHeight {
		t.Fatalf("unexpected layout %dx%d", w, h)
	}
	if g.loop.Particles()[0].ID != firstID {
		t.Error("expected unchanged size to keep the field")
	}

	g.doc.ScrollTo(400)
	g.Layout(600, 300)
	if n := len(g.loop.Particles()); n != 20 {
		t.Errorf("expected 20 particles, got %d", n)
	}
	for _, p := range g.loop.Particles() {
		if p.ID == firstID {
			t.Error("expected resize to replace the field")
		}
	}
	if g.doc.ScrollY != 400 {
		t.Errorf("expected scroll preserved, got %v", g.doc.ScrollY)
	}
}

func TestPointerMovesBackdropAndCursor(t *testing.T) {
	g := newTestGame(nil)
	in := noInput()
	in.x, in.y, in.moved = 300, 200, true
	g.step(in, frame)

	p := g.loop.Pointer()
	if !p.Set || p.X != 300 || p.Y != 200 {
		t.Errorf("unexpected backdrop pointer %+v", p)
	}
	if g.cursor.DotX != 300 || g.cursor.DotY != 200 {
		t.Errorf("unexpected cursor dot (%v, %v)", g.cursor.DotX, g.cursor.DotY)
	}
}

func TestUnmovedPointerLeavesBackdropUnset(t *testing.T) {
	g := newTestGame(nil)
	in := noInput()
	in.x, in.y = 300, 200
	g.step(in, frame)
	if g.loop.Pointer().Set {
		t.Error("expected pointer to stay unset until it moves")
	}
}

func TestTiltFollowsHoveredCard(t *testing.T) {
	g := newTestGame(nil)
	card := g.doc.Element("project-0")
	g.doc.ScrollTo(card.Rect.Y - 100)

	in := noInput()
	in.x, in.y, in.moved = card.Rect.X+card.Rect.W, 100+card.Rect.H/2, true
	g.step(in, frame)

	tilt := g.tilts["project-0"]
	if tilt.RotateY != config.TiltMaxDegrees {
		t.Errorf("expected rotateY %v, got %+v", config.TiltMaxDegrees, tilt)
	}
	if !g.tilts["project-1"].IsFlat() {
		t.Error("expected other cards flat")
	}
	if !g.cursor.Hovering {
		t.Error("expected cursor hovering over card")
	}

	in.x, in.y = 1, 300
	g.step(in, frame)
	if !g.tilts["project-0"].IsFlat() {
		t.Error("expected card to reset on leave")
	}
	if g.cursor.Hovering {
		t.Error("expected hover to end")
	}
}

func TestScrollDrivesNavbarAndBackToTop(t *testing.T) {
	g := newTestGame(nil)
	in := noInput()
	in.wheel = 600
	g.step(in, frame)
	if !g.nav.Scrolled || !g.nav.BackToTop {
		t.Fatalf("expected scrolled navbar and back-to-top, got %+v", g.nav)
	}

	b := g.doc.BackToTop()
	in = noInput()
	in.x, in.y, in.clicked = b.X+b.W/2, b.Y+b.H/2, true
	g.step(in, frame)
	if g.doc.ScrollY != 0 || g.nav.Scrolled {
		t.Errorf("expected back at top, got scroll %v nav %+v", g.doc.ScrollY, g.nav)
	}
}

func TestRevealAnimatesSkillBars(t *testing.T) {
	g := newTestGame(nil)
	skills := g.doc.Element("skills")

	g.step(noInput(), frame)
	if g.observer.Shown("skills") {
		t.Fatal("expected skills hidden at top of page")
	}

	g.doc.ScrollTo(skills.Rect.Y - 200)
	for i := 0; i < 120; i++ {
		g.step(noInput(), frame)
	}
	if !g.observer.Shown("skills") {
		t.Fatal("expected skills revealed")
	}
	for _, sk := range skills.Skills {
		if got := g.bars[sk.Name].Width; got != sk.DataWidth {
			t.Errorf("%s: expected width %v, got %v", sk.Name, sk.DataWidth, got)
		}
	}
}

func TestThemeKeyToggles(t *testing.T) {
	g := newTestGame(nil)
	in := noInput()
	in.keys[ebiten.KeyT] = true
	g.step(in, frame)
	if g.theme != fx.Light {
		t.Errorf("expected light, got %q", g.theme)
	}
	if paletteFor(g.theme) == paletteFor(fx.Dark) {
		t.Error("expected distinct palettes")
	}
}

func TestContactSubmit(t *testing.T) {
	p := &fakePrompter{name: "Ada", message: "Hello there", ok: true}
	g := newTestGame(p)

	in := noInput()
	in.keys[ebiten.KeyEnter] = true
	g.step(in, frame)

	if g.form.Sent != 1 {
		t.Fatalf("expected 1 sent, got %d", g.form.Sent)
	}
	if !g.form.Toast.Visible() {
		t.Error("expected toast visible")
	}
	if g.form.Message != "" {
		t.Error("expected form reset")
	}
	if len(p.notified) != 1 {
		t.Errorf("expected 1 notification, got %d", len(p.notified))
	}
}

func TestContactCancelAndError(t *testing.T) {
	p := &fakePrompter{message: "ignored", ok: false}
	g := newTestGame(p)
	if err := g.submitContact(); err != nil {
		t.Fatalf("expected cancel to be silent, got %v", err)
	}
	if g.form.Sent != 0 || g.form.Toast.Visible() {
		t.Error("expected nothing sent on cancel")
	}

	p.err = errors.New("no display")
	in := noInput()
	in.keys[ebiten.KeyEnter] = true
	g.step(in, frame)
	if g.lastErr == nil {
		t.Error("expected dialog error surfaced")
	}
}

func TestBehaviorPanicIsIsolated(t *testing.T) {
	g := newTestGame(nil)
	g.typewriter = nil

	in := noInput()
	in.keys[ebiten.KeyT] = true
	g.step(in, frame)

	if g.guard.Err(behaviorTypewriter) == nil {
		t.Error("expected typewriter failure recorded")
	}
	if g.theme != fx.Light {
		t.Error("expected theme toggle to keep working")
	}
}

func TestHsvToRgb(t *testing.T) {
	tests := []struct {
		h       float64
		r, g, b uint8
	}{
		{0, 255, 0, 0},
		{120, 0, 255, 0},
		{240, 0, 0, 255},
		{360, 255, 0, 0},
		{-120, 0, 0, 255},
	}
	for _, tt := range tests {
		r, g, b := hsvToRgb(tt.h, 1, 1)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("hsvToRgb(%v): expected (%d, %d, %d), got (%d, %d, %d)", tt.h, tt.r, tt.g, tt.b, r, g, b)
		}
	}
}
