package particles

import (
	"log"
	"math/rand/v2"
)

// Loop drives the backdrop once per frame. It is not safe for concurrent use;
// the frame scheduler calls it from a single goroutine.
type Loop struct {
	field    Field
	viewport Viewport
	pointer  Pointer
	rng      *rand.Rand
}

func NewLoop(vp Viewport, rng *rand.Rand) *Loop {
	l := &Loop{
		viewport: vp,
		pointer:  NewPointer(),
		rng:      rng,
	}
	l.field.Seed(vp, rng)
	return l
}

// Resize records the new viewport and reseeds the whole field.
func (l *Loop) Resize(vp Viewport) {
	l.viewport = vp
	l.field.Seed(vp, l.rng)
	log.Printf("[BACKDROP] resized to %.0fx%.0f, %d particles", vp.Width, vp.Height, l.field.Len())
}

func (l *Loop) MovePointer(x, y float64) {
	l.pointer = l.pointer.MoveTo(x, y)
}

// Tick clears the surface, steps and draws every particle, then draws the
// connections over the updated positions.
func (l *Loop) Tick(s Surface) {
	l.TickDelta(s, 1)
}

// TickDelta is Tick with velocity scaled by dt frames.
func (l *Loop) TickDelta(s Surface, dt float64) {
	s.Clear()
	ps := l.field.Particles()
	for i := range ps {
		ps[i] = ps[i].Step(dt, l.viewport, l.pointer)
		ps[i].Draw(s)
	}
	RenderConnections(s, ps, Connect(ps, l.viewport))
}

func (l *Loop) Viewport() Viewport { return l.viewport }

func (l *Loop) Pointer() Pointer { return l.pointer }

func (l *Loop) Particles() []Particle { return l.field.Particles() }
