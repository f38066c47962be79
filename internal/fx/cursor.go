package fx

import (
	"time"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
)

// Cursor is the custom pointer: a dot pinned to the pointer and an outline that
// glides to it over a fixed latency and then stays put.
type Cursor struct {
	DotX, DotY float64
	Hovering   bool

	fromX, fromY float64
	toX, toY     float64
	elapsed      time.Duration
	latency      time.Duration
	active       bool
}

func NewCursor() *Cursor {
	return &Cursor{latency: config.CursorOutlineLatency}
}

// Move pins the dot to (x, y) and restarts the outline animation from wherever
// the outline currently is.
func (c *Cursor) Move(x, y float64) {
	c.fromX, c.fromY = c.Outline()
	c.toX, c.toY = x, y
	c.DotX, c.DotY = x, y
	c.elapsed = 0
	c.active = true
}

// Active reports whether the pointer has moved yet.
func (c *Cursor) Active() bool {
	return c.active
}

func (c *Cursor) Advance(dt time.Duration) {
	if c.elapsed < c.latency {
		c.elapsed += dt
	}
}

// Outline returns the current outline center.
func (c *Cursor) Outline() (float64, float64) {
	t := 1.0
	if c.latency > 0 && c.elapsed < c.latency {
		t = float64(c.elapsed) / float64(c.latency)
	}
	return c.fromX + (c.toX-c.fromX)*t, c.fromY + (c.toY-c.fromY)*t
}

// OutlineRadius grows while hovering a hover target.
func (c *Cursor) OutlineRadius() float64 {
	if c.Hovering {
		return config.CursorHoverRadius
	}
	return config.CursorOutlineRadius
}
