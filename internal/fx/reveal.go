package fx

import (
	"time"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
)

// Observer shows hidden elements once enough of them has scrolled into view.
// Showing is one-way.
type Observer struct {
	Threshold float64
	shown     map[string]bool
}

func NewObserver() *Observer {
	return &Observer{Threshold: config.RevealThreshold, shown: map[string]bool{}}
}

// Observe records the visible ratio of id and reports whether it was shown by
// this call.
func (o *Observer) Observe(id string, ratio float64) bool {
	if o.shown[id] || ratio <= 0 || ratio < o.Threshold {
		return false
	}
	o.shown[id] = true
	return true
}

func (o *Observer) Shown(id string) bool {
	return o.shown[id]
}

// ProgressBar animates from zero to its data width once revealed.
type ProgressBar struct {
	DataWidth float64
	Width     float64
	target    float64
}

func (b *ProgressBar) Reveal() {
	b.target = b.DataWidth
}

func (b *ProgressBar) Advance(dt time.Duration) {
	step := config.SkillBarSpeed * dt.Seconds()
	switch {
	case b.Width < b.target:
		b.Width = min(b.Width+step, b.target)
	case b.Width > b.target:
		b.Width = max(b.Width-step, b.target)
	}
}
