package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a beep.Streamer and records the last N samples into a ring buffer
// so the renderer can react to what was just played.
type Tap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	mu        sync.RWMutex
}

func NewTap(src beep.Streamer, ringSize int) *Tap {
	return &Tap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Snapshot returns up to the last n samples, oldest first.
func (t *Tap) Snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n = min(n, len(t.buffer))
	out := make([][2]float64, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[idx]
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}

// Clear zeroes the ring so a finished sound stops registering.
func (t *Tap) Clear() {
	t.mu.Lock()
	clear(t.buffer)
	t.mu.Unlock()
}

// Meter turns tap snapshots into a smoothed 0..1 loudness level.
type Meter struct {
	Smoothing float64
	level     float64
}

// Update folds the RMS of samples into the level and returns it.
func (m *Meter) Update(samples [][2]float64) float64 {
	var mag float64
	if len(samples) > 0 {
		var sumSquares float64
		for _, s := range samples {
			mono := (s[0] + s[1]) * 0.5
			sumSquares += mono * mono
		}
		rms := math.Sqrt(sumSquares / float64(len(samples)))
		mag = math.Pow(rms, 0.3)
	}
	m.level = m.Smoothing*m.level + (1-m.Smoothing)*mag
	return m.level
}

func (m *Meter) Level() float64 { return m.level }
