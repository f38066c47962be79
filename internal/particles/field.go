package particles

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/portfolio-backdrop/internal/config"
)

// Field owns the particle collection. It is only ever replaced as a whole.
type Field struct {
	particles []Particle
	nextID    uint64
}

// Count is the number of particles a viewport of this size gets.
func Count(vp Viewport) int {
	return int(math.Floor(vp.Area() / config.ParticleAreaDivisor))
}

// Seed discards the current particles and fills the field with a freshly
// allocated batch sized to the viewport.
func (f *Field) Seed(vp Viewport, rng *rand.Rand) {
	n := Count(vp)
	batch := make([]Particle, 0, n)
	for i := 0; i < n; i++ {
		size := config.ParticleMinSize + rng.Float64()*(config.ParticleMaxSize-config.ParticleMinSize)
		f.nextID++
		batch = append(batch, Particle{
			ID:    f.nextID,
			X:     uniform(rng, size*2, vp.Width-size*2),
			Y:     uniform(rng, size*2, vp.Height-size*2),
			DX:    uniform(rng, -config.ParticleMaxSpeed, config.ParticleMaxSpeed),
			DY:    uniform(rng, -config.ParticleMaxSpeed, config.ParticleMaxSpeed),
			Size:  size,
			Color: config.ParticleColor,
		})
	}
	f.particles = batch
}

// Particles returns the current batch. Callers must not retain it across a Seed.
func (f *Field) Particles() []Particle {
	return f.particles
}

func (f *Field) Len() int {
	return len(f.particles)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
