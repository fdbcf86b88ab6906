package fx

import (
	"image/color"
	"math"
	"math/rand"
	"slices"
	"sync"

	"github.com/stanislavbuket/SnakeGame/internal/domain"
)

const DefaultCapacity = 2048

// Batch is every live particle of one effect, drawn with a single colour.
type Batch struct {
	Effect    Effect
	Color     color.RGBA
	Particles []Particle
}

type System struct {
	templates Templates
	capacity  int
	rng       *rand.Rand

	particles []Particle

	mu sync.RWMutex
}

// NewSystem raises capacity to the largest template count so any single
// burst fits.
func NewSystem(templates Templates, capacity int, seed int64) *System {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if n := templates.MaxCount(); n > capacity {
		capacity = n
	}
	return &System{
		templates: templates.Copy(),
		capacity:  capacity,
		rng:       rand.New(rand.NewSource(seed)),
		particles: make([]Particle, 0, capacity),
	}
}

// SpawnBatch emits the effect's burst from the centre of origin and returns
// how many particles were added. At capacity the particles with the least
// life left are evicted first, so the whole burst always lands.
func (s *System) SpawnBatch(origin domain.Coord, effect Effect, cellSize int) int {
	tmpl, ok := s.templates[effect]
	if !ok || tmpl.Count <= 0 {
		return 0
	}

	cx := float64(origin.X*cellSize) + float64(cellSize)/2
	cy := float64(origin.Y*cellSize) + float64(cellSize)/2

	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictLocked(len(s.particles) + tmpl.Count - s.capacity)
	for i := 0; i < tmpl.Count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := s.rangeF(tmpl.SpeedMin, tmpl.SpeedMax) * float64(cellSize)
		s.particles = append(s.particles, Particle{
			X:      cx,
			Y:      cy,
			DX:     math.Cos(angle) * speed,
			DY:     math.Sin(angle) * speed,
			Life:   s.rangeF(tmpl.LifeMin, tmpl.LifeMax),
			Size:   s.rangeF(tmpl.SizeMin, tmpl.SizeMax),
			Effect: effect,
			Color:  tmpl.Color,
		})
	}
	return tmpl.Count
}

// evictLocked drops the n particles closest to expiry.
func (s *System) evictLocked(n int) {
	if n <= 0 {
		return
	}
	if n >= len(s.particles) {
		s.particles = s.particles[:0]
		return
	}
	slices.SortFunc(s.particles, func(a, b Particle) int {
		switch {
		case a.Life > b.Life:
			return -1
		case a.Life < b.Life:
			return 1
		}
		return 0
	})
	s.particles = s.particles[:len(s.particles)-n]
}

func (s *System) rangeF(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + (hi-lo)*s.rng.Float64()
}

// Update moves every particle and drops the ones whose lifetime ran out.
func (s *System) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < len(s.particles); {
		p := &s.particles[i]
		p.Update(dt)
		if !p.Alive() {
			s.particles[i] = s.particles[len(s.particles)-1]
			s.particles = s.particles[:len(s.particles)-1]
			continue
		}
		i++
	}
}

// Batches groups live particles by effect in a fixed effect order.
func (s *System) Batches() []Batch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var groups [effectCount][]Particle
	for _, p := range s.particles {
		if p.Alive() && p.Effect < effectCount {
			groups[p.Effect] = append(groups[p.Effect], p)
		}
	}

	batches := make([]Batch, 0, effectCount)
	for e, ps := range groups {
		if len(ps) == 0 {
			continue
		}
		batches = append(batches, Batch{
			Effect:    Effect(e),
			Color:     ps[0].Color,
			Particles: ps,
		})
	}
	return batches
}

// Draw hands each batch to fn, one call per colour group.
func (s *System) Draw(fn func(Batch)) {
	for _, b := range s.Batches() {
		fn(b)
	}
}

func (s *System) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.particles)
}

func (s *System) Particles() []Particle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

func (s *System) Clear() {
	s.mu.Lock()
	s.particles = s.particles[:0]
	s.mu.Unlock()
}
