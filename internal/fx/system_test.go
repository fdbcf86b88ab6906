package fx

import (
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/stanislavbuket/SnakeGame/internal/domain"
)

func TestSpawnBatchAddsTemplateCount(t *testing.T) {
	templates := DefaultTemplates()

	for effect, tmpl := range templates {
		t.Run(effect.String(), func(t *testing.T) {
			s := NewSystem(templates, 0, 1)
			s.SpawnBatch(domain.Coord{X: 3, Y: 4}, EffectGrowth, 30)
			before := s.Len()

			added := s.SpawnBatch(domain.Coord{X: 5, Y: 5}, effect, 30)
			if added != tmpl.Count {
				t.Errorf("Expected %d added, got %d", tmpl.Count, added)
			}
			if s.Len() != before+tmpl.Count {
				t.Errorf("Expected %d live particles, got %d", before+tmpl.Count, s.Len())
			}
		})
	}
}

func TestSpawnBatchParameters(t *testing.T) {
	templates := DefaultTemplates()
	tmpl := templates[EffectImpact]
	s := NewSystem(templates, 0, 42)

	s.SpawnBatch(domain.Coord{X: 2, Y: 3}, EffectImpact, 30)
	for i, p := range s.Particles() {
		if p.X != 75 || p.Y != 105 {
			t.Errorf("Particle %d: expected anchor {75 105}, got {%v %v}", i, p.X, p.Y)
		}
		speed := math.Hypot(p.DX, p.DY) / 30
		if speed < tmpl.SpeedMin-1e-9 || speed > tmpl.SpeedMax+1e-9 {
			t.Errorf("Particle %d: speed %v outside [%v, %v]", i, speed, tmpl.SpeedMin, tmpl.SpeedMax)
		}
		if p.Life < tmpl.LifeMin || p.Life > tmpl.LifeMax {
			t.Errorf("Particle %d: life %v outside [%v, %v]", i, p.Life, tmpl.LifeMin, tmpl.LifeMax)
		}
		if p.Size < tmpl.SizeMin || p.Size > tmpl.SizeMax {
			t.Errorf("Particle %d: size %v outside [%v, %v]", i, p.Size, tmpl.SizeMin, tmpl.SizeMax)
		}
		if p.Effect != EffectImpact || p.Color != tmpl.Color {
			t.Errorf("Particle %d: wrong effect or colour", i)
		}
	}
}

func TestSpawnUnknownEffect(t *testing.T) {
	s := NewSystem(Templates{}, 0, 1)
	if added := s.SpawnBatch(domain.Coord{}, EffectImpact, 30); added != 0 || s.Len() != 0 {
		t.Errorf("Expected nothing spawned without a template, got %d", added)
	}
}

func TestUpdateRemovesDeadParticles(t *testing.T) {
	s := NewSystem(DefaultTemplates(), 0, 7)
	s.SpawnBatch(domain.Coord{X: 5, Y: 5}, EffectConsumption, 30)
	s.SpawnBatch(domain.Coord{X: 6, Y: 6}, EffectGrowth, 30)

	for _, dt := range []float64{0.1, 0.1, 0.05, 0.15, 0.2, 0.3} {
		s.Update(dt)
		for i, p := range s.Particles() {
			if p.Life <= 0 {
				t.Fatalf("Particle %d survived with life %v", i, p.Life)
			}
		}
	}

	if s.Len() != 0 {
		t.Errorf("Expected every particle expired after 0.9s, got %d", s.Len())
	}
}

func TestUpdateMovesParticles(t *testing.T) {
	s := NewSystem(Templates{}, 0, 1)
	s.mu.Lock()
	s.particles = append(s.particles, Particle{X: 10, Y: 10, DX: 20, DY: -40, Life: 1})
	s.mu.Unlock()

	s.Update(0.25)
	p := s.Particles()[0]
	if p.X != 15 || p.Y != 0 || p.Life != 0.75 {
		t.Errorf("Expected {15 0} with life 0.75, got {%v %v} life %v", p.X, p.Y, p.Life)
	}
}

func TestSpawnAtCapacityEvictsShortestLived(t *testing.T) {
	s := NewSystem(DefaultTemplates(), 15, 1)

	if added := s.SpawnBatch(domain.Coord{X: 1, Y: 1}, EffectConsumption, 30); added != 10 || s.Len() != 10 {
		t.Fatalf("Expected first burst of 10, got %d with %d live", added, s.Len())
	}
	var lives []float64
	for _, p := range s.Particles() {
		lives = append(lives, p.Life)
	}
	slices.Sort(lives)
	survivors := lives[5:]

	added := s.SpawnBatch(domain.Coord{X: 8, Y: 8}, EffectConsumption, 30)
	if added != 10 {
		t.Errorf("Expected 10 added at capacity, got %d", added)
	}
	if s.Len() != 15 {
		t.Fatalf("Expected live set capped at 15, got %d", s.Len())
	}

	fresh := 0
	var kept []float64
	for _, p := range s.Particles() {
		if p.X == 255 && p.Y == 255 {
			fresh++
			continue
		}
		kept = append(kept, p.Life)
	}
	if fresh != 10 {
		t.Errorf("Expected all 10 new particles present, got %d", fresh)
	}
	slices.Sort(kept)
	if !slices.Equal(kept, survivors) {
		t.Errorf("Expected longest-lived %v to survive, got %v", survivors, kept)
	}
}

func TestCapacityFitsLargestBurst(t *testing.T) {
	s := NewSystem(DefaultTemplates(), 4, 1)

	if added := s.SpawnBatch(domain.Coord{X: 1, Y: 1}, EffectImpact, 10); added != 12 || s.Len() != 12 {
		t.Errorf("Expected a full burst of 12, got %d with %d live", added, s.Len())
	}
	if added := s.SpawnBatch(domain.Coord{X: 1, Y: 1}, EffectImpact, 10); added != 12 || s.Len() != 12 {
		t.Errorf("Expected the second burst to replace the first, got %d with %d live", added, s.Len())
	}
}

func TestBatchesGroupByEffect(t *testing.T) {
	templates := DefaultTemplates()
	s := NewSystem(templates, 0, 9)
	s.SpawnBatch(domain.Coord{X: 1, Y: 1}, EffectImpact, 30)
	s.SpawnBatch(domain.Coord{X: 2, Y: 2}, EffectConsumption, 30)
	s.SpawnBatch(domain.Coord{X: 3, Y: 3}, EffectImpact, 30)

	var calls []Batch
	s.Draw(func(b Batch) { calls = append(calls, b) })

	if len(calls) != 2 {
		t.Fatalf("Expected 2 batches, got %d", len(calls))
	}
	if calls[0].Effect != EffectConsumption || len(calls[0].Particles) != 10 {
		t.Errorf("Expected 10 consumption particles first, got %v x%d", calls[0].Effect, len(calls[0].Particles))
	}
	if calls[1].Effect != EffectImpact || len(calls[1].Particles) != 24 {
		t.Errorf("Expected 24 impact particles second, got %v x%d", calls[1].Effect, len(calls[1].Particles))
	}
	for _, b := range calls {
		if b.Color != templates[b.Effect].Color {
			t.Errorf("Batch %v: unexpected colour %v", b.Effect, b.Color)
		}
	}
}

func TestConcurrentSpawnUpdateDraw(t *testing.T) {
	s := NewSystem(DefaultTemplates(), 256, 5)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.SpawnBatch(domain.Coord{X: j % 10, Y: 1}, Effect(j%3), 20)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Update(0.01)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Draw(func(Batch) {})
			}
		}()
	}
	wg.Wait()

	if s.Len() > 256 {
		t.Errorf("Expected at most 256 particles, got %d", s.Len())
	}
}
