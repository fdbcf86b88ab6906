// Package fx holds short-lived visual particles. Nothing in the game logic
// reads particle state.
package fx

import "image/color"

type Particle struct {
	X, Y   float64
	DX, DY float64
	// Life is the remaining lifetime in seconds.
	Life   float64
	Size   float64
	Effect Effect
	Color  color.RGBA
}

func (p *Particle) Update(dt float64) {
	p.X += p.DX * dt
	p.Y += p.DY * dt
	p.Life -= dt
}

func (p *Particle) Alive() bool {
	return p.Life > 0
}
