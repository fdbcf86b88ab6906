package components

import (
	"image/color"

	"github.com/stanislavbuket/SnakeGame/internal/fx"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// fadeTime is the remaining lifetime below which particles fade out.
const fadeTime = 0.2

type ParticleRenderer struct{}

func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

func (pr *ParticleRenderer) Draw(screen *ebiten.Image, system *fx.System, offsetX, offsetY int) {
	ox, oy := float32(offsetX), float32(offsetY)

	system.Draw(func(b fx.Batch) {
		for _, p := range b.Particles {
			c := b.Color
			if p.Life < fadeTime {
				c = fade(c, p.Life/fadeTime)
			}
			vector.DrawFilledCircle(screen, ox+float32(p.X), oy+float32(p.Y), float32(p.Size/2), c, true)
		}
	})
}

// fade scales a colour's alpha; ebiten expects premultiplied colours.
func fade(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}
