package components

import (
	"math"

	"github.com/stanislavbuket/SnakeGame/internal/spline"
	"github.com/stanislavbuket/SnakeGame/internal/ui/graphics/textures"

	"github.com/hajimehoshi/ebiten/v2"
)

// SnakeRenderer draws the interpolated spline body with rotated sprites:
// body first, then the tail, then the head on top.
type SnakeRenderer struct {
	curve    *spline.Renderer
	textures *textures.Set
	cellSize float64
}

func NewSnakeRenderer(cellSize, samples int, tex *textures.Set) *SnakeRenderer {
	return &SnakeRenderer{
		curve:    spline.NewRenderer(float64(cellSize), samples),
		textures: tex,
		cellSize: float64(cellSize),
	}
}

func (sr *SnakeRenderer) Draw(screen *ebiten.Image, frame spline.Frame, offsetX, offsetY int) {
	segments := sr.curve.Curve(frame)
	if len(segments) == 0 {
		return
	}

	ox, oy := float64(offsetX), float64(offsetY)

	for _, seg := range segments {
		if seg.Part == spline.PartBody {
			sr.drawSprite(screen, sr.textures.Body, seg, ox, oy)
		}
	}
	if tail := segments[len(segments)-1]; tail.Part == spline.PartTail {
		sr.drawSprite(screen, sr.textures.Tail, tail, ox, oy)
	}
	sr.drawSprite(screen, sr.textures.Head, segments[0], ox, oy)
}

func (sr *SnakeRenderer) drawSprite(screen, img *ebiten.Image, seg spline.Segment, ox, oy float64) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(sr.cellSize/w, sr.cellSize/h)
	// Segment angles point toward the tail; sprites face forward.
	op.GeoM.Rotate(seg.Angle + math.Pi)
	op.GeoM.Translate(ox+seg.X, oy+seg.Y)
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(img, op)
}
