package spline

import "github.com/stanislavbuket/SnakeGame/internal/domain"

type Part int

const (
	PartHead Part = iota
	PartBody
	PartTail
)

func (p Part) String() string {
	switch p {
	case PartHead:
		return "head"
	case PartTail:
		return "tail"
	}
	return "body"
}

type Segment struct {
	Point
	Angle float64
	Part  Part
}

// Frame is everything needed to draw one interpolated snake.
type Frame struct {
	Prev     []domain.Coord
	Curr     []domain.Coord
	Fraction float64
	Heading  domain.Direction
}

type Renderer struct {
	CellSize float64
	Samples  int
}

func NewRenderer(cellSize float64, samples int) *Renderer {
	return &Renderer{
		CellSize: cellSize,
		Samples:  samples,
	}
}

// Curve blends, smooths and orients the snake for the given frame. Angles run
// along the curve from head to tail, so a lone head faces away from its
// heading like every other point.
func (r *Renderer) Curve(f Frame) []Segment {
	points := Compact(Blend(f.Prev, f.Curr, f.Fraction, r.CellSize))
	segments := Orient(Smooth(points, r.Samples), f.Heading.Opposite().Angle())
	if len(segments) > 1 {
		if angle, ok := TailAngle(points); ok {
			segments[len(segments)-1].Angle = angle
		}
	}
	return segments
}

// Orient assigns a rotation and a part to every curve point. Points whose
// tangent vanishes reuse the closest known angle, and a lone point takes the
// fallback angle.
func Orient(curve []Point, fallback float64) []Segment {
	if len(curve) == 0 {
		return nil
	}

	segments := make([]Segment, len(curve))
	known := make([]bool, len(curve))
	for i, p := range curve {
		segments[i] = Segment{Point: p, Part: PartBody}
		segments[i].Angle, known[i] = Angle(curve, i)
	}

	// Gaps copy the nearest angle toward the head; leading gaps copy the
	// first angle after them.
	prevAngle, havePrev := fallback, false
	for i := range segments {
		if known[i] {
			prevAngle, havePrev = segments[i].Angle, true
		} else if havePrev {
			segments[i].Angle = prevAngle
			known[i] = true
		}
	}
	nextAngle := fallback
	for i := len(segments) - 1; i >= 0; i-- {
		if known[i] {
			nextAngle = segments[i].Angle
		} else {
			segments[i].Angle = nextAngle
		}
	}

	segments[0].Part = PartHead
	if len(segments) > 1 {
		segments[len(segments)-1].Part = PartTail
	}
	return segments
}
