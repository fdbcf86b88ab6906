// Package spline turns the discrete snake body into a smooth oriented curve.
package spline

import (
	"math"

	"github.com/stanislavbuket/SnakeGame/internal/domain"
)

type Point struct {
	X, Y float64
}

func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// CatmullRom evaluates the uniform Catmull-Rom segment between p1 and p2.
func CatmullRom(p0, p1, p2, p3 Point, t float64) Point {
	t2 := t * t
	t3 := t2 * t
	return Point{
		X: catmullRom1(p0.X, p1.X, p2.X, p3.X, t, t2, t3),
		Y: catmullRom1(p0.Y, p1.Y, p2.Y, p3.Y, t, t2, t3),
	}
}

func catmullRom1(p0, p1, p2, p3, t, t2, t3 float64) float64 {
	return 0.5 * ((2 * p1) +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}

// Blend interpolates each cell between its previous and current position and
// maps it to the pixel centre of the cell. Cells without a previous position
// (fresh growth) are used as they are.
func Blend(prev, curr []domain.Coord, t float64, cellSize float64) []Point {
	points := make([]Point, len(curr))
	half := cellSize / 2

	for i, c := range curr {
		x, y := float64(c.X), float64(c.Y)
		if i < len(prev) {
			p := prev[i]
			x = float64(p.X) + (x-float64(p.X))*t
			y = float64(p.Y) + (y-float64(p.Y))*t
		}
		points[i] = Point{X: x*cellSize + half, Y: y*cellSize + half}
	}
	return points
}

// Compact drops control points that coincide with the one before them. A
// freshly grown tail starts on top of its neighbour.
func Compact(points []Point) []Point {
	if len(points) < 2 {
		return points
	}
	out := make([]Point, 1, len(points))
	out[0] = points[0]
	for _, p := range points[1:] {
		if !coincide(out[len(out)-1], p) {
			out = append(out, p)
		}
	}
	return out
}

func coincide(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

// Smooth fits a Catmull-Rom spline through points, emitting samples points
// per segment. The first and last control points are reproduced exactly.
func Smooth(points []Point, samples int) []Point {
	if len(points) < 2 {
		return points
	}
	if samples < 1 {
		samples = 1
	}

	curve := make([]Point, 0, (len(points)-1)*samples+1)
	last := len(points) - 1
	for i := 0; i < last; i++ {
		p1 := points[i]
		p2 := points[i+1]
		p0 := p1
		if i > 0 {
			p0 = points[i-1]
		}
		p3 := p2
		if i+2 <= last {
			p3 = points[i+2]
		}

		curve = append(curve, p1)
		for j := 1; j < samples; j++ {
			curve = append(curve, CatmullRom(p0, p1, p2, p3, float64(j)/float64(samples)))
		}
	}

	return append(curve, points[last])
}

// Angle returns the direction of the tangent at curve[i]: a central difference
// inside the curve and one-sided differences at the ends.
func Angle(curve []Point, i int) (float64, bool) {
	if len(curve) < 2 || i < 0 || i >= len(curve) {
		return 0, false
	}

	var from, to Point
	switch i {
	case 0:
		from, to = curve[0], curve[1]
	case len(curve) - 1:
		from, to = curve[i-1], curve[i]
	default:
		from, to = curve[i-1], curve[i+1]
	}

	return chordAngle(from, to)
}

// TailAngle is the direction of the last chord between control points. The
// spline can loop back over a short final segment, so the tail reads its
// rotation from the control points instead.
func TailAngle(points []Point) (float64, bool) {
	if len(points) < 2 {
		return 0, false
	}
	return chordAngle(points[len(points)-2], points[len(points)-1])
}

func chordAngle(from, to Point) (float64, bool) {
	if coincide(from, to) {
		return 0, false
	}
	return math.Atan2(to.Y-from.Y, to.X-from.X), true
}
