package spline

import (
	"math"
	"testing"

	"github.com/stanislavbuket/SnakeGame/internal/domain"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestCatmullRomHitsControlPoints(t *testing.T) {
	p0, p1, p2, p3 := Point{0, 0}, Point{10, 5}, Point{20, -3}, Point{35, 8}

	if got := CatmullRom(p0, p1, p2, p3, 0); !near(got.X, p1.X) || !near(got.Y, p1.Y) {
		t.Errorf("Expected t=0 to give %v, got %v", p1, got)
	}
	if got := CatmullRom(p0, p1, p2, p3, 1); !near(got.X, p2.X) || !near(got.Y, p2.Y) {
		t.Errorf("Expected t=1 to give %v, got %v", p2, got)
	}
}

func TestCatmullRomCollinearIsLinear(t *testing.T) {
	p0, p1, p2, p3 := Point{0, 0}, Point{10, 0}, Point{20, 0}, Point{30, 0}
	got := CatmullRom(p0, p1, p2, p3, 0.5)
	if !near(got.X, 15) || !near(got.Y, 0) {
		t.Errorf("Expected midpoint {15 0}, got %v", got)
	}
}

func TestSmoothTwoPointsKeepsEndpoints(t *testing.T) {
	a, b := Point{15, 15}, Point{45, 15}
	curve := Smooth([]Point{a, b}, 5)

	if len(curve) != 6 {
		t.Fatalf("Expected 6 samples, got %d", len(curve))
	}
	if curve[0] != a {
		t.Errorf("Expected first point %v, got %v", a, curve[0])
	}
	if curve[len(curve)-1] != b {
		t.Errorf("Expected last point %v, got %v", b, curve[len(curve)-1])
	}
	for i := 1; i < len(curve); i++ {
		if curve[i].X <= curve[i-1].X {
			t.Errorf("Expected monotonic samples, got %v after %v", curve[i], curve[i-1])
		}
	}
}

func TestSmoothDegenerateInput(t *testing.T) {
	if got := Smooth(nil, 5); len(got) != 0 {
		t.Errorf("Expected empty curve, got %v", got)
	}
	one := []Point{{3, 4}}
	if got := Smooth(one, 5); len(got) != 1 || got[0] != one[0] {
		t.Errorf("Expected passthrough of single point, got %v", got)
	}
}

func TestSmoothSampleCount(t *testing.T) {
	points := []Point{{0, 0}, {30, 0}, {30, 30}, {60, 30}}
	curve := Smooth(points, 5)

	if len(curve) != 3*5+1 {
		t.Fatalf("Expected %d points, got %d", 3*5+1, len(curve))
	}
	for i, p := range points {
		if curve[i*5] != p {
			t.Errorf("Expected control point %v at %d, got %v", p, i*5, curve[i*5])
		}
	}
}

func TestBlend(t *testing.T) {
	prev := []domain.Coord{{X: 2, Y: 2}, {X: 1, Y: 2}}
	curr := []domain.Coord{{X: 3, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 2}}

	points := Blend(prev, curr, 0.5, 10)
	want := []Point{{30, 25}, {20, 25}, {15, 25}}
	for i, w := range want {
		if !near(points[i].X, w.X) || !near(points[i].Y, w.Y) {
			t.Errorf("Point %d: expected %v, got %v", i, w, points[i])
		}
	}
}

func TestAngle(t *testing.T) {
	curve := []Point{{0, 0}, {10, 0}, {10, 10}}

	tests := []struct {
		i    int
		want float64
	}{
		{0, 0},
		{1, math.Atan2(10, 10)},
		{2, math.Pi / 2},
	}
	for _, tt := range tests {
		got, ok := Angle(curve, tt.i)
		if !ok || !near(got, tt.want) {
			t.Errorf("Angle(%d): expected %v, got %v (ok=%v)", tt.i, tt.want, got, ok)
		}
	}

	if _, ok := Angle(curve[:1], 0); ok {
		t.Error("Expected no angle for a single point")
	}
}

func TestOrientPartsAndFallbacks(t *testing.T) {
	segments := Orient([]Point{{0, 0}, {0, 0}, {10, 0}, {20, 0}}, 1.5)

	if segments[0].Part != PartHead || segments[3].Part != PartTail {
		t.Errorf("Expected head first and tail last, got %v and %v", segments[0].Part, segments[3].Part)
	}
	for i := 1; i < 3; i++ {
		if segments[i].Part != PartBody {
			t.Errorf("Segment %d: expected body, got %v", i, segments[i].Part)
		}
	}
	if !near(segments[0].Angle, 0) {
		t.Errorf("Expected stacked head to borrow the next angle 0, got %v", segments[0].Angle)
	}

	lone := Orient([]Point{{5, 5}}, 1.5)
	if len(lone) != 1 || lone[0].Part != PartHead || !near(lone[0].Angle, 1.5) {
		t.Errorf("Expected lone head at fallback angle, got %+v", lone)
	}
}

func TestRendererCurve(t *testing.T) {
	r := NewRenderer(30, 5)
	body := []domain.Coord{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}

	segments := r.Curve(Frame{Prev: body, Curr: body, Fraction: 0.3, Heading: domain.DirectionRight})
	if len(segments) != 2*5+1 {
		t.Fatalf("Expected %d segments, got %d", 2*5+1, len(segments))
	}
	if got := segments[0].Point; !near(got.X, 315) || !near(got.Y, 315) {
		t.Errorf("Expected head centred at {315 315}, got %v", got)
	}
	for i, s := range segments {
		if !near(s.Angle, math.Pi) {
			t.Errorf("Segment %d: expected angle pi on a straight body, got %v", i, s.Angle)
		}
	}

	if got := r.Curve(Frame{}); len(got) != 0 {
		t.Errorf("Expected no segments for an empty body, got %d", len(got))
	}

	lone := r.Curve(Frame{Curr: body[:1], Heading: domain.DirectionUp})
	if len(lone) != 1 || !near(lone[0].Angle, math.Pi/2) {
		t.Errorf("Expected lone head angle pi/2, got %+v", lone)
	}
}

func TestCompact(t *testing.T) {
	got := Compact([]Point{{0, 0}, {0, 0}, {30, 0}, {30, 0}, {30, 0}, {60, 0}})
	want := []Point{{0, 0}, {30, 0}, {60, 0}}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Point %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestTailFacesBackAfterGrowth(t *testing.T) {
	r := NewRenderer(30, 5)
	prev := []domain.Coord{{X: 3, Y: 5}, {X: 2, Y: 5}, {X: 1, Y: 5}}
	curr := []domain.Coord{{X: 4, Y: 5}, {X: 3, Y: 5}, {X: 2, Y: 5}, {X: 1, Y: 5}}

	for _, frac := range []float64{0, 0.01, 0.2, 0.5, 0.99} {
		segments := r.Curve(Frame{Prev: prev, Curr: curr, Fraction: frac, Heading: domain.DirectionRight})
		tail := segments[len(segments)-1]
		if tail.Part != PartTail {
			t.Fatalf("Fraction %v: expected last segment to be the tail, got %v", frac, tail.Part)
		}
		if math.Cos(tail.Angle) > -0.99 {
			t.Errorf("Fraction %v: expected tail angle near pi, got %v", frac, tail.Angle)
		}
	}
}
