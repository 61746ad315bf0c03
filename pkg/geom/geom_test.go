package geom

import (
	"errors"
	"math"
	"testing"
)

func TestDistanceAndAngle(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 3, Y: 4}

	if d := Distance(a, b); d != 5 {
		t.Errorf("Expected distance 5, got %f", d)
	}
	if ang := Angle(a, Point{X: 0, Y: 10}); math.Abs(ang-math.Pi/2) > 1e-12 {
		t.Errorf("Expected angle pi/2, got %f", ang)
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", RectAround(Point{0, 0}, 3), RectAround(Point{4, 0}, 3), true},
		{"touching edges", RectAround(Point{0, 0}, 3), RectAround(Point{6, 0}, 3), false},
		{"apart", RectAround(Point{0, 0}, 3), RectAround(Point{0, 50}, 25), false},
		{"contained", RectAround(Point{10, 10}, 3), RectAround(Point{10, 10}, 25), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewPath(t *testing.T) {
	if _, err := NewPath([]Point{{0, 0}}); !errors.Is(err, ErrShortPath) {
		t.Fatalf("Expected ErrShortPath, got %v", err)
	}

	src := []Point{{0, 0}, {10, 0}, {10, 10}}
	p, err := NewPath(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	src[0] = Point{99, 99}
	if p.At(0) != (Point{0, 0}) {
		t.Error("Path must not alias the caller's slice")
	}
	if p.Len() != 3 {
		t.Errorf("Expected 3 waypoints, got %d", p.Len())
	}
	dx, dy := p.EntryDirection()
	if dx != 1 || dy != 0 {
		t.Errorf("Expected entry direction (1,0), got (%f,%f)", dx, dy)
	}
}
