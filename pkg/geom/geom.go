// pkg/geom/geom.go
package geom

import (
	"errors"
	"math"
)

// ErrShortPath is returned when a path has fewer than two waypoints.
var ErrShortPath = errors.New("path needs at least two waypoints")

// Point is a position on the playfield, in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Angle returns the heading from `from` to `to` in radians.
func Angle(from, to Point) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// Rect is an axis-aligned box. Min is inclusive, Max exclusive.
type Rect struct {
	Min, Max Point
}

// RectAround returns a box of the given half extent centred on c.
func RectAround(c Point, half float64) Rect {
	return Rect{
		Min: Point{X: c.X - half, Y: c.Y - half},
		Max: Point{X: c.X + half, Y: c.Y + half},
	}
}

// Intersects reports whether r and o overlap. Boxes that only touch do not.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X &&
		r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Path is an immutable polyline. All enemies of a level share one instance.
type Path struct {
	points []Point
}

// NewPath copies the waypoints into a new Path.
func NewPath(points []Point) (*Path, error) {
	if len(points) < 2 {
		return nil, ErrShortPath
	}
	cp := make([]Point, len(points))
	copy(cp, points)
	return &Path{points: cp}, nil
}

// Len returns the number of waypoints.
func (p *Path) Len() int {
	return len(p.points)
}

// At returns waypoint i.
func (p *Path) At(i int) Point {
	return p.points[i]
}

// Points returns a copy of the waypoints.
func (p *Path) Points() []Point {
	cp := make([]Point, len(p.points))
	copy(cp, p.points)
	return cp
}

// EntryDirection is the unit vector of the first segment.
func (p *Path) EntryDirection() (float64, float64) {
	a, b := p.points[0], p.points[1]
	d := Distance(a, b)
	if d == 0 {
		return 1, 0
	}
	return (b.X - a.X) / d, (b.Y - a.Y) / d
}
