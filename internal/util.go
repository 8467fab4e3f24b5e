package internal

import (
	"fmt"
	"math"
)

const Tolerance = 1e-9

// Floating point comparisons for display and tests. The clipping engine itself
// never uses this; it works on exact values so that results are reproducible.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Build a displacement vector from its components.
func FromDelta(dx, dy float64) Vector {
	return Vector{X: dx, Y: dy}
}

func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{Start: Point{x1, y1}, End: Point{x2, y2}}
}

// Point arithmetic

// Sub gives the vector that carries q onto p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Tolerance based equality. Use == for exact comparison.
func (p Point) Equal(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Vector arithmetic

func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

func (v Vector) Mul(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// The z component of the 3D cross product. Positive when w turns left from v.
func (v Vector) Cross(w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rotate a quarter turn counterclockwise.
func (v Vector) Rotate90() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Segment helpers

func (s Segment) Direction() Vector {
	return s.End.Sub(s.Start)
}

// Position at parameter t. The endpoints come back bit for bit at t=0 and t=1,
// so a segment that is not clipped is returned unchanged.
func (s Segment) At(t float64) Point {
	switch t {
	case 0:
		return s.Start
	case 1:
		return s.End
	}
	return s.Start.Add(s.Direction().Mul(t))
}

func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// A degenerate segment has identical endpoints. This is an exact test: a
// segment that is merely very short still has a direction and clips normally.
func (s Segment) IsDegenerate() bool {
	return s.Start == s.End
}

func (s Segment) String() string {
	return fmt.Sprintf("%v->%v", s.Start, s.End)
}

// Arithmetic mean of the points. Returns the origin for an empty list.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	n := float64(len(points))
	return Point{X: sumX / n, Y: sumY / n}
}
