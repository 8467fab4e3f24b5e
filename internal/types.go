package internal

// Point is an absolute position in the plane.
type Point struct {
	X float64
	Y float64
}

// Vector is a displacement between two points. Keeping it distinct from Point
// means the compiler catches places where a position is used as a direction.
type Vector struct {
	X float64
	Y float64
}

// A segment is directed. Clip parameters run from Start (t=0) to End (t=1).
type Segment struct {
	Start Point
	End   Point
}

// Which part of a segment survives clipping.
type Mode int

const (
	// Keep the portion inside the window
	Inner Mode = iota
	// Keep the portions outside the window
	Outer
)
