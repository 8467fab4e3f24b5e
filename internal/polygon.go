package internal

import (
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrInsufficientVertices = errors.New("not enough vertices for a polygon")
	ErrNotConvex            = errors.New("vertices do not form a convex polygon")
	ErrCoincidentVertices   = errors.New("polygon has coincident vertices")
)

const MinVertices = 3

// A validated convex clipping window. The only way to get one is through
// Validate, and it is never modified afterward; a new vertex set means a new
// Polygon. This makes it safe to share between goroutines.
//
// Vertices are in ascending angle around the centroid, which is
// counterclockwise in a Y-up coordinate system. The edge normals used by the
// clipper point inward for this winding.
type Polygon struct {
	points []Point
}

// Order the points by angle around their centroid, then check convexity.
// Fails without producing a polygon if there are too few points, if two
// neighbors coincide after ordering, or if the ordered points are not convex.
func Validate(points []Point) (*Polygon, error) {
	if len(points) < MinVertices {
		Logger().Debug("window rejected", "reason", "too few vertices", "vertices", len(points))
		return nil, errors.Wrapf(ErrInsufficientVertices, "got %d, need at least %d", len(points), MinVertices)
	}

	ordered := OrderVertices(points)
	for i, p := range ordered {
		next := ordered[CircularIndex(i+1, len(ordered))]
		if p == next {
			Logger().Debug("window rejected", "reason", "coincident vertices", "vertex", p.String())
			return nil, errors.Wrapf(ErrCoincidentVertices, "vertex %v appears twice", p)
		}
	}

	if !IsConvex(ordered) {
		Logger().Debug("window rejected", "reason", "not convex", "vertices", len(ordered))
		return nil, errors.Wrapf(ErrNotConvex, "ordered vertices %v", ordered)
	}
	return &Polygon{points: ordered}, nil
}

// Sort the points by the angle of the vector from their centroid, ascending.
// Points at the same angle keep their input order. The input is not modified.
func OrderVertices(points []Point) []Point {
	centroid := Centroid(points)
	type keyed struct {
		point Point
		angle float64
	}
	keys := make([]keyed, len(points))
	for i, p := range points {
		keys[i] = keyed{p, math.Atan2(p.Y-centroid.Y, p.X-centroid.X)}
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].angle < keys[j].angle
	})

	result := make([]Point, len(keys))
	for i, k := range keys {
		result[i] = k.point
	}
	return result
}

// Every turn along the boundary must go the same way. The direction of the
// first turn is recorded as "is it a strict left turn", and every other turn
// must match that. A straight (collinear) turn therefore counts as a right
// turn: it passes alongside right turns but fails alongside left turns.
func IsConvex(points []Point) bool {
	n := len(points)
	var firstIsLeft bool
	for i := range points {
		curr := points[i]
		next := points[CircularIndex(i+1, n)]
		afterNext := points[CircularIndex(i+2, n)]

		isLeft := next.Sub(curr).Cross(afterNext.Sub(next)) > 0
		if i == 0 {
			firstIsLeft = isLeft
		} else if isLeft != firstIsLeft {
			return false
		}
	}
	return true
}

func (poly *Polygon) Len() int {
	return len(poly.points)
}

// A copy of the vertices, in order.
func (poly *Polygon) Points() []Point {
	result := make([]Point, len(poly.points))
	copy(result, poly.points)
	return result
}

// Vertex i, wrapping around in either direction.
func (poly *Polygon) Vertex(i int) Point {
	return poly.points[CircularIndex(i, len(poly.points))]
}

// Edge i runs from vertex i to vertex i+1.
func (poly *Polygon) Edge(i int) Segment {
	return Segment{poly.Vertex(i), poly.Vertex(i + 1)}
}

// The edge vector rotated a quarter turn counterclockwise, written out as
// (v[i].y - v[i+1].y, v[i+1].x - v[i].x). With the winding Validate produces,
// this points into the polygon.
func (poly *Polygon) Normal(i int) Vector {
	return poly.Edge(i).Direction().Rotate90()
}

// Whether p is inside or on the boundary. This is mostly useful for checking
// clip results.
func (poly *Polygon) Contains(p Point) bool {
	for i := range poly.points {
		if poly.Normal(i).Dot(p.Sub(poly.Vertex(i))) < -Tolerance {
			return false
		}
	}
	return true
}

func (poly *Polygon) String() string {
	parts := make([]string, len(poly.points))
	for i, p := range poly.points {
		parts[i] = p.String()
	}
	return "Polygon[" + strings.Join(parts, " ") + "]"
}
