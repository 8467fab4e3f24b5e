// Lower level access to the clipping engine.
//
// The root package covers the usual case of building a window and clipping
// segments with it. This package exposes the steps in between: vertex
// ordering, the convexity test, and the parametric interval a segment has
// inside a window.
package advanced

import (
	"github.com/osuushi/cyrusbeck/internal"
)

type Point = internal.Point
type Segment = internal.Segment
type Polygon = internal.Polygon
type Bounds = internal.Bounds

// Sort points by angle around their centroid. Points at equal angles keep
// their input order.
func OrderVertices(points []Point) []Point {
	return internal.OrderVertices(points)
}

// Test already ordered points for convexity. A straight vertex counts as a
// right turn, so it is accepted in clockwise order and rejected in
// counterclockwise order, which is the order OrderVertices produces.
func IsConvex(ordered []Point) bool {
	return internal.IsConvex(ordered)
}

func Centroid(points []Point) Point {
	return internal.Centroid(points)
}

// The parameter interval [TEnter, TLeave] of the segment that lies inside the
// polygon. The interval is empty when Visible reports false.
func ComputeBounds(segment Segment, polygon *Polygon) (bounds Bounds, err error) {
	defer func() {
		recoveredErr := internal.HandleClipPanicRecover(recover())
		if recoveredErr != nil {
			bounds = Bounds{}
			err = recoveredErr
		}
	}()
	return internal.ComputeBounds(segment, polygon), nil
}
