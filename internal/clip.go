package internal

import "github.com/pkg/errors"

// Cyrus-Beck clipping of a directed segment P(t) = Start + t*D against a
// convex polygon.
//
// For each edge i, with inward normal N_i and W_i = v[i] - Start, the segment
// crosses the edge's supporting line at t_i = (N_i.W_i) / (N_i.D). When N_i.D
// is positive the segment is heading into the polygon there, so t_i is a
// lower bound on the visible interval. When it is negative the segment is
// heading out, so t_i is an upper bound. When it is zero the segment runs
// parallel to the edge, and the edge contributes no bound at all. It can
// still rule the segment out: if the segment sits on the outer side of that
// edge's line, no part of it is inside.

var ErrInvalidPolygon = errors.New("invalid clipping polygon")

// The visible parameter interval of a segment against a polygon.
type Bounds struct {
	TEnter float64
	TLeave float64
	// Set when the segment runs parallel to an edge, outside it
	Outside bool
}

// Whether any part of the segment lies inside the polygon.
func (b Bounds) Visible() bool {
	return !b.Outside && b.TEnter <= b.TLeave
}

func ComputeBounds(segment Segment, polygon *Polygon) Bounds {
	checkPolygon(polygon)

	bounds := Bounds{TEnter: 0, TLeave: 1}
	direction := segment.Direction()
	for i := 0; i < polygon.Len(); i++ {
		normal := polygon.Normal(i)
		numerator := normal.Dot(polygon.Vertex(i).Sub(segment.Start))
		denominator := normal.Dot(direction)
		if denominator == 0 {
			if numerator > 0 {
				bounds.Outside = true
			}
			continue
		}
		t := numerator / denominator
		if denominator > 0 {
			if t > bounds.TEnter {
				bounds.TEnter = t
			}
		} else if t < bounds.TLeave {
			bounds.TLeave = t
		}
	}
	return bounds
}

// Clip a single segment. Inner mode gives at most one segment. Outer mode
// gives either the untouched segment (when it misses the polygon), or exactly
// two pieces: the part before entering and the part after leaving. Either
// piece may have zero length; see DropDegenerate.
//
// A degenerate segment never intersects the polygon, so inner mode gives
// nothing and outer mode gives it back unchanged.
func ClipSegment(segment Segment, polygon *Polygon, mode Mode) []Segment {
	checkPolygon(polygon)
	checkMode(mode)

	if segment.IsDegenerate() {
		return missResult(segment, mode)
	}

	bounds := ComputeBounds(segment, polygon)
	if !bounds.Visible() {
		return missResult(segment, mode)
	}

	clippedStart := segment.At(bounds.TEnter)
	clippedEnd := segment.At(bounds.TLeave)
	if mode == Inner {
		return []Segment{{clippedStart, clippedEnd}}
	}
	return []Segment{
		{segment.Start, clippedStart},
		{clippedEnd, segment.End},
	}
}

func missResult(segment Segment, mode Mode) []Segment {
	if mode == Inner {
		return nil
	}
	return []Segment{segment}
}

func checkPolygon(polygon *Polygon) {
	if polygon == nil {
		fatalWrapf(ErrInvalidPolygon, "nil polygon")
	}
	if polygon.Len() < MinVertices {
		fatalWrapf(ErrInvalidPolygon, "polygon has %d vertices", polygon.Len())
	}
}

func checkMode(mode Mode) {
	if mode != Inner && mode != Outer {
		fatalf("unknown clip mode: %d", int(mode))
	}
}
