package internal

import (
	"strings"

	"github.com/pkg/errors"
)

func (m Mode) String() string {
	switch m {
	case Inner:
		return "inner"
	case Outer:
		return "outer"
	}
	return "unknown"
}

// The other mode.
func (m Mode) Toggle() Mode {
	if m == Inner {
		return Outer
	}
	return Inner
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inner":
		return Inner, nil
	case "outer":
		return Outer, nil
	}
	return 0, errors.Errorf("unknown clip mode %q", s)
}

// Clip every segment independently and concatenate the results, in input
// order. Segments that vanish contribute nothing.
func ClipAll(segments []Segment, polygon *Polygon, mode Mode) []Segment {
	checkPolygon(polygon)
	checkMode(mode)

	result := make([]Segment, 0, len(segments))
	for _, segment := range segments {
		result = append(result, ClipSegment(segment, polygon, mode)...)
	}
	return result
}

// Filter out zero length segments, such as the pieces outer mode produces for
// a segment that starts or ends inside the window.
func DropDegenerate(segments []Segment) []Segment {
	result := make([]Segment, 0, len(segments))
	for _, segment := range segments {
		if !segment.IsDegenerate() {
			result = append(result, segment)
		}
	}
	return result
}
