package internal

// This contains no actual tests. It is just a helper for testing clip
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	validitySamples = 200
	// Samples closer than this to the window boundary are skipped, since
	// rounding can put them on either side
	boundaryMargin = 1e-4
	coverTolerance = 1e-7
)

// Check a clip result by sampling the original segment. The rules are:
// 1. Every result piece runs in the same direction as the original.
// 2. Samples strictly inside the window are covered by the result in inner
//    mode, and not covered in outer mode.
// 3. Samples strictly outside the window are covered by the result in outer
//    mode, and not covered in inner mode.
func AssertValidClip(t *testing.T, window *Polygon, segment Segment, mode Mode, result []Segment) {
	t.Helper()

	direction := segment.Direction()
	for _, piece := range result {
		assert.GreaterOrEqual(t, piece.Direction().Dot(direction), 0.0, "piece %v runs against %v", piece, segment)
	}

	if segment.IsDegenerate() {
		return
	}

	for i := 1; i < validitySamples; i++ {
		p := segment.At(float64(i) / validitySamples)
		depth := insideDepth(window, p)
		if math.Abs(depth) < boundaryMargin {
			continue
		}
		inside := depth > 0
		covered := coveredBy(p, result)
		if inside == (mode == Inner) {
			assert.True(t, covered, "%v (inside: %t) should be kept by %s clip of %v, got %v", p, inside, mode, segment, result)
		} else {
			assert.False(t, covered, "%v (inside: %t) should be removed by %s clip of %v, got %v", p, inside, mode, segment, result)
		}
	}
}

// Signed distance from the nearest edge line. Positive inside.
func insideDepth(window *Polygon, p Point) float64 {
	depth := math.Inf(1)
	for i := 0; i < window.Len(); i++ {
		normal := window.Normal(i)
		d := normal.Dot(p.Sub(window.Vertex(i))) / normal.Length()
		depth = math.Min(depth, d)
	}
	return depth
}

func coveredBy(p Point, segments []Segment) bool {
	for _, s := range segments {
		if s.IsDegenerate() {
			continue
		}
		if distanceToSegment(p, s) < coverTolerance {
			return true
		}
	}
	return false
}

func distanceToSegment(p Point, s Segment) float64 {
	d := s.Direction()
	if d.IsZero() {
		return p.Distance(s.Start)
	}
	t := p.Sub(s.Start).Dot(d) / d.Dot(d)
	t = math.Max(0, math.Min(1, t))
	return p.Distance(s.At(t))
}
