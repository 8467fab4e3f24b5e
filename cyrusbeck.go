// Segment clipping against convex windows for Go.
//
// This package clips line segments against a convex polygon using the
// Cyrus-Beck parametric algorithm. It can keep either the part of each segment
// inside the window ("inner" mode) or the parts outside it ("outer" mode).
//
// Windows are built from an unordered set of vertices with ValidateAndOrder,
// which sorts them around their centroid and rejects non-convex sets.
package cyrusbeck

import (
	"log/slog"

	"github.com/osuushi/cyrusbeck/internal"
)

type Point = internal.Point
type Vector = internal.Vector
type Segment = internal.Segment
type Polygon = internal.Polygon
type Mode = internal.Mode
type Bounds = internal.Bounds

type Session = internal.Session
type SessionOption = internal.SessionOption

const (
	Inner = internal.Inner
	Outer = internal.Outer
)

var (
	ErrInsufficientVertices = internal.ErrInsufficientVertices
	ErrNotConvex            = internal.ErrNotConvex
	ErrCoincidentVertices   = internal.ErrCoincidentVertices
	ErrInvalidPolygon       = internal.ErrInvalidPolygon
	ErrNoWindow             = internal.ErrNoWindow
	ErrWindowExists         = internal.ErrWindowExists
	ErrNoSegments           = internal.ErrNoSegments
)

// Order the vertices around their centroid and check that they form a convex
// polygon. The returned polygon is immutable. Validation errors can be
// matched with errors.Is against ErrInsufficientVertices, ErrNotConvex and
// ErrCoincidentVertices.
func ValidateAndOrder(points []Point) (*Polygon, error) {
	return internal.Validate(points)
}

// Clip one segment against a polygon from ValidateAndOrder. The only error is
// ErrInvalidPolygon, for a nil or zero value polygon.
func Clip(segment Segment, polygon *Polygon, mode Mode) (result []Segment, err error) {
	defer func() {
		recoveredErr := internal.HandleClipPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.ClipSegment(segment, polygon, mode), nil
}

// Clip every segment independently and concatenate the results.
func ClipAll(segments []Segment, polygon *Polygon, mode Mode) (result []Segment, err error) {
	defer func() {
		recoveredErr := internal.HandleClipPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.ClipAll(segments, polygon, mode), nil
}

func ToggleMode(m Mode) Mode {
	return m.Toggle()
}

func ParseMode(s string) (Mode, error) {
	return internal.ParseMode(s)
}

func DropDegenerate(segments []Segment) []Segment {
	return internal.DropDegenerate(segments)
}

func NewSession(opts ...SessionOption) *Session {
	return internal.NewSession(opts...)
}

func WithVertexCount(n int) SessionOption {
	return internal.WithVertexCount(n)
}

func WithMode(m Mode) SessionOption {
	return internal.WithMode(m)
}

// SetLogger enables debug logging. By default nothing is logged; pass nil to
// go back to that.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}
