package internal

import (
	"sync"
	"sync/atomic"

	"github.com/osuushi/cyrusbeck/internal/dbg"
	"github.com/pkg/errors"
)

var (
	ErrNoWindow     = errors.New("no clipping window")
	ErrWindowExists = errors.New("clipping window already built")
	ErrNoSegments   = errors.New("no segments to clip")
)

// Session holds the state of an interactive clipping session: candidate
// window vertices, the validated window, the segments placed so far, the
// active mode and the last clip result. The caller owns it; the engine
// functions it calls are stateless.
//
// The window is published with an atomic swap once it has been fully built,
// so Window can be called from any goroutine without seeing a half-built
// polygon. Everything else is guarded by a mutex.
type Session struct {
	options sessionOptions
	window  atomic.Pointer[Polygon]

	mu         sync.Mutex
	candidates []Point
	segments   []Segment
	mode       Mode
	clipped    []Segment
}

func NewSession(opts ...SessionOption) *Session {
	options := defaultSessionOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Session{options: options, mode: options.mode}
}

// Add a candidate window vertex. Once enough vertices have been collected they
// are validated. On success the new window is returned. On failure the
// candidates are thrown away, so collection starts over, and the validation
// error is returned. Until the count is reached, both results are nil.
func (s *Session) AddVertex(p Point) (*Polygon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.window.Load() != nil {
		return nil, ErrWindowExists
	}

	s.candidates = append(s.candidates, p)
	if len(s.candidates) < s.options.vertexCount {
		return nil, nil
	}

	candidates := s.candidates
	s.candidates = nil
	window, err := Validate(candidates)
	if err != nil {
		return nil, err
	}
	s.window.Store(window)
	if debugEnabled() {
		Logger().Debug("window published", "window", dbg.Name(window), "vertices", window.Len())
	}
	return window, nil
}

// Add a segment to be clipped. Segments can only be placed once a window exists.
func (s *Session) AddSegment(segment Segment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.window.Load() == nil {
		return ErrNoWindow
	}
	s.segments = append(s.segments, segment)
	return nil
}

// The current window, or nil if none has been built yet.
func (s *Session) Window() *Polygon {
	return s.window.Load()
}

func (s *Session) Candidates() []Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Point(nil), s.candidates...)
}

func (s *Session) Segments() []Segment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Segment(nil), s.segments...)
}

func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Session) ToggleMode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = s.mode.Toggle()
	return s.mode
}

// Switch to the other mode and clip every segment in it. The result is kept
// until Dismiss or Reset.
func (s *Session) Apply() ([]Segment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	window := s.window.Load()
	if window == nil {
		return nil, ErrNoWindow
	}
	if len(s.segments) == 0 {
		return nil, ErrNoSegments
	}
	s.mode = s.mode.Toggle()
	s.clipped = ClipAll(s.segments, window, s.mode)
	return append([]Segment(nil), s.clipped...), nil
}

// The result of the last Apply, or nil if it was dismissed.
func (s *Session) Clipped() []Segment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Segment(nil), s.clipped...)
}

// Forget the last result and switch back to the mode it was computed in, so
// that the next Apply reproduces it.
func (s *Session) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = s.mode.Toggle()
	s.clipped = nil
}

// Drop the window, candidates, segments and results, and return to the
// initial mode.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old := s.window.Swap(nil); old != nil && debugEnabled() {
		Logger().Debug("window discarded", "window", dbg.Name(old))
	}
	s.candidates = nil
	s.segments = nil
	s.clipped = nil
	s.mode = s.options.mode
}
