package internal

// SessionOption configures a Session during creation.
//
// Example:
//
//	// A triangle window, starting in inner mode
//	s := NewSession(WithVertexCount(3), WithMode(Inner))
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	vertexCount int
	mode        Mode
}

// Four vertices and outer mode. The first Apply toggles before clipping, so
// the first result a user sees is an inner clip.
func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		vertexCount: 4,
		mode:        Outer,
	}
}

// WithVertexCount sets how many vertices are collected before the window is
// validated. Values below 3 are raised to 3.
func WithVertexCount(n int) SessionOption {
	return func(o *sessionOptions) {
		if n < MinVertices {
			n = MinVertices
		}
		o.vertexCount = n
	}
}

// WithMode sets the initial mode, which Reset also returns to.
func WithMode(m Mode) SessionOption {
	return func(o *sessionOptions) {
		if m == Inner || m == Outer {
			o.mode = m
		}
	}
}
