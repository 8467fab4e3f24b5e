package internal

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, _ = Validate([]Point{{0, 0}, {10, 0}, {2, 5}, {0, 10}})
	assert.Contains(t, buf.String(), "window rejected")
	assert.Contains(t, buf.String(), "reason=\"not convex\"")

	buf.Reset()
	s := NewSession()
	for _, p := range square {
		_, _ = s.AddVertex(p)
	}
	assert.Contains(t, buf.String(), "window published")

	// Back to silence
	SetLogger(nil)
	buf.Reset()
	_, _ = Validate(nil)
	assert.Empty(t, buf.String())
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
