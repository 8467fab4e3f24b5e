package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

// Padding around the drawing, in pixels
const dbgDrawPadding = 40

// Draw the window, the original segments (thin, grey) and the clip result
// (thick, orange) to a PNG file. The origin is at the bottom left, and one
// unit is scale pixels.
func DrawClip(path string, window *Polygon, source, clipped []Segment, scale float64) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	extend := func(p Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if window != nil {
		for _, p := range window.points {
			extend(p)
		}
	}
	for _, list := range [][]Segment{source, clipped} {
		for _, s := range list {
			extend(s.Start)
			extend(s.End)
		}
	}
	// Nothing to draw, so draw an empty unit square
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0.86, 0.89, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	if window != nil {
		c.MoveTo(window.points[0].X, window.points[0].Y)
		for _, p := range window.points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(0.65, 0.12, 0.3, 0.15)
		c.FillPreserve()
		c.SetRGB(0.65, 0.12, 0.3)
		c.SetLineWidth(2)
		c.Stroke()
	}

	c.SetRGB(0.5, 0.5, 0.5)
	c.SetLineWidth(1)
	for _, s := range source {
		c.DrawLine(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
		c.Stroke()
	}

	c.SetRGB(0.85, 0.28, 0.06)
	c.SetLineWidth(3)
	for _, s := range clipped {
		if s.IsDegenerate() {
			continue
		}
		c.DrawLine(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
		c.Stroke()
	}

	return c.SavePNG(path)
}

// Print a PNG to the terminal (iTerm only).
func ShowImage(path string) {
	imgcat.CatFile(path, os.Stdout)
}
