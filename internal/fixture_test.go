package internal

import (
	"embed"
	"log"
	"math"
)

// Fixtures are SVG scenes in the fixtures/ directory, available by name sans
// extension. If anything goes wrong loading one, the test binary dies.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *Scene {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	scene, err := ReadSVGScene(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return scene
}

// Load a fixture and validate its window, which must be convex.
func LoadWindowFixture(name string) (*Polygon, []Segment) {
	scene := LoadFixture(name)
	window, err := Validate(scene.Window)
	if err != nil {
		log.Fatalf("Fixture %q has an invalid window: %v", name, err)
	}
	return window, scene.Segments
}

// Some ad hoc fixtures

func UnitSquare() *Polygon {
	return mustValidate(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))
}

// A regular polygon with n sides, rotated by phase radians.
func RegularPolygon(n int, radius, phase float64, center Point) *Polygon {
	var points []Point
	for i := 0; i < n; i++ {
		angle := phase + 2*math.Pi*float64(i)/float64(n)
		points = append(points, Pt(center.X+radius*math.Cos(angle), center.Y+radius*math.Sin(angle)))
	}
	return mustValidate(points...)
}

// Spokes through the center of a window at evenly spaced angles, long enough
// to cross it completely.
func Spokes(n int, length float64, center Point) []Segment {
	var segments []Segment
	for i := 0; i < n; i++ {
		angle := math.Pi * float64(i) / float64(n)
		offset := FromDelta(length*math.Cos(angle)/2, length*math.Sin(angle)/2)
		segments = append(segments, Segment{center.Add(offset.Mul(-1)), center.Add(offset)})
	}
	return segments
}

func mustValidate(points ...Point) *Polygon {
	polygon, err := Validate(points)
	if err != nil {
		log.Fatalf("Could not build fixture polygon %v: %v", points, err)
	}
	return polygon
}
