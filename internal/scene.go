package internal

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Raw input for a clipping run: unvalidated window vertices and the segments
// to clip.
type Scene struct {
	Window   []Point
	Segments []Segment
}

// Read a scene from an SVG document. This is not a full SVG reader. The first
// <polygon> element gives the window vertices (in any order), and every <line>
// element gives a segment, directed from (x1, y1) to (x2, y2). Transforms are
// ignored.
func ReadSVGScene(r io.Reader) (*Scene, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no polygon element in svg")
	}
	window, err := parsePointList(polygons[0].Attributes["points"])
	if err != nil {
		return nil, errors.Wrap(err, "polygon points")
	}

	scene := &Scene{Window: window}
	for i, lineEl := range rootEl.FindAll("line") {
		var coords [4]float64
		for j, name := range []string{"x1", "y1", "x2", "y2"} {
			value, ok := lineEl.Attributes[name]
			if !ok {
				// Missing coordinates default to zero in SVG
				continue
			}
			coords[j], err = strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d attribute %s", i, name)
			}
		}
		scene.Segments = append(scene.Segments, Seg(coords[0], coords[1], coords[2], coords[3]))
	}
	return scene, nil
}

// SVG point lists are "x,y x,y ...", but any mix of commas and whitespace is
// allowed between numbers.
func parsePointList(s string) ([]Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	numbers, err := parseFloats(fields)
	if err != nil {
		return nil, err
	}
	points := make([]Point, 0, len(numbers)/2)
	for i := 0; i < len(numbers); i += 2 {
		points = append(points, Point{numbers[i], numbers[i+1]})
	}
	return points, nil
}

// Read a scene from plain text. The first block of lines holds one window
// vertex per line in the form "x y". After a blank line, every line holds a
// segment in the form "x1 y1 x2 y2". Lines starting with # are ignored.
func ReadTextScene(r io.Reader) (*Scene, error) {
	scene := &Scene{}
	scanner := bufio.NewScanner(r)
	inWindow := true
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// A blank line ends the window block, once it has started
		if line == "" {
			if len(scene.Window) > 0 {
				inWindow = false
			}
			continue
		}

		numbers, err := parseFloats(strings.Fields(line))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		if inWindow {
			if len(numbers) != 2 {
				return nil, errors.Errorf("line %d: expected \"x y\", got %q", lineNumber, line)
			}
			scene.Window = append(scene.Window, Point{numbers[0], numbers[1]})
			continue
		}
		if len(numbers) != 4 {
			return nil, errors.Errorf("line %d: expected \"x1 y1 x2 y2\", got %q", lineNumber, line)
		}
		scene.Segments = append(scene.Segments, Seg(numbers[0], numbers[1], numbers[2], numbers[3]))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading scene")
	}
	return scene, nil
}

func parseFloats(fields []string) ([]float64, error) {
	numbers := make([]float64, len(fields))
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", field)
		}
		numbers[i] = value
	}
	return numbers, nil
}
