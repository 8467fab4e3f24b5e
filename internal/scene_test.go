package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSVGScene(t *testing.T) {
	scene := LoadFixture("square")
	assert.Equal(t, []Point{{100, 100}, {0, 0}, {0, 100}, {100, 0}}, scene.Window)
	require.Len(t, scene.Segments, 6)
	assert.Equal(t, Seg(-50, 50, 150, 50), scene.Segments[0])
	assert.Equal(t, Seg(-30, 0, 130, 0), scene.Segments[5])

	// The polygon can be nested in a group
	scene = LoadFixture("pentagon")
	assert.Len(t, scene.Window, 5)
	assert.Len(t, scene.Segments, 6)
}

func TestReadSVGScene_Errors(t *testing.T) {
	_, err := ReadSVGScene(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><line x1="0" y1="0" x2="1" y2="1"/></svg>`))
	assert.EqualError(t, err, "no polygon element in svg")

	_, err = ReadSVGScene(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><polygon points="0,0 1,0 1"/></svg>`))
	assert.Error(t, err)

	_, err = ReadSVGScene(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><polygon points="0,0 1,0 1,1"/><line x1="a"/></svg>`))
	assert.Error(t, err)
}

func TestParsePointList(t *testing.T) {
	points, err := parsePointList("0,0 10 ,0\n10,10  0,10")
	require.NoError(t, err)
	assert.Equal(t, square, points)

	_, err = parsePointList("0,0 x,1")
	assert.Error(t, err)
}

func TestReadTextScene(t *testing.T) {
	input := `
# window
0 0
10 0
10 10
0 10

-5 5 15 5
# comment between segments
20 20 30 30
`
	scene, err := ReadTextScene(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, square, scene.Window)
	assert.Equal(t, []Segment{Seg(-5, 5, 15, 5), Seg(20, 20, 30, 30)}, scene.Segments)
}

func TestReadTextScene_Errors(t *testing.T) {
	_, err := ReadTextScene(strings.NewReader("0 0\n1\n"))
	assert.EqualError(t, err, `line 2: expected "x y", got "1"`)

	_, err = ReadTextScene(strings.NewReader("0 0\n1 0\n1 1\n\n0 0 1\n"))
	assert.EqualError(t, err, `line 5: expected "x1 y1 x2 y2", got "0 0 1"`)

	_, err = ReadTextScene(strings.NewReader("0 zero\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `line 1: invalid number "zero"`)
}
