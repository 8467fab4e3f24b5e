package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/cyrusbeck/internal"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Clip the segments of a scene against its window and print the result, one
// segment per line in the form "x1 y1 x2 y2".
//
// The scene is read from an SVG file (the first polygon is the window, every
// line element is a segment), or as plain text from stdin: window vertices as
// "x y" lines, a blank line, then segments as "x1 y1 x2 y2" lines. The window
// vertices may be given in any order, but must form a convex polygon.
func main() {
	app := kingpin.New("cyrusbeck", "Clip line segments against a convex window.")
	modeName := app.Flag("mode", "Keep the part inside the window (inner) or outside it (outer).").
		Short('m').Default("inner").Enum("inner", "outer")
	dropDegenerate := app.Flag("drop-degenerate", "Leave out zero length results.").Short('d').Bool()
	color := app.Flag("color", "Color the output by segment kind.").Bool()
	pngPath := app.Flag("png", "Write a debug picture of the window and result to this file.").String()
	scale := app.Flag("scale", "Pixels per unit in the debug picture.").Default("1").Float64()
	showImage := app.Flag("imgcat", "Print the debug picture to the terminal (iTerm only).").Bool()
	verbose := app.Flag("verbose", "Log debug information to stderr.").Short('v').Bool()
	scenePath := app.Arg("scene", "SVG or text scene file. Reads text from stdin when omitted.").ExistingFile()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *verbose {
		internal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	mode, err := internal.ParseMode(*modeName)
	app.FatalIfError(err, "")

	scene, err := readScene(*scenePath)
	app.FatalIfError(err, "reading scene")

	window, err := internal.Validate(scene.Window)
	app.FatalIfError(err, "building window")

	result := internal.ClipAll(scene.Segments, window, mode)
	if *dropDegenerate {
		result = internal.DropDegenerate(result)
	}
	writeSegments(os.Stdout, result, mode, aurora.NewAurora(*color))
	fmt.Fprintf(os.Stderr, "Clipped %d segments into %d (%s)\n", len(scene.Segments), len(result), mode)

	if *pngPath != "" {
		err = internal.DrawClip(*pngPath, window, scene.Segments, result, *scale)
		app.FatalIfError(err, "drawing")
		if *showImage {
			internal.ShowImage(*pngPath)
		}
	}
}

func readScene(path string) (*internal.Scene, error) {
	if path == "" {
		return internal.ReadTextScene(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return internal.ReadSVGScene(f)
	}
	return internal.ReadTextScene(f)
}

// Inner results are green, outer results cyan, and zero length results red.
func writeSegments(w io.Writer, segments []internal.Segment, mode internal.Mode, au aurora.Aurora) {
	for _, s := range segments {
		line := fmt.Sprintf("%g %g %g %g", s.Start.X, s.Start.Y, s.End.X, s.End.Y)
		switch {
		case s.IsDegenerate():
			fmt.Fprintln(w, au.Red(line).String())
		case mode == internal.Inner:
			fmt.Fprintln(w, au.Green(line).String())
		default:
			fmt.Fprintln(w, au.Cyan(line).String())
		}
	}
}
