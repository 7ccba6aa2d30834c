// Package render draws the hand skeleton overlay onto video frames.
package render

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Surface is an immediate-mode drawing target for the skeleton overlay.
// Coordinates are in pixels.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)
	// Line draws a stroke between two points.
	Line(x1, y1, x2, y2 int, c color.RGBA, thickness int)
	// FilledCircle draws a solid dot.
	FilledCircle(x, y, radius int, c color.RGBA)
	// Circle draws a circle outline.
	Circle(x, y, radius int, c color.RGBA, thickness int)
}

// MatSurface draws onto a GoCV frame in place.
type MatSurface struct {
	Mat *gocv.Mat
}

// Size returns the frame dimensions.
func (s *MatSurface) Size() (int, int) {
	return s.Mat.Cols(), s.Mat.Rows()
}

// Line draws a stroke between two points.
func (s *MatSurface) Line(x1, y1, x2, y2 int, c color.RGBA, thickness int) {
	gocv.Line(s.Mat, image.Pt(x1, y1), image.Pt(x2, y2), c, thickness)
}

// FilledCircle draws a solid dot.
func (s *MatSurface) FilledCircle(x, y, radius int, c color.RGBA) {
	gocv.Circle(s.Mat, image.Pt(x, y), radius, c, -1)
}

// Circle draws a circle outline.
func (s *MatSurface) Circle(x, y, radius int, c color.RGBA, thickness int) {
	gocv.Circle(s.Mat, image.Pt(x, y), radius, c, thickness)
}
