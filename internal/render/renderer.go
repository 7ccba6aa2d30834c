package render

import (
	"image/color"
	"math"

	"github.com/ayusman/handspell/internal/landmark"
)

// Geometry constants. Stroke and dot sizes scale with the apparent hand
// size so the skeleton looks the same regardless of distance from the
// camera.
const (
	// MinLandmarks is the smallest set the renderer will draw.
	MinLandmarks = 6
	// lineRatio converts the scale reference into line thickness.
	lineRatio = 0.01
	// dotRatio converts the scale reference into dot radius.
	dotRatio = 0.015
)

// groupColors assigns one display color per finger group.
var groupColors = map[landmark.Group]color.RGBA{
	landmark.GroupPalm:   {R: 224, G: 224, B: 224, A: 255},
	landmark.GroupThumb:  {R: 255, G: 99, B: 71, A: 255},
	landmark.GroupIndex:  {R: 255, G: 215, B: 0, A: 255},
	landmark.GroupMiddle: {R: 60, G: 179, B: 113, A: 255},
	landmark.GroupRing:   {R: 65, G: 105, B: 225, A: 255},
	landmark.GroupPinky:  {R: 238, G: 130, B: 238, A: 255},
}

// outlineColor is the thin contrasting ring around every dot.
var outlineColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Draw renders the hand skeleton onto dst. Sets with fewer than
// MinLandmarks entries draw nothing.
//
// The scale reference is the planar wrist-to-index-base distance
// multiplied by the surface width. Bones are colored by the finger
// group of their endpoint index; dots by their own group, with a thin
// contrasting outline.
func Draw(dst Surface, set landmark.Set) {
	if len(set) < MinLandmarks {
		return
	}

	width, height := dst.Size()

	wrist := set[landmark.Wrist]
	indexBase := set[landmark.IndexMCP]
	dx := wrist.X - indexBase.X
	dy := wrist.Y - indexBase.Y
	scale := math.Sqrt(dx*dx+dy*dy) * float64(width)

	thickness := int(math.Max(1, scale*lineRatio))
	radius := int(math.Max(2, scale*dotRatio))

	for _, conn := range landmark.Connections {
		if conn.A >= len(set) || conn.B >= len(set) {
			continue
		}
		a, b := set[conn.A], set[conn.B]
		dst.Line(
			toPixel(a.X, width), toPixel(a.Y, height),
			toPixel(b.X, width), toPixel(b.Y, height),
			colorFor(conn.B), thickness,
		)
	}

	for i, p := range set {
		x, y := toPixel(p.X, width), toPixel(p.Y, height)
		dst.FilledCircle(x, y, radius, colorFor(i))
		dst.Circle(x, y, radius, outlineColor, 1)
	}
}

func colorFor(index int) color.RGBA {
	return groupColors[landmark.GroupOf(index)]
}

func toPixel(coord float64, extent int) int {
	return int(math.Round(coord * float64(extent)))
}
