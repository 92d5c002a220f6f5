package render

import (
	"image"

	"github.com/creatorlab/canvas/pkg/geom"
)

// Op is one draw instruction. Compiling a scene yields an ordered op list
// that any rasterizer backend can interpret; all coordinates are output
// pixels, all opacities are normalized to [0, 1].
type Op interface {
	isOp()
}

// FillBackground paints the whole canvas with a solid color. Always the
// first op when the scene has a background configured.
type FillBackground struct {
	Color string
}

// DrawImage paints a decoded source image into a destination box.
type DrawImage struct {
	ID       string // originating placement or element id
	Image    image.Image
	Box      geom.Rect
	Fit      string  // "contain", "cover" or "fill"
	Rotation float64 // degrees, about the box center
	Opacity  float64
}

// DrawRect paints an axis-aligned rectangle, filled or stroked.
type DrawRect struct {
	ID          string
	Box         geom.Rect
	Color       string
	Fill        bool
	StrokeWidth float64
	Opacity     float64
}

// DrawEllipse paints an ellipse inscribed in a box, filled or stroked.
type DrawEllipse struct {
	ID          string
	Box         geom.Rect
	Color       string
	Fill        bool
	StrokeWidth float64
	Opacity     float64
}

// DrawLine paints a straight segment, optionally with an arrow head at the
// end point.
type DrawLine struct {
	ID          string
	From, To    geom.Point
	Color       string
	StrokeWidth float64
	Opacity     float64
	Arrow       bool
}

// DrawPath paints a freehand polyline through the given points.
type DrawPath struct {
	ID          string
	Points      []geom.Point
	Color       string
	StrokeWidth float64
	Opacity     float64
}

// DrawText paints a single line of text centered on a point.
type DrawText struct {
	ID       string
	Text     string
	X, Y     float64 // center of the rendered line
	FontSize float64 // output pixels
	Color    string
	Opacity  float64
}

func (FillBackground) isOp() {}
func (DrawImage) isOp()      {}
func (DrawRect) isOp()       {}
func (DrawEllipse) isOp()    {}
func (DrawLine) isOp()       {}
func (DrawPath) isOp()       {}
func (DrawText) isOp()       {}
