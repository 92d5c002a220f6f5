// Package render compiles scenes into ordered draw-instruction lists.
// Compilation is pure: it takes already-decoded images and produces ops,
// leaving pixel work to the raster subpackage and encoding to sink. Keeping
// the ordering and geometry logic free of any graphics API makes z-order
// and fit behavior testable without a canvas.
package render

import (
	"image"
	"math"

	"github.com/creatorlab/canvas/pkg/geom"
	"github.com/creatorlab/canvas/pkg/scene"
)

// coverThreshold is the percent size above which an unset fit mode is
// treated as cover. Imported legacy documents rely on full-bleed backgrounds
// rendering edge to edge without declaring a fit mode.
const coverThreshold = 95.0

const (
	defaultStrokeWidth = 2.0
	defaultFontSize    = 16.0
	defaultColor       = "#000000"
)

// Options tunes one compilation.
type Options struct {
	Scale      float64          // output pixels per logical pixel, default 1
	Background string           // overrides the scene background when non-empty
	Canvas     scene.Dimensions // overrides the context lookup when both axes are set
}

// Result is a compiled scene: the op list plus output dimensions and the
// asset ids that had no decoded image and were skipped.
type Result struct {
	Ops           []Op
	Width, Height int
	MissingAssets []string
}

// EffectiveFit resolves a placement's fit mode. An unset mode defaults to
// contain, except when the declared size covers at least 95% of both canvas
// dimensions, which reads as a full-bleed background and gets cover.
func EffectiveFit(p scene.Placement) scene.FitMode {
	if p.FitMode != "" {
		return p.FitMode
	}
	if p.Size.Width >= coverThreshold && p.Size.Height >= coverThreshold {
		return scene.FitCover
	}
	return scene.FitContain
}

// Compile turns a scene into an ordered op list. Placements paint first in
// ascending z-index (stable, so insertion order breaks ties), then
// annotation elements the same way. Placements without a decoded image in
// images are skipped and reported, never fatal.
func Compile(s scene.Scene, images map[string]image.Image, opts Options) Result {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	dims := opts.Canvas
	if dims.Width <= 0 || dims.Height <= 0 {
		dims = s.Dims()
	}
	res := Result{
		Width:  int(math.Round(float64(dims.Width) * scale)),
		Height: int(math.Round(float64(dims.Height) * scale)),
	}

	background := opts.Background
	if background == "" {
		background = s.Background
	}
	if background != "" {
		res.Ops = append(res.Ops, FillBackground{Color: background})
	}

	for _, p := range scene.SortedByZ(s.Placements) {
		img, ok := images[p.AssetID]
		if !ok || img == nil {
			res.MissingAssets = append(res.MissingAssets, p.AssetID)
			continue
		}
		res.Ops = append(res.Ops, DrawImage{
			ID:       p.ID,
			Image:    img,
			Box:      p.PixelRect(dims, scale),
			Fit:      string(EffectiveFit(p)),
			Rotation: p.Rotation,
			Opacity:  alpha(p.Opacity),
		})
	}

	for _, e := range scene.SortedElementsByZ(s.Elements) {
		if op, ok := compileElement(e, dims, scale); ok {
			res.Ops = append(res.Ops, op)
		}
	}
	return res
}

func compileElement(e scene.Element, dims scene.Dimensions, scale float64) (Op, bool) {
	w := float64(dims.Width) * scale
	h := float64(dims.Height) * scale

	color := e.Color
	if color == "" {
		color = defaultColor
	}
	stroke := e.StrokeWidth
	if stroke <= 0 {
		stroke = defaultStrokeWidth
	}
	stroke *= scale

	switch e.Type {
	case scene.ElementImage:
		// Legacy placement mirror. The placement itself already painted, or
		// the document was imported without one and there is nothing to draw.
		return nil, false

	case scene.ElementStroke:
		if len(e.Points) < 2 {
			return nil, false
		}
		pts := make([]geom.Point, len(e.Points))
		for i, pt := range e.Points {
			pts[i] = geom.Point{
				X: geom.PercentToPixels(pt.X, w),
				Y: geom.PercentToPixels(pt.Y, h),
			}
		}
		return DrawPath{ID: e.ID, Points: pts, Color: color, StrokeWidth: stroke, Opacity: alpha(e.Opacity)}, true

	case scene.ElementRect, scene.ElementEllipse:
		box := geom.FromCenter(
			geom.PercentToPixels(e.X, w),
			geom.PercentToPixels(e.Y, h),
			geom.PercentToPixels(e.Width, w),
			geom.PercentToPixels(e.Height, h),
		)
		if e.Type == scene.ElementRect {
			return DrawRect{ID: e.ID, Box: box, Color: color, Fill: e.Fill, StrokeWidth: stroke, Opacity: alpha(e.Opacity)}, true
		}
		return DrawEllipse{ID: e.ID, Box: box, Color: color, Fill: e.Fill, StrokeWidth: stroke, Opacity: alpha(e.Opacity)}, true

	case scene.ElementLine, scene.ElementArrow:
		return DrawLine{
			ID:          e.ID,
			From:        geom.Point{X: geom.PercentToPixels(e.X, w), Y: geom.PercentToPixels(e.Y, h)},
			To:          geom.Point{X: geom.PercentToPixels(e.X2, w), Y: geom.PercentToPixels(e.Y2, h)},
			Color:       color,
			StrokeWidth: stroke,
			Opacity:     alpha(e.Opacity),
			Arrow:       e.Type == scene.ElementArrow,
		}, true

	case scene.ElementText:
		if e.Text == "" {
			return nil, false
		}
		size := e.FontSize
		if size <= 0 {
			size = defaultFontSize
		}
		return DrawText{
			ID:       e.ID,
			Text:     e.Text,
			X:        geom.PercentToPixels(e.X, w),
			Y:        geom.PercentToPixels(e.Y, h),
			FontSize: size * scale,
			Color:    color,
			Opacity:  alpha(e.Opacity),
		}, true
	}
	return nil, false
}

// alpha normalizes a 0-100 opacity to [0, 1]. Zero means invisible; an
// absent opacity is already 100 by the time a placement or element gets
// here, set at decode or construction.
func alpha(opacity float64) float64 {
	return geom.Clamp(opacity, 0, 100) / 100
}
