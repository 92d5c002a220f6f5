package raster

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/creatorlab/canvas/pkg/scene"
)

// fit resamples src for a w by h destination box.
//
// cover crops the longer axis symmetrically so the result fills the box
// exactly with no padding. contain shrinks to touch the box from inside,
// possibly leaving one axis short; the caller centers it. fill stretches to
// the box and may distort.
func fit(src image.Image, w, h int, mode string) image.Image {
	switch scene.FitMode(mode) {
	case scene.FitCover:
		return imaging.Fill(src, w, h, imaging.Center, imaging.Lanczos)
	case scene.FitFill:
		return imaging.Resize(src, w, h, imaging.Lanczos)
	default:
		return imaging.Fit(src, w, h, imaging.Lanczos)
	}
}
