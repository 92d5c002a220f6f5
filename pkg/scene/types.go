package scene

import (
	"encoding/json"

	"github.com/creatorlab/canvas/pkg/geom"
)

// Anchor describes which point of a placement its position refers to.
// Only center anchoring is currently produced by the engine; the field is
// kept in the wire shape for forward compatibility.
type Anchor string

// AnchorCenter positions a placement by its center point.
const AnchorCenter Anchor = "center"

// Unit is the measurement unit for placement sizes.
type Unit string

// UnitPercent sizes a placement in percent of the canvas dimensions.
const UnitPercent Unit = "percent"

// FitMode governs how a source image maps into its destination box.
type FitMode string

const (
	// FitContain shrinks one destination axis to preserve the source aspect
	// ratio, centered. No distortion, no crop. This is the default.
	FitContain FitMode = "contain"
	// FitCover crops the source's longer axis symmetrically to match the
	// box's aspect ratio. No distortion, possible crop.
	FitCover FitMode = "cover"
	// FitFill stretches the source into the box and may distort it.
	FitFill FitMode = "fill"
)

// ValidFitModes is the set of accepted fit mode strings. The empty string is
// also accepted on the wire and means "unset" (contain, or cover for
// near-full-canvas placements).
var ValidFitModes = map[FitMode]bool{
	FitContain: true,
	FitCover:   true,
	FitFill:    true,
}

// Percent clamp bounds for positions and sizes.
const (
	MinPercent = 0.0
	MaxPercent = 100.0
)

// Position locates a placement on the canvas in percent coordinates.
type Position struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Anchor Anchor  `json:"anchor,omitempty"`
}

// Size is the percent-based extent of a placement.
type Size struct {
	Width               float64 `json:"width"`
	Height              float64 `json:"height"`
	Unit                Unit    `json:"unit,omitempty"`
	MaintainAspectRatio bool    `json:"maintainAspectRatio,omitempty"`
}

// Placement is a positioned asset instance on the canvas. AssetID references
// an external, read-only media asset record; the placement itself owns only
// geometry and paint state.
type Placement struct {
	ID             string   `json:"id"`
	AssetID        string   `json:"assetId"`
	Position       Position `json:"position"`
	Size           Size     `json:"size"`
	ZIndex         int      `json:"zIndex"`
	Rotation       float64  `json:"rotation,omitempty"` // degrees, clockwise
	Opacity        float64  `json:"opacity"`            // 0-100
	FitMode        FitMode  `json:"fitMode,omitempty"`
	UseOriginalURL bool     `json:"useOriginalUrl,omitempty"`
}

// UnmarshalJSON defaults an absent opacity to 100. An explicit 0 survives:
// it means invisible, not unset.
func (p *Placement) UnmarshalJSON(data []byte) error {
	type placement Placement
	aux := struct {
		*placement
		Opacity *float64 `json:"opacity"`
	}{placement: (*placement)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Opacity == nil {
		p.Opacity = 100
	} else {
		p.Opacity = *aux.Opacity
	}
	return nil
}

// Clamped returns a copy of p with position and size forced into
// [MinPercent, MaxPercent] and opacity into [0, 100].
func (p Placement) Clamped() Placement {
	p.Position.X = geom.Clamp(p.Position.X, MinPercent, MaxPercent)
	p.Position.Y = geom.Clamp(p.Position.Y, MinPercent, MaxPercent)
	p.Size.Width = geom.Clamp(p.Size.Width, MinPercent, MaxPercent)
	p.Size.Height = geom.Clamp(p.Size.Height, MinPercent, MaxPercent)
	p.Opacity = geom.Clamp(p.Opacity, 0, 100)
	return p
}

// PixelRect returns the placement's center-anchored axis-aligned bounding box
// in pixel space at the given scale.
func (p Placement) PixelRect(dims Dimensions, scale float64) geom.Rect {
	w := float64(dims.Width) * scale
	h := float64(dims.Height) * scale
	return geom.FromCenter(
		geom.PercentToPixels(p.Position.X, w),
		geom.PercentToPixels(p.Position.Y, h),
		geom.PercentToPixels(p.Size.Width, w),
		geom.PercentToPixels(p.Size.Height, h),
	)
}

// Scene is the complete state of one composition. Background is a hex color
// ("#1a1a2e"); empty means transparent.
type Scene struct {
	Context    string      `json:"context"`
	Background string      `json:"background,omitempty"`
	Placements []Placement `json:"placements"`
	Elements   []Element   `json:"elements,omitempty"`
}

// Dims returns the pixel dimensions for the scene's canvas context.
func (s Scene) Dims() Dimensions {
	return DimensionsFor(s.Context)
}
