// Package defaults suggests size, position, and z-index for newly added
// assets based on their semantic role and the target canvas context.
//
// Every suggestion is heuristic and permissive: lookups fall back through
// role default → global default, the position probe degrades to the table
// default when the canvas is crowded, and no function here returns an error.
package defaults

import (
	"github.com/creatorlab/canvas/pkg/collision"
	"github.com/creatorlab/canvas/pkg/scene"
)

// Role is the semantic role of an asset on the canvas.
type Role string

// Known asset roles.
const (
	RoleBackground Role = "background"
	RoleCharacter  Role = "character"
	RoleLogo       Role = "logo"
	RoleIcon       Role = "icon"
	RoleText       Role = "text"
	RoleWatermark  Role = "watermark"
)

// sizeDefaultKey is the per-role fallback entry in sizeRecommendations.
const sizeDefaultKey = "default"

// globalDefaultSize applies when a role has no table entry at all.
var globalDefaultSize = scene.Size{Width: 20, Height: 20, Unit: scene.UnitPercent}

// sizeRecommendations maps role → canvas context → suggested size. Each role
// carries a "default" entry used for contexts without a specific tuning.
var sizeRecommendations = map[Role]map[string]scene.Size{
	RoleBackground: {
		sizeDefaultKey: {Width: 100, Height: 100, Unit: scene.UnitPercent},
	},
	RoleCharacter: {
		sizeDefaultKey:    {Width: 40, Height: 60, Unit: scene.UnitPercent},
		"instagram_story": {Width: 35, Height: 50, Unit: scene.UnitPercent},
		"linkedin_banner": {Width: 20, Height: 80, Unit: scene.UnitPercent},
	},
	RoleLogo: {
		sizeDefaultKey:      {Width: 15, Height: 15, Unit: scene.UnitPercent},
		"youtube_thumbnail": {Width: 18, Height: 18, Unit: scene.UnitPercent},
		"linkedin_banner":   {Width: 10, Height: 30, Unit: scene.UnitPercent},
	},
	RoleIcon: {
		sizeDefaultKey: {Width: 10, Height: 10, Unit: scene.UnitPercent},
	},
	RoleText: {
		sizeDefaultKey: {Width: 30, Height: 12, Unit: scene.UnitPercent},
	},
	RoleWatermark: {
		sizeDefaultKey: {Width: 12, Height: 8, Unit: scene.UnitPercent},
	},
}

// positionRecommendations maps role → suggested center position.
var positionRecommendations = map[Role]scene.Position{
	RoleBackground: {X: 50, Y: 50, Anchor: scene.AnchorCenter},
	RoleCharacter:  {X: 50, Y: 60, Anchor: scene.AnchorCenter},
	RoleLogo:       {X: 85, Y: 15, Anchor: scene.AnchorCenter},
	RoleIcon:       {X: 15, Y: 15, Anchor: scene.AnchorCenter},
	RoleText:       {X: 50, Y: 80, Anchor: scene.AnchorCenter},
	RoleWatermark:  {X: 90, Y: 90, Anchor: scene.AnchorCenter},
}

// defaultPosition is the suggestion for roles without a table entry.
var defaultPosition = scene.Position{X: 50, Y: 50, Anchor: scene.AnchorCenter}

// zBands assigns each role a baseline z-index band. Assets of the same role
// stack together inside [baseline, baseline+10) without jumping above
// higher-role layers.
var zBands = map[Role]int{
	RoleBackground: 0,
	RoleCharacter:  10,
	RoleLogo:       20,
	RoleIcon:       25,
	RoleText:       30,
	RoleWatermark:  50,
}

// zBandWidth bounds each role's stacking band.
const zBandWidth = 10

// probeSize is the synthetic test box used when probing a suggested position
// for collisions.
const probeSize = 20.0

// Size returns the recommended size for a role on the given canvas context.
// Lookup order: exact context entry, the role's default entry, then the
// global default.
func Size(role Role, canvasContext string) scene.Size {
	byContext, ok := sizeRecommendations[role]
	if !ok {
		return globalDefaultSize
	}
	if s, ok := byContext[canvasContext]; ok {
		return s
	}
	if s, ok := byContext[sizeDefaultKey]; ok {
		return s
	}
	return globalDefaultSize
}

// Position returns the recommended position for a role given the placements
// already on the canvas.
//
// With no existing placements the table default is returned unchecked and no
// collision work happens at all. Otherwise a synthetic probe box is checked
// at the default; on collision the detector's suggestion wins, then the nine
// canonical fallback positions are walked in priority order, and when nothing
// is free the original default is returned anyway.
func Position(role Role, existing []scene.Placement, dims scene.Dimensions) scene.Position {
	pos, ok := positionRecommendations[role]
	if !ok {
		pos = defaultPosition
	}
	if len(existing) == 0 {
		return pos
	}

	probe := scene.Placement{
		Position: pos,
		Size:     scene.Size{Width: probeSize, Height: probeSize, Unit: scene.UnitPercent},
	}
	if !collision.Check(probe, existing, dims).Colliding {
		return pos
	}
	if suggested := collision.SuggestPosition(probe, existing, dims); suggested != nil {
		return *suggested
	}
	for _, pt := range collision.CandidatePositions() {
		probe.Position.X = pt.X
		probe.Position.Y = pt.Y
		if !collision.Check(probe, existing, dims).Colliding {
			return scene.Position{X: pt.X, Y: pt.Y, Anchor: scene.AnchorCenter}
		}
	}
	return pos
}

// ZIndex returns the recommended z-index for a role: one more than the
// highest existing z inside the role's band, the band baseline when the band
// is empty, or one above the global maximum for unknown roles.
func ZIndex(role Role, existing []scene.Placement) int {
	baseline, ok := zBands[role]
	if !ok {
		return scene.MaxZ(existing) + 1
	}

	maxInBand := baseline - 1
	for _, p := range existing {
		if p.ZIndex >= baseline && p.ZIndex < baseline+zBandWidth && p.ZIndex > maxInBand {
			maxInBand = p.ZIndex
		}
	}
	return maxInBand + 1
}

// Placement composes Size, Position, and ZIndex into a ready-to-add placement
// for the given asset.
func Placement(assetID string, role Role, canvasContext string, existing []scene.Placement, dims scene.Dimensions) scene.Placement {
	return scene.Placement{
		AssetID:  assetID,
		Position: Position(role, existing, dims),
		Size:     Size(role, canvasContext),
		ZIndex:   ZIndex(role, existing),
		Opacity:  100,
	}
}
