// Package collision provides axis-aligned bounding-box overlap detection and
// best-effort non-colliding position search for canvas placements.
//
// Collision avoidance is advisory, never a hard constraint: every function
// here reports or suggests, and overlap is an accepted degraded outcome.
// Nothing in this package returns an error.
package collision

import (
	"github.com/creatorlab/canvas/pkg/geom"
	"github.com/creatorlab/canvas/pkg/scene"
)

// Result reports the outcome of a collision check.
type Result struct {
	Colliding bool     `json:"colliding"`
	IDs       []string `json:"ids,omitempty"` // ids of the placements hit
}

// candidatePositions is the ordered set tried by SuggestPosition: center
// first, then the four edge midpoints, then the four quadrant centers.
var candidatePositions = []geom.Point{
	{X: 50, Y: 50},
	{X: 50, Y: 15},
	{X: 50, Y: 85},
	{X: 15, Y: 50},
	{X: 85, Y: 50},
	{X: 25, Y: 25},
	{X: 75, Y: 25},
	{X: 25, Y: 75},
	{X: 75, Y: 75},
}

// Check converts the candidate and every existing placement to center-anchored
// pixel bounding boxes and reports which existing placements the candidate
// overlaps. A placement sharing the candidate's ID is skipped so a placement
// never collides with itself.
func Check(candidate scene.Placement, existing []scene.Placement, dims scene.Dimensions) Result {
	box := candidate.PixelRect(dims, 1)

	var res Result
	for _, p := range existing {
		if p.ID != "" && p.ID == candidate.ID {
			continue
		}
		if box.Overlaps(p.PixelRect(dims, 1)) {
			res.Colliding = true
			res.IDs = append(res.IDs, p.ID)
		}
	}
	return res
}

// SuggestPosition tries the candidate positions in order and returns the
// first at which the candidate's box is collision-free, or nil when every
// candidate collides. Callers treat nil as "place it anyway".
func SuggestPosition(candidate scene.Placement, existing []scene.Placement, dims scene.Dimensions) *scene.Position {
	for _, pt := range candidatePositions {
		probe := candidate
		probe.Position.X = pt.X
		probe.Position.Y = pt.Y
		if !Check(probe, existing, dims).Colliding {
			pos := scene.Position{X: pt.X, Y: pt.Y, Anchor: scene.AnchorCenter}
			return &pos
		}
	}
	return nil
}

// CandidatePositions returns a copy of the ordered candidate set, exposed for
// the smart-defaults fallback walk.
func CandidatePositions() []geom.Point {
	out := make([]geom.Point, len(candidatePositions))
	copy(out, candidatePositions)
	return out
}
