package template

import (
	"github.com/creatorlab/canvas/pkg/assets"
	"github.com/creatorlab/canvas/pkg/scene"
)

// Apply converts each assignment into a placement. Geometry is copied
// directly from the slot; aspect ratio is maintained exactly when the slot
// auto-fits with contain. Assignments referencing unknown slots are skipped.
//
// Templates yield placements only. The renderer derives image drawing from
// placements directly, so no mirrored annotation element is produced that
// could drift out of sync.
func Apply(t Template, assignments []Assignment) []scene.Placement {
	var placements []scene.Placement
	for _, a := range assignments {
		slot, ok := t.Slot(a.SlotID)
		if !ok {
			continue
		}

		opacity := slot.DefaultOpacity
		if opacity == 0 {
			opacity = 100
		}
		size := slot.Size
		size.MaintainAspectRatio = slot.AutoFit == scene.FitContain

		placements = scene.Add(placements, scene.Placement{
			AssetID:  a.AssetID,
			Position: slot.Position,
			Size:     size,
			ZIndex:   slot.ZIndex,
			Opacity:  opacity,
			FitMode:  slot.AutoFit,
		})
	}
	return placements
}

// AutoAssign binds assets to slots with a two-pass greedy walk.
//
// Pass 1 fills required slots in declaration order with the first unused
// asset whose role is accepted. Pass 2 assigns remaining unused assets to
// the first compatible remaining slot. Assets with no compatible slot are
// left unassigned, which is an expected outcome rather than an error.
func AutoAssign(t Template, available []assets.MediaAsset) []Assignment {
	var out []Assignment
	usedAssets := make(map[string]bool)
	filledSlots := make(map[string]bool)

	for _, slot := range t.Slots {
		if !slot.Required {
			continue
		}
		for _, a := range available {
			if usedAssets[a.ID] || !slot.Accepts(a.AssetType) {
				continue
			}
			out = append(out, Assignment{SlotID: slot.ID, AssetID: a.ID})
			usedAssets[a.ID] = true
			filledSlots[slot.ID] = true
			break
		}
	}

	for _, a := range available {
		if usedAssets[a.ID] {
			continue
		}
		for _, slot := range t.Slots {
			if filledSlots[slot.ID] || !slot.Accepts(a.AssetType) {
				continue
			}
			out = append(out, Assignment{SlotID: slot.ID, AssetID: a.ID})
			usedAssets[a.ID] = true
			filledSlots[slot.ID] = true
			break
		}
	}

	return out
}
