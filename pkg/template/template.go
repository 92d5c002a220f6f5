// Package template provides reusable canvas layouts: static slot definitions
// that convert into placements when assets are assigned.
//
// Templates are immutable data. The only mutable artifact of applying one is
// the assignment list binding slots to assets; everything else is a pure
// function over the template value.
package template

import (
	"slices"

	"github.com/creatorlab/canvas/pkg/scene"
)

// Slot is a predefined region in a template accepting assets of specific
// roles.
type Slot struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Position       scene.Position `json:"position"`
	Size           scene.Size     `json:"size"`
	ZIndex         int            `json:"zIndex"`
	DefaultOpacity float64        `json:"defaultOpacity"`
	AutoFit        scene.FitMode  `json:"autoFit,omitempty"`
	AcceptedTypes  []string       `json:"acceptedTypes"`
	Required       bool           `json:"required,omitempty"`
}

// Accepts reports whether the slot takes assets of the given role.
// A slot with no accepted types takes anything.
func (s Slot) Accepts(role string) bool {
	if len(s.AcceptedTypes) == 0 {
		return true
	}
	return slices.Contains(s.AcceptedTypes, role)
}

// Template is an immutable canvas layout definition. Slots are ordered;
// declaration order is the assignment priority.
type Template struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Context string `json:"context"` // canvas context the layout was designed for
	Slots   []Slot `json:"slots"`
}

// Slot returns the slot with the given id.
func (t Template) Slot(id string) (Slot, bool) {
	for _, s := range t.Slots {
		if s.ID == id {
			return s, true
		}
	}
	return Slot{}, false
}

// RequiredSlots returns the template's required slots in declaration order.
func (t Template) RequiredSlots() []Slot {
	var out []Slot
	for _, s := range t.Slots {
		if s.Required {
			out = append(out, s)
		}
	}
	return out
}

// Assignment binds one slot to one asset at apply time.
type Assignment struct {
	SlotID  string `json:"slotId"`
	AssetID string `json:"assetId"`
}
