package scene

import (
	"slices"

	"github.com/google/uuid"
)

// Add appends a placement to the list, returning a new slice. A missing ID is
// assigned, a zero opacity defaults to fully opaque, and geometry is clamped.
func Add(list []Placement, p Placement) []Placement {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Opacity == 0 {
		p.Opacity = 100
	}
	if p.Position.Anchor == "" {
		p.Position.Anchor = AnchorCenter
	}
	if p.Size.Unit == "" {
		p.Size.Unit = UnitPercent
	}
	out := make([]Placement, len(list), len(list)+1)
	copy(out, list)
	return append(out, p.Clamped())
}

// Patch is a partial placement update. Nil fields are left untouched.
type Patch struct {
	Position       *Position
	Size           *Size
	ZIndex         *int
	Rotation       *float64
	Opacity        *float64
	FitMode        *FitMode
	UseOriginalURL *bool
}

// Update applies a partial patch to the placement with the given id,
// returning a new slice. The result is clamped. Unknown ids are a no-op.
func Update(list []Placement, id string, patch Patch) []Placement {
	out := make([]Placement, len(list))
	copy(out, list)
	for i, p := range out {
		if p.ID != id {
			continue
		}
		if patch.Position != nil {
			p.Position = *patch.Position
		}
		if patch.Size != nil {
			p.Size = *patch.Size
		}
		if patch.ZIndex != nil {
			p.ZIndex = *patch.ZIndex
		}
		if patch.Rotation != nil {
			p.Rotation = *patch.Rotation
		}
		if patch.Opacity != nil {
			p.Opacity = *patch.Opacity
		}
		if patch.FitMode != nil {
			p.FitMode = *patch.FitMode
		}
		if patch.UseOriginalURL != nil {
			p.UseOriginalURL = *patch.UseOriginalURL
		}
		out[i] = p.Clamped()
	}
	return out
}

// Remove deletes the placement with the given id, returning a new slice.
func Remove(list []Placement, id string) []Placement {
	out := make([]Placement, 0, len(list))
	for _, p := range list {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

// BumpZ raises the placement with the given id above every other placement,
// returning a new slice.
func BumpZ(list []Placement, id string) []Placement {
	top := MaxZ(list) + 1
	return Update(list, id, Patch{ZIndex: &top})
}

// Find returns the placement with the given id.
func Find(list []Placement, id string) (Placement, bool) {
	for _, p := range list {
		if p.ID == id {
			return p, true
		}
	}
	return Placement{}, false
}

// MaxZ returns the highest z-index in the list, or -1 for an empty list.
func MaxZ(list []Placement) int {
	maxZ := -1
	for _, p := range list {
		if p.ZIndex > maxZ {
			maxZ = p.ZIndex
		}
	}
	return maxZ
}

// SortedByZ returns a copy of the list in ascending paint order. The sort is
// stable, so placements sharing a z-index keep their insertion order.
func SortedByZ(list []Placement) []Placement {
	out := make([]Placement, len(list))
	copy(out, list)
	slices.SortStableFunc(out, func(a, b Placement) int {
		return a.ZIndex - b.ZIndex
	})
	return out
}

// SortedElementsByZ returns a copy of the element list in ascending paint
// order, with the same stability guarantee as SortedByZ.
func SortedElementsByZ(list []Element) []Element {
	out := make([]Element, len(list))
	copy(out, list)
	slices.SortStableFunc(out, func(a, b Element) int {
		return a.ZIndex - b.ZIndex
	})
	return out
}

// AddElement appends an annotation element, returning a new slice. A missing
// ID is assigned and geometry is clamped.
func AddElement(list []Element, e Element) []Element {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Opacity == 0 {
		e.Opacity = 100
	}
	out := make([]Element, len(list), len(list)+1)
	copy(out, list)
	return append(out, e.Clamped())
}

// RemoveElement deletes the element with the given id, returning a new slice.
func RemoveElement(list []Element, id string) []Element {
	out := make([]Element, 0, len(list))
	for _, e := range list {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}
