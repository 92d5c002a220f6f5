package scene

import (
	"encoding/json"

	"github.com/creatorlab/canvas/pkg/geom"
)

// ElementType discriminates the annotation element union.
type ElementType string

// Annotation element kinds.
const (
	ElementStroke  ElementType = "stroke"  // freehand point list
	ElementRect    ElementType = "rect"    // rectangle
	ElementEllipse ElementType = "ellipse" // circle or ellipse
	ElementLine    ElementType = "line"    // straight segment
	ElementArrow   ElementType = "arrow"   // segment with head
	ElementText    ElementType = "text"    // text label
	ElementImage   ElementType = "image"   // placement mirror (legacy documents)
)

// ValidElementTypes is the set of accepted element type strings.
var ValidElementTypes = map[ElementType]bool{
	ElementStroke:  true,
	ElementRect:    true,
	ElementEllipse: true,
	ElementLine:    true,
	ElementArrow:   true,
	ElementText:    true,
	ElementImage:   true,
}

// Element is a freeform annotation drawn on the canvas. It shares the
// layering model of placements (ZIndex, Opacity) and carries type-specific
// geometry, all percent-based.
//
// Field usage by type:
//   - stroke: Points
//   - rect, ellipse, image: X, Y (center), Width, Height
//   - line, arrow: X, Y (start), X2, Y2 (end)
//   - text: X, Y (center), Text, FontSize
//
// StrokeWidth and FontSize are logical units: pixels at render scale 1,
// multiplied by the render scale at draw time so preview and export stay
// pixel-proportional.
//
// An image element mirrors a placement from imported legacy documents and is
// never an independent entity: when PlacementID matches a live placement the
// renderer draws the placement and skips the mirror, so the two cannot
// diverge.
type Element struct {
	ID          string       `json:"id"`
	Type        ElementType  `json:"type"`
	ZIndex      int          `json:"zIndex"`
	Opacity     float64      `json:"opacity"` // 0-100
	Color       string       `json:"color,omitempty"`
	StrokeWidth float64      `json:"strokeWidth,omitempty"`
	Points      []geom.Point `json:"points,omitempty"`
	X           float64      `json:"x,omitempty"`
	Y           float64      `json:"y,omitempty"`
	X2          float64      `json:"x2,omitempty"`
	Y2          float64      `json:"y2,omitempty"`
	Width       float64      `json:"width,omitempty"`
	Height      float64      `json:"height,omitempty"`
	Fill        bool         `json:"fill,omitempty"`
	Text        string       `json:"text,omitempty"`
	FontSize    float64      `json:"fontSize,omitempty"`
	PlacementID string       `json:"placementId,omitempty"`
}

// UnmarshalJSON defaults an absent opacity to 100, keeping an explicit 0
// as invisible.
func (e *Element) UnmarshalJSON(data []byte) error {
	type element Element
	aux := struct {
		*element
		Opacity *float64 `json:"opacity"`
	}{element: (*element)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Opacity == nil {
		e.Opacity = 100
	} else {
		e.Opacity = *aux.Opacity
	}
	return nil
}

// Clamped returns a copy of e with all percent geometry clamped into the
// canvas and opacity into [0, 100].
func (e Element) Clamped() Element {
	e.X = geom.Clamp(e.X, MinPercent, MaxPercent)
	e.Y = geom.Clamp(e.Y, MinPercent, MaxPercent)
	e.X2 = geom.Clamp(e.X2, MinPercent, MaxPercent)
	e.Y2 = geom.Clamp(e.Y2, MinPercent, MaxPercent)
	e.Width = geom.Clamp(e.Width, MinPercent, MaxPercent)
	e.Height = geom.Clamp(e.Height, MinPercent, MaxPercent)
	e.Opacity = geom.Clamp(e.Opacity, 0, 100)
	if len(e.Points) > 0 {
		pts := make([]geom.Point, len(e.Points))
		for i, pt := range e.Points {
			pts[i] = geom.Point{
				X: geom.Clamp(pt.X, MinPercent, MaxPercent),
				Y: geom.Clamp(pt.Y, MinPercent, MaxPercent),
			}
		}
		e.Points = pts
	}
	return e
}
