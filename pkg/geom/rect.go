package geom

// Rect is an axis-aligned box in pixel space. Top is the smaller Y value;
// the origin is the canvas top-left, matching image coordinates.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// FromCenter builds a Rect from a center point and a width/height span.
func FromCenter(cx, cy, w, h float64) Rect {
	return Rect{
		Left:   cx - w/2,
		Top:    cy - h/2,
		Right:  cx + w/2,
		Bottom: cy + h/2,
	}
}

// Width returns the horizontal span of the rect.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of the rect.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// CenterX returns the horizontal center point of the rect.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical center point of the rect.
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Overlaps reports whether r and o intersect with positive area. Touching
// edges do not count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right && r.Right > o.Left &&
		r.Top < o.Bottom && r.Bottom > o.Top
}
