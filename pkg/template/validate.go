package template

// Validation reports whether a set of assignments satisfies a template.
// A missing required slot is structured data for the caller to surface, not
// an error condition.
type Validation struct {
	IsValid      bool     `json:"isValid"`
	MissingSlots []string `json:"missingSlots,omitempty"` // required slot ids left unfilled
}

// Validate reports the required slots the assignments leave unfilled.
func Validate(t Template, assignments []Assignment) Validation {
	filled := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		filled[a.SlotID] = true
	}

	v := Validation{IsValid: true}
	for _, slot := range t.Slots {
		if slot.Required && !filled[slot.ID] {
			v.IsValid = false
			v.MissingSlots = append(v.MissingSlots, slot.ID)
		}
	}
	return v
}

// Status summarizes template fill progress for display.
type Status struct {
	Filled         int `json:"filled"`
	Total          int `json:"total"`
	Required       int `json:"required"`
	RequiredFilled int `json:"requiredFilled"`
}

// StatusOf counts filled and required slots for progress display.
func StatusOf(t Template, assignments []Assignment) Status {
	filled := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		if _, ok := t.Slot(a.SlotID); ok {
			filled[a.SlotID] = true
		}
	}

	st := Status{Total: len(t.Slots), Filled: len(filled)}
	for _, slot := range t.Slots {
		if slot.Required {
			st.Required++
			if filled[slot.ID] {
				st.RequiredFilled++
			}
		}
	}
	return st
}
