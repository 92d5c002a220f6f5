package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/creatorlab/canvas/pkg/assets"
	"github.com/creatorlab/canvas/pkg/template"
)

// List styles.
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// pickAssignments walks the template's slots one at a time, letting the user
// choose a compatible asset (or skip) for each.
func pickAssignments(tmpl template.Template, media []assets.MediaAsset) ([]template.Assignment, error) {
	model := newSlotPickerModel(tmpl, media)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, fmt.Errorf("slot picker: %w", err)
	}
	m, ok := final.(slotPickerModel)
	if !ok || m.aborted {
		return nil, fmt.Errorf("slot selection aborted")
	}
	return m.assignments, nil
}

// slotPickerModel is the bubbletea model for interactive slot filling.
type slotPickerModel struct {
	tmpl  template.Template
	media []assets.MediaAsset

	slotIdx     int
	cursor      int
	used        map[string]bool
	assignments []template.Assignment
	aborted     bool
}

func newSlotPickerModel(tmpl template.Template, media []assets.MediaAsset) slotPickerModel {
	return slotPickerModel{
		tmpl:  tmpl,
		media: media,
		used:  make(map[string]bool),
	}
}

// choices returns the unused assets compatible with the current slot.
func (m slotPickerModel) choices() []assets.MediaAsset {
	slot := m.tmpl.Slots[m.slotIdx]
	var out []assets.MediaAsset
	for _, a := range m.media {
		if !m.used[a.ID] && slot.Accepts(a.AssetType) {
			out = append(out, a)
		}
	}
	return out
}

func (m slotPickerModel) Init() tea.Cmd {
	return nil
}

func (m slotPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	choices := m.choices()
	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		// The cursor can rest one past the asset list, on "skip".
		if m.cursor < len(choices) {
			m.cursor++
		}

	case "enter", " ":
		if m.cursor < len(choices) {
			chosen := choices[m.cursor]
			m.assignments = append(m.assignments, template.Assignment{
				SlotID:  m.tmpl.Slots[m.slotIdx].ID,
				AssetID: chosen.ID,
			})
			m.used[chosen.ID] = true
		}
		m.slotIdx++
		m.cursor = 0
		if m.slotIdx >= len(m.tmpl.Slots) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m slotPickerModel) View() string {
	if m.slotIdx >= len(m.tmpl.Slots) {
		return ""
	}
	slot := m.tmpl.Slots[m.slotIdx]

	header := StyleTitle.Render(fmt.Sprintf("Slot %d/%d: %s", m.slotIdx+1, len(m.tmpl.Slots), slot.Name))
	if slot.Required {
		header += " " + StyleWarning.Render("(required)")
	}
	out := header + "\n\n"

	choices := m.choices()
	for i, a := range choices {
		label := a.DisplayName
		if label == "" {
			label = a.ID
		}
		line := fmt.Sprintf("%s %s", label, listDimStyle.Render("("+a.AssetType+")"))
		if i == m.cursor {
			out += listSelectedStyle.Render("> "+line) + "\n"
		} else {
			out += listNormalStyle.Render("  "+line) + "\n"
		}
	}
	skip := "skip this slot"
	if m.cursor == len(choices) {
		out += listSelectedStyle.Render("> "+skip) + "\n"
	} else {
		out += listDimStyle.Render("  "+skip) + "\n"
	}

	out += "\n" + listDimStyle.Render("↑/↓ move · enter select · q abort")
	return out
}
