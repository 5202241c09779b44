package components

import (
	"github.com/emersonchaparro/manu-exams/internal/ui/theme"
)

// Button renders a labelled action in its focused or unfocused state.
// Activation is handled by the owning screen, which knows its own focus
// model; the widget only draws.
type Button struct {
	Label  string
	Active bool
}

// NewButton creates a button.
func NewButton(label string, active bool) Button {
	return Button{Label: label, Active: active}
}

// View renders the button.
func (b Button) View() string {
	label := " " + b.Label + " "
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
