package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/emersonchaparro/manu-exams/internal/ui/theme"
)

// ChecklistItem is one toggleable entry in a checklist.
type ChecklistItem struct {
	Label   string
	Detail  string // secondary text shown after the label
	Checked bool
}

// Checklist is a vertical multi-select list toggled with space.
type Checklist struct {
	Items   []ChecklistItem
	Cursor  int
	Focused bool
}

// NewChecklist creates a checklist with nothing selected.
func NewChecklist(items []ChecklistItem) Checklist {
	return Checklist{Items: items, Focused: true}
}

// Init returns nil.
func (c Checklist) Init() tea.Cmd {
	return nil
}

// Update handles navigation and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	if !c.Focused || len(c.Items) == 0 {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	case "space", " ":
		c.Items[c.Cursor].Checked = !c.Items[c.Cursor].Checked
	}

	return c, nil
}

// CheckedLabels returns the labels of all checked items, in list order.
func (c Checklist) CheckedLabels() []string {
	var out []string
	for _, item := range c.Items {
		if item.Checked {
			out = append(out, item.Label)
		}
	}
	return out
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, item := range c.Items {
		box := "[ ]"
		if item.Checked {
			box = "[x]"
		}

		line := fmt.Sprintf("%s %s", box, item.Label)
		if item.Detail != "" {
			line += "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(item.Detail)
		}

		if i == c.Cursor && c.Focused {
			s += lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ "+line) + "\n"
		} else {
			s += lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    "+line) + "\n"
		}
	}
	return s
}
