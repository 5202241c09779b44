package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/emersonchaparro/manu-exams/internal/ui/theme"
)

// Choice is one selectable answer option: a key (a-e) plus its text.
type Choice struct {
	Key  string
	Text string
}

// MultiChoice is a multiple-choice selector. Unlike a graded quiz widget it
// does not reveal correctness on selection; the chosen key is only marked,
// since scoring happens when the whole exam is finished.
type MultiChoice struct {
	Prompt    string
	Choices   []Choice
	Cursor    int
	ChosenKey string // empty until an option is picked
}

// NewMultiChoice creates a selector, optionally pre-marking a previously
// chosen key (the cursor starts there too).
func NewMultiChoice(prompt string, choices []Choice, chosenKey string) MultiChoice {
	m := MultiChoice{
		Prompt:    prompt,
		Choices:   choices,
		ChosenKey: chosenKey,
	}
	for i, c := range choices {
		if chosenKey != "" && c.Key == chosenKey {
			m.Cursor = i
		}
	}
	return m
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Picking a different
// option simply replaces the chosen key.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Choices) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Choices)-1 {
			m.Cursor++
		}
	case "enter", "space", " ":
		m.ChosenKey = m.Choices[m.Cursor].Key
	}

	return m, nil
}

// View renders the prompt and options.
func (m MultiChoice) View() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Prompt))
	b.WriteString("\n\n")

	for i, c := range m.Choices {
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}
		marker := " "
		if m.ChosenKey != "" && c.Key == m.ChosenKey {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, c.Key, c.Text)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == m.Cursor {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		} else if m.ChosenKey != "" && c.Key == m.ChosenKey {
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// ViewReview renders the options graded against the correct key: the correct
// option green, a wrong chosen option red, everything else dimmed.
func (m MultiChoice) ViewReview(correctKey string) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Prompt))
	b.WriteString("\n\n")

	for _, c := range m.Choices {
		marker := " "
		if m.ChosenKey != "" && c.Key == m.ChosenKey {
			marker = "●"
		}
		line := fmt.Sprintf("  %s %s)  %s", marker, c.Key, c.Text)

		switch {
		case c.Key == correctKey:
			b.WriteString(theme.Correct.Render(line))
		case m.ChosenKey != "" && c.Key == m.ChosenKey:
			b.WriteString(theme.Incorrect.Render(line))
		default:
			b.WriteString(theme.Unanswered.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
