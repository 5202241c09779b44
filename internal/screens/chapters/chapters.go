// Package chapters implements the read-only chapter listing screen.
package chapters

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/emersonchaparro/manu-exams/internal/bank"
	"github.com/emersonchaparro/manu-exams/internal/router"
	"github.com/emersonchaparro/manu-exams/internal/screen"
	"github.com/emersonchaparro/manu-exams/internal/ui/layout"
	"github.com/emersonchaparro/manu-exams/internal/ui/theme"
)

// ChaptersScreen lists every chapter with its question count.
type ChaptersScreen struct {
	bank *bank.Bank
}

var _ screen.Screen = (*ChaptersScreen)(nil)
var _ screen.KeyHintProvider = (*ChaptersScreen)(nil)

// New creates the chapter listing screen.
func New(b *bank.Bank) *ChaptersScreen {
	return &ChaptersScreen{bank: b}
}

func (c *ChaptersScreen) Init() tea.Cmd {
	return nil
}

func (c *ChaptersScreen) Title() string {
	return "Chapters"
}

func (c *ChaptersScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChaptersScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "enter" {
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return c, nil
}

func (c *ChaptersScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Subtitle.Width(width).Render("Question bank contents"))
	b.WriteString("\n\n")

	var lines []string
	for _, ch := range c.bank.Chapters() {
		lines = append(lines, fmt.Sprintf("%-30s %4d questions", ch, c.bank.ChapterSize(ch)))
	}
	if len(lines) == 0 {
		lines = append(lines, "(empty bank)")
	}

	list := lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list))

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}
