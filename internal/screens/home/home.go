// Package home implements the main menu screen.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/emersonchaparro/manu-exams/internal/exam"
	"github.com/emersonchaparro/manu-exams/internal/router"
	"github.com/emersonchaparro/manu-exams/internal/screen"
	"github.com/emersonchaparro/manu-exams/internal/screens/chapters"
	"github.com/emersonchaparro/manu-exams/internal/screens/setup"
	"github.com/emersonchaparro/manu-exams/internal/ui/components"
	"github.com/emersonchaparro/manu-exams/internal/ui/theme"
)

// HomeScreen is the entry screen of the application.
type HomeScreen struct {
	menu      components.Menu
	generator *exam.Generator
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen over the loaded question bank.
func New(generator *exam.Generator) *HomeScreen {
	bank := generator.Bank()
	emptyBank := bank.Len() == 0

	items := []components.MenuItem{
		{
			Label:    "START EXAM",
			Disabled: emptyBank,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: setup.New(generator)}
				}
			},
		},
		{
			Label:    "CHAPTERS",
			Disabled: emptyBank,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: chapters.New(bank)}
				}
			},
		},
		{
			Label: "QUIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		generator: generator,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	bank := h.generator.Bank()

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("MANU EXAMS"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Practice exams from your question bank"))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("%d questions across %d chapters", bank.Len(), len(bank.Chapters()))
	if bank.Len() == 0 {
		stats = "question bank is empty — check your bank file"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(stats))
	b.WriteString("\n\n")

	menu := h.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}
