// Package setup implements the exam configuration screen: chapter selection
// and per-chapter question count.
package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/emersonchaparro/manu-exams/internal/exam"
	"github.com/emersonchaparro/manu-exams/internal/router"
	"github.com/emersonchaparro/manu-exams/internal/screen"
	"github.com/emersonchaparro/manu-exams/internal/screens/quiz"
	"github.com/emersonchaparro/manu-exams/internal/ui/components"
	"github.com/emersonchaparro/manu-exams/internal/ui/layout"
	"github.com/emersonchaparro/manu-exams/internal/ui/theme"
)

const defaultPerChapter = 5

// focus zones, cycled with tab.
const (
	focusChapters = iota
	focusCount
	focusGenerate
)

// SetupScreen collects the chapter selection and question count, then
// generates the exam.
type SetupScreen struct {
	generator *exam.Generator
	chapters  components.Checklist
	count     components.TextInput
	focus     int
	errMsg    string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup screen.
func New(generator *exam.Generator) *SetupScreen {
	b := generator.Bank()

	var items []components.ChecklistItem
	for _, ch := range b.Chapters() {
		items = append(items, components.ChecklistItem{
			Label:  ch,
			Detail: fmt.Sprintf("%d questions", b.ChapterSize(ch)),
		})
	}

	return &SetupScreen{
		generator: generator,
		chapters:  components.NewChecklist(items),
		count:     components.NewTextInput(fmt.Sprintf("%d", defaultPerChapter), true, 3),
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Exam"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle chapter"},
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Generate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch kmsg.String() {
		case "tab":
			s.focus = (s.focus + 1) % 3
			s.chapters.Focused = s.focus == focusChapters
			return s, nil
		case "shift+tab":
			s.focus = (s.focus + 2) % 3
			s.chapters.Focused = s.focus == focusChapters
			return s, nil
		case "enter":
			if s.focus == focusGenerate || s.focus == focusCount {
				return s, s.generate()
			}
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusChapters:
		s.chapters, cmd = s.chapters.Update(msg)
	case focusCount:
		s.count, cmd = s.count.Update(msg)
	}
	return s, cmd
}

// generate builds the exam and replaces this screen with the quiz. With no
// chapter selected the action is refused with an inline message rather than
// producing an empty session.
func (s *SetupScreen) generate() tea.Cmd {
	selected := s.chapters.CheckedLabels()
	if len(selected) == 0 {
		s.errMsg = "Select at least one chapter"
		return nil
	}

	perChapter := defaultPerChapter
	if n, err := s.count.NumericValue(); err == nil && n >= 1 {
		perChapter = n
	}

	questions := s.generator.Generate(selected, perChapter)
	if len(questions) == 0 {
		s.errMsg = "Selected chapters have no questions"
		return nil
	}

	session := exam.NewSession()
	session.Start(questions)

	s.errMsg = ""
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: quiz.New(session)}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Subtitle.Width(width).Render("Pick chapters and how many questions to draw from each"))
	b.WriteString("\n\n")

	sectionTitle := func(label string, focused bool) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if focused {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		return style.Render(label)
	}

	var body strings.Builder
	body.WriteString(sectionTitle("Chapters", s.focus == focusChapters))
	body.WriteString("\n")
	body.WriteString(s.chapters.View())
	body.WriteString("\n")

	body.WriteString(sectionTitle("Questions per chapter", s.focus == focusCount))
	body.WriteString("\n  ")
	body.WriteString(s.count.View())
	body.WriteString("\n\n")

	generate := components.NewButton("GENERATE EXAM", s.focus == focusGenerate)
	body.WriteString("  " + generate.View())

	if s.errMsg != "" {
		body.WriteString("\n\n  " + theme.Incorrect.Render(s.errMsg))
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body.String()))

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}
