// Package results implements the post-exam score and review screen.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/emersonchaparro/manu-exams/internal/exam"
	"github.com/emersonchaparro/manu-exams/internal/router"
	"github.com/emersonchaparro/manu-exams/internal/screen"
	"github.com/emersonchaparro/manu-exams/internal/ui/components"
	"github.com/emersonchaparro/manu-exams/internal/ui/layout"
	"github.com/emersonchaparro/manu-exams/internal/ui/theme"
)

// ResultsScreen shows the final score and a per-question review.
type ResultsScreen struct {
	session *exam.Session
	cursor  int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen over a finished session.
func New(session *exam.Session) *ResultsScreen {
	return &ResultsScreen{session: session}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Review question"},
		{Key: "Enter", Description: "Home"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if r.cursor > 0 {
			r.cursor--
		}
	case "down", "j":
		if r.cursor < len(r.session.Questions)-1 {
			r.cursor++
		}
	case "enter":
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	s := r.session
	total := len(s.Questions)
	if total == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Nothing to score"))
	}

	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Exam finished"))
	b.WriteString("\n\n")

	score := fmt.Sprintf("%d of %d correct — %.1f%%", s.CorrectCount(), total, s.Percentage())
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(score))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Session " + s.ID))
	b.WriteString("\n\n")

	// Verdict strip: one glyph per question.
	var strip strings.Builder
	for i := range s.Questions {
		glyph := verdictGlyph(s, i)
		if i == r.cursor {
			glyph = lipgloss.NewStyle().Bold(true).Underline(true).Render(glyph)
		}
		strip.WriteString(glyph)
		if i < total-1 {
			strip.WriteString(" ")
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strip.String()))
	b.WriteString("\n\n")

	// Review of the selected question.
	question := s.Questions[r.cursor]
	chosen := ""
	if a, ok := s.AnswerFor(r.cursor); ok {
		chosen = a.SelectedKey
	}

	choices := make([]components.Choice, 0, len(question.Options))
	for _, opt := range question.Options {
		choices = append(choices, components.Choice{Key: opt.Key, Text: opt.Text})
	}
	mc := components.NewMultiChoice(
		fmt.Sprintf("%d. %s", r.cursor+1, question.Prompt), choices, chosen)

	review := mc.ViewReview(question.CorrectKey)
	if chosen == "" {
		review += "\n" + theme.Unanswered.Render("  (not answered)")
	}
	b.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(review))

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}

func verdictGlyph(s *exam.Session, index int) string {
	correct, answered := s.Correct(index)
	switch {
	case !answered:
		return theme.Unanswered.Render("–")
	case correct:
		return theme.Correct.Render("✓")
	default:
		return theme.Incorrect.Render("✗")
	}
}
