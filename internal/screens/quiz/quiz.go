// Package quiz implements the active exam screen: question navigation and
// answer recording.
package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/emersonchaparro/manu-exams/internal/exam"
	"github.com/emersonchaparro/manu-exams/internal/router"
	"github.com/emersonchaparro/manu-exams/internal/screen"
	"github.com/emersonchaparro/manu-exams/internal/screens/results"
	"github.com/emersonchaparro/manu-exams/internal/ui/components"
	"github.com/emersonchaparro/manu-exams/internal/ui/layout"
	"github.com/emersonchaparro/manu-exams/internal/ui/theme"
)

// QuizScreen drives one active exam session.
type QuizScreen struct {
	session       *exam.Session
	current       int
	mc            components.MultiChoice
	confirmFinish bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen for an already-started session.
func New(session *exam.Session) *QuizScreen {
	q := &QuizScreen{session: session}
	q.loadQuestion(0)
	return q
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	return "Exam"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.confirmFinish {
		return []layout.KeyHint{
			{Key: "Y", Description: "Finish exam"},
			{Key: "N", Description: "Keep answering"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Options"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←→", Description: "Question"},
		{Key: "F", Description: "Finish"},
	}
}

// loadQuestion points the selector at the given question, pre-marking any
// previously recorded answer.
func (q *QuizScreen) loadQuestion(index int) {
	if index < 0 || index >= len(q.session.Questions) {
		return
	}
	q.current = index

	question := q.session.Questions[index]
	choices := make([]components.Choice, 0, len(question.Options))
	for _, opt := range question.Options {
		choices = append(choices, components.Choice{Key: opt.Key, Text: opt.Text})
	}

	chosen := ""
	if a, ok := q.session.AnswerFor(index); ok {
		chosen = a.SelectedKey
	}
	q.mc = components.NewMultiChoice(question.Prompt, choices, chosen)
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return q, nil
	}

	if q.confirmFinish {
		switch kmsg.String() {
		case "y", "Y", "enter":
			return q, q.finish()
		case "n", "N", "esc":
			q.confirmFinish = false
		}
		return q, nil
	}

	switch kmsg.String() {
	case "left", "h":
		q.loadQuestion(q.current - 1)
		return q, nil
	case "right", "l":
		q.loadQuestion(q.current + 1)
		return q, nil
	case "f":
		q.confirmFinish = true
		return q, nil
	}

	before := q.mc.ChosenKey
	var cmd tea.Cmd
	q.mc, cmd = q.mc.Update(msg)

	if q.mc.ChosenKey != "" && q.mc.ChosenKey != before {
		// Upsert; the engine refuses this once the session is finished.
		if err := q.session.RecordAnswer(q.current, q.mc.ChosenKey); err == nil {
			if q.current+1 < len(q.session.Questions) {
				q.loadQuestion(q.current + 1)
			} else {
				q.confirmFinish = true
			}
		}
	}

	return q, cmd
}

func (q *QuizScreen) finish() tea.Cmd {
	q.session.Finish()
	session := q.session
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(session)}
	}
}

func (q *QuizScreen) View(width, height int) string {
	total := len(q.session.Questions)
	if total == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No questions in this exam"))
	}

	if q.confirmFinish {
		return q.viewConfirm(width, height)
	}

	question := q.session.Questions[q.current]

	var b strings.Builder

	answered := len(q.session.Answers)
	bar := components.NewProgressBar(
		fmt.Sprintf("Answered %d/%d", answered, total),
		float64(answered)/float64(total),
		false,
		min(width-8, 60),
	)
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	header := fmt.Sprintf("Question %d of %d — %s", q.current+1, total, question.Chapter)
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(header))
	b.WriteString("\n\n")

	mc := lipgloss.NewStyle().PaddingLeft(2).Render(q.mc.View())
	b.WriteString(mc)

	if len(question.Options) == 0 {
		b.WriteString("\n  " + theme.Hint.Render("This question has no options — skip it with →"))
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}

func (q *QuizScreen) viewConfirm(width, height int) string {
	answered := len(q.session.Answers)
	total := len(q.session.Questions)

	msg := fmt.Sprintf("Finish the exam?\n\n%d of %d questions answered.", answered, total)
	if answered < total {
		msg += "\nUnanswered questions will not score."
	}

	card := theme.Card.Render(lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(msg))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
