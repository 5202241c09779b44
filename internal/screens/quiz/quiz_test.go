package quiz

import (
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/emersonchaparro/manu-exams/internal/exam"
	"github.com/emersonchaparro/manu-exams/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func activeSession(n int) *exam.Session {
	s := exam.NewSession()
	var qs []exam.Question
	for i := 0; i < n; i++ {
		qs = append(qs, exam.Question{
			Chapter:    "Ch1",
			Prompt:     fmt.Sprintf("q%d", i),
			CorrectKey: "a",
			Options:    []exam.Option{{Key: "a", Text: "yes"}, {Key: "b", Text: "no"}},
		})
	}
	s.Start(qs)
	return s
}

func TestQuizScreen_AnswerRecordsAndAdvances(t *testing.T) {
	s := activeSession(3)
	var scr screen.Screen = New(s)

	// Enter picks the option under the cursor (the first, key "a").
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	q := scr.(*QuizScreen)

	a, ok := s.AnswerFor(0)
	if !ok || a.SelectedKey != "a" {
		t.Fatalf("answer for question 0 = %+v, recorded %v", a, ok)
	}
	if q.current != 1 {
		t.Errorf("current = %d, want advance to 1", q.current)
	}
}

func TestQuizScreen_LastAnswerPromptsFinish(t *testing.T) {
	s := activeSession(1)
	var scr screen.Screen = New(s)

	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	q := scr.(*QuizScreen)

	if !q.confirmFinish {
		t.Error("expected finish confirmation after answering the last question")
	}
}

func TestQuizScreen_FinishConfirmDismiss(t *testing.T) {
	s := activeSession(2)
	var scr screen.Screen = New(s)

	scr, _ = scr.Update(keyPress('f'))
	q := scr.(*QuizScreen)
	if !q.confirmFinish {
		t.Fatal("expected finish confirmation after pressing f")
	}

	scr, _ = scr.Update(keyPress('n'))
	q = scr.(*QuizScreen)
	if q.confirmFinish {
		t.Error("expected confirmation to be dismissed")
	}
	if s.Phase() != exam.PhaseActive {
		t.Errorf("phase = %v, want session still active", s.Phase())
	}
}

func TestQuizScreen_FinishConfirmYes(t *testing.T) {
	s := activeSession(2)
	var scr screen.Screen = New(s)

	scr, _ = scr.Update(keyPress('f'))
	_, cmd := scr.Update(keyPress('y'))

	if s.Phase() != exam.PhaseFinished {
		t.Errorf("phase = %v, want finished", s.Phase())
	}
	if cmd == nil {
		t.Error("expected a navigation command after confirming finish")
	}
}

func TestQuizScreen_View_MinimumSize(t *testing.T) {
	s := activeSession(2)
	view := New(s).View(70, 22)
	if view == "" {
		t.Error("expected non-empty view at minimum terminal size")
	}
}

func TestQuizScreen_View_EmptySession(t *testing.T) {
	s := exam.NewSession()
	view := New(s).View(80, 24)
	if view == "" {
		t.Error("expected non-empty view for a session with no questions")
	}
}
