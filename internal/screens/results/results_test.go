package results

import (
	"fmt"
	"strings"
	"testing"

	"github.com/emersonchaparro/manu-exams/internal/exam"
)

func finishedSession(n int) *exam.Session {
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
	s.Finish()
	return s
}

func TestResultsScreen_Title(t *testing.T) {
	r := New(finishedSession(2))
	if r.Title() != "Results" {
		t.Errorf("Title = %q, want %q", r.Title(), "Results")
	}
}

func TestResultsScreen_View_ShowsSessionID(t *testing.T) {
	s := finishedSession(2)
	view := New(s).View(80, 24)

	if !strings.Contains(view, s.ID) {
		t.Errorf("view does not show the session ID %q", s.ID)
	}
}

func TestResultsScreen_View_ShowsScore(t *testing.T) {
	s := finishedSession(2)
	view := New(s).View(80, 24)

	if !strings.Contains(view, "0 of 2 correct") {
		t.Errorf("view missing score line:\n%s", view)
	}
}

func TestResultsScreen_View_EmptySession(t *testing.T) {
	s := exam.NewSession()
	view := New(s).View(80, 24)

	if view == "" {
		t.Error("expected non-empty view for an empty session")
	}
	if strings.Contains(view, s.ID) {
		t.Error("empty session should not render a score card")
	}
}
