package exam

import (
	"errors"
	"testing"
)

func activeSession(n int) *Session {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			Prompt:     "q",
			CorrectKey: "a",
			Options:    []Option{{Key: "a", Text: "yes"}, {Key: "b", Text: "no"}},
		}
	}
	s := NewSession()
	s.Start(qs)
	return s
}

func TestNewSession_Unstarted(t *testing.T) {
	s := NewSession()

	if s.Phase() != PhaseUnstarted {
		t.Errorf("phase = %d, want PhaseUnstarted", s.Phase())
	}
	if s.ID == "" {
		t.Error("expected a session ID")
	}
}

func TestStart_BecomesActive(t *testing.T) {
	s := activeSession(3)

	if s.Phase() != PhaseActive {
		t.Errorf("phase = %d, want PhaseActive", s.Phase())
	}
}

func TestStart_EmptyStaysUnstarted(t *testing.T) {
	s := NewSession()
	s.Start(nil)

	if s.Phase() != PhaseUnstarted {
		t.Errorf("phase = %d, want PhaseUnstarted", s.Phase())
	}
}

func TestStart_WipesPreviousAttempt(t *testing.T) {
	s := activeSession(3)
	_ = s.RecordAnswer(0, "a")
	_ = s.RecordAnswer(1, "b")
	s.Finish()

	s.Start([]Question{{Prompt: "new", CorrectKey: "a"}})

	if s.Phase() != PhaseActive {
		t.Errorf("phase = %d, want PhaseActive after regenerate", s.Phase())
	}
	if len(s.Answers) != 0 {
		t.Errorf("answers = %d, want 0 after regenerate", len(s.Answers))
	}
	if s.Finished {
		t.Error("finished flag should be cleared by regenerate")
	}
}

func TestRecordAnswer_Upsert(t *testing.T) {
	s := activeSession(3)

	if err := s.RecordAnswer(1, "b"); err != nil {
		t.Fatalf("first record: %v", err)
	}
	if err := s.RecordAnswer(1, "c"); err != nil {
		t.Fatalf("second record: %v", err)
	}

	if len(s.Answers) != 1 {
		t.Fatalf("answers = %d, want 1 (upsert, not append)", len(s.Answers))
	}
	a, ok := s.AnswerFor(1)
	if !ok {
		t.Fatal("expected answer for index 1")
	}
	if a.SelectedKey != "c" {
		t.Errorf("selected key = %q, want c (latest wins)", a.SelectedKey)
	}
}

func TestRecordAnswer_RejectedAfterFinish(t *testing.T) {
	s := activeSession(2)
	_ = s.RecordAnswer(0, "a")
	s.Finish()

	err := s.RecordAnswer(1, "b")
	if !errors.Is(err, ErrSessionInactive) {
		t.Fatalf("err = %v, want ErrSessionInactive", err)
	}

	if len(s.Answers) != 1 {
		t.Errorf("answers = %d, want 1 (unchanged after finish)", len(s.Answers))
	}
	if _, ok := s.AnswerFor(1); ok {
		t.Error("answer for index 1 should not exist")
	}
}

func TestRecordAnswer_RejectedWhenUnstarted(t *testing.T) {
	s := NewSession()

	if err := s.RecordAnswer(0, "a"); !errors.Is(err, ErrSessionInactive) {
		t.Errorf("err = %v, want ErrSessionInactive", err)
	}
}

func TestRecordAnswer_OutOfRange(t *testing.T) {
	s := activeSession(2)

	for _, idx := range []int{-1, 2, 100} {
		if err := s.RecordAnswer(idx, "a"); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("index %d: err = %v, want ErrIndexOutOfRange", idx, err)
		}
	}
	if len(s.Answers) != 0 {
		t.Errorf("answers = %d, want 0 after rejected records", len(s.Answers))
	}
}

func TestFinish_Idempotent(t *testing.T) {
	s := activeSession(2)
	_ = s.RecordAnswer(0, "a")

	s.Finish()
	answersAtFinish := len(s.Answers)
	s.Finish()

	if s.Phase() != PhaseFinished {
		t.Errorf("phase = %d, want PhaseFinished", s.Phase())
	}
	if len(s.Answers) != answersAtFinish {
		t.Errorf("answers changed by repeated finish: %d != %d", len(s.Answers), answersAtFinish)
	}
}

func TestFinish_NoopWhenUnstarted(t *testing.T) {
	s := NewSession()
	s.Finish()

	if s.Phase() != PhaseUnstarted {
		t.Errorf("phase = %d, want PhaseUnstarted", s.Phase())
	}
}

func TestReset(t *testing.T) {
	s := activeSession(3)
	_ = s.RecordAnswer(0, "a")
	s.Finish()

	s.Reset()

	if s.Phase() != PhaseUnstarted {
		t.Errorf("phase = %d, want PhaseUnstarted", s.Phase())
	}
	if len(s.Questions) != 0 || len(s.Answers) != 0 {
		t.Error("reset should clear questions and answers")
	}
}
