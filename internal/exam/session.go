package exam

import "github.com/google/uuid"

// Phase is the lifecycle stage of a session.
type Phase int

const (
	PhaseUnstarted Phase = iota // no questions generated
	PhaseActive                 // questions present, answers mutable
	PhaseFinished               // answers frozen
)

// Answer records the selected option key for one question position.
type Answer struct {
	QuestionIndex int
	SelectedKey   string
}

// Session is one exam attempt: the frozen question sequence, the in-progress
// answer set, and the finished flag. A single caller mutates it through the
// methods below; answers are keyed by question index with at most one record
// per index.
type Session struct {
	ID        string
	Questions []Question
	Answers   []Answer
	Finished  bool
}

// NewSession creates an unstarted session.
func NewSession() *Session {
	return &Session{ID: uuid.New().String()}
}

// Phase derives the current lifecycle stage.
func (s *Session) Phase() Phase {
	switch {
	case len(s.Questions) == 0:
		return PhaseUnstarted
	case s.Finished:
		return PhaseFinished
	default:
		return PhaseActive
	}
}

// Start installs a freshly generated question sequence, wiping any previous
// answers and clearing the finished flag. Valid from any phase. An empty
// sequence leaves the session unstarted.
func (s *Session) Start(questions []Question) {
	s.Questions = questions
	s.Answers = nil
	s.Finished = false
}

// RecordAnswer upserts the answer for a question index: an existing record
// for that index has its key replaced, otherwise a new record is appended.
// Rejected without touching state when the session is not active or the
// index is out of range.
func (s *Session) RecordAnswer(index int, key string) error {
	if s.Phase() != PhaseActive {
		return ErrSessionInactive
	}
	if index < 0 || index >= len(s.Questions) {
		return ErrIndexOutOfRange
	}

	for i := range s.Answers {
		if s.Answers[i].QuestionIndex == index {
			s.Answers[i].SelectedKey = key
			return nil
		}
	}
	s.Answers = append(s.Answers, Answer{QuestionIndex: index, SelectedKey: key})
	return nil
}

// AnswerFor returns the recorded answer for a question index, if any.
func (s *Session) AnswerFor(index int) (Answer, bool) {
	for _, a := range s.Answers {
		if a.QuestionIndex == index {
			return a, true
		}
	}
	return Answer{}, false
}

// Finish freezes the answer set. Only an active session transitions;
// calling it again on a finished session changes nothing.
func (s *Session) Finish() {
	if s.Phase() == PhaseActive {
		s.Finished = true
	}
}

// Reset discards questions and answers, returning to the unstarted phase.
func (s *Session) Reset() {
	s.Start(nil)
}
