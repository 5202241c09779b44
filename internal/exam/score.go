package exam

import "math"

// Correct reports whether the answer recorded for a question index matches
// the question's correct key. The second result is false when no answer has
// been recorded (or the index is out of range), leaving correctness
// undetermined rather than wrong. The comparison is exact: case-sensitive,
// no trimming. Defined in any phase, but stable only once the session is
// finished.
func (s *Session) Correct(index int) (correct, answered bool) {
	if index < 0 || index >= len(s.Questions) {
		return false, false
	}
	a, ok := s.AnswerFor(index)
	if !ok {
		return false, false
	}
	return a.SelectedKey == s.Questions[index].CorrectKey, true
}

// CorrectCount returns the number of answered questions whose recorded key
// matches. Unanswered questions never count.
func (s *Session) CorrectCount() int {
	n := 0
	for i := range s.Questions {
		if correct, answered := s.Correct(i); answered && correct {
			n++
		}
	}
	return n
}

// Percentage returns the score as correct/total*100, rounded to one decimal
// place. A session with no questions scores 0; callers should not present a
// score for an empty session.
func (s *Session) Percentage() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	p := float64(s.CorrectCount()) / float64(len(s.Questions)) * 100
	return math.Round(p*10) / 10
}
