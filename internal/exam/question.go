// Package exam implements the quiz engine: bounded random sampling from the
// question bank, the exam session state machine, and scoring.
package exam

import (
	"strings"

	"github.com/emersonchaparro/manu-exams/internal/bank"
)

// Option is one labeled candidate answer attached to a question.
type Option struct {
	Key  string
	Text string
}

// Question is a bank row frozen into a specific exam. Option slots whose
// text is empty or whitespace-only are dropped; the remaining options keep
// their original a-e key order. A question's position in the exam's question
// sequence is its stable identity for answer records.
type Question struct {
	Chapter    string
	Prompt     string
	CorrectKey string
	Options    []Option
}

// NewQuestion derives a Question from a raw row. Rows are passed through
// as-is otherwise: a correct key that matches no retained option simply
// yields a question that can never be scored correct.
func NewQuestion(row bank.Row) Question {
	q := Question{
		Chapter:    row.Chapter,
		Prompt:     row.Prompt,
		CorrectKey: row.Answer,
	}
	for i, key := range bank.OptionKeys {
		text := row.Options[i]
		if strings.TrimSpace(text) == "" {
			continue
		}
		q.Options = append(q.Options, Option{Key: key, Text: text})
	}
	return q
}
