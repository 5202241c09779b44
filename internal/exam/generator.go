package exam

import "github.com/emersonchaparro/manu-exams/internal/bank"

// Generator assembles exams from the question bank.
type Generator struct {
	bank    *bank.Bank
	sampler Sampler
}

// NewGenerator creates a Generator over the given bank.
func NewGenerator(b *bank.Bank, s Sampler) *Generator {
	return &Generator{bank: b, sampler: s}
}

// Bank returns the underlying question bank.
func (g *Generator) Bank() *bank.Bank {
	return g.bank
}

// Generate samples perChapter rows from each selected chapter, freezes them
// into questions, and shuffles the combined result once. Chapters with fewer
// rows than requested contribute what they have; an empty selection yields
// an empty sequence. Chapter iteration order is irrelevant because of the
// final shuffle.
func (g *Generator) Generate(chapters []string, perChapter int) []Question {
	var qs []Question
	for _, ch := range chapters {
		for _, row := range g.sampler.SampleChapter(g.bank, ch, perChapter) {
			qs = append(qs, NewQuestion(row))
		}
	}
	return g.sampler.ShuffleQuestions(qs)
}
