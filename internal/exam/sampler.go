package exam

import (
	"math/rand/v2"
	"time"

	"github.com/emersonchaparro/manu-exams/internal/bank"
)

// Sampler performs the random draws behind exam generation. The random
// source is injected so tests can use a fixed seed.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a Sampler. A nil rng gets a time-seeded PCG source.
func NewSampler(rng *rand.Rand) Sampler {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>16))
	}
	return Sampler{rng: rng}
}

// SampleChapter selects min(count, population) distinct rows from a chapter
// uniformly at random, without replacement. The draw takes a prefix of a
// uniform permutation, so every subset of the requested size is equally
// likely. A chapter with zero rows yields an empty result.
func (s Sampler) SampleChapter(b *bank.Bank, chapter string, count int) []bank.Row {
	rows := b.RowsFor(chapter)
	if count > len(rows) {
		count = len(rows)
	}
	if count <= 0 {
		return nil
	}

	out := make([]bank.Row, 0, count)
	for _, i := range s.rng.Perm(len(rows))[:count] {
		out = append(out, rows[i])
	}
	return out
}

// ShuffleQuestions returns a uniform random permutation of qs without
// modifying the input. Empty and single-element inputs come back as-is.
func (s Sampler) ShuffleQuestions(qs []Question) []Question {
	if len(qs) < 2 {
		return qs
	}
	out := make([]Question, len(qs))
	copy(out, qs)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
