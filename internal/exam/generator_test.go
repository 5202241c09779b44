package exam

import (
	"testing"

	"github.com/emersonchaparro/manu-exams/internal/bank"
)

func TestGenerate_CombinedLength(t *testing.T) {
	// min(5,10) + min(5,3) = 8
	b := testBank(map[string]int{"Ch1": 10, "Ch2": 3})
	g := NewGenerator(b, NewSampler(testRNG(1)))

	qs := g.Generate([]string{"Ch1", "Ch2"}, 5)

	if len(qs) != 8 {
		t.Fatalf("len = %d, want 8", len(qs))
	}

	perChapter := make(map[string]int)
	for _, q := range qs {
		perChapter[q.Chapter]++
	}
	if perChapter["Ch1"] != 5 {
		t.Errorf("Ch1 questions = %d, want 5", perChapter["Ch1"])
	}
	if perChapter["Ch2"] != 3 {
		t.Errorf("Ch2 questions = %d, want 3", perChapter["Ch2"])
	}
}

func TestGenerate_EmptySelection(t *testing.T) {
	b := testBank(map[string]int{"Ch1": 10})
	g := NewGenerator(b, NewSampler(testRNG(1)))

	if qs := g.Generate(nil, 5); len(qs) != 0 {
		t.Errorf("expected no questions for empty selection, got %d", len(qs))
	}
}

func TestGenerate_UnknownChapterIgnored(t *testing.T) {
	b := testBank(map[string]int{"Ch1": 2})
	g := NewGenerator(b, NewSampler(testRNG(1)))

	qs := g.Generate([]string{"Ch1", "Nope"}, 5)
	if len(qs) != 2 {
		t.Errorf("len = %d, want 2", len(qs))
	}
}

func TestGenerate_FreezesOptions(t *testing.T) {
	rows := []bank.Row{{
		Chapter: "Ch1",
		Prompt:  "pick one",
		Answer:  "d",
		Options: [5]string{"", "text", "", "text2", ""},
	}}
	g := NewGenerator(bank.Load(rows), NewSampler(testRNG(1)))

	qs := g.Generate([]string{"Ch1"}, 1)
	if len(qs) != 1 {
		t.Fatalf("len = %d, want 1", len(qs))
	}
	opts := qs[0].Options
	if len(opts) != 2 {
		t.Fatalf("options = %d, want 2", len(opts))
	}
	if opts[0].Key != "b" || opts[0].Text != "text" {
		t.Errorf("first option = %+v, want key b", opts[0])
	}
	if opts[1].Key != "d" || opts[1].Text != "text2" {
		t.Errorf("second option = %+v, want key d", opts[1])
	}
}
