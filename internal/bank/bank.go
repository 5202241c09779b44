// Package bank holds the immutable pool of parsed question rows, grouped by
// chapter. A Bank is built once from a row sequence and never mutated.
package bank

import "sort"

// Bank is the full question pool. Rows keep their original relative order
// within each chapter group.
type Bank struct {
	rows      []Row
	byChapter map[string][]Row
	chapters  []string
}

// Load groups rows by chapter and derives the sorted list of distinct
// chapter names. An empty row sequence yields an empty, usable Bank.
func Load(rows []Row) *Bank {
	b := &Bank{
		rows:      rows,
		byChapter: make(map[string][]Row),
	}
	for _, r := range rows {
		b.byChapter[r.Chapter] = append(b.byChapter[r.Chapter], r)
	}
	for ch := range b.byChapter {
		b.chapters = append(b.chapters, ch)
	}
	sort.Strings(b.chapters)
	return b
}

// Chapters returns the sorted distinct chapter names.
func (b *Bank) Chapters() []string {
	return b.chapters
}

// RowsFor returns the rows of a chapter in load order. Unknown chapters
// return nil.
func (b *Bank) RowsFor(chapter string) []Row {
	return b.byChapter[chapter]
}

// ChapterSize returns the number of rows in a chapter.
func (b *Bank) ChapterSize(chapter string) int {
	return len(b.byChapter[chapter])
}

// Len returns the total number of rows in the bank.
func (b *Bank) Len() int {
	return len(b.rows)
}
