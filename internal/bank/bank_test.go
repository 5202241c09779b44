package bank

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_GroupsByChapter(t *testing.T) {
	rows := []Row{
		{Chapter: "Ch2", Prompt: "q1"},
		{Chapter: "Ch1", Prompt: "q2"},
		{Chapter: "Ch2", Prompt: "q3"},
		{Chapter: "Ch1", Prompt: "q4"},
	}

	b := Load(rows)

	assert.Equal(t, []string{"Ch1", "Ch2"}, b.Chapters(), "chapters should be sorted")
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, 2, b.ChapterSize("Ch1"))
	assert.Equal(t, 2, b.ChapterSize("Ch2"))
}

func TestLoad_PreservesRowOrderWithinChapter(t *testing.T) {
	rows := []Row{
		{Chapter: "Ch1", Prompt: "first"},
		{Chapter: "Ch2", Prompt: "other"},
		{Chapter: "Ch1", Prompt: "second"},
		{Chapter: "Ch1", Prompt: "third"},
	}

	b := Load(rows)

	got := b.RowsFor("Ch1")
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Prompt)
	assert.Equal(t, "second", got[1].Prompt)
	assert.Equal(t, "third", got[2].Prompt)
}

func TestLoad_EmptyInput(t *testing.T) {
	b := Load(nil)

	assert.Empty(t, b.Chapters())
	assert.Equal(t, 0, b.Len())
	assert.Nil(t, b.RowsFor("anything"))
}

func TestLoad_ManyChaptersSorted(t *testing.T) {
	var rows []Row
	for i := 9; i >= 0; i-- {
		rows = append(rows, Row{Chapter: fmt.Sprintf("Ch%d", i)})
	}

	b := Load(rows)

	chapters := b.Chapters()
	require.Len(t, chapters, 10)
	for i := 1; i < len(chapters); i++ {
		assert.Less(t, chapters[i-1], chapters[i])
	}
}
