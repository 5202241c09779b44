package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emersonchaparro/manu-exams/internal/bank"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters",
	Short: "List the chapters in the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := loadRows(cmd)
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}

		b := bank.Load(rows)
		for _, ch := range b.Chapters() {
			fmt.Printf("%-30s %4d questions\n", ch, b.ChapterSize(ch))
		}
		fmt.Printf("\n%d questions total\n", b.Len())
		return nil
	},
}
