package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emersonchaparro/manu-exams/internal/app"
	"github.com/emersonchaparro/manu-exams/internal/bank"
	"github.com/emersonchaparro/manu-exams/internal/exam"
)

// runApp loads the question bank, builds the generator, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	rows, err := loadRows(cmd)
	if err != nil {
		// An empty source is survivable: the UI shows a disabled menu.
		if !errors.Is(err, bank.ErrNoRows) {
			return fmt.Errorf("load question bank: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Warning: question bank is empty.")
		rows = nil
	}

	b := bank.Load(rows)
	generator := exam.NewGenerator(b, exam.NewSampler(nil))

	return app.Run(app.Options{Generator: generator})
}
