package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emersonchaparro/manu-exams/internal/bank"
	"github.com/emersonchaparro/manu-exams/internal/exam"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Quick stdin drill over one chapter (no TUI)",
	Long: `Answer randomly sampled questions from a single chapter at the prompt.

Useful for a fast run through new material without the full-screen app.`,
	RunE: runDrill,
}

func init() {
	drillCmd.Flags().String("chapter", "", "Chapter to drill (required)")
	drillCmd.Flags().Int("count", 5, "Number of questions to sample")
	_ = drillCmd.MarkFlagRequired("chapter")
}

func runDrill(cmd *cobra.Command, args []string) error {
	chapter, _ := cmd.Flags().GetString("chapter")
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		count = 1
	}

	rows, err := loadRows(cmd)
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}
	b := bank.Load(rows)

	if b.ChapterSize(chapter) == 0 {
		return fmt.Errorf("chapter %q not found — run 'manu-exams chapters' to list them", chapter)
	}

	generator := exam.NewGenerator(b, exam.NewSampler(nil))
	session := exam.NewSession()
	session.Start(generator.Generate([]string{chapter}, count))

	total := len(session.Questions)
	fmt.Printf("Drilling %s — %d questions (session %s)\n\n", chapter, total, session.ID)

	scanner := bufio.NewScanner(os.Stdin)
	for i, q := range session.Questions {
		fmt.Printf("── Question %d/%d ──\n", i+1, total)
		fmt.Println(q.Prompt)
		for _, opt := range q.Options {
			fmt.Printf("  %s) %s\n", opt.Key, opt.Text)
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		if err := session.RecordAnswer(i, answer); err != nil {
			return fmt.Errorf("record answer: %w", err)
		}
		if correct, _ := session.Correct(i); correct {
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", q.CorrectKey)
		}
		fmt.Println()
	}

	session.Finish()
	fmt.Printf("── Score: %d/%d correct (%.1f%%) ──\n",
		session.CorrectCount(), total, session.Percentage())
	return nil
}
