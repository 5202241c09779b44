package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/emersonchaparro/manu-exams/internal/bank"
)

var rootCmd = &cobra.Command{
	Use:   "manu-exams",
	Short: "Practice exams from a CSV question bank",
	Long:  "Manu Exams — terminal app that builds randomized multiple-choice exams from a chapter-organized question bank and scores your answers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Path to the question bank CSV (overrides MANU_EXAMS_BANK env var)")

	rootCmd.AddCommand(chaptersCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadRows resolves the question source: --bank flag first, then the
// MANU_EXAMS_BANK env var, then the embedded default deck.
func loadRows(cmd *cobra.Command) ([]bank.Row, error) {
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		return bank.ReadFile(p)
	}
	if p := os.Getenv("MANU_EXAMS_BANK"); p != "" {
		return bank.ReadFile(p)
	}
	return bank.DefaultRows()
}
