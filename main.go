package main

import (
	"os"

	"github.com/emersonchaparro/manu-exams/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
