package bank

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoRows is returned when the source contains zero question rows.
// Callers should treat it as "nothing to offer", not a fatal condition.
var ErrNoRows = errors.New("question bank: source contains no rows")

// Column layout of the source file: chapter, prompt, correct key, then the
// five option slots a through e.
const (
	colChapter = iota
	colPrompt
	colAnswer
	colFirstOption
	numColumns = colFirstOption + len(OptionKeys)
)

// ReadFile reads question rows from a CSV file.
func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bank file: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

// Read parses question rows from CSV data. Records are positional (no named
// columns); a leading header row is detected by its correct-key column not
// being a single a-e letter and is skipped. Short records are padded with
// empty fields and long records truncated — row content is never validated
// here, malformed rows degrade later into questions with fewer options.
func Read(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	if len(records) > 0 && isHeader(records[0]) {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, ErrNoRows
	}

	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, rowFromRecord(rec))
	}
	return rows, nil
}

func rowFromRecord(rec []string) Row {
	padded := make([]string, numColumns)
	copy(padded, rec)

	row := Row{
		Chapter: padded[colChapter],
		Prompt:  padded[colPrompt],
		Answer:  padded[colAnswer],
	}
	for i := range OptionKeys {
		row.Options[i] = padded[colFirstOption+i]
	}
	return row
}

// isHeader reports whether a record looks like a header row: its answer
// column is not a single option key.
func isHeader(rec []string) bool {
	if len(rec) <= colAnswer {
		return false
	}
	key := strings.ToLower(strings.TrimSpace(rec[colAnswer]))
	for _, k := range OptionKeys {
		if key == k {
			return false
		}
	}
	return true
}
