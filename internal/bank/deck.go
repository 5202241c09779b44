package bank

import (
	"bytes"
	_ "embed"
)

// defaultDeck is a small built-in question set so the app works with no
// external file configured.
//
//go:embed default.csv
var defaultDeck []byte

// DefaultRows parses the embedded default deck.
func DefaultRows() ([]Row, error) {
	return Read(bytes.NewReader(defaultDeck))
}
