package bank

// OptionKeys are the fixed option slots a row carries, in presentation order.
var OptionKeys = [5]string{"a", "b", "c", "d", "e"}

// Row is one unprocessed record from the tabular question source.
// Option texts are stored positionally, parallel to OptionKeys. Empty slots
// stay empty here; filtering happens when a row is frozen into an exam
// question, not at load time.
type Row struct {
	// Chapter is the category the row belongs to.
	Chapter string

	// Prompt is the question text.
	Prompt string

	// Answer is the key of the correct option (one of OptionKeys for a
	// well-formed row; not validated here).
	Answer string

	// Options holds the option texts for keys a through e.
	Options [5]string
}
