package tokenizer

const (
	defaultComma = ','
	defaultQuote = '"'
)

// Options configures the state machine.
type Options struct {
	// Comma is the field delimiter. Default: ','
	Comma rune

	// Quote is the quote rune that opens and closes quoted fields.
	// Default: '"'
	Quote rune

	// StrictTrailing changes how a newline is handled between a closing
	// quote and the next delimiter. By default the newline is discarded like
	// any other character there, which lets trailing garbage after a closing
	// quote merge the next line into the current row. With StrictTrailing
	// the newline terminates the row.
	StrictTrailing bool
}

// DefaultOptions returns the default machine options.
func DefaultOptions() Options {
	return Options{
		Comma: defaultComma,
		Quote: defaultQuote,
	}
}
