// Package csvstream provides configurable options for streaming CSV sessions.
package csvstream

import (
	"unicode/utf8"
)

// Options configures a tokenizing session.
// An Options value is immutable for the lifetime of the session it creates.
type Options struct {
	// Comma is the field delimiter.
	// It must be a valid rune and not \r, \n, or the Unicode replacement character (0xFFFD).
	// Default: ','
	Comma rune

	// Quote is the rune that opens and closes quoted fields.
	// It must be a valid rune, distinct from Comma.
	// Default: '"'
	Quote rune

	// StrictTrailing controls how a newline between a closing quote and the
	// next delimiter is handled. When false (the default), the newline is
	// discarded like any other trailing character, so garbage after a
	// closing quote can merge the following line into the current row. When
	// true, the newline terminates the row.
	// Default: false
	StrictTrailing bool

	// Buffer is the capacity of the row channel created by Stream.
	// A bounded channel gives natural backpressure against the producer.
	// Zero or negative means the default capacity.
	// Default: 0 (use defaultStreamBuffer)
	Buffer int
}

// DefaultOptions returns the default session configuration.
func DefaultOptions() Options {
	return Options{
		Comma: ',',
		Quote: '"',
	}
}

// defaultStreamBuffer is the row channel capacity used by Stream when
// Options.Buffer is unset.
const defaultStreamBuffer = 64

// validDelim reports whether r is a valid field delimiter.
func validDelim(r rune) bool {
	return r != 0 && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

// Validate checks if the options are valid.
// Returns an error if the options are invalid.
func (o Options) Validate() error {
	if !validDelim(o.Comma) {
		return &OptionsError{Field: "Comma", Message: "invalid delimiter"}
	}
	if o.Quote != 0 && !validDelim(o.Quote) {
		return &OptionsError{Field: "Quote", Message: "invalid quote character"}
	}
	if o.Quote == o.Comma {
		return &OptionsError{Field: "Quote", Message: "quote character same as delimiter"}
	}
	return nil
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "csvstream: invalid " + e.Field + ": " + e.Message
}
