// Package csvstream provides push-driven, streaming CSV tokenization.
//
// The tokenizer is a character-at-a-time finite-state machine. A producer
// delivers input events (one character at a time, then a single
// end-of-input) and the machine pushes completed rows to a Consumer as they
// are recognized, followed by exactly one completion signal. Because the
// machine never pulls from its source, it can sit behind any I/O producer
// (file stream, socket, pipe) without knowing about it, buffering no more
// than one field and one row.
//
// The machine is total over its input: there are no error states, and
// malformed CSV (quotes opened mid-field, trailing garbage after a closing
// quote, unterminated quotes) is tolerated with best-effort output rather
// than rejected.
//
// # Session API
//
// BeginSession starts an event-driven session:
//
//	s := csvstream.BeginSession(consumer)
//	for _, r := range input {
//	    s.Character(r)
//	}
//	s.EndOfInput()
//
// # Channel pipeline
//
// Stream runs producer and tokenizer on a background goroutine and delivers
// rows on a bounded channel:
//
//	rows, err := csvstream.Stream(ctx, file, csvstream.DefaultOptions())
//	for row := range rows {
//	    // process row.Fields
//	}
//
// # Conveniences
//
// Parse and ParseReader collect every row in memory. ParseToAST produces the
// shape-core AST representation (an array of records, each an array of
// literal string fields).
//
// # Thread Safety
//
// A Session processes one event at a time and is not safe for concurrent
// use; the producer serializes delivery. Separate sessions are independent:
// it is safe to run any number of them concurrently.
package csvstream

import (
	"context"
	"io"
)

// Parse tokenizes a complete CSV document from a string and returns all rows.
//
// Every input yields at least one row: end-of-input always closes the row
// under construction, even when it is empty.
//
// Example:
//
//	rows, err := csvstream.Parse("name,age\nAlice,30")
//	// rows[0] = ["name", "age"], rows[1] = ["Alice", "30"]
func Parse(input string) ([][]string, error) {
	return ParseWithOptions(input, DefaultOptions())
}

// ParseWithOptions tokenizes a complete CSV document with custom options.
//
// Example:
//
//	opts := csvstream.DefaultOptions()
//	opts.Comma = '\t'
//	rows, err := csvstream.ParseWithOptions("name\tage", opts)
func ParseWithOptions(input string, opts Options) ([][]string, error) {
	collector := &collectConsumer{}
	s, err := BeginSessionWithOptions(collector, opts)
	if err != nil {
		return nil, err
	}
	if err := FeedString(s, input); err != nil {
		return nil, err
	}
	return collector.rows, nil
}

// ParseReader tokenizes a complete CSV document from an io.Reader and
// returns all rows.
//
// The reader can be any io.Reader implementation: os.File, strings.Reader,
// network streams, compressed streams. For incremental delivery of rows, use
// Stream instead.
func ParseReader(r io.Reader) ([][]string, error) {
	return ParseReaderWithOptions(r, DefaultOptions())
}

// ParseReaderWithOptions tokenizes a complete CSV document from an io.Reader
// with custom options.
func ParseReaderWithOptions(r io.Reader, opts Options) ([][]string, error) {
	collector := &collectConsumer{}
	s, err := BeginSessionWithOptions(collector, opts)
	if err != nil {
		return nil, err
	}
	if err := FeedReader(context.Background(), s, r); err != nil {
		return nil, err
	}
	return collector.rows, nil
}

// Format returns the format identifier for this tokenizer.
// Returns "CSV" to identify this as the CSV data format tokenizer.
func Format() string {
	return "CSV"
}
