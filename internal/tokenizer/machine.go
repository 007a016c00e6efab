// Package tokenizer implements the character-at-a-time CSV state machine.
//
// The machine is push-driven: a producer feeds it one character per call and
// the machine reports a completed row whenever one is recognized. It never
// pulls from a stream and never buffers more than the current field and the
// current row.
//
// The machine is total over its input alphabet. Malformed input (a quote
// opened mid-field, trailing characters after a closing quote, an
// unterminated quote at end of input) drives it to a defined transition and a
// best-effort row rather than an error.
package tokenizer

import (
	"strings"
	"unicode/utf8"
)

// state identifies the machine's current parsing mode.
type state int

const (
	// stateReady handles unquoted field content and structural characters.
	stateReady state = iota
	// stateInQuotes accumulates literal content until the closing quote.
	stateInQuotes
	// stateSkipToDelimiter discards characters between a closing quote and
	// the next delimiter.
	stateSkipToDelimiter
)

// Machine is the CSV tokenizing state machine. It owns its field and row
// accumulators; callers interact with it only through Feed and Close.
//
// A Machine is not safe for concurrent use. Feed one character at a time, in
// input order, from a single goroutine.
type Machine struct {
	opts  Options
	state state
	quote rune // quote rune that opened the current quoted section
	field strings.Builder
	row   []string
	done  bool

	// processed and discarded count characters fed and characters dropped
	// (pre-quote content and skip-to-delimiter garbage).
	processed uint64
	discarded uint64
}

// New creates a Machine with the given options. Options are not validated
// here; see the csvstream package for option validation.
func New(opts Options) *Machine {
	if opts.Comma == 0 {
		opts.Comma = defaultComma
	}
	if opts.Quote == 0 {
		opts.Quote = defaultQuote
	}
	return &Machine{opts: opts}
}

// NewMachine creates a Machine with default options.
func NewMachine() *Machine {
	return New(DefaultOptions())
}

// Feed consumes one character and performs exactly one state transition.
// When the character completes a row, the row is returned with emitted true
// and ownership of the slice transfers to the caller; the machine starts a
// fresh row. Feeding a closed machine is a no-op.
func (m *Machine) Feed(r rune) (row []string, emitted bool) {
	if m.done {
		return nil, false
	}
	m.processed++

	switch m.state {
	case stateReady:
		return m.feedReady(r)
	case stateInQuotes:
		return m.feedInQuotes(r)
	default:
		return m.feedSkipToDelimiter(r)
	}
}

// Close signals end of input. The pending field and row are closed according
// to the current state and the final row is returned, even when empty. Close
// on an already closed machine returns nil.
func (m *Machine) Close() []string {
	if m.done {
		return nil
	}
	m.done = true

	// In skip-to-delimiter the quoted field was already appended when the
	// closing quote was seen; the row is emitted as accumulated.
	if m.state != stateSkipToDelimiter {
		m.row = append(m.row, m.field.String())
	}

	row := m.row
	m.row = nil
	m.field.Reset()
	return row
}

// Done reports whether Close has been called.
func (m *Machine) Done() bool {
	return m.done
}

// Processed returns the number of characters fed so far.
func (m *Machine) Processed() uint64 {
	return m.processed
}

// Discarded returns the number of characters dropped so far: pre-quote field
// content and characters skipped after a closing quote.
func (m *Machine) Discarded() uint64 {
	return m.discarded
}

func (m *Machine) feedReady(r rune) ([]string, bool) {
	switch r {
	case m.opts.Quote:
		// Only quoted content constitutes the field once quoting is used;
		// anything buffered before the opening quote is dropped.
		m.discarded += uint64(utf8.RuneCountInString(m.field.String()))
		m.field.Reset()
		m.quote = r
		m.state = stateInQuotes
	case m.opts.Comma:
		m.endField()
	case '\n':
		m.endField()
		return m.endRow()
	case '\r':
		// Stripped so CRLF line endings don't leak into field values.
	default:
		m.field.WriteRune(r)
	}
	return nil, false
}

func (m *Machine) feedInQuotes(r rune) ([]string, bool) {
	if r == m.quote {
		// Closing quote. The field is complete; whatever follows before the
		// next delimiter is garbage to be skipped.
		m.endField()
		m.state = stateSkipToDelimiter
		return nil, false
	}
	// Delimiters, newlines and CR are literal content inside quotes.
	m.field.WriteRune(r)
	return nil, false
}

func (m *Machine) feedSkipToDelimiter(r rune) ([]string, bool) {
	switch {
	case r == m.opts.Comma:
		m.field.Reset()
		m.state = stateReady
	case m.opts.StrictTrailing && r == '\n':
		m.field.Reset()
		m.state = stateReady
		return m.endRow()
	case m.opts.StrictTrailing && r == '\r':
		// Dropped so CRLF terminates the row on the following LF.
	default:
		m.discarded++
	}
	return nil, false
}

// endField appends the accumulated field to the row and resets the field
// accumulator.
func (m *Machine) endField() {
	m.row = append(m.row, m.field.String())
	m.field.Reset()
}

// endRow hands the accumulated row to the caller and starts a fresh one.
func (m *Machine) endRow() ([]string, bool) {
	row := m.row
	if row == nil {
		row = []string{}
	}
	m.row = nil
	return row, true
}
