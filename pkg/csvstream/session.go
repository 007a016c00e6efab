package csvstream

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/shapestone/shape-csv-stream/internal/tokenizer"
)

// Session is one run of the tokenizer from its initial state to the
// completion signal. It is purely event-driven: the producer delivers
// characters one at a time and a single end-of-input, and the session pushes
// completed rows to its Consumer as they are recognized.
//
// A Session is not safe for concurrent use; the producer is responsible for
// serializing event delivery (see Stream for a channel-based pipeline that
// does this for you).
type Session struct {
	machine  *tokenizer.Machine
	consumer Consumer
	logger   log.Logger
	done     bool
	aborted  bool
}

// BeginSession starts a tokenizing session with default options, emitting
// rows to the given consumer.
//
// Example:
//
//	s := csvstream.BeginSession(consumer)
//	for _, r := range input {
//	    s.Character(r)
//	}
//	s.EndOfInput()
func BeginSession(c Consumer) *Session {
	s, _ := BeginSessionWithOptions(c, DefaultOptions())
	return s
}

// BeginSessionWithOptions starts a tokenizing session with custom options.
// Returns an error if the options are invalid.
//
// Example:
//
//	opts := csvstream.DefaultOptions()
//	opts.Comma = '\t'
//	s, err := csvstream.BeginSessionWithOptions(consumer, opts)
func BeginSessionWithOptions(c Consumer, opts Options) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	sessionsStarted.Inc()
	return &Session{
		machine: tokenizer.New(tokenizer.Options{
			Comma:          opts.Comma,
			Quote:          opts.Quote,
			StrictTrailing: opts.StrictTrailing,
		}),
		consumer: c,
		logger:   log.NewNopLogger(),
	}, nil
}

// SetLogger sets the logger used for session lifecycle events.
// Returns the Session for method chaining.
func (s *Session) SetLogger(logger log.Logger) *Session {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Character delivers one input character to the session. If the character
// completes a row, the row is pushed to the consumer before Character
// returns.
//
// Returns ErrSessionDone after EndOfInput and ErrSessionAborted after Abort.
func (s *Session) Character(r rune) error {
	if err := s.check(); err != nil {
		return err
	}
	if row, ok := s.machine.Feed(r); ok {
		rowsEmitted.Inc()
		s.consumer.Row(row)
	}
	return nil
}

// EndOfInput delivers the end-of-input event. The row under construction is
// closed and pushed to the consumer, even if it is empty or partially
// formed, followed by exactly one Done signal.
//
// Returns ErrSessionDone if the session already completed and
// ErrSessionAborted if it was aborted.
func (s *Session) EndOfInput() error {
	if err := s.check(); err != nil {
		return err
	}
	s.done = true

	row := s.machine.Close()
	rowsEmitted.Inc()
	s.consumer.Row(row)
	s.consumer.Done()

	sessionsCompleted.Inc()
	s.flushCounters()
	level.Debug(s.logger).Log(
		"msg", "session completed",
		"characters", s.machine.Processed(),
		"discarded", s.machine.Discarded(),
	)
	return nil
}

// Abort releases the session without emitting a final row or a Done signal.
// Use it when the producer stops early, for example on a partial read.
// Abort is idempotent and a no-op on a completed session.
func (s *Session) Abort() {
	if s.done || s.aborted {
		return
	}
	s.aborted = true

	sessionsAborted.Inc()
	s.flushCounters()
	level.Debug(s.logger).Log("msg", "session aborted",
		"characters", s.machine.Processed())
}

// check rejects input events on a finished session.
func (s *Session) check() error {
	if s.aborted {
		return ErrSessionAborted
	}
	if s.done {
		return ErrSessionDone
	}
	return nil
}

// flushCounters publishes the machine's character counters once, at the end
// of the session.
func (s *Session) flushCounters() {
	charactersProcessed.Add(float64(s.machine.Processed()))
	charactersDiscarded.Add(float64(s.machine.Discarded()))
}
