package csvstream

import (
	"bufio"
	"context"
	"io"

	"github.com/pkg/errors"
	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
)

// FeedString feeds every character of input to the session followed by
// end-of-input. The session's consumer receives all rows before FeedString
// returns.
func FeedString(s *Session, input string) error {
	for _, r := range input {
		if err := s.Character(r); err != nil {
			return err
		}
	}
	return s.EndOfInput()
}

// FeedReader reads runes from r and feeds them to the session, delivering
// end-of-input when the reader is exhausted.
//
// A read failure aborts the session (no final row or Done signal is emitted)
// and the wrapped read error is returned. Cancelling ctx likewise
// aborts the session and returns the context error.
func FeedReader(ctx context.Context, s *Session, r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		select {
		case <-ctx.Done():
			s.Abort()
			return ctx.Err()
		default:
		}

		c, _, err := br.ReadRune()
		if err == io.EOF {
			return s.EndOfInput()
		}
		if err != nil {
			s.Abort()
			return errors.Wrap(err, "csvstream: read input")
		}
		if err := s.Character(c); err != nil {
			return err
		}
	}
}

// FeedStream drives the session from a shape-core character stream, so any
// stream source (including tokenizer.NewStreamFromReader) can act as the
// producer. End-of-input is delivered when the stream is exhausted.
func FeedStream(s *Session, stream shapetokenizer.Stream) error {
	for {
		r, ok := stream.PeekChar()
		if !ok {
			return s.EndOfInput()
		}
		stream.NextChar()
		if err := s.Character(r); err != nil {
			return err
		}
	}
}
