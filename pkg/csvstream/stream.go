package csvstream

import (
	"context"
	"errors"
	"io"
)

// Row is one element of a streamed result. Exactly one of Fields and Err is
// meaningful: rows carry Fields, and a failed read is delivered as a final
// Row carrying Err before the channel closes.
type Row struct {
	Fields []string
	Err    error
}

// Stream reads CSV from r on a background goroutine and delivers rows on the
// returned channel in parse order. The channel is bounded
// (see Options.Buffer), so a slow receiver applies backpressure to the
// reader. The channel is closed after the last row; the close is the
// completion signal.
//
// Cancelling ctx aborts the session early: the channel is closed without a
// final row. A read failure is delivered as a final Row with Err set.
//
// Example:
//
//	rows, err := csvstream.Stream(ctx, file, csvstream.DefaultOptions())
//	if err != nil {
//	    // invalid options
//	}
//	for row := range rows {
//	    if row.Err != nil {
//	        // read failure
//	        break
//	    }
//	    // process row.Fields
//	}
func Stream(ctx context.Context, r io.Reader, opts Options) (<-chan Row, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	buffer := opts.Buffer
	if buffer <= 0 {
		buffer = defaultStreamBuffer
	}
	out := make(chan Row, buffer)

	session, err := BeginSessionWithOptions(&rowSender{ctx: ctx, out: out}, opts)
	if err != nil {
		return nil, err
	}

	go func() {
		defer close(out)

		err := FeedReader(ctx, session, r)
		if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return
		}
		select {
		case out <- Row{Err: err}:
		case <-ctx.Done():
		}
	}()

	return out, nil
}

// rowSender is the Consumer behind Stream. Sends give up when the context is
// cancelled so an abandoned receiver cannot leak the producer goroutine.
type rowSender struct {
	ctx context.Context
	out chan<- Row
}

func (s *rowSender) Row(fields []string) {
	select {
	case s.out <- Row{Fields: fields}:
	case <-s.ctx.Done():
	}
}

// Done is a no-op: Stream closes the channel when the producer goroutine
// finishes, covering both completion and abort.
func (s *rowSender) Done() {}
