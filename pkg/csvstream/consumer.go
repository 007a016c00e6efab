package csvstream

// Consumer receives the output of a tokenizing session.
//
// Row is called once per completed row, in parse order, with ownership of the
// slice. Done is called exactly once, after the final row, and nothing is
// delivered afterwards. Both are invoked synchronously from whichever
// goroutine drives the session.
type Consumer interface {
	// Row receives one completed row of field values, left to right as parsed.
	Row(fields []string)

	// Done signals that no more rows will be delivered.
	Done()
}

// ChannelConsumer forwards rows to a caller-owned channel and closes it when
// the session completes. The closed channel is the completion signal, so a
// range over the channel sees every row and then terminates.
//
// Example:
//
//	ch := make(chan []string, 16)
//	s := csvstream.BeginSession(csvstream.NewChannelConsumer(ch))
//	go func() {
//	    for _, r := range input {
//	        s.Character(r)
//	    }
//	    s.EndOfInput()
//	}()
//	for row := range ch {
//	    // process row
//	}
type ChannelConsumer struct {
	ch chan<- []string
}

// NewChannelConsumer creates a ChannelConsumer sending on ch.
// The channel is closed by Done; the caller must not close it.
func NewChannelConsumer(ch chan<- []string) *ChannelConsumer {
	return &ChannelConsumer{ch: ch}
}

// Row sends the row on the channel, blocking if it is full.
func (c *ChannelConsumer) Row(fields []string) {
	c.ch <- fields
}

// Done closes the channel.
func (c *ChannelConsumer) Done() {
	close(c.ch)
}

// collectConsumer accumulates every row in memory. It backs the Parse and
// ParseReader conveniences.
type collectConsumer struct {
	rows [][]string
	done bool
}

func (c *collectConsumer) Row(fields []string) {
	c.rows = append(c.rows, fields)
}

func (c *collectConsumer) Done() {
	c.done = true
}
