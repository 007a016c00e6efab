package csvstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingConsumer captures everything a session emits.
type recordingConsumer struct {
	rows [][]string
	done int
}

func (c *recordingConsumer) Row(fields []string) { c.rows = append(c.rows, fields) }
func (c *recordingConsumer) Done()               { c.done++ }

func TestSession_EmitsRowsInOrder(t *testing.T) {
	consumer := &recordingConsumer{}
	s := BeginSession(consumer)

	for _, r := range "a,b\nc,d\n" {
		require.NoError(t, s.Character(r))
	}
	require.NoError(t, s.EndOfInput())

	require.Len(t, consumer.rows, 3)
	assert.Equal(t, []string{"a", "b"}, consumer.rows[0])
	assert.Equal(t, []string{"c", "d"}, consumer.rows[1])
	assert.Equal(t, []string{""}, consumer.rows[2])
	assert.Equal(t, 1, consumer.done)
}

func TestSession_EndOfInputClosesPartialRow(t *testing.T) {
	consumer := &recordingConsumer{}
	s := BeginSession(consumer)

	for _, r := range "a,b" {
		require.NoError(t, s.Character(r))
	}
	require.NoError(t, s.EndOfInput())

	require.Len(t, consumer.rows, 1)
	assert.Equal(t, []string{"a", "b"}, consumer.rows[0])
	assert.Equal(t, 1, consumer.done)
}

func TestSession_EmptyInputEmitsOneEmptyRow(t *testing.T) {
	consumer := &recordingConsumer{}
	s := BeginSession(consumer)
	require.NoError(t, s.EndOfInput())

	require.Len(t, consumer.rows, 1)
	assert.Equal(t, []string{""}, consumer.rows[0])
	assert.Equal(t, 1, consumer.done)
}

func TestSession_RejectsEventsAfterEndOfInput(t *testing.T) {
	consumer := &recordingConsumer{}
	s := BeginSession(consumer)
	require.NoError(t, s.EndOfInput())

	assert.ErrorIs(t, s.EndOfInput(), ErrSessionDone)
	assert.ErrorIs(t, s.Character('x'), ErrSessionDone)
	assert.Equal(t, 1, consumer.done, "completion signal must occur exactly once")
	assert.Len(t, consumer.rows, 1)
}

func TestSession_Abort(t *testing.T) {
	consumer := &recordingConsumer{}
	s := BeginSession(consumer)

	require.NoError(t, s.Character('a'))
	s.Abort()
	s.Abort() // idempotent

	assert.Empty(t, consumer.rows, "abort must not emit a final row")
	assert.Zero(t, consumer.done, "abort must not emit the completion signal")
	assert.ErrorIs(t, s.Character('b'), ErrSessionAborted)
	assert.ErrorIs(t, s.EndOfInput(), ErrSessionAborted)
}

func TestSession_AbortAfterCompletionIsNoOp(t *testing.T) {
	consumer := &recordingConsumer{}
	s := BeginSession(consumer)
	require.NoError(t, s.EndOfInput())

	s.Abort()
	assert.ErrorIs(t, s.Character('x'), ErrSessionDone)
}

func TestBeginSessionWithOptions_ValidatesOptions(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		field string
	}{
		{"newline delimiter", Options{Comma: '\n', Quote: '"'}, "Comma"},
		{"zero delimiter", Options{Comma: 0, Quote: '"'}, "Comma"},
		{"quote equals delimiter", Options{Comma: ';', Quote: ';'}, "Quote"},
		{"carriage return quote", Options{Comma: ',', Quote: '\r'}, "Quote"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BeginSessionWithOptions(&recordingConsumer{}, tt.opts)
			require.Error(t, err)
			var optErr *OptionsError
			require.ErrorAs(t, err, &optErr)
			assert.Equal(t, tt.field, optErr.Field)
		})
	}
}

func TestSession_CustomDelimiter(t *testing.T) {
	opts := DefaultOptions()
	opts.Comma = ';'

	consumer := &recordingConsumer{}
	s, err := BeginSessionWithOptions(consumer, opts)
	require.NoError(t, err)

	for _, r := range "a;b,c" {
		require.NoError(t, s.Character(r))
	}
	require.NoError(t, s.EndOfInput())

	require.Len(t, consumer.rows, 1)
	assert.Equal(t, []string{"a", "b,c"}, consumer.rows[0])
}
