// Package csvstream provides error values for session lifecycle violations.
package csvstream

import (
	"errors"
)

// Common session errors
var (
	// ErrSessionDone indicates an input event was delivered after
	// end-of-input completed the session.
	ErrSessionDone = errors.New("csvstream: session already completed")

	// ErrSessionAborted indicates an input event was delivered after the
	// session was aborted.
	ErrSessionAborted = errors.New("csvstream: session aborted")
)
