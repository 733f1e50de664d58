package gateway

import (
	"errors"
	"fmt"
)

// ErrUninitialized is returned when a generation operation is invoked
// before a provider has been activated.
var ErrUninitialized = errors.New("model gateway not initialized: no credential activated")

// ErrTimeout is returned when a call exceeds the configured per-call
// deadline. Transport errors from the provider pass through unchanged
// (llm.ErrUnavailable, llm.ErrRateLimit).
var ErrTimeout = errors.New("model call timed out")

// MalformedResponseError indicates the model returned text that does not
// parse or does not match the expected shape. Terminal for the call:
// no partial recovery, no salvage of a truncated payload.
type MalformedResponseError struct {
	Content string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
