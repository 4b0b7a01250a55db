package remote

import "fmt"

// RemoteUnavailable wraps any remote-store call failure. It is never fatal to
// the operation that triggered the call: callers log it and keep the local
// state authoritative.
type RemoteUnavailable struct {
	Op  string
	Err error
}

func (e *RemoteUnavailable) Error() string {
	return fmt.Sprintf("remote store unavailable during %s: %v", e.Op, e.Err)
}

func (e *RemoteUnavailable) Unwrap() error { return e.Err }

// DecodeError marks a single malformed remote document. Batch reads skip the
// document and carry on.
type DecodeError struct {
	Collection string
	Key        string
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s document %s: %v", e.Collection, e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
