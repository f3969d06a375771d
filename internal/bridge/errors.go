package bridge

import "errors"

// Transport failure taxonomy. Every failed exchange wraps exactly one of
// these, so callers can tell "could not reach the editor" apart from "the
// editor rejected the request" with errors.Is.
var (
	// ErrConnectFailed covers dial failures, connection refused included.
	ErrConnectFailed = errors.New("connect to unreal failed")

	// ErrTimeout is returned when the deadline fires before a complete
	// response accumulated and the last-chance parse did not succeed.
	ErrTimeout = errors.New("timeout waiting for unreal response")

	// ErrConnectionClosed is returned when the peer closes its write side
	// before sending any data.
	ErrConnectionClosed = errors.New("connection closed before response data")

	// ErrMalformedResponse is returned when the peer closed the stream (or
	// the read failed) with buffered bytes that never became valid JSON.
	ErrMalformedResponse = errors.New("malformed response from unreal")
)
